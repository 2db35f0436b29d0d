package metadata

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/chatsync/internal/dbx"
)

// SQLiteRepository keeps metadata in the replica database. It accepts a
// transaction so the watermark can move together with the records it
// describes.
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Get returns (nil, nil) for a missing key.
func (r *SQLiteRepository) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := r.db.QueryRowContext(ctx, `SELECT value FROM metadata WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get metadata %q: %w", key, err)
	}
	return value, nil
}

func (r *SQLiteRepository) Set(ctx context.Context, key string, value []byte) error {
	return r.setMany(ctx, map[string]string{key: string(value)})
}

// setMany upserts all pairs in one statement.
func (r *SQLiteRepository) setMany(ctx context.Context, pairs map[string]string) error {
	if len(pairs) == 0 {
		return nil
	}
	keys := make([]string, 0, len(pairs))
	args := make([]any, 0, 2*len(pairs))
	for k, v := range pairs {
		keys = append(keys, k)
		args = append(args, k, []byte(v))
	}
	values := strings.TrimSuffix(strings.Repeat("(?, ?), ", len(pairs)), ", ")
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO metadata (key, value) VALUES `+values+`
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, args...)
	if err != nil {
		return fmt.Errorf("set metadata %s: %w", strings.Join(keys, ","), err)
	}
	return nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, key string) error {
	return r.deleteMany(ctx, key)
}

func (r *SQLiteRepository) deleteMany(ctx context.Context, keys ...string) error {
	marks := strings.TrimSuffix(strings.Repeat("?, ", len(keys)), ", ")
	args := make([]any, len(keys))
	for i, k := range keys {
		args[i] = k
	}
	if _, err := r.db.ExecContext(ctx, `DELETE FROM metadata WHERE key IN (`+marks+`)`, args...); err != nil {
		return fmt.Errorf("delete metadata %s: %w", strings.Join(keys, ","), err)
	}
	return nil
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM metadata`); err != nil {
		return fmt.Errorf("clear metadata: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) List(ctx context.Context) (map[string][]byte, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT key, value FROM metadata`)
	if err != nil {
		return nil, fmt.Errorf("list metadata: %w", err)
	}
	defer rows.Close()

	result := make(map[string][]byte)
	for rows.Next() {
		var key string
		var value []byte
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("scan metadata: %w", err)
		}
		result[key] = value
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list metadata: %w", err)
	}
	return result, nil
}

func (r *SQLiteRepository) Session(ctx context.Context) (Session, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT key, value FROM metadata WHERE key IN (?, ?, ?, ?)`,
		keyUserID, keyAccessToken, keyRefreshToken, keySessionID)
	if err != nil {
		return Session{}, fmt.Errorf("load session: %w", err)
	}
	defer rows.Close()

	var s Session
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return Session{}, fmt.Errorf("load session: %w", err)
		}
		switch key {
		case keyUserID:
			s.UserID = value
		case keyAccessToken:
			s.AccessToken = value
		case keyRefreshToken:
			s.RefreshToken = value
		case keySessionID:
			s.SessionID = value
		}
	}
	if err := rows.Err(); err != nil {
		return Session{}, fmt.Errorf("load session: %w", err)
	}
	return s, nil
}

func (r *SQLiteRepository) SaveSession(ctx context.Context, s Session) error {
	return r.setMany(ctx, map[string]string{
		keyUserID:       s.UserID,
		keyAccessToken:  s.AccessToken,
		keyRefreshToken: s.RefreshToken,
		keySessionID:    s.SessionID,
	})
}

// SaveTokens stores a rotated token pair. The session id does not change on
// refresh.
func (r *SQLiteRepository) SaveTokens(ctx context.Context, accessToken, refreshToken string) error {
	return r.setMany(ctx, map[string]string{
		keyAccessToken:  accessToken,
		keyRefreshToken: refreshToken,
	})
}

// ForgetTokens signs out but keeps the user id.
func (r *SQLiteRepository) ForgetTokens(ctx context.Context) error {
	return r.deleteMany(ctx, keyAccessToken, keyRefreshToken, keySessionID)
}

// LastPulledAt returns the sync watermark, or nil before the first pull.
func (r *SQLiteRepository) LastPulledAt(ctx context.Context) (*int64, error) {
	v, err := r.Get(ctx, keyLastPulledAt)
	if err != nil || v == nil {
		return nil, err
	}
	n, err := strconv.ParseInt(string(v), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("watermark %q is not a number: %w", v, err)
	}
	return &n, nil
}

func (r *SQLiteRepository) SetLastPulledAt(ctx context.Context, ts int64) error {
	return r.Set(ctx, keyLastPulledAt, []byte(strconv.FormatInt(ts, 10)))
}

func (r *SQLiteRepository) ResetLastPulledAt(ctx context.Context) error {
	return r.Delete(ctx, keyLastPulledAt)
}
