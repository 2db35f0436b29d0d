package messages

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/dmitrijs2005/chatsync/internal/common"
	"github.com/dmitrijs2005/chatsync/internal/dbx"
	"github.com/dmitrijs2005/chatsync/internal/server/models"
)

const columns = `id, cipher, type, user_id, room_id, sent_at, created_at, updated_at, is_deleted`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scan(row scanner) (*models.Message, error) {
	m := &models.Message{}
	err := row.Scan(&m.ID, &m.Cipher, &m.Type, &m.UserID, &m.RoomID, &m.SentAt, &m.CreatedAt, &m.UpdatedAt, &m.IsDeleted)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (r *PostgresRepository) FindByID(ctx context.Context, id string) (*models.Message, error) {
	m, err := scan(r.db.QueryRowContext(ctx, `SELECT `+columns+` FROM messages WHERE id = $1`, id))
	if err != nil {
		return nil, dbx.Wrap(err)
	}
	return m, nil
}

func (r *PostgresRepository) ListByRooms(ctx context.Context, roomIDs []string) ([]*models.Message, error) {
	if len(roomIDs) == 0 {
		return nil, nil
	}
	query := `SELECT ` + columns + ` FROM messages WHERE room_id IN (` + dbx.Placeholders(1, len(roomIDs)) + `) ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query, dbx.Args(roomIDs)...)
	if err != nil {
		return nil, dbx.Wrap(err)
	}
	defer rows.Close()

	var result []*models.Message
	for rows.Next() {
		m, err := scan(rows)
		if err != nil {
			return nil, dbx.Wrap(err)
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, dbx.Wrap(err)
	}
	return result, nil
}

func (r *PostgresRepository) ListBefore(ctx context.Context, roomID string, before time.Time, limit int) ([]*models.Message, error) {
	query := `
		SELECT ` + columns + ` FROM messages
		WHERE room_id = $1 AND created_at < $2 AND is_deleted = false
		ORDER BY created_at DESC, id DESC
		LIMIT $3
	`
	rows, err := r.db.QueryContext(ctx, query, roomID, before, limit)
	if err != nil {
		return nil, dbx.Wrap(err)
	}
	defer rows.Close()

	var result []*models.Message
	for rows.Next() {
		m, err := scan(rows)
		if err != nil {
			return nil, dbx.Wrap(err)
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, dbx.Wrap(err)
	}
	return result, nil
}

func optionalTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

func (r *PostgresRepository) Upsert(ctx context.Context, msg *models.Message) (bool, error) {
	query := `
		INSERT INTO messages (id, cipher, type, user_id, room_id, sent_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, COALESCE($7, now()))
		ON CONFLICT (id)
		DO UPDATE SET
			cipher = EXCLUDED.cipher,
			type = EXCLUDED.type,
			sent_at = COALESCE(EXCLUDED.sent_at, messages.sent_at),
			updated_at = now()
			WHERE messages.user_id = EXCLUDED.user_id
				AND messages.room_id = EXCLUDED.room_id
				AND messages.is_deleted = false
		RETURNING (xmax = 0) AS inserted
	`
	var inserted bool
	err := r.db.QueryRowContext(ctx, query,
		msg.ID, msg.Cipher, msg.Type, msg.UserID, msg.RoomID, msg.SentAt, optionalTime(msg.CreatedAt),
	).Scan(&inserted)
	if errors.Is(err, sql.ErrNoRows) {
		return false, common.ErrorConflict
	}
	if err != nil {
		return false, dbx.Wrap(err)
	}
	return inserted, nil
}

func (r *PostgresRepository) SoftDelete(ctx context.Context, id, userID string) error {
	query := `
		UPDATE messages SET is_deleted = true, updated_at = now()
		WHERE id = $1 AND user_id = $2 AND is_deleted = false
	`
	res, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return dbx.Wrap(err)
	}
	return dbx.ExpectOne(res, common.ErrorNotFound)
}
