package preferences

import (
	"context"

	"github.com/dmitrijs2005/chatsync/internal/dbx"
	"github.com/dmitrijs2005/chatsync/internal/server/models"
)

const columns = `user_id, room_id, is_muted, should_still_notify, muted_until, created_at, updated_at`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scan(row scanner) (*models.RoomPreferences, error) {
	p := &models.RoomPreferences{}
	err := row.Scan(&p.UserID, &p.RoomID, &p.IsMuted, &p.ShouldStillNotify, &p.MutedUntil, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *PostgresRepository) Find(ctx context.Context, userID, roomID string) (*models.RoomPreferences, error) {
	query := `SELECT ` + columns + ` FROM room_preferences WHERE user_id = $1 AND room_id = $2`
	p, err := scan(r.db.QueryRowContext(ctx, query, userID, roomID))
	if err != nil {
		return nil, dbx.Wrap(err)
	}
	return p, nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]*models.RoomPreferences, error) {
	return r.list(ctx, `SELECT `+columns+` FROM room_preferences WHERE user_id = $1`, userID)
}

func (r *PostgresRepository) ListByRoom(ctx context.Context, roomID string) ([]*models.RoomPreferences, error) {
	return r.list(ctx, `SELECT `+columns+` FROM room_preferences WHERE room_id = $1`, roomID)
}

func (r *PostgresRepository) list(ctx context.Context, query string, arg string) ([]*models.RoomPreferences, error) {
	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, dbx.Wrap(err)
	}
	defer rows.Close()

	var result []*models.RoomPreferences
	for rows.Next() {
		p, err := scan(rows)
		if err != nil {
			return nil, dbx.Wrap(err)
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, dbx.Wrap(err)
	}
	return result, nil
}

func (r *PostgresRepository) Upsert(ctx context.Context, p *models.RoomPreferences) error {
	query := `
		INSERT INTO room_preferences (user_id, room_id, is_muted, should_still_notify, muted_until)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, room_id)
		DO UPDATE SET
			is_muted = EXCLUDED.is_muted,
			should_still_notify = EXCLUDED.should_still_notify,
			muted_until = EXCLUDED.muted_until,
			updated_at = now();
	`
	if _, err := r.db.ExecContext(ctx, query, p.UserID, p.RoomID, p.IsMuted, p.ShouldStillNotify, p.MutedUntil); err != nil {
		return dbx.Wrap(err)
	}
	return nil
}
