package devices

import (
	"context"

	"github.com/dmitrijs2005/chatsync/internal/dbx"
	"github.com/dmitrijs2005/chatsync/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) DeleteByToken(ctx context.Context, token string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM devices WHERE token = $1`, token); err != nil {
		return dbx.Wrap(err)
	}
	return nil
}

func (r *PostgresRepository) Create(ctx context.Context, d *models.Device) error {
	query := `
		INSERT INTO devices (id, user_id, name, token, platform)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`
	err := r.db.QueryRowContext(ctx, query, d.ID, d.UserID, d.Name, d.Token, d.Platform).Scan(&d.CreatedAt)
	if err != nil {
		return dbx.Wrap(err)
	}
	return nil
}

func (r *PostgresRepository) DeleteByTokens(ctx context.Context, userID string, tokens []string) error {
	if len(tokens) == 0 {
		return nil
	}
	query := `DELETE FROM devices WHERE user_id = $1 AND token IN (` + dbx.Placeholders(2, len(tokens)) + `)`
	args := append([]any{userID}, dbx.Args(tokens)...)
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return dbx.Wrap(err)
	}
	return nil
}

func (r *PostgresRepository) ListByUsers(ctx context.Context, userIDs []string, platform models.DevicePlatform) ([]*models.Device, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}
	query := `
		SELECT id, user_id, name, token, platform, created_at FROM devices
		WHERE platform = $1 AND user_id IN (` + dbx.Placeholders(2, len(userIDs)) + `)
	`
	args := append([]any{platform}, dbx.Args(userIDs)...)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, dbx.Wrap(err)
	}
	defer rows.Close()

	var result []*models.Device
	for rows.Next() {
		d := &models.Device{}
		if err := rows.Scan(&d.ID, &d.UserID, &d.Name, &d.Token, &d.Platform, &d.CreatedAt); err != nil {
			return nil, dbx.Wrap(err)
		}
		result = append(result, d)
	}
	if err := rows.Err(); err != nil {
		return nil, dbx.Wrap(err)
	}
	return result, nil
}
