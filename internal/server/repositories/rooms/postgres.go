package rooms

import (
	"context"

	"github.com/dmitrijs2005/chatsync/internal/common"
	"github.com/dmitrijs2005/chatsync/internal/dbx"
	"github.com/dmitrijs2005/chatsync/internal/server/models"
)

const columns = `id, name, picture_uri, created_at, updated_at, is_deleted`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scan(row scanner) (*models.Room, error) {
	r := &models.Room{}
	if err := row.Scan(&r.ID, &r.Name, &r.PictureURI, &r.CreatedAt, &r.UpdatedAt, &r.IsDeleted); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *PostgresRepository) FindByID(ctx context.Context, id string) (*models.Room, error) {
	room, err := scan(r.db.QueryRowContext(ctx, `SELECT `+columns+` FROM rooms WHERE id = $1`, id))
	if err != nil {
		return nil, dbx.Wrap(err)
	}
	return room, nil
}

func (r *PostgresRepository) FindByIDs(ctx context.Context, ids []string) ([]*models.Room, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query := `SELECT ` + columns + ` FROM rooms WHERE id IN (` + dbx.Placeholders(1, len(ids)) + `)`
	rows, err := r.db.QueryContext(ctx, query, dbx.Args(ids)...)
	if err != nil {
		return nil, dbx.Wrap(err)
	}
	defer rows.Close()

	var result []*models.Room
	for rows.Next() {
		room, err := scan(rows)
		if err != nil {
			return nil, dbx.Wrap(err)
		}
		result = append(result, room)
	}
	if err := rows.Err(); err != nil {
		return nil, dbx.Wrap(err)
	}
	return result, nil
}

func (r *PostgresRepository) Upsert(ctx context.Context, room *models.Room) error {
	query := `
		INSERT INTO rooms (id, name, picture_uri)
		VALUES ($1, $2, $3)
		ON CONFLICT (id)
		DO UPDATE SET
			name = EXCLUDED.name,
			picture_uri = EXCLUDED.picture_uri,
			updated_at = now()
			WHERE rooms.is_deleted = false;
	`
	res, err := r.db.ExecContext(ctx, query, room.ID, room.Name, room.PictureURI)
	if err != nil {
		return dbx.Wrap(err)
	}
	return dbx.ExpectOne(res, common.ErrorConflict)
}

func (r *PostgresRepository) SoftDelete(ctx context.Context, id string) error {
	query := `UPDATE rooms SET is_deleted = true, updated_at = now() WHERE id = $1 AND is_deleted = false`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return dbx.Wrap(err)
	}
	return dbx.ExpectOne(res, common.ErrorNotFound)
}

func (r *PostgresRepository) Touch(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `UPDATE rooms SET updated_at = now() WHERE id = $1`, id); err != nil {
		return dbx.Wrap(err)
	}
	return nil
}
