package members

import (
	"context"

	"github.com/dmitrijs2005/chatsync/internal/common"
	"github.com/dmitrijs2005/chatsync/internal/dbx"
	"github.com/dmitrijs2005/chatsync/internal/server/models"
)

const columns = `room_id, user_id, created_at, updated_at, is_deleted`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scan(row scanner) (*models.Membership, error) {
	m := &models.Membership{}
	if err := row.Scan(&m.RoomID, &m.UserID, &m.CreatedAt, &m.UpdatedAt, &m.IsDeleted); err != nil {
		return nil, err
	}
	return m, nil
}

func (r *PostgresRepository) list(ctx context.Context, query string, args ...any) ([]*models.Membership, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, dbx.Wrap(err)
	}
	defer rows.Close()

	var result []*models.Membership
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

func (r *PostgresRepository) Find(ctx context.Context, roomID, userID string) (*models.Membership, error) {
	query := `SELECT ` + columns + ` FROM room_members WHERE room_id = $1 AND user_id = $2`
	m, err := scan(r.db.QueryRowContext(ctx, query, roomID, userID))
	if err != nil {
		return nil, dbx.Wrap(err)
	}
	return m, nil
}

func (r *PostgresRepository) IsMember(ctx context.Context, roomID, userID string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM room_members WHERE room_id = $1 AND user_id = $2 AND is_deleted = false)`
	var ok bool
	if err := r.db.QueryRowContext(ctx, query, roomID, userID).Scan(&ok); err != nil {
		return false, dbx.Wrap(err)
	}
	return ok, nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]*models.Membership, error) {
	return r.list(ctx, `SELECT `+columns+` FROM room_members WHERE user_id = $1`, userID)
}

func (r *PostgresRepository) ListByRooms(ctx context.Context, roomIDs []string) ([]*models.Membership, error) {
	if len(roomIDs) == 0 {
		return nil, nil
	}
	query := `SELECT ` + columns + ` FROM room_members WHERE room_id IN (` + dbx.Placeholders(1, len(roomIDs)) + `)`
	return r.list(ctx, query, dbx.Args(roomIDs)...)
}

func (r *PostgresRepository) Upsert(ctx context.Context, roomID, userID string) error {
	query := `
		INSERT INTO room_members (room_id, user_id)
		VALUES ($1, $2)
		ON CONFLICT (room_id, user_id)
		DO UPDATE SET
			is_deleted = false,
			updated_at = now();
	`
	if _, err := r.db.ExecContext(ctx, query, roomID, userID); err != nil {
		return dbx.Wrap(err)
	}
	return nil
}

func (r *PostgresRepository) SoftDelete(ctx context.Context, roomID, userID string) error {
	query := `
		UPDATE room_members SET is_deleted = true, updated_at = now()
		WHERE room_id = $1 AND user_id = $2 AND is_deleted = false
	`
	res, err := r.db.ExecContext(ctx, query, roomID, userID)
	if err != nil {
		return dbx.Wrap(err)
	}
	return dbx.ExpectOne(res, common.ErrorNotFound)
}
