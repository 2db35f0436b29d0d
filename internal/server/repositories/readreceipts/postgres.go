package readreceipts

import (
	"context"
	"time"

	"github.com/dmitrijs2005/chatsync/internal/common"
	"github.com/dmitrijs2005/chatsync/internal/dbx"
	"github.com/dmitrijs2005/chatsync/internal/server/models"
)

const columns = `id, user_id, message_id, room_id, received_at, seen_at, created_at, updated_at, is_deleted`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) FindByID(ctx context.Context, id string) (*models.ReadReceipt, error) {
	rr := &models.ReadReceipt{}
	err := r.db.QueryRowContext(ctx, `SELECT `+columns+` FROM read_receipts WHERE id = $1`, id).
		Scan(&rr.ID, &rr.UserID, &rr.MessageID, &rr.RoomID, &rr.ReceivedAt, &rr.SeenAt, &rr.CreatedAt, &rr.UpdatedAt, &rr.IsDeleted)
	if err != nil {
		return nil, dbx.Wrap(err)
	}
	return rr, nil
}

func (r *PostgresRepository) ListChangedByRooms(ctx context.Context, roomIDs []string, since time.Time) ([]*models.ReadReceipt, error) {
	if len(roomIDs) == 0 {
		return nil, nil
	}
	query := `SELECT ` + columns + ` FROM read_receipts WHERE updated_at > $1 AND room_id IN (` + dbx.Placeholders(2, len(roomIDs)) + `)`
	args := append([]any{since}, dbx.Args(roomIDs)...)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, dbx.Wrap(err)
	}
	defer rows.Close()

	var result []*models.ReadReceipt
	for rows.Next() {
		rr := &models.ReadReceipt{}
		if err := rows.Scan(&rr.ID, &rr.UserID, &rr.MessageID, &rr.RoomID, &rr.ReceivedAt, &rr.SeenAt,
			&rr.CreatedAt, &rr.UpdatedAt, &rr.IsDeleted); err != nil {
			return nil, dbx.Wrap(err)
		}
		result = append(result, rr)
	}
	if err := rows.Err(); err != nil {
		return nil, dbx.Wrap(err)
	}
	return result, nil
}

func (r *PostgresRepository) LastSeenByUser(ctx context.Context, userID string, roomIDs []string) (map[string]time.Time, error) {
	result := make(map[string]time.Time)
	if len(roomIDs) == 0 {
		return result, nil
	}
	query := `
		SELECT room_id, max(seen_at) FROM read_receipts
		WHERE user_id = $1 AND is_deleted = false AND seen_at IS NOT NULL
			AND room_id IN (` + dbx.Placeholders(2, len(roomIDs)) + `)
		GROUP BY room_id
	`
	args := append([]any{userID}, dbx.Args(roomIDs)...)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, dbx.Wrap(err)
	}
	defer rows.Close()

	for rows.Next() {
		var roomID string
		var seen time.Time
		if err := rows.Scan(&roomID, &seen); err != nil {
			return nil, dbx.Wrap(err)
		}
		result[roomID] = seen
	}
	if err := rows.Err(); err != nil {
		return nil, dbx.Wrap(err)
	}
	return result, nil
}

func (r *PostgresRepository) Upsert(ctx context.Context, rr *models.ReadReceipt) error {
	query := `
		INSERT INTO read_receipts (id, user_id, message_id, room_id, received_at, seen_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id)
		DO UPDATE SET
			received_at = COALESCE(EXCLUDED.received_at, read_receipts.received_at),
			seen_at = COALESCE(EXCLUDED.seen_at, read_receipts.seen_at),
			updated_at = now()
			WHERE read_receipts.user_id = EXCLUDED.user_id
				AND read_receipts.is_deleted = false;
	`
	res, err := r.db.ExecContext(ctx, query, rr.ID, rr.UserID, rr.MessageID, rr.RoomID, rr.ReceivedAt, rr.SeenAt)
	if err != nil {
		return dbx.Wrap(err)
	}
	return dbx.ExpectOne(res, common.ErrorConflict)
}

func (r *PostgresRepository) SoftDelete(ctx context.Context, id, userID string) error {
	query := `
		UPDATE read_receipts SET is_deleted = true, updated_at = now()
		WHERE id = $1 AND user_id = $2 AND is_deleted = false
	`
	res, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return dbx.Wrap(err)
	}
	return dbx.ExpectOne(res, common.ErrorNotFound)
}
