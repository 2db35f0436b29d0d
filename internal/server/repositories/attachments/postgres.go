package attachments

import (
	"context"

	"github.com/dmitrijs2005/chatsync/internal/common"
	"github.com/dmitrijs2005/chatsync/internal/dbx"
	"github.com/dmitrijs2005/chatsync/internal/server/models"
)

const columns = `id, cipher_uri, type, width, height, user_id, message_id, room_id, created_at, updated_at, is_deleted`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scan(row scanner) (*models.Attachment, error) {
	a := &models.Attachment{}
	err := row.Scan(&a.ID, &a.CipherURI, &a.Type, &a.Width, &a.Height, &a.UserID, &a.MessageID, &a.RoomID,
		&a.CreatedAt, &a.UpdatedAt, &a.IsDeleted)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (r *PostgresRepository) FindByID(ctx context.Context, id string) (*models.Attachment, error) {
	a, err := scan(r.db.QueryRowContext(ctx, `SELECT `+columns+` FROM attachments WHERE id = $1 AND is_deleted = false`, id))
	if err != nil {
		return nil, dbx.Wrap(err)
	}
	return a, nil
}

func (r *PostgresRepository) ListByMessages(ctx context.Context, messageIDs []string) ([]*models.Attachment, error) {
	if len(messageIDs) == 0 {
		return nil, nil
	}
	query := `SELECT ` + columns + ` FROM attachments WHERE message_id IN (` + dbx.Placeholders(1, len(messageIDs)) + `)`
	rows, err := r.db.QueryContext(ctx, query, dbx.Args(messageIDs)...)
	if err != nil {
		return nil, dbx.Wrap(err)
	}
	defer rows.Close()

	var result []*models.Attachment
	for rows.Next() {
		a, err := scan(rows)
		if err != nil {
			return nil, dbx.Wrap(err)
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, dbx.Wrap(err)
	}
	return result, nil
}

func (r *PostgresRepository) Upsert(ctx context.Context, a *models.Attachment) error {
	query := `
		INSERT INTO attachments (id, cipher_uri, type, width, height, user_id, message_id, room_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id)
		DO UPDATE SET
			cipher_uri = EXCLUDED.cipher_uri,
			type = EXCLUDED.type,
			width = EXCLUDED.width,
			height = EXCLUDED.height,
			updated_at = now()
			WHERE attachments.user_id = EXCLUDED.user_id;
	`
	res, err := r.db.ExecContext(ctx, query, a.ID, a.CipherURI, a.Type, a.Width, a.Height, a.UserID, a.MessageID, a.RoomID)
	if err != nil {
		return dbx.Wrap(err)
	}
	return dbx.ExpectOne(res, common.ErrorConflict)
}
