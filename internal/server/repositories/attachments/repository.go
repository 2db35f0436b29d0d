// Package attachments stores message attachment metadata. The encrypted
// payload itself lives in object storage under CipherURI.
package attachments

import (
	"context"

	"github.com/dmitrijs2005/chatsync/internal/server/models"
)

type Repository interface {
	FindByID(ctx context.Context, id string) (*models.Attachment, error)
	ListByMessages(ctx context.Context, messageIDs []string) ([]*models.Attachment, error)
	// Upsert inserts or updates by id; rows owned by another user yield
	// common.ErrorConflict.
	Upsert(ctx context.Context, a *models.Attachment) error
}
