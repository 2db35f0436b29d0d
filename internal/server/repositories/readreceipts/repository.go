// Package readreceipts stores per-user delivery and read acknowledgements.
package readreceipts

import (
	"context"
	"time"

	"github.com/dmitrijs2005/chatsync/internal/server/models"
)

type Repository interface {
	FindByID(ctx context.Context, id string) (*models.ReadReceipt, error)
	// ListChangedByRooms returns receipts of the rooms with updated_at > since,
	// tombstones included.
	ListChangedByRooms(ctx context.Context, roomIDs []string, since time.Time) ([]*models.ReadReceipt, error)
	// LastSeenByUser returns, per room, the latest seen_at among userID's receipts.
	LastSeenByUser(ctx context.Context, userID string, roomIDs []string) (map[string]time.Time, error)
	// Upsert inserts or updates by id. Absent timestamps keep the stored
	// values. Updating someone else's or a tombstoned receipt returns
	// common.ErrorConflict.
	Upsert(ctx context.Context, receipt *models.ReadReceipt) error
	SoftDelete(ctx context.Context, id, userID string) error
}
