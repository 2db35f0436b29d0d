// Package messages stores chat messages.
package messages

import (
	"context"
	"time"

	"github.com/dmitrijs2005/chatsync/internal/server/models"
)

type Repository interface {
	// FindByID returns the message whether active or tombstoned.
	FindByID(ctx context.Context, id string) (*models.Message, error)
	// ListByRooms returns every message of the rooms, tombstones included.
	ListByRooms(ctx context.Context, roomIDs []string) ([]*models.Message, error)
	// ListBefore returns up to limit active messages of the room created
	// before the given time, newest first.
	ListBefore(ctx context.Context, roomID string, before time.Time, limit int) ([]*models.Message, error)
	// Upsert inserts or updates the message by id and reports whether a new
	// row was inserted. Updating someone else's or a tombstoned message
	// returns common.ErrorConflict. A zero CreatedAt lets the store assign it.
	Upsert(ctx context.Context, msg *models.Message) (bool, error)
	// SoftDelete tombstones the message if userID sent it.
	SoftDelete(ctx context.Context, id, userID string) error
}
