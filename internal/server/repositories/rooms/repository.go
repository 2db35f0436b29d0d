// Package rooms stores chat rooms.
package rooms

import (
	"context"

	"github.com/dmitrijs2005/chatsync/internal/server/models"
)

// Repository reads return tombstoned rooms too; callers check IsDeleted.
type Repository interface {
	FindByID(ctx context.Context, id string) (*models.Room, error)
	FindByIDs(ctx context.Context, ids []string) ([]*models.Room, error)
	// Upsert inserts or updates by id. A tombstoned room is never revived:
	// the call returns common.ErrorConflict instead.
	Upsert(ctx context.Context, room *models.Room) error
	SoftDelete(ctx context.Context, id string) error
	Touch(ctx context.Context, id string) error
}
