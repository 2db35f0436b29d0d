// Package preferences stores per-user room preferences (mute settings).
package preferences

import (
	"context"

	"github.com/dmitrijs2005/chatsync/internal/server/models"
)

type Repository interface {
	Find(ctx context.Context, userID, roomID string) (*models.RoomPreferences, error)
	ListByUser(ctx context.Context, userID string) ([]*models.RoomPreferences, error)
	ListByRoom(ctx context.Context, roomID string) ([]*models.RoomPreferences, error)
	Upsert(ctx context.Context, p *models.RoomPreferences) error
}
