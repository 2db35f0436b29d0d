// Package members stores room memberships.
package members

import (
	"context"

	"github.com/dmitrijs2005/chatsync/internal/server/models"
)

type Repository interface {
	// Find returns the membership row whether active or tombstoned.
	Find(ctx context.Context, roomID, userID string) (*models.Membership, error)
	IsMember(ctx context.Context, roomID, userID string) (bool, error)
	// ListByUser returns every membership row of userID, tombstones included.
	ListByUser(ctx context.Context, userID string) ([]*models.Membership, error)
	// ListByRooms returns every membership row of the rooms, tombstones included.
	ListByRooms(ctx context.Context, roomIDs []string) ([]*models.Membership, error)
	// Upsert creates the membership or revives a tombstoned one.
	Upsert(ctx context.Context, roomID, userID string) error
	SoftDelete(ctx context.Context, roomID, userID string) error
}
