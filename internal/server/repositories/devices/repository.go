// Package devices stores push notification targets.
package devices

import (
	"context"

	"github.com/dmitrijs2005/chatsync/internal/server/models"
)

type Repository interface {
	// DeleteByToken removes the device registered under token, whoever owns it.
	DeleteByToken(ctx context.Context, token string) error
	Create(ctx context.Context, d *models.Device) error
	DeleteByTokens(ctx context.Context, userID string, tokens []string) error
	ListByUsers(ctx context.Context, userIDs []string, platform models.DevicePlatform) ([]*models.Device, error)
}
