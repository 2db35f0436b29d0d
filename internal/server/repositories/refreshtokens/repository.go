// Package refreshtokens stores the rotating refresh tokens issued at sign-in.
package refreshtokens

import (
	"context"
	"time"

	"github.com/dmitrijs2005/chatsync/internal/server/models"
)

type Repository interface {
	// Create stores token for the user's session, expiring at now+validity.
	Create(ctx context.Context, userID, sessionID, token string, validity time.Duration) error
	// Find returns common.ErrorNotFound for unknown tokens.
	Find(ctx context.Context, token string) (*models.RefreshToken, error)
	// Delete is a no-op for unknown tokens.
	Delete(ctx context.Context, token string) error
}
