// Package users stores accounts and the follower graph.
package users

import (
	"context"
	"time"

	"github.com/dmitrijs2005/chatsync/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	// FindByID returns an active user.
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	// FindByIDs returns the active users among ids, in no particular order.
	FindByIDs(ctx context.Context, ids []string) ([]*models.User, error)
	UpdateProfile(ctx context.Context, id string, profile models.UserProfile) error
	TouchLastAccess(ctx context.Context, id string) error
	// Touch bumps updated_at so the users are re-sent on the next pull.
	Touch(ctx context.Context, ids ...string) error
	// Search lists active users matching q. Take <= 0 means no limit.
	Search(ctx context.Context, q models.UserQuery) ([]*models.User, error)

	// SetPasswordCode stores a reset code for the user. A code already held
	// by another user yields common.ErrorAlreadyExists.
	SetPasswordCode(ctx context.Context, id, code string, expiresAt time.Time) error
	// FindByPasswordCode returns the active user holding code, including
	// PasswordCode and PasswordCodeExpiresAt.
	FindByPasswordCode(ctx context.Context, code string) (*models.User, error)
	// ResetPassword stores a new password hash and clears the reset code.
	ResetPassword(ctx context.Context, id, passwordHash string) error

	Follow(ctx context.Context, followerID, followingID string) error
	Unfollow(ctx context.Context, followerID, followingID string) error
	// Followers lists the ids of users following userID.
	Followers(ctx context.Context, userID string) ([]string, error)
	// Following lists the ids of users userID follows.
	Following(ctx context.Context, userID string) ([]string, error)
}
