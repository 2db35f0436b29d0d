// Package metadata stores small key/value state of the local replica:
// the sync watermark, the signed-in user and the server-issued session.
package metadata

import (
	"context"
)

const (
	keyLastPulledAt = "last_pulled_at"
	keyAccessToken  = "access_token"
	keyRefreshToken = "refresh_token"
	keySessionID    = "session_id"
	keyUserID       = "user_id"
)

// Session is what a client needs to resume after a restart. UserID outlives
// the tokens so the next login can tell whether the account changed.
type Session struct {
	UserID       string
	AccessToken  string
	RefreshToken string
	SessionID    string
}

// SignedIn reports whether the session still holds an access token.
func (s Session) SignedIn() bool {
	return s.UserID != "" && s.AccessToken != ""
}

type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error

	Session(ctx context.Context) (Session, error)
	SaveSession(ctx context.Context, s Session) error
	SaveTokens(ctx context.Context, accessToken, refreshToken string) error
	ForgetTokens(ctx context.Context) error

	LastPulledAt(ctx context.Context) (*int64, error)
	SetLastPulledAt(ctx context.Context, ts int64) error
	ResetLastPulledAt(ctx context.Context) error
}
