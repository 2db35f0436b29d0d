package models

import "time"

// RefreshToken is one rotating refresh token. SessionID is carried over on
// rotation so a session keeps its id for as long as it keeps refreshing.
type RefreshToken struct {
	UserID    string
	SessionID string
	Token     string
	Expires   time.Time
	CreatedAt time.Time
}
