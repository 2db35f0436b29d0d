package models

import "time"

// Room is a chat room. A nil Name marks a one-to-one room.
type Room struct {
	ID         string
	Name       *string
	PictureURI *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
	IsDeleted  bool
}

// Membership joins a user to a room. It has no id of its own; rows are
// addressed by (RoomID, UserID). A tombstoned membership is revived when the
// user joins again.
type Membership struct {
	RoomID    string
	UserID    string
	CreatedAt time.Time
	UpdatedAt time.Time
	IsDeleted bool
}

type RoomPreferences struct {
	UserID            string
	RoomID            string
	IsMuted           bool
	ShouldStillNotify bool
	MutedUntil        *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Silenced reports whether notifications for the room should be suppressed at now.
func (p *RoomPreferences) Silenced(now time.Time) bool {
	if p == nil || !p.IsMuted || p.ShouldStillNotify {
		return false
	}
	if p.MutedUntil != nil && !p.MutedUntil.After(now) {
		return false
	}
	return true
}
