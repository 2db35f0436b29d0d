package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRoomPreferences_Silenced(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	later := now.Add(time.Hour)
	earlier := now.Add(-time.Hour)

	tests := []struct {
		name string
		p    *RoomPreferences
		want bool
	}{
		{name: "nil", p: nil, want: false},
		{name: "not muted", p: &RoomPreferences{}, want: false},
		{name: "muted", p: &RoomPreferences{IsMuted: true}, want: true},
		{name: "muted but notify", p: &RoomPreferences{IsMuted: true, ShouldStillNotify: true}, want: false},
		{name: "muted until later", p: &RoomPreferences{IsMuted: true, MutedUntil: &later}, want: true},
		{name: "mute expired", p: &RoomPreferences{IsMuted: true, MutedUntil: &earlier}, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.p.Silenced(now))
		})
	}
}

func TestEnumsValid(t *testing.T) {
	assert.True(t, MessageTypeSharedKey.Valid())
	assert.False(t, MessageType("poll").Valid())
	assert.True(t, AttachmentTypeVideo.Valid())
	assert.False(t, AttachmentType("gif").Valid())
	assert.True(t, PlatformAndroid.Valid())
	assert.False(t, DevicePlatform("blackberry").Valid())
}
