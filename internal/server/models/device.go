package models

import "time"

type DevicePlatform string

const (
	PlatformIOS     DevicePlatform = "ios"
	PlatformAndroid DevicePlatform = "android"
	PlatformWindows DevicePlatform = "windows"
	PlatformMacOS   DevicePlatform = "macos"
	PlatformWeb     DevicePlatform = "web"
)

func (p DevicePlatform) Valid() bool {
	switch p {
	case PlatformIOS, PlatformAndroid, PlatformWindows, PlatformMacOS, PlatformWeb:
		return true
	}
	return false
}

// Device is a push notification target registered by a user.
type Device struct {
	ID        string
	UserID    string
	Name      string
	Token     string
	Platform  DevicePlatform
	CreatedAt time.Time
}
