// Package common contains shared constants and sentinel errors used across
// chatsync components.
package common

const (
	// AccessTokenHeaderName is the gRPC metadata key used to carry the
	// access token on outbound requests.
	AccessTokenHeaderName = "access_token"
)
