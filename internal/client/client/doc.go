// Package client holds the client side of chat sync: the gRPC client that
// carries the session, the SQLite replica bootstrap and the Syncer that
// reconciles the replica with the server.
//
// Errors that callers are expected to branch on are exposed as sentinels
// (ErrUnavailable, ErrUnauthorized, ErrNotSignedIn) and match with errors.Is.
package client
