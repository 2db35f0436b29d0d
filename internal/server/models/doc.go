// Package models defines server-side entities persisted in the database.
//
// Every entity that takes part in synchronization carries CreatedAt,
// UpdatedAt and IsDeleted. A row with IsDeleted set is a tombstone: it stays
// addressable by id so replays remain idempotent, but it is otherwise
// treated as absent.
package models
