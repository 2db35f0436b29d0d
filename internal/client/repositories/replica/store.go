// Package replica is the client's local copy of the synced tables together
// with an outbox of changes made while offline.
package replica

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"

	"github.com/dmitrijs2005/chatsync/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/chatsync/internal/dbx"
	"github.com/dmitrijs2005/chatsync/internal/wire"
)

var ErrNotFound = errors.New("not found in local replica")

type Store struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Apply writes a pull result and advances the watermark in one transaction.
func (s *Store) Apply(ctx context.Context, res *wire.PullResult) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		c := res.Changes
		steps := []func() error{
			func() error { return usersTable.apply(ctx, tx, c.Users) },
			func() error { return roomsTable.apply(ctx, tx, c.Rooms) },
			func() error { return membersTable.apply(ctx, tx, c.RoomMembers) },
			func() error { return messagesTable.apply(ctx, tx, c.Messages) },
			func() error { return receiptsTable.apply(ctx, tx, c.ReadReceipts) },
			func() error { return attachmentsTable.apply(ctx, tx, c.Attachments) },
		}
		for _, step := range steps {
			if err := step(); err != nil {
				return err
			}
		}
		return metadata.NewSQLiteRepository(tx).SetLastPulledAt(ctx, res.Timestamp)
	})
}

// Enqueue records local changes and queues them for push.
func (s *Store) Enqueue(ctx context.Context, c *wire.Changes) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		steps := []func() error{
			func() error { return usersTable.enqueue(ctx, tx, c.Users) },
			func() error { return roomsTable.enqueue(ctx, tx, c.Rooms) },
			func() error { return membersTable.enqueue(ctx, tx, c.RoomMembers) },
			func() error { return messagesTable.enqueue(ctx, tx, c.Messages) },
			func() error { return receiptsTable.enqueue(ctx, tx, c.ReadReceipts) },
			func() error { return attachmentsTable.enqueue(ctx, tx, c.Attachments) },
		}
		for _, step := range steps {
			if err := step(); err != nil {
				return err
			}
		}
		return nil
	})
}

// LastPulledAt returns the watermark, or nil before the first pull.
func (s *Store) LastPulledAt(ctx context.Context) (*int64, error) {
	return metadata.NewSQLiteRepository(s.db).LastPulledAt(ctx)
}

// Rooms returns rooms, most recently active first.
func (s *Store) Rooms(ctx context.Context) ([]wire.RoomRecord, error) {
	return roomsTable.list(ctx, s.db, `ORDER BY sort_at DESC, id`)
}

func (s *Store) Room(ctx context.Context, id string) (wire.RoomRecord, error) {
	return roomsTable.get(ctx, s.db, id)
}

func (s *Store) RoomIDs(ctx context.Context) ([]string, error) {
	rooms, err := s.Rooms(ctx)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(rooms))
	for _, r := range rooms {
		ids = append(ids, r.ID)
	}
	return ids, nil
}

// Messages returns up to limit of the newest messages of a room in
// chronological order. A non-positive limit returns all of them.
func (s *Store) Messages(ctx context.Context, roomID string, limit int) ([]wire.MessageRecord, error) {
	where := `WHERE room_id = ? ORDER BY sort_at DESC, id DESC`
	args := []any{roomID}
	if limit > 0 {
		where += ` LIMIT ?`
		args = append(args, limit)
	}
	msgs, err := messagesTable.list(ctx, s.db, where, args...)
	if err != nil {
		return nil, err
	}
	slices.Reverse(msgs)
	return msgs, nil
}

func (s *Store) Members(ctx context.Context, roomID string) ([]wire.MemberRecord, error) {
	return membersTable.list(ctx, s.db, `WHERE room_id = ? ORDER BY id`, roomID)
}

func (s *Store) User(ctx context.Context, id string) (wire.UserRecord, error) {
	return usersTable.get(ctx, s.db, id)
}

func (s *Store) Users(ctx context.Context) ([]wire.UserRecord, error) {
	return usersTable.list(ctx, s.db, `ORDER BY id`)
}

func (s *Store) ReadReceipts(ctx context.Context, roomID string) ([]wire.ReadReceiptRecord, error) {
	return receiptsTable.list(ctx, s.db, `WHERE room_id = ? ORDER BY sort_at`, roomID)
}

func (s *Store) Attachments(ctx context.Context, roomID string) ([]wire.AttachmentRecord, error) {
	return attachmentsTable.list(ctx, s.db, `WHERE room_id = ? ORDER BY sort_at`, roomID)
}

// Reset wipes the replica, the outbox and the watermark. Used when another
// account signs in on this database.
func (s *Store) Reset(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		for _, name := range []string{
			usersTable.name, roomsTable.name, membersTable.name,
			messagesTable.name, receiptsTable.name, attachmentsTable.name, "outbox",
		} {
			if _, err := tx.ExecContext(ctx, fmt.Sprintf(`DELETE FROM %s`, name)); err != nil {
				return fmt.Errorf("failed to reset %s: %w", name, err)
			}
		}
		return metadata.NewSQLiteRepository(tx).ResetLastPulledAt(ctx)
	})
}

func (s *Store) Message(ctx context.Context, id string) (wire.MessageRecord, error) {
	return messagesTable.get(ctx, s.db, id)
}

func (s *Store) Attachment(ctx context.Context, id string) (wire.AttachmentRecord, error) {
	return attachmentsTable.get(ctx, s.db, id)
}
