package replica

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/chatsync/internal/dbx"
	"github.com/dmitrijs2005/chatsync/internal/wire"
)

// queue replaces any earlier pending change of the same record.
func queue(ctx context.Context, db dbx.DBTX, tbl, id string, deleted bool, data string) error {
	if _, err := db.ExecContext(ctx, `DELETE FROM outbox WHERE tbl = ? AND record_id = ?`, tbl, id); err != nil {
		return fmt.Errorf("failed to dequeue %s[%s]: %w", tbl, id, err)
	}
	var payload sql.NullString
	if !deleted {
		payload = sql.NullString{String: data, Valid: true}
	}
	_, err := db.ExecContext(ctx, `INSERT INTO outbox (tbl, record_id, deleted, data) VALUES (?, ?, ?, ?)`,
		tbl, id, deleted, payload)
	if err != nil {
		return fmt.Errorf("failed to queue %s[%s]: %w", tbl, id, err)
	}
	return nil
}

func isPending(ctx context.Context, db dbx.DBTX, tbl, id string) (bool, error) {
	var n int
	err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM outbox WHERE tbl = ? AND record_id = ?`, tbl, id).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("failed to check outbox %s[%s]: %w", tbl, id, err)
	}
	return n > 0, nil
}

func addPending[T wire.Record](cs *wire.ChangeSet[T], id string, deleted bool, data sql.NullString) error {
	if deleted {
		cs.Deleted = append(cs.Deleted, id)
		return nil
	}
	var r T
	if err := json.Unmarshal([]byte(data.String), &r); err != nil {
		return fmt.Errorf("decode outbox record %s: %w", id, err)
	}
	cs.Created = append(cs.Created, r)
	return nil
}

func emptyChanges() *wire.Changes {
	return &wire.Changes{
		Users:        wire.Extract[wire.UserRecord](nil),
		Rooms:        wire.Extract[wire.RoomRecord](nil),
		RoomMembers:  wire.Extract[wire.MemberRecord](nil),
		Messages:     wire.Extract[wire.MessageRecord](nil),
		ReadReceipts: wire.Extract[wire.ReadReceiptRecord](nil),
		Attachments:  wire.Extract[wire.AttachmentRecord](nil),
	}
}

// Pending returns the queued local changes and the sequence number of the
// newest one. A zero sequence means the outbox is empty.
func (s *Store) Pending(ctx context.Context) (*wire.Changes, int64, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT seq, tbl, record_id, deleted, data FROM outbox ORDER BY seq`)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read outbox: %w", err)
	}
	defer rows.Close()

	changes := emptyChanges()
	var last int64
	for rows.Next() {
		var (
			seq     int64
			tbl, id string
			deleted bool
			data    sql.NullString
		)
		if err := rows.Scan(&seq, &tbl, &id, &deleted, &data); err != nil {
			return nil, 0, fmt.Errorf("failed to scan outbox row: %w", err)
		}
		last = seq

		switch tbl {
		case usersTable.name:
			err = addPending(&changes.Users, id, deleted, data)
		case roomsTable.name:
			err = addPending(&changes.Rooms, id, deleted, data)
		case membersTable.name:
			err = addPending(&changes.RoomMembers, id, deleted, data)
		case messagesTable.name:
			err = addPending(&changes.Messages, id, deleted, data)
		case receiptsTable.name:
			err = addPending(&changes.ReadReceipts, id, deleted, data)
		case attachmentsTable.name:
			err = addPending(&changes.Attachments, id, deleted, data)
		default:
			err = fmt.Errorf("outbox row %d: unknown table %q", seq, tbl)
		}
		if err != nil {
			return nil, 0, err
		}
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate outbox: %w", err)
	}
	return changes, last, nil
}

// Ack drops every queued change up to and including seq.
func (s *Store) Ack(ctx context.Context, seq int64) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM outbox WHERE seq <= ?`, seq); err != nil {
		return fmt.Errorf("failed to ack outbox: %w", err)
	}
	return nil
}
