package replica

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/chatsync/internal/dbx"
	"github.com/dmitrijs2005/chatsync/internal/wire"
)

// table describes how a wire record is stored: its table name and the
// columns lifted out of the JSON document for querying.
type table[T wire.Record] struct {
	name   string
	roomID func(T) string
	sortAt func(T) int64
}

var (
	usersTable = table[wire.UserRecord]{
		name:   "users",
		roomID: func(wire.UserRecord) string { return "" },
		sortAt: func(r wire.UserRecord) int64 { return r.UpdatedAt },
	}
	roomsTable = table[wire.RoomRecord]{
		name:   "rooms",
		roomID: func(r wire.RoomRecord) string { return r.ID },
		sortAt: func(r wire.RoomRecord) int64 {
			if r.LastChangeAt != nil {
				return *r.LastChangeAt
			}
			return r.UpdatedAt
		},
	}
	membersTable = table[wire.MemberRecord]{
		name:   "room_members",
		roomID: func(r wire.MemberRecord) string { return r.RoomID },
		sortAt: func(wire.MemberRecord) int64 { return 0 },
	}
	messagesTable = table[wire.MessageRecord]{
		name:   "messages",
		roomID: func(r wire.MessageRecord) string { return r.RoomID },
		sortAt: func(r wire.MessageRecord) int64 {
			if r.CreatedAt == 0 && r.SentAt != nil {
				return *r.SentAt
			}
			return r.CreatedAt
		},
	}
	receiptsTable = table[wire.ReadReceiptRecord]{
		name:   "read_receipts",
		roomID: func(r wire.ReadReceiptRecord) string { return r.RoomID },
		sortAt: func(r wire.ReadReceiptRecord) int64 { return r.UpdatedAt },
	}
	attachmentsTable = table[wire.AttachmentRecord]{
		name:   "attachments",
		roomID: func(r wire.AttachmentRecord) string { return r.RoomID },
		sortAt: func(r wire.AttachmentRecord) int64 { return r.CreatedAt },
	}
)

func (t table[T]) upsert(ctx context.Context, db dbx.DBTX, r T) error {
	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("encode %s[%s]: %w", t.name, r.RecordID(), err)
	}
	q := fmt.Sprintf(`
		INSERT INTO %s (id, room_id, sort_at, data) VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			room_id = excluded.room_id,
			sort_at = excluded.sort_at,
			data = excluded.data`, t.name)
	if _, err := db.ExecContext(ctx, q, r.RecordID(), t.roomID(r), t.sortAt(r), string(data)); err != nil {
		return fmt.Errorf("failed to upsert %s[%s]: %w", t.name, r.RecordID(), err)
	}
	return nil
}

func (t table[T]) delete(ctx context.Context, db dbx.DBTX, id string) error {
	if _, err := db.ExecContext(ctx, fmt.Sprintf(`DELETE FROM %s WHERE id = ?`, t.name), id); err != nil {
		return fmt.Errorf("failed to delete %s[%s]: %w", t.name, id, err)
	}
	return nil
}

func (t table[T]) get(ctx context.Context, db dbx.DBTX, id string) (T, error) {
	var (
		zero T
		data string
	)
	err := db.QueryRowContext(ctx, fmt.Sprintf(`SELECT data FROM %s WHERE id = ?`, t.name), id).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return zero, fmt.Errorf("%s[%s]: %w", t.name, id, ErrNotFound)
	}
	if err != nil {
		return zero, fmt.Errorf("failed to get %s[%s]: %w", t.name, id, err)
	}
	var r T
	if err := json.Unmarshal([]byte(data), &r); err != nil {
		return zero, fmt.Errorf("decode %s[%s]: %w", t.name, id, err)
	}
	return r, nil
}

// list runs a query selecting the data column and decodes every row.
func (t table[T]) list(ctx context.Context, db dbx.DBTX, where string, args ...any) ([]T, error) {
	rows, err := db.QueryContext(ctx, fmt.Sprintf(`SELECT data FROM %s %s`, t.name, where), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", t.name, err)
	}
	defer rows.Close()

	out := []T{}
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("failed to scan %s row: %w", t.name, err)
		}
		var r T
		if err := json.Unmarshal([]byte(data), &r); err != nil {
			return nil, fmt.Errorf("decode %s row: %w", t.name, err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate %s rows: %w", t.name, err)
	}
	return out, nil
}

// apply writes a pulled change set. Records with a pending local change are
// left alone until the outbox has been pushed.
func (t table[T]) apply(ctx context.Context, db dbx.DBTX, cs wire.ChangeSet[T]) error {
	for _, list := range [][]T{cs.Created, cs.Updated} {
		for _, r := range list {
			pending, err := isPending(ctx, db, t.name, r.RecordID())
			if err != nil {
				return err
			}
			if pending {
				continue
			}
			if err := t.upsert(ctx, db, r); err != nil {
				return err
			}
		}
	}
	for _, id := range cs.Deleted {
		if err := t.delete(ctx, db, id); err != nil {
			return err
		}
	}
	return nil
}

// enqueue stores local records and queues them for the next push.
func (t table[T]) enqueue(ctx context.Context, db dbx.DBTX, cs wire.ChangeSet[T]) error {
	for _, list := range [][]T{cs.Created, cs.Updated} {
		for _, r := range list {
			if err := t.upsert(ctx, db, r); err != nil {
				return err
			}
			data, err := json.Marshal(r)
			if err != nil {
				return fmt.Errorf("encode %s[%s]: %w", t.name, r.RecordID(), err)
			}
			if err := queue(ctx, db, t.name, r.RecordID(), false, string(data)); err != nil {
				return err
			}
		}
	}
	for _, id := range cs.Deleted {
		if err := t.delete(ctx, db, id); err != nil {
			return err
		}
		if err := queue(ctx, db, t.name, id, true, ""); err != nil {
			return err
		}
	}
	return nil
}
