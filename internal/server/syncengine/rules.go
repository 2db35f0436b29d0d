package syncengine

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/chatsync/internal/common"
	"github.com/dmitrijs2005/chatsync/internal/dbx"
	"github.com/dmitrijs2005/chatsync/internal/server/models"
	"github.com/dmitrijs2005/chatsync/internal/server/pushnotify"
	"github.com/dmitrijs2005/chatsync/internal/timex"
	"github.com/dmitrijs2005/chatsync/internal/wire"
)

func forbidden(reason string, args ...any) error {
	return fmt.Errorf("%w: %s", common.ErrorForbidden, fmt.Sprintf(reason, args...))
}

func invalid(reason string, args ...any) error {
	return fmt.Errorf("%w: %s", common.ErrorValidation, fmt.Sprintf(reason, args...))
}

func concat[T any](lists ...[]T) []T {
	var out []T
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}

// activeRoom loads a room that exists and is not tombstoned.
func (r *pushRun) activeRoom(ctx context.Context, tx dbx.DBTX, roomID string) (*models.Room, error) {
	room, err := r.e.repos.Rooms(tx).FindByID(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("room %s: %w", roomID, err)
	}
	if room.IsDeleted {
		return nil, fmt.Errorf("%w: room %s is deleted", common.ErrorNotFound, roomID)
	}
	return room, nil
}

// requireMember checks the caller's persisted membership.
func (r *pushRun) requireMember(ctx context.Context, tx dbx.DBTX, roomID string) error {
	ok, err := r.e.repos.Members(tx).IsMember(ctx, roomID, r.userID)
	if err != nil {
		return err
	}
	if !ok {
		return forbidden("not a member of room %s", roomID)
	}
	return nil
}

func (r *pushRun) pushUsers(ctx context.Context) {
	var steps []step
	for _, rec := range concat(r.changes.Users.Created, r.changes.Users.Updated) {
		rec := rec
		steps = append(steps, step{id: rec.ID, apply: func(ctx context.Context, tx dbx.DBTX) (outcome, error) {
			if rec.ID != r.userID {
				return outcome{}, forbidden("users may only update themselves")
			}
			if rec.Name == "" || rec.Email == "" {
				return outcome{}, invalid("name and email are required")
			}
			return outcome{}, r.e.repos.Users(tx).UpdateProfile(ctx, rec.ID, models.UserProfile{
				Name:        rec.Name,
				Email:       rec.Email,
				PictureURI:  rec.PictureURI,
				PublicKey:   rec.PublicKey,
				DerivedSalt: rec.DerivedSalt,
			})
		}})
	}
	r.each(ctx, "users", steps)

	if n := len(r.changes.Users.Deleted); n > 0 {
		r.e.log.Debug(ctx, "user deletions ignored", "user_id", r.userID, "count", n)
	}
}

func (r *pushRun) pushRooms(ctx context.Context) {
	var steps []step
	for _, rec := range concat(r.changes.Rooms.Created, r.changes.Rooms.Updated) {
		rec := rec
		steps = append(steps, step{id: rec.ID, apply: func(ctx context.Context, tx dbx.DBTX) (outcome, error) {
			return r.applyRoom(ctx, tx, rec)
		}})
	}
	for _, id := range r.changes.Rooms.Deleted {
		id := id
		steps = append(steps, step{id: id, apply: func(ctx context.Context, tx dbx.DBTX) (outcome, error) {
			if err := r.requireMember(ctx, tx, id); err != nil {
				return outcome{}, err
			}
			if err := r.e.repos.Rooms(tx).SoftDelete(ctx, id); err != nil {
				return outcome{}, err
			}
			return outcome{room: id}, nil
		}})
	}
	r.each(ctx, "rooms", steps)
}

// applyRoom upserts a room. An unknown room may be created only when the
// batch also makes the caller a member of it; an existing room requires the
// caller to be a member already.
func (r *pushRun) applyRoom(ctx context.Context, tx dbx.DBTX, rec wire.RoomRecord) (outcome, error) {
	if rec.ID == "" {
		return outcome{}, invalid("room id is required")
	}
	rooms := r.e.repos.Rooms(tx)
	room := &models.Room{ID: rec.ID, Name: rec.Name, PictureURI: rec.PictureURI}

	existing, err := rooms.FindByID(ctx, rec.ID)
	switch {
	case errors.Is(err, common.ErrorNotFound):
		if !r.batchJoin[rec.ID] {
			return outcome{}, forbidden("new room %s does not include the caller", rec.ID)
		}
		if err := rooms.Upsert(ctx, room); err != nil {
			return outcome{}, err
		}
		return outcome{room: rec.ID, established: true}, nil
	case err != nil:
		return outcome{}, err
	case existing.IsDeleted:
		return outcome{}, fmt.Errorf("%w: room %s is deleted", common.ErrorConflict, rec.ID)
	}

	if err := r.requireMember(ctx, tx, rec.ID); err != nil {
		return outcome{}, err
	}
	if err := rooms.Upsert(ctx, room); err != nil {
		return outcome{}, err
	}
	return outcome{room: rec.ID}, nil
}

func (r *pushRun) pushMembers(ctx context.Context) {
	var steps []step
	seen := make(map[wire.MemberKey]bool)
	for _, rec := range concat(r.changes.RoomMembers.Created, r.changes.RoomMembers.Updated) {
		rec := rec
		key, err := rec.Key()
		if err != nil {
			r.logRejected(ctx, "room_members", rec.ID, err)
			continue
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		steps = append(steps, step{id: key.String(), apply: func(ctx context.Context, tx dbx.DBTX) (outcome, error) {
			return r.applyMember(ctx, tx, key)
		}})
	}
	for _, id := range r.changes.RoomMembers.Deleted {
		id := id
		steps = append(steps, step{id: id, apply: func(ctx context.Context, tx dbx.DBTX) (outcome, error) {
			return r.deleteMember(ctx, tx, id)
		}})
	}
	r.each(ctx, "room_members", steps)
}

// applyMember adds key.UserID to the room. The caller must be a member
// already, or have created the room in this push and be joining it in the
// same batch.
func (r *pushRun) applyMember(ctx context.Context, tx dbx.DBTX, key wire.MemberKey) (outcome, error) {
	if _, err := r.activeRoom(ctx, tx, key.RoomID); err != nil {
		return outcome{}, err
	}
	member, err := r.e.repos.Members(tx).IsMember(ctx, key.RoomID, r.userID)
	if err != nil {
		return outcome{}, err
	}
	if !member && !(r.isEstablished(key.RoomID) && r.batchJoin[key.RoomID]) {
		return outcome{}, forbidden("not a member of room %s", key.RoomID)
	}
	if _, err := r.e.repos.Users(tx).FindByID(ctx, key.UserID); err != nil {
		return outcome{}, fmt.Errorf("user %s: %w", key.UserID, err)
	}
	if err := r.e.repos.Members(tx).Upsert(ctx, key.RoomID, key.UserID); err != nil {
		return outcome{}, err
	}
	// New co-members need the joining user's profile on their next pull.
	if err := r.e.repos.Users(tx).Touch(ctx, key.UserID); err != nil {
		return outcome{}, err
	}
	if err := r.e.repos.Rooms(tx).Touch(ctx, key.RoomID); err != nil {
		return outcome{}, err
	}
	return outcome{room: key.RoomID}, nil
}

func (r *pushRun) deleteMember(ctx context.Context, tx dbx.DBTX, id string) (outcome, error) {
	key, err := wire.ParseMemberKey(id)
	if err != nil {
		return outcome{}, err
	}
	if key.UserID != r.userID {
		return outcome{}, forbidden("only the member may leave room %s", key.RoomID)
	}
	if err := r.e.repos.Members(tx).SoftDelete(ctx, key.RoomID, key.UserID); err != nil {
		return outcome{}, err
	}
	if err := r.e.repos.Rooms(tx).Touch(ctx, key.RoomID); err != nil {
		return outcome{}, err
	}
	return outcome{room: key.RoomID}, nil
}

func (r *pushRun) pushMessages(ctx context.Context) {
	var steps []step
	for _, rec := range concat(r.changes.Messages.Created, r.changes.Messages.Updated) {
		rec := rec
		steps = append(steps, step{id: rec.ID, apply: func(ctx context.Context, tx dbx.DBTX) (outcome, error) {
			return r.applyMessage(ctx, tx, rec)
		}})
	}
	for _, id := range r.changes.Messages.Deleted {
		id := id
		steps = append(steps, step{id: id, apply: func(ctx context.Context, tx dbx.DBTX) (outcome, error) {
			msgs := r.e.repos.Messages(tx)
			msg, err := msgs.FindByID(ctx, id)
			if err != nil {
				return outcome{}, err
			}
			if msg.UserID != r.userID {
				return outcome{}, forbidden("only the sender may delete a message")
			}
			if err := msgs.SoftDelete(ctx, id, r.userID); err != nil {
				return outcome{}, err
			}
			return outcome{room: msg.RoomID}, nil
		}})
	}
	r.each(ctx, "messages", steps)
}

// applyMessage upserts a message sent by the caller. Memberships applied
// earlier in the same push are already persisted, so a member check covers
// rooms joined in this batch.
func (r *pushRun) applyMessage(ctx context.Context, tx dbx.DBTX, rec wire.MessageRecord) (outcome, error) {
	if rec.ID == "" {
		return outcome{}, invalid("message id is required")
	}
	if rec.UserID != r.userID {
		return outcome{}, forbidden("messages may only be sent as the caller")
	}
	typ := models.MessageType(rec.Type)
	if typ == "" {
		typ = models.MessageTypeDefault
	}
	if !typ.Valid() {
		return outcome{}, invalid("unknown message type %q", rec.Type)
	}
	if _, err := r.activeRoom(ctx, tx, rec.RoomID); err != nil {
		return outcome{}, err
	}
	if err := r.requireMember(ctx, tx, rec.RoomID); err != nil {
		return outcome{}, err
	}

	msg := &models.Message{
		ID:     rec.ID,
		Cipher: rec.Cipher,
		Type:   typ,
		UserID: rec.UserID,
		RoomID: rec.RoomID,
		SentAt: timex.FromMillisPtr(rec.SentAt),
	}
	if rec.CreatedAt > 0 {
		msg.CreatedAt = timex.FromMillis(rec.CreatedAt)
	}
	inserted, err := r.e.repos.Messages(tx).Upsert(ctx, msg)
	if err != nil {
		return outcome{}, err
	}
	out := outcome{room: rec.RoomID}
	if inserted {
		out.created = &pushnotify.NewMessage{MessageID: msg.ID, RoomID: msg.RoomID, SenderID: msg.UserID}
	}
	return out, nil
}

func (r *pushRun) pushReadReceipts(ctx context.Context) {
	var steps []step
	for _, rec := range concat(r.changes.ReadReceipts.Created, r.changes.ReadReceipts.Updated) {
		rec := rec
		steps = append(steps, step{id: rec.ID, apply: func(ctx context.Context, tx dbx.DBTX) (outcome, error) {
			return r.applyReadReceipt(ctx, tx, rec)
		}})
	}
	for _, id := range r.changes.ReadReceipts.Deleted {
		id := id
		steps = append(steps, step{id: id, apply: func(ctx context.Context, tx dbx.DBTX) (outcome, error) {
			receipts := r.e.repos.ReadReceipts(tx)
			rr, err := receipts.FindByID(ctx, id)
			if err != nil {
				return outcome{}, err
			}
			if rr.UserID != r.userID {
				return outcome{}, forbidden("read receipt belongs to another user")
			}
			if err := receipts.SoftDelete(ctx, id, r.userID); err != nil {
				return outcome{}, err
			}
			return outcome{room: rr.RoomID}, nil
		}})
	}
	r.each(ctx, "read_receipts", steps)
}

func (r *pushRun) applyReadReceipt(ctx context.Context, tx dbx.DBTX, rec wire.ReadReceiptRecord) (outcome, error) {
	if rec.ID == "" {
		return outcome{}, invalid("read receipt id is required")
	}
	if rec.UserID != r.userID {
		return outcome{}, forbidden("read receipts may only be written for the caller")
	}
	if _, err := r.activeRoom(ctx, tx, rec.RoomID); err != nil {
		return outcome{}, err
	}
	if err := r.requireMember(ctx, tx, rec.RoomID); err != nil {
		return outcome{}, err
	}
	msg, err := r.e.repos.Messages(tx).FindByID(ctx, rec.MessageID)
	if err != nil {
		return outcome{}, fmt.Errorf("message %s: %w", rec.MessageID, err)
	}
	if msg.RoomID != rec.RoomID {
		return outcome{}, invalid("message %s is not in room %s", rec.MessageID, rec.RoomID)
	}

	err = r.e.repos.ReadReceipts(tx).Upsert(ctx, &models.ReadReceipt{
		ID:         rec.ID,
		UserID:     rec.UserID,
		MessageID:  rec.MessageID,
		RoomID:     rec.RoomID,
		ReceivedAt: timex.FromMillisPtr(rec.ReceivedAt),
		SeenAt:     timex.FromMillisPtr(rec.SeenAt),
	})
	if err != nil {
		return outcome{}, err
	}
	return outcome{room: rec.RoomID}, nil
}

// pushAttachments applies new attachments. Attachments are append-only, so
// deletions are ignored.
func (r *pushRun) pushAttachments(ctx context.Context) {
	var steps []step
	for _, rec := range concat(r.changes.Attachments.Created, r.changes.Attachments.Updated) {
		rec := rec
		steps = append(steps, step{id: rec.ID, apply: func(ctx context.Context, tx dbx.DBTX) (outcome, error) {
			return outcome{}, r.applyAttachment(ctx, tx, rec)
		}})
	}
	r.each(ctx, "attachments", steps)

	if n := len(r.changes.Attachments.Deleted); n > 0 {
		r.e.log.Debug(ctx, "attachment deletions ignored", "user_id", r.userID, "count", n)
	}
}

func (r *pushRun) applyAttachment(ctx context.Context, tx dbx.DBTX, rec wire.AttachmentRecord) error {
	if rec.ID == "" {
		return invalid("attachment id is required")
	}
	if rec.UserID != r.userID {
		return forbidden("attachments may only be added by the caller")
	}
	if rec.CipherURI == "" {
		return invalid("cipher_uri is required")
	}
	typ := models.AttachmentType(rec.Type)
	if !typ.Valid() {
		return invalid("unknown attachment type %q", rec.Type)
	}
	if _, err := r.activeRoom(ctx, tx, rec.RoomID); err != nil {
		return err
	}
	if err := r.requireMember(ctx, tx, rec.RoomID); err != nil {
		return err
	}
	msg, err := r.e.repos.Messages(tx).FindByID(ctx, rec.MessageID)
	if err != nil {
		return fmt.Errorf("message %s: %w", rec.MessageID, err)
	}
	if msg.RoomID != rec.RoomID {
		return invalid("message %s is not in room %s", rec.MessageID, rec.RoomID)
	}
	return r.e.repos.Attachments(tx).Upsert(ctx, &models.Attachment{
		ID:        rec.ID,
		CipherURI: rec.CipherURI,
		Type:      typ,
		Width:     rec.Width,
		Height:    rec.Height,
		UserID:    rec.UserID,
		MessageID: rec.MessageID,
		RoomID:    rec.RoomID,
	})
}
