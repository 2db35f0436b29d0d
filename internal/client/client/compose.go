package client

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/chatsync/internal/wire"
	"github.com/dmitrijs2005/chatsync/internal/timex"
)

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

func member(roomID, userID string) wire.MemberRecord {
	return wire.MemberRecord{
		ID:     wire.MemberKey{RoomID: roomID, UserID: userID}.String(),
		RoomID: roomID,
		UserID: userID,
	}
}

// NewRoom builds the batch that creates a room with the caller and the
// given users as members. It returns the room id and the changes.
func NewRoom(userID string, name string, memberIDs []string, now time.Time) (string, *wire.Changes) {
	roomID := uuid.NewString()
	c := emptyChanges()

	room := wire.RoomRecord{ID: roomID, CreatedAt: timex.Millis(now), UpdatedAt: timex.Millis(now)}
	if n := strings.TrimSpace(name); n != "" {
		room.Name = &n
	}
	c.Rooms.Created = append(c.Rooms.Created, room)

	c.RoomMembers.Created = append(c.RoomMembers.Created, member(roomID, userID))
	for _, id := range memberIDs {
		if id == "" || id == userID {
			continue
		}
		c.RoomMembers.Created = append(c.RoomMembers.Created, member(roomID, id))
	}
	return roomID, c
}

// NewMessage builds a message sent by userID. The text travels as the
// message cipher.
func NewMessage(userID, roomID, text string, now time.Time) (string, *wire.Changes) {
	id := uuid.NewString()
	sentAt := timex.Millis(now)
	c := emptyChanges()
	c.Messages.Created = append(c.Messages.Created, wire.MessageRecord{
		ID:        id,
		Cipher:    text,
		Type:      "default",
		UserID:    userID,
		RoomID:    roomID,
		SentAt:    &sentAt,
		CreatedAt: sentAt,
	})
	return id, c
}

// ReceiptID is stable per reader and message so repeated reads update one
// receipt.
func ReceiptID(userID, messageID string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(userID+":"+messageID)).String()
}

// MarkSeen builds the read receipts of userID for the given messages.
func MarkSeen(userID string, msgs []wire.MessageRecord, now time.Time) *wire.Changes {
	seen := timex.Millis(now)
	c := emptyChanges()
	for _, m := range msgs {
		if m.UserID == userID {
			continue
		}
		c.ReadReceipts.Created = append(c.ReadReceipts.Created, wire.ReadReceiptRecord{
			ID:         ReceiptID(userID, m.ID),
			UserID:     userID,
			MessageID:  m.ID,
			RoomID:     m.RoomID,
			ReceivedAt: &seen,
			SeenAt:     &seen,
		})
	}
	return c
}

// LeaveRoom builds the batch removing userID from roomID.
func LeaveRoom(userID, roomID string) *wire.Changes {
	c := emptyChanges()
	c.RoomMembers.Deleted = append(c.RoomMembers.Deleted, wire.MemberKey{RoomID: roomID, UserID: userID}.String())
	return c
}
