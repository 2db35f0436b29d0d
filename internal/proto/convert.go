// Package proto holds the generated ChatSync gRPC bindings (see
// api/chatsync/v1/chatsync.proto) and their conversions to and from the
// sync wire records.
package proto

//go:generate protoc -I ../.. --go_out=../.. --go_opt=module=github.com/dmitrijs2005/chatsync --go-grpc_out=../.. --go-grpc_opt=module=github.com/dmitrijs2005/chatsync api/chatsync/v1/chatsync.proto

import (
	"github.com/dmitrijs2005/chatsync/internal/wire"
)

func listToPB[W any, P any](in []W, conv func(W) *P) []*P {
	out := make([]*P, 0, len(in))
	for _, r := range in {
		out = append(out, conv(r))
	}
	return out
}

// listFromPB never returns nil so empty tables stay [] on the wire.
func listFromPB[P any, W any](in []*P, conv func(*P) W) []W {
	out := make([]W, 0, len(in))
	for _, r := range in {
		out = append(out, conv(r))
	}
	return out
}

func ids(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}

func intPtr(v *int32) *int {
	if v == nil {
		return nil
	}
	n := int(*v)
	return &n
}

func int32Ptr(v *int) *int32 {
	if v == nil {
		return nil
	}
	n := int32(*v)
	return &n
}

func UserToPB(r wire.UserRecord) *User {
	return &User{
		Id:             r.ID,
		Name:           r.Name,
		Email:          r.Email,
		PictureUri:     r.PictureURI,
		Role:           r.Role,
		PublicKey:      r.PublicKey,
		DerivedSalt:    r.DerivedSalt,
		IsFollowingMe:  r.IsFollowingMe,
		IsFollowedByMe: r.IsFollowedByMe,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

func UserFromPB(p *User) wire.UserRecord {
	return wire.UserRecord{
		ID:             p.GetId(),
		Name:           p.GetName(),
		Email:          p.GetEmail(),
		PictureURI:     p.PictureUri,
		Role:           p.GetRole(),
		PublicKey:      p.PublicKey,
		DerivedSalt:    p.DerivedSalt,
		IsFollowingMe:  p.IsFollowingMe,
		IsFollowedByMe: p.IsFollowedByMe,
		CreatedAt:      p.GetCreatedAt(),
		UpdatedAt:      p.GetUpdatedAt(),
	}
}

func RoomToPB(r wire.RoomRecord) *Room {
	return &Room{
		Id:                r.ID,
		Name:              r.Name,
		PictureUri:        r.PictureURI,
		LastMessageId:     r.LastMessageID,
		LastChangeAt:      r.LastChangeAt,
		LastReadAt:        r.LastReadAt,
		IsMuted:           r.IsMuted,
		ShouldStillNotify: r.ShouldStillNotify,
		MutedUntil:        r.MutedUntil,
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
	}
}

func RoomFromPB(p *Room) wire.RoomRecord {
	return wire.RoomRecord{
		ID:                p.GetId(),
		Name:              p.Name,
		PictureURI:        p.PictureUri,
		LastMessageID:     p.LastMessageId,
		LastChangeAt:      p.LastChangeAt,
		LastReadAt:        p.LastReadAt,
		IsMuted:           p.GetIsMuted(),
		ShouldStillNotify: p.GetShouldStillNotify(),
		MutedUntil:        p.MutedUntil,
		CreatedAt:         p.GetCreatedAt(),
		UpdatedAt:         p.GetUpdatedAt(),
	}
}

func MemberToPB(r wire.MemberRecord) *RoomMember {
	return &RoomMember{Id: r.ID, RoomId: r.RoomID, UserId: r.UserID}
}

func MemberFromPB(p *RoomMember) wire.MemberRecord {
	return wire.MemberRecord{ID: p.GetId(), RoomID: p.GetRoomId(), UserID: p.GetUserId()}
}

func MessageToPB(r wire.MessageRecord) *Message {
	return &Message{
		Id:        r.ID,
		Cipher:    r.Cipher,
		Type:      r.Type,
		UserId:    r.UserID,
		RoomId:    r.RoomID,
		SentAt:    r.SentAt,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func MessageFromPB(p *Message) wire.MessageRecord {
	return wire.MessageRecord{
		ID:        p.GetId(),
		Cipher:    p.GetCipher(),
		Type:      p.GetType(),
		UserID:    p.GetUserId(),
		RoomID:    p.GetRoomId(),
		SentAt:    p.SentAt,
		CreatedAt: p.GetCreatedAt(),
		UpdatedAt: p.GetUpdatedAt(),
	}
}

func ReadReceiptToPB(r wire.ReadReceiptRecord) *ReadReceipt {
	return &ReadReceipt{
		Id:         r.ID,
		UserId:     r.UserID,
		MessageId:  r.MessageID,
		RoomId:     r.RoomID,
		ReceivedAt: r.ReceivedAt,
		SeenAt:     r.SeenAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

func ReadReceiptFromPB(p *ReadReceipt) wire.ReadReceiptRecord {
	return wire.ReadReceiptRecord{
		ID:         p.GetId(),
		UserID:     p.GetUserId(),
		MessageID:  p.GetMessageId(),
		RoomID:     p.GetRoomId(),
		ReceivedAt: p.ReceivedAt,
		SeenAt:     p.SeenAt,
		UpdatedAt:  p.GetUpdatedAt(),
	}
}

func AttachmentToPB(r wire.AttachmentRecord) *Attachment {
	return &Attachment{
		Id:        r.ID,
		CipherUri: r.CipherURI,
		Type:      r.Type,
		Width:     int32Ptr(r.Width),
		Height:    int32Ptr(r.Height),
		UserId:    r.UserID,
		MessageId: r.MessageID,
		RoomId:    r.RoomID,
		CreatedAt: r.CreatedAt,
	}
}

func AttachmentFromPB(p *Attachment) wire.AttachmentRecord {
	return wire.AttachmentRecord{
		ID:        p.GetId(),
		CipherURI: p.GetCipherUri(),
		Type:      p.GetType(),
		Width:     intPtr(p.Width),
		Height:    intPtr(p.Height),
		UserID:    p.GetUserId(),
		MessageID: p.GetMessageId(),
		RoomID:    p.GetRoomId(),
		CreatedAt: p.GetCreatedAt(),
	}
}

// ChangesToPB converts a change set for the wire. nil stays nil.
func ChangesToPB(c *wire.Changes) *Changes {
	if c == nil {
		return nil
	}
	return &Changes{
		Users: &UserChanges{
			Created: listToPB(c.Users.Created, UserToPB),
			Updated: listToPB(c.Users.Updated, UserToPB),
			Deleted: ids(c.Users.Deleted),
		},
		Rooms: &RoomChanges{
			Created: listToPB(c.Rooms.Created, RoomToPB),
			Updated: listToPB(c.Rooms.Updated, RoomToPB),
			Deleted: ids(c.Rooms.Deleted),
		},
		RoomMembers: &RoomMemberChanges{
			Created: listToPB(c.RoomMembers.Created, MemberToPB),
			Updated: listToPB(c.RoomMembers.Updated, MemberToPB),
			Deleted: ids(c.RoomMembers.Deleted),
		},
		Messages: &MessageChanges{
			Created: listToPB(c.Messages.Created, MessageToPB),
			Updated: listToPB(c.Messages.Updated, MessageToPB),
			Deleted: ids(c.Messages.Deleted),
		},
		ReadReceipts: &ReadReceiptChanges{
			Created: listToPB(c.ReadReceipts.Created, ReadReceiptToPB),
			Updated: listToPB(c.ReadReceipts.Updated, ReadReceiptToPB),
			Deleted: ids(c.ReadReceipts.Deleted),
		},
		Attachments: &AttachmentChanges{
			Created: listToPB(c.Attachments.Created, AttachmentToPB),
			Updated: listToPB(c.Attachments.Updated, AttachmentToPB),
			Deleted: ids(c.Attachments.Deleted),
		},
	}
}

// ChangesFromPB converts a received change set. nil stays nil; missing
// tables come back as empty change sets.
func ChangesFromPB(p *Changes) *wire.Changes {
	if p == nil {
		return nil
	}
	return &wire.Changes{
		Users: wire.ChangeSet[wire.UserRecord]{
			Created: listFromPB(p.GetUsers().GetCreated(), UserFromPB),
			Updated: listFromPB(p.GetUsers().GetUpdated(), UserFromPB),
			Deleted: ids(p.GetUsers().GetDeleted()),
		},
		Rooms: wire.ChangeSet[wire.RoomRecord]{
			Created: listFromPB(p.GetRooms().GetCreated(), RoomFromPB),
			Updated: listFromPB(p.GetRooms().GetUpdated(), RoomFromPB),
			Deleted: ids(p.GetRooms().GetDeleted()),
		},
		RoomMembers: wire.ChangeSet[wire.MemberRecord]{
			Created: listFromPB(p.GetRoomMembers().GetCreated(), MemberFromPB),
			Updated: listFromPB(p.GetRoomMembers().GetUpdated(), MemberFromPB),
			Deleted: ids(p.GetRoomMembers().GetDeleted()),
		},
		Messages: wire.ChangeSet[wire.MessageRecord]{
			Created: listFromPB(p.GetMessages().GetCreated(), MessageFromPB),
			Updated: listFromPB(p.GetMessages().GetUpdated(), MessageFromPB),
			Deleted: ids(p.GetMessages().GetDeleted()),
		},
		ReadReceipts: wire.ChangeSet[wire.ReadReceiptRecord]{
			Created: listFromPB(p.GetReadReceipts().GetCreated(), ReadReceiptFromPB),
			Updated: listFromPB(p.GetReadReceipts().GetUpdated(), ReadReceiptFromPB),
			Deleted: ids(p.GetReadReceipts().GetDeleted()),
		},
		Attachments: wire.ChangeSet[wire.AttachmentRecord]{
			Created: listFromPB(p.GetAttachments().GetCreated(), AttachmentFromPB),
			Updated: listFromPB(p.GetAttachments().GetUpdated(), AttachmentFromPB),
			Deleted: ids(p.GetAttachments().GetDeleted()),
		},
	}
}

func PullResultToPB(r *wire.PullResult) *PullResponse {
	return &PullResponse{Changes: ChangesToPB(&r.Changes), Timestamp: r.Timestamp}
}

func PullResultFromPB(p *PullResponse) *wire.PullResult {
	res := &wire.PullResult{Timestamp: p.GetTimestamp()}
	if c := ChangesFromPB(p.GetChanges()); c != nil {
		res.Changes = *c
	} else {
		res.Changes = *wire.EmptyChanges()
	}
	return res
}

func MessagePageToPB(page *wire.MessagePage) *GetMessagesResponse {
	return &GetMessagesResponse{
		Messages: listToPB(page.Messages, MessageToPB),
		Cursor:   page.Cursor,
		HasMore:  page.HasMore,
	}
}

func MessagePageFromPB(p *GetMessagesResponse) *wire.MessagePage {
	return &wire.MessagePage{
		Messages: listFromPB(p.GetMessages(), MessageFromPB),
		Cursor:   p.Cursor,
		HasMore:  p.GetHasMore(),
	}
}
