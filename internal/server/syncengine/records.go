package syncengine

import (
	"github.com/dmitrijs2005/chatsync/internal/server/models"
	"github.com/dmitrijs2005/chatsync/internal/timex"
	"github.com/dmitrijs2005/chatsync/internal/wire"
)

func userRecord(u *models.User) wire.UserRecord {
	return wire.UserRecord{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		PictureURI:  u.PictureURI,
		Role:        string(u.Role),
		PublicKey:   u.PublicKey,
		DerivedSalt: u.DerivedSalt,
		CreatedAt:   timex.Millis(u.CreatedAt),
		UpdatedAt:   timex.Millis(u.UpdatedAt),
		IsDeleted:   u.IsDeleted,
	}
}

func roomRecord(r *models.Room) wire.RoomRecord {
	return wire.RoomRecord{
		ID:         r.ID,
		Name:       r.Name,
		PictureURI: r.PictureURI,
		CreatedAt:  timex.Millis(r.CreatedAt),
		UpdatedAt:  timex.Millis(r.UpdatedAt),
		IsDeleted:  r.IsDeleted,
	}
}

func memberRecord(m *models.Membership) wire.MemberRecord {
	return wire.MemberRecord{
		ID:        wire.MemberKey{RoomID: m.RoomID, UserID: m.UserID}.String(),
		RoomID:    m.RoomID,
		UserID:    m.UserID,
		IsDeleted: m.IsDeleted,
	}
}

func messageRecord(m *models.Message) wire.MessageRecord {
	return wire.MessageRecord{
		ID:        m.ID,
		Cipher:    m.Cipher,
		Type:      string(m.Type),
		UserID:    m.UserID,
		RoomID:    m.RoomID,
		SentAt:    timex.MillisPtr(m.SentAt),
		CreatedAt: timex.Millis(m.CreatedAt),
		UpdatedAt: timex.Millis(m.UpdatedAt),
		IsDeleted: m.IsDeleted,
	}
}

func readReceiptRecord(r *models.ReadReceipt) wire.ReadReceiptRecord {
	return wire.ReadReceiptRecord{
		ID:         r.ID,
		UserID:     r.UserID,
		MessageID:  r.MessageID,
		RoomID:     r.RoomID,
		ReceivedAt: timex.MillisPtr(r.ReceivedAt),
		SeenAt:     timex.MillisPtr(r.SeenAt),
		UpdatedAt:  timex.Millis(r.UpdatedAt),
		IsDeleted:  r.IsDeleted,
	}
}

func attachmentRecord(a *models.Attachment) wire.AttachmentRecord {
	return wire.AttachmentRecord{
		ID:        a.ID,
		CipherURI: a.CipherURI,
		Type:      string(a.Type),
		Width:     a.Width,
		Height:    a.Height,
		UserID:    a.UserID,
		MessageID: a.MessageID,
		RoomID:    a.RoomID,
		CreatedAt: timex.Millis(a.CreatedAt),
		IsDeleted: a.IsDeleted,
	}
}
