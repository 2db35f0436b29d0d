package models

import "time"

type MessageType string

const (
	MessageTypeDefault      MessageType = "default"
	MessageTypeAnnouncement MessageType = "announcement"
	MessageTypeSharedKey    MessageType = "sharedKey"
)

func (t MessageType) Valid() bool {
	switch t {
	case MessageTypeDefault, MessageTypeAnnouncement, MessageTypeSharedKey:
		return true
	}
	return false
}

// Message content is an opaque client-side ciphertext.
type Message struct {
	ID        string
	Cipher    string
	Type      MessageType
	UserID    string
	RoomID    string
	SentAt    *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
	IsDeleted bool
}

type ReadReceipt struct {
	ID         string
	UserID     string
	MessageID  string
	RoomID     string
	ReceivedAt *time.Time
	SeenAt     *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
	IsDeleted  bool
}

type AttachmentType string

const (
	AttachmentTypeImage    AttachmentType = "image"
	AttachmentTypeVideo    AttachmentType = "video"
	AttachmentTypeDocument AttachmentType = "document"
)

func (t AttachmentType) Valid() bool {
	switch t {
	case AttachmentTypeImage, AttachmentTypeVideo, AttachmentTypeDocument:
		return true
	}
	return false
}

type Attachment struct {
	ID        string
	CipherURI string
	Type      AttachmentType
	Width     *int
	Height    *int
	UserID    string
	MessageID string
	RoomID    string
	CreatedAt time.Time
	UpdatedAt time.Time
	IsDeleted bool
}
