// Package wire holds the records and change sets exchanged by the sync
// protocol. Server and client both speak in these types; the gRPC layer
// converts them to and from protobuf messages.
package wire

// Record is a wire row that can be split into a change set.
type Record interface {
	RecordID() string
	Tombstoned() bool
}

type UserRecord struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	PictureURI     *string `json:"picture_uri"`
	Role           string  `json:"role"`
	PublicKey      *string `json:"public_key"`
	DerivedSalt    *string `json:"derived_salt"`
	IsFollowingMe  *bool   `json:"is_following_me"`
	IsFollowedByMe *bool   `json:"is_followed_by_me"`
	CreatedAt      int64   `json:"created_at"`
	UpdatedAt      int64   `json:"updated_at"`
	IsDeleted      bool    `json:"-"`
}

func (r UserRecord) RecordID() string { return r.ID }
func (r UserRecord) Tombstoned() bool { return r.IsDeleted }

type RoomRecord struct {
	ID                string  `json:"id"`
	Name              *string `json:"name"`
	PictureURI        *string `json:"picture_uri"`
	LastMessageID     *string `json:"last_message_id"`
	LastChangeAt      *int64  `json:"last_change_at"`
	LastReadAt        *int64  `json:"last_read_at"`
	IsMuted           bool    `json:"is_muted"`
	ShouldStillNotify bool    `json:"should_still_notify"`
	MutedUntil        *int64  `json:"muted_until"`
	CreatedAt         int64   `json:"created_at"`
	UpdatedAt         int64   `json:"updated_at"`
	IsDeleted         bool    `json:"-"`
}

func (r RoomRecord) RecordID() string { return r.ID }
func (r RoomRecord) Tombstoned() bool { return r.IsDeleted }

// MemberRecord is a room membership. ID is MemberKey.String().
type MemberRecord struct {
	ID        string `json:"id"`
	RoomID    string `json:"room_id"`
	UserID    string `json:"user_id"`
	IsDeleted bool   `json:"-"`
}

func (r MemberRecord) RecordID() string { return r.ID }
func (r MemberRecord) Tombstoned() bool { return r.IsDeleted }

// Key resolves the membership pair from the explicit fields, falling back
// to the composite id.
func (r MemberRecord) Key() (MemberKey, error) {
	if r.RoomID != "" && r.UserID != "" {
		return MemberKey{RoomID: r.RoomID, UserID: r.UserID}, nil
	}
	return ParseMemberKey(r.ID)
}

type MessageRecord struct {
	ID        string `json:"id"`
	Cipher    string `json:"cipher"`
	Type      string `json:"type"`
	UserID    string `json:"user_id"`
	RoomID    string `json:"room_id"`
	SentAt    *int64 `json:"sent_at"`
	CreatedAt int64  `json:"created_at"`
	UpdatedAt int64  `json:"updated_at"`
	IsDeleted bool   `json:"-"`
}

func (r MessageRecord) RecordID() string { return r.ID }
func (r MessageRecord) Tombstoned() bool { return r.IsDeleted }

type ReadReceiptRecord struct {
	ID         string `json:"id"`
	UserID     string `json:"user_id"`
	MessageID  string `json:"message_id"`
	RoomID     string `json:"room_id"`
	ReceivedAt *int64 `json:"received_at"`
	SeenAt     *int64 `json:"seen_at"`
	UpdatedAt  int64  `json:"updated_at"`
	IsDeleted  bool   `json:"-"`
}

func (r ReadReceiptRecord) RecordID() string { return r.ID }
func (r ReadReceiptRecord) Tombstoned() bool { return r.IsDeleted }

type AttachmentRecord struct {
	ID        string `json:"id"`
	CipherURI string `json:"cipher_uri"`
	Type      string `json:"type"`
	Width     *int   `json:"width"`
	Height    *int   `json:"height"`
	UserID    string `json:"user_id"`
	MessageID string `json:"message_id"`
	RoomID    string `json:"room_id"`
	CreatedAt int64  `json:"created_at"`
	IsDeleted bool   `json:"-"`
}

func (r AttachmentRecord) RecordID() string { return r.ID }
func (r AttachmentRecord) Tombstoned() bool { return r.IsDeleted }

// ChangeSet is the per-table triple exchanged between client and server.
type ChangeSet[T any] struct {
	Created []T      `json:"created"`
	Updated []T      `json:"updated"`
	Deleted []string `json:"deleted"`
}

// Changes groups the change sets of every synced table.
type Changes struct {
	Users        ChangeSet[UserRecord]        `json:"users"`
	Rooms        ChangeSet[RoomRecord]        `json:"rooms"`
	RoomMembers  ChangeSet[MemberRecord]      `json:"room_members"`
	Messages     ChangeSet[MessageRecord]     `json:"messages"`
	ReadReceipts ChangeSet[ReadReceiptRecord] `json:"read_receipts"`
	Attachments  ChangeSet[AttachmentRecord]  `json:"attachments"`
}

type PullResult struct {
	Changes   Changes `json:"changes"`
	Timestamp int64   `json:"timestamp"`
}

// EmptyChanges returns a Changes value whose lists are all non-nil and empty.
func EmptyChanges() *Changes {
	return &Changes{
		Users:        Extract[UserRecord](nil),
		Rooms:        Extract[RoomRecord](nil),
		RoomMembers:  Extract[MemberRecord](nil),
		Messages:     Extract[MessageRecord](nil),
		ReadReceipts: Extract[ReadReceiptRecord](nil),
		Attachments:  Extract[AttachmentRecord](nil),
	}
}

// MessagePage is one page of a room's history, newest first. Cursor is the
// created_at of the oldest message on the page and is what the next request
// passes as its upper bound.
type MessagePage struct {
	Messages []MessageRecord `json:"messages"`
	Cursor   *int64          `json:"cursor"`
	HasMore  bool            `json:"has_more"`
}
