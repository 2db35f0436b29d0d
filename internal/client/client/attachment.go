package client

import (
	"encoding/base64"
	"encoding/json"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/chatsync/internal/cryptox"
	"github.com/dmitrijs2005/chatsync/internal/wire"
	"github.com/dmitrijs2005/chatsync/internal/timex"
)

const attachmentPrefix = "attachment:"

// FileEnvelope is carried in the cipher of a message announcing an
// attachment. It holds what a member needs to fetch and open the blob.
type FileEnvelope struct {
	AttachmentID string `json:"attachment_id"`
	Name         string `json:"name"`
	Key          []byte `json:"key"`
	Nonce        []byte `json:"nonce"`
}

func (e FileEnvelope) encode() (string, error) {
	b, err := json.Marshal(e)
	if err != nil {
		return "", err
	}
	return attachmentPrefix + base64.StdEncoding.EncodeToString(b), nil
}

// ParseFileEnvelope reports whether cipher announces an attachment.
func ParseFileEnvelope(cipher string) (FileEnvelope, bool) {
	var env FileEnvelope
	raw, ok := strings.CutPrefix(cipher, attachmentPrefix)
	if !ok {
		return env, false
	}
	b, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return env, false
	}
	if err := json.Unmarshal(b, &env); err != nil || env.AttachmentID == "" {
		return FileEnvelope{}, false
	}
	return env, true
}

// AttachmentType guesses the attachment type from a file name.
func AttachmentType(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".png", ".jpg", ".jpeg", ".gif", ".webp", ".heic":
		return "image"
	case ".mp4", ".mov", ".webm", ".mkv":
		return "video"
	default:
		return "document"
	}
}

// NewAttachment builds the message and attachment records for a sealed file
// already uploaded under storageKey. It returns the attachment id.
func NewAttachment(userID, roomID, storageKey, name string, sealed *cryptox.Sealed, now time.Time) (string, *wire.Changes, error) {
	attID := uuid.NewString()
	cipher, err := FileEnvelope{
		AttachmentID: attID,
		Name:         filepath.Base(name),
		Key:          sealed.Key,
		Nonce:        sealed.Nonce,
	}.encode()
	if err != nil {
		return "", nil, err
	}

	msgID, c := NewMessage(userID, roomID, cipher, now)
	c.Attachments.Created = append(c.Attachments.Created, wire.AttachmentRecord{
		ID:        attID,
		CipherURI: storageKey,
		Type:      AttachmentType(name),
		UserID:    userID,
		MessageID: msgID,
		RoomID:    roomID,
		CreatedAt: timex.Millis(now),
	})
	return attID, c, nil
}
