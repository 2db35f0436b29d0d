package client

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/chatsync/internal/cryptox"
)

func TestNewAttachment(t *testing.T) {
	sealed, err := cryptox.Seal([]byte("pixels"))
	require.NoError(t, err)
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	attID, c, err := NewAttachment("u1", "r1", "attachments/u1/k", "/tmp/cat.PNG", sealed, now)
	require.NoError(t, err)

	require.Len(t, c.Messages.Created, 1)
	require.Len(t, c.Attachments.Created, 1)
	msg := c.Messages.Created[0]
	att := c.Attachments.Created[0]

	assert.Equal(t, attID, att.ID)
	assert.Equal(t, msg.ID, att.MessageID)
	assert.Equal(t, "r1", att.RoomID)
	assert.Equal(t, "u1", att.UserID)
	assert.Equal(t, "image", att.Type)
	assert.Equal(t, "attachments/u1/k", att.CipherURI)

	env, ok := ParseFileEnvelope(msg.Cipher)
	require.True(t, ok)
	assert.Equal(t, attID, env.AttachmentID)
	assert.Equal(t, "cat.PNG", env.Name)

	plain, err := cryptox.Open(sealed.Ciphertext, env.Key, env.Nonce)
	require.NoError(t, err)
	assert.Equal(t, "pixels", string(plain))
}

func TestParseFileEnvelope_PlainText(t *testing.T) {
	for _, cipher := range []string{"hello", "attachment:!!!", "attachment:e30="} {
		_, ok := ParseFileEnvelope(cipher)
		assert.False(t, ok, cipher)
	}
}

func TestAttachmentType(t *testing.T) {
	assert.Equal(t, "image", AttachmentType("a.jpeg"))
	assert.Equal(t, "video", AttachmentType("clip.MP4"))
	assert.Equal(t, "document", AttachmentType("notes"))
	assert.Equal(t, "document", AttachmentType("report.pdf"))
}
