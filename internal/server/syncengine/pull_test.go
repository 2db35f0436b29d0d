package syncengine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/chatsync/internal/logging"
	"github.com/dmitrijs2005/chatsync/internal/server/models"
	"github.com/dmitrijs2005/chatsync/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/chatsync/internal/timex"
	"github.com/dmitrijs2005/chatsync/internal/wire"
)

func assertNoDeletions(t *testing.T, c wire.Changes) {
	t.Helper()
	assert.Empty(t, c.Users.Deleted)
	assert.Empty(t, c.Rooms.Deleted)
	assert.Empty(t, c.RoomMembers.Deleted)
	assert.Empty(t, c.Messages.Deleted)
	assert.Empty(t, c.ReadReceipts.Deleted)
	assert.Empty(t, c.Attachments.Deleted)
}

func assertNothingChanged(t *testing.T, c wire.Changes) {
	t.Helper()
	assert.Empty(t, c.Users.Updated)
	assert.Empty(t, c.Rooms.Updated)
	assert.Empty(t, c.RoomMembers.Updated)
	assert.Empty(t, c.Messages.Updated)
	assert.Empty(t, c.ReadReceipts.Updated)
	assert.Empty(t, c.Attachments.Updated)
	assertNoDeletions(t, c)
}

func TestPull_FirstSync(t *testing.T) {
	f := newFixture(t)
	f.users(t, "a", "b")
	f.room(t, "r1", nil, "a", "b")
	f.message(t, "m1", "r1", "a", models.MessageTypeDefault)
	f.message(t, "m2", "r1", "b", models.MessageTypeDefault)
	before := f.clock.Now()

	res := f.pull(t, "a", nil)
	c := res.Changes

	assert.ElementsMatch(t, []string{"a", "b"}, ids(c.Users.Updated))
	assert.Equal(t, []string{"r1"}, ids(c.Rooms.Updated))
	assert.ElementsMatch(t, []string{"r1:a", "r1:b"}, ids(c.RoomMembers.Updated))
	assert.ElementsMatch(t, []string{"m1", "m2"}, ids(c.Messages.Updated))
	assertNoDeletions(t, c)

	assert.Empty(t, c.Users.Created)
	assert.Empty(t, c.Rooms.Created)
	assert.Empty(t, c.Messages.Created)

	room := c.Rooms.Updated[0]
	assert.Nil(t, room.Name)
	require.NotNil(t, room.LastMessageID)
	assert.Equal(t, "m2", *room.LastMessageID)
	assert.Greater(t, res.Timestamp, timex.Millis(before))
}

func TestPull_NothingNewAfterWatermark(t *testing.T) {
	f := newFixture(t)
	f.users(t, "a", "b")
	f.room(t, "r1", nil, "a", "b")
	f.message(t, "m1", "r1", "a", models.MessageTypeDefault)

	first := f.pull(t, "a", nil)
	second := f.pull(t, "a", &first.Timestamp)

	assertNothingChanged(t, second.Changes)
	assert.Greater(t, second.Timestamp, first.Timestamp)
}

func TestPull_StrictBoundary(t *testing.T) {
	f := newFixture(t)
	f.users(t, "a", "b")
	f.room(t, "r1", nil, "a", "b")
	f.message(t, "m1", "r1", "a", models.MessageTypeDefault)

	msg, err := f.repos.Messages(nil).FindByID(f.ctx, "m1")
	require.NoError(t, err)
	at := timex.Millis(msg.UpdatedAt)

	equal := f.pull(t, "b", &at)
	assertNothingChanged(t, equal.Changes)

	before := at - 1
	res := f.pull(t, "b", &before)
	assert.Equal(t, []string{"m1"}, ids(res.Changes.Messages.Updated))
	// the room and the sender accompany a changed message
	assert.Equal(t, []string{"r1"}, ids(res.Changes.Rooms.Updated))
	assert.Equal(t, []string{"a"}, ids(res.Changes.Users.Updated))
	assert.Empty(t, res.Changes.RoomMembers.Updated)
}

func TestPull_MembershipGatedVisibility(t *testing.T) {
	f := newFixture(t)
	f.users(t, "a", "b", "c")
	f.room(t, "r1", nil, "a", "b")
	f.message(t, "m1", "r1", "a", models.MessageTypeDefault)

	res := f.pull(t, "c", nil)

	assert.Equal(t, []string{"c"}, ids(res.Changes.Users.Updated))
	assert.Empty(t, res.Changes.Rooms.Updated)
	assert.Empty(t, res.Changes.RoomMembers.Updated)
	assert.Empty(t, res.Changes.Messages.Updated)
	assert.Empty(t, res.Changes.Attachments.Updated)
}

func TestPull_FollowFlags(t *testing.T) {
	f := newFixture(t)
	f.users(t, "a", "b")
	f.room(t, "r1", nil, "a", "b")
	require.NoError(t, f.repos.Users(nil).Follow(f.ctx, "a", "b"))

	res := f.pull(t, "a", nil)

	self, ok := find(res.Changes.Users.Updated, "a")
	require.True(t, ok)
	assert.Nil(t, self.IsFollowingMe)
	assert.Nil(t, self.IsFollowedByMe)

	other, ok := find(res.Changes.Users.Updated, "b")
	require.True(t, ok)
	require.NotNil(t, other.IsFollowingMe)
	require.NotNil(t, other.IsFollowedByMe)
	assert.False(t, *other.IsFollowingMe)
	assert.True(t, *other.IsFollowedByMe)

	res = f.pull(t, "b", nil)
	a, ok := find(res.Changes.Users.Updated, "a")
	require.True(t, ok)
	assert.True(t, *a.IsFollowingMe)
	assert.False(t, *a.IsFollowedByMe)
}

func TestPull_LastMessageSkipsSharedKey(t *testing.T) {
	f := newFixture(t)
	f.users(t, "a", "b")
	f.room(t, "r1", nil, "a", "b")
	f.message(t, "m1", "r1", "a", models.MessageTypeDefault)
	f.message(t, "k1", "r1", "a", models.MessageTypeSharedKey)

	res := f.pull(t, "b", nil)

	room, ok := find(res.Changes.Rooms.Updated, "r1")
	require.True(t, ok)
	require.NotNil(t, room.LastMessageID)
	assert.Equal(t, "m1", *room.LastMessageID)

	m1, err := f.repos.Messages(nil).FindByID(f.ctx, "m1")
	require.NoError(t, err)
	require.NotNil(t, room.LastChangeAt)
	assert.Equal(t, timex.Millis(m1.CreatedAt), *room.LastChangeAt)
}

func TestPull_EmptyRoomFallsBackToRoomTime(t *testing.T) {
	f := newFixture(t)
	f.users(t, "a")
	f.room(t, "r1", ptr("Solo"), "a")

	res := f.pull(t, "a", nil)
	room, ok := find(res.Changes.Rooms.Updated, "r1")
	require.True(t, ok)
	assert.Nil(t, room.LastMessageID)
	require.NotNil(t, room.LastChangeAt)
	assert.Equal(t, room.UpdatedAt, *room.LastChangeAt)
	assert.Equal(t, "Solo", *room.Name)
}

func TestPull_PreferencesChangeEmitsRoom(t *testing.T) {
	f := newFixture(t)
	f.users(t, "a", "b")
	f.room(t, "r1", nil, "a", "b")
	first := f.pull(t, "a", nil)

	until := timex.FromMillis(first.Timestamp + 60_000)
	require.NoError(t, f.repos.Preferences(nil).Upsert(f.ctx, &models.RoomPreferences{
		UserID: "a", RoomID: "r1", IsMuted: true, MutedUntil: &until,
	}))

	res := f.pull(t, "a", &first.Timestamp)
	room, ok := find(res.Changes.Rooms.Updated, "r1")
	require.True(t, ok)
	assert.True(t, room.IsMuted)
	assert.False(t, room.ShouldStillNotify)
	assert.Equal(t, first.Timestamp+60_000, *room.MutedUntil)
	assert.Empty(t, res.Changes.Messages.Updated)
	assert.Empty(t, res.Changes.RoomMembers.Updated)

	// b's preferences are not a's business
	other := f.pull(t, "b", &first.Timestamp)
	assert.Empty(t, other.Changes.Rooms.Updated)
}

func TestPull_ReadReceiptsAndLastRead(t *testing.T) {
	f := newFixture(t)
	f.users(t, "a", "b")
	f.room(t, "r1", nil, "a", "b")
	f.message(t, "m1", "r1", "b", models.MessageTypeDefault)
	first := f.pull(t, "a", nil)

	seen := timex.FromMillis(first.Timestamp - 10)
	require.NoError(t, f.repos.ReadReceipts(nil).Upsert(f.ctx, &models.ReadReceipt{
		ID: "rr1", UserID: "a", MessageID: "m1", RoomID: "r1", SeenAt: &seen,
	}))

	res := f.pull(t, "b", &first.Timestamp)
	assert.Equal(t, []string{"rr1"}, ids(res.Changes.ReadReceipts.Updated))
	// receipts are sliced independently of their unchanged message
	assert.Empty(t, res.Changes.Messages.Updated)

	full := f.pull(t, "a", nil)
	room, ok := find(full.Changes.Rooms.Updated, "r1")
	require.True(t, ok)
	require.NotNil(t, room.LastReadAt)
	assert.Equal(t, first.Timestamp-10, *room.LastReadAt)
}

func TestPull_AttachmentsFollowChangedMessages(t *testing.T) {
	f := newFixture(t)
	f.users(t, "a", "b")
	f.room(t, "r1", nil, "a", "b")
	f.message(t, "m1", "r1", "a", models.MessageTypeDefault)
	require.NoError(t, f.repos.Attachments(nil).Upsert(f.ctx, &models.Attachment{
		ID: "at1", CipherURI: "s3://k", Type: models.AttachmentTypeImage, UserID: "a", MessageID: "m1", RoomID: "r1",
		Width: ptr(640), Height: ptr(480),
	}))

	res := f.pull(t, "b", nil)
	att, ok := find(res.Changes.Attachments.Updated, "at1")
	require.True(t, ok)
	assert.Equal(t, "s3://k", att.CipherURI)
	assert.Equal(t, 640, *att.Width)

	again := f.pull(t, "b", &res.Timestamp)
	assert.Empty(t, again.Changes.Attachments.Updated)
}

func TestPull_UnknownUser(t *testing.T) {
	f := newFixture(t)
	_, err := f.engine.Pull(f.ctx, "ghost", nil)
	assert.Error(t, err)
}

// clockStore overrides the store clock of an otherwise real repository manager.
type clockStore struct {
	repomanager.RepositoryManager
	now time.Time
	err error
}

func (c clockStore) Now(context.Context) (time.Time, error) { return c.now, c.err }

func TestPull_TimestampFromStoreClock(t *testing.T) {
	f := newFixture(t)
	f.users(t, "a")
	storeNow := time.Date(2030, 6, 1, 8, 0, 0, 0, time.UTC)

	engine := New(clockStore{RepositoryManager: f.repos, now: storeNow}, logging.Discard())
	res, err := engine.Pull(f.ctx, "a", nil)
	require.NoError(t, err)
	assert.Equal(t, timex.Millis(storeNow), res.Timestamp)

	engine = New(clockStore{RepositoryManager: f.repos, err: errors.New("clock down")}, logging.Discard())
	_, err = engine.Pull(f.ctx, "a", nil)
	assert.ErrorContains(t, err, "clock down")
}
