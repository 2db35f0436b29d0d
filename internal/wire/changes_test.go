package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/chatsync/internal/common"
)

func TestExtract(t *testing.T) {
	records := []MessageRecord{
		{ID: "m1", Cipher: "a"},
		{ID: "m2", IsDeleted: true, Cipher: "gone"},
		{ID: "", IsDeleted: true},
		{ID: "m3", Cipher: "c"},
	}

	cs := Extract(records)

	assert.Equal(t, []MessageRecord{{ID: "m1", Cipher: "a"}, {ID: "m3", Cipher: "c"}}, cs.Updated)
	assert.Equal(t, []string{"m2"}, cs.Deleted)
}

// Created is never populated. Clients upsert created and updated alike, so
// every visible change is reported as an update. Kept as observed.
func TestExtract_CreatedAlwaysEmpty(t *testing.T) {
	cs := Extract([]UserRecord{{ID: "u1"}, {ID: "u2"}})
	require.NotNil(t, cs.Created)
	assert.Empty(t, cs.Created)
	assert.Len(t, cs.Updated, 2)

	empty := Extract[RoomRecord](nil)
	assert.NotNil(t, empty.Created)
	assert.NotNil(t, empty.Updated)
	assert.NotNil(t, empty.Deleted)
}

func TestMemberKey_RoundTrip(t *testing.T) {
	key := MemberKey{RoomID: "room-1", UserID: "user-1"}
	assert.Equal(t, "room-1:user-1", key.String())

	parsed, err := ParseMemberKey(key.String())
	require.NoError(t, err)
	assert.Equal(t, key, parsed)
}

func TestParseMemberKey_Errors(t *testing.T) {
	for _, id := range []string{"", "room-1", ":user-1", "room-1:", ":"} {
		t.Run(id, func(t *testing.T) {
			_, err := ParseMemberKey(id)
			assert.ErrorIs(t, err, common.ErrorValidation)
		})
	}
}

func TestMemberRecord_Key(t *testing.T) {
	key, err := MemberRecord{RoomID: "r", UserID: "u"}.Key()
	require.NoError(t, err)
	assert.Equal(t, MemberKey{RoomID: "r", UserID: "u"}, key)

	key, err = MemberRecord{ID: "r2:u2"}.Key()
	require.NoError(t, err)
	assert.Equal(t, MemberKey{RoomID: "r2", UserID: "u2"}, key)

	_, err = MemberRecord{ID: "broken"}.Key()
	assert.Error(t, err)
}

func TestEmptyChanges(t *testing.T) {
	c := EmptyChanges()
	assert.NotNil(t, c.Users.Updated)
	assert.NotNil(t, c.RoomMembers.Deleted)
	assert.Empty(t, c.Messages.Updated)
	assert.Empty(t, c.Attachments.Created)
}
