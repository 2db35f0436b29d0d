package proto

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gproto "google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/testing/protocmp"

	"github.com/dmitrijs2005/chatsync/internal/wire"
)

func TestChanges_SurviveMarshal(t *testing.T) {
	sent := int64(1_700_000_000_123)
	width := 640
	name := "general"
	in := wire.EmptyChanges()
	in.Messages.Updated = []wire.MessageRecord{{ID: "m1", Cipher: "c", Type: "default", UserID: "a", RoomID: "r1", SentAt: &sent, CreatedAt: 1, UpdatedAt: 2}}
	in.Messages.Deleted = []string{"m0"}
	in.Rooms.Created = []wire.RoomRecord{{ID: "r1", Name: &name, IsMuted: true}}
	in.RoomMembers.Created = []wire.MemberRecord{{ID: "r1|a", RoomID: "r1", UserID: "a"}}
	in.Attachments.Created = []wire.AttachmentRecord{{ID: "f1", CipherURI: "k", Width: &width, MessageID: "m1"}}

	raw, err := gproto.Marshal(&PushRequest{LastPulledAt: 7, Changes: ChangesToPB(in)})
	require.NoError(t, err)

	var req PushRequest
	require.NoError(t, gproto.Unmarshal(raw, &req))
	assert.Equal(t, int64(7), req.GetLastPulledAt())
	if diff := cmp.Diff(in, ChangesFromPB(req.GetChanges())); diff != "" {
		t.Errorf("changes mismatch (-want +got):\n%s", diff)
	}
}

func TestChangesFromPB_MissingTables(t *testing.T) {
	assert.Nil(t, ChangesFromPB(nil))
	assert.Nil(t, ChangesToPB(nil))

	got := ChangesFromPB(&Changes{})
	assert.Equal(t, wire.EmptyChanges(), got)
}

func TestPullRequest_OptionalWatermark(t *testing.T) {
	first := &PullRequest{}
	assert.Nil(t, first.LastPulledAt)

	raw, err := gproto.Marshal(&PullRequest{LastPulledAt: gproto.Int64(0)})
	require.NoError(t, err)
	var got PullRequest
	require.NoError(t, gproto.Unmarshal(raw, &got))
	require.NotNil(t, got.LastPulledAt)
	assert.Equal(t, int64(0), got.GetLastPulledAt())
}

func TestPullResult_RoundTrip(t *testing.T) {
	in := &wire.PullResult{Changes: *wire.EmptyChanges(), Timestamp: 99}
	in.Changes.Users.Updated = []wire.UserRecord{{ID: "u1", Name: "Alice", Email: "a@x.io", Role: "user"}}

	resp := PullResultToPB(in)
	want := &PullResponse{
		Timestamp: 99,
		Changes: &Changes{
			Users:        &UserChanges{Created: []*User{}, Updated: []*User{{Id: "u1", Name: "Alice", Email: "a@x.io", Role: "user"}}, Deleted: []string{}},
			Rooms:        &RoomChanges{Created: []*Room{}, Updated: []*Room{}, Deleted: []string{}},
			RoomMembers:  &RoomMemberChanges{Created: []*RoomMember{}, Updated: []*RoomMember{}, Deleted: []string{}},
			Messages:     &MessageChanges{Created: []*Message{}, Updated: []*Message{}, Deleted: []string{}},
			ReadReceipts: &ReadReceiptChanges{Created: []*ReadReceipt{}, Updated: []*ReadReceipt{}, Deleted: []string{}},
			Attachments:  &AttachmentChanges{Created: []*Attachment{}, Updated: []*Attachment{}, Deleted: []string{}},
		},
	}
	if diff := cmp.Diff(want, resp, protocmp.Transform()); diff != "" {
		t.Errorf("pull response mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, in, PullResultFromPB(resp))
	assert.Equal(t, wire.EmptyChanges(), &PullResultFromPB(&PullResponse{}).Changes)
}

func TestMessagePage(t *testing.T) {
	cursor := int64(10)
	in := &wire.MessagePage{Messages: []wire.MessageRecord{{ID: "m1", CreatedAt: 10}}, Cursor: &cursor, HasMore: true}
	assert.Equal(t, in, MessagePageFromPB(MessagePageToPB(in)))
}

func TestServiceDesc(t *testing.T) {
	assert.Equal(t, "/chatsync.v1.ChatSync/PushChanges", ChatSync_PushChanges_FullMethodName)
	assert.Equal(t, "chatsync.v1.ChatSync", ChatSync_ServiceDesc.ServiceName)
	require.Len(t, ChatSync_ServiceDesc.Streams, 1)
	assert.True(t, ChatSync_ServiceDesc.Streams[0].ServerStreams)

	sd := File_api_chatsync_v1_chatsync_proto.Services().ByName("ChatSync")
	require.NotNil(t, sd)
	assert.Equal(t, len(ChatSync_ServiceDesc.Methods)+len(ChatSync_ServiceDesc.Streams), sd.Methods().Len())
}
