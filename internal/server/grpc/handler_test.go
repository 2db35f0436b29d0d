package grpc

import (
	"context"
	"net"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/dmitrijs2005/chatsync/internal/common"
	"github.com/dmitrijs2005/chatsync/internal/logging"
	pb "github.com/dmitrijs2005/chatsync/internal/proto"
	"github.com/dmitrijs2005/chatsync/internal/server/config"
	"github.com/dmitrijs2005/chatsync/internal/server/mailer"
	"github.com/dmitrijs2005/chatsync/internal/server/notify"
	"github.com/dmitrijs2005/chatsync/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/chatsync/internal/server/services"
	"github.com/dmitrijs2005/chatsync/internal/server/syncengine"
	"github.com/dmitrijs2005/chatsync/internal/wire"
)

const testSecret = "secret"

type outbox struct {
	mu   sync.Mutex
	sent []mailer.Message
}

func (o *outbox) Send(_ context.Context, msg mailer.Message) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.sent = append(o.sent, msg)
	return nil
}

func (o *outbox) last(t *testing.T) mailer.Message {
	t.Helper()
	o.mu.Lock()
	defer o.mu.Unlock()
	require.NotEmpty(t, o.sent)
	return o.sent[len(o.sent)-1]
}

type harness struct {
	client pb.ChatSyncClient
	hub    *notify.Hub
	engine *syncengine.Engine
	mail   *outbox
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	log := logging.Discard()
	repos := repomanager.NewMemoryRepositoryManager()
	cfg := &config.Config{
		SecretKey:                    testSecret,
		AccessTokenValidityDuration:  time.Hour,
		RefreshTokenValidityDuration: time.Hour,
		PasswordCodeValidityDuration: time.Hour,
	}
	mail := &outbox{}
	hub := notify.NewHub(log)
	engine := syncengine.New(repos, log, syncengine.WithPublisher(hub))
	srv := NewGRPCServer("", log, testSecret, Services{
		Users:       services.NewUserService(repos, cfg, log, services.WithMailer(mail)),
		Devices:     services.NewDeviceService(repos, log),
		Preferences: services.NewPreferencesService(repos),
		Attachments: services.NewAttachmentService(repos, cfg),
		Engine:      engine,
		Hub:         hub,
	})

	lis := bufconn.Listen(1 << 20)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, lis) }()
	t.Cleanup(func() {
		cancel()
		<-done
	})

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return &harness{client: pb.NewChatSyncClient(conn), hub: hub, engine: engine, mail: mail}
}

type account struct {
	id      string
	token   string
	session string
}

func (h *harness) signUp(t *testing.T, name, email string) account {
	t.Helper()
	ctx := context.Background()

	acc, err := h.client.CreateAccount(ctx, &pb.CreateAccountRequest{Name: name, Email: email, Password: "secret"})
	require.NoError(t, err)

	tokens, err := h.client.SignIn(ctx, &pb.SignInRequest{Email: email, Password: "secret"})
	require.NoError(t, err)
	require.NotEmpty(t, tokens.GetSessionId())

	return account{id: acc.GetId(), token: tokens.GetAccessToken(), session: tokens.GetSessionId()}
}

func authed(ctx context.Context, a account) context.Context {
	return metadata.AppendToOutgoingContext(ctx, common.AccessTokenHeaderName, a.token)
}

func TestPingIsPublic(t *testing.T) {
	h := newHarness(t)
	resp, err := h.client.Ping(context.Background(), &pb.PingRequest{})
	require.NoError(t, err)
	assert.Equal(t, "OK", resp.GetMessage())
}

func TestAccountErrorsMapToCodes(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	h.signUp(t, "Alice", "alice@example.com")

	_, err := h.client.CreateAccount(ctx, &pb.CreateAccountRequest{Name: "Alice", Email: "alice@example.com", Password: "secret"})
	assert.Equal(t, codes.AlreadyExists, status.Code(err))

	_, err = h.client.CreateAccount(ctx, &pb.CreateAccountRequest{Name: "A", Email: "x@example.com", Password: "secret"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = h.client.SignIn(ctx, &pb.SignInRequest{Email: "alice@example.com", Password: "nope"})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	_, err = h.client.Me(ctx, &pb.MeRequest{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestMe(t *testing.T) {
	h := newHarness(t)
	alice := h.signUp(t, "Alice", "alice@example.com")

	me, err := h.client.Me(authed(context.Background(), alice), &pb.MeRequest{})
	require.NoError(t, err)
	assert.Equal(t, alice.id, me.GetId())
	assert.Equal(t, "alice@example.com", me.GetEmail())
	assert.Equal(t, "user", me.GetRole())
	assert.Positive(t, me.GetCreatedAt())
}

func TestRefreshKeepsSession(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	h.signUp(t, "Alice", "alice@example.com")

	first, err := h.client.SignIn(ctx, &pb.SignInRequest{Email: "alice@example.com", Password: "secret"})
	require.NoError(t, err)
	second, err := h.client.SignIn(ctx, &pb.SignInRequest{Email: "alice@example.com", Password: "secret"})
	require.NoError(t, err)
	assert.NotEqual(t, first.GetSessionId(), second.GetSessionId())

	refreshed, err := h.client.RefreshToken(ctx, &pb.RefreshTokenRequest{RefreshToken: first.GetRefreshToken()})
	require.NoError(t, err)
	assert.Equal(t, first.GetSessionId(), refreshed.GetSessionId())
}

func TestPushPullAndShouldSync(t *testing.T) {
	h := newHarness(t)
	alice := h.signUp(t, "Alice", "alice@example.com")
	bob := h.signUp(t, "Bob", "bob@example.com")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	stream, err := h.client.ShouldSync(authed(ctx, bob), &pb.ShouldSyncRequest{})
	require.NoError(t, err)
	require.Eventually(t, func() bool { return h.hub.Len() == 1 }, 2*time.Second, 10*time.Millisecond)

	changes := &wire.Changes{
		Rooms: wire.ChangeSet[wire.RoomRecord]{Updated: []wire.RoomRecord{{ID: "r1"}}},
		RoomMembers: wire.ChangeSet[wire.MemberRecord]{Updated: []wire.MemberRecord{
			{ID: "r1:" + alice.id, RoomID: "r1", UserID: alice.id},
			{ID: "r1:" + bob.id, RoomID: "r1", UserID: bob.id},
		}},
		Messages: wire.ChangeSet[wire.MessageRecord]{Updated: []wire.MessageRecord{
			{ID: "m1", Cipher: "hello", Type: "default", UserID: alice.id, RoomID: "r1"},
		}},
	}
	ok, err := h.client.PushChanges(authed(ctx, alice), &pb.PushRequest{Changes: pb.ChangesToPB(changes)})
	require.NoError(t, err)
	assert.True(t, ok.GetOk())

	signal, err := stream.Recv()
	require.NoError(t, err)
	assert.True(t, signal.GetShouldSync())

	out, err := h.client.PullChanges(authed(ctx, bob), &pb.PullRequest{})
	require.NoError(t, err)
	res := pb.PullResultFromPB(out)

	require.Len(t, res.Changes.Messages.Updated, 1)
	assert.Equal(t, "hello", res.Changes.Messages.Updated[0].Cipher)
	require.Len(t, res.Changes.Rooms.Updated, 1)
	assert.Equal(t, "m1", *res.Changes.Rooms.Updated[0].LastMessageID)
	assert.Positive(t, res.Timestamp)
	h.engine.Wait()
}

func TestShouldSyncSkipsPushingSession(t *testing.T) {
	h := newHarness(t)
	alice := h.signUp(t, "Alice", "alice@example.com")

	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	stream, err := h.client.ShouldSync(authed(ctx, alice), &pb.ShouldSyncRequest{})
	require.NoError(t, err)
	require.Eventually(t, func() bool { return h.hub.Len() == 1 }, 400*time.Millisecond, 10*time.Millisecond)

	changes := &wire.Changes{
		Rooms: wire.ChangeSet[wire.RoomRecord]{Updated: []wire.RoomRecord{{ID: "r1"}}},
		RoomMembers: wire.ChangeSet[wire.MemberRecord]{Updated: []wire.MemberRecord{
			{ID: "r1:" + alice.id, RoomID: "r1", UserID: alice.id},
		}},
	}
	_, err = h.client.PushChanges(authed(context.Background(), alice), &pb.PushRequest{Changes: pb.ChangesToPB(changes)})
	require.NoError(t, err)
	h.engine.Wait()

	_, err = stream.Recv()
	assert.Equal(t, codes.DeadlineExceeded, status.Code(err))
}

func TestGetMessages(t *testing.T) {
	h := newHarness(t)
	alice := h.signUp(t, "Alice", "alice@example.com")
	bob := h.signUp(t, "Bob", "bob@example.com")
	ctx := authed(context.Background(), alice)

	changes := &wire.Changes{
		Rooms: wire.ChangeSet[wire.RoomRecord]{Updated: []wire.RoomRecord{{ID: "r1"}}},
		RoomMembers: wire.ChangeSet[wire.MemberRecord]{Updated: []wire.MemberRecord{
			{ID: "r1:" + alice.id, RoomID: "r1", UserID: alice.id},
		}},
		Messages: wire.ChangeSet[wire.MessageRecord]{Updated: []wire.MessageRecord{
			{ID: "m1", Cipher: "one", Type: "default", UserID: alice.id, RoomID: "r1"},
			{ID: "m2", Cipher: "two", Type: "default", UserID: alice.id, RoomID: "r1"},
		}},
	}
	_, err := h.client.PushChanges(ctx, &pb.PushRequest{Changes: pb.ChangesToPB(changes)})
	require.NoError(t, err)
	h.engine.Wait()

	page, err := h.client.GetMessages(ctx, &pb.GetMessagesRequest{RoomId: "r1"})
	require.NoError(t, err)
	assert.Len(t, page.GetMessages(), 2)
	assert.False(t, page.GetHasMore())
	assert.NotNil(t, page.Cursor)

	page, err = h.client.GetMessages(ctx, &pb.GetMessagesRequest{RoomId: "r1", Limit: 1})
	require.NoError(t, err)
	assert.Len(t, page.GetMessages(), 1)
	assert.True(t, page.GetHasMore())

	_, err = h.client.GetMessages(ctx, &pb.GetMessagesRequest{RoomId: "r1", Limit: 500})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = h.client.GetMessages(authed(context.Background(), bob), &pb.GetMessagesRequest{RoomId: "r1"})
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestListUsers(t *testing.T) {
	h := newHarness(t)
	alice := h.signUp(t, "Alice", "alice@example.com")
	h.signUp(t, "Bob", "bob@example.com")
	h.signUp(t, "Alina", "alina@example.org")
	ctx := authed(context.Background(), alice)

	_, err := h.client.ListUsers(context.Background(), &pb.ListUsersRequest{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	out, err := h.client.ListUsers(ctx, &pb.ListUsersRequest{
		Name:    "ali%",
		OrderBy: []*pb.UserOrder{{Field: "name", Desc: true}},
	})
	require.NoError(t, err)
	var names []string
	for _, u := range out.GetUsers() {
		names = append(names, u.GetName())
	}
	assert.Equal(t, []string{"Alina", "Alice"}, names)

	out, err = h.client.ListUsers(ctx, &pb.ListUsersRequest{Email: "%.com", Skip: 1, Take: 1})
	require.NoError(t, err)
	assert.Len(t, out.GetUsers(), 1)

	_, err = h.client.ListUsers(ctx, &pb.ListUsersRequest{Take: 51})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestForgotAndChangePassword(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	h.signUp(t, "Alice", "alice@example.com")

	_, err := h.client.ForgotPassword(ctx, &pb.ForgotPasswordRequest{Email: "nobody@example.com"})
	require.NoError(t, err)

	_, err = h.client.ForgotPassword(ctx, &pb.ForgotPasswordRequest{Email: "alice@example.com"})
	require.NoError(t, err)
	msg := h.mail.last(t)
	assert.Equal(t, "alice@example.com", msg.To)
	code := strings.Fields(msg.Body)[2]

	_, err = h.client.ChangePassword(ctx, &pb.ChangePasswordRequest{Code: "000000x", Password: "fresh"})
	assert.Equal(t, codes.NotFound, status.Code(err))

	_, err = h.client.ChangePassword(ctx, &pb.ChangePasswordRequest{Code: code, Password: "fresh"})
	require.NoError(t, err)

	_, err = h.client.SignIn(ctx, &pb.SignInRequest{Email: "alice@example.com", Password: "secret"})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
	_, err = h.client.SignIn(ctx, &pb.SignInRequest{Email: "alice@example.com", Password: "fresh"})
	require.NoError(t, err)
}

func TestFollowingAndPreferences(t *testing.T) {
	h := newHarness(t)
	alice := h.signUp(t, "Alice", "alice@example.com")
	bob := h.signUp(t, "Bob", "bob@example.com")
	ctx := authed(context.Background(), alice)

	_, err := h.client.StartFollowing(ctx, &pb.FollowRequest{UserId: bob.id})
	require.NoError(t, err)
	_, err = h.client.StartFollowing(ctx, &pb.FollowRequest{UserId: alice.id})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
	_, err = h.client.StopFollowing(ctx, &pb.FollowRequest{UserId: "ghost"})
	assert.Equal(t, codes.NotFound, status.Code(err))

	_, err = h.client.UpdateRoomPreferences(ctx, &pb.RoomPreferences{RoomId: "nowhere", IsMuted: true})
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestDevices(t *testing.T) {
	h := newHarness(t)
	alice := h.signUp(t, "Alice", "alice@example.com")
	ctx := authed(context.Background(), alice)

	d, err := h.client.RegisterDevice(ctx, &pb.RegisterDeviceRequest{Name: "pixel", Token: "tok", Platform: "android"})
	require.NoError(t, err)
	assert.Equal(t, "android", d.GetPlatform())
	assert.NotEmpty(t, d.GetId())

	_, err = h.client.RegisterDevice(ctx, &pb.RegisterDeviceRequest{Name: "pda", Token: "tok2", Platform: "palm"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = h.client.UnregisterDevices(ctx, &pb.UnregisterDevicesRequest{Tokens: []string{"tok", ""}})
	require.NoError(t, err)
}
