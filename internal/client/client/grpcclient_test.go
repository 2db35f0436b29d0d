package client

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/dmitrijs2005/chatsync/internal/common"
	pb "github.com/dmitrijs2005/chatsync/internal/proto"
)

// fakePB implements the calls the tests exercise; anything else panics on
// the nil embedded interface.
type fakePB struct {
	pb.ChatSyncClient

	lastRefreshToken string
	refreshResp      *pb.TokenPair
	refreshErr       error

	pingResp *pb.PingResponse
	pingErr  error

	lastSignIn *pb.SignInRequest
	signInResp *pb.TokenPair
	signInErr  error

	pushResp *pb.PushResponse
	pushErr  error

	lastListUsers *pb.ListUsersRequest
	listUsersResp *pb.ListUsersResponse

	lastGetMessages *pb.GetMessagesRequest
	getMessagesResp *pb.GetMessagesResponse
}

func (f *fakePB) RefreshToken(_ context.Context, in *pb.RefreshTokenRequest, _ ...grpc.CallOption) (*pb.TokenPair, error) {
	f.lastRefreshToken = in.GetRefreshToken()
	return f.refreshResp, f.refreshErr
}

func (f *fakePB) Ping(context.Context, *pb.PingRequest, ...grpc.CallOption) (*pb.PingResponse, error) {
	return f.pingResp, f.pingErr
}

func (f *fakePB) SignIn(_ context.Context, in *pb.SignInRequest, _ ...grpc.CallOption) (*pb.TokenPair, error) {
	f.lastSignIn = in
	return f.signInResp, f.signInErr
}

func (f *fakePB) PushChanges(context.Context, *pb.PushRequest, ...grpc.CallOption) (*pb.PushResponse, error) {
	return f.pushResp, f.pushErr
}

func (f *fakePB) ListUsers(_ context.Context, in *pb.ListUsersRequest, _ ...grpc.CallOption) (*pb.ListUsersResponse, error) {
	f.lastListUsers = in
	return f.listUsersResp, nil
}

func (f *fakePB) GetMessages(_ context.Context, in *pb.GetMessagesRequest, _ ...grpc.CallOption) (*pb.GetMessagesResponse, error) {
	f.lastGetMessages = in
	return f.getMessagesResp, nil
}

func tokens(access, refresh, session string) *pb.TokenPair {
	return &pb.TokenPair{AccessToken: access, RefreshToken: refresh, SessionId: session}
}

func TestInterceptor_RefreshesTokenOnExpiredAndRetries(t *testing.T) {
	f := &fakePB{refreshResp: tokens("A2", "R2", "S")}
	c := &GRPCClient{client: f, tokens: Tokens{AccessToken: "A1", RefreshToken: "R1", SessionID: "S"}}

	var rotated Tokens
	c.OnRefresh(func(tp Tokens) { rotated = tp })

	callCount := 0
	invoker := func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		callCount++
		md, _ := metadata.FromOutgoingContext(ctx)
		toks := md.Get(common.AccessTokenHeaderName)
		require.Len(t, toks, 1)

		if callCount == 1 {
			require.Equal(t, "A1", toks[0])
			return status.Error(codes.Unauthenticated, common.ErrTokenExpired.Error())
		}
		require.Equal(t, "A2", toks[0])
		return nil
	}

	err := c.accessTokenInterceptor(context.Background(), "/svc/Method", nil, nil, nil, invoker)
	require.NoError(t, err)
	require.Equal(t, 2, callCount)
	require.Equal(t, Tokens{AccessToken: "A2", RefreshToken: "R2", SessionID: "S"}, c.Tokens())
	require.Equal(t, "R1", f.lastRefreshToken)
	require.Equal(t, "A2", rotated.AccessToken)
}

func TestInterceptor_NoRefreshIfNoRefreshToken(t *testing.T) {
	f := &fakePB{}
	c := &GRPCClient{client: f, tokens: Tokens{AccessToken: "A1"}}

	invoker := func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		return status.Error(codes.Unauthenticated, common.ErrTokenExpired.Error())
	}

	err := c.accessTokenInterceptor(context.Background(), "/svc/Method", nil, nil, nil, invoker)
	require.Error(t, err)
	require.Empty(t, f.lastRefreshToken)
}

func TestInterceptor_FailedRefreshReturnsOriginalError(t *testing.T) {
	f := &fakePB{refreshErr: status.Error(codes.Unauthenticated, "refresh token expired")}
	c := &GRPCClient{client: f, tokens: Tokens{AccessToken: "A1", RefreshToken: "R1"}}

	invoker := func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		return status.Error(codes.Unauthenticated, common.ErrTokenExpired.Error())
	}

	err := c.accessTokenInterceptor(context.Background(), "/svc/Method", nil, nil, nil, invoker)
	st, _ := status.FromError(err)
	assert.Equal(t, common.ErrTokenExpired.Error(), st.Message())
	assert.Equal(t, "A1", c.Tokens().AccessToken)
}

func TestInterceptor_IgnoresOtherErrors(t *testing.T) {
	c := &GRPCClient{tokens: Tokens{AccessToken: "X"}}
	invoker := func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		return status.Error(codes.Internal, "boom")
	}
	err := c.accessTokenInterceptor(context.Background(), "/svc/Method", nil, nil, nil, invoker)
	require.Error(t, err)
}

func TestInterceptor_UnauthenticatedButDifferentMessage_NoRefresh(t *testing.T) {
	f := &fakePB{}
	c := &GRPCClient{client: f, tokens: Tokens{AccessToken: "X", RefreshToken: "R"}}
	invoker := func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		return status.Error(codes.Unauthenticated, "some other reason")
	}
	err := c.accessTokenInterceptor(context.Background(), "/svc/Method", nil, nil, nil, invoker)
	require.Error(t, err)
	require.Empty(t, f.lastRefreshToken)
}

func TestWithToken_OmitsEmptyToken(t *testing.T) {
	c := &GRPCClient{tokens: Tokens{SessionID: "S"}}
	md, _ := metadata.FromOutgoingContext(c.withToken(context.Background()))
	assert.Empty(t, md.Get(common.AccessTokenHeaderName))
	assert.Len(t, md, 0)
}

func TestWithToken_ReplacesCallerToken(t *testing.T) {
	c := &GRPCClient{tokens: Tokens{AccessToken: "mine"}}
	ctx := metadata.AppendToOutgoingContext(context.Background(), common.AccessTokenHeaderName, "stale")
	md, _ := metadata.FromOutgoingContext(c.withToken(ctx))
	assert.Equal(t, []string{"mine"}, md.Get(common.AccessTokenHeaderName))
}

func TestMapError(t *testing.T) {
	c := &GRPCClient{}

	require.NoError(t, c.mapError(nil))
	require.Equal(t, ErrUnauthorized, c.mapError(status.Error(codes.Unauthenticated, "x")))
	require.Equal(t, ErrUnavailable, c.mapError(status.Error(codes.Unavailable, "x")))
	require.Equal(t, ErrUnavailable, c.mapError(status.Error(codes.DeadlineExceeded, "x")))
	require.ErrorIs(t, c.mapError(status.Error(codes.NotFound, "x")), common.ErrorNotFound)
	require.ErrorIs(t, c.mapError(status.Error(codes.AlreadyExists, "x")), common.ErrorAlreadyExists)
	require.ErrorIs(t, c.mapError(status.Error(codes.InvalidArgument, "x")), common.ErrorValidation)
	require.ErrorIs(t, c.mapError(status.Error(codes.PermissionDenied, "x")), common.ErrorForbidden)
	e := errors.New("plain")
	require.ErrorContains(t, c.mapError(e), "rpc error:")
}

func TestPing(t *testing.T) {
	c := &GRPCClient{client: &fakePB{pingResp: &pb.PingResponse{Message: "OK"}}}
	require.NoError(t, c.Ping(context.Background()))

	c = &GRPCClient{client: &fakePB{pingResp: &pb.PingResponse{Message: "NOT_OK"}}}
	require.ErrorIs(t, c.Ping(context.Background()), ErrUnavailable)

	c = &GRPCClient{client: &fakePB{pingErr: status.Error(codes.Unavailable, "down")}}
	require.ErrorIs(t, c.Ping(context.Background()), ErrUnavailable)
}

func TestLogin_SetsTokensAndSession(t *testing.T) {
	f := &fakePB{signInResp: tokens("A", "R", "server-session")}
	c := &GRPCClient{client: f}

	tp, err := c.Login(context.Background(), "ann@example.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, Tokens{AccessToken: "A", RefreshToken: "R", SessionID: "server-session"}, tp)
	assert.Equal(t, tp, c.Tokens())
	assert.Equal(t, "server-session", c.SessionID())

	assert.Equal(t, "ann@example.com", f.lastSignIn.GetEmail())
	assert.Equal(t, "pw", f.lastSignIn.GetPassword())
}

func TestLogin_MapsError(t *testing.T) {
	c := &GRPCClient{client: &fakePB{signInErr: status.Error(codes.Unauthenticated, "no")}}
	_, err := c.Login(context.Background(), "u", "p")
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestPush_NotAccepted(t *testing.T) {
	c := &GRPCClient{client: &fakePB{pushResp: &pb.PushResponse{Ok: false}}}
	require.ErrorContains(t, c.Push(context.Background(), 0, emptyChanges()), "not accepted")

	c = &GRPCClient{client: &fakePB{pushResp: &pb.PushResponse{Ok: true}}}
	require.NoError(t, c.Push(context.Background(), 0, emptyChanges()))
}

func TestClose_WithoutConnection(t *testing.T) {
	assert.NoError(t, (&GRPCClient{}).Close())
}

func TestListUsers_BuildsQuery(t *testing.T) {
	f := &fakePB{listUsersResp: &pb.ListUsersResponse{Users: []*pb.User{{Id: "u1", Name: "Ann"}}}}
	c := &GRPCClient{client: f}

	users, err := c.ListUsers(context.Background(), UserSearch{Name: "an%", OrderBy: "name", Desc: true, Skip: 2, Take: 5})
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "Ann", users[0].Name)

	assert.Equal(t, "an%", f.lastListUsers.GetName())
	assert.Equal(t, int32(2), f.lastListUsers.GetSkip())
	assert.Equal(t, int32(5), f.lastListUsers.GetTake())
	require.Len(t, f.lastListUsers.GetOrderBy(), 1)
	assert.Equal(t, "name", f.lastListUsers.GetOrderBy()[0].GetField())
	assert.True(t, f.lastListUsers.GetOrderBy()[0].GetDesc())

	_, err = c.ListUsers(context.Background(), UserSearch{})
	require.NoError(t, err)
	assert.Empty(t, f.lastListUsers.GetOrderBy())
}

func TestGetMessages_PassesCursor(t *testing.T) {
	cursor := int64(1700)
	f := &fakePB{getMessagesResp: &pb.GetMessagesResponse{
		Messages: []*pb.Message{{Id: "m1", RoomId: "r1", CreatedAt: 1700}},
		Cursor:   &cursor,
		HasMore:  true,
	}}
	c := &GRPCClient{client: f}

	before := int64(2000)
	page, err := c.GetMessages(context.Background(), "r1", &before, 1)
	require.NoError(t, err)
	assert.Equal(t, "r1", f.lastGetMessages.GetRoomId())
	assert.Equal(t, before, f.lastGetMessages.GetBefore())
	assert.Equal(t, int32(1), f.lastGetMessages.GetLimit())

	require.Len(t, page.Messages, 1)
	assert.Equal(t, "m1", page.Messages[0].ID)
	assert.True(t, page.HasMore)
	assert.Equal(t, cursor, *page.Cursor)
}
