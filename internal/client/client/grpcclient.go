package client

import (
	"context"
	"fmt"
	"sync"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/dmitrijs2005/chatsync/internal/common"
	pb "github.com/dmitrijs2005/chatsync/internal/proto"
	"github.com/dmitrijs2005/chatsync/internal/wire"
)

const callTimeout = 15 * time.Second

// Tokens is the session the server issued at sign-in. SessionID is kept
// across refreshes.
type Tokens struct {
	AccessToken  string
	RefreshToken string
	SessionID    string
}

func tokensFromPB(p *pb.TokenPair) Tokens {
	return Tokens{AccessToken: p.GetAccessToken(), RefreshToken: p.GetRefreshToken(), SessionID: p.GetSessionId()}
}

// UserSearch filters ListUsers. Name and Email are ILIKE patterns.
type UserSearch struct {
	Name    string
	Email   string
	OrderBy string
	Desc    bool
	Skip    int
	Take    int
}

// GRPCClient talks to the chat server. It attaches the access token to every
// call and refreshes an expired access token once per failed call.
type GRPCClient struct {
	endpointURL string
	dialOpts    []grpc.DialOption
	conn        *grpc.ClientConn
	client      pb.ChatSyncClient

	mu        sync.RWMutex
	tokens    Tokens
	onRefresh func(Tokens)
}

// NewChatSyncClientService dials endpointURL lazily. Extra options are
// appended to the defaults.
func NewChatSyncClientService(endpointURL string, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, dialOpts: opts}
	if err := c.InitGRPCClient(); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient() error {
	opts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.accessTokenInterceptor),
		grpc.WithStreamInterceptor(s.streamInterceptor),
	}, s.dialOpts...)
	conn, err := grpc.NewClient(s.endpointURL, opts...)
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewChatSyncClient(conn)
	return nil
}

func (s *GRPCClient) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

// SetSession installs tokens restored from the local database.
func (s *GRPCClient) SetSession(tokens Tokens) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens = tokens
}

// OnRefresh registers a callback invoked with every rotated token pair.
func (s *GRPCClient) OnRefresh(fn func(Tokens)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onRefresh = fn
}

func (s *GRPCClient) Tokens() Tokens {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tokens
}

func (s *GRPCClient) SessionID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tokens.SessionID
}

func (s *GRPCClient) withToken(ctx context.Context) context.Context {
	s.mu.RLock()
	token := s.tokens.AccessToken
	s.mu.RUnlock()

	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AccessTokenHeaderName)
	if token != "" {
		md.Set(common.AccessTokenHeaderName, token)
	}
	return metadata.NewOutgoingContext(ctx, md)
}

func isTokenExpired(err error) bool {
	st, ok := status.FromError(err)
	return ok && st.Code() == codes.Unauthenticated && st.Message() == common.ErrTokenExpired.Error()
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	err := invoker(s.withToken(ctx), method, req, reply, cc, opts...)
	if err == nil || !isTokenExpired(err) {
		return err
	}
	if refreshErr := s.refresh(ctx); refreshErr != nil {
		return err
	}
	return invoker(s.withToken(ctx), method, req, reply, cc, opts...)
}

func (s *GRPCClient) streamInterceptor(
	ctx context.Context,
	desc *grpc.StreamDesc,
	cc *grpc.ClientConn,
	method string,
	streamer grpc.Streamer,
	opts ...grpc.CallOption,
) (grpc.ClientStream, error) {
	return streamer(s.withToken(ctx), desc, cc, method, opts...)
}

// refresh rotates the token pair. Concurrent callers may each rotate; the
// server invalidates the old refresh token, so only the first one wins and
// the rest surface the original error.
func (s *GRPCClient) refresh(ctx context.Context) error {
	s.mu.RLock()
	refreshToken := s.tokens.RefreshToken
	s.mu.RUnlock()
	if refreshToken == "" {
		return ErrUnauthorized
	}

	resp, err := s.client.RefreshToken(ctx, &pb.RefreshTokenRequest{RefreshToken: refreshToken})
	if err != nil {
		return err
	}
	tokens := tokensFromPB(resp)

	s.mu.Lock()
	s.tokens = tokens
	onRefresh := s.onRefresh
	s.mu.Unlock()

	if onRefresh != nil {
		onRefresh(tokens)
	}
	return nil
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	resp, err := s.client.Ping(ctx, &pb.PingRequest{})
	if err != nil {
		return s.mapError(err)
	}
	if resp.GetMessage() != "OK" {
		return ErrUnavailable
	}
	return nil
}

func (s *GRPCClient) Register(ctx context.Context, name, email, password string) (*pb.Account, error) {
	account, err := s.client.CreateAccount(ctx, &pb.CreateAccountRequest{Name: name, Email: email, Password: password})
	if err != nil {
		return nil, s.mapError(err)
	}
	return account, nil
}

// Login signs in and installs the session the server issued.
func (s *GRPCClient) Login(ctx context.Context, email, password string) (Tokens, error) {
	resp, err := s.client.SignIn(ctx, &pb.SignInRequest{Email: email, Password: password})
	if err != nil {
		return Tokens{}, s.mapError(err)
	}
	tokens := tokensFromPB(resp)
	s.SetSession(tokens)
	return tokens, nil
}

func (s *GRPCClient) Me(ctx context.Context) (*pb.Account, error) {
	me, err := s.client.Me(ctx, &pb.MeRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return me, nil
}

func (s *GRPCClient) Follow(ctx context.Context, userID string) error {
	_, err := s.client.StartFollowing(ctx, &pb.FollowRequest{UserId: userID})
	return s.mapError(err)
}

func (s *GRPCClient) Unfollow(ctx context.Context, userID string) error {
	_, err := s.client.StopFollowing(ctx, &pb.FollowRequest{UserId: userID})
	return s.mapError(err)
}

func (s *GRPCClient) ListUsers(ctx context.Context, q UserSearch) ([]wire.UserRecord, error) {
	req := &pb.ListUsersRequest{Name: q.Name, Email: q.Email, Skip: int32(q.Skip), Take: int32(q.Take)}
	if q.OrderBy != "" {
		req.OrderBy = []*pb.UserOrder{{Field: q.OrderBy, Desc: q.Desc}}
	}
	resp, err := s.client.ListUsers(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}
	users := make([]wire.UserRecord, 0, len(resp.GetUsers()))
	for _, u := range resp.GetUsers() {
		users = append(users, pb.UserFromPB(u))
	}
	return users, nil
}

// ForgotPassword asks the server to mail a reset code to email.
func (s *GRPCClient) ForgotPassword(ctx context.Context, email string) error {
	_, err := s.client.ForgotPassword(ctx, &pb.ForgotPasswordRequest{Email: email})
	return s.mapError(err)
}

func (s *GRPCClient) ChangePassword(ctx context.Context, code, password string) error {
	_, err := s.client.ChangePassword(ctx, &pb.ChangePasswordRequest{Code: code, Password: password})
	return s.mapError(err)
}

func (s *GRPCClient) RegisterDevice(ctx context.Context, name, token, platform string) (*pb.Device, error) {
	d, err := s.client.RegisterDevice(ctx, &pb.RegisterDeviceRequest{Name: name, Token: token, Platform: platform})
	if err != nil {
		return nil, s.mapError(err)
	}
	return d, nil
}

func (s *GRPCClient) UnregisterDevices(ctx context.Context, tokens []string) error {
	_, err := s.client.UnregisterDevices(ctx, &pb.UnregisterDevicesRequest{Tokens: tokens})
	return s.mapError(err)
}

func (s *GRPCClient) UpdateRoomPreferences(ctx context.Context, prefs *pb.RoomPreferences) (*pb.RoomPreferences, error) {
	out, err := s.client.UpdateRoomPreferences(ctx, prefs)
	if err != nil {
		return nil, s.mapError(err)
	}
	return out, nil
}

func (s *GRPCClient) UploadURL(ctx context.Context) (*pb.UploadURLResponse, error) {
	out, err := s.client.AttachmentUploadURL(ctx, &pb.UploadURLRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return out, nil
}

func (s *GRPCClient) DownloadURL(ctx context.Context, attachmentID string) (string, error) {
	resp, err := s.client.AttachmentDownloadURL(ctx, &pb.DownloadURLRequest{Key: attachmentID})
	if err != nil {
		return "", s.mapError(err)
	}
	return resp.GetUrl(), nil
}

func (s *GRPCClient) Pull(ctx context.Context, lastPulledAt *int64) (*wire.PullResult, error) {
	resp, err := s.client.PullChanges(ctx, &pb.PullRequest{LastPulledAt: lastPulledAt})
	if err != nil {
		return nil, s.mapError(err)
	}
	return pb.PullResultFromPB(resp), nil
}

func (s *GRPCClient) Push(ctx context.Context, lastPulledAt int64, changes *wire.Changes) error {
	resp, err := s.client.PushChanges(ctx, &pb.PushRequest{LastPulledAt: lastPulledAt, Changes: pb.ChangesToPB(changes)})
	if err != nil {
		return s.mapError(err)
	}
	if !resp.GetOk() {
		return fmt.Errorf("push not accepted")
	}
	return nil
}

// GetMessages reads one page of a room's history from the server, newest
// first. before is the cursor of the previous page, nil for the newest.
func (s *GRPCClient) GetMessages(ctx context.Context, roomID string, before *int64, limit int) (*wire.MessagePage, error) {
	resp, err := s.client.GetMessages(ctx, &pb.GetMessagesRequest{RoomId: roomID, Before: before, Limit: int32(limit)})
	if err != nil {
		return nil, s.mapError(err)
	}
	return pb.MessagePageFromPB(resp), nil
}

// ShouldSync opens the signal stream for roomIDs. Every received message
// means the caller should pull.
func (s *GRPCClient) ShouldSync(ctx context.Context, roomIDs []string) (pb.ChatSync_ShouldSyncClient, error) {
	stream, err := s.client.ShouldSync(ctx, &pb.ShouldSyncRequest{RoomIds: roomIDs})
	if err != nil {
		return nil, s.mapError(err)
	}
	return stream, nil
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated:
		return ErrUnauthorized
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	case codes.NotFound:
		return fmt.Errorf("%s: %w", st.Message(), common.ErrorNotFound)
	case codes.AlreadyExists:
		return fmt.Errorf("%s: %w", st.Message(), common.ErrorAlreadyExists)
	case codes.InvalidArgument:
		return fmt.Errorf("%s: %w", st.Message(), common.ErrorValidation)
	case codes.PermissionDenied:
		return fmt.Errorf("%s: %w", st.Message(), common.ErrorForbidden)
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
