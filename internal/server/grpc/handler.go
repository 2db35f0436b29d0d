package grpc

import (
	"context"

	pb "github.com/dmitrijs2005/chatsync/internal/proto"
	"github.com/dmitrijs2005/chatsync/internal/server/models"
	"github.com/dmitrijs2005/chatsync/internal/timex"
	"github.com/dmitrijs2005/chatsync/internal/wire"
)

func (s *GRPCServer) Ping(ctx context.Context, _ *pb.PingRequest) (*pb.PingResponse, error) {
	return &pb.PingResponse{Message: "OK"}, nil
}

func (s *GRPCServer) CreateAccount(ctx context.Context, in *pb.CreateAccountRequest) (*pb.Account, error) {
	user, err := s.users.CreateAccount(ctx, in.GetName(), in.GetEmail(), in.GetPassword(), in.PictureUri)
	if err != nil {
		return nil, s.toStatus(ctx, "CreateAccount", err)
	}

	s.logger.Info(ctx, "Registered", "user_id", user.ID)
	return &pb.Account{
		Id:         user.ID,
		Name:       user.Name,
		Email:      user.Email,
		PictureUri: user.PictureURI,
		Role:       string(user.Role),
		CreatedAt:  timex.Millis(user.CreatedAt),
		UpdatedAt:  timex.Millis(user.UpdatedAt),
	}, nil
}

func (s *GRPCServer) SignIn(ctx context.Context, in *pb.SignInRequest) (*pb.TokenPair, error) {
	tokens, err := s.users.SignIn(ctx, in.GetEmail(), in.GetPassword())
	if err != nil {
		return nil, s.toStatus(ctx, "SignIn", err)
	}
	return &pb.TokenPair{AccessToken: tokens.AccessToken, RefreshToken: tokens.RefreshToken, SessionId: tokens.SessionID}, nil
}

func (s *GRPCServer) RefreshToken(ctx context.Context, in *pb.RefreshTokenRequest) (*pb.TokenPair, error) {
	tokens, err := s.users.RefreshToken(ctx, in.GetRefreshToken())
	if err != nil {
		return nil, s.toStatus(ctx, "RefreshToken", err)
	}
	return &pb.TokenPair{AccessToken: tokens.AccessToken, RefreshToken: tokens.RefreshToken, SessionId: tokens.SessionID}, nil
}

func (s *GRPCServer) Me(ctx context.Context, _ *pb.MeRequest) (*pb.Account, error) {
	userID, err := userIDFrom(ctx)
	if err != nil {
		return nil, err
	}
	me, err := s.users.Me(ctx, userID)
	if err != nil {
		return nil, s.toStatus(ctx, "Me", err)
	}
	return accountFromAttributes(me), nil
}

// accountFromAttributes copies the attributes the caller was allowed to read.
func accountFromAttributes(attrs map[string]any) *pb.Account {
	a := &pb.Account{}
	a.Id, _ = attrs["id"].(string)
	a.Name, _ = attrs["name"].(string)
	a.Email, _ = attrs["email"].(string)
	a.Role, _ = attrs["role"].(string)
	a.PictureUri, _ = attrs["picture_uri"].(*string)
	a.PublicKey, _ = attrs["public_key"].(*string)
	a.DerivedSalt, _ = attrs["derived_salt"].(*string)
	a.CreatedAt, _ = attrs["created_at"].(int64)
	a.UpdatedAt, _ = attrs["updated_at"].(int64)
	if v, ok := attrs["last_access_at"].(int64); ok {
		a.LastAccessAt = &v
	}
	return a
}

func (s *GRPCServer) StartFollowing(ctx context.Context, in *pb.FollowRequest) (*pb.FollowResponse, error) {
	userID, err := userIDFrom(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.users.StartFollowing(ctx, userID, in.GetUserId()); err != nil {
		return nil, s.toStatus(ctx, "StartFollowing", err)
	}
	return &pb.FollowResponse{}, nil
}

func (s *GRPCServer) StopFollowing(ctx context.Context, in *pb.FollowRequest) (*pb.FollowResponse, error) {
	userID, err := userIDFrom(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.users.StopFollowing(ctx, userID, in.GetUserId()); err != nil {
		return nil, s.toStatus(ctx, "StopFollowing", err)
	}
	return &pb.FollowResponse{}, nil
}

func (s *GRPCServer) ListUsers(ctx context.Context, in *pb.ListUsersRequest) (*pb.ListUsersResponse, error) {
	if _, err := userIDFrom(ctx); err != nil {
		return nil, err
	}
	q := models.UserQuery{
		Name:  in.GetName(),
		Email: in.GetEmail(),
		Skip:  int(in.GetSkip()),
		Take:  int(in.GetTake()),
	}
	for _, o := range in.GetOrderBy() {
		q.OrderBy = append(q.OrderBy, models.UserOrder{Field: models.UserOrderField(o.GetField()), Desc: o.GetDesc()})
	}

	found, err := s.users.ListUsers(ctx, q)
	if err != nil {
		return nil, s.toStatus(ctx, "ListUsers", err)
	}
	out := &pb.ListUsersResponse{Users: make([]*pb.User, 0, len(found))}
	for _, u := range found {
		out.Users = append(out.Users, pb.UserToPB(wire.UserRecord{
			ID:          u.ID,
			Name:        u.Name,
			Email:       u.Email,
			PictureURI:  u.PictureURI,
			Role:        string(u.Role),
			PublicKey:   u.PublicKey,
			DerivedSalt: u.DerivedSalt,
			CreatedAt:   timex.Millis(u.CreatedAt),
			UpdatedAt:   timex.Millis(u.UpdatedAt),
		}))
	}
	return out, nil
}

func (s *GRPCServer) ForgotPassword(ctx context.Context, in *pb.ForgotPasswordRequest) (*pb.ForgotPasswordResponse, error) {
	if err := s.users.ForgotPassword(ctx, in.GetEmail()); err != nil {
		return nil, s.toStatus(ctx, "ForgotPassword", err)
	}
	return &pb.ForgotPasswordResponse{}, nil
}

func (s *GRPCServer) ChangePassword(ctx context.Context, in *pb.ChangePasswordRequest) (*pb.ChangePasswordResponse, error) {
	if err := s.users.ChangePassword(ctx, in.GetCode(), in.GetPassword()); err != nil {
		return nil, s.toStatus(ctx, "ChangePassword", err)
	}
	return &pb.ChangePasswordResponse{}, nil
}

func (s *GRPCServer) RegisterDevice(ctx context.Context, in *pb.RegisterDeviceRequest) (*pb.Device, error) {
	userID, err := userIDFrom(ctx)
	if err != nil {
		return nil, err
	}

	d, err := s.devices.RegisterDevice(ctx, userID, in.GetName(), in.GetToken(), models.DevicePlatform(in.GetPlatform()))
	if err != nil {
		return nil, s.toStatus(ctx, "RegisterDevice", err)
	}
	return &pb.Device{Id: d.ID, Name: d.Name, Platform: string(d.Platform)}, nil
}

func (s *GRPCServer) UnregisterDevices(ctx context.Context, in *pb.UnregisterDevicesRequest) (*pb.UnregisterDevicesResponse, error) {
	userID, err := userIDFrom(ctx)
	if err != nil {
		return nil, err
	}
	tokens := make([]string, 0, len(in.GetTokens()))
	for _, t := range in.GetTokens() {
		if t != "" {
			tokens = append(tokens, t)
		}
	}
	if err := s.devices.UnregisterDevices(ctx, userID, tokens); err != nil {
		return nil, s.toStatus(ctx, "UnregisterDevices", err)
	}
	return &pb.UnregisterDevicesResponse{}, nil
}

func (s *GRPCServer) UpdateRoomPreferences(ctx context.Context, in *pb.RoomPreferences) (*pb.RoomPreferences, error) {
	userID, err := userIDFrom(ctx)
	if err != nil {
		return nil, err
	}

	p, err := s.preferences.UpdateRoomPreferences(ctx, userID, in.GetRoomId(), in.GetIsMuted(), in.GetShouldStillNotify(), timex.FromMillisPtr(in.MutedUntil))
	if err != nil {
		return nil, s.toStatus(ctx, "UpdateRoomPreferences", err)
	}
	return &pb.RoomPreferences{
		RoomId:            p.RoomID,
		IsMuted:           p.IsMuted,
		ShouldStillNotify: p.ShouldStillNotify,
		MutedUntil:        timex.MillisPtr(p.MutedUntil),
	}, nil
}

func (s *GRPCServer) AttachmentUploadURL(ctx context.Context, _ *pb.UploadURLRequest) (*pb.UploadURLResponse, error) {
	userID, err := userIDFrom(ctx)
	if err != nil {
		return nil, err
	}
	key, url, err := s.attachments.UploadURL(ctx, userID)
	if err != nil {
		return nil, s.toStatus(ctx, "AttachmentUploadURL", err)
	}
	return &pb.UploadURLResponse{Key: key, Url: url}, nil
}

func (s *GRPCServer) AttachmentDownloadURL(ctx context.Context, in *pb.DownloadURLRequest) (*pb.DownloadURLResponse, error) {
	userID, err := userIDFrom(ctx)
	if err != nil {
		return nil, err
	}
	url, err := s.attachments.DownloadURL(ctx, userID, in.GetKey())
	if err != nil {
		return nil, s.toStatus(ctx, "AttachmentDownloadURL", err)
	}
	return &pb.DownloadURLResponse{Url: url}, nil
}

func (s *GRPCServer) PullChanges(ctx context.Context, in *pb.PullRequest) (*pb.PullResponse, error) {
	userID, err := userIDFrom(ctx)
	if err != nil {
		return nil, err
	}

	res, err := s.engine.Pull(ctx, userID, in.LastPulledAt)
	if err != nil {
		return nil, s.toStatus(ctx, "PullChanges", err)
	}
	return pb.PullResultToPB(res), nil
}

func (s *GRPCServer) PushChanges(ctx context.Context, in *pb.PushRequest) (*pb.PushResponse, error) {
	userID, err := userIDFrom(ctx)
	if err != nil {
		return nil, err
	}

	ok, err := s.engine.Push(ctx, userID, sessionIDFrom(ctx), in.GetLastPulledAt(), pb.ChangesFromPB(in.GetChanges()))
	if err != nil {
		return nil, s.toStatus(ctx, "PushChanges", err)
	}
	return &pb.PushResponse{Ok: ok}, nil
}

func (s *GRPCServer) GetMessages(ctx context.Context, in *pb.GetMessagesRequest) (*pb.GetMessagesResponse, error) {
	userID, err := userIDFrom(ctx)
	if err != nil {
		return nil, err
	}

	page, err := s.engine.History(ctx, userID, in.GetRoomId(), in.Before, int(in.GetLimit()))
	if err != nil {
		return nil, s.toStatus(ctx, "GetMessages", err)
	}
	return pb.MessagePageToPB(page), nil
}

// ShouldSync streams a signal each time another session changes one of the
// caller's rooms. Signals that arrive while one is pending are merged.
func (s *GRPCServer) ShouldSync(in *pb.ShouldSyncRequest, stream pb.ChatSync_ShouldSyncServer) error {
	ctx := stream.Context()
	userID, err := userIDFrom(ctx)
	if err != nil {
		return err
	}

	sub := s.hub.Subscribe(sessionIDFrom(ctx), userID, in.GetRoomIds())
	defer s.hub.Unsubscribe(sub)
	s.logger.Debug(ctx, "should-sync subscribed", "user_id", userID, "rooms", len(in.GetRoomIds()))

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-sub.C:
			if err := stream.Send(&pb.ShouldSyncResponse{ShouldSync: true}); err != nil {
				return err
			}
		}
	}
}
