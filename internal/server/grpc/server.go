// Package grpc exposes the ChatSync service over gRPC.
package grpc

import (
	"context"
	"net"

	"google.golang.org/grpc"

	"github.com/dmitrijs2005/chatsync/internal/logging"
	pb "github.com/dmitrijs2005/chatsync/internal/proto"
	"github.com/dmitrijs2005/chatsync/internal/server/notify"
	"github.com/dmitrijs2005/chatsync/internal/server/services"
	"github.com/dmitrijs2005/chatsync/internal/server/syncengine"
)

// Services are the collaborators the handlers delegate to.
type Services struct {
	Users       *services.UserService
	Devices     *services.DeviceService
	Preferences *services.PreferencesService
	Attachments *services.AttachmentService
	Engine      *syncengine.Engine
	Hub         *notify.Hub
}

type GRPCServer struct {
	pb.UnimplementedChatSyncServer
	address     string
	users       *services.UserService
	devices     *services.DeviceService
	preferences *services.PreferencesService
	attachments *services.AttachmentService
	engine      *syncengine.Engine
	hub         *notify.Hub
	logger      logging.Logger
	jwtSecret   []byte
}

func NewGRPCServer(a string, l logging.Logger, secretKey string, svc Services) *GRPCServer {
	return &GRPCServer{
		address:     a,
		logger:      l.With("module", "grpc_server"),
		users:       svc.Users,
		devices:     svc.Devices,
		preferences: svc.Preferences,
		attachments: svc.Attachments,
		engine:      svc.Engine,
		hub:         svc.Hub,
		jwtSecret:   []byte(secretKey),
	}
}

// Run listens on the configured address and serves until ctx is done.
func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve serves on lis until ctx is done, then stops gracefully.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(s.accessTokenInterceptor),
		grpc.ChainStreamInterceptor(s.streamAccessTokenInterceptor),
	)
	pb.RegisterChatSyncServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	if err := srv.Serve(lis); err != nil {
		return err
	}
	return nil
}
