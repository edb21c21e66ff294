// Package grpc exposes AuthService over gRPC using the stubs generated from
// api/adminauth.proto.
package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/adminauth/internal/logging"
	pb "github.com/dmitrijs2005/adminauth/internal/proto"
	"github.com/dmitrijs2005/adminauth/internal/server/auth"
	"github.com/dmitrijs2005/adminauth/internal/server/services"
	"github.com/dmitrijs2005/adminauth/internal/server/twofactor"
	"google.golang.org/grpc"
)

// AuthService is the use-case API the transport calls into.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*services.LoginResult, error)
	VerifyTwoFactorLogin(ctx context.Context, pendingToken string, code twofactor.Code) (*auth.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*auth.TokenPair, error)
	GetCurrentPrincipal(ctx context.Context, accessToken string) (*services.Principal, error)
	Logout(ctx context.Context, accessToken string) error
	ChangePassword(ctx context.Context, accountID, oldPassword, newPassword string) error
	BeginTwoFactorEnrollment(ctx context.Context, accountID string) (*twofactor.Material, error)
	ConfirmTwoFactorEnrollment(ctx context.Context, accountID, code string) error
	DisableTwoFactor(ctx context.Context, accountID string, code twofactor.Code) error
	RegenerateBackupCodes(ctx context.Context, accountID string) ([]string, error)
	ResetPassword(ctx context.Context, resetToken, newPassword string) error
}

type GRPCServer struct {
	pb.UnimplementedAuthServiceServer

	address string
	auth    AuthService
	limiter *peerLimiter
	logger  logging.Logger
}

// NewGRPCServer builds the server. rps <= 0 disables rate limiting of the
// credential-checking methods.
func NewGRPCServer(a string, l logging.Logger, as AuthService, rps float64, burst int) *GRPCServer {
	return &GRPCServer{
		address: a,
		logger:  l.With("module", "grpc_server"),
		auth:    as,
		limiter: newPeerLimiter(rps, burst),
	}
}

func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(
		s.loggingInterceptor,
		s.rateLimitInterceptor,
		s.accessTokenInterceptor,
	))
	pb.RegisterAuthServiceServer(srv, s)
	return srv
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis until ctx is done, then stops gracefully.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	// starts accepting incoming connections
	if err := srv.Serve(lis); err != nil {
		return err
	}

	return nil
}
