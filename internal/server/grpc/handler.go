package grpc

import (
	"context"

	pb "github.com/dmitrijs2005/adminauth/internal/proto"
	"github.com/dmitrijs2005/adminauth/internal/server/auth"
	"github.com/dmitrijs2005/adminauth/internal/server/services"
	"github.com/dmitrijs2005/adminauth/internal/server/twofactor"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func tokenResponse(p *auth.TokenPair) *pb.TokenResponse {
	return &pb.TokenResponse{
		AccessToken:  p.AccessToken,
		RefreshToken: p.RefreshToken,
		ExpiresIn:    int64(p.ExpiresIn.Seconds()),
	}
}

// secondFactor builds the tagged code from a request carrying two optional
// fields. Exactly one must be set.
func secondFactor(code, backupCode string) (twofactor.Code, error) {
	switch {
	case code != "" && backupCode == "":
		return twofactor.TOTPCode(code), nil
	case backupCode != "" && code == "":
		return twofactor.BackupCode(backupCode), nil
	default:
		return nil, status.Error(codes.InvalidArgument, "exactly one of code or backup_code is required")
	}
}

func (s *GRPCServer) principal(ctx context.Context) (*services.Principal, error) {
	p, ok := principalFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}
	return p, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {

	if req.Email == "" || req.Password == "" {
		return nil, status.Error(codes.InvalidArgument, "email and password are required")
	}

	res, err := s.auth.Login(ctx, req.Email, req.Password)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	if res.RequiresTwoFactor {
		return &pb.LoginResponse{RequiresTwoFactor: true, PendingToken: res.PendingToken}, nil
	}

	t := tokenResponse(res.Tokens)
	return &pb.LoginResponse{AccessToken: t.AccessToken, RefreshToken: t.RefreshToken, ExpiresIn: t.ExpiresIn}, nil
}

func (s *GRPCServer) VerifyTwoFactor(ctx context.Context, req *pb.VerifyTwoFactorRequest) (*pb.TokenResponse, error) {

	code, err := secondFactor(req.Code, req.BackupCode)
	if err != nil {
		return nil, err
	}

	pair, err := s.auth.VerifyTwoFactorLogin(ctx, req.PendingToken, code)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return tokenResponse(pair), nil
}

func (s *GRPCServer) Refresh(ctx context.Context, req *pb.RefreshRequest) (*pb.TokenResponse, error) {

	pair, err := s.auth.Refresh(ctx, req.RefreshToken)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return tokenResponse(pair), nil
}

func (s *GRPCServer) Me(ctx context.Context, _ *pb.Empty) (*pb.MeResponse, error) {

	p, err := s.principal(ctx)
	if err != nil {
		return nil, err
	}

	return &pb.MeResponse{
		Id:               p.ID,
		Email:            p.Email,
		Role:             p.Role,
		SessionId:        p.SessionID,
		TwoFactorEnabled: p.TwoFactorEnabled,
	}, nil
}

func (s *GRPCServer) Logout(ctx context.Context, _ *pb.Empty) (*pb.Empty, error) {

	token, ok := accessTokenFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	if err := s.auth.Logout(ctx, token); err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &pb.Empty{}, nil
}

func (s *GRPCServer) ChangePassword(ctx context.Context, req *pb.ChangePasswordRequest) (*pb.Empty, error) {

	p, err := s.principal(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.auth.ChangePassword(ctx, p.ID, req.OldPassword, req.NewPassword); err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &pb.Empty{}, nil
}

func (s *GRPCServer) BeginTwoFactor(ctx context.Context, _ *pb.Empty) (*pb.BeginTwoFactorResponse, error) {

	p, err := s.principal(ctx)
	if err != nil {
		return nil, err
	}

	m, err := s.auth.BeginTwoFactorEnrollment(ctx, p.ID)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &pb.BeginTwoFactorResponse{Secret: m.Secret, QrPayload: m.QRPayload, BackupCodes: m.BackupCodes}, nil
}

func (s *GRPCServer) ConfirmTwoFactor(ctx context.Context, req *pb.ConfirmTwoFactorRequest) (*pb.Empty, error) {

	p, err := s.principal(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.auth.ConfirmTwoFactorEnrollment(ctx, p.ID, req.Code); err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &pb.Empty{}, nil
}

func (s *GRPCServer) DisableTwoFactor(ctx context.Context, req *pb.DisableTwoFactorRequest) (*pb.Empty, error) {

	p, err := s.principal(ctx)
	if err != nil {
		return nil, err
	}

	code, err := secondFactor(req.Code, req.BackupCode)
	if err != nil {
		return nil, err
	}

	if err := s.auth.DisableTwoFactor(ctx, p.ID, code); err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &pb.Empty{}, nil
}

func (s *GRPCServer) RegenerateBackupCodes(ctx context.Context, _ *pb.Empty) (*pb.BackupCodesResponse, error) {

	p, err := s.principal(ctx)
	if err != nil {
		return nil, err
	}

	batch, err := s.auth.RegenerateBackupCodes(ctx, p.ID)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &pb.BackupCodesResponse{BackupCodes: batch}, nil
}

func (s *GRPCServer) ResetPassword(ctx context.Context, req *pb.ResetPasswordRequest) (*pb.Empty, error) {

	if err := s.auth.ResetPassword(ctx, req.ResetToken, req.NewPassword); err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &pb.Empty{}, nil
}

func (s *GRPCServer) Ping(ctx context.Context, _ *pb.Empty) (*pb.PingResponse, error) {

	return &pb.PingResponse{Status: "OK"}, nil

}
