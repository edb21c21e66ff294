package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/adminauth/internal/common"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// toStatus maps a service error to a gRPC status with a user-facing
// message. Wrong email and wrong password read the same, and so do a
// wrong TOTP code and a wrong backup code.
func (s *GRPCServer) toStatus(ctx context.Context, err error) error {
	var locked *common.LockedError
	var weak *common.WeakPasswordError

	switch {
	case errors.As(err, &locked):
		return status.Error(codes.PermissionDenied, locked.Error())
	case errors.As(err, &weak):
		return status.Error(codes.InvalidArgument, weak.Error())

	case errors.Is(err, common.ErrInvalidCredentials):
		return status.Error(codes.Unauthenticated, "invalid email or password")
	case errors.Is(err, common.ErrAccountInactive):
		return status.Error(codes.PermissionDenied, "account inactive")

	case errors.Is(err, common.ErrInvalidTwoFactorCode), errors.Is(err, common.ErrInvalidBackupCode):
		return status.Error(codes.InvalidArgument, "invalid code")
	case errors.Is(err, common.ErrChallengeExpired):
		return status.Error(codes.Unauthenticated, "verification expired, please log in again")
	case errors.Is(err, common.ErrTwoFactorNotEnabled),
		errors.Is(err, common.ErrTwoFactorAlreadyEnabled),
		errors.Is(err, common.ErrEnrollmentNotStarted):
		return status.Error(codes.FailedPrecondition, err.Error())

	case errors.Is(err, common.ErrTokenExpired):
		return status.Error(codes.Unauthenticated, "token expired, please log in again")
	case errors.Is(err, common.ErrTokenMalformed), errors.Is(err, common.ErrWrongTokenKind):
		return status.Error(codes.Unauthenticated, "invalid token")

	case errors.Is(err, common.ErrorBadRequest):
		return status.Error(codes.InvalidArgument, "bad request")
	case errors.Is(err, common.ErrVersionConflict):
		return status.Error(codes.Aborted, "concurrent update, retry")
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, "canceled")
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, "deadline exceeded")
	}

	s.logger.Error(ctx, "internal error", "error", err)
	return status.Error(codes.Internal, "internal error")
}
