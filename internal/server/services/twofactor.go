package services

import (
	"context"

	"github.com/dmitrijs2005/adminauth/internal/server/twofactor"
)

// BeginTwoFactorEnrollment starts TOTP enrollment for the account. The
// returned backup codes are shown once and cannot be retrieved again.
// Calling it again while enrollment is pending verification replaces the
// secret and backup codes, so only the latest material can be confirmed.
// An enabled account fails with common.ErrTwoFactorAlreadyEnabled.
func (s *AuthService) BeginTwoFactorEnrollment(ctx context.Context, accountID string) (*twofactor.Material, error) {
	m, err := s.enrollment.Begin(ctx, accountID)
	if err != nil {
		return nil, err
	}
	s.logger.Info(ctx, "two-factor enrollment started", "user_id", accountID)
	return m, nil
}

func (s *AuthService) ConfirmTwoFactorEnrollment(ctx context.Context, accountID, code string) error {
	if err := s.enrollment.Confirm(ctx, accountID, code); err != nil {
		return err
	}
	s.logger.Info(ctx, "two-factor enabled", "user_id", accountID)
	return nil
}

func (s *AuthService) DisableTwoFactor(ctx context.Context, accountID string, code twofactor.Code) error {
	if err := s.enrollment.Disable(ctx, accountID, code); err != nil {
		return err
	}
	s.logger.Warn(ctx, "two-factor disabled", "user_id", accountID)
	return nil
}

func (s *AuthService) RegenerateBackupCodes(ctx context.Context, accountID string) ([]string, error) {
	codes, err := s.enrollment.RegenerateBackupCodes(ctx, accountID)
	if err != nil {
		return nil, err
	}
	s.logger.Info(ctx, "backup codes regenerated", "user_id", accountID)
	return codes, nil
}
