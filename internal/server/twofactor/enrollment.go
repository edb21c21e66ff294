package twofactor

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/adminauth/internal/common"
	"github.com/dmitrijs2005/adminauth/internal/server/models"
	"github.com/dmitrijs2005/adminauth/internal/server/repositories/users"
)

// Material is handed to the user once when enrollment begins.
type Material struct {
	Secret string
	// QRPayload is the otpauth:// URL to render as a QR code.
	QRPayload   string
	BackupCodes []string
}

// Enrollment drives the Disabled -> PendingVerification -> Enabled state
// machine and back to Disabled.
type Enrollment struct {
	store           users.Store
	challenge       *Challenge
	backupCodeCount int
}

func NewEnrollment(store users.Store, challenge *Challenge, backupCodeCount int) *Enrollment {
	return &Enrollment{store: store, challenge: challenge, backupCodeCount: backupCodeCount}
}

// Begin generates a secret and a backup code batch and stores them
// unactivated. Allowed from Disabled, and from PendingVerification to
// re-scan; an Enabled account fails with common.ErrTwoFactorAlreadyEnabled.
func (e *Enrollment) Begin(ctx context.Context, accountID string) (*Material, error) {
	var m *Material
	_, err := e.store.Update(ctx, accountID, func(u *models.User) error {
		if u.TwoFactor.State() == models.TwoFactorEnabled {
			return common.ErrTwoFactorAlreadyEnabled
		}

		key, err := e.challenge.totp.NewKey(u.Email)
		if err != nil {
			return fmt.Errorf("generate totp key: %w", err)
		}
		sealed, err := e.challenge.box.Seal(key.Secret())
		if err != nil {
			return fmt.Errorf("seal totp secret: %w", err)
		}
		plain, stored, err := NewBackupCodes(e.backupCodeCount)
		if err != nil {
			return fmt.Errorf("generate backup codes: %w", err)
		}

		u.TwoFactor = models.TwoFactor{Secret: sealed, BackupCodes: stored}
		m = &Material{Secret: key.Secret(), QRPayload: key.URL(), BackupCodes: plain}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

// Confirm activates a pending enrollment once the user proves the
// authenticator works. A wrong code leaves the state unchanged.
func (e *Enrollment) Confirm(ctx context.Context, accountID, code string) error {
	_, err := e.store.Update(ctx, accountID, func(u *models.User) error {
		switch u.TwoFactor.State() {
		case models.TwoFactorDisabled:
			return common.ErrEnrollmentNotStarted
		case models.TwoFactorEnabled:
			return common.ErrTwoFactorAlreadyEnabled
		}

		secret, err := e.challenge.box.Open(u.TwoFactor.Secret)
		if err != nil {
			return fmt.Errorf("open totp secret: %w", err)
		}
		now := e.challenge.now()
		step, ok, err := e.challenge.totp.Match(secret, code, now, u.TwoFactor.LastUsedStep)
		if err != nil {
			return fmt.Errorf("totp: %w", err)
		}
		if !ok {
			return common.ErrInvalidTwoFactorCode
		}

		enabledAt := now
		u.TwoFactor.Enabled = true
		u.TwoFactor.EnabledAt = &enabledAt
		u.TwoFactor.LastUsedStep = step
		return nil
	})
	return err
}

// Disable turns 2FA off. A currently valid TOTP or backup code is required
// so a stolen session alone cannot downgrade the account.
func (e *Enrollment) Disable(ctx context.Context, accountID string, code Code) error {
	if code == nil {
		return common.ErrorBadRequest
	}
	_, err := e.store.Update(ctx, accountID, func(u *models.User) error {
		outcome, err := e.challenge.Check(u, code)
		if err != nil {
			return err
		}
		if outcome != Success {
			return outcome.Err()
		}
		u.TwoFactor = models.TwoFactor{}
		return nil
	})
	return err
}

// RegenerateBackupCodes replaces every backup code of an enabled account
// and returns the new plaintext codes.
func (e *Enrollment) RegenerateBackupCodes(ctx context.Context, accountID string) ([]string, error) {
	var codes []string
	_, err := e.store.Update(ctx, accountID, func(u *models.User) error {
		if u.TwoFactor.State() != models.TwoFactorEnabled {
			return common.ErrTwoFactorNotEnabled
		}
		plain, stored, err := NewBackupCodes(e.backupCodeCount)
		if err != nil {
			return fmt.Errorf("generate backup codes: %w", err)
		}
		u.TwoFactor.BackupCodes = stored
		codes = plain
		return nil
	})
	if err != nil {
		return nil, err
	}
	return codes, nil
}
