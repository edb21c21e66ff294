package services

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/adminauth/internal/common"
	"github.com/dmitrijs2005/adminauth/internal/server/models"
	"github.com/dmitrijs2005/adminauth/internal/server/passwords"
	"github.com/dmitrijs2005/adminauth/internal/server/twofactor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChangePassword_WeakPasswordKeepsHash(t *testing.T) {
	e := newEnv(t)
	before := e.reload(t).PasswordHash

	err := e.svc.ChangePassword(context.Background(), e.user.ID, testPassword, "No-Digits-Here")
	var weak *common.WeakPasswordError
	require.ErrorAs(t, err, &weak)
	assert.Equal(t, passwords.RuleDigit, weak.Rule)
	assert.ErrorIs(t, err, common.ErrWeakPassword)

	assert.Equal(t, before, e.reload(t).PasswordHash)
}

func TestChangePassword_WrongOldPassword(t *testing.T) {
	e := newEnv(t)

	err := e.svc.ChangePassword(context.Background(), e.user.ID, "Wrong-Password-1", "Brand-New-Pass-2")
	assert.ErrorIs(t, err, common.ErrInvalidCredentials)
	assert.Equal(t, 1, e.reload(t).LoginAttempts)
}

func TestChangePassword_WrongOldPasswordLocksAccount(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	before := e.reload(t).PasswordHash

	var locked *common.LockedError
	for i := 0; i < 20; i++ {
		err := e.svc.ChangePassword(ctx, e.user.ID, "Wrong-Password-1", "Brand-New-Pass-2")
		if i < e.cfg.MaxLoginAttempts {
			assert.ErrorIs(t, err, common.ErrInvalidCredentials, "attempt %d", i+1)
		} else {
			assert.ErrorAs(t, err, &locked, "attempt %d", i+1)
		}
	}

	u := e.reload(t)
	require.NotNil(t, u.LockUntil)
	assert.Equal(t, e.cfg.MaxLoginAttempts, u.LoginAttempts)

	// the right password is refused while locked
	err := e.svc.ChangePassword(ctx, e.user.ID, testPassword, "Brand-New-Pass-2")
	require.ErrorAs(t, err, &locked)
	assert.Equal(t, before, e.reload(t).PasswordHash)
	_, err = e.svc.Login(ctx, testEmail, testPassword)
	assert.ErrorAs(t, err, &locked)

	e.clock.Advance(e.cfg.LockoutDuration + time.Second)
	require.NoError(t, e.svc.ChangePassword(ctx, e.user.ID, testPassword, "Brand-New-Pass-2"))
	assert.Equal(t, 0, e.reload(t).LoginAttempts)
}

func TestChangePassword_Success(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	_, err := e.store.Update(ctx, e.user.ID, func(u *models.User) error {
		u.LoginAttempts = 3
		return nil
	})
	require.NoError(t, err)

	require.NoError(t, e.svc.ChangePassword(ctx, e.user.ID, testPassword, "Brand-New-Pass-2"))
	assert.Equal(t, 0, e.reload(t).LoginAttempts)

	_, err = e.svc.Login(ctx, testEmail, testPassword)
	assert.ErrorIs(t, err, common.ErrInvalidCredentials)
	_, err = e.svc.Login(ctx, testEmail, "Brand-New-Pass-2")
	assert.NoError(t, err)
}

func TestPasswordReset_SingleUse(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	token, err := e.svc.RequestPasswordReset(ctx, "Admin@Example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	// a reset token is not a session credential
	_, err = e.svc.GetCurrentPrincipal(ctx, token)
	assert.ErrorIs(t, err, common.ErrWrongTokenKind)

	err = e.svc.ResetPassword(ctx, token, "short")
	assert.ErrorIs(t, err, common.ErrWeakPassword)

	require.NoError(t, e.svc.ResetPassword(ctx, token, "Reset-Pass-123"))
	_, err = e.svc.Login(ctx, testEmail, "Reset-Pass-123")
	require.NoError(t, err)

	err = e.svc.ResetPassword(ctx, token, "Another-Pass-456")
	assert.ErrorIs(t, err, common.ErrTokenExpired)
}

func TestPasswordReset_UnknownEmailAndExpiry(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	token, err := e.svc.RequestPasswordReset(ctx, "ghost@example.com")
	require.NoError(t, err)
	assert.Empty(t, token)

	token, err = e.svc.RequestPasswordReset(ctx, testEmail)
	require.NoError(t, err)

	e.clock.Advance(e.cfg.PasswordResetValidityDuration + time.Second)
	err = e.svc.ResetPassword(ctx, token, "Reset-Pass-123")
	assert.ErrorIs(t, err, common.ErrTokenExpired)
}

func TestPasswordReset_ClearsLockout(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	for i := 0; i < e.cfg.MaxLoginAttempts; i++ {
		_, _ = e.svc.Login(ctx, testEmail, "Wrong-Password-1")
	}
	require.NotNil(t, e.reload(t).LockUntil)

	token, err := e.svc.RequestPasswordReset(ctx, testEmail)
	require.NoError(t, err)
	require.NoError(t, e.svc.ResetPassword(ctx, token, "Reset-Pass-123"))

	u := e.reload(t)
	assert.Nil(t, u.LockUntil)
	assert.Equal(t, 0, u.LoginAttempts)
}

func TestTwoFactorManagement(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	_, err := e.svc.RegenerateBackupCodes(ctx, e.user.ID)
	assert.ErrorIs(t, err, common.ErrTwoFactorNotEnabled)

	secret, backup := e.enable2FA(t)
	assert.Len(t, backup, e.cfg.BackupCodeCount)

	codes, err := e.svc.RegenerateBackupCodes(ctx, e.user.ID)
	require.NoError(t, err)
	assert.Len(t, codes, e.cfg.BackupCodeCount)

	// old codes no longer disable
	err = e.svc.DisableTwoFactor(ctx, e.user.ID, twofactor.BackupCode(backup[0]))
	assert.ErrorIs(t, err, common.ErrInvalidBackupCode)

	code, err := e.totp().CodeAt(secret, e.clock.Now())
	require.NoError(t, err)
	require.NoError(t, e.svc.DisableTwoFactor(ctx, e.user.ID, twofactor.TOTPCode(code)))

	res, err := e.svc.Login(ctx, testEmail, testPassword)
	require.NoError(t, err)
	assert.False(t, res.RequiresTwoFactor)
}

func TestBeginTwoFactorEnrollment_RestartWhilePending(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	first, err := e.svc.BeginTwoFactorEnrollment(ctx, e.user.ID)
	require.NoError(t, err)
	second, err := e.svc.BeginTwoFactorEnrollment(ctx, e.user.ID)
	require.NoError(t, err)
	assert.NotEqual(t, first.Secret, second.Secret)

	stale, err := e.totp().CodeAt(first.Secret, e.clock.Now())
	require.NoError(t, err)
	fresh, err := e.totp().CodeAt(second.Secret, e.clock.Now())
	require.NoError(t, err)
	if stale != fresh {
		assert.ErrorIs(t, e.svc.ConfirmTwoFactorEnrollment(ctx, e.user.ID, stale), common.ErrInvalidTwoFactorCode)
	}
	require.NoError(t, e.svc.ConfirmTwoFactorEnrollment(ctx, e.user.ID, fresh))

	_, err = e.svc.BeginTwoFactorEnrollment(ctx, e.user.ID)
	assert.ErrorIs(t, err, common.ErrTwoFactorAlreadyEnabled)
}
