package services

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/adminauth/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAccount(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	u, err := e.svc.CreateAccount(ctx, " Ops@Example.com ", "Another-Pass-2", "operator")
	require.NoError(t, err)
	assert.Equal(t, "ops@example.com", u.Email)
	assert.True(t, u.IsActive)
	assert.NotEqual(t, "Another-Pass-2", u.PasswordHash)

	res, err := e.svc.Login(ctx, "ops@example.com", "Another-Pass-2")
	require.NoError(t, err)
	assert.NotNil(t, res.Tokens)
}

func TestCreateAccount_Rejects(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	_, err := e.svc.CreateAccount(ctx, testEmail, "Another-Pass-2", "admin")
	assert.ErrorIs(t, err, common.ErrorAlreadyExists)

	_, err = e.svc.CreateAccount(ctx, "new@example.com", "weak", "admin")
	assert.ErrorIs(t, err, common.ErrWeakPassword)

	_, err = e.svc.CreateAccount(ctx, "  ", "Another-Pass-2", "admin")
	assert.ErrorIs(t, err, common.ErrorBadRequest)

	_, err = e.svc.CreateAccount(ctx, "new@example.com", "Another-Pass-2", "")
	assert.ErrorIs(t, err, common.ErrorBadRequest)
}

func TestUnlockAccount(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	for i := 0; i < e.cfg.MaxLoginAttempts; i++ {
		_, _ = e.svc.Login(ctx, testEmail, "wrong")
	}
	_, err := e.svc.Login(ctx, testEmail, testPassword)
	require.ErrorIs(t, err, common.ErrAccountLocked)

	require.NoError(t, e.svc.UnlockAccount(ctx, testEmail))

	u := e.reload(t)
	assert.Zero(t, u.LoginAttempts)
	assert.Nil(t, u.LockUntil)

	_, err = e.svc.Login(ctx, testEmail, testPassword)
	assert.NoError(t, err)
}

func TestUnlockAccount_Unknown(t *testing.T) {
	e := newEnv(t)
	err := e.svc.UnlockAccount(context.Background(), "nobody@example.com")
	assert.True(t, errors.Is(err, common.ErrorNotFound))
}

func TestSetAccountActive(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	res, err := e.svc.Login(ctx, testEmail, testPassword)
	require.NoError(t, err)

	require.NoError(t, e.svc.SetAccountActive(ctx, testEmail, false))

	_, err = e.svc.Refresh(ctx, res.Tokens.RefreshToken)
	assert.ErrorIs(t, err, common.ErrAccountInactive)
	_, err = e.svc.Login(ctx, testEmail, testPassword)
	assert.ErrorIs(t, err, common.ErrInvalidCredentials)

	require.NoError(t, e.svc.SetAccountActive(ctx, testEmail, true))
	_, err = e.svc.Refresh(ctx, res.Tokens.RefreshToken)
	assert.NoError(t, err)
}
