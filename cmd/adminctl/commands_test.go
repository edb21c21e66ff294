package main

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/dmitrijs2005/adminauth/internal/logging"
	"github.com/dmitrijs2005/adminauth/internal/server/models"
	"github.com/dmitrijs2005/adminauth/internal/server/repositories/users"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const password = "Correct-Horse-1"

func setup(t *testing.T, answers ...string) (*users.MemoryStore, storeOpener) {
	t.Helper()

	origRead, origLog := readPassword, logOutput
	t.Cleanup(func() { readPassword, logOutput = origRead, origLog })
	logOutput = io.Discard

	i := 0
	readPassword = func(int) ([]byte, error) {
		if i >= len(answers) {
			return nil, errors.New("no more input")
		}
		i++
		return []byte(answers[i-1]), nil
	}

	store := users.NewMemoryStore()
	return store, func(context.Context, string, logging.Logger) (users.Store, *sql.DB, error) {
		return store, nil, nil
	}
}

func TestRun_Create(t *testing.T) {
	store, open := setup(t, password, password)
	var out bytes.Buffer

	err := run(context.Background(), []string{"create", "-email", "Root@Example.com", "-role", "owner", "-b", "4"}, &out, open)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "created root@example.com (owner)")

	u, err := store.FindByEmail(context.Background(), "root@example.com")
	require.NoError(t, err)
	assert.Equal(t, "owner", u.Role)
	assert.True(t, u.IsActive)
}

func TestRun_CreateMismatch(t *testing.T) {
	_, open := setup(t, password, "something-else")
	err := run(context.Background(), []string{"create", "-email", "a@example.com", "-b", "4"}, io.Discard, open)
	assert.EqualError(t, err, "passwords do not match")
}

func TestRun_CreateDuplicate(t *testing.T) {
	_, open := setup(t, password, password, password, password)
	args := []string{"create", "-email", "a@example.com", "-b", "4"}
	require.NoError(t, run(context.Background(), args, io.Discard, open))

	err := run(context.Background(), args, io.Discard, open)
	assert.EqualError(t, err, "a@example.com: account already exists")
}

func TestRun_UnlockAndActivation(t *testing.T) {
	store, open := setup(t, password, password)
	ctx := context.Background()
	require.NoError(t, run(ctx, []string{"create", "-email", "a@example.com", "-b", "4"}, io.Discard, open))

	u, err := store.FindByEmail(ctx, "a@example.com")
	require.NoError(t, err)
	_, err = store.Update(ctx, u.ID, func(r *models.User) error {
		r.LoginAttempts = 5
		return nil
	})
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, run(ctx, []string{"unlock", "-email", "a@example.com"}, &out, open))
	assert.Equal(t, "a@example.com unlocked\n", out.String())

	u, err = store.FindByEmail(ctx, "a@example.com")
	require.NoError(t, err)
	assert.Zero(t, u.LoginAttempts)

	out.Reset()
	require.NoError(t, run(ctx, []string{"deactivate", "-email", "a@example.com"}, &out, open))
	assert.Equal(t, "a@example.com deactivated\n", out.String())
	u, _ = store.FindByEmail(ctx, "a@example.com")
	assert.False(t, u.IsActive)

	require.NoError(t, run(ctx, []string{"activate", "-email", "a@example.com"}, io.Discard, open))
	u, _ = store.FindByEmail(ctx, "a@example.com")
	assert.True(t, u.IsActive)
}

func TestRun_ResetToken(t *testing.T) {
	_, open := setup(t, password, password)
	ctx := context.Background()
	require.NoError(t, run(ctx, []string{"create", "-email", "a@example.com", "-b", "4"}, io.Discard, open))

	var out bytes.Buffer
	require.NoError(t, run(ctx, []string{"reset-token", "-email", "a@example.com"}, &out, open))
	token := strings.TrimSpace(out.String())
	assert.Equal(t, 2, strings.Count(token, "."))

	err := run(ctx, []string{"reset-token", "-email", "nobody@example.com"}, io.Discard, open)
	assert.EqualError(t, err, "nobody@example.com: no active account")
}

func TestRun_Usage(t *testing.T) {
	_, open := setup(t)
	ctx := context.Background()

	assert.ErrorIs(t, run(ctx, nil, io.Discard, open), errUsage)
	assert.ErrorIs(t, run(ctx, []string{"unlock"}, io.Discard, open), errUsage)
	assert.ErrorIs(t, run(ctx, []string{"frobnicate", "-email", "a@example.com"}, io.Discard, open), errUsage)
	assert.EqualError(t, run(ctx, []string{"unlock", "-email", "x@example.com"}, io.Discard, open), "x@example.com: no such account")
}

func TestRun_StoreOpenError(t *testing.T) {
	setup(t)
	open := func(context.Context, string, logging.Logger) (users.Store, *sql.DB, error) {
		return nil, nil, errors.New("db down")
	}
	err := run(context.Background(), []string{"unlock", "-email", "a@example.com"}, io.Discard, open)
	assert.EqualError(t, err, "db down")
}
