package twofactor

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dmitrijs2005/adminauth/internal/common"
	"github.com/dmitrijs2005/adminauth/internal/cryptox"
	"github.com/dmitrijs2005/adminauth/internal/server/models"
	"github.com/dmitrijs2005/adminauth/internal/server/repositories/users"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// base32 of "12345678901234567890", the RFC 6238 test secret.
const rfcSecret = "GEZDGNBVGY3TQOJQGEZDGNBVGY3TQOJQ"

var (
	testTOTP = TOTP{Issuer: "Admin", Period: 30, Skew: 1}
	testNow  = time.Date(2026, 3, 1, 12, 0, 10, 0, time.UTC)

	boxOnce sync.Once
	box     *cryptox.Box
)

func testBox(t *testing.T) *cryptox.Box {
	t.Helper()
	boxOnce.Do(func() {
		var err error
		box, err = cryptox.NewBox("test-totp-key")
		if err != nil {
			panic(err)
		}
	})
	return box
}

func codeAt(t *testing.T, at time.Time) string {
	t.Helper()
	c, err := testTOTP.CodeAt(rfcSecret, at)
	require.NoError(t, err)
	return c
}

type fixture struct {
	store      *users.MemoryStore
	challenge  *Challenge
	enrollment *Enrollment
	now        time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{store: users.NewMemoryStore(), now: testNow}
	f.challenge = NewChallenge(f.store, testTOTP, testBox(t), WithClock(func() time.Time { return f.now }))
	f.enrollment = NewEnrollment(f.store, f.challenge, 10)
	return f
}

// enabledUser stores an account with rfcSecret enrolled and the given backup codes.
func (f *fixture) enabledUser(t *testing.T, backup ...string) *models.User {
	t.Helper()
	sealed, err := testBox(t).Seal(rfcSecret)
	require.NoError(t, err)

	codes := make([]models.BackupCode, 0, len(backup))
	for _, c := range backup {
		codes = append(codes, models.BackupCode{CodeHash: HashBackupCode(c)})
	}
	enabledAt := f.now.Add(-time.Hour)
	u, err := f.store.Create(context.Background(), &models.User{
		Email:    "admin@example.com",
		IsActive: true,
		TwoFactor: models.TwoFactor{
			Enabled:     true,
			Secret:      sealed,
			BackupCodes: codes,
			EnabledAt:   &enabledAt,
		},
	})
	require.NoError(t, err)
	return u
}

func TestTOTP_MatchWithinSkew(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		offset time.Duration
		ok     bool
	}{
		{"current", 0, true},
		{"one step early", -30 * time.Second, true},
		{"one step late", 30 * time.Second, true},
		{"two steps early", -60 * time.Second, false},
		{"two steps late", 60 * time.Second, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			code := codeAt(t, testNow.Add(c.offset))
			step, ok, err := testTOTP.Match(rfcSecret, code, testNow, 0)
			require.NoError(t, err)
			assert.Equal(t, c.ok, ok)
			if ok {
				assert.Equal(t, testTOTP.Step(testNow.Add(c.offset)), step)
			}
		})
	}
}

func TestTOTP_MatchRejectsUsedSteps(t *testing.T) {
	t.Parallel()

	code := codeAt(t, testNow)
	_, ok, err := testTOTP.Match(rfcSecret, code, testNow, testTOTP.Step(testNow))
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = testTOTP.Match(rfcSecret, code, testNow, testTOTP.Step(testNow)-1)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestTOTP_MatchRejectsMalformed(t *testing.T) {
	t.Parallel()

	for _, code := range []string{"", "123", "1234567", "abcdef"} {
		_, ok, err := testTOTP.Match(rfcSecret, code, testNow, 0)
		require.NoError(t, err)
		assert.False(t, ok, code)
	}
}

func TestTOTP_NewKey(t *testing.T) {
	t.Parallel()

	key, err := testTOTP.NewKey("admin@example.com")
	require.NoError(t, err)
	assert.Len(t, key.Secret(), 32)
	assert.True(t, strings.HasPrefix(key.URL(), "otpauth://totp/"))
	assert.Contains(t, key.URL(), "issuer=Admin")
}

func TestNewBackupCodes(t *testing.T) {
	t.Parallel()

	plain, stored, err := NewBackupCodes(10)
	require.NoError(t, err)
	require.Len(t, plain, 10)
	require.Len(t, stored, 10)

	format := regexp.MustCompile(`^[A-HJ-NP-Z2-9]{5}-[A-HJ-NP-Z2-9]{5}$`)
	seen := map[string]bool{}
	for i, c := range plain {
		assert.Regexp(t, format, c)
		assert.False(t, seen[c], "duplicate code")
		seen[c] = true
		assert.Equal(t, HashBackupCode(c), stored[i].CodeHash)
		assert.NotContains(t, stored[i].CodeHash, c)
		assert.Nil(t, stored[i].UsedAt)
	}
}

func TestHashBackupCode_Normalizes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, HashBackupCode("ABCDE-FGHJK"), HashBackupCode("abcde fghjk"))
	assert.Equal(t, HashBackupCode("ABCDE-FGHJK"), HashBackupCode("ABCDEFGHJK"))
	assert.NotEqual(t, HashBackupCode("ABCDE-FGHJK"), HashBackupCode("ABCDE-FGHJM"))
}

func TestCheck_Outcomes(t *testing.T) {
	f := newFixture(t)
	u := f.enabledUser(t, "AAAAA-BBBBB")

	o, err := f.challenge.Check(u, TOTPCode(codeAt(t, f.now)))
	require.NoError(t, err)
	assert.Equal(t, Success, o)
	assert.Equal(t, testTOTP.Step(f.now), u.TwoFactor.LastUsedStep)

	// same code again is a replay
	o, err = f.challenge.Check(u, TOTPCode(codeAt(t, f.now)))
	require.NoError(t, err)
	assert.Equal(t, InvalidCode, o)

	o, err = f.challenge.Check(u, TOTPCode(codeAt(t, f.now.Add(-2*time.Minute))))
	require.NoError(t, err)
	assert.Equal(t, InvalidCode, o)

	o, err = f.challenge.Check(u, BackupCode("aaaaa-bbbbb"))
	require.NoError(t, err)
	assert.Equal(t, Success, o)
	require.NotNil(t, u.TwoFactor.BackupCodes[0].UsedAt)

	o, err = f.challenge.Check(u, BackupCode("AAAAA-BBBBB"))
	require.NoError(t, err)
	assert.Equal(t, InvalidBackupCode, o)

	_, err = f.challenge.Check(u, nil)
	assert.ErrorIs(t, err, common.ErrorBadRequest)
}

func TestCheck_NotEnabled(t *testing.T) {
	f := newFixture(t)
	o, err := f.challenge.Check(&models.User{}, TOTPCode("123456"))
	require.NoError(t, err)
	assert.Equal(t, NotEnabled, o)
	assert.ErrorIs(t, o.Err(), common.ErrTwoFactorNotEnabled)
}

func TestOutcome_Err(t *testing.T) {
	t.Parallel()

	assert.NoError(t, Success.Err())
	assert.ErrorIs(t, InvalidCode.Err(), common.ErrInvalidTwoFactorCode)
	assert.ErrorIs(t, InvalidBackupCode.Err(), common.ErrInvalidBackupCode)
	assert.Equal(t, "invalid_backup_code", InvalidBackupCode.String())
}

func TestVerify_PersistsOnlyOnSuccess(t *testing.T) {
	f := newFixture(t)
	u := f.enabledUser(t, "AAAAA-BBBBB")
	ctx := context.Background()

	exp := f.now.Add(5 * time.Minute)
	consume := func(u *models.User) error {
		if !ConsumeChallenge(&u.TwoFactor, "c1", exp, f.now) {
			return common.ErrChallengeExpired
		}
		return nil
	}

	o, got, err := f.challenge.Verify(ctx, u.ID, TOTPCode("000000"), consume)
	require.NoError(t, err)
	assert.Equal(t, InvalidCode, o)
	assert.Nil(t, got)

	stored, err := f.store.FindByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.TwoFactor.UsedChallenges)

	o, got, err = f.challenge.Verify(ctx, u.ID, BackupCode("AAAAABBBBB"), consume)
	require.NoError(t, err)
	assert.Equal(t, Success, o)
	require.NotNil(t, got)
	assert.Equal(t, []models.UsedChallenge{{ID: "c1", ExpiresAt: exp}}, got.TwoFactor.UsedChallenges)
	assert.Equal(t, 0, got.TwoFactor.UnusedBackupCodes())
}

func TestVerify_GuardVeto(t *testing.T) {
	f := newFixture(t)
	u := f.enabledUser(t, "AAAAA-BBBBB")

	_, _, err := f.challenge.Verify(context.Background(), u.ID, BackupCode("AAAAA-BBBBB"), func(u *models.User) error {
		return common.ErrChallengeExpired
	})
	assert.ErrorIs(t, err, common.ErrChallengeExpired)

	stored, err := f.store.FindByID(context.Background(), u.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.TwoFactor.UnusedBackupCodes())
}

func TestVerify_BackupCodeAuthenticatesOnce(t *testing.T) {
	f := newFixture(t)
	u := f.enabledUser(t, "AAAAA-BBBBB", "CCCCC-DDDDD")

	const n = 20
	var successes int32
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			o, _, err := f.challenge.Verify(context.Background(), u.ID, BackupCode("AAAAA-BBBBB"), nil)
			assert.NoError(t, err)
			if o == Success {
				atomic.AddInt32(&successes, 1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), successes)
	stored, err := f.store.FindByID(context.Background(), u.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.TwoFactor.UnusedBackupCodes())
}

func TestEnrollment_Lifecycle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	u, err := f.store.Create(ctx, &models.User{Email: "admin@example.com", IsActive: true})
	require.NoError(t, err)

	err = f.enrollment.Confirm(ctx, u.ID, "123456")
	assert.ErrorIs(t, err, common.ErrEnrollmentNotStarted)

	m, err := f.enrollment.Begin(ctx, u.ID)
	require.NoError(t, err)
	assert.Len(t, m.BackupCodes, 10)
	assert.Contains(t, m.QRPayload, "secret="+m.Secret)

	stored, err := f.store.FindByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, models.TwoFactorPendingVerification, stored.TwoFactor.State())
	assert.NotEqual(t, m.Secret, stored.TwoFactor.Secret)

	// a wrong code keeps the pending state
	err = f.enrollment.Confirm(ctx, u.ID, "000000")
	assert.ErrorIs(t, err, common.ErrInvalidTwoFactorCode)
	stored, err = f.store.FindByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, models.TwoFactorPendingVerification, stored.TwoFactor.State())

	code, err := testTOTP.CodeAt(m.Secret, f.now)
	require.NoError(t, err)
	require.NoError(t, f.enrollment.Confirm(ctx, u.ID, code))

	stored, err = f.store.FindByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, models.TwoFactorEnabled, stored.TwoFactor.State())
	require.NotNil(t, stored.TwoFactor.EnabledAt)
	assert.True(t, stored.TwoFactor.EnabledAt.Equal(f.now))

	_, err = f.enrollment.Begin(ctx, u.ID)
	assert.ErrorIs(t, err, common.ErrTwoFactorAlreadyEnabled)
	err = f.enrollment.Confirm(ctx, u.ID, code)
	assert.ErrorIs(t, err, common.ErrTwoFactorAlreadyEnabled)

	// the backup codes issued at Begin work after activation
	o, _, err := f.challenge.Verify(ctx, u.ID, BackupCode(m.BackupCodes[3]), nil)
	require.NoError(t, err)
	assert.Equal(t, Success, o)
}

func TestEnrollment_BeginAgainWhilePendingReissues(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	u, err := f.store.Create(ctx, &models.User{Email: "admin@example.com"})
	require.NoError(t, err)

	first, err := f.enrollment.Begin(ctx, u.ID)
	require.NoError(t, err)
	second, err := f.enrollment.Begin(ctx, u.ID)
	require.NoError(t, err)
	assert.NotEqual(t, first.Secret, second.Secret)
}

func TestEnrollment_Disable(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	u := f.enabledUser(t, "AAAAA-BBBBB")

	err := f.enrollment.Disable(ctx, u.ID, TOTPCode("000000"))
	assert.ErrorIs(t, err, common.ErrInvalidTwoFactorCode)
	err = f.enrollment.Disable(ctx, u.ID, BackupCode("ZZZZZ-ZZZZZ"))
	assert.ErrorIs(t, err, common.ErrInvalidBackupCode)
	err = f.enrollment.Disable(ctx, u.ID, nil)
	assert.ErrorIs(t, err, common.ErrorBadRequest)

	require.NoError(t, f.enrollment.Disable(ctx, u.ID, TOTPCode(codeAt(t, f.now))))

	stored, err := f.store.FindByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, models.TwoFactorDisabled, stored.TwoFactor.State())
	assert.Empty(t, stored.TwoFactor.Secret)
	assert.Empty(t, stored.TwoFactor.BackupCodes)

	err = f.enrollment.Disable(ctx, u.ID, TOTPCode(codeAt(t, f.now)))
	assert.ErrorIs(t, err, common.ErrTwoFactorNotEnabled)
}

func TestEnrollment_RegenerateBackupCodes(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	u := f.enabledUser(t, "AAAAA-BBBBB")

	codes, err := f.enrollment.RegenerateBackupCodes(ctx, u.ID)
	require.NoError(t, err)
	assert.Len(t, codes, 10)

	o, _, err := f.challenge.Verify(ctx, u.ID, BackupCode("AAAAA-BBBBB"), nil)
	require.NoError(t, err)
	assert.Equal(t, InvalidBackupCode, o)

	o, _, err = f.challenge.Verify(ctx, u.ID, BackupCode(codes[0]), nil)
	require.NoError(t, err)
	assert.Equal(t, Success, o)

	plain, err := f.store.Create(ctx, &models.User{Email: "plain@example.com"})
	require.NoError(t, err)
	_, err = f.enrollment.RegenerateBackupCodes(ctx, plain.ID)
	assert.ErrorIs(t, err, common.ErrTwoFactorNotEnabled)
}

func TestConsumeChallenge(t *testing.T) {
	t.Parallel()

	now := testNow
	var tf models.TwoFactor

	assert.True(t, ConsumeChallenge(&tf, "a", now.Add(5*time.Minute), now))
	assert.True(t, ConsumeChallenge(&tf, "b", now.Add(6*time.Minute), now))
	assert.False(t, ConsumeChallenge(&tf, "a", now.Add(5*time.Minute), now))
	assert.False(t, ConsumeChallenge(&tf, "b", now.Add(6*time.Minute), now))
	assert.False(t, ConsumeChallenge(&tf, "", now.Add(time.Minute), now))
	assert.False(t, ConsumeChallenge(&tf, "c", now, now))
	assert.Len(t, tf.UsedChallenges, 2)

	// expired entries are pruned on the next consume
	later := now.Add(5*time.Minute + time.Second)
	assert.True(t, ConsumeChallenge(&tf, "d", later.Add(5*time.Minute), later))
	ids := make([]string, 0, len(tf.UsedChallenges))
	for _, c := range tf.UsedChallenges {
		ids = append(ids, c.ID)
	}
	assert.Equal(t, []string{"b", "d"}, ids)
}

func TestConsumeChallenge_BoundedWithFloor(t *testing.T) {
	t.Parallel()

	now := testNow
	var tf models.TwoFactor
	expOf := func(i int) time.Time { return now.Add(time.Minute + time.Duration(i)*time.Second) }

	for i := 0; i <= MaxUsedChallenges; i++ {
		require.True(t, ConsumeChallenge(&tf, fmt.Sprintf("c%d", i), expOf(i), now))
	}
	assert.Len(t, tf.UsedChallenges, MaxUsedChallenges)
	assert.True(t, tf.ChallengeFloor.Equal(expOf(0)))

	// the evicted token stays consumed through the floor
	assert.False(t, ConsumeChallenge(&tf, "c0", expOf(0), now))
	assert.False(t, ConsumeChallenge(&tf, "c1", expOf(1), now))
	assert.True(t, ConsumeChallenge(&tf, "fresh", expOf(100), now))
}
