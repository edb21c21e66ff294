package twofactor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/adminauth/internal/common"
	"github.com/dmitrijs2005/adminauth/internal/cryptox"
	"github.com/dmitrijs2005/adminauth/internal/server/models"
	"github.com/dmitrijs2005/adminauth/internal/server/repositories/users"
)

// Code is what the user submits as a second factor: either a TOTPCode or a
// BackupCode, never both.
type Code interface {
	code() string
}

type TOTPCode string

type BackupCode string

func (c TOTPCode) code() string   { return string(c) }
func (c BackupCode) code() string { return string(c) }

// Outcome of a second-factor check.
type Outcome int

const (
	_ Outcome = iota
	Success
	InvalidCode
	InvalidBackupCode
	NotEnabled
)

func (o Outcome) String() string {
	switch o {
	case Success:
		return "success"
	case InvalidCode:
		return "invalid_code"
	case InvalidBackupCode:
		return "invalid_backup_code"
	case NotEnabled:
		return "not_enabled"
	default:
		return "unknown"
	}
}

// Err maps a failed outcome to its sentinel; Success maps to nil.
func (o Outcome) Err() error {
	switch o {
	case Success:
		return nil
	case InvalidCode:
		return common.ErrInvalidTwoFactorCode
	case InvalidBackupCode:
		return common.ErrInvalidBackupCode
	case NotEnabled:
		return common.ErrTwoFactorNotEnabled
	default:
		return common.ErrorInternal
	}
}

// Option customizes Challenge.
type Option func(*Challenge)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(c *Challenge) { c.now = now }
}

// Challenge verifies second-factor codes against an enrolled account.
type Challenge struct {
	store users.Store
	totp  TOTP
	box   *cryptox.Box
	now   func() time.Time
}

func NewChallenge(store users.Store, t TOTP, box *cryptox.Box, opts ...Option) *Challenge {
	c := &Challenge{store: store, totp: t, box: box, now: time.Now}
	for _, o := range opts {
		o(c)
	}
	return c
}

// MaxUsedChallenges bounds the consumed pending-2fa tokens kept per account.
const MaxUsedChallenges = 32

// ConsumeChallenge marks the pending-2fa token id, valid until expiresAt, as
// used on tf. It reports false when the token was already used, has expired,
// or expires no later than tf.ChallengeFloor. Expired entries are pruned;
// past MaxUsedChallenges the earliest-expiring entry is evicted and its
// expiry becomes the new floor.
func ConsumeChallenge(tf *models.TwoFactor, id string, expiresAt, now time.Time) bool {
	if id == "" || !expiresAt.After(now) || !expiresAt.After(tf.ChallengeFloor) {
		return false
	}

	live := make([]models.UsedChallenge, 0, len(tf.UsedChallenges)+1)
	for _, c := range tf.UsedChallenges {
		if c.ID == id {
			return false
		}
		if c.ExpiresAt.After(now) {
			live = append(live, c)
		}
	}
	live = append(live, models.UsedChallenge{ID: id, ExpiresAt: expiresAt})

	for len(live) > MaxUsedChallenges {
		oldest := 0
		for i := range live {
			if live[i].ExpiresAt.Before(live[oldest].ExpiresAt) {
				oldest = i
			}
		}
		if live[oldest].ExpiresAt.After(tf.ChallengeFloor) {
			tf.ChallengeFloor = live[oldest].ExpiresAt
		}
		live = append(live[:oldest], live[oldest+1:]...)
	}

	tf.UsedChallenges = live
	return true
}

// errRejected aborts the store update when the code is wrong.
var errRejected = errors.New("second factor rejected")

// Check verifies code against u and, on Success, consumes it on u: a TOTP
// step is recorded as used, a backup code gets UsedAt. Only u is modified;
// persisting it is the caller's job.
func (c *Challenge) Check(u *models.User, code Code) (Outcome, error) {
	if code == nil {
		return 0, common.ErrorBadRequest
	}
	if u.TwoFactor.State() != models.TwoFactorEnabled {
		return NotEnabled, nil
	}
	now := c.now()

	switch v := code.(type) {
	case TOTPCode:
		secret, err := c.box.Open(u.TwoFactor.Secret)
		if err != nil {
			return 0, fmt.Errorf("open totp secret: %w", err)
		}
		step, ok, err := c.totp.Match(secret, string(v), now, u.TwoFactor.LastUsedStep)
		if err != nil {
			return 0, fmt.Errorf("totp: %w", err)
		}
		if !ok {
			return InvalidCode, nil
		}
		u.TwoFactor.LastUsedStep = step
		return Success, nil

	case BackupCode:
		if !consumeBackupCode(&u.TwoFactor, string(v), now) {
			return InvalidBackupCode, nil
		}
		return Success, nil

	default:
		return 0, common.ErrorBadRequest
	}
}

// Verify runs Check inside one atomic store update, so a backup code is
// checked and consumed in a single step and authenticates at most once.
// guard, when set, runs first in the same update and may veto it or amend
// the record; its changes are kept only on Success. The updated record is
// returned on Success.
func (c *Challenge) Verify(ctx context.Context, accountID string, code Code, guard func(u *models.User) error) (Outcome, *models.User, error) {
	if code == nil {
		return 0, nil, common.ErrorBadRequest
	}

	var outcome Outcome
	u, err := c.store.Update(ctx, accountID, func(u *models.User) error {
		if guard != nil {
			if err := guard(u); err != nil {
				return err
			}
		}
		o, err := c.Check(u, code)
		if err != nil {
			return err
		}
		outcome = o
		if o != Success {
			return errRejected
		}
		return nil
	})
	if errors.Is(err, errRejected) {
		return outcome, nil, nil
	}
	if err != nil {
		return 0, nil, err
	}
	return Success, u, nil
}
