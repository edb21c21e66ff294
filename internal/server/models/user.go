// Package models defines server-side data models persisted in the database.
package models

import "time"

// User is the credential record of an administrative account.
// The auth core reads and writes only the fields below.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Role         string
	IsActive     bool

	LoginAttempts int
	LockUntil     *time.Time

	TwoFactor TwoFactor

	// Version is bumped by the store on every write.
	Version   int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TwoFactor is the TOTP sub-document of a User.
//
// States: Disabled (no secret), PendingVerification (secret set, not enabled),
// Enabled. Enabled implies Secret != "" and len(BackupCodes) > 0.
type TwoFactor struct {
	Enabled bool `json:"enabled"`
	// Secret is the sealed (encrypted) base32 TOTP secret.
	Secret      string       `json:"secret,omitempty"`
	BackupCodes []BackupCode `json:"backupCodes,omitempty"`
	EnabledAt   *time.Time   `json:"enabledAt,omitempty"`

	// LastUsedStep is the TOTP time step of the last accepted code.
	LastUsedStep uint64 `json:"lastUsedStep,omitempty"`
	// UsedChallenges lists consumed pending-2fa tokens that have not expired yet.
	UsedChallenges []UsedChallenge `json:"usedChallenges,omitempty"`
	// ChallengeFloor is the latest expiry evicted from UsedChallenges; pending
	// tokens expiring at or before it are treated as consumed.
	ChallengeFloor time.Time `json:"challengeFloor,omitzero"`
}

// UsedChallenge records a consumed pending-2fa token by its id.
type UsedChallenge struct {
	ID        string    `json:"id"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// BackupCode is a single-use substitute for a TOTP code. Only the hash is kept.
type BackupCode struct {
	CodeHash string     `json:"codeHash"`
	UsedAt   *time.Time `json:"usedAt,omitempty"`
}

// TwoFactorState is the enrollment state derived from TwoFactor.
type TwoFactorState int

const (
	TwoFactorDisabled TwoFactorState = iota
	TwoFactorPendingVerification
	TwoFactorEnabled
)

func (s TwoFactorState) String() string {
	switch s {
	case TwoFactorPendingVerification:
		return "pending_verification"
	case TwoFactorEnabled:
		return "enabled"
	default:
		return "disabled"
	}
}

// State derives the enrollment state.
func (t TwoFactor) State() TwoFactorState {
	switch {
	case t.Enabled:
		return TwoFactorEnabled
	case t.Secret != "":
		return TwoFactorPendingVerification
	default:
		return TwoFactorDisabled
	}
}

// UnusedBackupCodes counts backup codes not yet consumed.
func (t TwoFactor) UnusedBackupCodes() int {
	n := 0
	for _, c := range t.BackupCodes {
		if c.UsedAt == nil {
			n++
		}
	}
	return n
}

// Clone returns a deep copy so callers can mutate without aliasing store state.
func (u *User) Clone() *User {
	c := *u
	if u.LockUntil != nil {
		t := *u.LockUntil
		c.LockUntil = &t
	}
	if u.TwoFactor.EnabledAt != nil {
		t := *u.TwoFactor.EnabledAt
		c.TwoFactor.EnabledAt = &t
	}
	if u.TwoFactor.BackupCodes != nil {
		c.TwoFactor.BackupCodes = make([]BackupCode, len(u.TwoFactor.BackupCodes))
		for i, bc := range u.TwoFactor.BackupCodes {
			c.TwoFactor.BackupCodes[i] = bc
			if bc.UsedAt != nil {
				t := *bc.UsedAt
				c.TwoFactor.BackupCodes[i].UsedAt = &t
			}
		}
	}
	if u.TwoFactor.UsedChallenges != nil {
		c.TwoFactor.UsedChallenges = append([]UsedChallenge(nil), u.TwoFactor.UsedChallenges...)
	}
	return &c
}
