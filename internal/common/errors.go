// Package common defines shared constants and sentinel errors used across
// the service and transport layers. Callers should use errors.Is to
// match these values.
package common

import (
	"errors"
	"fmt"
	"time"
)

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")
	ErrVersionConflict = errors.New("version conflict")

	// Service-level errors (generic/internal flow control).
	ErrorInternal   = errors.New("internal error")
	ErrorBadRequest = errors.New("bad request")

	// Login errors. Wrong email and wrong password share one value.
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountLocked      = errors.New("account locked")
	ErrAccountInactive    = errors.New("account inactive")

	// Second factor errors.
	ErrChallengeExpired        = errors.New("two-factor challenge expired")
	ErrInvalidTwoFactorCode    = errors.New("invalid two-factor code")
	ErrInvalidBackupCode       = errors.New("invalid backup code")
	ErrTwoFactorNotEnabled     = errors.New("two-factor authentication not enabled")
	ErrTwoFactorAlreadyEnabled = errors.New("two-factor authentication already enabled")
	ErrEnrollmentNotStarted    = errors.New("two-factor enrollment not started")

	// Token errors.
	ErrTokenExpired   = errors.New("token expired")
	ErrTokenMalformed = errors.New("token malformed")
	ErrWrongTokenKind = errors.New("wrong token kind")

	// Password errors.
	ErrWeakPassword      = errors.New("weak password")
	ErrHashing           = errors.New("password hashing failed")
	ErrInvalidHashFormat = errors.New("invalid password hash format")
)

// LockedError reports a refused login together with the remaining lock time.
type LockedError struct {
	Remaining time.Duration
}

func (e *LockedError) Error() string {
	return fmt.Sprintf("account locked, try again in %s", e.Remaining.Round(time.Second))
}

// Is makes errors.Is(err, ErrAccountLocked) true for *LockedError.
func (e *LockedError) Is(target error) bool { return target == ErrAccountLocked }

// WeakPasswordError names the password rule that was violated.
type WeakPasswordError struct {
	Rule string
}

func (e *WeakPasswordError) Error() string {
	return "weak password: " + e.Rule
}

func (e *WeakPasswordError) Is(target error) bool { return target == ErrWeakPassword }
