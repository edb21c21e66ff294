// Package lockout implements the brute-force lockout policy over a
// credential record. All functions are pure; persistence and atomicity
// belong to the store's Update.
package lockout

import (
	"time"

	"github.com/dmitrijs2005/adminauth/internal/server/models"
)

// State is the result of Check.
type State struct {
	Locked    bool
	Remaining time.Duration
}

// Policy locks an account for Duration after MaxAttempts consecutive failures.
type Policy struct {
	MaxAttempts int
	Duration    time.Duration
}

// Check reports whether u is locked at now. Locked iff LockUntil is set and after now.
func (p Policy) Check(u *models.User, now time.Time) State {
	if u.LockUntil != nil && u.LockUntil.After(now) {
		return State{Locked: true, Remaining: u.LockUntil.Sub(now)}
	}
	return State{}
}

// Expire zeroes both counters when a lock has elapsed at now. Time passing
// alone never resets the counter; the reset happens when a login observes it.
// Reports whether u changed.
func (p Policy) Expire(u *models.User, now time.Time) bool {
	if u.LockUntil == nil || u.LockUntil.After(now) {
		return false
	}
	u.LoginAttempts = 0
	u.LockUntil = nil
	return true
}

// RecordFailure counts one failed password check. Reaching MaxAttempts sets
// LockUntil = now + Duration and pins the counter at the threshold.
func (p Policy) RecordFailure(u *models.User, now time.Time) {
	u.LoginAttempts++
	if u.LoginAttempts >= p.MaxAttempts {
		u.LoginAttempts = p.MaxAttempts
		until := now.Add(p.Duration)
		u.LockUntil = &until
	}
}

// RecordSuccess clears the failure counter and any lock.
func (p Policy) RecordSuccess(u *models.User) {
	u.LoginAttempts = 0
	u.LockUntil = nil
}
