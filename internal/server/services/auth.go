// Package services contains server-side business logic. This file implements
// AuthService, which authenticates administrators by password and optional
// TOTP second factor, and issues and refreshes session tokens.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/adminauth/internal/common"
	"github.com/dmitrijs2005/adminauth/internal/cryptox"
	"github.com/dmitrijs2005/adminauth/internal/logging"
	"github.com/dmitrijs2005/adminauth/internal/server/auth"
	"github.com/dmitrijs2005/adminauth/internal/server/config"
	"github.com/dmitrijs2005/adminauth/internal/server/lockout"
	"github.com/dmitrijs2005/adminauth/internal/server/models"
	"github.com/dmitrijs2005/adminauth/internal/server/passwords"
	"github.com/dmitrijs2005/adminauth/internal/server/repositories/users"
	"github.com/dmitrijs2005/adminauth/internal/server/twofactor"
)

// LoginResult is either a token pair or, for 2FA accounts, a pending token.
type LoginResult struct {
	Tokens            *auth.TokenPair
	PendingToken      string
	RequiresTwoFactor bool
}

// Principal is the authenticated caller behind an access token.
type Principal struct {
	ID               string
	Email            string
	Role             string
	SessionID        string
	TwoFactorEnabled bool
}

// SessionRevoker is told about sessions ended by Logout. A denylist keyed
// by session id plugs in here.
type SessionRevoker interface {
	Revoke(ctx context.Context, sessionID string, expiresAt time.Time) error
}

// NopRevoker forgets every session; tokens stay valid until they expire.
type NopRevoker struct{}

func (NopRevoker) Revoke(context.Context, string, time.Time) error { return nil }

// AuthService orchestrates password verification, lockout, the second
// factor and token issuance.
type AuthService struct {
	store      users.Store
	hasher     *passwords.Hasher
	policy     passwords.Policy
	lockout    lockout.Policy
	tokens     *auth.Issuer
	challenge  *twofactor.Challenge
	enrollment *twofactor.Enrollment
	revoker    SessionRevoker
	logger     logging.Logger
	now        func() time.Time
}

// Option customizes AuthService.
type Option func(*AuthService)

// WithClock replaces time.Now for every time-dependent component.
func WithClock(now func() time.Time) Option {
	return func(s *AuthService) { s.now = now }
}

func WithLogger(l logging.Logger) Option {
	return func(s *AuthService) { s.logger = l }
}

func WithRevoker(r SessionRevoker) Option {
	return func(s *AuthService) { s.revoker = r }
}

// NewAuthService wires the auth components from cfg. box seals TOTP secrets.
func NewAuthService(store users.Store, cfg *config.Config, box *cryptox.Box, opts ...Option) *AuthService {
	s := &AuthService{
		store:   store,
		revoker: NopRevoker{},
		logger:  logging.Nop{},
		now:     time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	s.logger = s.logger.With("module", "auth")

	s.hasher = passwords.NewHasher(cfg.BcryptCost)
	s.policy = passwords.Policy{MinLength: cfg.MinPasswordLength}
	s.lockout = lockout.Policy{MaxAttempts: cfg.MaxLoginAttempts, Duration: cfg.LockoutDuration}
	s.tokens = auth.NewIssuer(auth.IssuerConfig{
		Secret:     []byte(cfg.SecretKey),
		AccessTTL:  cfg.AccessTokenValidityDuration,
		RefreshTTL: cfg.RefreshTokenValidityDuration,
		PendingTTL: cfg.PendingTwoFactorValidityDuration,
		ResetTTL:   cfg.PasswordResetValidityDuration,
	}, auth.WithClock(s.now))

	totp := twofactor.TOTP{Issuer: cfg.TOTPIssuer, Period: cfg.TOTPStepSeconds, Skew: cfg.TOTPSkewSteps}
	s.challenge = twofactor.NewChallenge(store, totp, box, twofactor.WithClock(s.now))
	s.enrollment = twofactor.NewEnrollment(store, s.challenge, cfg.BackupCodeCount)

	return s
}

func identityOf(u *models.User) auth.Identity {
	return auth.Identity{SubjectID: u.ID, Email: u.Email, Role: u.Role}
}

// Login checks email and password. Unknown email, inactive account and wrong
// password all fail with common.ErrInvalidCredentials; a locked account
// fails with *common.LockedError even when the password is right.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	u, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.hasher.Burn(password)
			s.logger.Info(ctx, "login failed", "reason", "unknown_email")
			return nil, common.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find account: %w", err)
	}
	log := s.logger.With("user_id", u.ID)

	if !u.IsActive {
		s.hasher.Burn(password)
		log.Info(ctx, "login failed", "reason", "inactive")
		return nil, common.ErrInvalidCredentials
	}

	now := s.now()
	if st := s.lockout.Check(u, now); st.Locked {
		log.Warn(ctx, "login refused", "reason", "locked", "remaining", st.Remaining.String())
		return nil, &common.LockedError{Remaining: st.Remaining}
	}

	ok, err := s.hasher.Verify(password, u.PasswordHash)
	if err != nil {
		log.Error(ctx, "stored password hash unusable", "error", err)
		return nil, err
	}

	// hashes made under a lower configured cost are upgraded on login
	var rehashed string
	if ok && s.hasher.NeedsRehash(u.PasswordHash) {
		if rehashed, err = s.hasher.Hash(password); err != nil {
			log.Warn(ctx, "password rehash failed", "error", err)
			rehashed = ""
		}
	}

	// The counter is re-read under the record lock so concurrent failures
	// are all counted.
	updated, err := s.store.Update(ctx, u.ID, func(r *models.User) error {
		s.lockout.Expire(r, now)
		if st := s.lockout.Check(r, now); st.Locked {
			return &common.LockedError{Remaining: st.Remaining}
		}
		if ok {
			s.lockout.RecordSuccess(r)
			if rehashed != "" && r.PasswordHash == u.PasswordHash {
				r.PasswordHash = rehashed
			}
		} else {
			s.lockout.RecordFailure(r, now)
		}
		return nil
	})
	if err != nil {
		var locked *common.LockedError
		if errors.As(err, &locked) {
			log.Warn(ctx, "login refused", "reason", "locked", "remaining", locked.Remaining.String())
			return nil, err
		}
		return nil, fmt.Errorf("record login attempt: %w", err)
	}

	if !ok {
		log.Info(ctx, "login failed", "reason", "wrong_password", "attempts", updated.LoginAttempts)
		if updated.LockUntil != nil {
			log.Warn(ctx, "account locked", "until", updated.LockUntil.UTC().Format(time.RFC3339))
		}
		return nil, common.ErrInvalidCredentials
	}

	if updated.TwoFactor.Enabled {
		pending, err := s.tokens.IssuePending(identityOf(updated))
		if err != nil {
			return nil, err
		}
		log.Info(ctx, "password accepted, second factor required")
		return &LoginResult{PendingToken: pending, RequiresTwoFactor: true}, nil
	}

	pair, err := s.tokens.IssuePair(identityOf(updated))
	if err != nil {
		return nil, err
	}
	log.Info(ctx, "login succeeded", "session_id", pair.SessionID)
	return &LoginResult{Tokens: pair}, nil
}

// VerifyTwoFactorLogin completes a login started by Login. The pending token
// is consumed by the first successful verification; presenting it again
// fails with common.ErrChallengeExpired, even after newer pending tokens of
// the same account were consumed. A wrong code may be retried.
func (s *AuthService) VerifyTwoFactorLogin(ctx context.Context, pendingToken string, code twofactor.Code) (*auth.TokenPair, error) {
	if code == nil {
		return nil, common.ErrorBadRequest
	}

	claims, err := s.tokens.VerifyKind(pendingToken, auth.KindPendingTwoFactor)
	if err != nil {
		if errors.Is(err, common.ErrTokenExpired) {
			return nil, common.ErrChallengeExpired
		}
		return nil, err
	}
	log := s.logger.With("user_id", claims.Subject)

	outcome, u, err := s.challenge.Verify(ctx, claims.Subject, code, func(u *models.User) error {
		if !u.IsActive {
			return common.ErrAccountInactive
		}
		if claims.ExpiresAt == nil || !twofactor.ConsumeChallenge(&u.TwoFactor, claims.ID, claims.ExpiresAt.Time, s.now()) {
			return common.ErrChallengeExpired
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, err
	}
	if outcome != twofactor.Success {
		log.Info(ctx, "second factor rejected", "outcome", outcome.String())
		return nil, outcome.Err()
	}

	if _, isBackup := code.(twofactor.BackupCode); isBackup {
		log.Warn(ctx, "backup code consumed", "remaining", u.TwoFactor.UnusedBackupCodes())
	}

	pair, err := s.tokens.IssuePair(identityOf(u))
	if err != nil {
		return nil, err
	}
	log.Info(ctx, "login succeeded", "session_id", pair.SessionID, "second_factor", true)
	return pair, nil
}

// Refresh exchanges a refresh token for a new pair with a new session id.
// The account is re-read so role changes and deactivation take effect.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*auth.TokenPair, error) {
	claims, err := s.tokens.VerifyKind(refreshToken, auth.KindRefresh)
	if err != nil {
		return nil, err
	}

	u, err := s.activeAccount(ctx, claims.Subject)
	if err != nil {
		return nil, err
	}

	pair, err := s.tokens.IssuePair(identityOf(u))
	if err != nil {
		return nil, err
	}
	s.logger.Debug(ctx, "session refreshed", "user_id", u.ID, "old_session_id", claims.SessionID, "session_id", pair.SessionID)
	return pair, nil
}

// GetCurrentPrincipal resolves an access token to its account.
func (s *AuthService) GetCurrentPrincipal(ctx context.Context, accessToken string) (*Principal, error) {
	claims, err := s.tokens.VerifyKind(accessToken, auth.KindAccess)
	if err != nil {
		return nil, err
	}

	u, err := s.activeAccount(ctx, claims.Subject)
	if err != nil {
		return nil, err
	}

	return &Principal{
		ID:               u.ID,
		Email:            u.Email,
		Role:             u.Role,
		SessionID:        claims.SessionID,
		TwoFactorEnabled: u.TwoFactor.Enabled,
	}, nil
}

// Logout ends the session of accessToken. Without a revocation store the
// token itself stays valid until it expires.
func (s *AuthService) Logout(ctx context.Context, accessToken string) error {
	claims, err := s.tokens.VerifyKind(accessToken, auth.KindAccess)
	if err != nil {
		return err
	}
	if err := s.revoker.Revoke(ctx, claims.SessionID, claims.ExpiresAt.Time); err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}
	s.logger.Info(ctx, "logout", "user_id", claims.Subject, "session_id", claims.SessionID)
	return nil
}

func (s *AuthService) activeAccount(ctx context.Context, id string) (*models.User, error) {
	u, err := s.store.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrAccountInactive
		}
		return nil, fmt.Errorf("find account: %w", err)
	}
	if !u.IsActive {
		return nil, common.ErrAccountInactive
	}
	return u, nil
}
