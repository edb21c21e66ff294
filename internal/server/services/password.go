package services

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/adminauth/internal/common"
	"github.com/dmitrijs2005/adminauth/internal/server/auth"
	"github.com/dmitrijs2005/adminauth/internal/server/models"
)

// ChangePassword replaces the password after re-verifying the old one. A
// wrong old password fails with common.ErrInvalidCredentials and counts
// toward lockout like a failed login; a locked account fails with
// *common.LockedError even when the old password is right. A weak new
// password fails with *common.WeakPasswordError and leaves the stored hash
// unchanged.
func (s *AuthService) ChangePassword(ctx context.Context, accountID, oldPassword, newPassword string) error {
	u, err := s.activeAccount(ctx, accountID)
	if err != nil {
		return err
	}
	log := s.logger.With("user_id", accountID)

	now := s.now()
	if st := s.lockout.Check(u, now); st.Locked {
		log.Warn(ctx, "password change refused", "reason", "locked", "remaining", st.Remaining.String())
		return &common.LockedError{Remaining: st.Remaining}
	}

	ok, err := s.hasher.Verify(oldPassword, u.PasswordHash)
	if err != nil {
		return err
	}
	if !ok {
		updated, err := s.store.Update(ctx, accountID, func(r *models.User) error {
			s.lockout.Expire(r, now)
			if st := s.lockout.Check(r, now); st.Locked {
				return &common.LockedError{Remaining: st.Remaining}
			}
			s.lockout.RecordFailure(r, now)
			return nil
		})
		if err != nil {
			return err
		}
		log.Info(ctx, "password change refused", "reason", "wrong_password", "attempts", updated.LoginAttempts)
		if updated.LockUntil != nil {
			log.Warn(ctx, "account locked", "until", updated.LockUntil.UTC().Format(time.RFC3339))
		}
		return common.ErrInvalidCredentials
	}

	if err := s.setPassword(ctx, accountID, newPassword, func(r *models.User) error {
		if r.PasswordHash != u.PasswordHash {
			return common.ErrVersionConflict
		}
		s.lockout.Expire(r, now)
		if st := s.lockout.Check(r, now); st.Locked {
			return &common.LockedError{Remaining: st.Remaining}
		}
		return nil
	}); err != nil {
		return err
	}

	log.Info(ctx, "password changed")
	return nil
}

// RequestPasswordReset mints a single-purpose reset token for email. An
// unknown or inactive account yields an empty token and no error so the
// caller cannot tell accounts apart. Delivering the token is up to the caller.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) (string, error) {
	u, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.logger.Info(ctx, "password reset requested", "reason", "unknown_email")
			return "", nil
		}
		return "", fmt.Errorf("find account: %w", err)
	}
	if !u.IsActive {
		return "", nil
	}

	token, err := s.tokens.IssuePasswordReset(identityOf(u), passwordFingerprint(u.PasswordHash))
	if err != nil {
		return "", err
	}
	s.logger.Info(ctx, "password reset token issued", "user_id", u.ID)
	return token, nil
}

// ResetPassword sets a new password using a reset token. The token is bound
// to the password hash it was issued against, so it stops working once any
// password change succeeds; a spent token fails with common.ErrTokenExpired.
func (s *AuthService) ResetPassword(ctx context.Context, resetToken, newPassword string) error {
	claims, err := s.tokens.VerifyKind(resetToken, auth.KindPasswordReset)
	if err != nil {
		return err
	}

	err = s.setPassword(ctx, claims.Subject, newPassword, func(r *models.User) error {
		if !r.IsActive {
			return common.ErrAccountInactive
		}
		fp := passwordFingerprint(r.PasswordHash)
		if subtle.ConstantTimeCompare([]byte(fp), []byte(claims.PasswordFingerprint)) != 1 {
			return common.ErrTokenExpired
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrAccountInactive
		}
		return err
	}

	s.logger.Info(ctx, "password reset", "user_id", claims.Subject)
	return nil
}

// setPassword validates and hashes newPassword, then stores it and clears
// lockout in one update. precondition runs under the record lock.
func (s *AuthService) setPassword(ctx context.Context, accountID, newPassword string, precondition func(r *models.User) error) error {
	if err := s.policy.Validate(newPassword); err != nil {
		return err
	}
	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return err
	}

	_, err = s.store.Update(ctx, accountID, func(r *models.User) error {
		if err := precondition(r); err != nil {
			return err
		}
		r.PasswordHash = hash
		s.lockout.RecordSuccess(r)
		return nil
	})
	return err
}

// passwordFingerprint identifies a password hash without revealing it.
func passwordFingerprint(hash string) string {
	sum := sha256.Sum256([]byte(hash))
	return hex.EncodeToString(sum[:8])
}
