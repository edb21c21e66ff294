package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/adminauth/internal/common"
	"github.com/dmitrijs2005/adminauth/internal/server/models"
	"github.com/dmitrijs2005/adminauth/internal/server/repositories/users"
)

// CreateAccount provisions an active account. The password must satisfy the
// password policy; an email already in use fails with common.ErrorAlreadyExists.
func (s *AuthService) CreateAccount(ctx context.Context, email, password, role string) (*models.User, error) {
	email = users.NormalizeEmail(email)
	if email == "" || role == "" {
		return nil, common.ErrorBadRequest
	}
	if err := s.policy.Validate(password); err != nil {
		return nil, err
	}
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	u, err := s.store.Create(ctx, &models.User{
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		IsActive:     true,
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info(ctx, "account created", "user_id", u.ID, "role", role)
	return u, nil
}

// UnlockAccount clears the failed-login counter and any active lock.
func (s *AuthService) UnlockAccount(ctx context.Context, email string) error {
	return s.updateByEmail(ctx, email, "account unlocked", func(r *models.User) {
		s.lockout.RecordSuccess(r)
	})
}

// SetAccountActive activates or deactivates an account. Deactivation makes
// Refresh and GetCurrentPrincipal fail for tokens already issued.
func (s *AuthService) SetAccountActive(ctx context.Context, email string, active bool) error {
	msg := "account deactivated"
	if active {
		msg = "account activated"
	}
	return s.updateByEmail(ctx, email, msg, func(r *models.User) {
		r.IsActive = active
	})
}

func (s *AuthService) updateByEmail(ctx context.Context, email, msg string, mutate func(r *models.User)) error {
	u, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return err
		}
		return fmt.Errorf("find account: %w", err)
	}
	if _, err := s.store.Update(ctx, u.ID, func(r *models.User) error {
		mutate(r)
		return nil
	}); err != nil {
		return err
	}
	s.logger.Info(ctx, msg, "user_id", u.ID)
	return nil
}
