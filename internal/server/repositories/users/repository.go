// Package users is the credential store: the narrow interface the auth core
// consumes plus PostgreSQL and in-memory implementations.
package users

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/adminauth/internal/server/models"
)

// Store is the credential record interface used by the auth core.
type Store interface {
	// FindByEmail returns common.ErrorNotFound when no account matches.
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	// Create fails with common.ErrorAlreadyExists on a duplicate email.
	Create(ctx context.Context, user *models.User) (*models.User, error)
	// Update reads the record under an exclusive per-record lock, applies
	// mutate and writes the result with a bumped Version. If mutate returns
	// an error nothing is written and that error is returned unchanged.
	Update(ctx context.Context, id string, mutate func(u *models.User) error) (*models.User, error)
}

// Repository is the statement-level PostgreSQL API bound to a dbx.DBTX.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindByIDForUpdate(ctx context.Context, id string) (*models.User, error)
	Save(ctx context.Context, user *models.User) error
}

// NormalizeEmail is the canonical form used for storage and lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
