package users

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/adminauth/internal/common"
	"github.com/dmitrijs2005/adminauth/internal/dbx"
	"github.com/dmitrijs2005/adminauth/internal/server/models"
	"github.com/google/uuid"
)

const userColumns = `id, email, password_hash, role, is_active, login_attempts, lock_until, two_factor, version, created_at, updated_at`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	user.Email = NormalizeEmail(user.Email)

	twoFactor, err := json.Marshal(user.TwoFactor)
	if err != nil {
		return nil, fmt.Errorf("encode two_factor: %w", err)
	}

	query :=
		`INSERT INTO users (id, email, password_hash, role, is_active, login_attempts, lock_until, two_factor)
         VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING version, created_at, updated_at
		 `

	err = r.db.QueryRowContext(ctx, query,
		user.ID, user.Email, user.PasswordHash, user.Role, user.IsActive,
		user.LoginAttempts, nullTime(user), twoFactor).Scan(&user.Version, &user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

func (r *PostgresRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	query :=
		`SELECT ` + userColumns + ` FROM users
		 WHERE email = $1
		 `
	return r.scanOne(r.db.QueryRowContext(ctx, query, NormalizeEmail(email)))
}

func (r *PostgresRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	query :=
		`SELECT ` + userColumns + ` FROM users
		 WHERE id = $1
		 `
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

// FindByIDForUpdate locks the row until the surrounding transaction ends.
func (r *PostgresRepository) FindByIDForUpdate(ctx context.Context, id string) (*models.User, error) {
	query :=
		`SELECT ` + userColumns + ` FROM users
		 WHERE id = $1
		 FOR UPDATE
		 `
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

// Save writes the mutable fields when the stored version still equals
// user.Version, then advances user.Version. A stale version yields
// common.ErrVersionConflict.
func (r *PostgresRepository) Save(ctx context.Context, user *models.User) error {
	twoFactor, err := json.Marshal(user.TwoFactor)
	if err != nil {
		return fmt.Errorf("encode two_factor: %w", err)
	}

	query :=
		`UPDATE users SET password_hash = $2, role = $3, is_active = $4, login_attempts = $5,
		 lock_until = $6, two_factor = $7, version = version + 1, updated_at = now()
		 WHERE id = $1 AND version = $8
		 RETURNING version, updated_at
		 `

	err = r.db.QueryRowContext(ctx, query,
		user.ID, user.PasswordHash, user.Role, user.IsActive, user.LoginAttempts,
		nullTime(user), twoFactor, user.Version).Scan(&user.Version, &user.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return common.ErrVersionConflict
		}
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) scanOne(row *sql.Row) (*models.User, error) {
	user := &models.User{}
	var lockUntil sql.NullTime
	var twoFactor []byte

	err := row.Scan(&user.ID, &user.Email, &user.PasswordHash, &user.Role, &user.IsActive,
		&user.LoginAttempts, &lockUntil, &twoFactor, &user.Version, &user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	if lockUntil.Valid {
		t := lockUntil.Time
		user.LockUntil = &t
	}
	if len(twoFactor) > 0 {
		if err := json.Unmarshal(twoFactor, &user.TwoFactor); err != nil {
			return nil, fmt.Errorf("decode two_factor: %w", err)
		}
	}
	return user, nil
}

func nullTime(user *models.User) sql.NullTime {
	if user.LockUntil == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *user.LockUntil, Valid: true}
}

// defaultUpdateAttempts bounds retries on serialization failures.
const defaultUpdateAttempts = 3

// PostgresStore implements Store on top of PostgresRepository.
type PostgresStore struct {
	db       *sql.DB
	repos    func(db dbx.DBTX) Repository
	attempts int
}

// NewPostgresStore builds a store whose statements go through repos, called
// with the pool for reads and with the transaction inside Update. A nil
// repos uses NewPostgresRepository.
func NewPostgresStore(db *sql.DB, repos func(db dbx.DBTX) Repository) *PostgresStore {
	if repos == nil {
		repos = func(db dbx.DBTX) Repository { return NewPostgresRepository(db) }
	}
	return &PostgresStore{db: db, repos: repos, attempts: defaultUpdateAttempts}
}

func (s *PostgresStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.repos(s.db).FindByEmail(ctx, email)
}

func (s *PostgresStore) FindByID(ctx context.Context, id string) (*models.User, error) {
	return s.repos(s.db).FindByID(ctx, id)
}

func (s *PostgresStore) Create(ctx context.Context, user *models.User) (*models.User, error) {
	return s.repos(s.db).Create(ctx, user)
}

// Update runs the read-modify-write in one transaction holding a row lock,
// so concurrent updates of the same account are serialized.
func (s *PostgresStore) Update(ctx context.Context, id string, mutate func(u *models.User) error) (*models.User, error) {
	var out *models.User
	err := dbx.WithTxRetry(ctx, s.db, nil, s.attempts, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repos(tx)

		user, err := repo.FindByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if err := mutate(user); err != nil {
			return err
		}
		if err := repo.Save(ctx, user); err != nil {
			return err
		}
		out = user
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
