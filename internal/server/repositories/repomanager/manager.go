package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/adminauth/internal/dbx"
	"github.com/dmitrijs2005/adminauth/internal/server/repositories/users"
)

// RepositoryManager owns the schema and hands out credential storage bound
// to a connection.
type RepositoryManager interface {
	// RunMigrations brings the schema up to date and returns its version.
	RunMigrations(ctx context.Context, db *sql.DB) (int64, error)
	// Users returns row-level access usable inside a transaction.
	Users(db dbx.DBTX) users.Repository
	// Store returns the store the auth services run on.
	Store(db *sql.DB) users.Store
}
