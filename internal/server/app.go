// Package server initializes and runs the admin auth server: it opens the
// credential store, applies migrations, wires the auth services and serves
// them over gRPC until a shutdown signal arrives.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/adminauth/internal/cryptox"
	"github.com/dmitrijs2005/adminauth/internal/logging"
	"github.com/dmitrijs2005/adminauth/internal/server/config"
	"github.com/dmitrijs2005/adminauth/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/adminauth/internal/server/repositories/users"
	"github.com/dmitrijs2005/adminauth/internal/server/services"

	gs "github.com/dmitrijs2005/adminauth/internal/server/grpc"
)

// MemoryDSN selects the in-process store instead of PostgreSQL.
const MemoryDSN = "memory"

// openDB is a seam for tests.
var openDB = func(dsn string) (*sql.DB, error) {
	return sql.Open("pgx", dsn)
}

type App struct {
	config      *config.Config
	logger      logging.Logger
	db          *sql.DB
	authService *services.AuthService
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	logger := logging.NewJSONLogger(os.Stdout, c.LogLevel)

	store, db, err := OpenStore(ctx, c.DatabaseDSN, logger)
	if err != nil {
		return nil, err
	}

	box, err := cryptox.NewBox(c.TOTPEncryptionKey)
	if err != nil {
		return nil, fmt.Errorf("totp key error: %w", err)
	}

	as := services.NewAuthService(store, c, box, services.WithLogger(logger))

	return &App{config: c, logger: logger, db: db, authService: as}, nil
}

// OpenStore returns the credential store for dsn, migrating PostgreSQL
// first. db is nil for MemoryDSN; otherwise the caller closes it.
func OpenStore(ctx context.Context, dsn string, logger logging.Logger) (users.Store, *sql.DB, error) {
	if dsn == MemoryDSN {
		logger.Warn(ctx, "using in-memory credential store, accounts are lost on exit")
		return users.NewMemoryStore(), nil, nil
	}

	db, err := openDB(dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	version, err := rm.RunMigrations(ctx, db)
	if err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("migrations error: %w", err)
	}
	logger.Info(ctx, "schema migrated", "version", version)

	return rm.Store(db), db, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.authService,
		app.config.RateLimitRPS, app.config.RateLimitBurst)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error(ctx, "db close error", "error", err)
		}
	}
	app.logger.Info(ctx, "App stopped")
}
