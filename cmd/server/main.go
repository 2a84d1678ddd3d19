// Package main implements the entry point for the signup API server,
// which handles account registration and credential verification backed by
// a PostgreSQL store.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"log/slog"

	"github.com/phrazzld/signup-api/internal/config"
	"github.com/phrazzld/signup-api/internal/platform/logger"
	"github.com/phrazzld/signup-api/internal/platform/postgres"
	"github.com/phrazzld/signup-api/internal/service/account"
	"github.com/phrazzld/signup-api/internal/service/verification"
)

func main() {
	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	defer app.cleanup()

	if err := app.startHTTPServer(context.Background(), app.setupRouter()); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// application holds the initialized dependencies of the running server.
type application struct {
	config              *config.Config
	logger              *slog.Logger
	db                  *sql.DB
	accountService      *account.Service
	verificationService *verification.Service
}

// initializeApp loads configuration and wires up application components:
// logging, the database connection, migrations, and the service layer.
func initializeApp() (*application, error) {
	// Load configuration first: a missing database parameter must fail here,
	// at startup, not per request.
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	db, err := setupDatabase(cfg, appLogger)
	if err != nil {
		return nil, err
	}

	if err := runMigrations(db, appLogger); err != nil {
		closeErr := db.Close()
		if closeErr != nil {
			appLogger.Error("Failed to close database after migration failure", "error", closeErr)
		}
		return nil, err
	}

	credentialStore := postgres.NewAccountStore(db)

	return &application{
		config:              cfg,
		logger:              appLogger,
		db:                  db,
		accountService:      account.NewService(credentialStore, appLogger),
		verificationService: verification.NewService(credentialStore, appLogger),
	}, nil
}

// cleanup releases the application's long-lived resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Failed to close database connection", "error", err)
		}
	}
}
