package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/contactbook/internal/adapter/postgres"
	"github.com/heartmarshall/contactbook/internal/adapter/postgres/snapshot"
	"github.com/heartmarshall/contactbook/internal/adapter/restapi"
	"github.com/heartmarshall/contactbook/internal/auth"
	"github.com/heartmarshall/contactbook/internal/config"
	"github.com/heartmarshall/contactbook/internal/service/account"
	"github.com/heartmarshall/contactbook/internal/service/contact"
	"github.com/heartmarshall/contactbook/internal/service/derive"
	"github.com/heartmarshall/contactbook/internal/service/view"
)

// App holds the wired components shared by every command.
type App struct {
	Config   *config.Config
	Log      *slog.Logger
	Session  *auth.Session
	Tokens   *auth.TokenFile
	Contacts *contact.Service
	Account  *account.Service
	Composer *view.Composer

	client *restapi.Client
	pool   *pgxpool.Pool
}

// New wires the application: it restores a saved session, builds the REST
// client and services, and connects the snapshot store when a database is
// configured. A snapshot database that cannot be reached is logged and
// skipped so the client still works online.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	session := auth.NewSession()
	tokens := auth.NewTokenFile(tokenPath(cfg.Auth))

	restored, err := tokens.Restore(session)
	if err != nil {
		logger.WarnContext(ctx, "saved session ignored",
			slog.String("path", tokens.Path()),
			slog.String("error", err.Error()),
		)
	}

	session.OnSignOut(func(reason string) {
		if err := tokens.Remove(); err != nil {
			logger.Warn("remove saved session", slog.String("error", err.Error()))
		}
		logger.Info("signed out", slog.String("reason", reason))
	})

	client := restapi.NewClient(cfg.API.BaseURL, cfg.API.Timeout, session, logger)

	a := &App{
		Config:   cfg,
		Log:      logger,
		Session:  session,
		Tokens:   tokens,
		Account:  account.NewService(logger, client, session, tokens),
		Composer: view.NewComposer(cfg.View.Locale),
		client:   client,
	}

	if cfg.Database.Enabled() {
		pool, err := openSnapshotDB(ctx, cfg.Database, logger)
		if err != nil {
			logger.WarnContext(ctx, "snapshot store disabled", slog.String("error", err.Error()))
		} else {
			a.pool = pool
		}
	}

	if a.pool != nil {
		a.Contacts = contact.NewService(logger, client, session, snapshot.New(a.pool))
	} else {
		a.Contacts = contact.NewService(logger, client, session, nil)
	}

	logger.DebugContext(ctx, "application wired",
		slog.String("version", BuildVersion()),
		slog.String("api", cfg.API.BaseURL),
		slog.Bool("session_restored", restored),
		slog.Bool("snapshot", a.pool != nil),
	)

	return a, nil
}

// DeriveOptions returns the analytics limits from the view configuration.
func (a *App) DeriveOptions() derive.Options {
	return derive.Options{
		RecentLimit:   a.Config.View.RecentLimit,
		ActivityLimit: a.Config.View.ActivityLimit,
		TopCategories: a.Config.View.TopCategories,
	}
}

// Close releases network and database resources.
func (a *App) Close() {
	a.client.Close()
	if a.pool != nil {
		a.pool.Close()
	}
}

func openSnapshotDB(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*pgxpool.Pool, error) {
	if err := postgres.Migrate(ctx, cfg.DSN, logger); err != nil {
		return nil, err
	}
	pool, err := postgres.NewPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("snapshot pool: %w", err)
	}
	return pool, nil
}

func tokenPath(cfg config.AuthConfig) string {
	if cfg.TokenFile != "" {
		return cfg.TokenFile
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "contactbook", "session.json")
}
