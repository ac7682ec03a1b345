// Package app builds the dependency graph shared by the CLI and the gateway.
package app

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"

	"fsanano/shop-client/internal/config"
	"fsanano/shop-client/internal/recent"
	"fsanano/shop-client/internal/repository"
	"fsanano/shop-client/internal/service"
	"fsanano/shop-client/internal/service/shopapi"
	"fsanano/shop-client/internal/state"
	"fsanano/shop-client/internal/store"
)

// App bundles the client, the store and the services over one config.
type App struct {
	Config   *config.Config
	Files    *store.FileStore
	API      *shopapi.Client
	State    *state.Store
	Recent   *recent.List
	Services *service.Services

	db  *pgxpool.Pool
	log *log.Logger
}

// New wires everything from cfg. Recent searches go to Postgres when
// DATABASE_URL is set and to the home directory otherwise.
func New(ctx context.Context, cfg *config.Config, logger *log.Logger) (*App, error) {
	if logger == nil {
		logger = log.Default()
	}

	files, err := store.NewFileStore(cfg.Home)
	if err != nil {
		return nil, err
	}
	deviceID, err := files.DeviceID()
	if err != nil {
		return nil, err
	}

	a := &App{
		Config: cfg,
		Files:  files,
		API: shopapi.NewClient(shopapi.Config{
			BaseURL:  cfg.API.BaseURL,
			Timeout:  cfg.API.Timeout,
			DeviceID: deviceID,
		}),
		State: state.New(),
		log:   logger,
	}

	var storage recent.Storage = files
	if cfg.DatabaseURL != "" {
		repo, err := a.connect(ctx, cfg.DatabaseURL, deviceID)
		if err != nil {
			return nil, err
		}
		storage = repo
	}
	a.Recent = recent.New(storage, cfg.RecentMax)
	a.Recent.Load(ctx)

	a.Services = service.New(service.Deps{
		API:        a.API,
		State:      a.State,
		Sessions:   files,
		Passphrase: cfg.Passphrase,
		Recent:     a.Recent,
		Logger:     logger,
	})
	return a, nil
}

func (a *App) connect(ctx context.Context, url, owner string) (*repository.RecentSearchRepository, error) {
	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	repo := repository.NewRecentSearchRepository(pool, owner)
	if err := repo.EnsureSchema(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to prepare recent_searches: %w", err)
	}
	a.db = pool
	return repo, nil
}

// Restore picks up a saved session, if any. Failures are logged; the app
// then runs signed out.
func (a *App) Restore(ctx context.Context) bool {
	ok, err := a.Services.Auth.Restore(ctx)
	if err != nil {
		a.log.Printf("Session not restored: %v", err)
		return false
	}
	return ok
}

func (a *App) Close() {
	if a.db != nil {
		a.db.Close()
	}
}
