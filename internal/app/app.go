package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/templui/lenscard/internal/config"
	"github.com/templui/lenscard/internal/db"
	"github.com/templui/lenscard/internal/lens"
	"github.com/templui/lenscard/internal/model"
	"github.com/templui/lenscard/internal/repository"
	"github.com/templui/lenscard/internal/service"
	"github.com/templui/lenscard/internal/storage"
	"github.com/templui/lenscard/internal/ui/components/profilecard"
)

type App struct {
	Cfg             *config.Config
	DB              *sqlx.DB
	DefaultTheme    model.Theme
	CardOptions     profilecard.Options
	ProfileService  *service.ProfileService
	SnapshotService *service.SnapshotService
	TokenService    *service.TokenService
	DocsService     *service.DocsService
}

// New wires the app. content must hold the guide under docs/.
func New(ctx context.Context, cfg *config.Config, content fs.FS) (*App, error) {
	defaultTheme, err := model.ParseTheme(cfg.DefaultTheme)
	if err != nil {
		return nil, fmt.Errorf("DEFAULT_THEME: %w", err)
	}

	// Initialize database
	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	err = db.RunMigrations(ctx, database.DB, cfg.DBDriver)
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	// Storage is optional: without a bucket, publishing answers 503.
	snapshotStorage, err := storage.New(ctx, cfg)
	if errors.Is(err, storage.ErrNotConfigured) {
		slog.Info("snapshot publishing disabled", "reason", err)
		snapshotStorage = nil
	} else if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	lensClient := lens.NewClient(lens.Options{
		Endpoint: cfg.LensAPIURL,
		Timeout:  cfg.LensTimeout,
		PageSize: cfg.FollowersPerPage,
	})

	cardOpts := profilecard.Options{
		ProfileBaseURL: cfg.ProfileBaseURL,
		Logger:         slog.Default(),
	}

	profileService := service.NewProfileService(lensClient, cfg.IPFSGateway)
	snapshotService := service.NewSnapshotService(
		profileService,
		snapshotStorage,
		repository.NewSnapshotRepository(database),
		cardOpts,
	)

	return &App{
		Cfg:             cfg,
		DB:              database,
		DefaultTheme:    defaultTheme,
		CardOptions:     cardOpts,
		ProfileService:  profileService,
		SnapshotService: snapshotService,
		TokenService:    service.NewTokenService(cfg.JWTSecret, cfg.JWTExpiry),
		DocsService:     service.NewDocsService(content),
	}, nil
}

func (a *App) Close() error {
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}
