package main

import (
	"context"
	"fmt"
	"os"

	"coursetracker/backend/cache"
	"coursetracker/backend/cli"
	"coursetracker/backend/config"
	"coursetracker/backend/services"
	"coursetracker/backend/store"
	"coursetracker/backend/utils"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(cfg.LogMode)
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	defer logger.Sync()

	// Initialize database
	db, err := utils.InitDB(cfg)
	if err != nil {
		return fmt.Errorf("initializing database: %w", err)
	}

	// Wire stores
	var catalog services.CatalogStore = store.NewCatalogRepo(db)
	students := store.NewStudentRepo(db)

	if cfg.CacheEnabled() {
		client, err := cache.NewRedisClient(ctx, cfg)
		if err != nil {
			logger.Warn("redis unavailable, catalog cache disabled", "error", err)
		} else {
			defer client.Close()
			catalog = cache.NewCatalogCache(catalog, client, cfg.CatalogCacheTTL, logger)
		}
	}

	app := &cli.App{
		Cfg:        cfg,
		Log:        logger,
		DB:         db,
		Enrollment: services.NewEnrollmentService(catalog, students, logger),
		Auth:       services.NewAuthService(students, cfg, logger),
	}

	return cli.NewRootCmd(app).ExecuteContext(ctx)
}
