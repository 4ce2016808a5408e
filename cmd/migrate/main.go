package main

import (
	"fmt"
	"net/url"
	"os"

	"github.com/legalpulse/survey-api/config"
	"github.com/legalpulse/survey-api/pkg/db"
	"github.com/legalpulse/survey-api/pkg/logger"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

func main() {
	down := pflag.Bool("down", false, "roll back every applied migration instead of applying pending ones")
	dir := pflag.String("dir", "", "migrations directory (defaults to MIGRATIONS_DIR)")
	pflag.Parse()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	err = logger.Initialize(logger.Config{
		Level:       cfg.Logging.Level,
		LogDir:      cfg.Logging.Dir,
		Environment: cfg.Server.AppEnv,
		ServiceName: "survey-api-migrate",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if cfg.Database.URL == "" {
		logger.Fatal("DATABASE_URL is required to run migrations")
	}

	migrationsDir := cfg.Database.MigrationsDir
	if *dir != "" {
		migrationsDir = *dir
	}

	direction := db.Up
	if *down {
		direction = db.Down
	}

	logger.Info("Starting database migrations",
		zap.String("database", maskDatabaseURL(cfg.Database.URL)),
		zap.String("direction", string(direction)),
		zap.String("dir", migrationsDir))

	tlsCfg := db.TLSConfig{CACertPath: cfg.Database.CACertPath}
	if err := db.Migrate(cfg.Database.URL, "file://"+migrationsDir, tlsCfg, direction); err != nil {
		logger.Error("Failed to run migrations", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("Database migrations completed successfully")
}

// maskDatabaseURL hides the password of the database URL for logging
func maskDatabaseURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return "***"
	}
	return u.Redacted()
}
