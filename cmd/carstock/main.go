// Command carstock runs the Car Stock API server: a small HTTP service
// where car dealers authenticate with a dealer id and password, then
// manage their own car inventory over a JSON API.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/yuewang-420/oraclecms-car-stock-api-demo/internal/api"
	"github.com/yuewang-420/oraclecms-car-stock-api-demo/internal/auth"
	"github.com/yuewang-420/oraclecms-car-stock-api-demo/internal/infrastructure/config"
	"github.com/yuewang-420/oraclecms-car-stock-api-demo/internal/infrastructure/database"
	"github.com/yuewang-420/oraclecms-car-stock-api-demo/internal/infrastructure/logging"
	"github.com/yuewang-420/oraclecms-car-stock-api-demo/internal/inventory"

	// Registers the embedded SQL migrations.
	_ "github.com/yuewang-420/oraclecms-car-stock-api-demo/migrations"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	configPath := flag.String("config", "configs/config.yaml", "path to configuration file")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, *configPath); err != nil {
		fmt.Fprintf(os.Stderr, "carstock: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	logger := logging.New(cfg.Logging, version)
	logger.Info("starting carstock", "version", version, "config", configPath)

	db, err := database.Open(database.Config{
		Path:        cfg.Database.Path,
		WALMode:     cfg.Database.WALMode,
		BusyTimeout: cfg.Database.BusyTimeout,
	})
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	if err := db.Migrate(ctx); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}

	dealers := auth.NewDealerRepository(db.DB)

	// On a fresh database, create the initial dealer account so the
	// instance is usable immediately. The generated password is logged
	// once and never stored in plaintext.
	if _, err := auth.SeedDealer(ctx, dealers, logger); err != nil {
		return fmt.Errorf("seeding initial dealer: %w", err)
	}

	server, err := api.New(api.Deps{
		Config:    cfg.API,
		Security:  cfg.Security,
		Logger:    logger,
		Dealers:   dealers,
		Inventory: inventory.NewSQLiteRepository(db.DB),
		Version:   version,
	})
	if err != nil {
		return fmt.Errorf("creating API server: %w", err)
	}

	if err := server.Start(ctx); err != nil {
		return fmt.Errorf("starting API server: %w", err)
	}

	<-ctx.Done()
	logger.Info("shutdown signal received")

	if err := server.Close(); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	logger.Info("carstock stopped")
	return nil
}
