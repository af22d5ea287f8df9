// Command dbtool prepares the database: it creates it when missing, migrates
// the schema and loads the office seed file.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"logitrack/cmd"
	"logitrack/internal/adapters/out/postgres"
	"logitrack/internal/seed"

	"github.com/labstack/gommon/log"
)

func main() {
	config, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	seedPath := flag.String("seed", config.OfficesSeedPath, "office seed file; empty skips seeding")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: config.SlogLevel()}))
	ctx := context.Background()

	settings := config.DatabaseSettings()
	if err = postgres.EnsureDatabase(ctx, settings); err != nil {
		log.Fatalf("Failed to prepare database: %v", err)
	}
	db, err := postgres.Open(settings)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err = postgres.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	logger.Info("Schema migrated", "database", settings.DBName)

	if *seedPath == "" {
		return
	}

	offices, err := seed.LoadOffices(*seedPath)
	if err != nil {
		log.Fatalf("Failed to read office seeds: %v", err)
	}

	app, err := cmd.NewCompositionRoot(config, db, logger)
	if err != nil {
		log.Fatalf("Failed to build application: %v", err)
	}
	defer func() { _ = app.Close() }()

	created, err := seed.Offices(ctx, app.CreateCreateOfficeCommandHandler(), offices)
	if err != nil {
		log.Fatalf("Failed to seed offices: %v", err)
	}
	logger.Info("Office directory seeded", "created", created, "total", len(offices))
}
