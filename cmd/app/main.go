package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"logitrack/cmd"
	httpadapter "logitrack/internal/adapters/in/http"
	"logitrack/internal/adapters/out/postgres"
	"logitrack/internal/generated/servers"
	"logitrack/internal/seed"

	"github.com/labstack/gommon/log"
)

const shutdownTimeout = 10 * time.Second

func main() {
	config, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: config.SlogLevel()}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

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

	app, err := cmd.NewCompositionRoot(config, db, logger)
	if err != nil {
		log.Fatalf("Failed to build application: %v", err)
	}
	defer func() {
		if closeErr := app.Close(); closeErr != nil {
			logger.Error("Failed to close event publisher", "error", closeErr)
		}
	}()

	seedOffices(ctx, app, config.OfficesSeedPath, logger)

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	if err = startWebServer(ctx, app, config.HTTPPort, logger); err != nil {
		logger.Error("HTTP server stopped with error", "error", err)
	}
}

// seedOffices loads the office directory seed. A missing file is not an error.
func seedOffices(ctx context.Context, app *cmd.CompositionRoot, path string, logger *slog.Logger) {
	offices, err := seed.LoadOffices(path)
	if errors.Is(err, os.ErrNotExist) {
		logger.Info("No office seed file", "path", path)
		return
	}
	if err != nil {
		log.Fatalf("Failed to read office seeds: %v", err)
	}

	created, err := seed.Offices(ctx, app.CreateCreateOfficeCommandHandler(), offices)
	if err != nil {
		log.Fatalf("Failed to seed offices: %v", err)
	}
	logger.Info("Office directory seeded", "created", created, "total", len(offices))
}

func startWebServer(ctx context.Context, app *cmd.CompositionRoot, port string, logger *slog.Logger) error {
	doc, err := servers.GetSwagger()
	if err != nil {
		return err
	}
	if err = doc.Validate(ctx); err != nil {
		return fmt.Errorf("invalid OpenAPI document: %w", err)
	}

	e, err := httpadapter.NewRouter(app.CreateHTTPServer(), doc, logger)
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:              fmt.Sprintf("0.0.0.0:%s", port),
		Handler:           e,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP server listening", "addr", server.Addr)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err = <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
