// cmd/main.go is the application entry point.
// It wires together all layers and exposes them through the serve and list commands.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"

	"github.com/Shivanand-hulikatti/community-events/internal/config"
	"github.com/Shivanand-hulikatti/community-events/internal/confirm"
	"github.com/Shivanand-hulikatti/community-events/internal/database"
	"github.com/Shivanand-hulikatti/community-events/internal/messages"
	"github.com/Shivanand-hulikatti/community-events/internal/metrics"
	"github.com/Shivanand-hulikatti/community-events/internal/model"
	"github.com/Shivanand-hulikatti/community-events/internal/repository"
	"github.com/Shivanand-hulikatti/community-events/internal/seed"
	"github.com/Shivanand-hulikatti/community-events/internal/service"
	"github.com/Shivanand-hulikatti/community-events/internal/store"
	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "community-events",
		Short:         "Community events portal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(serveCmd(), listCmd())
	return cmd
}

// app is everything the commands share.
type app struct {
	cfg      *config.Config
	logger   *slog.Logger
	workflow *service.Workflow
	metrics  *metrics.Metrics
}

func newApp(ctx context.Context, logOut io.Writer) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logger := cfg.NewLogger(logOut)

	msg, err := messages.NewCatalog(cfg.Locale, logger)
	if err != nil {
		return nil, fmt.Errorf("messages: %w", err)
	}
	logger.Info(msg.T(messages.Welcome, nil))

	events, err := loadSeed(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	s, err := store.New(events)
	if err != nil {
		return nil, fmt.Errorf("store: %w", err)
	}
	logger.Info("events loaded", "count", len(events))

	m := metrics.New()
	client := confirm.NewClient(&http.Client{Timeout: cfg.ConfirmTimeout}, cfg.ConfirmURL)
	wf := service.NewWorkflow(s, client, msg, service.Options{
		Delay:    cfg.ConfirmDelay,
		Recorder: m,
		Logger:   logger,
	})

	return &app{cfg: cfg, logger: logger, workflow: wf, metrics: m}, nil
}

// loadSeed reads the seed list from Postgres when DATABASE_URL is set,
// otherwise from SEED_FILE or the built-in list.
func loadSeed(ctx context.Context, cfg *config.Config, logger *slog.Logger) ([]model.Event, error) {
	var src seed.Source = seed.File{Path: cfg.SeedFile}

	if cfg.DatabaseURL != "" {
		if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
			return nil, fmt.Errorf("database: %w", err)
		}
		pool, err := database.NewPool(ctx, cfg.DatabaseURL, logger)
		if err != nil {
			return nil, fmt.Errorf("database: %w", err)
		}
		defer pool.Close()
		logger.Info("connected to PostgreSQL")
		src = repository.NewEventRepository(pool)
	}

	events, err := src.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load seed: %w", err)
	}
	return events, nil
}
