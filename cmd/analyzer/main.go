package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/ksatyam/marketpulse/internal/adapters/config"
	"github.com/ksatyam/marketpulse/internal/adapters/database"
	"github.com/ksatyam/marketpulse/internal/adapters/news"
	"github.com/ksatyam/marketpulse/internal/analysis"
	"github.com/ksatyam/marketpulse/internal/lexicon"
	"github.com/ksatyam/marketpulse/internal/sectors"
	"github.com/ksatyam/marketpulse/internal/store"
	"github.com/ksatyam/marketpulse/internal/workers"
	"github.com/ksatyam/marketpulse/pkg/logger"
	"github.com/ksatyam/marketpulse/pkg/worker"
	_ "github.com/lib/pq"
)

func main() {
	// Setup signal handling
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		fmt.Println("\nReceived interrupt signal, shutting down...")
		cancel()
	}()

	// Run application
	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.File); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	logger.Info("Market sentiment analyzer starting...",
		zap.Strings("tickers", cfg.Analysis.Tickers),
		zap.Duration("interval", cfg.Analysis.Interval),
	)

	// Load sector reference table
	table, err := sectors.Load(cfg.Sectors.ProfilesPath)
	if err != nil {
		return fmt.Errorf("failed to load sector profiles: %w", err)
	}

	// Persistence is optional; without it the pipeline runs in memory
	var repo *store.Repository
	if cfg.Database.Enabled {
		db, err := initDatabase(cfg)
		if err != nil {
			return err
		}
		defer db.Close()

		repo = store.NewRepository(db.DB())
	}

	// Build the analysis pipeline
	aggregator := news.NewAggregator([]news.Fetcher{
		news.NewHeadlinesFetcher(true),
		news.NewRedditFetcher(true, nil),
		news.NewStocktwitsFetcher(true),
	}, cfg.Analysis.ItemLimit)

	service := analysis.NewService(cfg, lexicon.NewProvider(), aggregator, table)

	// Start background workers
	group := worker.NewGroup(ctx)
	group.Add(workers.NewSentimentWorker(service, repo, cfg.Analysis.Tickers), cfg.Analysis.Interval)
	group.Add(workers.NewPortfolioWorker(service), cfg.Analysis.Interval)
	group.Start()

	// Keep service running
	<-ctx.Done()
	logger.Info("shutting down gracefully...")
	group.Stop(30 * time.Second)

	return nil
}

// initDatabase initializes database connection with sqlx
func initDatabase(cfg *config.Config) (*database.DB, error) {
	db, err := database.New(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Run migrations
	migrationsPath := "./migrations"
	if err := database.RunMigrations(db.Conn(), migrationsPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.Info("database connection established (sqlx)",
		zap.String("host", cfg.Database.Host),
		zap.String("database", cfg.Database.Name),
	)

	return db, nil
}
