package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"foodie-kart/internal/catalog"
	"foodie-kart/internal/config"
	"foodie-kart/internal/database"
	"foodie-kart/internal/handler"
	"foodie-kart/internal/repository"
	"foodie-kart/internal/router"
	"foodie-kart/internal/service"
	"foodie-kart/internal/storage"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// A missing .env file is fine; the environment may already be populated
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env file: %w", err)
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().
		Str("storage_backend", cfg.Storage.Backend).
		Msg("starting foodie-kart API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// S3 client shared by the s3 store and the menu loader
	var s3Client *s3.Client
	if cfg.S3.Enabled {
		s3Client, err = storage.NewS3Client(ctx, cfg.S3.Region)
		if err != nil {
			if cfg.Storage.Backend == config.BackendS3 {
				return fmt.Errorf("failed to initialize S3 client: %w", err)
			}
			logger.Warn().
				Err(err).
				Msg("failed to initialise S3 client, falling back to local file system only")
		}
	}

	// Initialize key-value store
	store, closeStore, err := openStore(ctx, cfg, s3Client, logger)
	if err != nil {
		return err
	}
	defer closeStore()
	store = storage.WithPrefix(store, cfg.Storage.KeyPrefix)

	// Initialize menu with S3 and local fallback
	fileLoader := catalog.NewFileLoader(logger)
	var menuLoader catalog.Loader = fileLoader
	if s3Client != nil {
		s3Loader := catalog.NewS3Loader(s3Client, cfg.S3.Bucket, logger)
		menuLoader = catalog.NewFallbackLoader(s3Loader, fileLoader, cfg.S3.Prefix, logger)
	} else {
		logger.Info().Msg("using local file system for menu files (S3 disabled)")
	}

	menu, err := catalog.LoadOrDefault(ctx, menuLoader, cfg.Catalog.Path, logger)
	if err != nil {
		return fmt.Errorf("failed to load menu: %w", err)
	}

	// Initialize repositories
	cartRepo := repository.NewCartRepository(store, logger)
	orderRepo := repository.NewOrderRepository(store, logger)

	// Initialize services
	catalogService := service.NewCatalogService(menu, logger)
	cartService := service.NewCartService(cartRepo, logger)
	orderService := service.NewOrderService(orderRepo, logger)
	checkoutService := service.NewCheckoutService(cartService, orderService, cfg.Orders.DeliveryWindow(), logger)

	// Initialize router
	mux := router.New(router.Handlers{
		Catalog: handler.NewCatalogHandler(catalogService, logger),
		Cart:    handler.NewCartHandler(cartService, catalogService, logger),
		Orders:  handler.NewOrderHandler(orderService, checkoutService, logger),
	}, cfg.Auth.APIKey, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Int("menu_size", menu.Size()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		// Create a context with timeout for shutdown
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		// Attempt graceful shutdown
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			// Force close
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}

// openStore builds the configured storage backend and a func releasing it.
func openStore(ctx context.Context, cfg *config.Config, s3Client *s3.Client, logger zerolog.Logger) (storage.Store, func(), error) {
	switch cfg.Storage.Backend {
	case config.BackendPostgres:
		pool, err := database.NewPool(ctx, cfg.Database, logger)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		if err := storage.EnsureSchema(ctx, pool); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("failed to prepare storage schema: %w", err)
		}
		return storage.NewPostgresStore(pool, logger), pool.Close, nil

	case config.BackendS3:
		if s3Client == nil {
			return nil, nil, fmt.Errorf("s3 storage backend requires an S3 client")
		}
		return storage.NewS3Store(s3Client, cfg.S3.Bucket, cfg.S3.Prefix+"state/", logger), func() {}, nil

	default:
		logger.Warn().Msg("using in-memory storage; cart and orders are lost on restart")
		return storage.NewMemoryStore(), func() {}, nil
	}
}
