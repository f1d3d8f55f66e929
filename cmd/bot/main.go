package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shopbot/internal/config"
	"shopbot/internal/handler"
	"shopbot/internal/i18n"
	"shopbot/internal/repository/postgres"
	"shopbot/internal/server"
	"shopbot/internal/service"
	"shopbot/internal/session"
	"shopbot/internal/sheets"

	"github.com/golang-migrate/migrate/v4"
	postgresdb "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting WhatsApp inventory bot")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	logger.Info("Configuration loaded successfully")

	// Connect to database with retries
	db, err := connectDatabase(cfg.DSN(), logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connection established")

	// Run migrations
	if err := runMigrations(db, logger); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	logger.Info("Database migrations completed")

	// Initialize repositories
	itemRepo := postgres.NewItemRepo(db)
	supplierRepo := postgres.NewSupplierRepo(db)
	senderRepo := postgres.NewSenderRepo(db)

	// Initialize the spreadsheet log
	ctx := context.Background()
	sheetLog, err := sheets.New(ctx, []byte(cfg.Sheet.CredentialsJSON), cfg.Sheet.SpreadsheetID, cfg.Sheet.SheetName)
	if err != nil {
		logger.Fatal("Failed to initialize spreadsheet log", zap.Error(err))
	}

	logger.Info("Spreadsheet log initialized", zap.String("sheet", cfg.Sheet.SheetName))

	// Initialize services
	inventoryService := service.NewInventoryService(itemRepo, supplierRepo, sheetLog, logger)

	// Session store backend
	sessions, err := newSessionStore(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("Failed to initialize session store", zap.Error(err))
	}

	// Initialize handler and HTTP server
	h := handler.NewHandler(itemRepo, supplierRepo, senderRepo, inventoryService, sessions, i18n.New(), logger)
	srv := server.New(h, cfg.TwilioAuthToken, logger)

	httpServer := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: srv.Engine(),
	}

	go func() {
		logger.Info("Webhook server started", zap.String("port", cfg.Port))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan

	logger.Info("Shutdown signal received, stopping server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("Failed to shut down cleanly", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// newSessionStore picks the configured session backend
func newSessionStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (session.Store, error) {
	if cfg.Session.Backend == "memory" {
		return session.NewMemoryStore(), nil
	}

	client := redis.NewClient(&redis.Options{Addr: cfg.Session.RedisAddr})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	logger.Info("Redis session store connected", zap.String("addr", cfg.Session.RedisAddr))
	return session.NewRedisStore(client), nil
}

// connectDatabase connects to PostgreSQL with retries
func connectDatabase(dsn string, logger *zap.Logger) (*sql.DB, error) {
	var db *sql.DB
	var err error

	maxRetries := 30
	retryDelay := 2 * time.Second

	for i := 0; i < maxRetries; i++ {
		db, err = sql.Open("postgres", dsn)
		if err != nil {
			logger.Warn("Failed to open database connection",
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			time.Sleep(retryDelay)
			continue
		}

		// Test connection
		if err = db.Ping(); err != nil {
			logger.Warn("Failed to ping database",
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			db.Close()
			time.Sleep(retryDelay)
			continue
		}

		// Connection successful
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(5 * time.Minute)

		return db, nil
	}

	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", maxRetries, err)
}

// runMigrations runs database migrations
func runMigrations(db *sql.DB, logger *zap.Logger) error {
	driver, err := postgresdb.WithInstance(db, &postgresdb.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		"file://migrations",
		"postgres",
		driver,
	)
	if err != nil {
		return fmt.Errorf("failed to create migration instance: %w", err)
	}

	// Run migrations
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.Info("Migrations applied")
	return nil
}
