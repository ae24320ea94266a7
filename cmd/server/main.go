// Package main is the entry point for the Tally API server.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shopspring/decimal"

	"tally/internal/domain/company"
	"tally/internal/domain/industry"
	"tally/internal/domain/invoice"
	v1 "tally/internal/infrastructure/http/v1"
	"tally/internal/infrastructure/storage/postgres"
	"tally/pkg/logger"
)

func main() {
	// Initialize logger
	log, err := logger.New(logger.Config{
		Level:       getEnv("LOG_LEVEL", "info"),
		Development: getEnv("APP_ENV", "development") == "development",
	})
	if err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	// Amounts render as JSON numbers, matching the public contract.
	decimal.MarshalJSONWithoutQuotes = true

	ctx := context.Background()
	log.Info("starting tally server")

	// --- Database connection ---
	dsn := mustEnv("DATABASE_URL")

	poolCfg := postgres.DefaultPoolConfig(dsn)
	if maxConns := getEnvInt("DB_MAX_CONNS", 0); maxConns > 0 {
		poolCfg.MaxConns = int32(maxConns)
	}

	pool, err := postgres.NewPool(ctx, poolCfg)
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()
	log.Info("database connection established")

	// --- Repositories and services ---
	// The transaction manager is injected explicitly; no process-wide
	// connection handle exists.
	txManager := postgres.NewTxManager(pool)

	companyRepo := postgres.NewCompanyRepo(txManager)
	industryRepo := postgres.NewIndustryRepo(txManager)
	invoiceRepo := postgres.NewInvoiceRepo(txManager)

	companyService := company.NewService(companyRepo, txManager)
	industryService := industry.NewService(industryRepo, companyRepo)
	invoiceService := invoice.NewService(invoiceRepo, companyRepo, txManager)

	// --- Router ---
	router := v1.NewRouter(v1.RouterConfig{
		Pool:       pool,
		Logger:     log,
		Companies:  companyService,
		Industries: industryService,
		Invoices:   invoiceService,
	})

	// --- HTTP Server ---
	port := getEnv("APP_PORT", "8080")
	server := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Infow("server starting", "port", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalw("server failed", "error", err)
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	// Give outstanding requests 30 seconds to complete
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalw("server forced to shutdown", "error", err)
	}

	log.Info("server stopped")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func mustEnv(key string) string {
	value := os.Getenv(key)
	if value == "" {
		fmt.Printf("required environment variable %s not set\n", key)
		os.Exit(1)
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		var result int
		if _, err := fmt.Sscanf(value, "%d", &result); err == nil {
			return result
		}
	}
	return defaultValue
}
