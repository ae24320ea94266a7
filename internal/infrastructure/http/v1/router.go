// Package v1 provides HTTP API version 1.
package v1

import (
	"github.com/gin-gonic/gin"

	"tally/internal/domain/company"
	"tally/internal/domain/industry"
	"tally/internal/domain/invoice"
	"tally/internal/infrastructure/http/v1/handlers"
	"tally/internal/infrastructure/http/v1/middleware"
	"tally/internal/infrastructure/storage/postgres"
	"tally/pkg/logger"
)

// RouterConfig holds router configuration.
type RouterConfig struct {
	// Pool is the database connection pool (for health checks)
	Pool *postgres.Pool

	// Logger for request logging
	Logger *logger.Logger

	// Companies service
	Companies *company.Service

	// Industries service
	Industries *industry.Service

	// Invoices service
	Invoices *invoice.Service
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware (order matters!)
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.ErrorHandler())

	// Health endpoints
	healthHandler := handlers.NewHealthHandler(cfg.Pool)
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
	}

	base := handlers.NewBaseHandler()
	companyHandler := handlers.NewCompanyHandler(base, cfg.Companies)
	industryHandler := handlers.NewIndustryHandler(base, cfg.Industries)
	invoiceHandler := handlers.NewInvoiceHandler(base, cfg.Invoices)

	companies := router.Group("/companies")
	{
		companies.GET("", companyHandler.List)
		companies.POST("", companyHandler.Create)
		companies.GET("/:code", companyHandler.Get)
		companies.PUT("/:code", companyHandler.Update)
		companies.DELETE("/:code", companyHandler.Delete)
	}

	industries := router.Group("/industries")
	{
		industries.GET("", industryHandler.List)
		industries.POST("", industryHandler.Create)
		industries.POST("/:companyCode/:industryCode", industryHandler.Associate)
	}

	invoices := router.Group("/invoices")
	{
		invoices.GET("", invoiceHandler.List)
		invoices.POST("", invoiceHandler.Create)
		invoices.GET("/:id", invoiceHandler.Get)
		invoices.PUT("/:id", invoiceHandler.Update)
		invoices.DELETE("/:id", invoiceHandler.Delete)
	}

	return router
}
