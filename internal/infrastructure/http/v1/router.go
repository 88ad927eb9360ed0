// Package v1 provides HTTP API version 1.
package v1

import (
	"github.com/gin-gonic/gin"

	"sanhaja/internal/core/audit"
	"sanhaja/internal/core/security"
	"sanhaja/internal/core/sequence"
	"sanhaja/internal/domain/agency"
	"sanhaja/internal/domain/auth"
	"sanhaja/internal/domain/booking"
	"sanhaja/internal/domain/client"
	"sanhaja/internal/domain/dailyreport"
	"sanhaja/internal/domain/dashboard"
	"sanhaja/internal/domain/invoice"
	"sanhaja/internal/domain/payment"
	"sanhaja/internal/domain/reports"
	"sanhaja/internal/domain/supplier"
	"sanhaja/internal/infrastructure/http/v1/handlers"
	"sanhaja/internal/infrastructure/http/v1/middleware"
	"sanhaja/internal/infrastructure/storage/postgres"
	"sanhaja/pkg/logger"
)

// RouterConfig holds everything the HTTP layer depends on.
type RouterConfig struct {
	Pool   *postgres.Pool
	TxM    *postgres.TxManager
	Logger *logger.Logger

	// JWTValidator for token validation
	JWTValidator middleware.JWTValidator

	AuthService *auth.Service

	// Numbers generates invoice and payment document numbers
	Numbers sequence.Generator

	// Audit records sensitive operations
	Audit audit.Recorder
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

	// Health endpoints (no auth required)
	healthHandler := handlers.NewHealthHandler(cfg.Pool)
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
		health.GET("/info", healthHandler.Info)
	}

	// Wire repositories and services. All repos share one TxManager; scope
	// resolution goes through the agency directory.
	agencyRepo := postgres.NewAgencyRepo(cfg.TxM)
	resolver := security.NewResolver(agencyRepo)

	agencySvc := agency.NewService(agencyRepo, resolver)
	clientSvc := client.NewService(postgres.NewClientRepo(cfg.TxM), resolver)
	supplierSvc := supplier.NewService(postgres.NewSupplierRepo(cfg.TxM), resolver)
	bookingSvc := booking.NewService(postgres.NewBookingRepo(cfg.TxM), resolver)

	invoiceRepo := postgres.NewInvoiceRepo(cfg.TxM)
	invoiceSvc := invoice.NewService(invoiceRepo, resolver, cfg.Numbers)
	paymentSvc := payment.NewService(postgres.NewPaymentRepo(cfg.TxM), invoiceRepo, resolver, cfg.Numbers, cfg.TxM, cfg.Audit)

	dailyReportSvc := dailyreport.NewService(postgres.NewDailyReportRepo(cfg.TxM), resolver, cfg.Audit)
	reportsSvc := reports.NewService(postgres.NewReportRepo(cfg.TxM), agencyRepo, resolver)
	dashboardSvc := dashboard.NewService(postgres.NewDashboardRepo(cfg.TxM), resolver)

	base := handlers.NewBaseHandler()
	authHandler := handlers.NewAuthHandler(base, cfg.AuthService)
	agencyHandler := handlers.NewAgencyHandler(base, agencySvc)
	clientHandler := handlers.NewClientHandler(base, clientSvc)
	supplierHandler := handlers.NewSupplierHandler(base, supplierSvc)
	bookingHandler := handlers.NewBookingHandler(base, bookingSvc)
	invoiceHandler := handlers.NewInvoiceHandler(base, invoiceSvc)
	paymentHandler := handlers.NewPaymentHandler(base, paymentSvc)
	dailyReportHandler := handlers.NewDailyReportHandler(base, dailyReportSvc)
	reportsHandler := handlers.NewReportsHandler(base, reportsSvc)
	dashboardHandler := handlers.NewDashboardHandler(base, dashboardSvc)

	// API v1
	v1 := router.Group("/api/v1")
	{
		v1.POST("/auth/login", authHandler.Login)

		protected := v1.Group("")
		protected.Use(middleware.Auth(cfg.JWTValidator))
		{
			protected.GET("/auth/me", authHandler.Me)

			protected.POST("/users", authHandler.CreateUser)
			protected.GET("/users", authHandler.ListUsers)

			protected.POST("/agencies", agencyHandler.Create)
			protected.GET("/agencies", agencyHandler.List)

			protected.POST("/clients", clientHandler.Create)
			protected.GET("/clients", clientHandler.List)
			protected.PUT("/clients/:id", clientHandler.Update)
			protected.DELETE("/clients/:id", clientHandler.Delete)

			protected.POST("/suppliers", supplierHandler.Create)
			protected.GET("/suppliers", supplierHandler.List)
			protected.PUT("/suppliers/:id", supplierHandler.Update)
			protected.DELETE("/suppliers/:id", supplierHandler.Delete)

			protected.POST("/bookings", bookingHandler.Create)
			protected.GET("/bookings", bookingHandler.List)

			protected.POST("/invoices", invoiceHandler.Create)
			protected.GET("/invoices", invoiceHandler.List)

			protected.POST("/payments", paymentHandler.Create)
			protected.GET("/payments", paymentHandler.List)

			protected.GET("/reports", reportsHandler.Generate)
			protected.GET("/dashboard", dashboardHandler.Stats)

			protected.POST("/daily-reports", dailyReportHandler.Submit)
			protected.GET("/daily-reports", dailyReportHandler.List)
			protected.GET("/daily-reports/:id", dailyReportHandler.Get)
			protected.PUT("/daily-reports/:id/approve", dailyReportHandler.Approve)
			protected.PUT("/daily-reports/:id/reject", dailyReportHandler.Reject)
		}
	}

	return router
}
