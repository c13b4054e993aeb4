package handler

import (
	"net/http"

	"hdwallet-settlement/internal/adapter/http/middleware"
	"hdwallet-settlement/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// MetricsExporter records requests and serves the scrape endpoint.
type MetricsExporter interface {
	middleware.RequestObserver
	Handler() http.Handler
}

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	WalletMgr      ports.WalletManager
	InvoiceSvc     ports.InvoiceService
	Checker        ports.TransactionChecker
	TokenSvc       ports.TokenService
	RateLimitStore middleware.Limiter // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	Metrics        MetricsExporter // nil = no /metrics endpoint
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit
	if deps.Metrics != nil {
		r.Use(middleware.Metrics(deps.Metrics))
		r.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}

	// Health check (deep: verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	swagger := r.Group("/swagger")
	{
		swagger.GET("", SwaggerUI)
		swagger.GET("/spec", SwaggerSpec)
	}

	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	walletHandler := NewWalletHandler(deps.WalletMgr)
	invoiceHandler := NewInvoiceHandler(deps.InvoiceSvc, deps.Checker)

	v1 := r.Group("/api/v1")

	// --- Public routes (no auth) ---
	v1.GET("/invoices/:id", rl("invoice_status"), invoiceHandler.Status)

	// --- JWT-authenticated operator routes ---
	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)

	wallets := v1.Group("/wallets", jwtAuth, rl("admin"))
	{
		wallets.POST("", walletHandler.Create)
		wallets.GET("", walletHandler.List)
		wallets.GET("/:id", walletHandler.Get)
		wallets.POST("/:id/password", rl("wallet_secrets"), walletHandler.UpdatePassword)
		wallets.DELETE("/:id", rl("wallet_secrets"), walletHandler.Delete)
	}

	invoices := v1.Group("/invoices", jwtAuth, rl("admin"))
	{
		invoices.GET("", invoiceHandler.List)
		invoices.POST("", rl("invoice_create"), invoiceHandler.Create)
		invoices.POST("/:id/check", rl("invoice_check"), invoiceHandler.Check)
		invoices.POST("/:id/cancel", invoiceHandler.Cancel)
	}

	v1.POST("/sweeps", jwtAuth, rl("admin"), invoiceHandler.Sweep)

	return r
}
