package handler

import (
	"escrow-settlement-engine/internal/adapter/http/middleware"
	redisStore "escrow-settlement-engine/internal/adapter/storage/redis"
	"escrow-settlement-engine/internal/core/ports"
	"escrow-settlement-engine/internal/metrics"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	AuthSvc        ports.AuthService
	Engine         ports.PaymentEngine
	MerchantSvc    ports.MerchantService
	RegistrySvc    ports.RegistryService
	TokenSvc       ports.TokenService
	AdminAPIKey    string
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	Metrics        *metrics.Registry // nil = metrics disabled
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit
	if deps.Metrics != nil {
		r.Use(middleware.Metrics(deps.Metrics))
	}

	// Health check (deep, verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Prometheus metrics
	if deps.Metrics != nil {
		r.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}

	// Rate limit rules
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

	// API v1 routes
	v1 := r.Group("/api/v1")

	// --- Public routes (no auth) ---
	authHandler := NewAuthHandler(deps.AuthSvc)
	auth := v1.Group("/auth")
	{
		auth.POST("/register", rl("auth_register"), authHandler.Register)
		auth.POST("/login", rl("auth_login"), authHandler.Login)
	}

	// --- Payer API (no auth; payments are authorized by funds, not identity) ---
	paymentHandler := NewPaymentHandler(deps.Engine)
	payments := v1.Group("/payments")
	{
		payments.POST("/send", rl("payments"), paymentHandler.Send)
		payments.POST("/send-with-callback", rl("payments"), paymentHandler.SendWithCallback)
		payments.POST("/authorize", rl("payments"), paymentHandler.Authorize)
		payments.POST("/authorize-with-callback", rl("payments"), paymentHandler.AuthorizeWithCallback)
	}

	// --- Merchant API (JWT) ---
	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)
	settlementHandler := NewSettlementHandler(deps.Engine)
	merchantHandler := NewMerchantHandler(deps.MerchantSvc)

	settlements := v1.Group("/settlements", jwtAuth)
	{
		settlements.POST("", rl("settlements"), settlementHandler.Settle)
		settlements.GET("/pending", rl("settlements"), settlementHandler.ListPending)
	}

	v1.PUT("/paywall/:item_id", jwtAuth, rl("merchant"), merchantHandler.SetPaywallPrice)
	v1.GET("/paywall/:item_id", rl("merchant"), merchantHandler.GetPaywallPrice)
	v1.PUT("/merchants/me/config", jwtAuth, rl("merchant"), merchantHandler.SetConfig)
	v1.GET("/merchants/:id/config", rl("merchant"), merchantHandler.GetConfig)

	// --- Asset registry (reads public, writes admin) ---
	registryHandler := NewRegistryHandler(deps.RegistrySvc)
	adminAuth := middleware.AdminAuth(deps.AdminAPIKey, deps.Logger)
	assets := v1.Group("/assets")
	{
		assets.GET("", rl("assets"), registryHandler.ListAssets)
		assets.GET("/:asset", rl("assets"), registryHandler.GetAsset)
		assets.PUT("/:asset", adminAuth, rl("assets"), registryHandler.PutAsset)
		assets.DELETE("/:asset", adminAuth, rl("assets"), registryHandler.RemoveAsset)
	}

	return r
}
