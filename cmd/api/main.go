package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"escrow-settlement-engine/config"
	"escrow-settlement-engine/internal/adapter/callback"
	"escrow-settlement-engine/internal/adapter/exchange"
	httpHandler "escrow-settlement-engine/internal/adapter/http/handler"
	pgStorage "escrow-settlement-engine/internal/adapter/storage/postgres"
	redisStorage "escrow-settlement-engine/internal/adapter/storage/redis"
	"escrow-settlement-engine/internal/core/domain"
	"escrow-settlement-engine/internal/core/ports"
	"escrow-settlement-engine/internal/metrics"
	"escrow-settlement-engine/internal/service"
	"escrow-settlement-engine/pkg/logger"

	"github.com/google/uuid"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Str("network_id", cfg.Engine.NetworkID).
		Msg("Starting Escrow Settlement Engine")

	treasuryAccount, err := uuid.Parse(cfg.Engine.TreasuryAccount)
	if err != nil {
		log.Fatal().Err(err).Msg("engine.treasury_account is not a UUID")
	}
	escrowAccount, err := uuid.Parse(cfg.Engine.EscrowAccount)
	if err != nil {
		log.Fatal().Err(err).Msg("engine.escrow_account is not a UUID")
	}

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Initialize repositories
	merchantRepo := pgStorage.NewMerchantRepo(pool)
	accountRepo := pgStorage.NewAccountRepo(pool)
	escrowRepo := pgStorage.NewEscrowRepo(pool)
	assetRepo := pgStorage.NewAssetRepo(pool)
	paywallRepo := pgStorage.NewPaywallRepo(pool)
	transactor := pgStorage.NewTransactor(pool)

	// Initialize Redis stores
	nonceCounter := redisStorage.NewNonceCounter(rdb)
	priceCache := redisStorage.NewPriceCache(rdb)

	// Initialize core services
	hashSvc := service.NewArgon2HashService()
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)

	// Initialize collaborators
	exchangeClient := exchange.NewClient(cfg.Exchange.BaseURL, &http.Client{Timeout: cfg.Exchange.Timeout}, log)
	callbackExecutor := callback.NewExecutor(&http.Client{Timeout: cfg.Callback.Timeout}, cfg.Callback.MaxResponseBytes, log)

	// Initialize metrics
	metricsRegistry := metrics.New()

	// Initialize business services
	authSvc := service.NewAuthService(merchantRepo, hashSvc, tokenSvc)
	merchantSvc := service.NewMerchantService(merchantRepo, paywallRepo)
	registrySvc := service.NewRegistryService(assetRepo)
	valuator := service.NewValuationService(assetRepo, priceCache, cfg.Engine.USDDecimals)
	feeSplitter := service.NewProtocolFeeSplitter(
		cfg.Engine.FeeRateNumerator,
		cfg.Engine.FeeRateDenominator,
		domain.AssetID(cfg.Engine.FeeExemptAsset),
	)
	paywallGuard := service.NewPaywallGuard(paywallRepo)

	engine := service.NewPaymentEngine(service.EngineDeps{
		Registry:     assetRepo,
		Accounts:     accountRepo,
		EscrowRepo:   escrowRepo,
		MerchantRepo: merchantRepo,
		Paywall:      paywallGuard,
		Valuator:     valuator,
		Fees:         feeSplitter,
		Exchange:     exchangeClient,
		Callbacks:    callbackExecutor,
		Nonces:       nonceCounter,
		Transactor:   transactor,
		Metrics:      metricsRegistry,
	}, service.EngineParams{
		NetworkID:          cfg.Engine.NetworkID,
		TreasuryAccount:    treasuryAccount,
		EscrowAccount:      escrowAccount,
		DefaultPayoutAsset: domain.AssetID(cfg.Engine.DefaultPayoutAsset),
	}, log)

	// Initialize rate limit store
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		AuthSvc:        authSvc,
		Engine:         engine,
		MerchantSvc:    merchantSvc,
		RegistrySvc:    registrySvc,
		TokenSvc:       tokenSvc,
		AdminAPIKey:    cfg.Admin.APIKey,
		RateLimitStore: rateLimitStore,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth},
		Metrics:        metricsRegistry,
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
