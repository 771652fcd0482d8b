package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"payment-gateway-core/config"
	httpHandler "payment-gateway-core/internal/adapter/http/handler"
	pgStorage "payment-gateway-core/internal/adapter/storage/postgres"
	redisStorage "payment-gateway-core/internal/adapter/storage/redis"
	"payment-gateway-core/internal/core/ports"
	"payment-gateway-core/internal/service"
	"payment-gateway-core/internal/statemachine"
	"payment-gateway-core/pkg/logger"

	"github.com/hibiken/asynq"
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
		Msg("Starting Secure Payment Gateway")

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
	teamRepo := pgStorage.NewTeamRepo(pool)
	paymentRepo := pgStorage.NewPaymentRepo(pool)
	transitionRepo := pgStorage.NewTransitionRepo(pool)
	initLogRepo := pgStorage.NewInitLogRepo(pool)
	ruleRepo := pgStorage.NewBusinessRuleRepo(pool)
	auditRepo := pgStorage.NewAuditRepository(pool)
	webhookRepo := pgStorage.NewWebhookRepository(pool)
	transactor := pgStorage.NewTransactor(pool)

	// Initialize Redis stores
	idempotencyCache := redisStorage.NewIdempotencyCache(rdb)
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)
	lockStore := redisStorage.NewLockStore(rdb)

	// Initialize core ambient services
	encSvc, err := service.NewAESEncryptionService(cfg.AES.Key)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize encryption service")
	}
	sigSvc := service.NewHMACSignatureService()
	hashSvc := service.NewArgon2HashService()
	sessionSvc := service.NewJWTSessionTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)
	authenticator := service.NewCanonicalHashAuthenticator()
	corrSvc := service.NewCorrelationService()

	// Initialize business services
	auditSvc := service.NewAuditService(auditRepo, corrSvc, log)
	authSvc := service.NewAuthService(teamRepo, hashSvc, encSvc, sessionSvc)
	teamSvc := service.NewTeamService(teamRepo, encSvc)
	ruleEngineSvc := service.NewRuleEngineService(ruleRepo)

	sm := statemachine.New()
	lifecycleSvc := service.NewPaymentLifecycleService(
		paymentRepo,
		transitionRepo,
		initLogRepo,
		idempotencyCache,
		lockStore,
		transactor,
		sm,
		ruleEngineSvc,
		log,
	)

	asynqClient := asynq.NewClient(asynq.RedisClientOpt{Addr: cfg.Redis.Addr(), Password: cfg.Redis.Password, DB: cfg.Redis.DB})
	defer asynqClient.Close()

	webhookSvc := service.NewWebhookService(teamRepo, webhookRepo, encSvc, sigSvc, &http.Client{Timeout: 10 * time.Second}, asynqClient, log)
	reportingSvc := service.NewReportingService(paymentRepo)

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Load OpenAPI spec for Swagger UI
	if specBytes, err := os.ReadFile("docs/api/openapi.yaml"); err == nil {
		httpHandler.SetSwaggerSpec(specBytes)
		log.Info().Msg("OpenAPI spec loaded for Swagger UI at /swagger")
	} else {
		log.Warn().Err(err).Msg("OpenAPI spec not found, Swagger UI will be unavailable")
	}

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		AuthSvc:        authSvc,
		PaymentSvc:     lifecycleSvc,
		ReportingSvc:   reportingSvc,
		WebhookSvc:     webhookSvc,
		TeamSvc:        teamSvc,
		TeamRepo:       teamRepo,
		EncSvc:         encSvc,
		Authenticator:  authenticator,
		SessionSvc:     sessionSvc,
		AuditSvc:       auditSvc,
		RateLimitStore: rateLimitStore,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth},
		MetricsEnabled: cfg.Metrics.Enabled,
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
