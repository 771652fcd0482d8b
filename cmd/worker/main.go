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
	pgStorage "payment-gateway-core/internal/adapter/storage/postgres"
	redisStorage "payment-gateway-core/internal/adapter/storage/redis"
	"payment-gateway-core/internal/adapter/reconciler"
	"payment-gateway-core/internal/service"
	"payment-gateway-core/internal/statemachine"
	"payment-gateway-core/internal/worker"
	"payment-gateway-core/pkg/logger"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)
	log.Info().Msg("Starting Secure Payment Gateway background worker")

	ctx := context.Background()

	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	teamRepo := pgStorage.NewTeamRepo(pool)
	paymentRepo := pgStorage.NewPaymentRepo(pool)
	transitionRepo := pgStorage.NewTransitionRepo(pool)
	initLogRepo := pgStorage.NewInitLogRepo(pool)
	ruleRepo := pgStorage.NewBusinessRuleRepo(pool)
	auditRepo := pgStorage.NewAuditRepository(pool)
	webhookRepo := pgStorage.NewWebhookRepository(pool)
	retryRepo := pgStorage.NewRetryAttemptRepo(pool)
	metricsRepo := pgStorage.NewMetricsRepo(pool)
	maintenanceRepo := pgStorage.NewMaintenanceRepo(pool)
	transactor := pgStorage.NewTransactor(pool)

	idempotencyCache := redisStorage.NewIdempotencyCache(rdb)
	lockStore := redisStorage.NewLockStore(rdb)

	encSvc, err := service.NewAESEncryptionService(cfg.AES.Key)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize encryption service")
	}
	sigSvc := service.NewHMACSignatureService()
	ruleEngineSvc := service.NewRuleEngineService(ruleRepo)

	sm := statemachine.New()
	lifecycleSvc := service.NewPaymentLifecycleService(
		paymentRepo, transitionRepo, initLogRepo, idempotencyCache,
		lockStore, transactor, sm, ruleEngineSvc, log,
	)
	retrySvc := service.NewRetryService(retryRepo, paymentRepo, lifecycleSvc, lockStore, log)
	// The worker process is the consumer of webhook dispatch tasks, not a
	// producer, so it has no use for an asynq.Client of its own.
	webhookSvc := service.NewWebhookService(teamRepo, webhookRepo, encSvc, sigSvc, &http.Client{Timeout: 10 * time.Second}, nil, log)

	redisOpt := asynq.RedisClientOpt{Addr: cfg.Redis.Addr(), Password: cfg.Redis.Password, DB: cfg.Redis.DB}
	asynqSrv := asynq.NewServer(redisOpt, asynq.Config{
		Concurrency: 10,
		Queues:      map[string]int{"webhooks": 1},
		Logger:      asynqLogAdapter{log: log},
	})
	mux := asynq.NewServeMux()
	mux.Handle(service.TypeWebhookDispatch, service.NewWebhookDispatchHandler(webhookSvc))

	go func() {
		if err := asynqSrv.Run(mux); err != nil {
			log.Error().Err(err).Msg("asynq server stopped")
		}
	}()
	defer asynqSrv.Shutdown()

	orchestrator := worker.New(worker.Deps{
		PaymentRepo: paymentRepo,
		Lifecycle:   lifecycleSvc,
		Retry:       retrySvc,
		AuditRepo:   auditRepo,
		WebhookRepo: webhookRepo,
		WebhookSvc:  webhookSvc,
		Metrics:     metricsRepo,
		Reconciler:  reconciler.New(),
		Maintenance: maintenanceRepo,
		Log:         log,
	})

	if err := orchestrator.Start(); err != nil {
		log.Fatal().Err(err).Msg("Failed to start background orchestrator")
	}
	log.Info().Msg("Background orchestrator running")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down worker...")

	stopCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	orchestrator.Stop(stopCtx)

	log.Info().Msg("Worker exited")
}

// asynqLogAdapter routes asynq's internal logging through zerolog so
// webhook queue diagnostics land in the same structured log stream as
// everything else the worker emits.
type asynqLogAdapter struct {
	log zerolog.Logger
}

func (a asynqLogAdapter) Debug(args ...interface{}) { a.log.Debug().Msg(fmt.Sprint(args...)) }
func (a asynqLogAdapter) Info(args ...interface{})  { a.log.Info().Msg(fmt.Sprint(args...)) }
func (a asynqLogAdapter) Warn(args ...interface{})  { a.log.Warn().Msg(fmt.Sprint(args...)) }
func (a asynqLogAdapter) Error(args ...interface{}) { a.log.Error().Msg(fmt.Sprint(args...)) }
func (a asynqLogAdapter) Fatal(args ...interface{}) { a.log.Fatal().Msg(fmt.Sprint(args...)) }
