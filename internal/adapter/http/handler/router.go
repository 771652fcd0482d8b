package handler

import (
	"payment-gateway-core/internal/adapter/http/middleware"
	redisStore "payment-gateway-core/internal/adapter/storage/redis"
	"payment-gateway-core/internal/core/ports"
	"payment-gateway-core/internal/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	AuthSvc        ports.AuthService
	PaymentSvc     ports.PaymentLifecycleService
	ReportingSvc   ports.ReportingService
	WebhookSvc     ports.WebhookService
	TeamSvc        ports.TeamManagementService
	TeamRepo       ports.TeamRepository
	EncSvc         ports.EncryptionService
	Authenticator  ports.TokenAuthenticator
	SessionSvc     ports.SessionTokenService
	AuditSvc        ports.AuditService // nil = auth-event audit logging disabled
	RateLimitStore  *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers  []ports.HealthChecker
	MetricsEnabled  bool // mounts GET /metrics when true
	Logger          zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit
	r.Use(metrics.GinMiddleware())

	// Health check (deep — verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Prometheus scrape endpoint
	if deps.MetricsEnabled {
		r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	// Swagger documentation
	swagger := r.Group("/swagger")
	{
		swagger.GET("", SwaggerUI)
		swagger.GET("/spec", SwaggerSpec)
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

	// --- Canonical-hash-token-authenticated routes (merchant payment API) ---
	tokenAuth := middleware.TokenAuth(deps.TeamRepo, deps.EncSvc, deps.Authenticator, deps.AuditSvc, deps.Logger)
	paymentHandler := NewPaymentHandler(deps.PaymentSvc, deps.WebhookSvc)
	{
		v1.POST("/init", tokenAuth, rl("init"), paymentHandler.Init)
		v1.POST("/confirm", tokenAuth, rl("confirm"), paymentHandler.Confirm)
		v1.POST("/cancel", tokenAuth, rl("cancel"), paymentHandler.Cancel)
		v1.POST("/refund", tokenAuth, rl("refund"), paymentHandler.Refund)
		v1.POST("/getState", tokenAuth, rl("getState"), paymentHandler.GetState)
		v1.POST("/check", tokenAuth, rl("check"), paymentHandler.GetState)
	}

	// --- JWT-authenticated routes (dashboard) ---
	jwtAuth := middleware.JWTAuth(deps.SessionSvc, deps.Logger)
	teamHandler := NewTeamHandler(deps.TeamSvc)
	dashboardHandler := NewDashboardHandler(deps.ReportingSvc)

	team := v1.Group("/team", jwtAuth)
	{
		team.GET("/profile", rl("dashboard"), teamHandler.GetProfile)
		team.PATCH("/webhook", rl("dashboard"), teamHandler.UpdateWebhookURL)
		team.POST("/webhook/rotate", rl("dashboard"), teamHandler.RotateWebhookSecret)
	}

	dashboard := v1.Group("/dashboard", jwtAuth)
	{
		dashboard.GET("/stats", rl("dashboard"), dashboardHandler.GetStats)
	}

	payments := v1.Group("/payments", jwtAuth)
	{
		payments.GET("", rl("dashboard"), dashboardHandler.ListPayments)
		payments.GET("/active", rl("dashboard"), paymentHandler.GetActivePayments)
		payments.POST("/rollback", rl("dashboard"), paymentHandler.Rollback)
	}

	return r
}
