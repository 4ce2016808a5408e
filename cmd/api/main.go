package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"

	"github.com/legalpulse/survey-api/config"
	"github.com/legalpulse/survey-api/internal/cache"
	"github.com/legalpulse/survey-api/internal/database/memory"
	"github.com/legalpulse/survey-api/internal/database/postgres"
	"github.com/legalpulse/survey-api/internal/handlers"
	"github.com/legalpulse/survey-api/internal/middleware"
	"github.com/legalpulse/survey-api/internal/query"
	"github.com/legalpulse/survey-api/internal/repository"
	"github.com/legalpulse/survey-api/internal/services"
	"github.com/legalpulse/survey-api/pkg/db"
	"github.com/legalpulse/survey-api/pkg/httpclient"
	"github.com/legalpulse/survey-api/pkg/jwt"
	"github.com/legalpulse/survey-api/pkg/logger"
	"github.com/legalpulse/survey-api/pkg/metrics"
	"github.com/legalpulse/survey-api/pkg/profiling"
	"github.com/legalpulse/survey-api/pkg/retry"
	"github.com/legalpulse/survey-api/pkg/storage"
	"github.com/legalpulse/survey-api/pkg/tracing"
	"github.com/legalpulse/survey-api/pkg/trigger"
)

var _ repository.Store = (*postgres.Client)(nil)

// rateLimiters groups the per-IP limiters applied to the survey routes
type rateLimiters struct {
	submit *middleware.RateLimiter
	read   *middleware.RateLimiter
}

// registerSurveyRoutes registers the general survey routes
func registerSurveyRoutes(group *gin.RouterGroup, limits rateLimiters, maxBody int64, admin gin.HandlerFunc, h *handlers.SurveyHandler) {
	survey := group.Group("/survey")
	survey.POST("/submit", limits.submit.Middleware(), middleware.BodySizeLimitMiddleware(maxBody), h.Submit)
	survey.GET("/all", limits.read.Middleware(), h.List)
	survey.GET("/analytics/summary", limits.read.Middleware(), h.Analytics)
	survey.GET("/:id", limits.read.Middleware(), h.GetByID)
	survey.DELETE("/:id", limits.read.Middleware(), admin, h.Delete)
}

// registerLawyerSurveyRoutes registers the lawyer survey routes. Everything
// but submission is administrative.
func registerLawyerSurveyRoutes(group *gin.RouterGroup, limits rateLimiters, maxBody int64, admin gin.HandlerFunc, h *handlers.LawyerSurveyHandler) {
	lawyer := group.Group("/lawyer-survey")
	lawyer.POST("/submit", limits.submit.Middleware(), middleware.BodySizeLimitMiddleware(maxBody), h.Submit)

	private := lawyer.Group("", limits.read.Middleware(), admin)
	private.GET("/all", h.List)
	private.GET("/search", h.Search)
	private.GET("/analytics/summary", h.Analytics)
	private.GET("/export/csv", h.ExportCSV)
	private.POST("/export/archive", h.ArchiveExport)
	private.GET("/:id", h.GetByID)
	private.PATCH("/:id/status", middleware.BodySizeLimitMiddleware(maxBody), h.UpdateStatus)
	private.DELETE("/:id", h.Delete)
}

// openStore returns the in-memory store in offline mode, otherwise connects to
// PostgreSQL (retrying while it starts up) and applies pending migrations
func openStore(ctx context.Context, cfg *config.Config) (repository.Store, func(), error) {
	if cfg.Database.WorkOffline {
		logger.Warn("DB_WORK_OFFLINE is set: surveys are kept in memory and lost on restart")
		return memory.NewStore(), func() {}, nil
	}

	tlsCfg := db.TLSConfig{CACertPath: cfg.Database.CACertPath}

	pool, err := retry.DoWithResult(ctx, retry.DatabaseConfig(), "db.connect", func() (*pgxpool.Pool, error) {
		return db.NewPool(ctx, db.PoolConfig{
			URL:      cfg.Database.URL,
			MaxConns: cfg.Database.MaxConns,
			MinConns: cfg.Database.MinConns,
			TLS:      tlsCfg,
		})
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.RunMigrations(cfg.Database.URL, "file://"+cfg.Database.MigrationsDir, tlsCfg); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	client := postgres.NewClient(pool)
	go client.RecordPoolStats(ctx, 15*time.Second)

	return client, func() { db.Close(pool) }, nil
}

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	err = logger.Initialize(logger.Config{
		Level:       cfg.Logging.Level,
		LogDir:      cfg.Logging.Dir,
		Environment: cfg.Server.AppEnv,
		ServiceName: cfg.Observability.ServiceName,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting survey API",
		zap.String("version", cfg.Observability.ServiceVersion),
		zap.String("environment", cfg.Server.AppEnv),
	)

	// Initialize distributed tracing
	tracerShutdown, err := tracing.InitTracer(cfg.Observability, cfg.Server.AppEnv)
	if err != nil {
		logger.Fatal("Failed to initialize tracer", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if shutdownErr := tracerShutdown(ctx); shutdownErr != nil {
			logger.Error("Failed to shutdown tracer", zap.Error(shutdownErr))
		}
	}()

	stopProfiler, err := profiling.InitProfiler(cfg.Profiling, cfg.Observability, cfg.Server.AppEnv)
	if err != nil {
		logger.Fatal("Failed to initialize profiler", zap.Error(err))
	}
	defer stopProfiler()

	metrics.RecordInfrastructureMetrics()

	// Root context for background workers, cancelled on shutdown
	rootCtx, stopWorkers := context.WithCancel(context.Background())
	defer stopWorkers()

	store, closeStore, err := openStore(rootCtx, cfg)
	if err != nil {
		logger.Fatal("Failed to open survey store", zap.Error(err))
	}
	defer closeStore()

	// Repositories share one analytics cache; writes invalidate it
	analyticsCache := cache.NewAnalyticsCache(cfg.Cache.AnalyticsTTLSeconds)
	generalRepo := repository.NewGeneralSurveyRepository(store, analyticsCache)
	lawyerRepo := repository.NewLawyerSurveyRepository(store, analyticsCache)

	lawyerOpts := []services.LawyerSurveyServiceOption{
		services.WithLawyerListing(query.LawyerListing.WithLimits(cfg.Query.LawyerDefaultLimit, cfg.Query.MaxLimit)),
	}

	notifier := trigger.NewNotifier(cfg.Triggers.LawyerLeadTriggerURL,
		httpclient.New(time.Duration(cfg.Triggers.TimeoutSeconds)*time.Second))
	if notifier.Enabled() {
		lawyerOpts = append(lawyerOpts, services.WithLeadNotifier(notifier))
	} else {
		logger.Info("Lead notifications disabled: LAWYER_LEAD_TRIGGER_URL not set")
	}

	if cfg.Storage.Enabled() {
		archive, storageErr := storage.NewClient(cfg.Storage)
		if storageErr != nil {
			logger.Fatal("Failed to initialize object storage client", zap.Error(storageErr))
		}
		lawyerOpts = append(lawyerOpts, services.WithArchiveStore(archive))
	} else {
		logger.Info("Export archives disabled: object storage not configured")
	}

	// Initialize services
	generalService := services.NewGeneralSurveyService(generalRepo,
		query.GeneralListing.WithLimits(cfg.Query.GeneralDefaultLimit, cfg.Query.MaxLimit))
	lawyerService := services.NewLawyerSurveyService(lawyerRepo, lawyerOpts...)

	// Initialize handlers
	surveyHandler := handlers.NewSurveyHandler(generalService)
	lawyerHandler := handlers.NewLawyerSurveyHandler(lawyerService)
	healthHandler := handlers.NewHealthHandler(store)

	var tokenManager *jwt.TokenManager
	if cfg.AdminAuthEnabled() {
		tokenManager = jwt.NewTokenManager(cfg.Admin.JWTSecret, cfg.Admin.JWTIssuer, cfg.Admin.TokenTTLHours)
	} else {
		logger.Warn("Admin routes are UNPROTECTED: ADMIN_JWT_SECRET not configured")
	}
	adminAuth := middleware.AdminAuthMiddleware(tokenManager)

	// Set up Gin router
	gin.SetMode(cfg.Server.GinMode)
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(otelgin.Middleware(cfg.Observability.ServiceName))
	router.Use(middleware.ObservabilityMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())

	allowedOrigins := cfg.Server.AllowedOrigins
	if cfg.IsDevelopment() {
		allowedOrigins = append(allowedOrigins, "http://127.0.0.1:3000")
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:  allowedOrigins,
		AllowMethods:  []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{"Content-Length", "Content-Disposition"},
		MaxAge:        12 * time.Hour,
	}))

	limits := rateLimiters{
		submit: middleware.NewPerMinuteRateLimiter(rootCtx, cfg.RateLimit.SubmitPerMinute),
		read:   middleware.NewPerMinuteRateLimiter(rootCtx, cfg.RateLimit.ReadPerMinute),
	}

	// Operational endpoints (not versioned)
	api := router.Group("/api")
	api.GET("/healthcheck", healthHandler.Healthcheck)
	api.GET("/metrics", limits.read.Middleware(), gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")
	registerSurveyRoutes(v1, limits, cfg.Server.MaxBodyBytes, adminAuth, surveyHandler)
	registerLawyerSurveyRoutes(v1, limits, cfg.Server.MaxBodyBytes, adminAuth, lawyerHandler)

	srv := &http.Server{
		Addr:              "0.0.0.0:" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 15 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second, // CSV exports of the full table
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20, // SECURITY: 1 MB max header size
	}

	// Start server in a goroutine
	go func() {
		logger.Info("Server started", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
