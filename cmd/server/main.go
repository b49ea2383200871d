package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	appfinance "github.com/dealerdesk/backend/internal/application/finance"
	appidentity "github.com/dealerdesk/backend/internal/application/identity"
	appinventory "github.com/dealerdesk/backend/internal/application/inventory"
	appreport "github.com/dealerdesk/backend/internal/application/report"
	appsales "github.com/dealerdesk/backend/internal/application/sales"
	"github.com/dealerdesk/backend/internal/domain/identity"
	"github.com/dealerdesk/backend/internal/infrastructure/auth"
	"github.com/dealerdesk/backend/internal/infrastructure/cache"
	"github.com/dealerdesk/backend/internal/infrastructure/config"
	"github.com/dealerdesk/backend/internal/infrastructure/logger"
	"github.com/dealerdesk/backend/internal/infrastructure/persistence"
	"github.com/dealerdesk/backend/internal/infrastructure/scheduler"
	"github.com/dealerdesk/backend/internal/infrastructure/storage"
	"github.com/dealerdesk/backend/internal/infrastructure/telemetry"
	"github.com/dealerdesk/backend/internal/interfaces/http/handler"
	"github.com/dealerdesk/backend/internal/interfaces/http/middleware"
	"github.com/dealerdesk/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	_ "github.com/dealerdesk/backend/docs"
)

//go:generate swag init --v3.1 -g cmd/server/main.go -d ../../ -o ../../docs --parseInternal

//	@title			DealerDesk API
//	@version		1.0
//	@description	Back office for car dealerships: import batches, cars, investors, sales and installment payments.

//	@contact.name	DealerDesk Support
//	@contact.email	support@dealerdesk.example.com

//	@host		localhost:8080
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	SessionCookie
//	@in							cookie
//	@name						session_token
//	@description				Session cookie set by POST /auth/login

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Session token as "Bearer {token}" for non-browser clients

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer logger.Sync(log)

	log.Info("Starting DealerDesk backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	ctx := context.Background()
	otelCfg := telemetry.Config{
		Enabled:           cfg.Telemetry.Enabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		SamplingRatio:     cfg.Telemetry.SamplingRatio,
		ServiceName:       cfg.Telemetry.ServiceName,
		Insecure:          cfg.Telemetry.Insecure,
	}

	// Telemetry: logs first so the rest of startup is exported too
	logsCfg := otelCfg
	logsCfg.Enabled = cfg.Telemetry.LogsEnabled
	loggerProvider, err := telemetry.NewLoggerProvider(ctx, logsCfg, log)
	if err != nil {
		log.Fatal("Failed to initialize log exporter", zap.Error(err))
	}
	if loggerProvider.IsEnabled() {
		level, err := zapcore.ParseLevel(cfg.Log.Level)
		if err != nil {
			level = zapcore.InfoLevel
		}
		otelCore := telemetry.NewZapOTELCore(loggerProvider, cfg.Telemetry.ServiceName, level)
		log = log.WithOptions(zap.WrapCore(func(core zapcore.Core) zapcore.Core {
			return zapcore.NewTee(core, otelCore)
		}))
	}

	tracerProvider, err := telemetry.NewTracerProvider(ctx, otelCfg, log)
	if err != nil {
		log.Fatal("Failed to initialize tracer", zap.Error(err))
	}

	metricsCfg := otelCfg
	metricsCfg.Enabled = cfg.Telemetry.MetricsEnabled
	meterProvider, err := telemetry.NewMeterProvider(ctx, metricsCfg, cfg.Telemetry.MetricsExportInterval, log)
	if err != nil {
		log.Fatal("Failed to initialize meter", zap.Error(err))
	}
	var meter metric.Meter
	metrics := telemetry.NewNopDealerMetrics()
	if meterProvider.IsEnabled() {
		meter = meterProvider.Meter()
		if metrics, err = telemetry.NewDealerMetrics(meter); err != nil {
			log.Fatal("Failed to create business metrics", zap.Error(err))
		}
	}

	profiler, err := telemetry.NewProfiler(cfg.Telemetry.ProfilingEnabled, cfg.Telemetry.PyroscopeAddress,
		cfg.Telemetry.ServiceName, log)
	if err != nil {
		log.Fatal("Failed to start profiler", zap.Error(err))
	}
	if profiler.IsEnabled() {
		tracerProvider.EnableSpanProfiles()
	}

	// Create GORM logger backed by zap
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level),
		logger.WithSlowThreshold(cfg.Telemetry.DBSlowQueryThresh))

	// Initialize database connection with custom logger
	db, err := persistence.NewDatabaseWithCustomLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	log.Info("Database connected successfully")

	if err := telemetry.RegisterDBTracing(db.DB, telemetry.DBTracingConfig{
		Enabled:         cfg.Telemetry.Enabled && cfg.Telemetry.DBTraceEnabled,
		LogFullSQL:      cfg.Telemetry.DBLogFullSQL,
		SlowQueryThresh: cfg.Telemetry.DBSlowQueryThresh,
		DBName:          cfg.Database.DBName,
	}, log); err != nil {
		log.Fatal("Failed to register database tracing", zap.Error(err))
	}
	if meter != nil {
		sqlDB, err := db.DB.DB()
		if err == nil {
			err = telemetry.RegisterPoolMetrics(meter, sqlDB)
		}
		if err != nil {
			log.Warn("Failed to register connection pool metrics", zap.Error(err))
		}
	}

	// Initialize repositories
	adminRepo := persistence.NewGormAdminRepository(db.DB)
	companyRepo := persistence.NewGormCompanyRepository(db.DB)
	subUserRepo := persistence.NewGormSubUserRepository(db.DB)
	siteUserRepo := persistence.NewGormSiteUserRepository(db.DB)
	batchRepo := persistence.NewGormBatchRepository(db.DB)
	expenseRepo := persistence.NewGormBatchExpenseRepository(db.DB)
	carRepo := persistence.NewGormCarRepository(db.DB)
	investorRepo := persistence.NewGormInvestorRepository(db.DB)
	customerRepo := persistence.NewGormCustomerRepository(db.DB)

	// Session revocation lives in Redis when available
	blacklist, closeBlacklist := auth.NewTokenBlacklist(cfg.Redis, log)

	// Company images; uploads answer STORAGE_DISABLED without a bucket
	var images appidentity.ImageStore
	var processor appidentity.ImageProcessor
	if cfg.Storage.Enabled {
		s3, err := storage.NewS3ObjectStorage(&cfg.Storage,
			storage.WithLogger(log),
			storage.WithPresignExpiration(cfg.Storage.PresignExpiration),
		)
		if err != nil {
			log.Fatal("Failed to initialize object storage", zap.Error(err))
		}
		images = s3
		processor = storage.NewWebPImageProcessor(cfg.Storage.MaxImageSize, cfg.Storage.ImageMaxDimension)
		log.Info("Object storage enabled", zap.String("bucket", cfg.Storage.Bucket))
	}

	identity.SetPasswordCost(cfg.Security.BcryptCost)
	sessionTTL := cfg.JWT.Expiration

	created, err := appidentity.EnsureAdmin(ctx, adminRepo, appidentity.BootstrapAdmin{
		Name:     cfg.Bootstrap.AdminName,
		Email:    cfg.Bootstrap.AdminEmail,
		Password: cfg.Bootstrap.AdminPassword,
	}, log)
	if err != nil {
		log.Fatal("Failed to bootstrap admin", zap.Error(err))
	}
	if created {
		log.Info("Bootstrap admin created", zap.String("email", cfg.Bootstrap.AdminEmail))
	}

	// Initialize application services
	jwtService := auth.NewJWTService(cfg.JWT)
	authService := appidentity.NewAuthService(adminRepo, companyRepo, subUserRepo, jwtService, blacklist, metrics, log)
	companyService := appidentity.NewCompanyService(adminRepo, companyRepo, subUserRepo, images, processor, blacklist, sessionTTL, log)
	subUserService := appidentity.NewSubUserService(adminRepo, companyRepo, subUserRepo, blacklist, sessionTTL, log)
	siteUserService := appidentity.NewSiteUserService(siteUserRepo, log)

	batchService := appinventory.NewBatchService(batchRepo, expenseRepo, log)
	aggregator := appinventory.NewBatchAggregator(batchRepo, expenseRepo, carRepo, customerRepo, investorRepo, metrics, log)
	carService := appinventory.NewCarService(carRepo, batchRepo, log)
	investorService := appfinance.NewInvestorService(investorRepo, batchRepo, log)
	customerService := appsales.NewCustomerService(customerRepo, carRepo, metrics, log)
	dashboardService := appreport.NewDashboardService(batchRepo, carRepo, customerRepo, investorRepo, log)
	analyticsService := appreport.NewAnalyticsService(batchRepo, log)

	// Nightly recompute of every stored batch total across tenants
	var sweep *scheduler.DailyTrigger
	if cfg.Scheduler.SweepEnabled {
		sweep, err = scheduler.NewDailyTrigger("batch_totals", scheduler.DailyConfig{
			Hour:          cfg.Scheduler.SweepHour,
			Minute:        cfg.Scheduler.SweepMinute,
			CheckInterval: cfg.Scheduler.SweepCheckInterval,
			Timeout:       cfg.Scheduler.SweepTimeout,
		}, func(ctx context.Context) error {
			report, err := aggregator.RecalculateAllBatches(ctx, nil)
			if err != nil {
				return err
			}
			log.Info("Batch totals recomputed",
				zap.Int("processed", report.Processed),
				zap.Int("failed", report.Failed),
			)
			return nil
		}, log)
		if err != nil {
			log.Fatal("Failed to create batch sweep trigger", zap.Error(err))
		}
		sweep.Start(ctx)
	}

	// Initialize HTTP handlers
	base := handler.NewBaseHandler(!cfg.App.IsProduction())
	systemHandler := handler.NewSystemHandler(cfg.App.Name, "1.0.0", db)
	handlers := router.Handlers{
		Auth:     handler.NewAuthHandler(base, authService, companyService, cfg.Cookie, sessionTTL),
		Company:  handler.NewCompanyHandler(base, companyService, cfg.Storage.MaxImageSize),
		SubUser:  handler.NewSubUserHandler(base, subUserService),
		User:     handler.NewUserHandler(base, siteUserService),
		Batch:    handler.NewBatchHandler(base, batchService, aggregator),
		Car:      handler.NewCarHandler(base, carService),
		Investor: handler.NewInvestorHandler(base, investorService),
		Customer: handler.NewCustomerHandler(base, customerService),
		Report:   handler.NewReportHandler(base, dashboardService, analyticsService),
		System:   systemHandler,
	}

	// Set Gin mode based on environment
	if cfg.App.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	if len(cfg.HTTP.CORSAllowMethods) > 0 {
		corsConfig.AllowMethods = cfg.HTTP.CORSAllowMethods
	}
	if len(cfg.HTTP.CORSAllowHeaders) > 0 {
		corsConfig.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	}
	securityConfig := middleware.DefaultSecurityConfig()
	securityConfig.HSTSEnabled = cfg.App.IsProduction()

	engine, err := router.NewEngine(router.EngineConfig{
		Logger:         log,
		TrustedProxies: cfg.HTTP.TrustedProxies,
		Tracing:        middleware.TracingConfig{ServiceName: cfg.Telemetry.ServiceName, Enabled: cfg.Telemetry.Enabled},
		CORS:           corsConfig,
		Security:       securityConfig,
		Swagger:        middleware.SwaggerConfig{Enabled: cfg.Swagger.Enabled, AllowedIPs: cfg.Swagger.AllowedIPs},
		MaxBodySize:    cfg.HTTP.MaxBodySize,
		MaxUploadSize:  cfg.Storage.MaxImageSize,
		RequestTimeout: cfg.HTTP.RequestTimeout,
		Meter:          meter,
	}, systemHandler)
	if err != nil {
		log.Fatal("Failed to build HTTP engine", zap.Error(err))
	}

	idempotencyStore := cache.NewIdempotencyStore(cfg.Redis, log)

	guards := router.Guards{
		Session: middleware.SessionAuth(middleware.SessionConfig{
			JWTService: jwtService,
			Blacklist:  blacklist,
			CookieName: cfg.Cookie.SessionName,
			Logger:     log,
		}),
		Profiling:     middleware.Profiling(profiler.IsEnabled()),
		SessionCookie: cfg.Cookie.SessionName,
		Idempotency: middleware.Idempotency(middleware.IdempotencyConfig{
			Store:  idempotencyStore,
			TTL:    24 * time.Hour,
			Logger: log,
		}),
	}
	if cfg.HTTP.RateLimitEnabled {
		guards.RateLimit = middleware.RateLimit(middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow))
		log.Info("Rate limiting enabled",
			zap.Int("requests", cfg.HTTP.RateLimitRequests),
			zap.Duration("window", cfg.HTTP.RateLimitWindow),
		)
	}
	if cfg.HTTP.AuthRateLimitEnabled {
		guards.AuthRateLimit = middleware.AuthRateLimit(middleware.NewRateLimiter(cfg.HTTP.AuthRateLimitRequests, cfg.HTTP.AuthRateLimitWindow))
	}

	router.NewRouter(engine, router.WithAPIVersion("v1")).
		Register(router.Routes(handlers, guards)...).
		Setup()

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	if sweep != nil {
		if err := sweep.Stop(shutdownCtx); err != nil {
			log.Error("Error stopping batch sweep", zap.Error(err))
		}
	}
	if err := idempotencyStore.Close(); err != nil {
		log.Error("Error closing idempotency store", zap.Error(err))
	}
	if err := tracerProvider.Shutdown(shutdownCtx); err != nil {
		log.Error("Error shutting down tracer", zap.Error(err))
	}
	if err := meterProvider.Shutdown(shutdownCtx); err != nil {
		log.Error("Error shutting down meter", zap.Error(err))
	}
	if err := profiler.Stop(); err != nil {
		log.Error("Error stopping profiler", zap.Error(err))
	}
	if err := closeBlacklist(); err != nil {
		log.Error("Error closing Redis", zap.Error(err))
	}
	if err := db.Close(); err != nil {
		log.Error("Error closing database", zap.Error(err))
	}

	log.Info("Server exited gracefully")

	// Flushed last so shutdown records are exported
	if err := loggerProvider.Shutdown(context.Background()); err != nil {
		log.Error("Error shutting down log exporter", zap.Error(err))
	}
}
