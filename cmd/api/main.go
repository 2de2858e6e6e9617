// @title           Consensus Service API
// @version         1.0
// @description     Round based collaborative consensus forms: join codes, rounds, responses and published syntheses.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8000
// @BasePath  /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	_ "consensus-api/docs" // Swagger docs import

	"consensus-api/internal/client"
	"consensus-api/internal/config"
	"consensus-api/internal/database"
	"consensus-api/internal/job"
	"consensus-api/internal/metrics"
	"consensus-api/internal/notify"
	"consensus-api/internal/router"
	"consensus-api/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, err := initLogger(cfg.Logger.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// Set Gin mode
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	if cfg.JWT.Secret == "" {
		logger.Warn("JWT secret is empty, every authenticated request will be rejected")
	}

	logger.Info("Starting Consensus Service",
		zap.String("port", cfg.Server.Port),
		zap.String("mode", cfg.Server.Mode),
		zap.String("base_path", cfg.Server.BasePath),
		zap.String("db_driver", cfg.Database.Driver),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize database
	db, err := database.NewWithRetry(ctx, database.Config{
		Driver:          cfg.Database.Driver,
		DSN:             cfg.Database.GetDSN(),
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}, 10, 5*time.Second, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer database.Close(db)
	logger.Info("Database connected successfully")

	if err := database.SafeAutoMigrateWithRetry(db, logger, 3); err != nil {
		logger.Fatal("Failed to run database migrations", zap.Error(err))
	}

	// Initialize metrics
	m := metrics.NewWithLogger(logger)
	if err := database.RegisterMetricsCallbacks(db, m); err != nil {
		logger.Warn("Failed to register database metrics callbacks", zap.Error(err))
	}
	dbStatsDone := database.StartDBStatsCollector(db, m, 15*time.Second)
	defer close(dbStatsDone)

	businessCollector := metrics.NewBusinessMetricsCollector(db, m, logger, time.Minute)
	businessCollector.Start()
	defer businessCollector.Stop()
	logger.Info("Metrics initialized")

	// Redis is optional; without it notifications stay in this process
	redisClient, err := database.NewRedis(ctx, cfg.Redis, logger)
	if err != nil {
		logger.Warn("Failed to connect to redis, notifications stay local", zap.Error(err))
		redisClient = nil
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	hub := notify.NewHub(logger, m, cfg.Notify.SendBufferLen)
	go hub.Run(ctx)

	var publisher notify.Publisher = hub
	if redisClient != nil {
		relay := notify.NewRedisRelay(redisClient, cfg.Notify.Channel, hub, logger, m)
		go relay.Serve(ctx, time.Second)
		publisher = relay
		logger.Info("Notification relay started", zap.String("channel", cfg.Notify.Channel))
	}

	// Initialize S3 client
	var store client.ObjectStore
	if cfg.S3.Bucket != "" {
		s3Client, err := client.NewS3Client(ctx, &cfg.S3)
		if err != nil {
			logger.Warn("Failed to initialize S3 client, exports are returned inline", zap.Error(err))
		} else {
			store = s3Client
			logger.Info("S3 client initialized",
				zap.String("bucket", cfg.S3.Bucket),
				zap.String("region", cfg.S3.Region),
			)
		}
	} else {
		logger.Info("S3 bucket not configured, exports are returned inline")
	}

	services := service.NewServices(service.Dependencies{
		DB:         db,
		Publisher:  publisher,
		Generator:  client.NewTextGenerator(cfg.Generation, logger, m),
		Generation: cfg.Generation,
		Store:      store,
		Metrics:    m,
		Logger:     logger,
	})

	// Close stray active rounds left behind by older deployments before serving
	repairJob := job.NewRoundRepairJob(services.Rounds, logger)
	repairJob.RunOnce(ctx)
	if err := repairJob.Start(cfg.Jobs.RoundRepairSchedule); err != nil {
		logger.Error("Failed to schedule round repair job", zap.Error(err))
	}
	defer repairJob.Stop()

	// Setup router with all dependencies
	r := router.Setup(router.Config{
		DB:          db,
		Redis:       redisClient,
		Logger:      logger,
		Metrics:     m,
		Services:    services,
		Hub:         hub,
		JWTSecret:   cfg.JWT.Secret,
		BasePath:    cfg.Server.BasePath,
		CORSOrigins: cfg.CORS.AllowedOrigins,
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Consensus Service started successfully",
			zap.String("address", srv.Addr),
			zap.String("swagger", fmt.Sprintf("http://localhost:%s%s/swagger/index.html", cfg.Server.Port, cfg.Server.BasePath)),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	<-ctx.Done()
	logger.Info("Shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}
	hub.Stop()

	logger.Info("Server exited gracefully")
}

// initLogger initializes the zap logger with the specified level
func initLogger(level string) (*zap.Logger, error) {
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      zapLevel == zapcore.DebugLevel,
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	return config.Build()
}
