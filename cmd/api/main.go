// @title           Goal Board API
// @version         1.0
// @description     협업 목표 보드 API
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8000
// @BasePath  /api/goals

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
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	_ "goal-board-api/docs" // Swagger docs import

	"goal-board-api/internal/cache"
	"goal-board-api/internal/config"
	"goal-board-api/internal/database"
	"goal-board-api/internal/job"
	"goal-board-api/internal/metrics"
	"goal-board-api/internal/router"
)

func main() {
	// .env is optional; real deployments inject the environment directly
	_ = godotenv.Load()

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

	logger.Info("Starting Goal Board Service",
		zap.String("port", cfg.Server.Port),
		zap.String("mode", cfg.Server.Mode),
		zap.String("base_path", cfg.Server.BasePath),
	)

	isolation, err := database.ParseIsolation(cfg.Database.Isolation)
	if err != nil {
		logger.Fatal("Invalid database isolation level", zap.Error(err))
	}

	db, err := database.New(database.Config{
		DSN:             cfg.Database.GetDSN(),
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	})
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := database.Close(db); err != nil {
			logger.Warn("Failed to close database", zap.Error(err))
		}
	}()
	logger.Info("Database connected successfully")

	if err := database.AutoMigrate(db, logger); err != nil {
		logger.Fatal("Failed to run database migrations", zap.Error(err))
	}

	// Initialize metrics on a private registry
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.NewWithRegistry(registry, logger)

	if err := database.RegisterMetricsCallbacks(db, m); err != nil {
		logger.Warn("Failed to register database metrics callbacks", zap.Error(err))
	}
	statsDone := database.StartDBStatsCollector(db, m, 15*time.Second)
	defer close(statsDone)
	logger.Info("Metrics initialized")

	// Redis is optional; without it board listings are not cached
	var boardCache cache.BoardListCache = cache.Noop{}
	var redisClient *redis.Client
	if cfg.Redis.Enabled() {
		client, err := database.NewRedis(cfg.Redis, logger)
		if err != nil {
			logger.Warn("Redis unavailable, board list cache disabled", zap.Error(err))
		} else {
			redisClient = client
			boardCache = cache.NewRedisBoardCache(client, cfg.Redis.CacheTTL, m, logger)
			defer client.Close()
		}
	}

	scheduler := job.NewScheduler(logger)
	collector := metrics.NewBusinessMetricsCollector(db, m, logger)
	if err := scheduler.Register("business-metrics", cfg.Metrics.Schedule, collector); err != nil {
		logger.Fatal("Failed to register business metrics job", zap.Error(err))
	}
	scheduler.RunNow()
	scheduler.Start()
	defer scheduler.Stop()

	// Setup router with all dependencies
	r := router.Setup(router.Config{
		DB:          db,
		Isolation:   isolation,
		Redis:       redisClient,
		BoardCache:  boardCache,
		Logger:      logger,
		JWTSecret:   cfg.JWT.Secret,
		BasePath:    cfg.Server.BasePath,
		CORSOrigins: cfg.CORS.AllowedOrigins,
		Metrics:     m,
		Gatherer:    registry,
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
		logger.Info("Goal Board Service started successfully",
			zap.String("address", srv.Addr),
			zap.String("swagger", fmt.Sprintf("http://localhost:%s%s/swagger/index.html", cfg.Server.Port, cfg.Server.BasePath)),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

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
