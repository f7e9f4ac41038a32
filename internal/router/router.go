package router

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"goal-board-api/internal/cache"
	"goal-board-api/internal/database"
	"goal-board-api/internal/handler"
	"goal-board-api/internal/lifecycle"
	"goal-board-api/internal/metrics"
	"goal-board-api/internal/middleware"
	"goal-board-api/internal/repository"
	"goal-board-api/internal/service"
)

const serviceName = "goal-board-service"

// Config holds router configuration
type Config struct {
	DB          *gorm.DB
	Isolation   sql.IsolationLevel
	Redis       *redis.Client
	BoardCache  cache.BoardListCache
	Logger      *zap.Logger
	JWTSecret   string
	BasePath    string
	CORSOrigins []string
	Metrics     *metrics.Metrics
	// Gatherer backs /metrics. Defaults to the global registry.
	Gatherer prometheus.Gatherer
}

// Setup sets up the router with all routes
func Setup(cfg Config) *gin.Engine {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.Gatherer == nil {
		cfg.Gatherer = prometheus.DefaultGatherer
	}

	r := gin.New()

	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.Logger(cfg.Logger))
	r.Use(middleware.CORS(cfg.CORSOrigins))
	if cfg.Metrics != nil {
		r.Use(middleware.Metrics(cfg.Metrics))
	}

	metricsHandler := gin.WrapH(promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{}))
	r.GET("/metrics", metricsHandler)
	r.GET("/health", health)
	r.GET("/ready", ready(cfg))

	// Initialize repositories
	boardRepo := repository.NewBoardRepository(cfg.DB)
	participantRepo := repository.NewParticipantRepository(cfg.DB)
	categoryRepo := repository.NewCategoryRepository(cfg.DB)
	goalRepo := repository.NewGoalRepository(cfg.DB)
	commentRepo := repository.NewCommentRepository(cfg.DB)

	// Initialize services
	engine := lifecycle.NewEngine(cfg.DB, cfg.Isolation, cfg.Logger)
	boardService := service.NewBoardService(cfg.DB, cfg.Isolation, boardRepo, participantRepo, engine, cfg.BoardCache, cfg.Metrics, cfg.Logger)
	participantService := service.NewParticipantService(participantRepo, boardRepo, cfg.BoardCache, cfg.Metrics, cfg.Logger)
	categoryService := service.NewCategoryService(categoryRepo, boardRepo, participantRepo, engine, cfg.Metrics, cfg.Logger)
	goalService := service.NewGoalService(goalRepo, categoryRepo, participantRepo, engine, cfg.Metrics, cfg.Logger)
	commentService := service.NewCommentService(commentRepo, goalRepo, participantRepo, cfg.Metrics, cfg.Logger)

	// Initialize handlers
	boardHandler := handler.NewBoardHandler(boardService, cfg.Logger)
	participantHandler := handler.NewParticipantHandler(participantService, cfg.Logger)
	categoryHandler := handler.NewCategoryHandler(categoryService, cfg.Logger)
	goalHandler := handler.NewGoalHandler(goalService, cfg.Logger)
	commentHandler := handler.NewCommentHandler(commentService, cfg.Logger)

	api := r.Group(cfg.BasePath)
	if cfg.BasePath != "" && cfg.BasePath != "/" {
		api.GET("/metrics", metricsHandler)
		api.GET("/health", health)
		api.GET("/ready", ready(cfg))
	}
	api.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	protected := api.Group("")
	protected.Use(middleware.Auth(cfg.JWTSecret))
	{
		boards := protected.Group("/boards")
		{
			boards.POST("", boardHandler.CreateBoard)
			boards.GET("", boardHandler.ListBoards)
			boards.GET("/:boardId", boardHandler.GetBoard)
			boards.PATCH("/:boardId", boardHandler.UpdateBoard)
			boards.DELETE("/:boardId", boardHandler.DeleteBoard)

			boards.GET("/:boardId/participants", participantHandler.GetParticipants)
			boards.POST("/:boardId/participants", participantHandler.AddParticipant)
			boards.PATCH("/:boardId/participants/:userId", participantHandler.UpdateParticipant)
			boards.DELETE("/:boardId/participants/:userId", participantHandler.RemoveParticipant)
		}

		categories := protected.Group("/categories")
		{
			categories.POST("", categoryHandler.CreateCategory)
			categories.GET("", categoryHandler.ListCategories)
			categories.GET("/:categoryId", categoryHandler.GetCategory)
			categories.PATCH("/:categoryId", categoryHandler.UpdateCategory)
			categories.DELETE("/:categoryId", categoryHandler.DeleteCategory)
		}

		goals := protected.Group("/goals")
		{
			goals.POST("", goalHandler.CreateGoal)
			goals.GET("", goalHandler.ListGoals)
			goals.GET("/:goalId", goalHandler.GetGoal)
			goals.PATCH("/:goalId", goalHandler.UpdateGoal)
			goals.DELETE("/:goalId", goalHandler.DeleteGoal)
		}

		comments := protected.Group("/comments")
		{
			comments.POST("", commentHandler.CreateComment)
			comments.GET("", commentHandler.ListComments)
			comments.GET("/:commentId", commentHandler.GetComment)
			comments.PATCH("/:commentId", commentHandler.UpdateComment)
			comments.DELETE("/:commentId", commentHandler.DeleteComment)
		}
	}

	return r
}

func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": serviceName})
}

// ready reports whether the database and, when configured, Redis answer a ping
func ready(cfg Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if cfg.DB == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready", "service": serviceName, "reason": "database"})
			return
		}
		if err := database.Ping(ctx, cfg.DB); err != nil {
			cfg.Logger.Warn("Readiness check failed", zap.String("dependency", "database"), zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready", "service": serviceName, "reason": "database"})
			return
		}
		if cfg.Redis != nil {
			if err := cfg.Redis.Ping(ctx).Err(); err != nil {
				cfg.Logger.Warn("Readiness check failed", zap.String("dependency", "redis"), zap.Error(err))
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready", "service": serviceName, "reason": "redis"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready", "service": serviceName})
	}
}
