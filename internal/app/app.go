package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	storyHTTP "timeshot/internal/controller/http"
	"timeshot/internal/repo/persistent"
	"timeshot/internal/usecase"
	"timeshot/pkg/config"
	"timeshot/pkg/jwt"
	"timeshot/pkg/logger"
	"timeshot/pkg/middleware"
	"timeshot/pkg/queue"
	"timeshot/pkg/s3"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "timeshot/docs" // Swagger docs
)

func Run(cfg *config.Config, log *logger.Logger, db *gorm.DB, s3Client *s3.Client, queueClient *queue.Client, redisClient *redis.Client) {
	jwtService := jwt.NewService(cfg.JWTSecret)

	// Initialize repositories
	userRepo := persistent.NewUserRepository(db)
	storyRepo := persistent.NewStoryRepository(db)
	voteRepo := persistent.NewVoteRepository(db)
	leaderboardRepo := persistent.NewLeaderboardRepository(db)

	// Initialize use cases
	authUseCase := usecase.NewAuthUseCase(userRepo, jwtService, log)
	storyUseCase := usecase.NewStoryUseCase(storyRepo, s3Client, log)
	voteUseCase := usecase.NewVoteUseCase(voteRepo, storyRepo, redisClient, log)
	leaderboardUseCase := usecase.NewLeaderboardUseCase(leaderboardRepo, storyRepo, log)
	moderationUseCase := usecase.NewModerationUseCase(storyRepo, log)

	// A typed nil *queue.Client must not end up inside the interface, the
	// use case checks for nil to decide whether delivery is available.
	var feedbackQueue usecase.FeedbackQueue
	if queueClient != nil {
		feedbackQueue = queueClient
	}
	feedbackUseCase := usecase.NewFeedbackUseCase(feedbackQueue, log)

	// Initialize HTTP handlers
	authHandler := storyHTTP.NewAuthHandler(authUseCase, log)
	storyHandler := storyHTTP.NewStoryHandler(storyUseCase, voteUseCase, log)
	voteHandler := storyHTTP.NewVoteHandler(voteUseCase, log)
	leaderboardHandler := storyHTTP.NewLeaderboardHandler(leaderboardUseCase, log)
	moderationHandler := storyHTTP.NewModerationHandler(moderationUseCase, voteUseCase, log)
	feedbackHandler := storyHTTP.NewFeedbackHandler(feedbackUseCase, log)

	// Setup router
	r := gin.Default()

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000", "*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")
	// Identity first so the rate limiter keys on the user, not the client IP
	api.Use(middleware.OptionalAuthMiddleware(jwtService))
	api.Use(middleware.RateLimitMiddleware(redisClient, 100, time.Minute))

	// Public routes
	{
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)
		api.GET("/stories", storyHandler.ListStories)
		api.GET("/stories/:id", storyHandler.GetStory)
		api.GET("/stories/:id/votes", voteHandler.GetVoteCount)
		api.GET("/leaderboard", leaderboardHandler.ListWinners)
		api.POST("/feedback", feedbackHandler.SendFeedback)
	}

	// Authenticated routes
	authed := api.Group("")
	authed.Use(middleware.AuthMiddleware(jwtService))
	{
		authed.GET("/auth/me", authHandler.Me)
		authed.POST("/stories", storyHandler.CreateStory)
		authed.PUT("/stories/:id", storyHandler.UpdateStory)
		authed.GET("/stories/mine", storyHandler.ListMyStories)
		authed.POST("/stories/:id/vote", voteHandler.Vote)
	}

	// Admin routes
	admin := api.Group("/admin")
	admin.Use(middleware.AuthMiddleware(jwtService))
	admin.Use(middleware.AdminMiddleware())
	{
		admin.GET("/stories", moderationHandler.ListPending)
		admin.PATCH("/stories/:id", moderationHandler.SaveStory)
		admin.POST("/stories/:id/approve", moderationHandler.ApproveStory)
		admin.POST("/stories/:id/reject", moderationHandler.RejectStory)
		admin.POST("/leaderboard", leaderboardHandler.CreateEntry)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		log.Info("Timeshot API starting on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Close database connection
	sqlDB, err := db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Error("Error closing database: %v", err)
		}
	}

	// Close Redis connection
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Error closing Redis: %v", err)
		}
	}

	// Close RabbitMQ connection
	if queueClient != nil {
		queueClient.Close()
	}

	// Shutdown server
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
		panic(err)
	}

	log.Info("Timeshot API exited")
}
