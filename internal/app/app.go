package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	blogHTTP "blog-backend/internal/controller/http"
	"blog-backend/internal/repo/persistent"
	"blog-backend/internal/usecase"
	"blog-backend/pkg/ai"
	"blog-backend/pkg/config"
	"blog-backend/pkg/jwt"
	"blog-backend/pkg/logger"
	"blog-backend/pkg/middleware"
	"blog-backend/pkg/queue"
	"blog-backend/pkg/s3"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

func Run(cfg *config.Config, log *logger.Logger, db *gorm.DB, s3Client *s3.Client, queueClient *queue.Client, redisClient *redis.Client, aiClient *ai.Client) {
	jwtService := jwt.NewService(cfg.JWTSecret)

	// Initialize repositories
	postRepo := persistent.NewPostRepository(db)
	commentRepo := persistent.NewCommentRepository(db)
	pollRepo := persistent.NewPollRepository(db)
	newsletterRepo := persistent.NewNewsletterRepository(db)
	pageRepo := persistent.NewPageRepository(db)

	// Initialize use cases
	var publisher usecase.EventPublisher
	if queueClient != nil {
		publisher = queueClient
	}
	postUseCase := usecase.NewPostUseCase(postRepo, aiClient, publisher, log)
	commentUseCase := usecase.NewCommentUseCase(commentRepo, postRepo)
	pollUseCase := usecase.NewPollUseCase(pollRepo)
	newsletterUseCase := usecase.NewNewsletterUseCase(newsletterRepo)
	pageUseCase := usecase.NewPageUseCase(pageRepo)

	// Initialize HTTP handlers
	authHandler := blogHTTP.NewAuthHandler(cfg, jwtService, log)
	postHandler := blogHTTP.NewPostHandler(postUseCase, log)
	commentHandler := blogHTTP.NewCommentHandler(commentUseCase, log)
	pollHandler := blogHTTP.NewPollHandler(pollUseCase, log)
	newsletterHandler := blogHTTP.NewNewsletterHandler(newsletterUseCase, log)
	pageHandler := blogHTTP.NewPageHandler(pageUseCase, log)

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

	// Public routes, rate-limited per client IP
	public := api.Group("")
	public.Use(middleware.RateLimitMiddleware(redisClient, 100, time.Minute))
	{
		public.POST("/auth/login", authHandler.Login)

		public.GET("/posts", postHandler.ListPosts)
		public.GET("/posts/search", postHandler.SearchPosts)
		public.GET("/posts/top", postHandler.GetTopPosts)
		public.GET("/posts/stats", postHandler.GetStatistics)
		public.GET("/posts/tag/:tag", postHandler.GetPostsByTag)
		public.GET("/posts/:id", postHandler.GetPost)

		public.GET("/posts/:id/comments", commentHandler.ListComments)
		public.POST("/posts/:id/comments", commentHandler.CreateComment)

		public.GET("/polls", pollHandler.ListPolls)
		public.GET("/polls/:id", pollHandler.GetPoll)
		public.POST("/polls/:id/vote", pollHandler.Vote)

		public.POST("/newsletter/subscribe", newsletterHandler.Subscribe)
		public.POST("/newsletter/unsubscribe", newsletterHandler.Unsubscribe)

		public.GET("/pages/:slug", pageHandler.GetPageBySlug)
	}

	// Admin routes behind JWT auth
	admin := api.Group("")
	admin.Use(middleware.AuthMiddleware(jwtService))
	{
		admin.POST("/posts", postHandler.CreatePost)
		admin.PUT("/posts/:id", postHandler.UpdatePost)
		admin.DELETE("/posts/:id", postHandler.DeletePost)
		admin.PATCH("/posts/:id/publish", postHandler.TogglePublish)
		admin.POST("/posts/generate", postHandler.GeneratePost)
		admin.POST("/posts/:id/images", postHandler.AddImage)
		admin.PATCH("/posts/:id/featured-image", postHandler.SetFeaturedImage)

		admin.PATCH("/comments/:id/approve", commentHandler.ApproveComment)
		admin.DELETE("/comments/:id", commentHandler.DeleteComment)

		admin.POST("/polls", pollHandler.CreatePoll)
		admin.DELETE("/polls/:id", pollHandler.DeletePoll)

		admin.GET("/newsletter/subscribers", newsletterHandler.ListSubscribers)

		admin.GET("/pages", pageHandler.ListPages)
		admin.POST("/pages", pageHandler.CreatePage)
		admin.PUT("/pages/:id", pageHandler.UpdatePage)
		admin.DELETE("/pages/:id", pageHandler.DeletePage)

		if s3Client != nil {
			uploadHandler := blogHTTP.NewUploadHandler(s3Client, cfg.MaxUploadSize, log)
			admin.POST("/upload/image", uploadHandler.UploadImage)
		}
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		log.Info("Blog backend starting on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down blog backend...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

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

	log.Info("Blog backend exited")
}
