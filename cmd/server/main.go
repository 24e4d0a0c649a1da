package main

import (
	"blog-backend/internal/app"
	"blog-backend/pkg/ai"
	"blog-backend/pkg/cache"
	"blog-backend/pkg/config"
	"blog-backend/pkg/database"
	"blog-backend/pkg/logger"
	"blog-backend/pkg/queue"
	"blog-backend/pkg/s3"
)

// @title           Blog Backend API
// @version         1.0
// @description     Multilingual blog backend: posts, tags, comments, polls, newsletter, pages and AI-assisted content generation.

// @host      localhost:8000
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	if cfg.JWTSecret == "your-secret-key-change-in-production" || cfg.JWTSecret == "" {
		panic("JWT_SECRET must be set in environment variables")
	}

	log := logger.New()

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	// Migrations are handled by goose - see cmd/migrate/main.go

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("Failed to connect to redis: %v", err)
		panic(err)
	}

	// Object storage and the message broker are optional: the API runs
	// without uploads and publish events when they are unreachable.
	s3Client, err := s3.NewClient(cfg)
	if err != nil {
		log.Warn("S3 unavailable, image uploads disabled: %v", err)
		s3Client = nil
	}

	queueClient, err := queue.NewRabbitMQClient(cfg, log)
	if err != nil {
		log.Warn("RabbitMQ unavailable, publish events disabled: %v", err)
		queueClient = nil
	}

	aiClient := ai.NewClient(cfg)

	app.Run(cfg, log, db, s3Client, queueClient, redisClient, aiClient)
}
