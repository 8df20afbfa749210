// @title           Blog API
// @version         1.0
// @description     Personal blog backend: articles, moderated comments, reactions and users.

// @host      localhost:8080
// @BasePath  /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token.

package main

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/bdelucia/blog/internal/client"
	"github.com/bdelucia/blog/internal/config"
	"github.com/bdelucia/blog/internal/database"
	"github.com/bdelucia/blog/internal/job"
	"github.com/bdelucia/blog/internal/repository"
	"github.com/bdelucia/blog/internal/router"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg, err := config.Load(getEnv("CONFIG_PATH", "config.yaml"))
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := newLogger(cfg.Server.Env)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	logger.Info("Starting blog API",
		zap.Int("port", cfg.Server.Port),
		zap.String("env", cfg.Server.Env),
		zap.String("basePath", cfg.Server.BasePath))

	// Connect to PostgreSQL; keep the process alive and retry in the
	// background when the database is not up yet.
	db, err := database.New(cfg.Database, cfg.Server.Env)
	if err != nil {
		logger.Warn("Failed to connect to PostgreSQL on startup, will retry in background", zap.Error(err))
		database.NewAsync(cfg.Database, cfg.Server.Env, 5*time.Second)
	} else {
		logger.Info("PostgreSQL connected")
	}

	// Auth provider client; with no provider URL tokens are verified locally
	var authClient *client.AuthClient
	if cfg.Auth.ProviderURL != "" {
		authClient = client.NewAuthClient(cfg.Auth.ProviderURL, 10*time.Second, logger)
	}

	r := router.Setup(router.Config{
		DB:          db,
		Logger:      logger,
		JWTSecret:   cfg.Auth.SecretKey,
		BasePath:    cfg.Server.BasePath,
		CORSOrigins: splitOrigins(cfg.Server.CORSOrigins),
		AuthClient:  authClient,
	})

	// Scheduled purge of rejected/spam comments past retention
	cleanupJob := job.NewCleanupJob(
		repository.NewCommentRepository(db),
		cfg.Cleanup.RetentionDays,
		logger,
	)
	// Recover wraps each run so a job panic (e.g. firing before the
	// database reconnects) cannot take the process down
	c := cron.New(cron.WithChain(cron.Recover(cron.PrintfLogger(log.Default()))))
	if _, err := c.AddJob(cfg.Cleanup.Schedule, cleanupJob); err != nil {
		logger.Error("Failed to schedule cleanup job",
			zap.String("schedule", cfg.Cleanup.Schedule),
			zap.Error(err))
	} else {
		c.Start()
		defer c.Stop()
	}

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	logger.Info("Blog API started", zap.String("address", addr))

	if err := r.Run(addr); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}

func newLogger(env string) (*zap.Logger, error) {
	if env == "prod" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func splitOrigins(origins string) []string {
	parts := strings.Split(origins, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
