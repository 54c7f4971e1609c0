// cmd/server/main.go
package main

import (
	"fmt"

	_ "github.com/choimj77/team-todo-api/docs" // Required for Swagger
	"github.com/choimj77/team-todo-api/internal/api"
	"github.com/choimj77/team-todo-api/internal/config"
	"github.com/choimj77/team-todo-api/internal/ratelimit"
	"github.com/choimj77/team-todo-api/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

const migrationsPath = "migrations"

// @title           Team Todo API
// @version         1.0
// @description     API for join-code scoped team todo lists

// @BasePath  /
func main() {

	gin.SetMode(gin.ReleaseMode)

	// Load configuration from .env
	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found, using system environment variables")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Create database configuration
	dbConfig := storage.Config{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.DBName,
	}

	// Create database if it doesn't exist
	rootDb, err := storage.NewDB(storage.Config{
		Host:     dbConfig.Host,
		Port:     dbConfig.Port,
		User:     dbConfig.User,
		Password: dbConfig.Password,
		DBName:   "",
	})
	if err != nil {
		log.Fatalf("Failed to connect to MySQL: %v", err)
	}

	_, err = rootDb.Exec("CREATE DATABASE IF NOT EXISTS " + dbConfig.DBName)
	if err != nil {
		log.Fatalf("Failed to create database: %v", err)
	}
	rootDb.Close()

	// Connect to the application database
	db, err := storage.NewDB(dbConfig)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	if err := storage.RunMigrations(db, migrationsPath); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Rate limiting is optional; without redis the API runs unguarded.
	var rateLimiter *ratelimit.RateLimiter
	if cfg.Redis.URL != "" {
		rateLimiter, err = ratelimit.NewRateLimiter(cfg.Redis.URL)
		if err != nil {
			log.Fatalf("Failed to initialize rate limiter: %v", err)
		}
		defer rateLimiter.Close()
	} else {
		log.Warn("REDIS_URL not set, rate limiting disabled")
	}

	// Set up and start the server
	router := api.SetupRouter(db, rateLimiter)

	serverAddr := fmt.Sprintf(":%s", cfg.Server.Port)
	if cfg.Env == "development" {
		log.Infof("Server starting on http://localhost%s", serverAddr)
		log.Infof("Swagger UI available at http://localhost%s/swagger/index.html", serverAddr)
	}

	if err := router.Run(serverAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
