package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"fleetrent/internal/config"
	"fleetrent/internal/handlers"
	"fleetrent/internal/middleware"
	"fleetrent/internal/repositories/mongodb"
	"fleetrent/internal/services"
	"fleetrent/pkg/cache"
	"fleetrent/pkg/database"
	"fleetrent/pkg/logger"
	"fleetrent/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger, err := logger.NewLogger(&logger.Config{
		Level:  cfg.App.LogLevel,
		Format: cfg.App.LogFormat,
		Output: "stdout",
	})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	// Connect to MongoDB
	db, err := database.NewMongoDB(&database.DatabaseConfig{
		URI:            cfg.Database.URI,
		Database:       cfg.Database.Database,
		MaxPoolSize:    cfg.Database.MaxPoolSize,
		MinPoolSize:    cfg.Database.MinPoolSize,
		ConnectTimeout: cfg.Database.ConnectTimeout,
		SocketTimeout:  cfg.Database.SocketTimeout,
	})
	if err != nil {
		appLogger.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer db.Close()

	if err := db.EnsureIndexes(context.Background()); err != nil {
		appLogger.Fatalf("Failed to create indexes: %v", err)
	}

	// Redis cache is optional: without it the repositories hit Mongo directly.
	var cacheService services.CacheService
	redisCache, err := cache.NewRedisCache(&cache.RedisConfig{
		Host:         cfg.Redis.Host,
		Port:         cfg.Redis.Port,
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		PoolSize:     cfg.Redis.PoolSize,
		MinIdleConns: cfg.Redis.MinIdleConns,
		DialTimeout:  cfg.Redis.DialTimeout,
		ReadTimeout:  cfg.Redis.ReadTimeout,
		WriteTimeout: cfg.Redis.WriteTimeout,
	})
	if err != nil {
		appLogger.WithError(err).Warn("Redis unavailable, running without cache")
	} else {
		cacheService = services.NewCacheService(redisCache)
		defer redisCache.Close()
	}

	// Initialize repositories
	vehicleRepo := mongodb.NewVehicleRepository(db.Database, cacheService)

	// Initialize services
	vehicleService := services.NewVehicleService(vehicleRepo, appLogger)
	bookingService := services.NewBookingService(vehicleRepo, appLogger)

	// Initialize handlers
	vehicleHandler := handlers.NewVehicleHandler(vehicleService)
	bookingHandler := handlers.NewBookingHandler(bookingService)
	authHandler := handlers.NewAuthHandler(cfg.Security)

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize Gin router
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.RequestLoggingMiddleware(appLogger))

	// API routes
	v1 := router.Group("/api/v1")
	{
		routes.SetupAuthRoutes(v1, authHandler)
		routes.SetupVehicleRoutes(v1, vehicleHandler, cfg.Security.JWTSecret)
		routes.SetupBookingRoutes(v1, bookingHandler)
	}

	// Health check
	router.GET("/health", func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": cfg.App.Version,
		})
	})

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	appLogger.WithField("addr", addr).Info("starting server")
	if err := http.ListenAndServe(addr, router); err != nil {
		appLogger.Fatalf("Server exited: %v", err)
	}
}
