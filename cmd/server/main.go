package main

import (
	"context"                          // context package is needed for Redis operations
	"genesis_city/internal/api"        // Custom package for API handlers
	"genesis_city/internal/config"     // Custom package for configuration
	"genesis_city/internal/middleware" // Custom package for middleware
	"log"                              // log package is needed for logging

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
	"gorm.io/driver/mysql"         // MySQL driver for GORM
	"gorm.io/gorm"                 // GORM ORM library
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Connect to the database. TranslateError maps driver constraint
	// rejections onto the GORM sentinels the ledger classifies.
	db, err := gorm.Open(mysql.Open(cfg.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err) // Fatal error if DB connection fails
	}

	// Setup Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr, // Redis server address
		Password: cfg.RedisPass, // Redis password
		DB:       cfg.RedisDB,   // Redis database number
	})

	// Test Redis connection
	_, err = redisClient.Ping(context.Background()).Result()
	if err != nil {
		logrus.Fatalf("failed to connect to Redis: %v", err)
	}

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup Gin
	r := gin.Default() // Gin router instance

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	// Auth routes
	r.POST("/user", api.RegisterHandler(db))            // Registration endpoint
	r.GET("/user", api.LoginHandler(db, cfg.JWTSecret)) // Login endpoint

	// injectRedis makes the Redis client available to write handlers for
	// cache invalidation
	injectRedis := func(c *gin.Context) {
		c.Set("redisClient", redisClient)
		c.Next()
	}

	// Report routes (protected by JWT)
	reportGroup := r.Group("/reports")
	reportGroup.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret))
	reportGroup.GET("/proposals", api.ProposalsReportHandler(db, redisClient))   // DAO proposals by creator
	reportGroup.GET("/businesses", api.BusinessesReportHandler(db, redisClient)) // Businesses after a date
	reportGroup.GET("/land-sales", api.LandSalesReportHandler(db, redisClient))  // Land sales aggregate
	reportGroup.GET("/events", api.EventsReportHandler(db, redisClient))         // Events by keyword
	reportGroup.GET("/influence", api.InfluenceReportHandler(db, redisClient))   // Voter influence ranking
	reportGroup.GET("/summary", api.SummaryReportHandler(db, redisClient))       // Headline entity counts

	// Browse routes (protected by JWT)
	browseGroup := r.Group("/browse")
	browseGroup.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret))
	browseGroup.GET("/users", api.ListUsersHandler(db, redisClient))   // Paginated user listing
	browseGroup.GET("/assets", api.ListAssetsHandler(db, redisClient)) // Paginated asset listing

	// Transactional operation routes (protected by JWT)
	opsGroup := r.Group("/ops")
	opsGroup.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret), injectRedis)
	opsGroup.POST("/business", api.RegisterBusinessHandler(db))          // Register a business
	opsGroup.POST("/sale", api.RecordSaleHandler(db))                    // Record an asset sale
	opsGroup.PUT("/events/:id/schedule", api.RescheduleEventHandler(db)) // Reschedule an event

	// Admin routes (protected, admin only)
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret), middleware.AdminOnlyMiddleware(db), injectRedis)
	adminGroup.DELETE("/users/:wallet", api.DeleteUserHandler(db)) // Cascade-delete a user

	log.Println("Server running on " + cfg.AppPort) // Log server start
	r.Run(":" + cfg.AppPort)                        // Start the server on port cfg.AppPort
}
