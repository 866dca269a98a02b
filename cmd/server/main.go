// @title FreshTrack Admin API
// @version 1.0
// @description Dashboard and catalog backend for per-user produce-scan data
// @license.name MIT
// @license.url https://opensource.org/licenses/MIT
// @host localhost:8080
// @BasePath /api

package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"freshtrack-be/config"
	"freshtrack-be/internal/database"
	"freshtrack-be/internal/handlers"
	"freshtrack-be/internal/middleware"
	"freshtrack-be/internal/repository"
	"freshtrack-be/internal/services"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var availableEndpoints = []string{
	"GET /api/health",
	"GET /api/dashboard/stats",
	"GET /api/dashboard/snapshots",
	"GET /api/users/all",
	"GET /api/users/:userId/shelf",
	"GET /api/users/:userId/history",
	"DELETE /api/users/delete/:userId",
	"GET /api/scans/all",
	"GET /api/scans/search",
	"GET /api/debug/database",
}

func main() {
	// Load configuration
	cfg := config.Load()

	// Connect to MongoDB
	mongodb, err := database.NewMongoDB(cfg.MongoDBURI, cfg.MongoDBDatabase)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongodb.Disconnect()

	// Initialize repositories
	userRepo := repository.NewUserRepository(mongodb.Database)
	scanRepo := repository.NewScanRepository(mongodb.Database)
	snapshotRepo := repository.NewSnapshotRepository(mongodb.Database)

	// Initialize services
	var identity services.IdentityProvider = services.NoopIdentityProvider{}
	if cfg.IdentityAPIKey != "" {
		provider, err := services.NewGoogleIdentityProvider(context.Background(), cfg.IdentityAPIKey)
		if err != nil {
			log.Fatal("Failed to create identity provider:", err)
		}
		identity = provider
	}

	dashboardService := services.NewDashboardService(userRepo, scanRepo)
	catalogService := services.NewCatalogService(userRepo, scanRepo, identity)

	// Initialize handlers
	dashboardHandler := handlers.NewDashboardHandler(dashboardService, snapshotRepo)
	userHandler := handlers.NewUserHandler(catalogService)
	scanHandler := handlers.NewScanHandler(catalogService)
	debugHandler := handlers.NewDebugHandler(mongodb, userRepo, scanRepo)

	// Initialize Gin
	r := gin.Default()

	// Apply CORS middleware
	r.Use(middleware.CORS(cfg))

	api := r.Group("/api")
	{
		// Health check
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"status":    "ok",
				"timestamp": time.Now().Format(time.RFC3339),
				"server":    cfg.ServerName,
				"version":   cfg.Version,
			})
		})

		dashboard := api.Group("/dashboard")
		{
			dashboard.GET("/stats", dashboardHandler.GetStats)
			dashboard.GET("/snapshots", dashboardHandler.GetSnapshots)
		}

		users := api.Group("/users")
		{
			users.GET("/all", userHandler.GetAllUsers)
			users.GET("/:userId/shelf", userHandler.GetUserShelf)
			users.GET("/:userId/history", userHandler.GetUserHistory)
			users.DELETE("/delete/:userId", userHandler.DeleteUser)
		}

		scans := api.Group("/scans")
		{
			scans.GET("/all", scanHandler.GetAllScans)
			scans.GET("/search", scanHandler.SearchScans)
		}

		api.GET("/debug/database", debugHandler.GetDatabase)
	}

	// Swagger route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"success":            false,
			"error":              "Endpoint not found",
			"availableEndpoints": availableEndpoints,
		})
	})

	// Start periodic dashboard snapshots
	if cfg.SnapshotSchedule != "" {
		scheduler, err := services.StartSnapshotWorker(context.Background(), cfg.SnapshotSchedule, dashboardService, snapshotRepo)
		if err != nil {
			log.Fatal("Failed to start snapshot worker:", err)
		}
		defer scheduler.Stop()
	}

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	log.Printf("Connected to MongoDB: %s", cfg.MongoDBDatabase)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
