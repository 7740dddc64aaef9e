package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/techiepookie/electronics-inventory-dashboard/internal/auth"
	"github.com/techiepookie/electronics-inventory-dashboard/internal/config"
	"github.com/techiepookie/electronics-inventory-dashboard/internal/database"
	"github.com/techiepookie/electronics-inventory-dashboard/internal/handlers"
	"github.com/techiepookie/electronics-inventory-dashboard/internal/repository"
	"github.com/techiepookie/electronics-inventory-dashboard/internal/seed"
	"github.com/techiepookie/electronics-inventory-dashboard/pkg/logger"
	"github.com/techiepookie/electronics-inventory-dashboard/pkg/middleware"

	_ "github.com/techiepookie/electronics-inventory-dashboard/docs" // Import docs for Swagger
)

// @title           Electronics Inventory Dashboard API
// @version         1.0
// @description     Single-user inventory service for hobby electronics components. CRUD, search, bulk import and per-category summaries over an embedded SQLite database.

// @contact.name   API Support

// @license.name  MIT

// @host      localhost:8080
// @BasePath  /api/v1

// @schemes   http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token. Example: "Bearer eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."
func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize logger
	appLogger := logger.New(cfg.Environment)
	defer appLogger.Sync()

	appLogger.Info("🚀 Starting Electronics Inventory Dashboard",
		zap.String("environment", cfg.Environment),
		zap.String("port", cfg.Port),
	)

	appLogger.Info("💾 SQLite Configuration",
		zap.String("path", cfg.SQLitePath),
		zap.String("note", "Single writer, WAL mode"),
	)

	appLogger.Info("🔐 JWT Configuration",
		zap.Int("secret_length", len(cfg.JWTSecret)),
		zap.Duration("session_duration", auth.SessionDuration),
	)

	if cfg.UsingDefaultCredentials() {
		appLogger.Warn("⚠️  Running with default credentials, set INVENTORY_USERNAME and INVENTORY_PASSWORD before exposing this service beyond localhost")
	}

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	router := gin.New()

	// CORS middleware (must be first to handle preflight requests)
	router.Use(middleware.CORSMiddleware())

	router.Use(middleware.RecoveryHandler(appLogger))
	router.Use(logger.GinMiddleware(appLogger))

	// Request ID middleware (must be early in the chain)
	router.Use(middleware.RequestIDMiddleware(appLogger))

	// Error handler middleware
	router.Use(middleware.ErrorHandler(appLogger))

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Initialize database
	appLogger.Info("🔧 Initializing SQLite database...")
	db, err := database.New(cfg.SQLitePath, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer db.Close()
	appLogger.Info("✅ Database initialized successfully")

	// Initialize repository and importer
	repo := repository.NewSQLiteInventoryRepository(db)
	importer := seed.NewImporter(repo, appLogger)

	// Initialize JWT manager
	appLogger.Info("🔧 Initializing JWT manager...")
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, appLogger)
	appLogger.Info("✅ JWT manager initialized successfully")

	// Initialize auth handler
	appLogger.Info("🔧 Initializing auth handler...")
	authHandler := auth.NewAuthHandler(jwtManager, cfg, appLogger)
	appLogger.Info("✅ Auth handler initialized successfully")

	// Initialize handlers
	appLogger.Info("🔧 Initializing handlers...")
	inventoryHandler := handlers.NewInventoryHandler(appLogger, repo, importer)
	appLogger.Info("✅ Handlers initialized successfully")

	// API routes
	v1 := router.Group("/api/v1")
	{
		// Health check endpoint (public)
		v1.GET("/health", healthCheck)

		// Auth endpoints (public)
		authRoutes := v1.Group("/auth")
		{
			authRoutes.POST("/login", authHandler.Login)
		}

		// Protected endpoints (require JWT authentication)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(jwtManager, appLogger))
		{
			inventory := protected.Group("/inventory")
			{
				inventory.POST("/items", inventoryHandler.CreateItem)
				inventory.GET("/items", inventoryHandler.ListItems)
				inventory.PUT("/items/:id", inventoryHandler.UpdateItem)
				inventory.GET("/summary", inventoryHandler.CategorySummary)
				inventory.GET("/stats", inventoryHandler.Stats)
				inventory.GET("/categories", inventoryHandler.Categories)
				inventory.POST("/import", inventoryHandler.RunImport)
			}
		}
	}

	// Start server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	// Start server in a goroutine
	go func() {
		appLogger.Info("🌐 Starting HTTP server",
			zap.String("address", ":"+cfg.Port),
			zap.String("swagger_url", "http://localhost:"+cfg.Port+"/swagger/index.html"),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	appLogger.Info("Server exited")
}

// healthCheck godoc
// @Summary      Health check endpoint
// @Description  Returns the service status and name.
// @Tags         health
// @Accept       json
// @Produce      json
// @Success      200  {object}  map[string]string  "Service operational"
// @Router       /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "electronics-inventory-dashboard",
	})
}
