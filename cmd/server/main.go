// @title           Class Booking Backend API
// @version         1.0.0
// @description     Order-intake API for seasonal class/flower bookings. A public form submits orders against capacity-limited schedule slots; a password-gated admin surface manages orders and the form configuration.

// @host      localhost:8080
// @BasePath  /

package main

import (
	"log"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"class-booking-backend/docs"
	"class-booking-backend/internal/booking"
	"class-booking-backend/internal/config"
	"class-booking-backend/internal/database"
	"class-booking-backend/internal/handlers"
	"class-booking-backend/internal/middleware"
	"class-booking-backend/internal/notify"
	"class-booking-backend/internal/services"
	"class-booking-backend/internal/supabase"
)

func main() {
	// Optional .env for local development; real deployments use the environment.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Update swagger docs with the deployed base URL.
	if baseURL, err := url.Parse(cfg.BaseURL); err == nil && baseURL.Host != "" {
		docs.SwaggerInfo.Host = baseURL.Host
		if baseURL.Scheme == "https" {
			docs.SwaggerInfo.Schemes = []string{"https", "http"}
		} else {
			docs.SwaggerInfo.Schemes = []string{"http", "https"}
		}
	}

	dbClient, err := supabase.NewDatabaseClient(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to initialize database client: %v", err)
	}
	defer dbClient.Close()

	migrator, err := database.NewMigrator(cfg.DatabaseURL)
	if err != nil {
		log.Printf("Warning: Failed to initialize migrator: %v", err)
	} else {
		defer migrator.Close()
		if err := migrator.Run(); err != nil {
			log.Printf("Warning: Migration failed: %v", err)
		} else {
			log.Println("Migrations completed successfully")
		}
	}

	var storageClient *supabase.StorageClient
	if cfg.StorageEnabled() {
		storageClient, err = supabase.NewStorageClient(cfg.SupabaseURL, cfg.SupabaseServiceKey, cfg.SupabaseStorageBucket)
		if err != nil {
			log.Printf("Warning: Failed to initialize storage client: %v", err)
		}
	} else {
		log.Println("Supabase storage not configured, background image upload disabled")
	}

	notifier := notify.New(cfg)
	configService := services.NewFormConfigService(dbClient)
	validator := booking.NewValidator(dbClient)

	ordersHandler := handlers.NewOrdersHandler(dbClient, configService, validator, notifier)
	adminOrdersHandler := handlers.NewAdminOrdersHandler(dbClient)
	configHandler := handlers.NewConfigHandler(dbClient, configService, storageClient)
	authHandler := handlers.NewAuthHandler(cfg)

	router := gin.Default()

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", handlers.HealthHandler)

	// Public surface
	router.POST("/orders", ordersHandler.CreateOrder)
	router.GET("/config", configHandler.GetConfig)

	// Admin session
	router.POST("/admin/login", authHandler.Login)
	router.POST("/admin/logout", authHandler.Logout)

	// Admin surface
	adminAuth := middleware.AdminAuth(cfg)
	router.PUT("/config", adminAuth, configHandler.SaveConfig)

	admin := router.Group("/admin", adminAuth)
	admin.GET("/orders", adminOrdersHandler.ListOrders)
	admin.PATCH("/orders/:id", adminOrdersHandler.UpdateStatus)
	admin.DELETE("/orders/:id", adminOrdersHandler.DeleteOrder)
	admin.POST("/config/background", configHandler.UploadBackground)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
