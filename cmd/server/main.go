package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"gmbtravels/internal/config"
	"gmbtravels/internal/handlers"
	"gmbtravels/internal/middleware"
	"gmbtravels/internal/repositories/mongodb"
	"gmbtravels/internal/services"
	"gmbtravels/pkg/ai"
	"gmbtravels/pkg/database"
	"gmbtravels/pkg/logger"
	"gmbtravels/pkg/storage"
	"gmbtravels/pkg/whatsapp"
	"gmbtravels/routes"
)

func main() {
	// A missing .env is fine; the environment may be set by the host.
	_ = godotenv.Load()

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
	defer func() {
		if err := db.Close(); err != nil {
			appLogger.WithError(err).Error("failed to close database connection")
		}
	}()

	startupCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.EnsureIndexes(startupCtx); err != nil {
		appLogger.WithError(err).Warn("failed to ensure indexes")
	}
	if err := db.SeedDefaults(startupCtx, cfg.Security.BcryptCost); err != nil {
		appLogger.Fatalf("Failed to seed defaults: %v", err)
	}

	store, err := newStorageProvider(cfg.Storage)
	if err != nil {
		appLogger.Fatalf("Failed to initialize storage: %v", err)
	}

	aiClient := ai.NewClient(cfg.AI.APIKey, cfg.AI.BaseURL, cfg.AI.Model, cfg.AI.Timeout)
	sender := whatsapp.NewTwilioSender(cfg.WhatsApp.AccountSID, cfg.WhatsApp.AuthToken, cfg.WhatsApp.FromNumber)

	// Repositories
	adminRepo := mongodb.NewAdminRepository(db.Database)
	teamRepo := mongodb.NewTeamMemberRepository(db.Database)
	packageRepo := mongodb.NewPackageRepository(db.Database)
	bookingRepo := mongodb.NewBookingRepository(db.Database)
	cabBookingRepo := mongodb.NewCabBookingRepository(db.Database)
	testimonialRepo := mongodb.NewTestimonialRepository(db.Database)
	contactRepo := mongodb.NewContactRepository(db.Database)
	galleryRepo := mongodb.NewGalleryRepository(db.Database)
	vehicleRepo := mongodb.NewVehicleRepository(db.Database)
	popupRepo := mongodb.NewPopupRepository(db.Database)
	siteSettingsRepo := mongodb.NewSiteSettingsRepository(db.Database)
	generationSettingsRepo := mongodb.NewBlogGenerationSettingsRepository(db.Database)
	clientRepo := mongodb.NewClientRepository(db.Database)
	blogRepo := mongodb.NewBlogRepository(db.Database)
	whatsAppRepo := mongodb.NewWhatsAppRepository(db.Database)

	// Services
	authService := services.NewAuthService(adminRepo, teamRepo, cfg.Security, appLogger)
	aiContentService := services.NewAIContentService(aiClient, appLogger)
	blogService := services.NewBlogService(blogRepo, aiContentService, appLogger)
	pdfService := services.NewPDFService(store, cfg.Upload.PDFSubdir, appLogger)
	whatsAppService := services.NewWhatsAppService(whatsAppRepo, clientRepo, sender, appLogger)

	h := &routes.Handlers{
		Auth:        handlers.NewAuthHandler(authService),
		Package:     handlers.NewPackageHandler(packageRepo, pdfService),
		Booking:     handlers.NewBookingHandler(bookingRepo),
		CabBooking:  handlers.NewCabBookingHandler(cabBookingRepo),
		Testimonial: handlers.NewTestimonialHandler(testimonialRepo),
		Contact:     handlers.NewContactHandler(contactRepo),
		Gallery:     handlers.NewGalleryHandler(galleryRepo, store, cfg.Upload),
		Vehicle:     handlers.NewVehicleHandler(vehicleRepo),
		Popup:       handlers.NewPopupHandler(popupRepo),
		Settings:    handlers.NewSettingsHandler(siteSettingsRepo),
		Team:        handlers.NewTeamHandler(teamRepo, cfg.Security),
		Client:      handlers.NewClientHandler(clientRepo),
		Blog:        handlers.NewBlogHandler(blogService, aiContentService, generationSettingsRepo),
		WhatsApp:    handlers.NewWhatsAppHandler(whatsAppService, whatsAppRepo),
		Stats: handlers.NewStatsHandler(
			packageRepo,
			bookingRepo,
			cabBookingRepo,
			contactRepo,
			testimonialRepo,
			clientRepo,
			blogRepo,
		),
	}

	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware(appLogger))
	router.Use(middleware.CORSMiddleware(cfg.Security.CORSAllowedOrigins))

	// Locally stored uploads (images, brochures) are served directly.
	if cfg.Storage.Provider == "local" {
		router.Static(cfg.Storage.Local.BaseURL, cfg.Storage.Local.BasePath)
	}

	routes.SetupRoutes(router, h, cfg.Security)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		appLogger.WithField("addr", server.Addr).Info("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatalf("Server failed: %v", err)
		}
	}()

	<-ctx.Done()
	appLogger.Info("shutdown signal received")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.WithError(err).Error("graceful shutdown failed")
	}
}

func newStorageProvider(cfg *config.StorageConfig) (storage.Provider, error) {
	switch cfg.Provider {
	case "aws_s3":
		return storage.NewAWSS3Storage(cfg.AWS.Region, cfg.AWS.Bucket, cfg.AWS.CDNDomain)
	default:
		return storage.NewLocalStorage(cfg.Local.BasePath, cfg.Local.BaseURL)
	}
}
