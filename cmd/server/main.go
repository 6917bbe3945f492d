package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	appchannel "github.com/erp/salechannel/internal/application/channel"
	applisting "github.com/erp/salechannel/internal/application/listing"
	"github.com/erp/salechannel/internal/domain/listing"
	"github.com/erp/salechannel/internal/infrastructure/config"
	"github.com/erp/salechannel/internal/infrastructure/logger"
	"github.com/erp/salechannel/internal/infrastructure/persistence"
	"github.com/erp/salechannel/internal/interfaces/http/handler"
	"github.com/erp/salechannel/internal/interfaces/http/middleware"
	"github.com/erp/salechannel/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(cfg.Log.Level, cfg.Log.Format, cfg.Log.Output)
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting Sale Channel service",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Database connection with zap-backed GORM logger
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Repositories
	channelRepo := persistence.NewGormSaleChannelRepository(db.DB)
	carrierRepo := persistence.NewGormCarrierRepository(db.DB)
	mappingRepo := persistence.NewGormCarrierMappingRepository(db.DB)
	partyListingRepo := persistence.NewGormPartyListingRepository(db.DB)
	templateListingRepo := persistence.NewGormTemplateListingRepository(db.DB)
	productListingRepo := persistence.NewGormProductListingRepository(db.DB)
	stockReader := persistence.NewGormStockReader(db.DB)

	// Channel integrations register here during setup. The registry starts
	// empty; extension-point operations fail with NotSupported until a
	// concrete integration is plugged in.
	registry := listing.NewIntegrationRegistry()

	// Application services
	channelService := appchannel.NewChannelService(channelRepo)
	carrierService := appchannel.NewCarrierService(carrierRepo, mappingRepo)
	listingService := applisting.NewListingService(channelRepo, partyListingRepo, templateListingRepo, productListingRepo)
	availabilityService := applisting.NewAvailabilityService(channelRepo, productListingRepo, stockReader)
	exportService := applisting.NewExportService(channelRepo, productListingRepo, registry, log)
	wizard := applisting.NewListingWizard(channelRepo)

	// HTTP engine
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Fatal("Failed to set trusted proxies", zap.Error(err))
		}
	}
	engine.Use(
		middleware.RequestID(),
		logger.GinMiddleware(log),
		logger.Recovery(log),
		middleware.Secure(),
	)

	// Handlers and routes
	handlers := router.Handlers{
		System:       handler.NewSystemHandler(db),
		Channel:      handler.NewChannelHandler(channelService),
		Carrier:      handler.NewCarrierHandler(carrierService),
		Listing:      handler.NewListingHandler(listingService),
		Availability: handler.NewAvailabilityHandler(availabilityService),
		Export:       handler.NewExportHandler(exportService),
		Wizard:       handler.NewWizardHandler(wizard),
	}
	router.NewRouter(engine, handlers).Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()
	log.Info("Server listening", zap.String("addr", srv.Addr))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}
	log.Info("Server exited")
}
