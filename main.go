// File: reisdesk/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"reisdesk/config"
	"reisdesk/database"
	catalogRepoPkg "reisdesk/database/repository/catalog"
	itemRepoPkg "reisdesk/database/repository/item"
	"reisdesk/handlers"
	"reisdesk/middleware"
	"reisdesk/routes"
	"reisdesk/services/media"
	"reisdesk/services/trip"
	"reisdesk/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	mediaService, err := media.NewFromConfig()
	if err != nil {
		logger.Sugar().Warnf("main: media service disabled: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	itemRepo := itemRepoPkg.NewMongoItemRepo()
	catalogRepo := catalogRepoPkg.NewMongoCatalogRepo()

	// services.
	tripService := &trip.DefaultTripService{
		Store:   itemRepo,
		Catalog: catalogRepo,
	}

	tripHandler := handlers.NewTripHandler(tripService, logger)
	catalogHandler := handlers.NewCatalogHandler(catalogRepo)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		AddItem:          tripHandler.AddItem,
		UpdateItem:       tripHandler.UpdateItem,
		DeleteItem:       tripHandler.DeleteItem,
		Sidebar:          tripHandler.Sidebar,
		BeginEdit:        tripHandler.BeginEdit,
		CancelEdit:       tripHandler.CancelEdit,
		Quote:            tripHandler.Quote,
		ValidateTimeslot: tripHandler.ValidateTimeslot,

		SearchAccommodations: catalogHandler.SearchAccommodations,
		GetRoomTypes:         catalogHandler.GetRoomTypes,
		GetBedConfigurations: catalogHandler.GetBedConfigurations,
		SearchTours:          catalogHandler.SearchTours,
		GetTourOptions:       catalogHandler.GetTourOptions,
		GetTourTimeslots:     catalogHandler.GetTourTimeslots,
	}
	if mediaService != nil {
		handlerBundle.LoadMedia = handlers.NewMediaHandler(mediaService).LoadMedia
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetSessionCacheClient()},
		database.MongoClient,
	)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
