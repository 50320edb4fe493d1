package routes

import (
	"time"

	"reisdesk/handlers"
	"reisdesk/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterTripRoutes sets up the endpoints for the composition engine.
func RegisterTripRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	trips := r.Group("/api/trips")
	{
		trips.Use(middleware.AgentAuthMiddleware())
		trips.POST("/:uid/items", hb.AddItem)
		trips.PUT("/:uid/items/:id", hb.UpdateItem)
		trips.DELETE("/:uid/items/:id", hb.DeleteItem)
		trips.GET("/:uid/sidebar", hb.Sidebar)
		trips.POST("/:uid/items/:id/edit", hb.BeginEdit)
	}

	sessions := r.Group("/api/sessions")
	{
		sessions.Use(middleware.AgentAuthMiddleware())
		sessions.DELETE("/:sessionID", hb.CancelEdit)
	}

	api := r.Group("/api")
	{
		api.Use(middleware.AgentAuthMiddleware())
		api.POST("/quotes", hb.Quote)
		api.POST("/timeslots/validate", hb.ValidateTimeslot)
	}
}

// RegisterCatalogRoutes sets up the catalog search endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	catalog := r.Group("/api/catalog")
	{
		catalog.Use(middleware.AgentAuthMiddleware())
		catalog.GET("/accommodations", hb.SearchAccommodations)
		catalog.GET("/accommodations/:hotelCode/rooms", hb.GetRoomTypes)
		catalog.GET("/rooms/:roomID/bedconfigurations", hb.GetBedConfigurations)
		catalog.GET("/tours", hb.SearchTours)
		catalog.GET("/tours/:code/options", hb.GetTourOptions)
		catalog.GET("/tours/:tourID/timeslots", hb.GetTourTimeslots)
	}
}

// RegisterMediaRoutes sets up the media endpoints.
func RegisterMediaRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	if hb.LoadMedia == nil {
		return
	}
	media := r.Group("/api/media")
	{
		media.Use(middleware.AgentAuthMiddleware())
		media.GET("/:code", hb.LoadMedia)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", handlers.HealthHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterTripRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterMediaRoutes(r, hb)
}
