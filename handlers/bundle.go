// File: handlers/bundle.go
package handlers

import (
	"net/http"

	"reisdesk/utils"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Trip composition endpoints.
	AddItem          gin.HandlerFunc
	UpdateItem       gin.HandlerFunc
	DeleteItem       gin.HandlerFunc
	Sidebar          gin.HandlerFunc
	BeginEdit        gin.HandlerFunc
	CancelEdit       gin.HandlerFunc
	Quote            gin.HandlerFunc
	ValidateTimeslot gin.HandlerFunc

	// Catalog endpoints.
	SearchAccommodations gin.HandlerFunc
	GetRoomTypes         gin.HandlerFunc
	GetBedConfigurations gin.HandlerFunc
	SearchTours          gin.HandlerFunc
	GetTourOptions       gin.HandlerFunc
	GetTourTimeslots     gin.HandlerFunc

	// Media endpoints.
	LoadMedia gin.HandlerFunc
}

// HealthHandler reports the latest health snapshot of the external services.
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
}
