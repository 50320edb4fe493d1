// File: handlers/catalog.go
package handlers

import (
	"net/http"

	catalogRepo "reisdesk/database/repository/catalog"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CatalogHandler exposes the product catalog search endpoints the trip form
// is built on.
type CatalogHandler struct {
	Repo catalogRepo.CatalogRepository
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(repo catalogRepo.CatalogRepository) *CatalogHandler {
	return &CatalogHandler{Repo: repo}
}

// SearchAccommodations lists hotels matching the city/name query.
func (h *CatalogHandler) SearchAccommodations(c *gin.Context) {
	hotels, err := h.Repo.SearchAccommodations(c.Request.Context(), c.Query("city"), c.Query("name"))
	if err != nil {
		getLogger(c).Error("accommodation search failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"hotels": hotels})
}

// GetRoomTypes lists a hotel's rooms and the extras offered with them.
func (h *CatalogHandler) GetRoomTypes(c *gin.Context) {
	roomTypes, err := h.Repo.GetRoomTypes(c.Request.Context(), c.Param("hotelCode"))
	if err != nil {
		getLogger(c).Error("room types lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, roomTypes)
}

// GetBedConfigurations lists the bed configurations attached to a room.
func (h *CatalogHandler) GetBedConfigurations(c *gin.Context) {
	configs, err := h.Repo.GetBedConfigurations(c.Request.Context(), c.Param("roomID"))
	if err != nil {
		getLogger(c).Error("bed configuration lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"bedConfigurations": configs})
}

// SearchTours lists tours matching the city/name query.
func (h *CatalogHandler) SearchTours(c *gin.Context) {
	tours, err := h.Repo.SearchTours(c.Request.Context(), c.Query("city"), c.Query("name"))
	if err != nil {
		getLogger(c).Error("tour search failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"tours": tours})
}

// GetTourOptions returns a tour with its inclusions, exclusions and extras.
func (h *CatalogHandler) GetTourOptions(c *gin.Context) {
	options, err := h.Repo.GetTourOptions(c.Request.Context(), c.Param("code"))
	if err != nil {
		getLogger(c).Error("tour options lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, options)
}

// GetTourTimeslots lists a tour's bookable time windows.
func (h *CatalogHandler) GetTourTimeslots(c *gin.Context) {
	slots, err := h.Repo.GetTourTimeslots(c.Request.Context(), c.Param("tourID"))
	if err != nil {
		getLogger(c).Error("timeslot lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"timeslots": slots})
}
