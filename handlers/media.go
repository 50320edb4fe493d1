// File: handlers/media.go
package handlers

import (
	"net/http"

	"reisdesk/services/media"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// MediaHandler serves the display assets for a catalog product.
type MediaHandler struct {
	Svc media.MediaService
}

// NewMediaHandler creates a new MediaHandler.
func NewMediaHandler(svc media.MediaService) *MediaHandler {
	return &MediaHandler{Svc: svc}
}

// LoadMedia returns the assets tagged with the product code, optionally
// merged with a second code's assets.
func (h *MediaHandler) LoadMedia(c *gin.Context) {
	code := c.Param("code")
	items, err := h.Svc.LoadMedia(c.Request.Context(), code, c.Query("additionalCode"))
	if err != nil {
		getLogger(c).Error("media lookup failed", zap.String("code", code), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"media": items})
}
