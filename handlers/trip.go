// File: handlers/trip.go
package handlers

import (
	"errors"
	"net/http"

	"reisdesk/models"
	"reisdesk/services/trip"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TripHandler exposes the trip composition engine over HTTP.
type TripHandler struct {
	Svc    trip.TripService
	Logger *zap.Logger
}

// NewTripHandler creates a new TripHandler.
func NewTripHandler(svc trip.TripService, logger *zap.Logger) *TripHandler {
	return &TripHandler{Svc: svc, Logger: logger}
}

// AddItem composes and persists a new line-item set for the trip. Validation
// warnings block with 422 unless the client confirms with ?confirm=true.
func (h *TripHandler) AddItem(c *gin.Context) {
	uid := c.Param("uid")
	var sel models.Selection
	if err := c.ShouldBindJSON(&sel); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid selection: " + err.Error()})
		return
	}

	if warnings := h.Svc.ValidateSelection(sel); len(warnings) > 0 && c.Query("confirm") != "true" {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"success":         false,
			"confirmRequired": true,
			"warnings":        warnings,
		})
		return
	}

	result, err := h.Svc.AddItem(c.Request.Context(), uid, sel)
	if err != nil {
		h.Logger.Error("failed to add trip item", zap.String("uid", uid), zap.Error(err))
		status := statusFor(err)
		body := gin.H{"success": false, "error": err.Error()}
		if result != nil {
			// Some items were persisted before the failure; the client
			// needs them to offer a retry.
			body["items"] = result.Items
			body["failed"] = result.Failed
		}
		c.JSON(status, body)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "items": result.Items, "price": result.Price})
}

// UpdateItem replaces the persisted set for an existing item.
func (h *TripHandler) UpdateItem(c *gin.Context) {
	uid := c.Param("uid")
	itemID := c.Param("id")
	var sel models.Selection
	if err := c.ShouldBindJSON(&sel); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid selection: " + err.Error()})
		return
	}

	if warnings := h.Svc.ValidateSelection(sel); len(warnings) > 0 && c.Query("confirm") != "true" {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"success":         false,
			"confirmRequired": true,
			"warnings":        warnings,
		})
		return
	}

	result, err := h.Svc.UpdateItem(c.Request.Context(), uid, itemID, sel)
	if err != nil {
		h.Logger.Error("failed to update trip item",
			zap.String("uid", uid), zap.String("itemId", itemID), zap.Error(err))
		body := gin.H{"success": false, "error": err.Error()}
		if result != nil {
			body["items"] = result.Items
			body["failed"] = result.Failed
		}
		c.JSON(statusFor(err), body)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "items": result.Items, "price": result.Price})
}

// DeleteItem removes a main item and its extras.
func (h *TripHandler) DeleteItem(c *gin.Context) {
	uid := c.Param("uid")
	itemID := c.Param("id")
	if err := h.Svc.DeleteItem(c.Request.Context(), uid, itemID); err != nil {
		h.Logger.Error("failed to delete trip item",
			zap.String("uid", uid), zap.String("itemId", itemID), zap.Error(err))
		c.JSON(statusFor(err), gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Sidebar returns the trip's display-ordered summary rows.
func (h *TripHandler) Sidebar(c *gin.Context) {
	uid := c.Param("uid")
	summaries, err := h.Svc.Sidebar(c.Request.Context(), uid)
	if err != nil {
		h.Logger.Error("failed to project sidebar", zap.String("uid", uid), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": summaries})
}

// BeginEdit restores a selection from a persisted item and opens an edit
// session.
func (h *TripHandler) BeginEdit(c *gin.Context) {
	uid := c.Param("uid")
	itemID := c.Param("id")
	session, err := h.Svc.BeginEdit(c.Request.Context(), uid, itemID)
	if err != nil {
		h.Logger.Error("failed to begin edit",
			zap.String("uid", uid), zap.String("itemId", itemID), zap.Error(err))
		c.JSON(statusFor(err), gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "session": session})
}

// CancelEdit discards an edit session.
func (h *TripHandler) CancelEdit(c *gin.Context) {
	sessionID := c.Param("sessionID")
	if err := h.Svc.CancelEdit(c.Request.Context(), sessionID); err != nil {
		h.Logger.Error("failed to cancel edit session",
			zap.String("sessionId", sessionID), zap.Error(err))
		c.JSON(statusFor(err), gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Quote prices a selection without persisting anything.
func (h *TripHandler) Quote(c *gin.Context) {
	var sel models.Selection
	if err := c.ShouldBindJSON(&sel); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid selection: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.Svc.Quote(sel))
}

// ValidateTimeslot checks a candidate time range against a timeslot.
func (h *TripHandler) ValidateTimeslot(c *gin.Context) {
	var input struct {
		Slot      models.TimeSlot `json:"slot"`
		StartTime string          `json:"startTime"`
		EndTime   string          `json:"endTime"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid input: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, trip.ValidateTimeslot(input.Slot, input.StartTime, input.EndTime))
}

// statusFor maps engine errors onto HTTP statuses.
func statusFor(err error) int {
	switch {
	case errors.Is(err, trip.ErrItemNotFound), errors.Is(err, trip.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, trip.ErrNotMainItem),
		errors.Is(err, trip.ErrTooManyExtras),
		errors.Is(err, trip.ErrIncompleteSelection):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
