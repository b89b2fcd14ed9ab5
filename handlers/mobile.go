// File: handlers/mobile.go
package handlers

import (
	"net/http"

	"github.com/jpcunanan716/bestaccord-transportation-sub000/models"
	"github.com/jpcunanan716/bestaccord-transportation-sub000/services/booking"
	"github.com/jpcunanan716/bestaccord-transportation-sub000/services/mobile"

	"github.com/gin-gonic/gin"
)

// MobileHandler exposes the driver app surface. The acting employee is
// always the authenticated subject, never a request parameter.
type MobileHandler struct {
	Service mobile.MobileService
}

// AssignedBookingsHandler handles GET /mobile/bookings.
func (h *MobileHandler) AssignedBookingsHandler(c *gin.Context) {
	bookings, err := h.Service.AssignedBookings(c.GetString("actorID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// ProgressHandler handles PUT /mobile/bookings/:id/status.
func (h *MobileHandler) ProgressHandler(c *gin.Context) {
	var req struct {
		Status models.BookingStatus  `json:"status" binding:"required"`
		Proof  *booking.ProofPayload `json:"proof"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	b, err := h.Service.Progress(c.Request.Context(), c.GetString("actorID"), c.Param("id"), req.Status, req.Proof)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// ReportLocationHandler handles PUT /mobile/bookings/:id/location.
func (h *MobileHandler) ReportLocationHandler(c *gin.Context) {
	var req struct {
		Latitude  *float64 `json:"latitude" binding:"required"`
		Longitude *float64 `json:"longitude" binding:"required"`
		Accuracy  float64  `json:"accuracy"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	b, err := h.Service.ReportLocation(c.GetString("actorID"), c.Param("id"), *req.Latitude, *req.Longitude, req.Accuracy)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// UpdateFCMTokenHandler handles PUT /mobile/fcm-token.
func (h *MobileHandler) UpdateFCMTokenHandler(c *gin.Context) {
	var req struct {
		Token string `json:"token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Service.UpdateFCMToken(c.GetString("actorID"), req.Token); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "FCM token updated"})
}
