// File: handlers/booking.go
package handlers

import (
	"net/http"

	"github.com/jpcunanan716/bestaccord-transportation-sub000/models"
	"github.com/jpcunanan716/bestaccord-transportation-sub000/services/booking"

	"github.com/gin-gonic/gin"
)

// BookingHandler exposes the booking lifecycle over HTTP.
type BookingHandler struct {
	Service booking.BookingService
}

// CreateBookingHandler handles POST /bookings.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	var req booking.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	b, err := h.Service.CreateBooking(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

// GetBookingHandler handles GET /bookings/:id.
func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	b, err := h.Service.GetBooking(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// ListBookingsHandler handles GET /bookings.
func (h *BookingHandler) ListBookingsHandler(c *gin.Context) {
	bookings, err := h.Service.ListBookings()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// ListArchivedHandler handles GET /bookings/archived.
func (h *BookingHandler) ListArchivedHandler(c *gin.Context) {
	bookings, err := h.Service.ListArchived()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// UpdateBookingHandler handles PATCH /bookings/:id.
func (h *BookingHandler) UpdateBookingHandler(c *gin.Context) {
	var req booking.UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	b, err := h.Service.UpdateBooking(c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// TransitionHandler handles PUT /bookings/:id/status.
func (h *BookingHandler) TransitionHandler(c *gin.Context) {
	var req struct {
		Status models.BookingStatus  `json:"status" binding:"required"`
		Proof  *booking.ProofPayload `json:"proof"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	b, err := h.Service.Transition(c.Request.Context(), c.Param("id"), req.Status,
		actorFromContext(c), booking.TransitionOptions{Proof: req.Proof})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// AdminSetStatusHandler handles PUT /bookings/:id/admin-status.
func (h *BookingHandler) AdminSetStatusHandler(c *gin.Context) {
	var req struct {
		Status models.BookingStatus `json:"status" binding:"required"`
		Note   string               `json:"note"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	b, err := h.Service.AdminSetStatus(c.Request.Context(), c.Param("id"), req.Status,
		actorFromContext(c), req.Note)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// ArchiveBookingHandler handles PUT /bookings/:id/archive.
func (h *BookingHandler) ArchiveBookingHandler(c *gin.Context) {
	if err := h.Service.Archive(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking archived"})
}

// RestoreBookingHandler handles PUT /bookings/:id/restore.
func (h *BookingHandler) RestoreBookingHandler(c *gin.Context) {
	if err := h.Service.Restore(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking restored"})
}

// DeleteBookingHandler handles DELETE /bookings/:id.
func (h *BookingHandler) DeleteBookingHandler(c *gin.Context) {
	if err := h.Service.HardDelete(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking deleted"})
}

// RequestVehicleChangeHandler handles POST /bookings/:id/vehicle-change.
func (h *BookingHandler) RequestVehicleChangeHandler(c *gin.Context) {
	var req struct {
		Reason string `json:"reason" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	b, err := h.Service.RequestVehicleChange(c.Param("id"), req.Reason)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// ListPendingVehicleChangesHandler handles GET /bookings/vehicle-changes.
func (h *BookingHandler) ListPendingVehicleChangesHandler(c *gin.Context) {
	pending, err := h.Service.ListPendingVehicleChanges()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pending)
}

// ApproveVehicleChangeHandler handles PUT /bookings/:id/vehicle-change/approve.
func (h *BookingHandler) ApproveVehicleChangeHandler(c *gin.Context) {
	var req struct {
		VehicleID string `json:"vehicleId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	b, err := h.Service.ApproveVehicleChange(c.Request.Context(), c.Param("id"), req.VehicleID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}
