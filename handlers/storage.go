// File: handlers/storage.go
package handlers

import (
	"net/http"

	"github.com/jpcunanan716/bestaccord-transportation-sub000/services/booking"
	"github.com/jpcunanan716/bestaccord-transportation-sub000/services/storage"

	"github.com/gin-gonic/gin"
)

// StorageHandler serves download links for stored trip documents.
type StorageHandler struct {
	Bookings booking.BookingService
	Storage  storage.StorageService
}

// ProofDownloadURLHandler handles GET /bookings/:id/proof-url. It resolves
// the booking's proof-of-delivery document to a signed delivery URL.
func (h *StorageHandler) ProofDownloadURLHandler(c *gin.Context) {
	b, err := h.Bookings.GetBooking(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if b.ProofOfDelivery == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No proof of delivery on record for this booking"})
		return
	}

	url, err := h.Storage.GetDownloadURL(c.Request.Context(), "image", b.ProofOfDelivery.PublicID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"url":          url,
		"documentType": b.ProofOfDelivery.DocumentType,
		"mimeType":     b.ProofOfDelivery.MimeType,
	})
}
