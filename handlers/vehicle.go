// File: handlers/vehicle.go
package handlers

import (
	"net/http"

	"github.com/jpcunanan716/bestaccord-transportation-sub000/models"
	"github.com/jpcunanan716/bestaccord-transportation-sub000/services/vehicle"

	"github.com/gin-gonic/gin"
)

// VehicleHandler exposes fleet management over HTTP.
type VehicleHandler struct {
	Service vehicle.VehicleService
}

// CreateVehicleHandler handles POST /vehicles.
func (h *VehicleHandler) CreateVehicleHandler(c *gin.Context) {
	var req vehicle.CreateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	v, err := h.Service.CreateVehicle(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, v)
}

// GetVehicleHandler handles GET /vehicles/:id.
func (h *VehicleHandler) GetVehicleHandler(c *gin.Context) {
	v, err := h.Service.GetVehicle(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

// ListVehiclesHandler handles GET /vehicles.
func (h *VehicleHandler) ListVehiclesHandler(c *gin.Context) {
	vehicles, err := h.Service.ListVehicles()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, vehicles)
}

// UpdateVehicleHandler handles PATCH /vehicles/:id.
func (h *VehicleHandler) UpdateVehicleHandler(c *gin.Context) {
	var req vehicle.UpdateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	v, err := h.Service.UpdateVehicle(c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

// SetVehicleAvailabilityHandler handles PUT /vehicles/:id/availability.
func (h *VehicleHandler) SetVehicleAvailabilityHandler(c *gin.Context) {
	var req struct {
		Status models.ResourceStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	v, err := h.Service.SetAvailability(c.Param("id"), req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

// DeleteVehicleHandler handles DELETE /vehicles/:id.
func (h *VehicleHandler) DeleteVehicleHandler(c *gin.Context) {
	if err := h.Service.DeleteVehicle(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Vehicle deleted"})
}
