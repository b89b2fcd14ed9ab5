// File: handlers/employee.go
package handlers

import (
	"net/http"

	"github.com/jpcunanan716/bestaccord-transportation-sub000/models"
	"github.com/jpcunanan716/bestaccord-transportation-sub000/services/employee"

	"github.com/gin-gonic/gin"
)

// EmployeeHandler exposes crew management over HTTP.
type EmployeeHandler struct {
	Service employee.EmployeeService
}

// CreateEmployeeHandler handles POST /employees.
func (h *EmployeeHandler) CreateEmployeeHandler(c *gin.Context) {
	var req employee.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	emp, err := h.Service.CreateEmployee(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, emp)
}

// GetEmployeeHandler handles GET /employees/:id.
func (h *EmployeeHandler) GetEmployeeHandler(c *gin.Context) {
	emp, err := h.Service.GetEmployee(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, emp)
}

// ListEmployeesHandler handles GET /employees.
func (h *EmployeeHandler) ListEmployeesHandler(c *gin.Context) {
	employees, err := h.Service.ListEmployees()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, employees)
}

// UpdateEmployeeHandler handles PATCH /employees/:id.
func (h *EmployeeHandler) UpdateEmployeeHandler(c *gin.Context) {
	var req employee.UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	emp, err := h.Service.UpdateEmployee(c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, emp)
}

// SetEmployeeAvailabilityHandler handles PUT /employees/:id/availability.
func (h *EmployeeHandler) SetEmployeeAvailabilityHandler(c *gin.Context) {
	var req struct {
		Status models.ResourceStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	emp, err := h.Service.SetAvailability(c.Param("id"), req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, emp)
}

// DeleteEmployeeHandler handles DELETE /employees/:id.
func (h *EmployeeHandler) DeleteEmployeeHandler(c *gin.Context) {
	if err := h.Service.DeleteEmployee(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Employee deleted"})
}
