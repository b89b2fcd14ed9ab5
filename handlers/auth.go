// File: handlers/auth.go
package handlers

import (
	"net/http"

	"github.com/jpcunanan716/bestaccord-transportation-sub000/services/auth"

	"github.com/gin-gonic/gin"
)

// AuthHandler exposes the two login surfaces and session management.
type AuthHandler struct {
	Service auth.AuthService
}

// OfficeLoginHandler handles POST /auth/login.
func (h *AuthHandler) OfficeLoginHandler(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, user, err := h.Service.OfficeLogin(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		// Credential failures deliberately collapse to 401 regardless of cause.
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}

// EmployeeLoginHandler handles POST /auth/employee-login.
func (h *AuthHandler) EmployeeLoginHandler(c *gin.Context) {
	var req struct {
		EmployeeID string `json:"employeeId" binding:"required"`
		Password   string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, emp, err := h.Service.EmployeeLogin(c.Request.Context(), req.EmployeeID, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "employee": emp})
}

// RegisterUserHandler handles POST /auth/register (admin only).
func (h *AuthHandler) RegisterUserHandler(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		FullName string `json:"fullName" binding:"required"`
		Role     string `json:"role" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.Service.RegisterUser(c.Request.Context(), req.Username, req.FullName, req.Role, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

// RevokeHandler handles DELETE /auth/revoke. It invalidates the caller's
// own session.
func (h *AuthHandler) RevokeHandler(c *gin.Context) {
	if err := h.Service.Revoke(c.Request.Context(), c.GetString("actorID")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Session revoked"})
}
