// File: handlers/errors.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/jpcunanan716/bestaccord-transportation-sub000/services/booking"
	"github.com/jpcunanan716/bestaccord-transportation-sub000/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError translates a service error into the matching HTTP status.
func respondError(c *gin.Context, err error) {
	var (
		validationErr   *booking.ValidationError
		conflictErr     *booking.ConflictError
		preconditionErr *booking.PreconditionError
		notFoundErr     *booking.NotFoundError
		partialErr      *booking.PartialApplicationError
	)

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Message})
	case errors.As(err, &conflictErr):
		c.JSON(http.StatusConflict, gin.H{"error": conflictErr.Message})
	case errors.As(err, &preconditionErr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": preconditionErr.Message})
	case errors.As(err, &notFoundErr):
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundErr.Message})
	case errors.As(err, &partialErr):
		c.JSON(http.StatusInternalServerError, gin.H{"error": partialErr.Message})
	default:
		utils.GetLogger().Error("unhandled service error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// actorFromContext rebuilds the acting identity set by the auth middleware.
func actorFromContext(c *gin.Context) booking.Actor {
	return booking.Actor{
		ID:   c.GetString("actorID"),
		Role: c.GetString("actorRole"),
	}
}
