package controller

import (
	"errors"
	"net/http"

	messaging "go-parley/internal/pkg/messaging/application/domain"
	"go-parley/internal/pkg/messaging/application/usecase"

	"github.com/gin-gonic/gin"
)

// respondError maps domain and use-case errors onto HTTP statuses. All
// authorization failures share one opaque body; a rejected caller learns
// nothing about conversation membership or which role check failed.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, messaging.ErrNotAuthorized):
		c.JSON(http.StatusForbidden, gin.H{"error": "not authorized"})
	case errors.Is(err, messaging.ErrConversationNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "conversation not found"})
	case errors.Is(err, messaging.ErrMessageNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "message not found"})
	case errors.Is(err, messaging.ErrNoOffer):
		c.JSON(http.StatusNotFound, gin.H{"error": "no offer associated with this message"})
	case errors.Is(err, messaging.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": "conversation was modified concurrently, retry"})
	case errors.Is(err, usecase.ErrPersistence):
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	default:
		// Remaining domain errors are input validation
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	}
}
