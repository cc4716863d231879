package controller

import (
	"context"
	"net/http"
	"time"

	"go-parley/internal/infrastructure/identity"
	"go-parley/internal/pkg/messaging/application/usecase"
	repository "go-parley/internal/pkg/messaging/persistence/repository/port"

	"github.com/gin-gonic/gin"
)

// ResolveConversationController handles the open-conversation endpoint only (one controller per endpoint)
type ResolveConversationController struct {
	UC *usecase.ResolveConversationUseCase
}

func NewResolveConversationController(repo repository.ConversationRepository) *ResolveConversationController {
	return &ResolveConversationController{UC: usecase.NewResolveConversationUseCase(repo)}
}

// resolveConversationRequest is the DTO for the HTTP request body
type resolveConversationRequest struct {
	RecipientID string `json:"recipient_id" binding:"required"`
}

// Handle returns a gin handler that finds or creates the caller's
// conversation with the given recipient.
func (h *ResolveConversationController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		callerID, ok := identity.CallerID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing identity"})
			return
		}

		var req resolveConversationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()
		conv, err := h.UC.Execute(ctx, usecase.ResolveConversationInput{
			CallerID:    callerID,
			RecipientID: req.RecipientID,
		})
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"conversation": viewConversation(*conv)})
	}
}
