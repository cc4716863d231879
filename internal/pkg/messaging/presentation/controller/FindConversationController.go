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

// FindConversationController handles the lookup-by-recipient endpoint only (one controller per endpoint)
type FindConversationController struct {
	UC *usecase.FindConversationUseCase
}

func NewFindConversationController(repo repository.ConversationRepository) *FindConversationController {
	return &FindConversationController{UC: usecase.NewFindConversationUseCase(repo)}
}

// Handle returns a gin handler that looks up the caller's conversation with
// ?recipient_id= without creating one.
func (h *FindConversationController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		callerID, ok := identity.CallerID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing identity"})
			return
		}

		recipientID := c.Query("recipient_id")
		if recipientID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "recipient_id is required"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()
		conv, err := h.UC.Execute(ctx, usecase.FindConversationInput{
			CallerID:    callerID,
			RecipientID: recipientID,
		})
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"conversation": viewConversation(*conv)})
	}
}
