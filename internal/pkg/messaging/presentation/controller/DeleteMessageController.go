package controller

import (
	"context"
	"net/http"
	"time"

	cacheport "go-parley/internal/infrastructure/cache/port"
	"go-parley/internal/infrastructure/identity"
	"go-parley/internal/pkg/messaging/application/usecase"
	repository "go-parley/internal/pkg/messaging/persistence/repository/port"

	"github.com/gin-gonic/gin"
)

// DeleteMessageController handles the delete-message endpoint only (one controller per endpoint)
type DeleteMessageController struct {
	UC *usecase.DeleteMessageUseCase
}

func NewDeleteMessageController(repo repository.ConversationRepository, cache cacheport.Cache) *DeleteMessageController {
	return &DeleteMessageController{UC: usecase.NewDeleteMessageUseCase(repo, cache)}
}

// Handle returns a gin handler removing a message its caller sent
func (h *DeleteMessageController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		callerID, ok := identity.CallerID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing identity"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()
		err := h.UC.Execute(ctx, usecase.DeleteMessageInput{
			ConversationID: c.Param("conversationId"),
			MessageID:      c.Param("messageId"),
			CallerID:       callerID,
		})
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": "deleted"})
	}
}
