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

// GetMessagesController handles the list-messages endpoint only (one controller per endpoint)
type GetMessagesController struct {
	UC *usecase.GetMessagesUseCase
}

func NewGetMessagesController(repo repository.ConversationRepository, cache cacheport.Cache, ttl time.Duration) *GetMessagesController {
	return &GetMessagesController{UC: usecase.NewGetMessagesUseCase(repo, cache, ttl)}
}

// Handle returns a gin handler that fetches a conversation's history in send order.
func (h *GetMessagesController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		callerID, ok := identity.CallerID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing identity"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()
		msgs, err := h.UC.Execute(ctx, usecase.GetMessagesInput{
			ConversationID: c.Param("conversationId"),
			CallerID:       callerID,
		})
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"messages": viewMessages(msgs)})
	}
}
