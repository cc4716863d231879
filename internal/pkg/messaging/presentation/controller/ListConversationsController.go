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

// ListConversationsController handles the list-conversations endpoint only (one controller per endpoint)
type ListConversationsController struct {
	UC *usecase.ListConversationsUseCase
}

func NewListConversationsController(repo repository.ConversationRepository) *ListConversationsController {
	return &ListConversationsController{UC: usecase.NewListConversationsUseCase(repo)}
}

// Handle returns a gin handler listing every conversation the caller is in.
func (h *ListConversationsController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		callerID, ok := identity.CallerID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing identity"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()
		convs, err := h.UC.Execute(ctx, callerID)
		if err != nil {
			respondError(c, err)
			return
		}

		views := make([]conversationView, 0, len(convs))
		for _, conv := range convs {
			views = append(views, viewConversation(conv))
		}
		c.JSON(http.StatusOK, gin.H{"conversations": views})
	}
}
