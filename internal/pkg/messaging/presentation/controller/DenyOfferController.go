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

// DenyOfferController handles the deny-offer endpoint only (one controller per endpoint)
type DenyOfferController struct {
	UC *usecase.DenyOfferUseCase
}

func NewDenyOfferController(repo repository.ConversationRepository, cache cacheport.Cache) *DenyOfferController {
	return &DenyOfferController{UC: usecase.NewDenyOfferUseCase(repo, cache)}
}

// Handle returns a gin handler turning an offer down
func (h *DenyOfferController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		callerID, ok := identity.CallerID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing identity"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()
		err := h.UC.Execute(ctx, usecase.DenyOfferInput{
			ConversationID: c.Param("conversationId"),
			MessageID:      c.Param("messageId"),
			CallerID:       callerID,
		})
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": "denied"})
	}
}
