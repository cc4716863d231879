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

// ApproveOfferController handles the approve-offer endpoint only (one controller per endpoint)
type ApproveOfferController struct {
	UC *usecase.ApproveOfferUseCase
}

func NewApproveOfferController(repo repository.ConversationRepository, cache cacheport.Cache) *ApproveOfferController {
	return &ApproveOfferController{UC: usecase.NewApproveOfferUseCase(repo, cache)}
}

// Handle returns a gin handler ratifying an offer. An offer with no linked
// post yields 200 with status "incomplete" rather than an error, so clients
// can poll the same call until the recipient has responded.
func (h *ApproveOfferController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		callerID, ok := identity.CallerID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing identity"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()
		res, err := h.UC.Execute(ctx, usecase.ApproveOfferInput{
			ConversationID: c.Param("conversationId"),
			MessageID:      c.Param("messageId"),
			CallerID:       callerID,
		})
		if err != nil {
			respondError(c, err)
			return
		}

		if !res.Approved {
			c.JSON(http.StatusOK, gin.H{"status": "incomplete", "reason": res.Reason})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "approved"})
	}
}
