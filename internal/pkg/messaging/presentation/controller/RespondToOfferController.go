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

// RespondToOfferController handles the respond-to-offer endpoint only (one controller per endpoint)
type RespondToOfferController struct {
	UC *usecase.RespondToOfferUseCase
}

func NewRespondToOfferController(repo repository.ConversationRepository, cache cacheport.Cache) *RespondToOfferController {
	return &RespondToOfferController{UC: usecase.NewRespondToOfferUseCase(repo, cache)}
}

// respondToOfferRequest is the DTO for the HTTP request body
type respondToOfferRequest struct {
	PostID   string `json:"post_id" binding:"required"`
	Response string `json:"response" binding:"required"`
}

// Handle returns a gin handler recording the recipient's counter-proposal
func (h *RespondToOfferController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		callerID, ok := identity.CallerID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing identity"})
			return
		}

		var req respondToOfferRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()
		err := h.UC.Execute(ctx, usecase.RespondToOfferInput{
			ConversationID: c.Param("conversationId"),
			MessageID:      c.Param("messageId"),
			CallerID:       callerID,
			PostID:         req.PostID,
			Response:       req.Response,
		})
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"msg": "response added and post linked to offer"})
	}
}
