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

// SendOfferController handles the send-offer endpoint only (one controller per endpoint)
type SendOfferController struct {
	UC *usecase.SendOfferUseCase
}

func NewSendOfferController(repo repository.ConversationRepository, cache cacheport.Cache) *SendOfferController {
	return &SendOfferController{UC: usecase.NewSendOfferUseCase(repo, cache)}
}

// sendOfferRequest is the DTO for the HTTP request body. post_id is optional:
// the recipient usually links the post when responding.
type sendOfferRequest struct {
	RecipientID  string `json:"recipient_id" binding:"required"`
	Content      string `json:"content" binding:"required"`
	Company      string `json:"company" binding:"required"`
	Product      string `json:"product" binding:"required"`
	DurationDays int    `json:"duration_days" binding:"required"`
	PostID       string `json:"post_id"`
}

// Handle returns a gin handler that appends an offer-bearing message
func (h *SendOfferController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		callerID, ok := identity.CallerID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing identity"})
			return
		}

		var req sendOfferRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()
		msg, err := h.UC.Execute(ctx, usecase.SendOfferInput{
			ConversationID: c.Param("conversationId"),
			CallerID:       callerID,
			RecipientID:    req.RecipientID,
			Content:        req.Content,
			Company:        req.Company,
			Product:        req.Product,
			DurationDays:   req.DurationDays,
			PostID:         req.PostID,
		})
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{"message": viewMessage(*msg, time.Now())})
	}
}
