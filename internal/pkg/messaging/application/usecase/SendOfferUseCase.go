package usecase

import (
	"context"
	"time"

	cacheport "go-parley/internal/infrastructure/cache/port"
	messaging "go-parley/internal/pkg/messaging/application/domain"
	repository "go-parley/internal/pkg/messaging/persistence/repository/port"

	"github.com/google/uuid"
)

// SendOfferInput carries the data for an offer-bearing message. PostID is an
// opaque reference the caller has already resolved against the post catalog;
// this core stores and forwards it without verifying existence or ownership.
type SendOfferInput struct {
	ConversationID string
	CallerID       string
	RecipientID    string
	Content        string
	Company        string
	Product        string
	DurationDays   int
	PostID         string
}

// SendOfferUseCase appends a message whose embedded offer starts pending.
// One class per use case (own file)
type SendOfferUseCase struct {
	Repo  repository.ConversationRepository
	Cache cacheport.Cache
}

func NewSendOfferUseCase(repo repository.ConversationRepository, cache cacheport.Cache) *SendOfferUseCase {
	return &SendOfferUseCase{Repo: repo, Cache: cache}
}

// Execute validates the offer terms, appends and persists the message.
func (uc *SendOfferUseCase) Execute(ctx context.Context, in SendOfferInput) (*messaging.Message, error) {
	offer := messaging.Offer{
		Company:      in.Company,
		Product:      in.Product,
		DurationDays: in.DurationDays,
	}
	if in.PostID != "" {
		post := in.PostID
		offer.AssociatedPostID = &post
	}

	msg, err := messaging.NewOfferMessage(uuid.NewString(), in.CallerID, in.RecipientID, in.Content, offer, time.Now())
	if err != nil {
		return nil, err
	}

	_, err = mutateConversation(ctx, uc.Repo, in.ConversationID, func(c *messaging.Conversation) error {
		if err := messaging.RequireParticipant(c, in.CallerID); err != nil {
			return err
		}
		return c.Append(msg)
	})
	if err != nil {
		return nil, err
	}

	invalidateMessages(ctx, uc.Cache, in.ConversationID)
	return &msg, nil
}
