package usecase

import (
	"context"

	cacheport "go-parley/internal/infrastructure/cache/port"
	messaging "go-parley/internal/pkg/messaging/application/domain"
	repository "go-parley/internal/pkg/messaging/persistence/repository/port"
)

// DenyOfferInput identifies the offer-bearing message to turn down.
type DenyOfferInput struct {
	ConversationID string
	MessageID      string
	CallerID       string
}

// DenyOfferUseCase turns an offer down: sender-only, clears the post link and
// records the system response note.
// One class per use case (own file)
type DenyOfferUseCase struct {
	Repo  repository.ConversationRepository
	Cache cacheport.Cache
}

func NewDenyOfferUseCase(repo repository.ConversationRepository, cache cacheport.Cache) *DenyOfferUseCase {
	return &DenyOfferUseCase{Repo: repo, Cache: cache}
}

func (uc *DenyOfferUseCase) Execute(ctx context.Context, in DenyOfferInput) error {
	_, err := mutateConversation(ctx, uc.Repo, in.ConversationID, func(c *messaging.Conversation) error {
		if err := messaging.RequireParticipant(c, in.CallerID); err != nil {
			return err
		}
		msg, err := c.FindMessage(in.MessageID)
		if err != nil {
			return err
		}
		if msg.Offer == nil {
			return messaging.ErrNoOffer
		}
		if err := messaging.RequireSender(msg, in.CallerID); err != nil {
			return err
		}
		msg.Offer.Deny()
		return nil
	})
	if err != nil {
		return err
	}
	invalidateMessages(ctx, uc.Cache, in.ConversationID)
	return nil
}
