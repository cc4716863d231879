package usecase

import (
	"context"

	cacheport "go-parley/internal/infrastructure/cache/port"
	messaging "go-parley/internal/pkg/messaging/application/domain"
	repository "go-parley/internal/pkg/messaging/persistence/repository/port"
)

// RespondToOfferInput carries the recipient's counter-proposal: the post they
// put forward plus free-text.
type RespondToOfferInput struct {
	ConversationID string
	MessageID      string
	CallerID       string
	PostID         string
	Response       string
}

// RespondToOfferUseCase records the recipient's response on an embedded
// offer. Re-responding overwrites the previous response and post link; that
// includes re-opening a denied offer.
// One class per use case (own file)
type RespondToOfferUseCase struct {
	Repo  repository.ConversationRepository
	Cache cacheport.Cache
}

func NewRespondToOfferUseCase(repo repository.ConversationRepository, cache cacheport.Cache) *RespondToOfferUseCase {
	return &RespondToOfferUseCase{Repo: repo, Cache: cache}
}

func (uc *RespondToOfferUseCase) Execute(ctx context.Context, in RespondToOfferInput) error {
	if in.PostID == "" {
		return messaging.ErrIncompleteOffer
	}
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
		if err := messaging.RequireRecipient(msg, in.CallerID); err != nil {
			return err
		}
		msg.Offer.Respond(in.PostID, in.Response)
		return nil
	})
	if err != nil {
		return err
	}
	invalidateMessages(ctx, uc.Cache, in.ConversationID)
	return nil
}
