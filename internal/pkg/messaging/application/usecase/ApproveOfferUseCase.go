package usecase

import (
	"context"
	"errors"

	cacheport "go-parley/internal/infrastructure/cache/port"
	messaging "go-parley/internal/pkg/messaging/application/domain"
	repository "go-parley/internal/pkg/messaging/persistence/repository/port"
)

// ApproveOfferInput identifies the offer-bearing message to ratify.
type ApproveOfferInput struct {
	ConversationID string
	MessageID      string
	CallerID       string
}

// ApproveOfferResult distinguishes a landed approval from the expected
// business outcome of approving too early: an offer with no linked post is
// reported as incomplete, not as an error, so pollers can keep re-asking.
type ApproveOfferResult struct {
	Approved bool
	Reason   string
}

// ApproveOfferUseCase ratifies an offer. Only the original proposer (the
// message sender) may approve; approval requires a linked post and is
// idempotent once it lands.
// One class per use case (own file)
type ApproveOfferUseCase struct {
	Repo  repository.ConversationRepository
	Cache cacheport.Cache
}

func NewApproveOfferUseCase(repo repository.ConversationRepository, cache cacheport.Cache) *ApproveOfferUseCase {
	return &ApproveOfferUseCase{Repo: repo, Cache: cache}
}

func (uc *ApproveOfferUseCase) Execute(ctx context.Context, in ApproveOfferInput) (ApproveOfferResult, error) {
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
		return msg.Offer.Approve()
	})
	if errors.Is(err, messaging.ErrIncompleteOffer) {
		return ApproveOfferResult{Approved: false, Reason: "offer cannot be approved, no associated post found"}, nil
	}
	if err != nil {
		return ApproveOfferResult{}, err
	}

	invalidateMessages(ctx, uc.Cache, in.ConversationID)
	return ApproveOfferResult{Approved: true}, nil
}
