package usecase

import (
	"context"

	cacheport "go-parley/internal/infrastructure/cache/port"
	messaging "go-parley/internal/pkg/messaging/application/domain"
	repository "go-parley/internal/pkg/messaging/persistence/repository/port"
)

// DeleteMessageInput identifies the message to remove.
type DeleteMessageInput struct {
	ConversationID string
	MessageID      string
	CallerID       string
}

// DeleteMessageUseCase removes a message permanently. Sender-only; no
// tombstone, any embedded offer state goes with it. Runs under the same
// compare-and-swap discipline as offer mutations, so deleting a message and
// concurrently responding to its offer cannot interleave.
// One class per use case (own file)
type DeleteMessageUseCase struct {
	Repo  repository.ConversationRepository
	Cache cacheport.Cache
}

func NewDeleteMessageUseCase(repo repository.ConversationRepository, cache cacheport.Cache) *DeleteMessageUseCase {
	return &DeleteMessageUseCase{Repo: repo, Cache: cache}
}

func (uc *DeleteMessageUseCase) Execute(ctx context.Context, in DeleteMessageInput) error {
	_, err := mutateConversation(ctx, uc.Repo, in.ConversationID, func(c *messaging.Conversation) error {
		if err := messaging.RequireParticipant(c, in.CallerID); err != nil {
			return err
		}
		msg, err := c.FindMessage(in.MessageID)
		if err != nil {
			return err
		}
		if err := messaging.RequireSender(msg, in.CallerID); err != nil {
			return err
		}
		return c.RemoveMessage(in.MessageID)
	})
	if err != nil {
		return err
	}
	invalidateMessages(ctx, uc.Cache, in.ConversationID)
	return nil
}
