package usecase

import (
	"context"
	"errors"
	"fmt"

	messaging "go-parley/internal/pkg/messaging/application/domain"
	repository "go-parley/internal/pkg/messaging/persistence/repository/port"
)

// casAttempts bounds the optimistic-update retry loop. Conversations are
// two-party, so contention is shallow; three reads is enough in practice and
// anything beyond it is surfaced as a retryable conflict.
const casAttempts = 3

// mutateConversation runs the read-guard-mutate-write cycle every mutating
// use case shares. mutate is applied to a freshly read copy on each attempt,
// so a lost race never persists a stale view of the message array; the whole
// operation either lands as one compare-and-swap write or not at all.
func mutateConversation(
	ctx context.Context,
	repo repository.ConversationRepository,
	conversationID string,
	mutate func(*messaging.Conversation) error,
) (*messaging.Conversation, error) {
	for attempt := 0; attempt < casAttempts; attempt++ {
		conv, err := repo.Get(ctx, conversationID)
		if errors.Is(err, repository.ErrNotFound) {
			return nil, messaging.ErrConversationNotFound
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
		}

		if err := mutate(conv); err != nil {
			return nil, err
		}

		err = repo.Update(ctx, *conv)
		if err == nil {
			conv.Version++
			return conv, nil
		}
		if errors.Is(err, repository.ErrVersionConflict) {
			continue
		}
		if errors.Is(err, repository.ErrNotFound) {
			return nil, messaging.ErrConversationNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return nil, messaging.ErrConflict
}
