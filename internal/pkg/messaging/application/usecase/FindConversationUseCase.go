package usecase

import (
	"context"
	"errors"
	"fmt"

	messaging "go-parley/internal/pkg/messaging/application/domain"
	repository "go-parley/internal/pkg/messaging/persistence/repository/port"
)

// FindConversationInput identifies a participant pair to look up.
type FindConversationInput struct {
	CallerID    string
	RecipientID string
}

// FindConversationUseCase is the read-only half of resolution: it locates the
// conversation for an exact participant pair without ever creating one.
// One class per use case (own file)
type FindConversationUseCase struct {
	Repo repository.ConversationRepository
}

func NewFindConversationUseCase(repo repository.ConversationRepository) *FindConversationUseCase {
	return &FindConversationUseCase{Repo: repo}
}

// Execute returns the pair's conversation or ErrConversationNotFound.
func (uc *FindConversationUseCase) Execute(ctx context.Context, in FindConversationInput) (*messaging.Conversation, error) {
	if in.CallerID == "" || in.RecipientID == "" {
		return nil, messaging.ErrInvalidParticipant
	}
	conv, err := uc.Repo.FindByParticipants(ctx, in.CallerID, in.RecipientID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, messaging.ErrConversationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return conv, nil
}
