package usecase

import (
	"context"
	"fmt"

	messaging "go-parley/internal/pkg/messaging/application/domain"
	repository "go-parley/internal/pkg/messaging/persistence/repository/port"
)

// ListConversationsUseCase returns every conversation the caller takes part in.
// One class per use case (own file)
type ListConversationsUseCase struct {
	Repo repository.ConversationRepository
}

func NewListConversationsUseCase(repo repository.ConversationRepository) *ListConversationsUseCase {
	return &ListConversationsUseCase{Repo: repo}
}

func (uc *ListConversationsUseCase) Execute(ctx context.Context, callerID string) ([]messaging.Conversation, error) {
	if callerID == "" {
		return nil, messaging.ErrInvalidParticipant
	}
	convs, err := uc.Repo.ListByParticipant(ctx, callerID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return convs, nil
}
