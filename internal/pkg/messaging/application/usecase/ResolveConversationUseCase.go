package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	messaging "go-parley/internal/pkg/messaging/application/domain"
	repository "go-parley/internal/pkg/messaging/persistence/repository/port"

	"github.com/google/uuid"
)

// ResolveConversationInput names the two parties; CallerID must be one of them.
type ResolveConversationInput struct {
	CallerID    string
	RecipientID string
}

// ResolveConversationUseCase finds the conversation for a participant pair or
// creates it on first contact. Lookup is by exact participant-set equality
// (canonical pair key), never mere membership, and is insensitive to argument
// order, so the same pair can never end up with two conversations.
// Hexagonal: depends on repository port only
// One class per use case (own file)
type ResolveConversationUseCase struct {
	Repo repository.ConversationRepository
}

func NewResolveConversationUseCase(repo repository.ConversationRepository) *ResolveConversationUseCase {
	return &ResolveConversationUseCase{Repo: repo}
}

// Execute returns the existing conversation unchanged, or a fresh empty one.
func (uc *ResolveConversationUseCase) Execute(ctx context.Context, in ResolveConversationInput) (*messaging.Conversation, error) {
	conv, err := messaging.NewConversation(in.CallerID, in.RecipientID, time.Now())
	if err != nil {
		return nil, err
	}

	existing, err := uc.Repo.FindByParticipants(ctx, in.CallerID, in.RecipientID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	conv.ID = uuid.NewString()
	err = uc.Repo.Create(ctx, conv)
	if errors.Is(err, repository.ErrDuplicateParticipants) {
		// Lost a creation race for the same pair; the winner's conversation
		// is the conversation.
		existing, err = uc.Repo.FindByParticipants(ctx, in.CallerID, in.RecipientID)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
		}
		return existing, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return &conv, nil
}
