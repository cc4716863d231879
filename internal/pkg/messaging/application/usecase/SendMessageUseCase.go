package usecase

import (
	"context"
	"time"

	cacheport "go-parley/internal/infrastructure/cache/port"
	messaging "go-parley/internal/pkg/messaging/application/domain"
	repository "go-parley/internal/pkg/messaging/persistence/repository/port"

	"github.com/google/uuid"
)

// SendMessageInput carries the data needed to send a plain message.
// CallerID is the authenticated sender.
type SendMessageInput struct {
	ConversationID string
	CallerID       string
	RecipientID    string
	Content        string
}

// SendMessageUseCase appends a message to a conversation's history under the
// optimistic-concurrency contract.
// Hexagonal: depends on repository port, returns domain entity
// One class per use case (own file)
type SendMessageUseCase struct {
	Repo  repository.ConversationRepository
	Cache cacheport.Cache
}

func NewSendMessageUseCase(repo repository.ConversationRepository, cache cacheport.Cache) *SendMessageUseCase {
	return &SendMessageUseCase{Repo: repo, Cache: cache}
}

// Execute validates, appends and persists a new message.
func (uc *SendMessageUseCase) Execute(ctx context.Context, in SendMessageInput) (*messaging.Message, error) {
	msg, err := messaging.NewMessage(uuid.NewString(), in.CallerID, in.RecipientID, in.Content, time.Now())
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
