package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	cacheport "go-parley/internal/infrastructure/cache/port"
	messaging "go-parley/internal/pkg/messaging/application/domain"
	repository "go-parley/internal/pkg/messaging/persistence/repository/port"
)

// GetMessagesInput identifies the conversation whose history to read.
type GetMessagesInput struct {
	ConversationID string
	CallerID       string
}

// GetMessagesUseCase returns the full ordered history to a participant.
// Reads go through the cache when one is configured; the participant guard
// runs on every call regardless of a cache hit, so cached content is never
// served to a caller the store copy would refuse.
// One class per use case (own file)
type GetMessagesUseCase struct {
	Repo     repository.ConversationRepository
	Cache    cacheport.Cache
	CacheTTL time.Duration
}

func NewGetMessagesUseCase(repo repository.ConversationRepository, cache cacheport.Cache, ttl time.Duration) *GetMessagesUseCase {
	return &GetMessagesUseCase{Repo: repo, Cache: cache, CacheTTL: ttl}
}

// cachedHistory is the cache payload: the participant pair travels with the
// messages so the guard can run without touching the store.
type cachedHistory struct {
	Participants []string            `json:"participants"`
	Messages     []messaging.Message `json:"messages"`
}

// Execute returns messages in send order, unfiltered.
func (uc *GetMessagesUseCase) Execute(ctx context.Context, in GetMessagesInput) ([]messaging.Message, error) {
	if msgs, ok := uc.fromCache(ctx, in); ok {
		return msgs, nil
	}

	conv, err := uc.Repo.Get(ctx, in.ConversationID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, messaging.ErrConversationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if err := messaging.RequireParticipant(conv, in.CallerID); err != nil {
		return nil, err
	}

	uc.toCache(ctx, in.ConversationID, conv)
	return conv.Messages, nil
}

func (uc *GetMessagesUseCase) fromCache(ctx context.Context, in GetMessagesInput) ([]messaging.Message, bool) {
	if uc.Cache == nil {
		return nil, false
	}
	raw, err := uc.Cache.Get(ctx, messagesCacheKey(in.ConversationID))
	if err != nil {
		return nil, false
	}
	var hist cachedHistory
	if err := json.Unmarshal([]byte(raw), &hist); err != nil {
		return nil, false
	}
	for _, p := range hist.Participants {
		if p == in.CallerID {
			return hist.Messages, true
		}
	}
	// Not a participant per the cached copy; fall through to the store so the
	// answer is authoritative.
	return nil, false
}

func (uc *GetMessagesUseCase) toCache(ctx context.Context, conversationID string, conv *messaging.Conversation) {
	if uc.Cache == nil {
		return
	}
	raw, err := json.Marshal(cachedHistory{Participants: conv.Participants, Messages: conv.Messages})
	if err != nil {
		return
	}
	_ = uc.Cache.Set(ctx, messagesCacheKey(conversationID), string(raw), uc.CacheTTL)
}
