package adapter

import (
	"context"
	"sync"

	messaging "go-parley/internal/pkg/messaging/application/domain"
	repository "go-parley/internal/pkg/messaging/persistence/repository/port"
)

// MemoryConversationRepository keeps conversations in process memory. It
// implements the same version CAS as the durable adapters, so use cases and
// tests exercise identical concurrency behavior against it. Also selectable
// at runtime via STORE_DRIVER=memory for local development.
type MemoryConversationRepository struct {
	mu     sync.RWMutex
	byID   map[string]messaging.Conversation
	byPair map[string]string // participant key -> conversation id
}

func NewMemoryConversationRepository() *MemoryConversationRepository {
	return &MemoryConversationRepository{
		byID:   make(map[string]messaging.Conversation),
		byPair: make(map[string]string),
	}
}

// Ensure interface compliance at compile time
var _ repository.ConversationRepository = (*MemoryConversationRepository)(nil)

func (r *MemoryConversationRepository) Create(_ context.Context, c messaging.Conversation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := c.ParticipantKey()
	if _, exists := r.byPair[key]; exists {
		return repository.ErrDuplicateParticipants
	}
	r.byID[c.ID] = cloneConversation(c)
	r.byPair[key] = c.ID
	return nil
}

func (r *MemoryConversationRepository) Get(_ context.Context, id string) (*messaging.Conversation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	out := cloneConversation(c)
	return &out, nil
}

func (r *MemoryConversationRepository) FindByParticipants(_ context.Context, userA, userB string) (*messaging.Conversation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byPair[messaging.ParticipantKey(userA, userB)]
	if !ok {
		return nil, repository.ErrNotFound
	}
	c := cloneConversation(r.byID[id])
	return &c, nil
}

func (r *MemoryConversationRepository) ListByParticipant(_ context.Context, userID string) ([]messaging.Conversation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []messaging.Conversation
	for _, c := range r.byID {
		if c.HasParticipant(userID) {
			out = append(out, cloneConversation(c))
		}
	}
	return out, nil
}

func (r *MemoryConversationRepository) Update(_ context.Context, c messaging.Conversation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.byID[c.ID]
	if !ok {
		return repository.ErrNotFound
	}
	if stored.Version != c.Version {
		return repository.ErrVersionConflict
	}
	next := cloneConversation(c)
	next.Version = c.Version + 1
	r.byID[c.ID] = next
	return nil
}

// cloneConversation deep-copies so callers can never mutate stored state
// outside the CAS path.
func cloneConversation(c messaging.Conversation) messaging.Conversation {
	out := c
	out.Participants = append([]string(nil), c.Participants...)
	out.Messages = make([]messaging.Message, len(c.Messages))
	for i, m := range c.Messages {
		out.Messages[i] = m
		if m.Offer != nil {
			offer := *m.Offer
			if m.Offer.Response != nil {
				resp := *m.Offer.Response
				offer.Response = &resp
			}
			if m.Offer.AssociatedPostID != nil {
				post := *m.Offer.AssociatedPostID
				offer.AssociatedPostID = &post
			}
			out.Messages[i].Offer = &offer
		}
	}
	return out
}
