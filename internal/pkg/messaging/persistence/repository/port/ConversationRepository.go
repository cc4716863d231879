package repository

import (
	"context"
	"errors"

	messaging "go-parley/internal/pkg/messaging/application/domain"
)

// Port-level errors adapters must use so use cases can react in a typed way.
var (
	// ErrNotFound signals an absent conversation (by id or participant pair).
	ErrNotFound = errors.New("repository: conversation not found")

	// ErrVersionConflict signals that an Update lost an optimistic-concurrency
	// race: the stored version no longer matches the version the caller read.
	// Callers should re-read and retry.
	ErrVersionConflict = errors.New("repository: conversation version conflict")

	// ErrDuplicateParticipants signals that a Create raced another writer for
	// the same participant pair. Callers should fall back to a lookup.
	ErrDuplicateParticipants = errors.New("repository: conversation already exists for participants")
)

// ConversationRepository defines persistence for whole Conversation records.
//
// The store holds no business rules. Its one hard contract is the
// compare-and-swap in Update: a conversation read at version N may only be
// written back while the stored version is still N, and the write bumps the
// version to N+1. That closes the read-modify-write window over the embedded
// message array without any cross-conversation serialization. Adapters must
// also enforce uniqueness of the canonical participant key at Create time.
type ConversationRepository interface {
	// Create persists a new conversation. c.ID and c.ParticipantKey() must be
	// unique; a participant-pair collision returns ErrDuplicateParticipants.
	Create(ctx context.Context, c messaging.Conversation) error

	// Get fetches a conversation by id, ErrNotFound when absent.
	Get(ctx context.Context, id string) (*messaging.Conversation, error)

	// FindByParticipants fetches the conversation whose participant set
	// equals exactly {userA, userB}, in either order. ErrNotFound when absent.
	FindByParticipants(ctx context.Context, userA, userB string) (*messaging.Conversation, error)

	// ListByParticipant returns every conversation userID takes part in.
	ListByParticipant(ctx context.Context, userID string) ([]messaging.Conversation, error)

	// Update writes c back iff the stored version equals c.Version, storing
	// c.Version+1. Returns ErrVersionConflict on a lost race, ErrNotFound if
	// the conversation has disappeared.
	Update(ctx context.Context, c messaging.Conversation) error
}
