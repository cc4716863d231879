package usecase

import (
	"context"
	"sync"
	"testing"

	messaging "go-parley/internal/pkg/messaging/application/domain"
	"go-parley/internal/pkg/messaging/persistence/repository/adapter"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendMessageValidation(t *testing.T) {
	f := newOfferFixture(t)
	ctx := context.Background()

	_, err := f.send.Execute(ctx, SendMessageInput{
		ConversationID: f.convID, CallerID: "u1", RecipientID: "u2", Content: "  ",
	})
	assert.ErrorIs(t, err, messaging.ErrEmptyContent)

	// Recipient outside the conversation
	_, err = f.send.Execute(ctx, SendMessageInput{
		ConversationID: f.convID, CallerID: "u1", RecipientID: "u3", Content: "hi",
	})
	assert.ErrorIs(t, err, messaging.ErrInvalidParticipant)

	// Caller outside the conversation gets the opaque authorization error
	_, err = f.send.Execute(ctx, SendMessageInput{
		ConversationID: f.convID, CallerID: "u3", RecipientID: "u2", Content: "hi",
	})
	assert.ErrorIs(t, err, messaging.ErrNotAuthorized)

	_, err = f.send.Execute(ctx, SendMessageInput{
		ConversationID: "missing", CallerID: "u1", RecipientID: "u2", Content: "hi",
	})
	assert.ErrorIs(t, err, messaging.ErrConversationNotFound)
}

func TestSendOfferValidation(t *testing.T) {
	f := newOfferFixture(t)

	_, err := f.offer.Execute(context.Background(), SendOfferInput{
		ConversationID: f.convID,
		CallerID:       "u1",
		RecipientID:    "u2",
		Content:        "deal?",
		Company:        "Acme",
		Product:        "Widget",
		DurationDays:   0,
	})
	assert.ErrorIs(t, err, messaging.ErrInvalidDuration)
}

// Two writers race the same conversation; the version CAS must make both
// messages land instead of letting the second read-modify-write clobber the
// first (lost update).
func TestConcurrentSendOffersBothPersist(t *testing.T) {
	f := newOfferFixture(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = f.offer.Execute(ctx, SendOfferInput{
				ConversationID: f.convID,
				CallerID:       "u1",
				RecipientID:    "u2",
				Content:        "racing offer",
				Company:        "Acme",
				Product:        "Widget",
				DurationDays:   7,
			})
		}(i)
	}
	wg.Wait()

	require.NoError(t, errs[0])
	require.NoError(t, errs[1])
	assert.Len(t, f.messages(t, "u1"), 2)
}

// Deleting a message while its offer is being responded to must serialize:
// whichever write lands second sees the other's effect, never a stale array.
func TestConcurrentDeleteAndRespondStayConsistent(t *testing.T) {
	f := newOfferFixture(t)
	ctx := context.Background()
	offerID := f.sendOffer(t, "p1")

	var wg sync.WaitGroup
	var delErr, respondErr error
	wg.Add(2)
	go func() {
		defer wg.Done()
		delErr = f.delete.Execute(ctx, DeleteMessageInput{ConversationID: f.convID, MessageID: offerID, CallerID: "u1"})
	}()
	go func() {
		defer wg.Done()
		respondErr = f.respond.Execute(ctx, RespondToOfferInput{
			ConversationID: f.convID, MessageID: offerID, CallerID: "u2", PostID: "p2", Response: "counter",
		})
	}()
	wg.Wait()

	require.NoError(t, delErr)
	// The respond either won the race before deletion or observed the
	// message already gone; it never half-applies.
	if respondErr != nil {
		assert.ErrorIs(t, respondErr, messaging.ErrMessageNotFound)
	}
	assert.Empty(t, f.messages(t, "u1"))
}

func TestConflictSurfacesAfterRetriesExhausted(t *testing.T) {
	repo := adapter.NewMemoryConversationRepository()
	contended := &contendedRepository{MemoryConversationRepository: repo}
	conv, err := NewResolveConversationUseCase(repo).Execute(context.Background(),
		ResolveConversationInput{CallerID: "u1", RecipientID: "u2"})
	require.NoError(t, err)

	uc := NewSendMessageUseCase(contended, nil)
	_, err = uc.Execute(context.Background(), SendMessageInput{
		ConversationID: conv.ID, CallerID: "u1", RecipientID: "u2", Content: "hi",
	})
	assert.ErrorIs(t, err, messaging.ErrConflict)
}

// contendedRepository simulates a writer that always sneaks in between the
// use case's read and write.
type contendedRepository struct {
	*adapter.MemoryConversationRepository
}

func (r *contendedRepository) Get(ctx context.Context, id string) (*messaging.Conversation, error) {
	c, err := r.MemoryConversationRepository.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	bump := *c
	if err := r.MemoryConversationRepository.Update(ctx, bump); err != nil {
		return nil, err
	}
	return c, nil
}
