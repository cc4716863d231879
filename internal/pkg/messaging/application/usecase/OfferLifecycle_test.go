package usecase

import (
	"context"
	"testing"

	messaging "go-parley/internal/pkg/messaging/application/domain"
	"go-parley/internal/pkg/messaging/persistence/repository/adapter"
	repository "go-parley/internal/pkg/messaging/persistence/repository/port"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type offerFixture struct {
	repo    repository.ConversationRepository
	convID  string
	send    *SendMessageUseCase
	offer   *SendOfferUseCase
	respond *RespondToOfferUseCase
	approve *ApproveOfferUseCase
	deny    *DenyOfferUseCase
	delete  *DeleteMessageUseCase
	get     *GetMessagesUseCase
}

func newOfferFixture(t *testing.T) *offerFixture {
	t.Helper()
	repo := adapter.NewMemoryConversationRepository()
	conv, err := NewResolveConversationUseCase(repo).Execute(context.Background(),
		ResolveConversationInput{CallerID: "u1", RecipientID: "u2"})
	require.NoError(t, err)
	return &offerFixture{
		repo:    repo,
		convID:  conv.ID,
		send:    NewSendMessageUseCase(repo, nil),
		offer:   NewSendOfferUseCase(repo, nil),
		respond: NewRespondToOfferUseCase(repo, nil),
		approve: NewApproveOfferUseCase(repo, nil),
		deny:    NewDenyOfferUseCase(repo, nil),
		delete:  NewDeleteMessageUseCase(repo, nil),
		get:     NewGetMessagesUseCase(repo, nil, 0),
	}
}

func (f *offerFixture) sendOffer(t *testing.T, postID string) string {
	t.Helper()
	msg, err := f.offer.Execute(context.Background(), SendOfferInput{
		ConversationID: f.convID,
		CallerID:       "u1",
		RecipientID:    "u2",
		Content:        "interested in a collab?",
		Company:        "Acme",
		Product:        "Widget",
		DurationDays:   7,
		PostID:         postID,
	})
	require.NoError(t, err)
	return msg.ID
}

func (f *offerFixture) messages(t *testing.T, callerID string) []messaging.Message {
	t.Helper()
	msgs, err := f.get.Execute(context.Background(), GetMessagesInput{ConversationID: f.convID, CallerID: callerID})
	require.NoError(t, err)
	return msgs
}

// Walks the whole negotiation: plain message, pending offer, recipient
// response, approval, then the permissive deny-after-approve.
func TestOfferLifecycleScenario(t *testing.T) {
	f := newOfferFixture(t)
	ctx := context.Background()

	_, err := f.send.Execute(ctx, SendMessageInput{
		ConversationID: f.convID, CallerID: "u1", RecipientID: "u2", Content: "hi",
	})
	require.NoError(t, err)

	msgs := f.messages(t, "u1")
	require.Len(t, msgs, 1)
	assert.Nil(t, msgs[0].Offer)

	offerID := f.sendOffer(t, "p1")
	msgs = f.messages(t, "u2")
	require.Len(t, msgs, 2)
	require.NotNil(t, msgs[1].Offer)
	assert.Equal(t, messaging.OfferPending, msgs[1].Offer.Status)
	assert.Equal(t, "p1", *msgs[1].Offer.AssociatedPostID)

	require.NoError(t, f.respond.Execute(ctx, RespondToOfferInput{
		ConversationID: f.convID, MessageID: offerID, CallerID: "u2", PostID: "p2", Response: "counter",
	}))
	msgs = f.messages(t, "u1")
	assert.Equal(t, messaging.OfferResponded, msgs[1].Offer.Status)
	assert.Equal(t, "p2", *msgs[1].Offer.AssociatedPostID)

	res, err := f.approve.Execute(ctx, ApproveOfferInput{ConversationID: f.convID, MessageID: offerID, CallerID: "u1"})
	require.NoError(t, err)
	assert.True(t, res.Approved)
	msgs = f.messages(t, "u1")
	assert.Equal(t, messaging.OfferApproved, msgs[1].Offer.Status)

	// Deny afterwards still lands and clears the post link
	require.NoError(t, f.deny.Execute(ctx, DenyOfferInput{ConversationID: f.convID, MessageID: offerID, CallerID: "u1"}))
	msgs = f.messages(t, "u1")
	assert.Equal(t, messaging.OfferDenied, msgs[1].Offer.Status)
	assert.Nil(t, msgs[1].Offer.AssociatedPostID)
	assert.Equal(t, messaging.DeniedNote, *msgs[1].Offer.Response)
}

func TestApproveWithoutPostReportsIncomplete(t *testing.T) {
	f := newOfferFixture(t)
	offerID := f.sendOffer(t, "")

	res, err := f.approve.Execute(context.Background(),
		ApproveOfferInput{ConversationID: f.convID, MessageID: offerID, CallerID: "u1"})
	require.NoError(t, err)
	assert.False(t, res.Approved)
	assert.NotEmpty(t, res.Reason)

	msgs := f.messages(t, "u1")
	assert.Equal(t, messaging.OfferPending, msgs[0].Offer.Status)
}

func TestApproveIsIdempotent(t *testing.T) {
	f := newOfferFixture(t)
	ctx := context.Background()
	offerID := f.sendOffer(t, "p1")

	require.NoError(t, f.respond.Execute(ctx, RespondToOfferInput{
		ConversationID: f.convID, MessageID: offerID, CallerID: "u2", PostID: "p2", Response: "ok",
	}))

	for i := 0; i < 2; i++ {
		res, err := f.approve.Execute(ctx, ApproveOfferInput{ConversationID: f.convID, MessageID: offerID, CallerID: "u1"})
		require.NoError(t, err)
		assert.True(t, res.Approved)
	}

	msgs := f.messages(t, "u1")
	assert.Equal(t, messaging.OfferApproved, msgs[0].Offer.Status)
	assert.Equal(t, "p2", *msgs[0].Offer.AssociatedPostID)
}

func TestOfferRoleExclusivity(t *testing.T) {
	f := newOfferFixture(t)
	ctx := context.Background()
	offerID := f.sendOffer(t, "p1")

	// The sender cannot respond to their own offer
	err := f.respond.Execute(ctx, RespondToOfferInput{
		ConversationID: f.convID, MessageID: offerID, CallerID: "u1", PostID: "p2", Response: "self",
	})
	assert.ErrorIs(t, err, messaging.ErrNotAuthorized)

	// The recipient cannot approve or deny
	_, err = f.approve.Execute(ctx, ApproveOfferInput{ConversationID: f.convID, MessageID: offerID, CallerID: "u2"})
	assert.ErrorIs(t, err, messaging.ErrNotAuthorized)
	err = f.deny.Execute(ctx, DenyOfferInput{ConversationID: f.convID, MessageID: offerID, CallerID: "u2"})
	assert.ErrorIs(t, err, messaging.ErrNotAuthorized)

	// An outsider gets the same opaque error everywhere
	err = f.respond.Execute(ctx, RespondToOfferInput{
		ConversationID: f.convID, MessageID: offerID, CallerID: "u9", PostID: "p2", Response: "x",
	})
	assert.ErrorIs(t, err, messaging.ErrNotAuthorized)
	_, err = f.get.Execute(ctx, GetMessagesInput{ConversationID: f.convID, CallerID: "u9"})
	assert.ErrorIs(t, err, messaging.ErrNotAuthorized)
}

func TestRespondRequiresOfferAndMessage(t *testing.T) {
	f := newOfferFixture(t)
	ctx := context.Background()

	plain, err := f.send.Execute(ctx, SendMessageInput{
		ConversationID: f.convID, CallerID: "u1", RecipientID: "u2", Content: "no offer here",
	})
	require.NoError(t, err)

	err = f.respond.Execute(ctx, RespondToOfferInput{
		ConversationID: f.convID, MessageID: plain.ID, CallerID: "u2", PostID: "p1", Response: "x",
	})
	assert.ErrorIs(t, err, messaging.ErrNoOffer)

	err = f.respond.Execute(ctx, RespondToOfferInput{
		ConversationID: f.convID, MessageID: "missing", CallerID: "u2", PostID: "p1", Response: "x",
	})
	assert.ErrorIs(t, err, messaging.ErrMessageNotFound)

	err = f.respond.Execute(ctx, RespondToOfferInput{
		ConversationID: "missing", MessageID: plain.ID, CallerID: "u2", PostID: "p1", Response: "x",
	})
	assert.ErrorIs(t, err, messaging.ErrConversationNotFound)
}

func TestDeleteMessageSenderOnly(t *testing.T) {
	f := newOfferFixture(t)
	ctx := context.Background()
	offerID := f.sendOffer(t, "p1")

	err := f.delete.Execute(ctx, DeleteMessageInput{ConversationID: f.convID, MessageID: offerID, CallerID: "u2"})
	assert.ErrorIs(t, err, messaging.ErrNotAuthorized)

	require.NoError(t, f.delete.Execute(ctx, DeleteMessageInput{ConversationID: f.convID, MessageID: offerID, CallerID: "u1"}))
	assert.Empty(t, f.messages(t, "u1"))

	// Gone for good, offer state included
	err = f.respond.Execute(ctx, RespondToOfferInput{
		ConversationID: f.convID, MessageID: offerID, CallerID: "u2", PostID: "p2", Response: "late",
	})
	assert.ErrorIs(t, err, messaging.ErrMessageNotFound)
}
