package usecase

import (
	"context"
	"testing"

	messaging "go-parley/internal/pkg/messaging/application/domain"
	"go-parley/internal/pkg/messaging/persistence/repository/adapter"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveCreatesOnFirstContact(t *testing.T) {
	repo := adapter.NewMemoryConversationRepository()
	uc := NewResolveConversationUseCase(repo)

	conv, err := uc.Execute(context.Background(), ResolveConversationInput{CallerID: "u1", RecipientID: "u2"})
	require.NoError(t, err)
	assert.NotEmpty(t, conv.ID)
	assert.Empty(t, conv.Messages)
	assert.ElementsMatch(t, []string{"u1", "u2"}, conv.Participants)
}

func TestResolveIsIdempotentAcrossArgumentOrder(t *testing.T) {
	repo := adapter.NewMemoryConversationRepository()
	uc := NewResolveConversationUseCase(repo)
	ctx := context.Background()

	first, err := uc.Execute(ctx, ResolveConversationInput{CallerID: "u1", RecipientID: "u2"})
	require.NoError(t, err)

	second, err := uc.Execute(ctx, ResolveConversationInput{CallerID: "u2", RecipientID: "u1"})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	convs, err := repo.ListByParticipant(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, convs, 1)
}

func TestResolveRejectsSelfConversation(t *testing.T) {
	uc := NewResolveConversationUseCase(adapter.NewMemoryConversationRepository())

	_, err := uc.Execute(context.Background(), ResolveConversationInput{CallerID: "u1", RecipientID: "u1"})
	assert.ErrorIs(t, err, messaging.ErrInvalidParticipant)
}

func TestFindConversationDoesNotCreate(t *testing.T) {
	repo := adapter.NewMemoryConversationRepository()
	ctx := context.Background()

	find := NewFindConversationUseCase(repo)
	_, err := find.Execute(ctx, FindConversationInput{CallerID: "u1", RecipientID: "u2"})
	assert.ErrorIs(t, err, messaging.ErrConversationNotFound)

	resolve := NewResolveConversationUseCase(repo)
	created, err := resolve.Execute(ctx, ResolveConversationInput{CallerID: "u1", RecipientID: "u2"})
	require.NoError(t, err)

	found, err := find.Execute(ctx, FindConversationInput{CallerID: "u2", RecipientID: "u1"})
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
}
