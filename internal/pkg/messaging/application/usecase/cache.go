package usecase

import (
	"context"

	cacheport "go-parley/internal/infrastructure/cache/port"
)

// messagesCacheKey namespaces the cached message list of one conversation.
func messagesCacheKey(conversationID string) string {
	return "messaging:conv:" + conversationID + ":messages"
}

// invalidateMessages drops the cached message list after a successful write.
// The cache is optional and best-effort: a nil cache or a failed delete only
// shortens the window, it never fails the operation.
func invalidateMessages(ctx context.Context, cache cacheport.Cache, conversationID string) {
	if cache == nil {
		return
	}
	_, _ = cache.Del(ctx, messagesCacheKey(conversationID))
}
