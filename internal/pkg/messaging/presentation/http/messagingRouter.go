package http

import (
	"time"

	cacheport "go-parley/internal/infrastructure/cache/port"
	"go-parley/internal/pkg/messaging/presentation/controller"
	repository "go-parley/internal/pkg/messaging/persistence/repository/port"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers messaging HTTP endpoints under the given router group.
// It constructs per-endpoint controllers and binds them directly to routes.
// cache may be nil; read paths then always hit the store.
func RegisterRoutes(g *gin.RouterGroup, repo repository.ConversationRepository, cache cacheport.Cache, cacheTTL time.Duration) {
	resolveCtl := controller.NewResolveConversationController(repo)
	findCtl := controller.NewFindConversationController(repo)
	listCtl := controller.NewListConversationsController(repo)
	getMsgCtl := controller.NewGetMessagesController(repo, cache, cacheTTL)
	sendMsgCtl := controller.NewSendMessageController(repo, cache)
	sendOfferCtl := controller.NewSendOfferController(repo, cache)
	respondCtl := controller.NewRespondToOfferController(repo, cache)
	approveCtl := controller.NewApproveOfferController(repo, cache)
	denyCtl := controller.NewDenyOfferController(repo, cache)
	deleteCtl := controller.NewDeleteMessageController(repo, cache)

	// POST /api/v1/conversations -> find-or-create the caller's conversation with a recipient
	g.POST("/conversations", resolveCtl.Handle())

	// GET /api/v1/conversations -> list the caller's conversations
	g.GET("/conversations", listCtl.Handle())

	// GET /api/v1/conversations/find?recipient_id= -> lookup without creating
	g.GET("/conversations/find", findCtl.Handle())

	// GET /api/v1/conversations/:conversationId/messages -> full history in send order
	g.GET("/conversations/:conversationId/messages", getMsgCtl.Handle())

	// POST /api/v1/conversations/:conversationId/messages -> send a plain message
	g.POST("/conversations/:conversationId/messages", sendMsgCtl.Handle())

	// POST /api/v1/conversations/:conversationId/offers -> send an offer-bearing message
	g.POST("/conversations/:conversationId/offers", sendOfferCtl.Handle())

	// POST .../messages/:messageId/response -> recipient counters with a post
	g.POST("/conversations/:conversationId/messages/:messageId/response", respondCtl.Handle())

	// POST .../messages/:messageId/approve -> proposer ratifies
	g.POST("/conversations/:conversationId/messages/:messageId/approve", approveCtl.Handle())

	// POST .../messages/:messageId/deny -> proposer turns the offer down
	g.POST("/conversations/:conversationId/messages/:messageId/deny", denyCtl.Handle())

	// DELETE .../messages/:messageId -> sender removes a message for good
	g.DELETE("/conversations/:conversationId/messages/:messageId", deleteCtl.Handle())
}
