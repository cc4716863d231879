package v1

import (
	"time"

	cacheport "go-parley/internal/infrastructure/cache/port"
	"go-parley/internal/infrastructure/identity"
	httpHandler "go-parley/internal/pkg/messaging/presentation/http"
	repository "go-parley/internal/pkg/messaging/persistence/repository/port"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts all version 1 API routes under /api/v1. Every route
// sits behind the identity middleware; handlers read the acting user from
// the request context, never from the request body.
func RegisterRoutes(r *gin.Engine, repo repository.ConversationRepository, cache cacheport.Cache, cacheTTL time.Duration, jwtSecret string) {
	v1 := r.Group("/api/v1")
	v1.Use(identity.Required(jwtSecret))
	httpHandler.RegisterRoutes(v1, repo, cache, cacheTTL)
}
