package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	cacheadapter "go-parley/internal/infrastructure/cache/adapter"
	cacheport "go-parley/internal/infrastructure/cache/port"
	"go-parley/internal/infrastructure/config"
	"go-parley/internal/infrastructure/database"
	"go-parley/internal/infrastructure/logging"
	"go-parley/internal/pkg/messaging/persistence/repository/adapter"
	repository "go-parley/internal/pkg/messaging/persistence/repository/port"

	v1 "go-parley/cmd/api/router/v1"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fallback := logging.New("info")
		fallback.Fatal().Err(err).Msg("load config")
	}
	log := logging.New(cfg.LogLevel)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	repo, cleanup, err := openStore(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.StoreDriver).Msg("connect store")
	}
	defer cleanup()

	var cache cacheport.Cache
	if cfg.RedisURL != "" {
		redisCache, err := cacheadapter.NewRedisAdapter(cfg.RedisURL)
		if err != nil {
			log.Fatal().Err(err).Msg("connect redis")
		}
		defer redisCache.Close()
		cache = redisCache
	}

	r := gin.Default()

	r.GET("/healthz", func(c *gin.Context) {
		if cache != nil {
			if err := cache.Ping(c.Request.Context()); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "cache": err.Error()})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})

	v1.RegisterRoutes(r, repo, cache, cfg.CacheTTL, cfg.JWTSecret)

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: r}

	runCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info().Str("addr", cfg.HTTPAddr).Str("driver", cfg.StoreDriver).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server")
		}
	}()

	<-runCtx.Done()
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
}

// openStore connects the conversation store the configuration selects.
func openStore(ctx context.Context, cfg config.Config) (repository.ConversationRepository, func(), error) {
	switch cfg.StoreDriver {
	case config.DriverMongo:
		db, err := database.ConnectMongo(ctx, cfg.MongoURL, cfg.MongoDB)
		if err != nil {
			return nil, nil, err
		}
		repo := adapter.NewMongoConversationRepository(db)
		if err := repo.EnsureIndexes(ctx); err != nil {
			return nil, nil, err
		}
		return repo, func() { _ = db.Client().Disconnect(context.Background()) }, nil
	case config.DriverPostgres:
		pool, err := database.ConnectPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		return adapter.NewPgConversationRepository(pool), pool.Close, nil
	default:
		return adapter.NewMemoryConversationRepository(), func() {}, nil
	}
}
