package app

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/comments-service/internal/config"
	"github.com/iliyamo/comments-service/internal/handler"
	"github.com/iliyamo/comments-service/internal/middleware"
	"github.com/iliyamo/comments-service/internal/repository"
	"github.com/iliyamo/comments-service/internal/router"
)

// NewServer builds the comments service.  rdb may be nil, in which case
// the rate limiter passes every request through; pub may be nil to disable
// lookup-miss events.
func NewServer(cfg config.Config, rl config.RateLimitConfig, rdb *redis.Client, pub handler.EventPublisher) *echo.Echo {
	e := NewEcho(cfg.LogLevel)
	router.RegisterRoutes(e)

	h := &handler.CommentHandler{Repo: repository.NewCommentRepo()}
	if pub != nil {
		h.Events = pub
	}
	router.RegisterComments(e, h, middleware.NewTokenBucket(rl, rdb))
	return e
}
