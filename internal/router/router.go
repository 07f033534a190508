package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/iliyamo/comments-service/internal/handler" // import the handlers that implement the endpoints
)

// RegisterRoutes registers routes that sit outside the rate limiter.
// Currently it exposes only the health check.
func RegisterRoutes(e *echo.Echo) {
	// Load balancers and the gateway poll this; it must never be throttled.
	e.GET("/health", handler.Health)
}

// RegisterComments registers the read-only comment endpoints.  Any
// middleware passed in (rate limiting in production) applies to this group
// only.
func RegisterComments(e *echo.Echo, h *handler.CommentHandler, mw ...echo.MiddlewareFunc) {
	g := e.Group("/comments", mw...)
	// Full listing in declaration order.
	g.GET("", h.ListComments)
	// Comments of one post.  The static "post" segment wins over the
	// :comment_id parameter in Echo's router, so no ordering concerns.
	g.GET("/post/:post_id", h.GetCommentsByPost)
	// Single comment by id.
	g.GET("/:comment_id", h.GetComment)
}
