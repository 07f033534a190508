// Package handler exposes HTTP handlers for the comments API.  Every
// endpoint is public and read-only.
package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/comments-service/internal/model"
	"github.com/iliyamo/comments-service/internal/queue"
	"github.com/iliyamo/comments-service/internal/repository"
)

// CommentReader is the subset of the repository the handlers rely on.
type CommentReader interface {
	ListAll(ctx context.Context) ([]model.Comment, error)
	GetByID(ctx context.Context, id int) (*model.Comment, error)
	ListByPost(ctx context.Context, postID int) ([]model.Comment, error)
}

// EventPublisher receives a notification for every lookup miss.
type EventPublisher interface {
	PublishCommentNotFound(ctx context.Context, ev queue.CommentNotFoundEvent) error
}

// CommentHandler serves the /comments endpoints.
type CommentHandler struct {
	Repo   CommentReader  // source of comment data
	Events EventPublisher // optional; nil disables lookup-miss events
}

// ListComments returns every comment as a JSON array.
func (h *CommentHandler) ListComments(c echo.Context) error {
	out, err := h.Repo.ListAll(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
	}
	return c.JSON(http.StatusOK, out)
}

// GetComment returns a single comment by its id.  Unknown ids produce a
// 404 with {"error":"Comment not found"}.
func (h *CommentHandler) GetComment(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("comment_id"))
	if errors.Is(err, strconv.ErrRange) {
		// an integer, just not one any comment can carry
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Comment not found"})
	}
	if err != nil {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": "invalid comment_id"})
	}
	cm, err := h.Repo.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrCommentNotFound) {
			h.notFound(c, id)
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Comment not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
	}
	return c.JSON(http.StatusOK, cm)
}

// GetCommentsByPost lists the comments attached to a post.  A post with no
// comments yields an empty array, not an error.
func (h *CommentHandler) GetCommentsByPost(c echo.Context) error {
	postID, err := strconv.Atoi(c.Param("post_id"))
	if errors.Is(err, strconv.ErrRange) {
		return c.JSON(http.StatusOK, []model.Comment{})
	}
	if err != nil {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": "invalid post_id"})
	}
	out, err := h.Repo.ListByPost(c.Request().Context(), postID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
	}
	return c.JSON(http.StatusOK, out)
}

// notFound publishes a lookup-miss event in the background.  The request
// context is not reused because it ends with the response.
func (h *CommentHandler) notFound(c echo.Context, id int) {
	if h.Events == nil {
		return
	}
	ev := queue.CommentNotFoundEvent{
		CommentID:  id,
		Path:       c.Request().URL.Path,
		RemoteIP:   c.RealIP(),
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	}
	logger := c.Logger()
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := h.Events.PublishCommentNotFound(ctx, ev); err != nil {
			logger.Warnf("[events] publish comment_id=%d failed: %v", id, err)
		}
	}()
}
