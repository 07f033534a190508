// Package repository contains data access logic separated from HTTP handlers.
// This file holds the comment table and the lookups the API needs.  The
// table is compiled into the binary and never written after init, so the
// repository is safe for concurrent use without locking.
package repository

import (
	"context"

	"github.com/iliyamo/comments-service/internal/model"
)

// comments is the canonical dataset, in declaration order.
var comments = []model.Comment{
	{ID: 1, Text: "Great post!", PostID: 1, UserID: 1},
	{ID: 2, Text: "Very informative", PostID: 1, UserID: 2},
	{ID: 3, Text: "Thanks for sharing", PostID: 2, UserID: 3},
	{ID: 4, Text: "Looking forward to more content", PostID: 3, UserID: 1},
}

// CommentRepo serves comments from the read-only table above.
type CommentRepo struct {
	rows []model.Comment // rows is the backing table; never modified
}

// NewCommentRepo returns a repository over the built-in comment table.
func NewCommentRepo() *CommentRepo {
	return &CommentRepo{rows: comments}
}

// ListAll returns every comment in declaration order.  The returned slice
// is a copy; callers may modify it freely.
func (r *CommentRepo) ListAll(ctx context.Context) ([]model.Comment, error) {
	out := make([]model.Comment, len(r.rows))
	copy(out, r.rows)
	return out, nil
}

// GetByID returns the first comment whose id matches.  It returns
// ErrCommentNotFound if no row is found.
func (r *CommentRepo) GetByID(ctx context.Context, id int) (*model.Comment, error) {
	for _, c := range r.rows {
		if c.ID == id {
			found := c
			return &found, nil
		}
	}
	return nil, ErrCommentNotFound
}

// ListByPost returns the comments attached to postID, preserving table
// order.  An unknown post yields an empty, non-nil slice.
func (r *CommentRepo) ListByPost(ctx context.Context, postID int) ([]model.Comment, error) {
	out := make([]model.Comment, 0, len(r.rows))
	for _, c := range r.rows {
		if c.PostID == postID {
			out = append(out, c)
		}
	}
	return out, nil
}
