// Package repository defines error types returned by the data access layer.
// Handlers compare against these sentinels with errors.Is and translate
// them into HTTP responses.
package repository

import "errors"

// ErrCommentNotFound is returned when no comment carries the requested id.
// Handlers should translate this into an HTTP 404 response.
var ErrCommentNotFound = errors.New("comment not found")
