// Package queue defines message payloads exchanged over the message broker.
package queue

// NotFoundQueueName is the durable queue lookup-miss events are routed to.
const NotFoundQueueName = "comments.not_found"

// CommentNotFoundEvent is published when a client asks for a comment id
// that does not exist.  It carries enough context for a consumer to log
// or alert without calling back into the service.
type CommentNotFoundEvent struct {
	CommentID  int    `json:"comment_id"`
	Path       string `json:"path"`
	RemoteIP   string `json:"remote_ip"`
	OccurredAt string `json:"occurred_at"`
}
