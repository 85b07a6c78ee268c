package chat

import "errors"

var (
	// ErrMalformedRequest means the payload matched none of the accepted
	// request shapes.
	ErrMalformedRequest = errors.New("malformed request")

	// ErrEmptyConversation means the payload was well formed but carried no
	// messages. Callers treat this as "nothing to process", not a failure.
	ErrEmptyConversation = errors.New("empty conversation")

	// ErrNotFound means the referenced chat does not exist.
	ErrNotFound = errors.New("chat not found")

	// ErrForbidden means the chat exists but belongs to a different user.
	ErrForbidden = errors.New("chat belongs to another user")
)
