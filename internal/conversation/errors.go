package conversation

import "errors"

// Domain errors
var (
	// ErrMissingMessage - turn input carries no user message
	ErrMissingMessage = errors.New("conversation: missing message")
)
