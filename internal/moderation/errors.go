package moderation

import "errors"

var (
	// ErrNotAdmin indicates the acting user is not in the configured
	// administrator set. No state is mutated.
	ErrNotAdmin = errors.New("moderation: user is not an administrator")
	// ErrPostNotFound indicates the target post does not exist.
	ErrPostNotFound = errors.New("moderation: post not found")
	// ErrAlreadyModerated indicates the post already left the pending
	// state; double moderation is rejected, not a no-op.
	ErrAlreadyModerated = errors.New("moderation: post already processed")
)
