// Package session tracks per-user dialogue state in memory. Sessions are
// ephemeral: they are cleared on completion or cancellation, expire after
// a TTL when abandoned, and are not persisted across restarts.
package session

import "time"

// State identifies a finite-state-machine step in a user dialogue.
type State string

const (
	// StateIdle indicates there is no active dialogue with the user.
	StateIdle State = "idle"
	// StateAwaitingPostImage waits for an optional post image.
	StateAwaitingPostImage State = "awaiting_post_image"
	// StateAwaitingPostText waits for the mandatory post body.
	StateAwaitingPostText State = "awaiting_post_text"
	// StateAwaitingCommentText waits for a comment body.
	StateAwaitingCommentText State = "awaiting_comment_text"
)

// Session stores the dialogue state and partially collected fields for a
// single user.
type Session struct {
	State        State
	ImageFileID  string
	TargetPostID int64
	UpdatedAt    time.Time
}
