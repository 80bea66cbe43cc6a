package storage

import (
	"errors"
	"time"
)

var (
	// ErrNotFound indicates a single-row lookup matched nothing. List
	// operations return empty results instead.
	ErrNotFound = errors.New("storage: not found")
	// ErrNotPending indicates a moderation transition was attempted on a
	// post whose status is no longer pending.
	ErrNotPending = errors.New("storage: post is not pending")
)

// Status is the moderation state of a post. Transitions are
// one-directional: pending -> approved or pending -> rejected.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// User is a bot user, created or refreshed on every interaction.
type User struct {
	ID         int64     `db:"user_id"`
	Username   *string   `db:"username"`
	FirstName  string    `db:"first_name"`
	CreatedAt  time.Time `db:"created_at"`
	LastActive time.Time `db:"last_active"`
}

// Post is an anonymous submission awaiting or past moderation.
type Post struct {
	ID               int64     `db:"post_id"`
	UserID           int64     `db:"user_id"`
	Text             string    `db:"text"`
	ImageFileID      *string   `db:"image_file_id"`
	Status           Status    `db:"status"`
	ChannelMessageID *int64    `db:"channel_message_id"`
	CreatedAt        time.Time `db:"created_at"`
	UpdatedAt        time.Time `db:"updated_at"`
}

// PostWithComments is a post joined with its comment count.
type PostWithComments struct {
	Post
	CommentCount int `db:"comment_count"`
}

// Comment is an anonymous comment attached to a post.
type Comment struct {
	ID        int64     `db:"comment_id"`
	PostID    int64     `db:"post_id"`
	UserID    int64     `db:"user_id"`
	Text      string    `db:"text"`
	CreatedAt time.Time `db:"created_at"`
}

// UserStats aggregates per-user posting activity.
type UserStats struct {
	TotalPosts    int `db:"total_posts"`
	ApprovedPosts int `db:"approved_posts"`
	RejectedPosts int `db:"rejected_posts"`
	PendingPosts  int `db:"pending_posts"`
	TotalComments int `db:"total_comments"`
}

// GlobalStats aggregates bot-wide activity.
type GlobalStats struct {
	TotalUsers    int `db:"total_users"`
	TotalPosts    int `db:"total_posts"`
	ApprovedPosts int `db:"approved_posts"`
	RejectedPosts int `db:"rejected_posts"`
	PendingPosts  int `db:"pending_posts"`
	TotalComments int `db:"total_comments"`
}
