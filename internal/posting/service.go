// Package posting validates and records anonymous post and comment
// submissions collected by the dialogue flows.
package posting

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"anonbot/internal/logger"
	"anonbot/internal/storage"
)

var (
	// ErrEmptyText indicates a post or comment body was empty or
	// whitespace-only.
	ErrEmptyText = errors.New("posting: text must not be empty")
	// ErrPostNotFound indicates the comment target does not exist.
	ErrPostNotFound = errors.New("posting: post not found")
	// ErrNotCommentable indicates the comment target has not been
	// approved for publication.
	ErrNotCommentable = errors.New("posting: post is not approved")
)

// Store is the storage surface the posting service needs.
type Store interface {
	CreatePost(ctx context.Context, userID int64, text string, imageFileID *string) (int64, error)
	GetPost(ctx context.Context, postID int64) (*storage.Post, error)
	CreateComment(ctx context.Context, postID, userID int64, text string) (int64, error)
}

// Service records submissions after boundary validation.
type Service struct {
	store Store
}

// NewService builds a posting service over the given store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// SubmitPost validates and stores a new pending post. An empty
// imageFileID means the author skipped the image step.
func (s *Service) SubmitPost(ctx context.Context, userID int64, text, imageFileID string) (int64, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, ErrEmptyText
	}

	var image *string
	if imageFileID != "" {
		image = &imageFileID
	}

	id, err := s.store.CreatePost(ctx, userID, text, image)
	if err != nil {
		return 0, fmt.Errorf("submit post: %w", err)
	}
	logger.Info(ctx, logger.SVCPosting, "post.submitted",
		slog.Int64("post_id", id),
		slog.Int64("user_id", userID),
		slog.Bool("has_image", image != nil),
	)
	return id, nil
}

// SubmitComment validates and stores a comment. Comments are accepted
// only on approved posts: unapproved post ids are not meant to circulate
// through deep links.
func (s *Service) SubmitComment(ctx context.Context, userID, postID int64, text string) (int64, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, ErrEmptyText
	}

	post, err := s.store.GetPost(ctx, postID)
	if errors.Is(err, storage.ErrNotFound) {
		return 0, ErrPostNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("submit comment: %w", err)
	}
	if post.Status != storage.StatusApproved {
		return 0, ErrNotCommentable
	}

	id, err := s.store.CreateComment(ctx, postID, userID, text)
	if err != nil {
		return 0, fmt.Errorf("submit comment: %w", err)
	}
	logger.Info(ctx, logger.SVCPosting, "comment.submitted",
		slog.Int64("comment_id", id),
		slog.Int64("post_id", postID),
	)
	return id, nil
}
