// Package moderation implements the approve/reject workflow on pending
// posts: admin gating, the one-directional status transition, channel
// publication, and best-effort author notification.
package moderation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"anonbot/internal/logger"
	"anonbot/internal/storage"
)

// Store is the storage surface the workflow needs.
type Store interface {
	GetPost(ctx context.Context, postID int64) (*storage.Post, error)
	UpdatePostStatus(ctx context.Context, postID int64, status storage.Status, channelMessageID *int64) error
}

// Publisher posts approved content to the public channel and returns the
// published message id.
type Publisher interface {
	Publish(ctx context.Context, post *storage.Post) (int64, error)
}

// Notifier informs an author about a moderation decision. Failures are
// best-effort: they are logged and never undo the decision.
type Notifier interface {
	NotifyApproved(ctx context.Context, userID int64) error
	NotifyRejected(ctx context.Context, userID int64) error
}

// Service orchestrates moderation decisions.
type Service struct {
	store     Store
	publisher Publisher
	notifier  Notifier
	admins    map[int64]struct{}
}

// NewService builds a moderation service. adminIDs is the static
// administrator set allowed to decide.
func NewService(store Store, publisher Publisher, notifier Notifier, adminIDs []int64) *Service {
	admins := make(map[int64]struct{}, len(adminIDs))
	for _, id := range adminIDs {
		admins[id] = struct{}{}
	}
	return &Service{
		store:     store,
		publisher: publisher,
		notifier:  notifier,
		admins:    admins,
	}
}

// IsAdmin reports whether the user may moderate.
func (s *Service) IsAdmin(userID int64) bool {
	_, ok := s.admins[userID]
	return ok
}

// Approve publishes a pending post to the channel and marks it approved.
// If publication fails the post stays pending and the error is returned;
// there is no partial state. Author notification is best-effort.
func (s *Service) Approve(ctx context.Context, postID, moderatorID int64) (*storage.Post, error) {
	post, err := s.loadPending(ctx, postID, moderatorID)
	if err != nil {
		return nil, err
	}

	messageID, err := s.publisher.Publish(ctx, post)
	if err != nil {
		logger.Error(ctx, logger.SVCModeration, "approve.publish_failed",
			slog.Int64("post_id", postID),
			slog.String("err", err.Error()),
		)
		return nil, fmt.Errorf("publish post %d: %w", postID, err)
	}

	if err := s.store.UpdatePostStatus(ctx, postID, storage.StatusApproved, &messageID); err != nil {
		if errors.Is(err, storage.ErrNotPending) {
			return nil, ErrAlreadyModerated
		}
		return nil, fmt.Errorf("persist approval of post %d: %w", postID, err)
	}
	post.Status = storage.StatusApproved
	post.ChannelMessageID = &messageID

	logger.Info(ctx, logger.SVCModeration, "post.approved",
		slog.Int64("post_id", postID),
		slog.Int64("moderator_id", moderatorID),
		slog.Int64("channel_message_id", messageID),
	)

	if err := s.notifier.NotifyApproved(ctx, post.UserID); err != nil {
		logger.Warn(ctx, logger.SVCModeration, "approve.notify_failed",
			slog.Int64("post_id", postID),
			slog.String("err", err.Error()),
		)
	}

	return post, nil
}

// Reject marks a pending post rejected. No publication happens; author
// notification is best-effort.
func (s *Service) Reject(ctx context.Context, postID, moderatorID int64) (*storage.Post, error) {
	post, err := s.loadPending(ctx, postID, moderatorID)
	if err != nil {
		return nil, err
	}

	if err := s.store.UpdatePostStatus(ctx, postID, storage.StatusRejected, nil); err != nil {
		if errors.Is(err, storage.ErrNotPending) {
			return nil, ErrAlreadyModerated
		}
		return nil, fmt.Errorf("persist rejection of post %d: %w", postID, err)
	}
	post.Status = storage.StatusRejected

	logger.Info(ctx, logger.SVCModeration, "post.rejected",
		slog.Int64("post_id", postID),
		slog.Int64("moderator_id", moderatorID),
	)

	if err := s.notifier.NotifyRejected(ctx, post.UserID); err != nil {
		logger.Warn(ctx, logger.SVCModeration, "reject.notify_failed",
			slog.Int64("post_id", postID),
			slog.String("err", err.Error()),
		)
	}

	return post, nil
}

func (s *Service) loadPending(ctx context.Context, postID, moderatorID int64) (*storage.Post, error) {
	if !s.IsAdmin(moderatorID) {
		return nil, ErrNotAdmin
	}

	post, err := s.store.GetPost(ctx, postID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load post %d: %w", postID, err)
	}
	if post.Status != storage.StatusPending {
		return nil, ErrAlreadyModerated
	}
	return post, nil
}
