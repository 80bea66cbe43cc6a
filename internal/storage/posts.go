package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"anonbot/internal/logger"
)

// CreatePost inserts a new pending post and returns its id.
func (s *Store) CreatePost(ctx context.Context, userID int64, text string, imageFileID *string) (int64, error) {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO posts (user_id, text, image_file_id)
		VALUES (?, ?, ?)`,
		userID, text, imageFileID,
	)
	if err != nil {
		return 0, fmt.Errorf("create post: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("create post id: %w", err)
	}
	logger.Info(ctx, logger.DB, "post.created",
		slog.Int64("post_id", id),
		slog.Int64("user_id", userID),
	)
	return id, nil
}

// GetPost returns a post by id, or ErrNotFound.
func (s *Store) GetPost(ctx context.Context, postID int64) (*Post, error) {
	var p Post
	err := s.db.GetContext(ctx, &p, `SELECT * FROM posts WHERE post_id = ?`, postID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get post %d: %w", postID, err)
	}
	return &p, nil
}

// UpdatePostStatus transitions a pending post to the given status,
// optionally recording the published channel message id. The update is
// conditional on the current status being pending, which enforces the
// one-directional transition even when two moderators race: the loser
// gets ErrNotPending.
func (s *Store) UpdatePostStatus(ctx context.Context, postID int64, status Status, channelMessageID *int64) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE posts
		SET status = ?,
		    channel_message_id = COALESCE(?, channel_message_id),
		    updated_at = CURRENT_TIMESTAMP
		WHERE post_id = ? AND status = ?`,
		status, channelMessageID, postID, StatusPending,
	)
	if err != nil {
		return fmt.Errorf("update post %d status: %w", postID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update post %d status: %w", postID, err)
	}
	if affected == 0 {
		if _, getErr := s.GetPost(ctx, postID); getErr != nil {
			return getErr
		}
		return ErrNotPending
	}
	logger.Info(ctx, logger.DB, "post.status_updated",
		slog.Int64("post_id", postID),
		slog.String("post_status", string(status)),
	)
	return nil
}

// ListPostsByUser returns the most recent posts of a user.
func (s *Store) ListPostsByUser(ctx context.Context, userID int64, limit int) ([]Post, error) {
	posts := []Post{}
	err := s.db.SelectContext(ctx, &posts, `
		SELECT * FROM posts
		WHERE user_id = ?
		ORDER BY created_at DESC
		LIMIT ?`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list posts by user %d: %w", userID, err)
	}
	return posts, nil
}

// ListPostsByStatus returns the most recent posts with the given status.
func (s *Store) ListPostsByStatus(ctx context.Context, status Status, limit int) ([]Post, error) {
	posts := []Post{}
	err := s.db.SelectContext(ctx, &posts, `
		SELECT * FROM posts
		WHERE status = ?
		ORDER BY created_at DESC
		LIMIT ?`,
		status, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list posts by status %s: %w", status, err)
	}
	return posts, nil
}

// SearchPosts performs a substring match over approved posts only.
func (s *Store) SearchPosts(ctx context.Context, query string, limit int) ([]Post, error) {
	posts := []Post{}
	err := s.db.SelectContext(ctx, &posts, `
		SELECT * FROM posts
		WHERE status = ? AND text LIKE '%' || ? || '%'
		ORDER BY created_at DESC
		LIMIT ?`,
		StatusApproved, query, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("search posts: %w", err)
	}
	return posts, nil
}

// ListRecentApproved returns recent approved posts with their comment counts.
func (s *Store) ListRecentApproved(ctx context.Context, limit int) ([]PostWithComments, error) {
	posts := []PostWithComments{}
	err := s.db.SelectContext(ctx, &posts, `
		SELECT p.*,
		       (SELECT COUNT(*) FROM comments c WHERE c.post_id = p.post_id) AS comment_count
		FROM posts p
		WHERE status = ?
		ORDER BY created_at DESC
		LIMIT ?`,
		StatusApproved, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list recent approved: %w", err)
	}
	return posts, nil
}

// DeletePost removes a post and all of its comments in one transaction.
func (s *Store) DeletePost(ctx context.Context, postID int64) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("delete post %d: %w", postID, err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, `DELETE FROM comments WHERE post_id = ?`, postID); err != nil {
		return fmt.Errorf("delete post %d comments: %w", postID, err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM posts WHERE post_id = ?`, postID); err != nil {
		return fmt.Errorf("delete post %d: %w", postID, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("delete post %d: %w", postID, err)
	}
	logger.Info(ctx, logger.DB, "post.deleted", slog.Int64("post_id", postID))
	return nil
}
