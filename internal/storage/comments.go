package storage

import (
	"context"
	"fmt"
	"log/slog"

	"anonbot/internal/logger"
)

// CreateComment inserts a comment and returns its id.
func (s *Store) CreateComment(ctx context.Context, postID, userID int64, text string) (int64, error) {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO comments (post_id, user_id, text)
		VALUES (?, ?, ?)`,
		postID, userID, text,
	)
	if err != nil {
		return 0, fmt.Errorf("create comment on post %d: %w", postID, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("create comment id: %w", err)
	}
	logger.Info(ctx, logger.DB, "comment.created",
		slog.Int64("comment_id", id),
		slog.Int64("post_id", postID),
	)
	return id, nil
}

// ListComments returns all comments for a post, oldest first.
func (s *Store) ListComments(ctx context.Context, postID int64) ([]Comment, error) {
	comments := []Comment{}
	err := s.db.SelectContext(ctx, &comments, `
		SELECT * FROM comments
		WHERE post_id = ?
		ORDER BY created_at ASC`,
		postID,
	)
	if err != nil {
		return nil, fmt.Errorf("list comments for post %d: %w", postID, err)
	}
	return comments, nil
}

// CountComments returns the number of comments on a post.
func (s *Store) CountComments(ctx context.Context, postID int64) (int, error) {
	var count int
	err := s.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM comments WHERE post_id = ?`, postID)
	if err != nil {
		return 0, fmt.Errorf("count comments for post %d: %w", postID, err)
	}
	return count, nil
}

// DeleteComment removes a single comment.
func (s *Store) DeleteComment(ctx context.Context, commentID int64) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM comments WHERE comment_id = ?`, commentID)
	if err != nil {
		return fmt.Errorf("delete comment %d: %w", commentID, err)
	}
	return nil
}
