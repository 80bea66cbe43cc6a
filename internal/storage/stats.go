package storage

import (
	"context"
	"fmt"
)

// UserStatsFor aggregates post counts by status and the comment total for
// a single user.
func (s *Store) UserStatsFor(ctx context.Context, userID int64) (*UserStats, error) {
	var stats UserStats
	err := s.db.GetContext(ctx, &stats, `
		SELECT
			COUNT(*) AS total_posts,
			COALESCE(SUM(CASE WHEN status = 'approved' THEN 1 ELSE 0 END), 0) AS approved_posts,
			COALESCE(SUM(CASE WHEN status = 'rejected' THEN 1 ELSE 0 END), 0) AS rejected_posts,
			COALESCE(SUM(CASE WHEN status = 'pending' THEN 1 ELSE 0 END), 0) AS pending_posts
		FROM posts
		WHERE user_id = ?`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("user stats for %d: %w", userID, err)
	}
	err = s.db.GetContext(ctx, &stats.TotalComments,
		`SELECT COUNT(*) FROM comments WHERE user_id = ?`, userID)
	if err != nil {
		return nil, fmt.Errorf("user comment count for %d: %w", userID, err)
	}
	return &stats, nil
}

// GlobalStatsAll aggregates bot-wide user, post, and comment counts.
func (s *Store) GlobalStatsAll(ctx context.Context) (*GlobalStats, error) {
	var stats GlobalStats
	err := s.db.GetContext(ctx, &stats, `
		SELECT
			COUNT(*) AS total_posts,
			COALESCE(SUM(CASE WHEN status = 'approved' THEN 1 ELSE 0 END), 0) AS approved_posts,
			COALESCE(SUM(CASE WHEN status = 'rejected' THEN 1 ELSE 0 END), 0) AS rejected_posts,
			COALESCE(SUM(CASE WHEN status = 'pending' THEN 1 ELSE 0 END), 0) AS pending_posts
		FROM posts`)
	if err != nil {
		return nil, fmt.Errorf("global post stats: %w", err)
	}
	if err := s.db.GetContext(ctx, &stats.TotalUsers, `SELECT COUNT(*) FROM users`); err != nil {
		return nil, fmt.Errorf("global user count: %w", err)
	}
	if err := s.db.GetContext(ctx, &stats.TotalComments, `SELECT COUNT(*) FROM comments`); err != nil {
		return nil, fmt.Errorf("global comment count: %w", err)
	}
	return &stats, nil
}
