package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"anonbot/internal/logger"
)

// UpsertUser inserts a user or refreshes its name and last-active time.
func (s *Store) UpsertUser(ctx context.Context, userID int64, username *string, firstName string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO users (user_id, username, first_name, last_active)
		VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(user_id) DO UPDATE SET
			username = excluded.username,
			first_name = excluded.first_name,
			last_active = CURRENT_TIMESTAMP`,
		userID, username, firstName,
	)
	if err != nil {
		return fmt.Errorf("upsert user %d: %w", userID, err)
	}
	logger.Debug(ctx, logger.DB, "user.upserted", slog.Int64("user_id", userID))
	return nil
}

// GetUser returns a user by id, or ErrNotFound.
func (s *Store) GetUser(ctx context.Context, userID int64) (*User, error) {
	var u User
	err := s.db.GetContext(ctx, &u, `SELECT * FROM users WHERE user_id = ?`, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user %d: %w", userID, err)
	}
	return &u, nil
}

// ListActiveUsers returns users active within the last N days, most
// recent first.
func (s *Store) ListActiveUsers(ctx context.Context, days int) ([]User, error) {
	users := []User{}
	err := s.db.SelectContext(ctx, &users, `
		SELECT * FROM users
		WHERE last_active >= datetime('now', '-' || ? || ' days')
		ORDER BY last_active DESC`,
		days,
	)
	if err != nil {
		return nil, fmt.Errorf("list active users: %w", err)
	}
	return users, nil
}
