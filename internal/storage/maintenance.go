package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"anonbot/internal/logger"
)

// PurgeRejectedPosts deletes rejected posts older than the given number
// of days and returns the number of rows removed.
func (s *Store) PurgeRejectedPosts(ctx context.Context, days int) (int64, error) {
	res, err := s.db.ExecContext(ctx, `
		DELETE FROM posts
		WHERE status = ?
		  AND created_at < datetime('now', '-' || ? || ' days')`,
		StatusRejected, days,
	)
	if err != nil {
		return 0, fmt.Errorf("purge rejected posts: %w", err)
	}
	deleted, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("purge rejected posts: %w", err)
	}
	logger.Info(ctx, logger.Maint, "purge.done",
		slog.Int64("deleted", deleted),
		slog.Int("older_than_days", days),
	)
	return deleted, nil
}

// Backup copies the database file into dir with a timestamped name and
// returns the backup path.
func (s *Store) Backup(ctx context.Context, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create backup dir: %w", err)
	}

	// Flush WAL pages into the main file so the copy is consistent.
	if _, err := s.db.ExecContext(ctx, `PRAGMA wal_checkpoint(TRUNCATE)`); err != nil {
		logger.Warn(ctx, logger.Maint, "backup.checkpoint_failed",
			slog.String("err", err.Error()),
		)
	}

	name := fmt.Sprintf("%s.%s", filepath.Base(s.path), time.Now().Format("20060102-150405"))
	dst := filepath.Join(dir, name)

	src, err := os.Open(s.path)
	if err != nil {
		return "", fmt.Errorf("open database file: %w", err)
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("create backup file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		_ = os.Remove(dst)
		return "", fmt.Errorf("copy database file: %w", err)
	}
	if err := out.Sync(); err != nil {
		return "", fmt.Errorf("sync backup file: %w", err)
	}

	logger.Info(ctx, logger.Maint, "backup.done", slog.String("path", dst))
	return dst, nil
}
