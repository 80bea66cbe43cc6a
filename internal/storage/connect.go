package storage

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"anonbot/internal/logger"
)

// Connect opens the SQLite database, creating the parent directory if
// needed, and verifies connectivity.
func Connect(cfg Config) (*sqlx.DB, error) {
	dir := filepath.Dir(cfg.Path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000", cfg.Path)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	start := time.Now()
	db, err := sqlx.ConnectContext(ctx, "sqlite3", dsn)
	took := time.Since(start)
	if err != nil {
		logger.DB.Error("db connect failed",
			slog.String("event", "db.connect"),
			slog.String("driver", "sqlite3"),
			slog.String("path", cfg.Path),
			slog.Duration("duration", logger.RoundMS(took)),
			slog.String("err", err.Error()),
		)
		return nil, fmt.Errorf("db connect: %w", err)
	}

	// SQLite allows a single writer; keep the pool at one connection to
	// avoid SQLITE_BUSY churn under concurrent handlers.
	db.SetMaxOpenConns(1)

	logger.DB.Info("db connected",
		slog.String("event", "db.connect"),
		slog.String("driver", "sqlite3"),
		slog.String("path", cfg.Path),
		slog.Duration("duration", logger.RoundMS(took)),
	)

	return db, nil
}
