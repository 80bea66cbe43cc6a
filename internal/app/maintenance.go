package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/robfig/cron/v3"

	"anonbot/internal/config"
	"anonbot/internal/logger"
	"anonbot/internal/storage"
)

// startMaintenance schedules the rejected-post purge and the database
// file backup. The returned cron must be stopped on shutdown.
func startMaintenance(ctx context.Context, store *storage.Store, cfg config.MaintenanceConfig) (*cron.Cron, error) {
	c := cron.New()

	_, err := c.AddFunc(cfg.PurgeSchedule, func() {
		n, err := store.PurgeRejectedPosts(ctx, cfg.PurgeRejectedAfterDays)
		if err != nil {
			logger.Maint.Error("purge failed",
				slog.String("event", "maintenance.purge_failed"),
				slog.String("err", err.Error()),
			)
			return
		}
		logger.Maint.Info("purge done",
			slog.String("event", "maintenance.purged"),
			slog.Int64("posts", n),
		)
	})
	if err != nil {
		return nil, fmt.Errorf("app: invalid purge schedule %q: %w", cfg.PurgeSchedule, err)
	}

	_, err = c.AddFunc(cfg.BackupSchedule, func() {
		path, err := store.Backup(ctx, cfg.BackupDir)
		if err != nil {
			logger.Maint.Error("backup failed",
				slog.String("event", "maintenance.backup_failed"),
				slog.String("err", err.Error()),
			)
			return
		}
		logger.Maint.Info("backup done",
			slog.String("event", "maintenance.backed_up"),
			slog.String("path", path),
		)
	})
	if err != nil {
		return nil, fmt.Errorf("app: invalid backup schedule %q: %w", cfg.BackupSchedule, err)
	}

	c.Start()
	return c, nil
}
