// Package app assembles the application: configuration, logging,
// storage, services, the Telegram surface, and the background jobs.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"anonbot/internal/bot"
	"anonbot/internal/config"
	"anonbot/internal/gate"
	"anonbot/internal/logger"
	"anonbot/internal/moderation"
	"anonbot/internal/posting"
	"anonbot/internal/session"
	"anonbot/internal/storage"
	"anonbot/internal/telegram"
	"anonbot/internal/telegram/middleware"
)

// Run boots the full application and blocks until ctx is done or a fatal
// error occurs.
func Run(ctx context.Context, cfg *config.Config) error {
	if err := logger.Init(cfg.Logging); err != nil {
		return fmt.Errorf("app: logger init failed: %w", err)
	}
	defer func() {
		if err := logger.Shutdown(); err != nil {
			logger.L.Error("logger shutdown failed", slog.String("err", err.Error()))
		}
	}()

	db, err := storage.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("app: database initialization failed: %w", err)
	}
	if err := storage.RunMigrations(cfg.Database); err != nil {
		_ = db.Close()
		return fmt.Errorf("app: migrations failed: %w", err)
	}
	store := storage.New(db, cfg.Database)
	defer store.Close()

	tg, err := telegram.NewBot(cfg.Telegram.Token, telegram.PollerOptions{
		RunMode:                cfg.Telegram.RunMode,
		LongPollTimeoutSeconds: cfg.Telegram.LongPollTimeoutSeconds,
		Webhook: telegram.WebhookOptions{
			Listen: cfg.Webhook.Listen,
			Port:   cfg.Webhook.Port,
			URL:    cfg.Webhook.URL,
		},
	})
	if err != nil {
		return err
	}

	sessions := session.NewManager(time.Duration(cfg.Session.TTLMinutes) * time.Minute)
	memberGate := gate.New(tg, cfg.Channels.RequiredJoinChannel)
	posts := posting.NewService(store)
	mod := moderation.NewService(
		store,
		bot.NewChannelPublisher(tg, cfg.Channels.ChannelID),
		bot.NewUserNotifier(tg),
		cfg.Channels.AdminIDs,
	)
	handlers := bot.New(tg, store, sessions, memberGate, posts, mod, cfg.Channels)

	go sessions.RunJanitor(ctx, time.Duration(cfg.Session.SweepIntervalMinutes)*time.Minute)

	maint, err := startMaintenance(ctx, store, cfg.Maintenance)
	if err != nil {
		return err
	}
	defer maint.Stop()

	middlewares := []telegram.Middleware{
		{Name: "recover", Use: middleware.Recover},
		{Name: "logging", Use: middleware.Logging},
		{Name: "serialize", Use: middleware.SerializePerUser()},
		{Name: "rate_limit", Use: middleware.RateLimit(middleware.RateLimitOptions{
			Interval: time.Duration(cfg.RateLimit.IntervalMS) * time.Millisecond,
		})},
	}

	telegram.InitBotCommands(tg, handlers.Registry())
	return telegram.Run(ctx, tg, middlewares, handlers.Routes())
}
