package middleware

import (
	"log/slog"

	tele "gopkg.in/telebot.v4"

	"anonbot/internal/logger"
)

// AdminOnly restricts a handler to the configured administrator ids.
// Non-admin updates are dropped silently.
func AdminOnly(adminIDs []int64) tele.MiddlewareFunc {
	admins := make(map[int64]struct{}, len(adminIDs))
	for _, id := range adminIDs {
		admins[id] = struct{}{}
	}
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			user := c.Sender()
			if user == nil {
				return nil
			}
			if _, ok := admins[user.ID]; !ok {
				logger.TG.Warn("admin check failed",
					slog.String("event", "tg.admin_denied"),
					slog.Int64("user_id", user.ID),
				)
				return nil
			}
			return next(c)
		}
	}
}
