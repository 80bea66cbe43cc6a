package middleware

import (
	"log/slog"
	"time"

	tele "gopkg.in/telebot.v4"

	"anonbot/internal/logger"
	"anonbot/internal/telegram/helpers"
)

// Logging builds the per-update logging context and records a single
// summary line per processed update.
func Logging(next tele.HandlerFunc) tele.HandlerFunc {
	return func(c tele.Context) error {
		start := time.Now()
		ctx := helpers.BuildContext(c)

		err := next(c)

		attrs := []slog.Attr{
			slog.String("status", logger.Status(err)),
			slog.Int64("duration_ms", logger.RoundMS(time.Since(start)).Milliseconds()),
		}
		if user := c.Sender(); user != nil {
			attrs = append(attrs, slog.Int64("user_id", user.ID))
		}
		if cb := c.Callback(); cb != nil {
			attrs = append(attrs, slog.String("payload", logger.SanitizeLimit(cb.Data, 128)))
		} else if t := c.Text(); t != "" {
			attrs = append(attrs, slog.String("payload", logger.SanitizeLimit(t, 128)))
		}
		if err != nil {
			attrs = append(attrs, slog.String("err", logger.SanitizeLimit(err.Error(), 256)))
		}
		logger.Event(ctx, logger.TG, slog.LevelInfo, "update.handled", attrs...)
		return err
	}
}
