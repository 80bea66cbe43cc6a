package telegram

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	tele "gopkg.in/telebot.v4"

	"anonbot/internal/logger"
)

// Middleware describes a global bot middleware to be registered via bot.Use.
type Middleware struct {
	Name string
	Use  tele.MiddlewareFunc
}

// Route declares a single bot handler bound to an endpoint. Endpoint
// values are passed directly to tele.Bot.Handle. Middlewares apply to
// this route only, after the global chain.
type Route struct {
	Endpoint    any
	Handler     tele.HandlerFunc
	Middlewares []tele.MiddlewareFunc
}

// NewBot builds the telebot instance with the tuned HTTP client and the
// poller selected by run mode.
func NewBot(token string, poller PollerOptions) (*tele.Bot, error) {
	bot, err := tele.NewBot(tele.Settings{
		Token:  token,
		Poller: BuildPoller(poller),
		Client: BuildHTTPClient(),
		OnError: func(err error, c tele.Context) {
			attrs := []slog.Attr{slog.String("err", logger.SanitizeLimit(err.Error(), 256))}
			if c != nil && c.Sender() != nil {
				attrs = append(attrs, slog.Int64("user_id", c.Sender().ID))
			}
			logger.TG.LogAttrs(context.Background(), slog.LevelError, "handler.error", attrs...)
		},
	})
	if err != nil {
		return nil, fmt.Errorf("telegram: bot initialization failed: %w", err)
	}
	return bot, nil
}

// Run wires middlewares and routes into the bot and runs it until the
// provided context is done.
func Run(ctx context.Context, bot *tele.Bot, middlewares []Middleware, routes []Route) error {
	if ctx == nil {
		ctx = context.Background()
	}

	for _, mw := range middlewares {
		if mw.Use != nil {
			bot.Use(mw.Use)
		}
	}
	for _, route := range routes {
		if route.Endpoint != nil && route.Handler != nil {
			bot.Handle(route.Endpoint, route.Handler, route.Middlewares...)
		}
	}

	logger.TG.Info("bot starting",
		slog.String("event", "start"),
		slog.String("username", bot.Me.Username),
		slog.Int("routes", len(routes)),
	)

	runDone := make(chan struct{})
	go func() {
		bot.Start()
		close(runDone)
	}()

	select {
	case <-ctx.Done():
		bot.Stop()
		<-runDone
		if errors.Is(ctx.Err(), context.Canceled) {
			return nil
		}
		return ctx.Err()
	case <-runDone:
		return nil
	}
}
