// Package bot binds the Telegram surface to the services: dialogue
// handlers, callback routing, moderation controls, and deep links.
package bot

import (
	tele "gopkg.in/telebot.v4"

	"anonbot/internal/config"
	"anonbot/internal/gate"
	"anonbot/internal/moderation"
	"anonbot/internal/posting"
	"anonbot/internal/session"
	"anonbot/internal/storage"
	"anonbot/internal/telegram"
	"anonbot/internal/telegram/middleware"
)

// Bot holds the handler dependencies.
type Bot struct {
	tg       *tele.Bot
	store    *storage.Store
	sessions *session.Manager
	gate     *gate.Gate
	posts    *posting.Service
	mod      *moderation.Service
	channels config.ChannelsConfig
}

// New wires the handler set over the already constructed services.
func New(
	tg *tele.Bot,
	store *storage.Store,
	sessions *session.Manager,
	memberGate *gate.Gate,
	posts *posting.Service,
	mod *moderation.Service,
	channels config.ChannelsConfig,
) *Bot {
	return &Bot{
		tg:       tg,
		store:    store,
		sessions: sessions,
		gate:     memberGate,
		posts:    posts,
		mod:      mod,
		channels: channels,
	}
}

// Registry returns the command table exposed in the Telegram menu.
func (b *Bot) Registry() *telegram.Registry {
	reg := telegram.NewRegistry()
	reg.RegisterCommand("/start", telegram.Command{
		Handler:     b.onStart,
		Description: "Botni ishga tushirish",
	})
	reg.RegisterCommand("/cancel", telegram.Command{
		Handler:     b.onCancelCommand,
		Description: "Joriy jarayonni bekor qilish",
	})
	reg.RegisterCommand("/stats", telegram.Command{
		Handler:     b.onGlobalStats,
		Description: "Bot statistikasi",
		AdminOnly:   true,
	})
	return reg
}

// Routes returns all endpoint bindings, commands included.
func (b *Bot) Routes() []telegram.Route {
	routes := []telegram.Route{
		{Endpoint: tele.OnText, Handler: b.onText},
		{Endpoint: tele.OnPhoto, Handler: b.onPhoto},
		{Endpoint: tele.OnCallback, Handler: b.onCallback},
		{Endpoint: tele.OnChatJoinRequest, Handler: b.onJoinRequest},
	}
	for name, cmd := range b.Registry().Commands() {
		route := telegram.Route{Endpoint: name, Handler: cmd.Handler}
		if cmd.AdminOnly {
			route.Middlewares = append(route.Middlewares, middleware.AdminOnly(b.channels.AdminIDs))
		}
		routes = append(routes, route)
	}
	return routes
}
