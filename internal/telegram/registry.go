package telegram

import (
	"log/slog"
	"sort"

	tele "gopkg.in/telebot.v4"

	"anonbot/internal/logger"
)

// Command represents a bot command with its handler and metadata.
type Command struct {
	Handler     tele.HandlerFunc
	Description string
	AdminOnly   bool
	Hidden      bool
}

// Registry holds the bot command table.
type Registry struct {
	commands map[string]Command
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{commands: make(map[string]Command)}
}

// RegisterCommand adds a new command. Invalid or duplicate registrations
// are logged and skipped.
func (r *Registry) RegisterCommand(name string, cmd Command) {
	if name == "" || name[0] != '/' || cmd.Handler == nil || cmd.Description == "" {
		logger.TG.Warn("register.command.skip", slog.String("name", name))
		return
	}
	if _, exists := r.commands[name]; exists {
		logger.TG.Warn("register.command.duplicate", slog.String("name", name))
		return
	}
	r.commands[name] = cmd
}

// Commands returns all registered commands.
func (r *Registry) Commands() map[string]Command {
	return r.commands
}

// ListCommands returns a sorted slice of tele.Command, optionally
// filtering out hidden and admin-only commands.
func (r *Registry) ListCommands(visibleOnly bool) []tele.Command {
	var list []tele.Command
	for name, meta := range r.commands {
		if visibleOnly && (meta.Hidden || meta.AdminOnly) {
			continue
		}
		list = append(list, tele.Command{Text: name, Description: meta.Description})
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Text < list[j].Text })
	return list
}

// InitBotCommands sets the Telegram command menu from the registry.
func InitBotCommands(bot *tele.Bot, reg *Registry) {
	if err := bot.SetCommands(reg.ListCommands(true)); err != nil {
		logger.TG.Error("register.commands.set_failed", slog.String("err", err.Error()))
	}
}
