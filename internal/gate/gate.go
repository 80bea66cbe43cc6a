// Package gate enforces the channel-membership precondition applied
// before every user-facing content action.
package gate

import (
	"context"
	"log/slog"

	tele "gopkg.in/telebot.v4"

	"anonbot/internal/logger"
)

// MemberClient queries membership status from the chat backend.
// *tele.Bot satisfies it.
type MemberClient interface {
	ChatMemberOf(chat, user tele.Recipient) (*tele.ChatMember, error)
}

// Gate checks whether a user belongs to the required channel.
type Gate struct {
	client  MemberClient
	channel tele.ChatID
}

// New builds a Gate over the given client and required channel id.
func New(client MemberClient, channelID int64) *Gate {
	return &Gate{client: client, channel: tele.ChatID(channelID)}
}

// IsMember reports whether the user is a member, administrator, or owner
// of the required channel. Any query failure is logged and treated as
// non-membership; the gate fails closed and never propagates the error.
func (g *Gate) IsMember(ctx context.Context, userID int64) bool {
	member, err := g.client.ChatMemberOf(g.channel, &tele.User{ID: userID})
	if err != nil {
		logger.Warn(ctx, logger.Gate, "membership.check_failed",
			slog.Int64("user_id", userID),
			slog.String("err", err.Error()),
		)
		return false
	}

	switch member.Role {
	case tele.Creator, tele.Administrator, tele.Member:
		return true
	default:
		logger.Debug(ctx, logger.Gate, "membership.denied",
			slog.Int64("user_id", userID),
			slog.String("role", string(member.Role)),
		)
		return false
	}
}
