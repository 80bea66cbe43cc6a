package bot

import (
	"log/slog"

	tele "gopkg.in/telebot.v4"

	"anonbot/internal/logger"
	"anonbot/internal/session"
	"anonbot/internal/telegram/helpers"
)

// onStart handles /start, including the deep-link entry points carried
// by buttons on published posts.
func (b *Bot) onStart(c tele.Context) error {
	ctx := helpers.BuildContext(c)
	user := c.Sender()
	if user == nil {
		return nil
	}
	b.upsertUser(c)

	if param, ok := ParseStartParam(c.Message().Payload); ok {
		if !b.gate.IsMember(ctx, user.ID) {
			return helpers.SendHTML(c, textNeedMembership)
		}
		switch p := param.(type) {
		case ViewPostParam:
			return b.sendCommentsView(c, p.PostID)
		case CommentPostParam:
			b.sessions.SetTargetPost(user.ID, p.PostID)
			b.sessions.SetState(user.ID, session.StateAwaitingCommentText)
			return helpers.SendHTML(c, commentPromptText(p.PostID), cancelMarkup())
		}
	}

	welcome := welcomeText(user.FirstName)
	if b.gate.IsMember(ctx, user.ID) {
		return helpers.SendHTML(c, welcome+textAlreadyMember, mainMenuMarkup())
	}

	link, err := b.tg.CreateInviteLink(tele.ChatID(b.channels.RequiredJoinChannel), &tele.ChatInviteLink{
		JoinRequest: true,
	})
	if err != nil {
		logger.Error(ctx, logger.TG, "invite_link.create_failed",
			slog.Int64("user_id", user.ID),
			slog.String("err", err.Error()),
		)
		return helpers.SendHTML(c, welcome+textInviteLinkFailed)
	}
	return helpers.SendHTML(c, welcome, joinChannelMarkup(link.InviteLink))
}

// onJoinRequest auto-approves join requests for the required channel and
// greets the new member in their private chat.
func (b *Bot) onJoinRequest(c tele.Context) error {
	ctx := helpers.BuildContext(c)
	user := c.Sender()
	chat := c.Chat()
	if user == nil || chat == nil {
		return nil
	}

	if err := b.tg.ApproveJoinRequest(chat, user); err != nil {
		logger.Error(ctx, logger.TG, "join_request.approve_failed",
			slog.Int64("user_id", user.ID),
			slog.Int64("chat_id", chat.ID),
			slog.String("err", err.Error()),
		)
		return nil
	}
	b.upsertUser(c)
	logger.Info(ctx, logger.TG, "join_request.approved",
		slog.Int64("user_id", user.ID),
		slog.Int64("chat_id", chat.ID),
	)

	_, err := b.tg.Send(user, textJoinApproved, &tele.SendOptions{
		ParseMode:   tele.ModeHTML,
		ReplyMarkup: mainMenuMarkup(),
	})
	if err != nil {
		logger.Warn(ctx, logger.TG, "join_request.greet_failed",
			slog.Int64("user_id", user.ID),
			slog.String("err", err.Error()),
		)
	}
	return nil
}

// upsertUser creates or refreshes the sender's user row. Storage errors
// are logged and never block the interaction.
func (b *Bot) upsertUser(c tele.Context) {
	ctx := helpers.BuildContext(c)
	user := c.Sender()
	if user == nil {
		return
	}
	var username *string
	if user.Username != "" {
		username = &user.Username
	}
	if err := b.store.UpsertUser(ctx, user.ID, username, user.FirstName); err != nil {
		logger.Warn(ctx, logger.DB, "user.upsert_failed",
			slog.Int64("user_id", user.ID),
			slog.String("err", err.Error()),
		)
	}
}
