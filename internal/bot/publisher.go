package bot

import (
	"context"
	"fmt"

	tele "gopkg.in/telebot.v4"

	"anonbot/internal/storage"
)

// ChannelPublisher posts approved content to the public channel. It
// implements moderation.Publisher.
type ChannelPublisher struct {
	tg        *tele.Bot
	channelID int64
}

// NewChannelPublisher builds a publisher targeting the given channel.
func NewChannelPublisher(tg *tele.Bot, channelID int64) *ChannelPublisher {
	return &ChannelPublisher{tg: tg, channelID: channelID}
}

// Publish sends the post to the channel with its deep-link buttons and
// returns the channel message id.
func (p *ChannelPublisher) Publish(_ context.Context, post *storage.Post) (int64, error) {
	body := channelPostText(post.Text)
	markup := channelPostMarkup(post.ID, p.tg.Me.Username)
	opts := &tele.SendOptions{ParseMode: tele.ModeHTML, ReplyMarkup: markup}

	var (
		msg *tele.Message
		err error
	)
	if post.ImageFileID != nil {
		photo := &tele.Photo{File: tele.File{FileID: *post.ImageFileID}, Caption: body}
		msg, err = p.tg.Send(tele.ChatID(p.channelID), photo, opts)
	} else {
		msg, err = p.tg.Send(tele.ChatID(p.channelID), body, opts)
	}
	if err != nil {
		return 0, fmt.Errorf("publish to channel %d: %w", p.channelID, err)
	}
	return int64(msg.ID), nil
}

// UserNotifier delivers moderation outcome messages to post authors. It
// implements moderation.Notifier.
type UserNotifier struct {
	tg *tele.Bot
}

// NewUserNotifier builds a notifier over the bot transport.
func NewUserNotifier(tg *tele.Bot) *UserNotifier {
	return &UserNotifier{tg: tg}
}

// NotifyApproved tells the author their post was published.
func (n *UserNotifier) NotifyApproved(_ context.Context, userID int64) error {
	_, err := n.tg.Send(&tele.User{ID: userID}, textApprovedNotice, tele.ModeHTML)
	return err
}

// NotifyRejected tells the author their post was declined.
func (n *UserNotifier) NotifyRejected(_ context.Context, userID int64) error {
	_, err := n.tg.Send(&tele.User{ID: userID}, textRejectedNotice, tele.ModeHTML)
	return err
}
