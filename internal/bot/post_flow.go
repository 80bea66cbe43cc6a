package bot

import (
	"errors"
	"log/slog"

	tele "gopkg.in/telebot.v4"

	"anonbot/internal/logger"
	"anonbot/internal/posting"
	"anonbot/internal/session"
	"anonbot/internal/telegram/helpers"
)

// onCreatePost starts the two-step post dialogue at the image step.
func (b *Bot) onCreatePost(c tele.Context) error {
	if !b.requireMember(c) {
		return nil
	}
	userID := c.Sender().ID
	b.sessions.Clear(userID)
	b.sessions.SetState(userID, session.StateAwaitingPostImage)
	if err := helpers.EditOrSendHTML(c, textStepImage, skipImageMarkup()); err != nil {
		return err
	}
	return c.Respond(&tele.CallbackResponse{})
}

// onSkipImage advances a waiting dialogue to the text step without an
// image. Pressed outside the image step it only dismisses the spinner.
func (b *Bot) onSkipImage(c tele.Context) error {
	userID := c.Sender().ID
	if b.sessions.State(userID) != session.StateAwaitingPostImage {
		return c.Respond(&tele.CallbackResponse{})
	}
	b.sessions.ClearImage(userID)
	b.sessions.SetState(userID, session.StateAwaitingPostText)
	if err := helpers.EditOrSendHTML(c, textStepText, cancelMarkup()); err != nil {
		return err
	}
	return c.Respond(&tele.CallbackResponse{})
}

// onPhoto accepts the image during the image step. Photos sent in any
// other state are ignored.
func (b *Bot) onPhoto(c tele.Context) error {
	user := c.Sender()
	if user == nil || c.Message() == nil || c.Message().Photo == nil {
		return nil
	}
	if b.sessions.State(user.ID) != session.StateAwaitingPostImage {
		return nil
	}
	b.sessions.SetImage(user.ID, c.Message().Photo.FileID)
	b.sessions.SetState(user.ID, session.StateAwaitingPostText)
	return helpers.SendHTML(c, textImageAccepted, cancelMarkup())
}

// submitPost finishes the post dialogue: it records the pending post and
// forwards it to the moderator group with approve/reject controls.
func (b *Bot) submitPost(c tele.Context, text string) error {
	ctx := helpers.BuildContext(c)
	userID := c.Sender().ID
	sess := b.sessions.Get(userID)

	postID, err := b.posts.SubmitPost(ctx, userID, text, sess.ImageFileID)
	if errors.Is(err, posting.ErrEmptyText) {
		return helpers.SendHTML(c, textStepText, cancelMarkup())
	}
	if err != nil {
		b.sessions.Clear(userID)
		return helpers.SendHTML(c, textPostSendFailed, mainMenuMarkup())
	}
	b.sessions.Clear(userID)

	if err := b.sendToModeration(c, postID, text, sess.ImageFileID); err != nil {
		logger.Error(ctx, logger.TG, "moderation.send_failed",
			slog.Int64("post_id", postID),
			slog.String("err", err.Error()),
		)
		return helpers.SendHTML(c, textPostSendFailed, mainMenuMarkup())
	}
	return helpers.SendHTML(c, textPostAccepted, mainMenuMarkup())
}

func (b *Bot) sendToModeration(c tele.Context, postID int64, text, imageFileID string) error {
	body := moderationText(postID, text)
	opts := &tele.SendOptions{ParseMode: tele.ModeHTML, ReplyMarkup: moderationMarkup(postID)}
	group := tele.ChatID(b.channels.ModeratorGroupID)

	if imageFileID != "" {
		photo := &tele.Photo{File: tele.File{FileID: imageFileID}, Caption: body}
		_, err := b.tg.Send(group, photo, opts)
		return err
	}
	_, err := b.tg.Send(group, body, opts)
	return err
}
