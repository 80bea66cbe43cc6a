package bot

import (
	"errors"
	"log/slog"

	tele "gopkg.in/telebot.v4"

	"anonbot/internal/logger"
	"anonbot/internal/moderation"
	"anonbot/internal/telegram/helpers"
)

// onApprove publishes a pending post and marks the moderation message.
func (b *Bot) onApprove(c tele.Context, postID int64) error {
	ctx := helpers.BuildContext(c)
	moderator := c.Sender()

	_, err := b.mod.Approve(ctx, postID, moderator.ID)
	switch {
	case errors.Is(err, moderation.ErrNotAdmin):
		return helpers.RespondAlert(c, textNoApproveRight)
	case errors.Is(err, moderation.ErrPostNotFound):
		return helpers.RespondAlert(c, textPostNotFound)
	case errors.Is(err, moderation.ErrAlreadyModerated):
		return helpers.RespondAlert(c, textAlreadyDecided)
	case err != nil:
		return helpers.RespondAlert(c, textPublishFailed)
	}

	b.markModerationMessage(c, approvedByText(moderator.FirstName))
	return c.Respond(&tele.CallbackResponse{Text: textApprovedToast})
}

// onReject declines a pending post and marks the moderation message.
func (b *Bot) onReject(c tele.Context, postID int64) error {
	ctx := helpers.BuildContext(c)
	moderator := c.Sender()

	_, err := b.mod.Reject(ctx, postID, moderator.ID)
	switch {
	case errors.Is(err, moderation.ErrNotAdmin):
		return helpers.RespondAlert(c, textNoRejectRight)
	case errors.Is(err, moderation.ErrPostNotFound):
		return helpers.RespondAlert(c, textPostNotFound)
	case errors.Is(err, moderation.ErrAlreadyModerated):
		return helpers.RespondAlert(c, textAlreadyDecided)
	case err != nil:
		return err
	}

	b.markModerationMessage(c, rejectedByText(moderator.FirstName))
	return c.Respond(&tele.CallbackResponse{Text: textRejectedToast})
}

// markModerationMessage appends the decision line to the message the
// button lived on and drops its keyboard. The decision is already
// persisted; edit failures are only logged.
func (b *Bot) markModerationMessage(c tele.Context, suffix string) {
	ctx := helpers.BuildContext(c)
	msg := c.Message()
	if msg == nil {
		return
	}

	var err error
	if msg.Photo != nil {
		_, err = b.tg.EditCaption(msg, msg.Caption+suffix, tele.ModeHTML)
	} else {
		err = c.Edit(msg.Text+suffix, tele.ModeHTML)
	}
	if err != nil {
		logger.Warn(ctx, logger.TG, "moderation.mark_failed",
			slog.String("err", err.Error()),
		)
	}
}
