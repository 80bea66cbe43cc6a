package bot

import (
	"log/slog"

	tele "gopkg.in/telebot.v4"

	"anonbot/internal/logger"
	"anonbot/internal/telegram/helpers"
)

// onCallback decodes the pressed button's payload once and dispatches on
// the resulting action. Unknown payloads are acknowledged and dropped so
// stale buttons never error at the user.
func (b *Bot) onCallback(c tele.Context) error {
	ctx := helpers.BuildContext(c)
	cb := c.Callback()
	if cb == nil || c.Sender() == nil {
		return nil
	}

	action, ok := ParseAction(cb.Data)
	if !ok {
		logger.Warn(ctx, logger.TG, "callback.unknown",
			slog.String("data", logger.SanitizeLimit(cb.Data, 64)),
		)
		return c.Respond(&tele.CallbackResponse{})
	}

	switch a := action.(type) {
	case CreatePostAction:
		return b.onCreatePost(c)
	case SkipImageAction:
		return b.onSkipImage(c)
	case CancelAction:
		return b.onCancel(c)
	case MyStatsAction:
		return b.onMyStats(c)
	case AboutAction:
		return b.onAbout(c)
	case BackToMenuAction:
		return b.onBackToMenu(c)
	case ApproveAction:
		return b.onApprove(c, a.PostID)
	case RejectAction:
		return b.onReject(c, a.PostID)
	case AddCommentAction:
		return b.onAddComment(c, a.PostID)
	case ViewCommentsAction:
		return b.onViewComments(c, a.PostID)
	}
	return nil
}

// requireMember answers a callback with a membership alert when the gate
// denies the sender. Returns true when the caller may proceed.
func (b *Bot) requireMember(c tele.Context) bool {
	ctx := helpers.BuildContext(c)
	if b.gate.IsMember(ctx, c.Sender().ID) {
		return true
	}
	_ = helpers.RespondAlert(c, textNeedMembership)
	return false
}
