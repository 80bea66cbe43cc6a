package bot

import (
	"strings"

	tele "gopkg.in/telebot.v4"

	"anonbot/internal/session"
	"anonbot/internal/telegram/helpers"
)

// onText routes free-form text by dialogue state. Command-looking text
// never feeds a dialogue; registered commands have their own handlers
// and anything else starting with "/" is dropped.
func (b *Bot) onText(c tele.Context) error {
	user := c.Sender()
	if user == nil {
		return nil
	}
	text := c.Text()
	if strings.HasPrefix(text, "/") {
		return nil
	}

	switch b.sessions.State(user.ID) {
	case session.StateAwaitingPostText:
		return b.submitPost(c, text)
	case session.StateAwaitingCommentText:
		return b.submitComment(c, text)
	case session.StateAwaitingPostImage:
		// Text during the image step re-prompts instead of being taken
		// as the post body.
		return helpers.SendHTML(c, textStepImage, skipImageMarkup())
	default:
		return nil
	}
}
