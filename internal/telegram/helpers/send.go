package helpers

import (
	tele "gopkg.in/telebot.v4"
)

// SendHTML sends a message with HTML parse mode and optional reply markup.
func SendHTML(c tele.Context, text string, markup ...*tele.ReplyMarkup) error {
	return c.Send(text, htmlOpts(markup))
}

// EditHTML edits the current message with HTML parse mode and optional
// reply markup.
func EditHTML(c tele.Context, text string, markup ...*tele.ReplyMarkup) error {
	return c.Edit(text, htmlOpts(markup))
}

// EditOrSendHTML tries to edit the message or sends a new one if edit is
// not possible for the current update.
func EditOrSendHTML(c tele.Context, text string, markup ...*tele.ReplyMarkup) error {
	return c.EditOrSend(text, htmlOpts(markup))
}

// RespondAlert answers a callback with a popup alert visible only to the
// acting user.
func RespondAlert(c tele.Context, text string) error {
	return c.Respond(&tele.CallbackResponse{Text: text, ShowAlert: true})
}

func htmlOpts(markup []*tele.ReplyMarkup) *tele.SendOptions {
	var rm *tele.ReplyMarkup
	if len(markup) > 0 {
		rm = markup[0]
	}
	return &tele.SendOptions{ParseMode: tele.ModeHTML, ReplyMarkup: rm}
}
