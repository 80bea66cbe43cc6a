package bot

import (
	tele "gopkg.in/telebot.v4"

	"anonbot/internal/telegram/helpers"
)

// onMyStats replaces the menu with the acting user's posting statistics.
func (b *Bot) onMyStats(c tele.Context) error {
	ctx := helpers.BuildContext(c)

	stats, err := b.store.UserStatsFor(ctx, c.Sender().ID)
	if err != nil {
		return err
	}
	if err := helpers.EditOrSendHTML(c, userStatsText(stats), backToMenuMarkup()); err != nil {
		return err
	}
	return c.Respond(&tele.CallbackResponse{})
}

// onAbout shows the bot description.
func (b *Bot) onAbout(c tele.Context) error {
	if err := helpers.EditOrSendHTML(c, textAbout, backToMenuMarkup()); err != nil {
		return err
	}
	return c.Respond(&tele.CallbackResponse{})
}

// onBackToMenu returns to the main menu.
func (b *Bot) onBackToMenu(c tele.Context) error {
	if err := helpers.EditOrSendHTML(c, textMainMenu, mainMenuMarkup()); err != nil {
		return err
	}
	return c.Respond(&tele.CallbackResponse{})
}

// onCancel abandons the current dialogue from the inline cancel button.
func (b *Bot) onCancel(c tele.Context) error {
	b.sessions.Clear(c.Sender().ID)
	if err := helpers.EditOrSendHTML(c, textCancelled, mainMenuMarkup()); err != nil {
		return err
	}
	return c.Respond(&tele.CallbackResponse{})
}

// onCancelCommand abandons the current dialogue via /cancel.
func (b *Bot) onCancelCommand(c tele.Context) error {
	if c.Sender() == nil {
		return nil
	}
	b.sessions.Clear(c.Sender().ID)
	return helpers.SendHTML(c, textCancelled, mainMenuMarkup())
}

// onGlobalStats reports bot-wide statistics. The route carries the
// admin middleware; non-admins never reach this handler.
func (b *Bot) onGlobalStats(c tele.Context) error {
	ctx := helpers.BuildContext(c)

	stats, err := b.store.GlobalStatsAll(ctx)
	if err != nil {
		return err
	}
	return helpers.SendHTML(c, globalStatsText(stats))
}
