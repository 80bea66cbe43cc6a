package bot

import (
	"fmt"

	tele "gopkg.in/telebot.v4"

	"anonbot/internal/telegram/keyboard"
)

func mainMenuMarkup() *tele.ReplyMarkup {
	return keyboard.InlineButtons([]keyboard.InlineBtn{
		{Text: "📝 Anonymous Xabar Yuborish", Data: cbCreatePost},
		{Text: "📊 Mening Statistikam", Data: cbMyStats},
		{Text: "ℹ️ Bot Haqida", Data: cbAbout},
	})
}

func skipImageMarkup() *tele.ReplyMarkup {
	return keyboard.InlineButtons([]keyboard.InlineBtn{
		{Text: "⏭ O'tkazib Yuborish", Data: cbSkipImage},
		{Text: "🚫 Bekor Qilish", Data: cbCancel},
	})
}

func cancelMarkup() *tele.ReplyMarkup {
	return keyboard.InlineButtons([]keyboard.InlineBtn{
		{Text: "🚫 Bekor Qilish", Data: cbCancel},
	})
}

func moderationMarkup(postID int64) *tele.ReplyMarkup {
	return keyboard.InlineButtonsRows([]keyboard.InlineBtn{
		{Text: "✅ Tasdiqlash", Data: fmt.Sprintf("%s%d", cbApprove, postID)},
		{Text: "❌ Rad Etish", Data: fmt.Sprintf("%s%d", cbReject, postID)},
	})
}

// channelPostMarkup carries deep links instead of callback buttons so the
// dialogue happens in a private chat with the bot, not in the channel.
func channelPostMarkup(postID int64, botUsername string) *tele.ReplyMarkup {
	return keyboard.InlineButtons([]keyboard.InlineBtn{
		{
			Text: "💬 Sharhlarni Ko'rish",
			URL:  fmt.Sprintf("https://t.me/%s?start=%s%d", botUsername, startViewPost, postID),
		},
		{
			Text: "✍️ Sharh Qoldirish",
			URL:  fmt.Sprintf("https://t.me/%s?start=%s%d", botUsername, startCommentPost, postID),
		},
	})
}

func backToPostMarkup(postID int64) *tele.ReplyMarkup {
	return keyboard.InlineButtons([]keyboard.InlineBtn{
		{Text: "✍️ Sharh Qoldirish", Data: fmt.Sprintf("%s%d", cbAddComment, postID)},
		{Text: "🔙 Menyuga Qaytish", Data: cbBackToMenu},
	})
}

func backToMenuMarkup() *tele.ReplyMarkup {
	return keyboard.InlineButtons([]keyboard.InlineBtn{
		{Text: "🔙 Menyuga Qaytish", Data: cbBackToMenu},
	})
}

func joinChannelMarkup(inviteURL string) *tele.ReplyMarkup {
	return keyboard.InlineButtons([]keyboard.InlineBtn{
		{Text: "📢 Kanalga Obuna Bo'lish", URL: inviteURL},
	})
}
