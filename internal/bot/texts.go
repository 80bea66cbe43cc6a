package bot

import (
	"fmt"
	"html"
	"strings"

	"anonbot/internal/storage"
)

// User-facing copy. All strings are HTML parse mode; anything that came
// from a user goes through html.EscapeString before interpolation.

const (
	textNeedMembership  = "❌ Avval kanalga obuna bo'lishingiz kerak!"
	textPostNotFound    = "❌ Post topilmadi!"
	textAlreadyDecided  = "❌ Bu post allaqachon qayta ishlangan!"
	textNoApproveRight  = "❌ Sizda postlarni tasdiqlash huquqi yo'q!"
	textNoRejectRight   = "❌ Sizda postlarni rad etish huquqi yo'q!"
	textPublishFailed   = "❌ Postni nashr etishda xato!"
	textApprovedToast   = "✅ Post tasdiqlandi va nashr etildi!"
	textRejectedToast   = "❌ Post rad etildi!"
	textCancelled       = "❌ <b>Jarayon bekor qilindi.</b>"
	textMainMenu        = "🏠 <b>Asosiy Menyu</b>\n\nVariantni tanlang:"
	textCommentAccepted = "✅ <b>Sharhingiz yuborildi!</b>"

	textStepImage = "📸 <b>1-qadam/2: Rasm Yuborish</b>\n\n" +
		"Iltimos, Anonymous postingiz uchun rasm yuboring, yoki rasmsiz davom etish uchun O'tkazib Yuborishni bosing."

	textStepText = "✍️ <b>2-qadam/2: Xabaringizni Kiriting</b>\n\n" +
		"Iltimos, Anonymous xabaringizni yozing (majburiy):"

	textImageAccepted = "✅ <b>Rasm qabul qilindi!</b>\n\n" + textStepText

	textPostAccepted = "✅ <b>Postingiz moderatsiyaga yuborildi, tez orada kanalda paydo bo'ladi!</b>"

	textPostSendFailed = "❌ <b>Postni yuborishda xato. Iltimos, keyinroq qayta urinib ko'ring.</b>"

	textApprovedNotice = "✅ <b>Postingiz tasdiqlandi va nashr etildi!</b>\n\nKanalni tekshiring!"

	textRejectedNotice = "❌ <b>Sizning postingiz maqullanmadi.</b>\n\n" +
		"Iltimos, kontentingiz jamiyat qoidalariga mos ekanligini tekshiring va qayta urinib ko'ring."

	textJoinApproved = "✅ <b>Sizning so'rovingiz tasdiqlandi!</b>\n\n" +
		"Jamoamizga xush kelibsiz! Endi siz Anonymous xabarlar yuborishingiz va " +
		"boshqa foydalanuvchilarning postlarini ko'rishingiz mumkin.\n\n" +
		"Boshlash uchun quyidagi menyudan foydalaning:"

	textInviteLinkFailed = "\n\n❌ <b>Taklifnoma havolasini yaratishda xato. Iltimos, admin bilan bog'laning.</b>"

	textAlreadyMember = "\n\n✅ <b>Siz allaqachon a'zo! Quyidagi menyudan foydalaning:</b>"

	textAbout = "ℹ️ <b>Anonymous Xabarlar Boti Haqida</b>\n\n" +
		"Bu bot sizga quyidagilarni amalga oshirishga yordam beradi:\n" +
		"• Anonymous xabarlarni kanalimizga yuborish\n" +
		"• Boshqa foydalanuvchilarning postlarini ko'rish\n" +
		"• Postlarga Anonymous sharhlar qoldirish\n" +
		"• Barcha postlar nashr etilishdan oldin moderatsiyadan o'tadi\n\n" +
		"<b>Qoidalar:</b>\n" +
		"• Hurmatli bo'ling\n" +
		"• Spam yoki noo'rin kontent bermang\n" +
		"• Jamiyat qoidalariga amal qiling\n\n" +
		"Anonymous qolib boshqacha qiling! 🎭"
)

func welcomeText(firstName string) string {
	return fmt.Sprintf(
		"👋 <b>Xush Kelibsiz, %s!</b>\n\n"+
			"🔒 <b>Bu bot nima?</b>\n"+
			"Bu bot sizga Anonymous xabarlar yuborish imkoniyatini beradi, "+
			"ular moderatsiyadan o'tgach, kanalimizda nashr etiladi. Shuningdek, "+
			"boshqa foydalanuvchilarning postlariga Anonymous sharhlar qoldira olasiz.\n\n"+
			"📢 <b>Boshlash uchun:</b>\n"+
			"Boshqa foydalanuvchilardan xabarlarni ko'rish uchun kanalga obuna bo'lishingiz kerak.\n\n"+
			"Quyidagi tugmani bosing!",
		html.EscapeString(firstName),
	)
}

func commentPromptText(postID int64) string {
	return fmt.Sprintf("✍️ <b>Post #%d ga Sharh Qoldirish</b>\n\nAnonymous sharhingizni yozing:", postID)
}

func moderationText(postID int64, body string) string {
	return fmt.Sprintf(
		"📝 <b>Moderatsiya Uchun Yangi Post</b>\nPost ID: #%d\n\n<b>Xabar:</b>\n%s",
		postID, html.EscapeString(body),
	)
}

func channelPostText(body string) string {
	return fmt.Sprintf("📢 <b>Anonymous Xabar</b>\n\n%s", html.EscapeString(body))
}

func approvedByText(firstName string) string {
	return fmt.Sprintf("\n\n✅ <b>%s tomonidan tasdiqlandi</b>", html.EscapeString(firstName))
}

func rejectedByText(firstName string) string {
	return fmt.Sprintf("\n\n❌ <b>%s tomonidan rad etildi</b>", html.EscapeString(firstName))
}

func commentsText(postID int64, comments []storage.Comment) string {
	var b strings.Builder
	fmt.Fprintf(&b, "💬 <b>Post #%d ga Sharhlar</b>\n\n", postID)
	if len(comments) == 0 {
		b.WriteString("Hali sharh yo'q. Birinchi sharh qoldiring!")
		return b.String()
	}
	for i, comment := range comments {
		fmt.Fprintf(&b, "%d. <i>%s</i>\n\n", i+1, html.EscapeString(comment.Text))
	}
	return strings.TrimRight(b.String(), "\n")
}

func userStatsText(stats *storage.UserStats) string {
	return fmt.Sprintf(
		"📊 <b>Sizning Statistikangiz</b>\n\n"+
			"📝 Yuborilgan postlar: %d\n"+
			"✅ Tasdiqlangan postlar: %d\n"+
			"❌ Rad etilgan postlar: %d\n"+
			"⏳ Kutilayotgan postlar: %d\n"+
			"💬 Sharhlar: %d",
		stats.TotalPosts, stats.ApprovedPosts, stats.RejectedPosts,
		stats.PendingPosts, stats.TotalComments,
	)
}

func globalStatsText(stats *storage.GlobalStats) string {
	return fmt.Sprintf(
		"📊 <b>Botning Statistikasi</b>\n\n"+
			"👥 Jami foydalanuvchilar: %d\n"+
			"📝 Jami postlar: %d\n"+
			"✅ Tasdiqlangan: %d\n"+
			"❌ Rad etilgan: %d\n"+
			"⏳ Kutilayotgan: %d\n"+
			"💬 Jami sharhlar: %d",
		stats.TotalUsers, stats.TotalPosts, stats.ApprovedPosts,
		stats.RejectedPosts, stats.PendingPosts, stats.TotalComments,
	)
}
