package message

func SelfTest(sentAt string) string {
	return "🧪 <b>Test Xabari</b>\n\n" +
		"Bu test xabari. Agar siz buni ko'ryapsiz, Telegram bot to'g'ri ishlayapti!\n\n" +
		"🕐 Sana: " + sentAt
}
