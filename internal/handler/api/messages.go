package api

// Texts shown to storefront visitors.
const (
	msgContactAccepted = "Xabaringiz muvaffaqiyatli yuborildi va saqlandi!"
	msgContactInvalid  = "Barcha maydonlar to'ldirilishi kerak"

	msgOrderAccepted = "Buyurtma muvaffaqiyatli qabul qilindi va saqlandi!"
	msgCartEmpty     = "Savatcha bo'sh"
	msgOrderInvalid  = "Buyurtma ma'lumotlari noto'g'ri"

	msgInvalidRequest = "Noto'g'ri so'rov formati"

	msgSelfTestOK     = "✅ Telegram bot to'g'ri ishlayapti! Xabarni tekshiring."
	msgSelfTestFailed = "❌ Telegram bot ishlamayapti. Server loglaridagi xatoliklarni ko'ring."
)
