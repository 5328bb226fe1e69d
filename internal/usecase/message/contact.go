package message

import (
	"strings"

	"storefront-api/internal/domain/contact"
)

func ContactNotice(m *contact.Message, submittedAt string, id *int64) string {
	var b strings.Builder
	b.WriteString("📧 <b>Yangi Xabar</b>\n\n")
	b.WriteString("👤 <b>Ism:</b> " + escape(m.Name()) + "\n")
	b.WriteString("📧 <b>Email:</b> " + escape(m.Email()) + "\n")
	b.WriteString("📌 <b>Mavzu:</b> " + escape(m.Subject()) + "\n")
	b.WriteString("💬 <b>Xabar:</b>\n")
	b.WriteString(escape(m.Body()) + "\n\n")
	b.WriteString("🕐 <b>Sana:</b> " + submittedAt + "\n")
	b.WriteString("🆔 <b>ID:</b> " + FormatID(id))
	return b.String()
}
