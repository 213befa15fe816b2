package email

import (
	"fmt"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/nfrund/zawiya/internal/domain"
)

var strict = bluemonday.StrictPolicy()

// ContactNotice builds the notification sent to admin for a new contact message.
// Replies go to the visitor. Visitor input is stripped of markup before it is embedded.
func ContactNotice(admin string, m domain.ContactMessage) domain.Email {
	clean := func(s string) string { return strict.Sanitize(strings.TrimSpace(s)) }

	var b strings.Builder
	b.WriteString(`<div dir="rtl">`)
	fmt.Fprintf(&b, "<p><strong>الاسم:</strong> %s</p>", clean(m.Name))
	fmt.Fprintf(&b, "<p><strong>البريد الإلكتروني:</strong> %s</p>", clean(m.Email))
	if m.Phone != "" {
		fmt.Fprintf(&b, "<p><strong>رقم الهاتف:</strong> %s</p>", clean(m.Phone))
	}
	fmt.Fprintf(&b, "<p><strong>الموضوع:</strong> %s</p>", clean(m.Subject))
	fmt.Fprintf(&b, "<p>%s</p>", strings.ReplaceAll(clean(m.Message), "\n", "<br>"))
	b.WriteString("</div>")
	return domain.Email{
		To:      admin,
		ReplyTo: clean(m.Email),
		Subject: fmt.Sprintf("رسالة جديدة: %s", clean(m.Subject)),
		HTML:    b.String(),
	}
}
