package notify

import (
	"fmt"
	"strings"
)

// Message is a composed email ready for an EmailSender.
type Message struct {
	Subject string
	HTML    string
}

// OrderConfirmation composes the Turkish order confirmation email. Amounts
// arrive in kuruş and render with Turkish digit grouping.
func OrderConfirmation(fullName, orderNo string, grandTotal int64, currency string) Message {
	name := strings.TrimSpace(fullName)
	if name == "" {
		name = "Değerli Müşterimiz"
	}
	if currency == "" {
		currency = "TRY"
	}
	subject := fmt.Sprintf("Siparişiniz alındı: %s", orderNo)
	html := fmt.Sprintf(
		"<p>Merhaba %s,</p>"+
			"<p>%s numaralı siparişinizi aldık. Toplam tutar: <strong>%s %s</strong>.</p>"+
			"<p>Ödemeniz onaylandığında siparişiniz hazırlanmaya başlayacaktır. "+
			"Sipariş durumunu hesabınızdan takip edebilirsiniz.</p>"+
			"<p>Orbis Enerji</p>",
		name, orderNo, FormatAmount(grandTotal), currency,
	)
	return Message{Subject: subject, HTML: html}
}

// FormatAmount renders a kuruş amount as a Turkish formatted decimal,
// e.g. 1249900 -> "12.499,00".
func FormatAmount(kurus int64) string {
	negative := kurus < 0
	if negative {
		kurus = -kurus
	}
	whole := kurus / 100
	frac := kurus % 100

	digits := fmt.Sprintf("%d", whole)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}
	out := fmt.Sprintf("%s,%02d", b.String(), frac)
	if negative {
		return "-" + out
	}
	return out
}
