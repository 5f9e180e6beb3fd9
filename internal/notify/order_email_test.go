package notify

import (
	"strings"
	"testing"
)

func TestOrderConfirmationComposesTurkishEmail(t *testing.T) {
	msg := OrderConfirmation("Ayşe Yılmaz", "ORB-20261042", 1249900, "TRY")
	if msg.Subject != "Siparişiniz alındı: ORB-20261042" {
		t.Fatalf("unexpected subject: %q", msg.Subject)
	}
	if !strings.Contains(msg.HTML, "Merhaba Ayşe Yılmaz") {
		t.Fatalf("expected greeting in body: %q", msg.HTML)
	}
	if !strings.Contains(msg.HTML, "12.499,00 TRY") {
		t.Fatalf("expected formatted total in body: %q", msg.HTML)
	}
}

func TestOrderConfirmationFallsBackToGenericGreeting(t *testing.T) {
	msg := OrderConfirmation("  ", "ORB-20261042", 100, "")
	if !strings.Contains(msg.HTML, "Değerli Müşterimiz") {
		t.Fatalf("expected generic greeting: %q", msg.HTML)
	}
	if !strings.Contains(msg.HTML, "1,00 TRY") {
		t.Fatalf("expected default currency: %q", msg.HTML)
	}
}

func TestFormatAmount(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "0,00"},
		{5, "0,05"},
		{100, "1,00"},
		{123456, "1.234,56"},
		{1249900, "12.499,00"},
		{100000000, "1.000.000,00"},
		{-123456, "-1.234,56"},
	}
	for _, tc := range cases {
		if got := FormatAmount(tc.in); got != tc.want {
			t.Fatalf("FormatAmount(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
