package utils

import (
	"fmt"
	"strings"
	"unicode"
)

// NormalizePhoneNumber strips everything but digits from a stored phone
// number. A leading "+" country prefix is tolerated; formatting characters
// are not meaningful.
func NormalizePhoneNumber(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// WhatsAppLink derives a pre-filled chat deep link from a phone number.
// It returns an empty string when no usable number is stored.
func WhatsAppLink(phone string) string {
	digits := NormalizePhoneNumber(phone)
	if digits == "" {
		return ""
	}
	return fmt.Sprintf("https://wa.me/%s", digits)
}
