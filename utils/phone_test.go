package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhoneNumber(t *testing.T) {
	assert.Equal(t, "919812345678", NormalizePhoneNumber("+91 98123 45678"))
	assert.Equal(t, "919812345678", NormalizePhoneNumber("91-98123-45678"))
	assert.Equal(t, "", NormalizePhoneNumber(""))
	assert.Equal(t, "", NormalizePhoneNumber("not a number"))
}

func TestWhatsAppLink(t *testing.T) {
	assert.Equal(t, "https://wa.me/919812345678", WhatsAppLink("+91 98123 45678"))
	assert.Equal(t, "", WhatsAppLink(""))
	assert.Equal(t, "", WhatsAppLink("---"))
}
