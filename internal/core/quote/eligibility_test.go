package quote

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bagpresto/internal/core/apperr"
)

func TestIsEligiblePostalCode(t *testing.T) {
	tests := map[string]bool{
		"14000": true,
		"27000": true,
		"50100": true,
		"61000": true,
		"76000": true,
		"75008": false,
		"7":     false,
		"":      false,
		"14":    true,
	}
	for code, want := range tests {
		assert.Equalf(t, want, IsEligiblePostalCode(code), "code %q", code)
	}
	assert.False(t, IsEligiblePostalCode(" 14000"))
}

func TestCheckPostalCode(t *testing.T) {
	assert.NoError(t, CheckPostalCode("61000"))

	err := CheckPostalCode("75001")
	assert.Equal(t, apperr.CodeEligibility, apperr.CodeOf(err))
	assert.Equal(t, EligibilityMessage, apperr.As(err).Message())
	assert.Equal(t, "Le code postal doit être en Normandie (14, 27, 50, 61, 76)", EligibilityMessage)
}
