package quote

import (
	"unicode/utf8"

	"bagpresto/internal/core/apperr"
)

// MinPasswordLength is the shortest password accepted at registration.
const MinPasswordLength = 6

// CheckPassword rejects passwords shorter than MinPasswordLength.
func CheckPassword(password string) error {
	if utf8.RuneCountInString(password) < MinPasswordLength {
		msg := "Le mot de passe doit contenir au moins 6 caractères"
		return apperr.Validation(msg).WithDetails(map[string]string{"password": msg})
	}
	return nil
}
