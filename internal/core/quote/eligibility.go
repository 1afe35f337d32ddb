// Package quote holds the campaign wizard rules: postal code eligibility,
// per-step checks and logo upload checks. All checks are pure.
package quote

import (
	"strings"

	"bagpresto/internal/core/apperr"
)

// EligibleDepartments are the Normandy departments BagPresto serves.
var EligibleDepartments = []string{"14", "27", "50", "61", "76"}

var eligibleDepartments = func() map[string]struct{} {
	set := make(map[string]struct{}, len(EligibleDepartments))
	for _, d := range EligibleDepartments {
		set[d] = struct{}{}
	}
	return set
}()

// IsEligiblePostalCode reports whether the first two characters of code
// name a served department. The input is not normalized.
func IsEligiblePostalCode(code string) bool {
	if len(code) < 2 {
		return false
	}
	_, ok := eligibleDepartments[code[:2]]
	return ok
}

// EligibilityMessage is shown when a postal code is outside the served area.
var EligibilityMessage = "Le code postal doit être en Normandie (" + strings.Join(EligibleDepartments, ", ") + ")"

// CheckPostalCode returns an eligibility error for codes outside the area.
func CheckPostalCode(code string) error {
	if !IsEligiblePostalCode(code) {
		return apperr.New(apperr.CodeEligibility, EligibilityMessage).
			WithDetails(map[string]string{"postal_code": EligibilityMessage})
	}
	return nil
}
