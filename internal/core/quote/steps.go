package quote

import (
	"fmt"
	"unicode/utf8"

	"bagpresto/internal/core/apperr"
	"bagpresto/internal/core/domain"
)

// StepResult is the outcome of a wizard step check. Reason is empty when
// Valid is true.
type StepResult struct {
	Step   domain.WizardStep `json:"step"`
	Valid  bool              `json:"valid"`
	Reason string            `json:"reason,omitempty"`
	Field  string            `json:"field,omitempty"`
}

func pass(step domain.WizardStep) StepResult {
	return StepResult{Step: step, Valid: true}
}

func fail(step domain.WizardStep, field, reason string) StepResult {
	return StepResult{Step: step, Field: field, Reason: reason}
}

// ValidateStep checks the fields a wizard step requires before the user may
// move past it.
func ValidateStep(step domain.WizardStep, q domain.Quote) StepResult {
	switch step {
	case domain.StepZone:
		return validateZone(q)
	case domain.StepPartners:
		return validatePartners(q)
	case domain.StepCustomize:
		return validateCustomize(q)
	case domain.StepPayment:
		return validatePayment(q)
	}
	return fail(step, "step", fmt.Sprintf("Étape inconnue %q", step))
}

func validateZone(q domain.Quote) StepResult {
	if len(q.PostalCode) != 5 {
		return fail(domain.StepZone, "postal_code", "Le code postal doit contenir 5 chiffres")
	}
	if !IsEligiblePostalCode(q.PostalCode) {
		return fail(domain.StepZone, "postal_code", EligibilityMessage)
	}
	return pass(domain.StepZone)
}

func validatePartners(q domain.Quote) StepResult {
	if len(q.PartnerSet()) == 0 {
		return fail(domain.StepPartners, "selected_partners", "Sélectionnez au moins un partenaire")
	}
	return pass(domain.StepPartners)
}

func validateCustomize(q domain.Quote) StepResult {
	switch {
	case q.CompanyName == "":
		return fail(domain.StepCustomize, "company_name", "Le nom de l'entreprise est requis")
	case q.Sector == "":
		return fail(domain.StepCustomize, "sector", "Le secteur d'activité est requis")
	case q.BagQuantity < domain.MinBagQuantity || q.BagQuantity > domain.MaxBagQuantity:
		return fail(domain.StepCustomize, "bag_quantity",
			fmt.Sprintf("La quantité doit être comprise entre %d et %d sacs", domain.MinBagQuantity, domain.MaxBagQuantity))
	case q.BagQuantity%domain.BagQuantityStep != 0:
		return fail(domain.StepCustomize, "bag_quantity",
			fmt.Sprintf("La quantité doit être un multiple de %d", domain.BagQuantityStep))
	case q.Placement.MultiplePositions && q.Placement.PositionsCount < 1:
		return fail(domain.StepCustomize, "positions_count", "Le nombre de positions doit être au moins 1")
	case utf8.RuneCountInString(q.Message) > domain.MaxMessageLength:
		return fail(domain.StepCustomize, "message",
			fmt.Sprintf("Le message ne doit pas dépasser %d caractères", domain.MaxMessageLength))
	}
	return pass(domain.StepCustomize)
}

func validatePayment(q domain.Quote) StepResult {
	if !q.PaymentMethod.IsValid() {
		return fail(domain.StepPayment, "payment_method", "Choisissez un moyen de paiement")
	}
	return pass(domain.StepPayment)
}

// ValidateQuote walks every step in wizard order and returns the first
// failure as an error. A quote passing it is complete and may be submitted.
func ValidateQuote(q domain.Quote) error {
	for _, step := range domain.WizardSteps {
		res := ValidateStep(step, q)
		if res.Valid {
			continue
		}
		return res.Err()
	}
	return nil
}

// Err converts a failed result into an error; nil when the step passed.
// Postal code area failures keep their own code.
func (r StepResult) Err() error {
	if r.Valid {
		return nil
	}
	code := apperr.CodeValidation
	if r.Step == domain.StepZone && r.Reason == EligibilityMessage {
		code = apperr.CodeEligibility
	}
	return apperr.New(code, r.Reason).WithDetails(map[string]string{
		"step":  string(r.Step),
		r.Field: r.Reason,
	})
}
