package domain

import "github.com/google/uuid"

// PaymentMethod is how a client settles a campaign.
type PaymentMethod string

const (
	PaymentMethodCard     PaymentMethod = "card"
	PaymentMethodTransfer PaymentMethod = "transfer"
)

// IsValid reports whether the value is a known PaymentMethod.
func (m PaymentMethod) IsValid() bool {
	return m == PaymentMethodCard || m == PaymentMethodTransfer
}

// WizardStep names one step of the campaign creation wizard.
type WizardStep string

const (
	StepZone      WizardStep = "zone"
	StepPartners  WizardStep = "partners"
	StepCustomize WizardStep = "customize"
	StepPayment   WizardStep = "payment"
)

// WizardSteps lists the steps in the order the wizard walks them.
var WizardSteps = []WizardStep{StepZone, StepPartners, StepCustomize, StepPayment}

// IsValid reports whether the value is a known WizardStep.
func (s WizardStep) IsValid() bool {
	for _, step := range WizardSteps {
		if step == s {
			return true
		}
	}
	return false
}

// Placement describes where and how the ad is printed on the bag.
// PositionsCount only matters when MultiplePositions is set.
type Placement struct {
	BothFaces         bool `json:"both_faces"`
	MultiplePositions bool `json:"multiple_positions"`
	PositionsCount    int  `json:"positions_count"`
	ExclusiveSector   bool `json:"exclusive_sector"`
}

// Quote is the campaign wizard state. It carries no price: the total is
// derived from it on every read.
type Quote struct {
	PostalCode         string        `json:"postal_code"`
	SelectedPartnerIDs []uuid.UUID   `json:"selected_partners"`
	BagQuantity        int           `json:"bag_quantity"`
	UseCustomLogo      bool          `json:"use_custom_logo"`
	LogoURL            *string       `json:"logo_url,omitempty"`
	Placement          Placement     `json:"placement"`
	CompanyName        string        `json:"company_name"`
	Sector             string        `json:"sector"`
	CampaignName       string        `json:"campaign_name"`
	Message            string        `json:"message"`
	PaymentMethod      PaymentMethod `json:"payment_method"`
}

// Defaults applied to a fresh wizard session.
const (
	DefaultBagQuantity    = 1000
	MinBagQuantity        = 1000
	MaxBagQuantity        = 10000
	BagQuantityStep       = 1000
	DefaultPositionsCount = 1
	MaxMessageLength      = 200
)

// NewQuote returns a quote holding the wizard defaults.
func NewQuote() Quote {
	return Quote{
		BagQuantity: DefaultBagQuantity,
		Placement:   Placement{PositionsCount: DefaultPositionsCount},
	}
}

// PartnerSet returns the selected partners with duplicates removed,
// preserving first occurrence.
func (q Quote) PartnerSet() []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(q.SelectedPartnerIDs))
	out := make([]uuid.UUID, 0, len(q.SelectedPartnerIDs))
	for _, id := range q.SelectedPartnerIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
