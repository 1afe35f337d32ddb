package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Campaign represents a bag-printing campaign ordered by a client.
// Budget is the quote total at submission time and never changes afterwards.
// Version increments on every status change and backs optimistic updates.
type Campaign struct {
	ID              uuid.UUID       `json:"id"`
	ClientID        uuid.UUID       `json:"client_id"`
	PartnerID       *uuid.UUID      `json:"partner_id,omitempty"`
	Name            string          `json:"campaign_name"`
	LogoURL         *string         `json:"logo_url,omitempty"`
	StartDate       time.Time       `json:"start_date"`
	EndDate         time.Time       `json:"end_date"`
	BagsPrinted     int             `json:"bags_printed"`
	BagsDistributed int             `json:"bags_distributed"`
	Status          CampaignStatus  `json:"status"`
	Budget          decimal.Decimal `json:"budget"`
	Version         int64           `json:"version"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// CampaignPartner is the share of a campaign's bags handed to one partner.
type CampaignPartner struct {
	ID              uuid.UUID `json:"id"`
	CampaignID      uuid.UUID `json:"campaign_id"`
	PartnerID       uuid.UUID `json:"partner_id"`
	BagsAllocated   int       `json:"bags_allocated"`
	BagsDistributed int       `json:"bags_distributed"`
	CreatedAt       time.Time `json:"created_at"`
}

// CampaignDuration is the default run of a newly submitted campaign.
const CampaignDuration = 30 * 24 * time.Hour

// DefaultCampaignName names a campaign after its submission date, French style.
func DefaultCampaignName(at time.Time) string {
	return "Campagne " + at.Format("02/01/2006")
}
