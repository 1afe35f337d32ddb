package domain

import "fmt"

// CampaignStatus tracks the lifecycle of a campaign.
type CampaignStatus string

const (
	CampaignStatusPending     CampaignStatus = "pending"
	CampaignStatusApproved    CampaignStatus = "approved"
	CampaignStatusPrinting    CampaignStatus = "printing"
	CampaignStatusDistributed CampaignStatus = "distributed"
	CampaignStatusCompleted   CampaignStatus = "completed"
	CampaignStatusCancelled   CampaignStatus = "cancelled"
)

// campaignProgression is the linear happy path; cancelled sits outside it.
var campaignProgression = []CampaignStatus{
	CampaignStatusPending,
	CampaignStatusApproved,
	CampaignStatusPrinting,
	CampaignStatusDistributed,
	CampaignStatusCompleted,
}

var campaignStatusLabels = map[CampaignStatus]string{
	CampaignStatusPending:     "En attente",
	CampaignStatusApproved:    "Approuvée",
	CampaignStatusPrinting:    "En impression",
	CampaignStatusDistributed: "Distribuée",
	CampaignStatusCompleted:   "Terminée",
	CampaignStatusCancelled:   "Annulée",
}

// String implements fmt.Stringer.
func (s CampaignStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is a known CampaignStatus.
func (s CampaignStatus) IsValid() bool {
	_, ok := campaignStatusLabels[s]
	return ok
}

// Label returns the French label shown on dashboards.
func (s CampaignStatus) Label() string {
	if label, ok := campaignStatusLabels[s]; ok {
		return label
	}
	return string(s)
}

// IsTerminal reports whether no further regular transition exists.
func (s CampaignStatus) IsTerminal() bool {
	return s == CampaignStatusCompleted || s == CampaignStatusCancelled
}

// IsActive reports whether the campaign is running (approved up to distributed).
func (s CampaignStatus) IsActive() bool {
	switch s {
	case CampaignStatusApproved, CampaignStatusPrinting, CampaignStatusDistributed:
		return true
	}
	return false
}

// Next returns the following status on the linear path.
func (s CampaignStatus) Next() (CampaignStatus, bool) {
	for i, candidate := range campaignProgression {
		if candidate == s && i+1 < len(campaignProgression) {
			return campaignProgression[i+1], true
		}
	}
	return "", false
}

// CanTransition reports whether moving from s to next is a regular
// transition: the next linear status, or cancelled from a non-terminal
// status. Anything else needs an administrative override.
func (s CampaignStatus) CanTransition(next CampaignStatus) bool {
	if !s.IsValid() || !next.IsValid() || s.IsTerminal() {
		return false
	}
	if next == CampaignStatusCancelled {
		return true
	}
	following, ok := s.Next()
	return ok && following == next
}

// ParseCampaignStatus converts raw input into a CampaignStatus.
func ParseCampaignStatus(value string) (CampaignStatus, error) {
	status := CampaignStatus(value)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid campaign status %q", value)
	}
	return status, nil
}
