package domain

import (
	"time"

	"github.com/google/uuid"
)

// Statistics holds the public counters shown on the landing page.
type Statistics struct {
	ID                   uuid.UUID `json:"id"`
	TotalBagsDistributed int64     `json:"total_bags_distributed"`
	TotalPartners        int64     `json:"total_partners"`
	CO2SavedKg           float64   `json:"co2_saved_kg"`
	UpdatedAt            time.Time `json:"updated_at"`
}
