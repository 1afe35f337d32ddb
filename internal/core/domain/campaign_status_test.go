package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCampaignStatus_CanTransition(t *testing.T) {
	linear := []CampaignStatus{
		CampaignStatusPending,
		CampaignStatusApproved,
		CampaignStatusPrinting,
		CampaignStatusDistributed,
		CampaignStatusCompleted,
	}
	for i := 0; i+1 < len(linear); i++ {
		assert.Truef(t, linear[i].CanTransition(linear[i+1]), "%s -> %s", linear[i], linear[i+1])
		assert.Falsef(t, linear[i+1].CanTransition(linear[i]), "%s -> %s", linear[i+1], linear[i])
	}

	assert.False(t, CampaignStatusPending.CanTransition(CampaignStatusPrinting))
	assert.True(t, CampaignStatusPrinting.CanTransition(CampaignStatusCancelled))
	assert.False(t, CampaignStatusCompleted.CanTransition(CampaignStatusCancelled))
	assert.False(t, CampaignStatusCancelled.CanTransition(CampaignStatusPending))
	assert.False(t, CampaignStatus("archived").CanTransition(CampaignStatusApproved))
}

func TestCampaignStatus_Flags(t *testing.T) {
	assert.True(t, CampaignStatusCompleted.IsTerminal())
	assert.True(t, CampaignStatusCancelled.IsTerminal())
	assert.False(t, CampaignStatusPending.IsActive())
	assert.True(t, CampaignStatusPrinting.IsActive())
	assert.Equal(t, "En impression", CampaignStatusPrinting.Label())

	_, err := ParseCampaignStatus("archived")
	assert.Error(t, err)
}

func TestQuote_PartnerSet(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	q := Quote{SelectedPartnerIDs: []uuid.UUID{b, a, b}}
	assert.Equal(t, []uuid.UUID{b, a}, q.PartnerSet())
}

func TestDefaultCampaignName(t *testing.T) {
	at := time.Date(2024, 3, 7, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, "Campagne 07/03/2024", DefaultCampaignName(at))
	assert.Equal(t, "14", Department("14000"))
}
