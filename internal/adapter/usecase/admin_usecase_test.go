package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"bagpresto/internal/adapter/memory"
	"bagpresto/internal/core/apperr"
	"bagpresto/internal/core/domain"
	"bagpresto/internal/core/port"
	"bagpresto/internal/core/port/mocks"
	"bagpresto/internal/fixtures"
)

func seededAdmin(t *testing.T) (*AdminUseCase, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	require.NoError(t, store.Load(fixtures.Demo(time.Now())))
	return NewAdminUseCase(store, store, store, discardLogger()), store
}

func TestOverview(t *testing.T) {
	uc, _ := seededAdmin(t)

	ov, err := uc.Overview(context.Background(), sessionOf(domain.UserTypeAdmin))
	require.NoError(t, err)
	assert.Len(t, ov.Clients, 1)
	assert.Len(t, ov.Partners, 3)
	assert.Len(t, ov.Campaigns, 2)
	assert.Equal(t, 2, ov.ActivePartners)
	assert.Equal(t, 1, ov.PendingPartners)
	assert.Equal(t, 1, ov.CampaignsPerStatus[domain.CampaignStatusPending])
	assert.Equal(t, "Garage Normand", ov.Campaigns[0].ClientCompanyName)
}

func TestOverview_FailureAbortsAll(t *testing.T) {
	clients := mocks.NewMockClientRepository(t)
	partners := mocks.NewMockPartnerRepository(t)
	campaigns := mocks.NewMockCampaignRepository(t)

	clients.EXPECT().ListClients(mock.Anything).Return(nil, errors.New("timeout"))
	partners.EXPECT().ListPartners(mock.Anything, port.PartnerFilter{}).Return(nil, nil).Maybe()
	campaigns.EXPECT().ListCampaigns(mock.Anything, port.CampaignFilter{}).Return(nil, nil).Maybe()

	uc := NewAdminUseCase(clients, partners, campaigns, discardLogger())
	ov, err := uc.Overview(context.Background(), sessionOf(domain.UserTypeAdmin))
	assert.Nil(t, ov)
	assert.Equal(t, apperr.CodeRemote, apperr.CodeOf(err))
}

func TestOverview_AdminOnly(t *testing.T) {
	uc, _ := seededAdmin(t)

	_, err := uc.Overview(context.Background(), sessionOf(domain.UserTypeClient))
	assert.Equal(t, apperr.CodeForbidden, apperr.CodeOf(err))
}

func TestSetCampaignStatus_Linear(t *testing.T) {
	uc, _ := seededAdmin(t)
	admin := sessionOf(domain.UserTypeAdmin)
	id := fixtures.CampaignIDs[1]

	c, err := uc.SetCampaignStatus(context.Background(), admin, port.StatusChange{
		CampaignID: id, Status: domain.CampaignStatusApproved, Version: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.CampaignStatusApproved, c.Status)
	assert.Equal(t, int64(2), c.Version)

	c, err = uc.SetCampaignStatus(context.Background(), admin, port.StatusChange{
		CampaignID: id, Status: domain.CampaignStatusPrinting,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), c.Version)
}

func TestSetCampaignStatus_BackwardNeedsForce(t *testing.T) {
	uc, store := seededAdmin(t)
	admin := sessionOf(domain.UserTypeAdmin)
	id := fixtures.CampaignIDs[0]

	_, err := uc.SetCampaignStatus(context.Background(), admin, port.StatusChange{
		CampaignID: id, Status: domain.CampaignStatusPending,
	})
	assert.Equal(t, apperr.CodeState, apperr.CodeOf(err))

	current, err := store.GetCampaign(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, domain.CampaignStatusDistributed, current.Status)

	c, err := uc.SetCampaignStatus(context.Background(), admin, port.StatusChange{
		CampaignID: id, Status: domain.CampaignStatusPending, Force: true,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.CampaignStatusPending, c.Status)
}

func TestSetCampaignStatus_StaleVersion(t *testing.T) {
	uc, store := seededAdmin(t)
	admin := sessionOf(domain.UserTypeAdmin)
	id := fixtures.CampaignIDs[1]

	_, err := uc.SetCampaignStatus(context.Background(), admin, port.StatusChange{
		CampaignID: id, Status: domain.CampaignStatusApproved, Version: 1,
	})
	require.NoError(t, err)

	_, err = uc.SetCampaignStatus(context.Background(), admin, port.StatusChange{
		CampaignID: id, Status: domain.CampaignStatusCancelled, Version: 1,
	})
	assert.Equal(t, apperr.CodeConflict, apperr.CodeOf(err))

	current, err := store.GetCampaign(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, domain.CampaignStatusApproved, current.Status)
	assert.Equal(t, int64(2), current.Version)
}

func TestSetCampaignStatus_LostRace(t *testing.T) {
	campaigns := mocks.NewMockCampaignRepository(t)
	id := uuid.New()

	campaigns.EXPECT().
		GetCampaign(mock.Anything, id).
		Return(&domain.Campaign{ID: id, Status: domain.CampaignStatusPending, Version: 3}, nil)
	campaigns.EXPECT().
		UpdateCampaignStatus(mock.Anything, id, int64(3), domain.CampaignStatusApproved).
		Return(nil, port.ErrVersionConflict)

	uc := NewAdminUseCase(nil, nil, campaigns, discardLogger())
	_, err := uc.SetCampaignStatus(context.Background(), sessionOf(domain.UserTypeAdmin), port.StatusChange{
		CampaignID: id, Status: domain.CampaignStatusApproved,
	})
	assert.Equal(t, apperr.CodeConflict, apperr.CodeOf(err))
}

func TestSetCampaignStatus_SameStatusIsNoop(t *testing.T) {
	campaigns := mocks.NewMockCampaignRepository(t)
	id := uuid.New()
	current := &domain.Campaign{ID: id, Status: domain.CampaignStatusPrinting, Version: 5}

	campaigns.EXPECT().GetCampaign(mock.Anything, id).Return(current, nil)

	uc := NewAdminUseCase(nil, nil, campaigns, discardLogger())
	got, err := uc.SetCampaignStatus(context.Background(), sessionOf(domain.UserTypeAdmin), port.StatusChange{
		CampaignID: id, Status: domain.CampaignStatusPrinting,
	})
	require.NoError(t, err)
	assert.Equal(t, current, got)
}

func TestSetCampaignStatus_Unknown(t *testing.T) {
	uc, _ := seededAdmin(t)
	admin := sessionOf(domain.UserTypeAdmin)

	_, err := uc.SetCampaignStatus(context.Background(), admin, port.StatusChange{
		CampaignID: uuid.New(), Status: domain.CampaignStatusApproved,
	})
	assert.Equal(t, apperr.CodeNotFound, apperr.CodeOf(err))

	_, err = uc.SetCampaignStatus(context.Background(), admin, port.StatusChange{
		CampaignID: fixtures.CampaignIDs[0], Status: "archived",
	})
	assert.Equal(t, apperr.CodeValidation, apperr.CodeOf(err))
}

func TestSetAccountStatus(t *testing.T) {
	uc, store := seededAdmin(t)
	admin := sessionOf(domain.UserTypeAdmin)

	require.NoError(t, uc.SetPartnerStatus(context.Background(), admin, fixtures.PartnerIDs[2], domain.AccountStatusActive))
	active, err := store.ListPartners(context.Background(), port.PartnerFilter{Department: "76", Status: domain.AccountStatusActive})
	require.NoError(t, err)
	assert.Len(t, active, 1)

	require.NoError(t, uc.SetClientStatus(context.Background(), admin, fixtures.ClientID, domain.AccountStatusSuspended))

	err = uc.SetClientStatus(context.Background(), admin, uuid.New(), domain.AccountStatusActive)
	assert.Equal(t, apperr.CodeNotFound, apperr.CodeOf(err))

	err = uc.SetPartnerStatus(context.Background(), admin, fixtures.PartnerIDs[0], "banned")
	assert.Equal(t, apperr.CodeValidation, apperr.CodeOf(err))
}
