package memory

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bagpresto/internal/core/domain"
	"bagpresto/internal/core/port"
	"bagpresto/internal/fixtures"
)

func seeded(t *testing.T) *Store {
	t.Helper()
	s := NewStore()
	require.NoError(t, s.Load(fixtures.Demo(time.Now())))
	return s
}

func TestStore_ListPartnersFilter(t *testing.T) {
	s := seeded(t)
	ctx := context.Background()

	got, err := s.ListPartners(ctx, port.PartnerFilter{Department: "14", Status: domain.AccountStatusActive})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.True(t, got[0].CreatedAt.After(got[1].CreatedAt))

	got, err = s.ListPartners(ctx, port.PartnerFilter{IDs: []uuid.UUID{fixtures.PartnerIDs[2]}})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Rouen", got[0].City)
}

func TestStore_UpdateCampaignStatusVersioned(t *testing.T) {
	s := seeded(t)
	ctx := context.Background()
	id := fixtures.CampaignIDs[1]

	updated, err := s.UpdateCampaignStatus(ctx, id, 1, domain.CampaignStatusApproved)
	require.NoError(t, err)
	assert.Equal(t, int64(2), updated.Version)
	assert.Equal(t, domain.CampaignStatusApproved, updated.Status)

	_, err = s.UpdateCampaignStatus(ctx, id, 1, domain.CampaignStatusPrinting)
	assert.ErrorIs(t, err, port.ErrVersionConflict)

	_, err = s.UpdateCampaignStatus(ctx, uuid.New(), 1, domain.CampaignStatusPrinting)
	assert.ErrorIs(t, err, port.ErrNotFound)
}

func TestStore_ListAllocationsJoinsCampaignAndClient(t *testing.T) {
	s := seeded(t)

	got, err := s.ListAllocations(context.Background(), fixtures.PartnerIDs[0])
	require.NoError(t, err)
	require.Len(t, got, 2)
	for _, a := range got {
		assert.Equal(t, "Garage Normand", a.ClientCompanyName)
		assert.NotEmpty(t, a.CampaignName)
	}
}

func TestStore_UsersUniqueEmail(t *testing.T) {
	s := seeded(t)
	ctx := context.Background()

	err := s.CreateUser(ctx, &domain.User{ID: uuid.New(), Email: "CLIENT@demo.com"})
	assert.ErrorIs(t, err, port.ErrDuplicate)

	u, err := s.GetUserByEmail(ctx, "client@demo.com")
	require.NoError(t, err)
	require.NoError(t, s.DeleteUser(ctx, u.ID))
	_, err = s.GetUserByID(ctx, u.ID)
	assert.ErrorIs(t, err, port.ErrNotFound)
}

func TestStore_OneAccountPerUser(t *testing.T) {
	s := seeded(t)
	ctx := context.Background()

	err := s.CreateClient(ctx, &domain.Client{ID: uuid.New(), UserID: fixtures.ClientUserID, CompanyName: "Doublon"})
	assert.ErrorIs(t, err, port.ErrDuplicate)

	err = s.CreatePartner(ctx, &domain.Partner{ID: uuid.New(), UserID: fixtures.PartnerUserIDs[0], BusinessName: "Doublon"})
	assert.ErrorIs(t, err, port.ErrDuplicate)
}

func TestStore_DeleteUserCascades(t *testing.T) {
	s := seeded(t)
	ctx := context.Background()

	require.NoError(t, s.DeleteUser(ctx, fixtures.PartnerUserIDs[0]))
	_, err := s.GetPartnerByUserID(ctx, fixtures.PartnerUserIDs[0])
	assert.ErrorIs(t, err, port.ErrNotFound)
	allocs, err := s.ListAllocations(ctx, fixtures.PartnerIDs[0])
	require.NoError(t, err)
	assert.Empty(t, allocs)
	camp, err := s.GetCampaign(ctx, fixtures.CampaignIDs[1])
	require.NoError(t, err)
	assert.Nil(t, camp.PartnerID)

	require.NoError(t, s.DeleteUser(ctx, fixtures.ClientUserID))
	_, err = s.GetClientByUserID(ctx, fixtures.ClientUserID)
	assert.ErrorIs(t, err, port.ErrNotFound)
	_, err = s.GetCampaign(ctx, fixtures.CampaignIDs[0])
	assert.ErrorIs(t, err, port.ErrNotFound)
	allocs, err = s.ListAllocations(ctx, fixtures.PartnerIDs[1])
	require.NoError(t, err)
	assert.Empty(t, allocs)
}

func TestSessionStore_Expiry(t *testing.T) {
	s := NewSessionStore()
	now := time.Now()
	s.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, s.SaveSession(ctx, "jti", uuid.New(), time.Minute))
	ok, err := s.HasSession(ctx, "jti")
	require.NoError(t, err)
	assert.True(t, ok)

	now = now.Add(2 * time.Minute)
	ok, err = s.HasSession(ctx, "jti")
	require.NoError(t, err)
	assert.False(t, ok)
}
