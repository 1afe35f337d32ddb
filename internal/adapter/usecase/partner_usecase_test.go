package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bagpresto/internal/adapter/memory"
	"bagpresto/internal/core/apperr"
	"bagpresto/internal/core/domain"
	"bagpresto/internal/fixtures"
)

func TestPartnerDashboard(t *testing.T) {
	store := memory.NewStore()
	ds := fixtures.Demo(time.Now())
	require.NoError(t, store.Load(ds))
	uc := NewPartnerUseCase(store, store)

	session := sessionOf(domain.UserTypePartner)
	session.User.ID = ds.Partners[0].UserID

	dash, err := uc.Dashboard(context.Background(), session)
	require.NoError(t, err)
	assert.Equal(t, ds.Partners[0].ID, dash.Partner.ID)
	assert.Len(t, dash.Allocations, 2)
	assert.Equal(t, 2000, dash.TotalBagsReceived)
	assert.Equal(t, 800, dash.TotalBagsDistributed)
	assert.Equal(t, 1, dash.UniqueClients)
}

func TestPartnerDashboard_UnknownPartner(t *testing.T) {
	store := memory.NewStore()
	uc := NewPartnerUseCase(store, store)

	_, err := uc.Dashboard(context.Background(), sessionOf(domain.UserTypePartner))
	assert.Equal(t, apperr.CodeNotFound, apperr.CodeOf(err))

	_, err = uc.Dashboard(context.Background(), sessionOf(domain.UserTypeClient))
	assert.Equal(t, apperr.CodeForbidden, apperr.CodeOf(err))
}
