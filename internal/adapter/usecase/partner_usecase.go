package usecase

import (
	"context"

	"bagpresto/internal/core/domain"
	"bagpresto/internal/core/port"
)

// PartnerUseCase implements port.PartnerUseCase.
type PartnerUseCase struct {
	partners  port.PartnerRepository
	campaigns port.CampaignRepository
}

// NewPartnerUseCase wires the partner service.
func NewPartnerUseCase(partners port.PartnerRepository, campaigns port.CampaignRepository) *PartnerUseCase {
	return &PartnerUseCase{partners: partners, campaigns: campaigns}
}

// Dashboard returns the caller's partner record and bag allocations.
func (u *PartnerUseCase) Dashboard(ctx context.Context, session domain.Session) (*port.PartnerDashboard, error) {
	if err := requireRole(session, domain.UserTypePartner); err != nil {
		return nil, err
	}
	partner, err := u.partners.GetPartnerByUserID(ctx, session.User.ID)
	if err != nil {
		return nil, notFoundOr(err, "Impossible de charger vos données")
	}
	allocations, err := u.campaigns.ListAllocations(ctx, partner.ID)
	if err != nil {
		return nil, remote(err)
	}

	dash := &port.PartnerDashboard{Partner: *partner, Allocations: allocations}
	clients := make(map[string]struct{})
	for _, a := range allocations {
		dash.TotalBagsReceived += a.BagsAllocated
		dash.TotalBagsDistributed += a.BagsDistributed
		if a.ClientCompanyName != "" {
			clients[a.ClientCompanyName] = struct{}{}
		}
	}
	dash.UniqueClients = len(clients)
	return dash, nil
}
