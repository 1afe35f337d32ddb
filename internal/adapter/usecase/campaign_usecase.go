package usecase

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"bagpresto/internal/core/apperr"
	"bagpresto/internal/core/domain"
	"bagpresto/internal/core/port"
	"bagpresto/internal/core/pricing"
	"bagpresto/internal/core/quote"
)

// CampaignUseCase implements port.CampaignUseCase on top of the table store.
type CampaignUseCase struct {
	clients   port.ClientRepository
	partners  port.PartnerRepository
	campaigns port.CampaignRepository
	logos     port.LogoStorage
	logger    *slog.Logger
	now       func() time.Time
}

// NewCampaignUseCase wires the campaign service.
func NewCampaignUseCase(
	clients port.ClientRepository,
	partners port.PartnerRepository,
	campaigns port.CampaignRepository,
	logos port.LogoStorage,
	logger *slog.Logger,
) *CampaignUseCase {
	return &CampaignUseCase{
		clients:   clients,
		partners:  partners,
		campaigns: campaigns,
		logos:     logos,
		logger:    logger,
		now:       time.Now,
	}
}

// PriceQuote returns the price breakdown and the state of every wizard step.
func (u *CampaignUseCase) PriceQuote(_ context.Context, q domain.Quote) port.QuoteResp {
	quotesPriced.Inc()
	breakdown := pricing.Price(q.BagQuantity, pricing.OptionsFromQuote(q))
	steps := make([]quote.StepResult, 0, len(domain.WizardSteps))
	complete := true
	for _, step := range domain.WizardSteps {
		res := quote.ValidateStep(step, q)
		complete = complete && res.Valid
		steps = append(steps, res)
	}
	return port.QuoteResp{
		Breakdown: breakdown,
		Total:     breakdown.Total,
		Steps:     steps,
		Complete:  complete,
	}
}

// ValidateStep checks one wizard step.
func (u *CampaignUseCase) ValidateStep(_ context.Context, step domain.WizardStep, q domain.Quote) quote.StepResult {
	return quote.ValidateStep(step, q)
}

// NearbyPartners lists the active partners of the postal code's department.
func (u *CampaignUseCase) NearbyPartners(ctx context.Context, postalCode string) ([]domain.Partner, error) {
	if err := quote.CheckPostalCode(postalCode); err != nil {
		return nil, err
	}
	partners, err := u.partners.ListPartners(ctx, port.PartnerFilter{
		Department: domain.Department(postalCode),
		Status:     domain.AccountStatusActive,
	})
	if err != nil {
		return nil, remote(err)
	}
	return partners, nil
}

// SubmitCampaign turns a complete quote into a pending campaign. The quote
// is fully re-validated: nothing is persisted unless every step passes and
// every selected partner is active.
func (u *CampaignUseCase) SubmitCampaign(ctx context.Context, session domain.Session, q domain.Quote) (*domain.Campaign, error) {
	if err := requireRole(session, domain.UserTypeClient); err != nil {
		return nil, err
	}
	client, err := u.clients.GetClientByUserID(ctx, session.User.ID)
	if err != nil {
		return nil, notFoundOr(err, "Client non trouvé")
	}
	if err = quote.ValidateQuote(q); err != nil {
		return nil, err
	}

	partnerIDs := q.PartnerSet()
	found, err := u.partners.ListPartners(ctx, port.PartnerFilter{
		IDs:    partnerIDs,
		Status: domain.AccountStatusActive,
	})
	if err != nil {
		return nil, remote(err)
	}
	if len(found) != len(partnerIDs) {
		msg := "Un ou plusieurs partenaires sélectionnés ne sont plus disponibles"
		return nil, apperr.Validation(msg).WithDetails(map[string]string{
			"step":              string(domain.StepPartners),
			"selected_partners": msg,
		})
	}

	now := u.now().UTC()
	name := q.CampaignName
	if name == "" {
		name = domain.DefaultCampaignName(now)
	}
	campaign := &domain.Campaign{
		ID:        uuid.New(),
		ClientID:  client.ID,
		Name:      name,
		StartDate: now,
		EndDate:   now.Add(domain.CampaignDuration),
		Status:    domain.CampaignStatusPending,
		Budget:    pricing.QuoteTotal(q),
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if q.UseCustomLogo && q.LogoURL != nil {
		campaign.LogoURL = q.LogoURL
	}
	if len(partnerIDs) == 1 {
		campaign.PartnerID = &partnerIDs[0]
	}

	allocations := AllocateBags(campaign.ID, q.BagQuantity, partnerIDs, now)
	if err = u.campaigns.CreateCampaign(ctx, campaign, allocations); err != nil {
		return nil, remote(err)
	}
	campaignsSubmitted.Inc()
	u.logger.Info("campaign submitted",
		slog.String("campaign_id", campaign.ID.String()),
		slog.String("client_id", client.ID.String()),
		slog.Int("partners", len(partnerIDs)),
		slog.String("budget", campaign.Budget.StringFixed(2)),
	)
	return campaign, nil
}

// AllocateBags splits quantity across partners: each gets quantity/n and the
// remainder goes one bag at a time to the first partners in id order.
func AllocateBags(campaignID uuid.UUID, quantity int, partnerIDs []uuid.UUID, at time.Time) []domain.CampaignPartner {
	if len(partnerIDs) == 0 {
		return nil
	}
	ids := append([]uuid.UUID(nil), partnerIDs...)
	sort.Slice(ids, func(i, j int) bool { return bytes.Compare(ids[i][:], ids[j][:]) < 0 })

	share := quantity / len(ids)
	rest := quantity % len(ids)
	out := make([]domain.CampaignPartner, 0, len(ids))
	for i, id := range ids {
		bags := share
		if i < rest {
			bags++
		}
		out = append(out, domain.CampaignPartner{
			ID:            uuid.New(),
			CampaignID:    campaignID,
			PartnerID:     id,
			BagsAllocated: bags,
			CreatedAt:     at,
		})
	}
	return out
}

// ClientDashboard returns the caller's client record, campaigns and counters.
func (u *CampaignUseCase) ClientDashboard(ctx context.Context, session domain.Session) (*port.ClientDashboard, error) {
	if err := requireRole(session, domain.UserTypeClient); err != nil {
		return nil, err
	}
	client, err := u.clients.GetClientByUserID(ctx, session.User.ID)
	if err != nil {
		return nil, notFoundOr(err, "Impossible de charger vos données client")
	}
	campaigns, err := u.campaigns.ListCampaigns(ctx, port.CampaignFilter{ClientID: &client.ID})
	if err != nil {
		return nil, remote(err)
	}

	dash := &port.ClientDashboard{Client: *client, Campaigns: campaigns, TotalBudget: decimal.Zero}
	for _, c := range campaigns {
		switch {
		case c.Status.IsActive():
			dash.ActiveCampaigns++
		case c.Status == domain.CampaignStatusCompleted:
			dash.CompletedCampaigns++
		}
		if c.Status != domain.CampaignStatusCancelled {
			dash.TotalBudget = dash.TotalBudget.Add(c.Budget)
		}
		dash.TotalBagsPrinted += c.BagsPrinted
	}
	return dash, nil
}

// UploadLogo checks the file and stores it under a random name.
func (u *CampaignUseCase) UploadLogo(ctx context.Context, session domain.Session, contentType string, data []byte) (string, error) {
	if err := requireRole(session, domain.UserTypeClient); err != nil {
		return "", err
	}
	logo, err := quote.ValidateLogo(contentType, data)
	if err != nil {
		return "", err
	}
	name := fmt.Sprintf("%s%s", uuid.NewString(), logo.Extension)
	url, err := u.logos.SaveLogo(ctx, name, data)
	if err != nil {
		return "", remote(err)
	}
	u.logger.Debug("logo stored", slog.String("name", name), slog.Int64("size", logo.Size))
	return url, nil
}
