package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"bagpresto/internal/core/apperr"
	"bagpresto/internal/core/domain"
	"bagpresto/internal/core/port"
)

// AdminUseCase implements port.AdminUseCase.
type AdminUseCase struct {
	clients   port.ClientRepository
	partners  port.PartnerRepository
	campaigns port.CampaignRepository
	logger    *slog.Logger
}

// NewAdminUseCase wires the admin service.
func NewAdminUseCase(clients port.ClientRepository, partners port.PartnerRepository, campaigns port.CampaignRepository, logger *slog.Logger) *AdminUseCase {
	return &AdminUseCase{clients: clients, partners: partners, campaigns: campaigns, logger: logger}
}

// Overview loads clients, partners and campaigns in parallel and returns
// once all three have arrived. The first failure cancels the others.
func (u *AdminUseCase) Overview(ctx context.Context, session domain.Session) (*port.AdminOverview, error) {
	if err := requireRole(session, domain.UserTypeAdmin); err != nil {
		return nil, err
	}

	var (
		clients   []domain.Client
		partners  []domain.Partner
		campaigns []port.CampaignView
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		clients, err = u.clients.ListClients(gctx)
		return err
	})
	g.Go(func() (err error) {
		partners, err = u.partners.ListPartners(gctx, port.PartnerFilter{})
		return err
	})
	g.Go(func() (err error) {
		campaigns, err = u.campaigns.ListCampaigns(gctx, port.CampaignFilter{})
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, remote(err)
	}

	ov := &port.AdminOverview{
		Clients:            clients,
		Partners:           partners,
		Campaigns:          campaigns,
		CampaignsPerStatus: make(map[domain.CampaignStatus]int),
	}
	for _, c := range clients {
		switch c.Status {
		case domain.AccountStatusPending:
			ov.PendingClients++
		case domain.AccountStatusActive:
			ov.ActiveClients++
		}
	}
	for _, p := range partners {
		switch p.Status {
		case domain.AccountStatusPending:
			ov.PendingPartners++
		case domain.AccountStatusActive:
			ov.ActivePartners++
		}
	}
	for _, c := range campaigns {
		ov.CampaignsPerStatus[c.Status]++
	}
	return ov, nil
}

// SetCampaignStatus moves a campaign along its lifecycle. Regular
// transitions are the next linear status or cancellation; anything else
// needs req.Force. The update only applies if the stored version still
// equals the one the caller read. A zero req.Version means the version read
// here.
func (u *AdminUseCase) SetCampaignStatus(ctx context.Context, session domain.Session, req port.StatusChange) (*domain.Campaign, error) {
	if err := requireRole(session, domain.UserTypeAdmin); err != nil {
		return nil, err
	}
	if !req.Status.IsValid() {
		return nil, apperr.Validation(fmt.Sprintf("Statut inconnu %q", req.Status))
	}

	current, err := u.campaigns.GetCampaign(ctx, req.CampaignID)
	if err != nil {
		return nil, notFoundOr(err, "Campagne introuvable")
	}
	version := req.Version
	if version == 0 {
		version = current.Version
	}
	if version != current.Version {
		return nil, errStaleCampaign
	}
	if current.Status == req.Status {
		return current, nil
	}
	if !current.Status.CanTransition(req.Status) && !req.Force {
		return nil, apperr.New(apperr.CodeState, fmt.Sprintf(
			"Passage de « %s » à « %s » non autorisé sans confirmation",
			current.Status.Label(), req.Status.Label(),
		)).WithDetails(map[string]string{"from": string(current.Status), "to": string(req.Status)})
	}

	updated, err := u.campaigns.UpdateCampaignStatus(ctx, req.CampaignID, version, req.Status)
	switch {
	case errors.Is(err, port.ErrVersionConflict):
		return nil, errStaleCampaign
	case err != nil:
		return nil, notFoundOr(err, "Campagne introuvable")
	}

	statusTransitions.WithLabelValues(string(req.Status), strconv.FormatBool(req.Force)).Inc()
	u.logger.Info("campaign status changed",
		slog.String("campaign_id", req.CampaignID.String()),
		slog.String("from", string(current.Status)),
		slog.String("to", string(req.Status)),
		slog.Bool("forced", req.Force),
		slog.String("admin_id", session.User.ID.String()),
	)
	return updated, nil
}

var errStaleCampaign = apperr.New(apperr.CodeConflict, "La campagne a été modifiée entre-temps, veuillez recharger")

// SetClientStatus approves or suspends a client. Last write wins.
func (u *AdminUseCase) SetClientStatus(ctx context.Context, session domain.Session, id uuid.UUID, status domain.AccountStatus) error {
	if err := requireRole(session, domain.UserTypeAdmin); err != nil {
		return err
	}
	if !status.IsValid() {
		return apperr.Validation(fmt.Sprintf("Statut inconnu %q", status))
	}
	if err := u.clients.UpdateClientStatus(ctx, id, status); err != nil {
		return notFoundOr(err, "Client introuvable")
	}
	return nil
}

// SetPartnerStatus approves or suspends a partner. Last write wins.
func (u *AdminUseCase) SetPartnerStatus(ctx context.Context, session domain.Session, id uuid.UUID, status domain.AccountStatus) error {
	if err := requireRole(session, domain.UserTypeAdmin); err != nil {
		return err
	}
	if !status.IsValid() {
		return apperr.Validation(fmt.Sprintf("Statut inconnu %q", status))
	}
	if err := u.partners.UpdatePartnerStatus(ctx, id, status); err != nil {
		return notFoundOr(err, "Partenaire introuvable")
	}
	return nil
}
