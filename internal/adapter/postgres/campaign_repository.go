package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"bagpresto/internal/core/domain"
	"bagpresto/internal/core/port"
)

const campaignColumns = `c.id, c.client_id, c.partner_id, c.campaign_name, c.logo_url, c.start_date, c.end_date,
c.bags_printed, c.bags_distributed, c.status, c.budget, c.version, c.created_at, c.updated_at`

func campaignDest(c *domain.Campaign) []any {
	return []any{&c.ID, &c.ClientID, &c.PartnerID, &c.Name, &c.LogoURL, &c.StartDate, &c.EndDate,
		&c.BagsPrinted, &c.BagsDistributed, &c.Status, &c.Budget, &c.Version, &c.CreatedAt, &c.UpdatedAt}
}

// ListCampaigns returns campaigns with their client's company name and
// partner count, newest first, optionally narrowed to one client.
func (s *Store) ListCampaigns(ctx context.Context, filter port.CampaignFilter) ([]port.CampaignView, error) {
	query := `
        SELECT ` + campaignColumns + `,
            cl.company_name,
            (SELECT count(*) FROM campaign_partners cp WHERE cp.campaign_id = c.id)
        FROM campaigns c
        JOIN clients cl ON cl.id = c.client_id`
	var args []any
	if filter.ClientID != nil {
		query += ` WHERE c.client_id = $1`
		args = append(args, *filter.ClientID)
	}
	query += ` ORDER BY c.created_at DESC`

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (port.CampaignView, error) {
		var v port.CampaignView
		dest := append(campaignDest(&v.Campaign), &v.ClientCompanyName, &v.PartnersCount)
		return v, row.Scan(dest...)
	})
}

// GetCampaign returns a campaign by id.
func (s *Store) GetCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error) {
	var c domain.Campaign
	err := s.pool.QueryRow(ctx, `SELECT `+campaignColumns+` FROM campaigns c WHERE c.id = $1`, id).Scan(campaignDest(&c)...)
	if err != nil {
		return nil, mapErr(err)
	}
	return &c, nil
}

// CreateCampaign inserts the campaign and its allocations in one transaction.
func (s *Store) CreateCampaign(ctx context.Context, c *domain.Campaign, allocations []domain.CampaignPartner) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	_, err = tx.Exec(ctx, `INSERT INTO campaigns
    (id, client_id, partner_id, campaign_name, logo_url, start_date, end_date,
     bags_printed, bags_distributed, status, budget, version, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)`,
		c.ID, c.ClientID, c.PartnerID, c.Name, c.LogoURL, c.StartDate, c.EndDate,
		c.BagsPrinted, c.BagsDistributed, c.Status, c.Budget, c.Version, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		return mapErr(err)
	}

	batch := &pgx.Batch{}
	for _, a := range allocations {
		batch.Queue(`INSERT INTO campaign_partners
    (id, campaign_id, partner_id, bags_allocated, bags_distributed, created_at)
VALUES ($1,$2,$3,$4,$5,$6)`, a.ID, a.CampaignID, a.PartnerID, a.BagsAllocated, a.BagsDistributed, a.CreatedAt)
	}
	if err = tx.SendBatch(ctx, batch).Close(); err != nil {
		return mapErr(err)
	}
	return nil
}

// UpdateCampaignStatus applies a compare-and-set on version.
func (s *Store) UpdateCampaignStatus(ctx context.Context, id uuid.UUID, version int64, status domain.CampaignStatus) (*domain.Campaign, error) {
	var c domain.Campaign
	err := s.pool.QueryRow(ctx, `
        UPDATE campaigns c
        SET status = $1, version = c.version + 1, updated_at = $2
        WHERE c.id = $3 AND c.version = $4
        RETURNING `+campaignColumns, status, s.now().UTC(), id, version).Scan(campaignDest(&c)...)
	if err == nil {
		return &c, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}
	// No row matched: tell a missing campaign from a stale version.
	var exists bool
	if err = s.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM campaigns WHERE id = $1)`, id).Scan(&exists); err != nil {
		return nil, err
	}
	if !exists {
		return nil, port.ErrNotFound
	}
	return nil, port.ErrVersionConflict
}

// ListAllocations returns a partner's allocations joined with the campaign
// and its client, newest allocation first.
func (s *Store) ListAllocations(ctx context.Context, partnerID uuid.UUID) ([]port.Allocation, error) {
	rows, err := s.pool.Query(ctx, `
        SELECT cp.id, cp.campaign_id, cp.bags_allocated, cp.bags_distributed,
               c.campaign_name, c.start_date, c.end_date, cl.company_name, cl.sector
        FROM campaign_partners cp
        JOIN campaigns c ON c.id = cp.campaign_id
        JOIN clients cl ON cl.id = c.client_id
        WHERE cp.partner_id = $1
        ORDER BY cp.created_at DESC`, partnerID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (port.Allocation, error) {
		var a port.Allocation
		err := row.Scan(&a.ID, &a.CampaignID, &a.BagsAllocated, &a.BagsDistributed,
			&a.CampaignName, &a.StartDate, &a.EndDate, &a.ClientCompanyName, &a.ClientSector)
		return a, err
	})
}
