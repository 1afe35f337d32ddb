package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"bagpresto/internal/core/domain"
	"bagpresto/internal/core/port"
)

const partnerColumns = `id, user_id, business_name, business_type, address, postal_code, city,
bag_quantity, monthly_volume, rating, status, created_at`

func scanPartner(row pgx.Row) (domain.Partner, error) {
	var p domain.Partner
	err := row.Scan(&p.ID, &p.UserID, &p.BusinessName, &p.BusinessType, &p.Address, &p.PostalCode, &p.City,
		&p.BagQuantity, &p.MonthlyVolume, &p.Rating, &p.Status, &p.CreatedAt)
	return p, err
}

// partnerQuery builds the listing query for filter.
func partnerQuery(filter port.PartnerFilter) (string, []any) {
	var (
		where []string
		args  []any
	)
	if filter.Department != "" {
		args = append(args, filter.Department)
		where = append(where, fmt.Sprintf("left(postal_code, 2) = $%d", len(args)))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		where = append(where, fmt.Sprintf("status = $%d", len(args)))
	}
	if len(filter.IDs) > 0 {
		args = append(args, filter.IDs)
		where = append(where, fmt.Sprintf("id = ANY($%d)", len(args)))
	}
	query := `SELECT ` + partnerColumns + ` FROM partners`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	return query + ` ORDER BY created_at DESC`, args
}

// ListPartners returns partners matching filter, newest first.
func (s *Store) ListPartners(ctx context.Context, filter port.PartnerFilter) ([]domain.Partner, error) {
	query, args := partnerQuery(filter)
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Partner, error) {
		return scanPartner(row)
	})
}

// GetPartnerByUserID returns the partner account owned by a user.
func (s *Store) GetPartnerByUserID(ctx context.Context, userID uuid.UUID) (*domain.Partner, error) {
	p, err := scanPartner(s.pool.QueryRow(ctx, `SELECT `+partnerColumns+` FROM partners WHERE user_id = $1`, userID))
	if err != nil {
		return nil, mapErr(err)
	}
	return &p, nil
}

// CreatePartner inserts a partner row.
func (s *Store) CreatePartner(ctx context.Context, p *domain.Partner) error {
	_, err := s.pool.Exec(ctx, `INSERT INTO partners (`+partnerColumns+`) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)`,
		p.ID, p.UserID, p.BusinessName, p.BusinessType, p.Address, p.PostalCode, p.City,
		p.BagQuantity, p.MonthlyVolume, p.Rating, p.Status, p.CreatedAt)
	return mapErr(err)
}

// UpdatePartnerStatus sets a partner's account status.
func (s *Store) UpdatePartnerStatus(ctx context.Context, id uuid.UUID, status domain.AccountStatus) error {
	return affected(s.pool.Exec(ctx, `UPDATE partners SET status = $1 WHERE id = $2`, status, id))
}
