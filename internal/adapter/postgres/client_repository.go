package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"bagpresto/internal/core/domain"
)

const clientColumns = `id, user_id, company_name, sector, postal_code, logo_url, message, status, created_at`

func scanClient(row pgx.Row) (domain.Client, error) {
	var c domain.Client
	err := row.Scan(&c.ID, &c.UserID, &c.CompanyName, &c.Sector, &c.PostalCode, &c.LogoURL, &c.Message, &c.Status, &c.CreatedAt)
	return c, err
}

// ListClients returns all clients, newest first.
func (s *Store) ListClients(ctx context.Context) ([]domain.Client, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+clientColumns+` FROM clients ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Client, error) {
		return scanClient(row)
	})
}

// GetClientByUserID returns the client account owned by a user.
func (s *Store) GetClientByUserID(ctx context.Context, userID uuid.UUID) (*domain.Client, error) {
	c, err := scanClient(s.pool.QueryRow(ctx, `SELECT `+clientColumns+` FROM clients WHERE user_id = $1`, userID))
	if err != nil {
		return nil, mapErr(err)
	}
	return &c, nil
}

// CreateClient inserts a client row.
func (s *Store) CreateClient(ctx context.Context, c *domain.Client) error {
	_, err := s.pool.Exec(ctx, `INSERT INTO clients (`+clientColumns+`) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		c.ID, c.UserID, c.CompanyName, c.Sector, c.PostalCode, c.LogoURL, c.Message, c.Status, c.CreatedAt)
	return mapErr(err)
}

// UpdateClientStatus sets a client's account status.
func (s *Store) UpdateClientStatus(ctx context.Context, id uuid.UUID, status domain.AccountStatus) error {
	return affected(s.pool.Exec(ctx, `UPDATE clients SET status = $1 WHERE id = $2`, status, id))
}
