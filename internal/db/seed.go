package db

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"bagpresto/internal/fixtures"
)

// Seed inserts the demo dataset. Rows that already exist are left alone, so
// it is safe to run on every start.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	ds := fixtures.Demo(time.Now())

	return pgx.BeginFunc(ctx, db, func(tx pgx.Tx) error {
		for _, u := range ds.Users {
			hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
			if err != nil {
				return err
			}
			_, err = tx.Exec(ctx, `INSERT INTO users
    (id, email, password_hash, full_name, phone, user_type, created_at)
VALUES ($1,$2,$3,$4,$5,$6,now()) ON CONFLICT DO NOTHING`,
				u.ID, u.Email, string(hash), u.Metadata.FullName, u.Metadata.Phone, u.Metadata.UserType)
			if err != nil {
				return err
			}
		}
		for _, c := range ds.Clients {
			_, err := tx.Exec(ctx, `INSERT INTO clients
    (id, user_id, company_name, sector, postal_code, logo_url, message, status, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9) ON CONFLICT DO NOTHING`,
				c.ID, c.UserID, c.CompanyName, c.Sector, c.PostalCode, c.LogoURL, c.Message, c.Status, c.CreatedAt)
			if err != nil {
				return err
			}
		}
		for _, p := range ds.Partners {
			_, err := tx.Exec(ctx, `INSERT INTO partners
    (id, user_id, business_name, business_type, address, postal_code, city,
     bag_quantity, monthly_volume, rating, status, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12) ON CONFLICT DO NOTHING`,
				p.ID, p.UserID, p.BusinessName, p.BusinessType, p.Address, p.PostalCode, p.City,
				p.BagQuantity, p.MonthlyVolume, p.Rating, p.Status, p.CreatedAt)
			if err != nil {
				return err
			}
		}
		for _, c := range ds.Campaigns {
			_, err := tx.Exec(ctx, `INSERT INTO campaigns
    (id, client_id, partner_id, campaign_name, logo_url, start_date, end_date,
     bags_printed, bags_distributed, status, budget, version, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14) ON CONFLICT DO NOTHING`,
				c.ID, c.ClientID, c.PartnerID, c.Name, c.LogoURL, c.StartDate, c.EndDate,
				c.BagsPrinted, c.BagsDistributed, c.Status, c.Budget, c.Version, c.CreatedAt, c.UpdatedAt)
			if err != nil {
				return err
			}
		}
		for _, a := range ds.Allocations {
			_, err := tx.Exec(ctx, `INSERT INTO campaign_partners
    (id, campaign_id, partner_id, bags_allocated, bags_distributed, created_at)
VALUES ($1,$2,$3,$4,$5,$6) ON CONFLICT DO NOTHING`,
				a.ID, a.CampaignID, a.PartnerID, a.BagsAllocated, a.BagsDistributed, a.CreatedAt)
			if err != nil {
				return err
			}
		}
		st := ds.Statistics
		_, err := tx.Exec(ctx, `INSERT INTO statistics
    (id, total_bags_distributed, total_partners, co2_saved_kg, updated_at)
VALUES ($1,$2,$3,$4,$5) ON CONFLICT DO NOTHING`,
			st.ID, st.TotalBagsDistributed, st.TotalPartners, st.CO2SavedKg, st.UpdatedAt)
		return err
	})
}
