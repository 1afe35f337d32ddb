package postgres

import (
	"context"

	"bagpresto/internal/core/domain"
)

// CurrentStatistics reads the most recently updated counters row.
func (s *Store) CurrentStatistics(ctx context.Context) (*domain.Statistics, error) {
	var st domain.Statistics
	err := s.pool.QueryRow(ctx, `
        SELECT id, total_bags_distributed, total_partners, co2_saved_kg, updated_at
        FROM statistics
        ORDER BY updated_at DESC
        LIMIT 1`).Scan(&st.ID, &st.TotalBagsDistributed, &st.TotalPartners, &st.CO2SavedKg, &st.UpdatedAt)
	if err != nil {
		return nil, mapErr(err)
	}
	return &st, nil
}
