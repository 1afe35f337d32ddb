package postgres

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"bagpresto/internal/core/domain"
	"bagpresto/internal/core/port"
)

func TestMapErr(t *testing.T) {
	assert.NoError(t, mapErr(nil))
	assert.ErrorIs(t, mapErr(pgx.ErrNoRows), port.ErrNotFound)
	assert.ErrorIs(t, mapErr(&pgconn.PgError{Code: uniqueViolation}), port.ErrDuplicate)

	other := errors.New("boom")
	assert.Equal(t, other, mapErr(other))
}

func TestPartnerQuery(t *testing.T) {
	query, args := partnerQuery(port.PartnerFilter{})
	assert.NotContains(t, query, "WHERE")
	assert.Empty(t, args)

	ids := []uuid.UUID{uuid.New()}
	query, args = partnerQuery(port.PartnerFilter{Department: "14", Status: domain.AccountStatusActive, IDs: ids})
	assert.Contains(t, query, "left(postal_code, 2) = $1 AND status = $2 AND id = ANY($3)")
	assert.Equal(t, []any{"14", domain.AccountStatusActive, ids}, args)
}
