package quote

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bagpresto/internal/core/apperr"
	"bagpresto/internal/core/domain"
)

func completeQuote() domain.Quote {
	q := domain.NewQuote()
	q.PostalCode = "14000"
	q.SelectedPartnerIDs = []uuid.UUID{uuid.New()}
	q.CompanyName = "Garage Normand"
	q.Sector = "Automobile"
	q.PaymentMethod = domain.PaymentMethodCard
	return q
}

func TestValidateStep_Zone(t *testing.T) {
	q := completeQuote()
	q.PostalCode = "75001"

	res := ValidateStep(domain.StepZone, q)
	assert.False(t, res.Valid)
	assert.Equal(t, "postal_code", res.Field)
	assert.Equal(t, apperr.CodeEligibility, apperr.CodeOf(res.Err()))

	q.PostalCode = "1400"
	res = ValidateStep(domain.StepZone, q)
	assert.False(t, res.Valid)
	assert.Equal(t, apperr.CodeValidation, apperr.CodeOf(res.Err()))
}

func TestValidateStep_Partners(t *testing.T) {
	q := completeQuote()
	q.SelectedPartnerIDs = nil

	assert.True(t, ValidateStep(domain.StepZone, q).Valid)
	res := ValidateStep(domain.StepPartners, q)
	assert.False(t, res.Valid)
	assert.Equal(t, "selected_partners", res.Field)
}

func TestValidateStep_Customize(t *testing.T) {
	tests := []struct {
		name  string
		edit  func(*domain.Quote)
		field string
	}{
		{"no company", func(q *domain.Quote) { q.CompanyName = "" }, "company_name"},
		{"no sector", func(q *domain.Quote) { q.Sector = "" }, "sector"},
		{"too few bags", func(q *domain.Quote) { q.BagQuantity = 500 }, "bag_quantity"},
		{"too many bags", func(q *domain.Quote) { q.BagQuantity = 11000 }, "bag_quantity"},
		{"not a step", func(q *domain.Quote) { q.BagQuantity = 1500 }, "bag_quantity"},
		{"zero positions", func(q *domain.Quote) {
			q.Placement.MultiplePositions = true
			q.Placement.PositionsCount = 0
		}, "positions_count"},
		{"long message", func(q *domain.Quote) { q.Message = strings.Repeat("é", 201) }, "message"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := completeQuote()
			tt.edit(&q)
			res := ValidateStep(domain.StepCustomize, q)
			assert.False(t, res.Valid)
			assert.Equal(t, tt.field, res.Field)
		})
	}

	q := completeQuote()
	q.Message = strings.Repeat("é", 200)
	assert.True(t, ValidateStep(domain.StepCustomize, q).Valid)

	q = completeQuote()
	q.CompanyName = "  "
	assert.True(t, ValidateStep(domain.StepCustomize, q).Valid, "any non-empty name passes")
}

func TestValidateStep_Unknown(t *testing.T) {
	res := ValidateStep("shipping", completeQuote())
	assert.False(t, res.Valid)
}

func TestValidateQuote(t *testing.T) {
	require.NoError(t, ValidateQuote(completeQuote()))

	q := completeQuote()
	q.PostalCode = "75001"
	q.PaymentMethod = ""
	err := ValidateQuote(q)
	require.Error(t, err)
	assert.Equal(t, "zone", apperr.As(err).Details()["step"])

	q = completeQuote()
	q.PaymentMethod = "cash"
	err = ValidateQuote(q)
	assert.Equal(t, "payment", apperr.As(err).Details()["step"])
}
