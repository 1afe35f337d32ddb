package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bagpresto/internal/core/domain"
)

func eur(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestComputeTotalPrice_Base(t *testing.T) {
	tests := []struct {
		qty  int
		want string
	}{
		{1000, "80.00"},
		{5000, "400.00"},
		{10000, "800.00"},
		{1500, "120.00"},
		{0, "0"},
	}
	for _, tt := range tests {
		got := ComputeTotalPrice(tt.qty, Options{})
		assert.Truef(t, eur(tt.want).Equal(got), "qty %d: got %s want %s", tt.qty, got, tt.want)
	}
}

func TestComputeTotalPrice_SupplementsAreAdditive(t *testing.T) {
	for _, qty := range []int{1000, 3000, 7000} {
		base := ComputeTotalPrice(qty, Options{})

		assert.True(t, eur("20").Equal(ComputeTotalPrice(qty, Options{UseCustomLogo: true}).Sub(base)))
		assert.True(t, eur("30").Equal(ComputeTotalPrice(qty, Options{BothFaces: true}).Sub(base)))
		assert.True(t, eur("50").Equal(ComputeTotalPrice(qty, Options{ExclusiveSector: true}).Sub(base)))

		three := ComputeTotalPrice(qty, Options{MultiplePositions: true, PositionsCount: 3})
		one := ComputeTotalPrice(qty, Options{MultiplePositions: true, PositionsCount: 1})
		assert.True(t, eur("30").Equal(three.Sub(one)))
		assert.True(t, base.Equal(one))
	}
}

func TestComputeTotalPrice_Scenarios(t *testing.T) {
	got := ComputeTotalPrice(2000, Options{UseCustomLogo: true, BothFaces: true, ExclusiveSector: true})
	assert.Equal(t, "260.00", got.StringFixed(2))

	got = ComputeTotalPrice(10000, Options{})
	assert.Equal(t, "800.00", got.StringFixed(2))
}

func TestComputeTotalPrice_Monotonic(t *testing.T) {
	opts := Options{UseCustomLogo: true, MultiplePositions: true, PositionsCount: 2}
	prev := ComputeTotalPrice(0, opts)
	for qty := 500; qty <= 12000; qty += 500 {
		cur := ComputeTotalPrice(qty, opts)
		require.Falsef(t, cur.LessThan(prev), "price decreased at %d", qty)
		prev = cur
	}
}

func TestComputeTotalPrice_Idempotent(t *testing.T) {
	opts := Options{BothFaces: true, ExclusiveSector: true}
	assert.True(t, ComputeTotalPrice(4000, opts).Equal(ComputeTotalPrice(4000, opts)))
}

func TestPrice_BreakdownConsistent(t *testing.T) {
	opts := Options{UseCustomLogo: true, BothFaces: true, MultiplePositions: true, PositionsCount: 4, ExclusiveSector: true}
	b := Price(3000, opts)

	assert.True(t, b.Total.Equal(ComputeTotalPrice(3000, opts)))
	assert.True(t, b.Total.Equal(b.Base.Add(b.SupplementsTotal)))
	require.Len(t, b.Supplements, 4)
	assert.Equal(t, "multiple_positions", b.Supplements[2].Code)
	assert.True(t, eur("45").Equal(b.Supplements[2].Amount))
}

func TestPrice_NonPositivePositionsCount(t *testing.T) {
	for _, count := range []int{0, -1, -10} {
		b := Price(1000, Options{MultiplePositions: true, PositionsCount: count})
		assert.NotNil(t, b.Supplements)
		assert.Empty(t, b.Supplements)
		assert.False(t, b.SupplementsTotal.IsNegative())
		assert.True(t, eur("80").Equal(b.Total))
	}
}

func TestQuoteTotal(t *testing.T) {
	q := domain.NewQuote()
	q.BagQuantity = 2000
	q.UseCustomLogo = true
	q.Placement.BothFaces = true
	assert.Equal(t, "210.00", QuoteTotal(q).StringFixed(2))
}
