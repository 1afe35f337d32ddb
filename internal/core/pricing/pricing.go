// Package pricing computes the cost of a bag campaign. Every function is
// pure and safe for concurrent use.
package pricing

import (
	"github.com/shopspring/decimal"

	"bagpresto/internal/core/domain"
)

// Rates in euros.
var (
	BaseRatePer1000       = decimal.NewFromInt(80)
	CustomLogoSupplement  = decimal.NewFromInt(20)
	BothFacesSupplement   = decimal.NewFromInt(30)
	ExtraPositionRate     = decimal.NewFromInt(15)
	ExclusiveSectorCharge = decimal.NewFromInt(50)
)

var thousand = decimal.NewFromInt(1000)

// Options are the priced choices of a quote.
type Options struct {
	UseCustomLogo     bool `json:"use_custom_logo"`
	BothFaces         bool `json:"both_faces"`
	MultiplePositions bool `json:"multiple_positions"`
	PositionsCount    int  `json:"positions_count"`
	ExclusiveSector   bool `json:"exclusive_sector"`
}

// OptionsFromQuote extracts the priced options of a wizard quote.
func OptionsFromQuote(q domain.Quote) Options {
	return Options{
		UseCustomLogo:     q.UseCustomLogo,
		BothFaces:         q.Placement.BothFaces,
		MultiplePositions: q.Placement.MultiplePositions,
		PositionsCount:    q.Placement.PositionsCount,
		ExclusiveSector:   q.Placement.ExclusiveSector,
	}
}

// Line is one supplement of a breakdown.
type Line struct {
	Code   string          `json:"code"`
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
}

// Breakdown details how a total was reached. Total always equals
// Base + SupplementsTotal.
type Breakdown struct {
	BagQuantity      int             `json:"bag_quantity"`
	Base             decimal.Decimal `json:"base"`
	Supplements      []Line          `json:"supplements"`
	SupplementsTotal decimal.Decimal `json:"supplements_total"`
	Total            decimal.Decimal `json:"total"`
}

// ComputeTotalPrice returns the campaign cost rounded to cents. The engine
// is a calculator, not a validator: any quantity scales linearly and a
// non-positive quantity yields a non-positive base.
func ComputeTotalPrice(bagQuantity int, opts Options) decimal.Decimal {
	return Price(bagQuantity, opts).Total
}

// QuoteTotal prices a wizard quote.
func QuoteTotal(q domain.Quote) decimal.Decimal {
	return ComputeTotalPrice(q.BagQuantity, OptionsFromQuote(q))
}

// Price computes the full breakdown for a quantity and set of options.
func Price(bagQuantity int, opts Options) Breakdown {
	base := decimal.NewFromInt(int64(bagQuantity)).Div(thousand).Mul(BaseRatePer1000)

	var lines []Line
	if opts.UseCustomLogo {
		lines = append(lines, Line{Code: "custom_logo", Label: "Logo personnalisé", Amount: CustomLogoSupplement})
	}
	if opts.BothFaces {
		lines = append(lines, Line{Code: "both_faces", Label: "Impression sur les deux faces", Amount: BothFacesSupplement})
	}
	if opts.MultiplePositions {
		if extra := extraPositions(opts.PositionsCount); extra > 0 {
			lines = append(lines, Line{
				Code:   "multiple_positions",
				Label:  "Positions multiples",
				Amount: ExtraPositionRate.Mul(decimal.NewFromInt(int64(extra))),
			})
		}
	}
	if opts.ExclusiveSector {
		lines = append(lines, Line{Code: "exclusive_sector", Label: "Secteur exclusif", Amount: ExclusiveSectorCharge})
	}

	supplements := decimal.Zero
	for _, l := range lines {
		supplements = supplements.Add(l.Amount)
	}
	if lines == nil {
		lines = []Line{}
	}

	return Breakdown{
		BagQuantity:      bagQuantity,
		Base:             base.Round(2),
		Supplements:      lines,
		SupplementsTotal: supplements.Round(2),
		Total:            base.Add(supplements).Round(2),
	}
}

// extraPositions counts positions beyond the first; counts below one are
// read as one so a supplement is never negative.
func extraPositions(count int) int {
	if count < 1 {
		return 0
	}
	return count - 1
}
