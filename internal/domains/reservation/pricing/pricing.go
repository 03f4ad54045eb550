// Package pricing computes the charges of a stay from the room type's nightly rate.
//
// Arithmetic is exact; values are rounded to cents only by Totals.Rounded, at the point
// they are persisted or rendered.
package pricing

import (
	"hotel/shared/failure"

	"github.com/shopspring/decimal"
)

const centPlaces = 2

// TaxRate is the combined tax and service charge applied to the base amount.
var TaxRate = decimal.RequireFromString("0.09")

type Totals struct {
	Base  decimal.Decimal
	Tax   decimal.Decimal
	Grand decimal.Decimal
}

func ComputeTotals(pricePerNight decimal.Decimal, nights int) (Totals, error) {
	if nights < 1 {
		return Totals{}, failure.BadRequestFromString("number of nights must be at least 1")
	}

	if pricePerNight.IsNegative() {
		return Totals{}, failure.BadRequestFromString("nightly price cannot be negative")
	}

	base := pricePerNight.Mul(decimal.NewFromInt(int64(nights)))
	tax := base.Mul(TaxRate)

	return Totals{
		Base:  base,
		Tax:   tax,
		Grand: base.Add(tax),
	}, nil
}

// Rounded returns the totals at cent precision. Grand is rounded from the exact sum so it
// never drifts by the rounding of its parts.
func (t Totals) Rounded() Totals {
	return Totals{
		Base:  t.Base.Round(centPlaces),
		Tax:   t.Tax.Round(centPlaces),
		Grand: t.Grand.Round(centPlaces),
	}
}
