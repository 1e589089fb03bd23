package domain

import "math"

// UnitPriceCents quotes one unit of the given spec under the given rules:
// base price plus, per extra-charge rule, the levels above the configured
// default times the rule's unit price. Levels below default give no
// discount. Pure; never fails.
func UnitPriceCents(spec Spec, cfg Config) int64 {
	price := cfg.BasePriceCents
	for _, extra := range cfg.Extras {
		over := spec.Level(extra.Attr) - cfg.DefaultSpec.Level(extra.Attr)
		if over > 0 {
			price += int64(over) * extra.PriceCents
		}
	}
	return price
}

// Totals are an order's derived money fields.
type Totals struct {
	SubtotalCents int64 `json:"subtotal_cents"`
	TaxCents      int64 `json:"tax_cents"`
	TotalCents    int64 `json:"total_cents"`
}

// OrderTotals sums unit prices and applies the tax rate, rounding tax
// half-up at cents. A zero rate yields zero tax.
func OrderTotals(unitPriceCents []int64, taxRate float64) Totals {
	var subtotal int64
	for _, p := range unitPriceCents {
		subtotal += p
	}
	tax := roundHalfUpCents(float64(subtotal) * taxRate)
	return Totals{
		SubtotalCents: subtotal,
		TaxCents:      tax,
		TotalCents:    subtotal + tax,
	}
}

func roundHalfUpCents(x float64) int64 {
	return int64(math.Floor(x + 0.5))
}
