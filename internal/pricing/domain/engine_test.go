package domain

import "testing"

func standConfig() Config {
	return Config{
		BasePriceCents: 1500,
		DefaultSpec:    Spec{"sugar": 2, "lemons": 2, "ice": 3},
		Extras: []ExtraCharge{
			{Attr: "sugar", Label: "Sugar", Unit: "tsp", PriceCents: 50},
			{Attr: "lemons", Label: "Lemons", Unit: "wedges", PriceCents: 100},
			{Attr: "ice", Label: "Ice", Unit: "cubes", PriceCents: 0},
		},
		TaxRate:  0.15,
		Currency: "ZAR",
	}
}

func TestUnitPriceCents(t *testing.T) {
	cfg := standConfig()

	tests := []struct {
		name string
		spec Spec
		want int64
	}{
		{"default spec has zero upcharge", Spec{"sugar": 2, "lemons": 2, "ice": 3}, 1500},
		{"levels above default upcharge per unit", Spec{"sugar": 3, "lemons": 4, "ice": 3}, 1750},
		{"levels below default give no discount", Spec{"sugar": 0, "lemons": 0, "ice": 0}, 1500},
		{"missing attributes read as zero", Spec{}, 1500},
		{"free extras add nothing", Spec{"sugar": 2, "lemons": 2, "ice": 5}, 1500},
		{"max everything", Spec{"sugar": 5, "lemons": 5, "ice": 5}, 1950},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UnitPriceCents(tt.spec, cfg); got != tt.want {
				t.Fatalf("UnitPriceCents(%v) = %d, want %d", tt.spec, got, tt.want)
			}
		})
	}
}

func TestUnitPriceNeverBelowBase(t *testing.T) {
	cfg := standConfig()
	for sugar := 0; sugar <= 5; sugar++ {
		for lemons := 0; lemons <= 5; lemons++ {
			spec := Spec{"sugar": sugar, "lemons": lemons}
			if got := UnitPriceCents(spec, cfg); got < cfg.BasePriceCents {
				t.Fatalf("UnitPriceCents(%v) = %d below base %d", spec, got, cfg.BasePriceCents)
			}
		}
	}
}

func TestOrderTotals(t *testing.T) {
	tests := []struct {
		name   string
		prices []int64
		rate   float64
		want   Totals
	}{
		{"empty order", nil, 0.15, Totals{0, 0, 0}},
		{"single item rounds tax half up", []int64{1750}, 0.15, Totals{1750, 263, 2013}},
		{"two items", []int64{1750, 1500}, 0.15, Totals{3250, 488, 3738}},
		{"zero rate means zero tax", []int64{1750, 1500}, 0, Totals{3250, 0, 3250}},
		{"exact cents need no rounding", []int64{1000}, 0.1, Totals{1000, 100, 1100}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := OrderTotals(tt.prices, tt.rate)
			if got != tt.want {
				t.Fatalf("OrderTotals(%v, %v) = %+v, want %+v", tt.prices, tt.rate, got, tt.want)
			}
			if got.TotalCents != got.SubtotalCents+got.TaxCents {
				t.Fatalf("total %d != subtotal %d + tax %d", got.TotalCents, got.SubtotalCents, got.TaxCents)
			}
		})
	}
}
