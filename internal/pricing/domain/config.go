package domain

// Tax rate bounds; values outside are clamped on every update.
const (
	MinTaxRate = 0.0
	MaxTaxRate = 0.25
)

// ExtraCharge prices levels above the configured default for one attribute.
// Levels at or below the default never discount.
type ExtraCharge struct {
	Attr       string `json:"attr"`
	Label      string `json:"label"`
	Unit       string `json:"unit"`
	PriceCents int64  `json:"price_cents"`
}

// Config is the pricing rule set: the only entity that survives a restart.
type Config struct {
	BasePriceCents int64         `json:"base_price_cents"`
	DefaultSpec    Spec          `json:"default_spec"`
	Extras         []ExtraCharge `json:"extras"`
	TaxRate        float64       `json:"tax_rate"`
	Currency       string        `json:"currency"`
}

// DefaultConfig is the stand's out-of-the-box pricing.
func DefaultConfig() Config {
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

// Normalize clamps the config into its domain: non-negative base price,
// clamped default spec levels, tax rate in [MinTaxRate, MaxTaxRate].
// Currency passes through untouched; unknown codes are a display concern.
func (c Config) Normalize() Config {
	out := c.Clone()
	if out.BasePriceCents < 0 {
		out.BasePriceCents = 0
	}
	out.DefaultSpec = out.DefaultSpec.Clamp()
	if out.TaxRate < MinTaxRate {
		out.TaxRate = MinTaxRate
	}
	if out.TaxRate > MaxTaxRate {
		out.TaxRate = MaxTaxRate
	}
	return out
}

// Clone returns an independent copy.
func (c Config) Clone() Config {
	out := c
	out.DefaultSpec = c.DefaultSpec.Clone()
	out.Extras = make([]ExtraCharge, len(c.Extras))
	copy(out.Extras, c.Extras)
	return out
}
