package domain

import (
	"strings"
	"testing"
)

func TestSpecClamp(t *testing.T) {
	in := Spec{"sugar": 9, "lemons": -3, "ice": 4}
	got := in.Clamp()

	if got["sugar"] != MaxLevel || got["lemons"] != MinLevel || got["ice"] != 4 {
		t.Fatalf("Clamp gave %v", got)
	}
	if in["sugar"] != 9 {
		t.Fatalf("Clamp mutated its receiver: %v", in)
	}
}

func TestSpecFormatSortsAttributes(t *testing.T) {
	got := Spec{"sugar": 3, "ice": 3, "lemons": 4}.Format()
	if got != "ice:3 lemons:4 sugar:3" {
		t.Fatalf("Format() = %q", got)
	}
}

func TestConfigNormalizeClampsTaxRate(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{-0.1, 0},
		{0, 0},
		{0.15, 0.15},
		{0.25, 0.25},
		{0.9, 0.25},
	}
	for _, tt := range tests {
		cfg := standConfig()
		cfg.TaxRate = tt.in
		if got := cfg.Normalize().TaxRate; got != tt.want {
			t.Fatalf("Normalize tax %v = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestConfigNormalizeFloorsBasePrice(t *testing.T) {
	cfg := standConfig()
	cfg.BasePriceCents = -100
	cfg.DefaultSpec = Spec{"sugar": 7}

	got := cfg.Normalize()
	if got.BasePriceCents != 0 {
		t.Fatalf("base = %d, want 0", got.BasePriceCents)
	}
	if got.DefaultSpec["sugar"] != MaxLevel {
		t.Fatalf("default spec not clamped: %v", got.DefaultSpec)
	}
}

func TestFormatCentsUnknownCodePassesThrough(t *testing.T) {
	got := FormatCents(1750, "WAT")
	if !strings.Contains(got, "WAT") || !strings.Contains(got, "17.50") {
		t.Fatalf("FormatCents fallback = %q", got)
	}
}

func TestFormatCentsKnownCode(t *testing.T) {
	if got := FormatCents(1750, "ZAR"); got == "" {
		t.Fatal("FormatCents returned empty for ZAR")
	}
}

func TestDefaultSpecIsClassicPreset(t *testing.T) {
	spec := DefaultSpec()
	if spec["sugar"] != 2 || spec["lemons"] != 2 || spec["ice"] != 3 {
		t.Fatalf("DefaultSpec() = %v", spec)
	}
	spec["sugar"] = 5
	if DefaultSpec()["sugar"] != 2 {
		t.Fatal("DefaultSpec shares state across calls")
	}
}
