package domain

import (
	"fmt"
	"sort"
	"strings"
)

// Attribute levels are quantized steps; anything outside the range is
// clamped, never rejected.
const (
	MinLevel = 0
	MaxLevel = 5
)

// Spec is a product configuration: attribute name to level.
type Spec map[string]int

// ClampLevel forces a level into [MinLevel, MaxLevel].
func ClampLevel(v int) int {
	if v < MinLevel {
		return MinLevel
	}
	if v > MaxLevel {
		return MaxLevel
	}
	return v
}

// Clamp returns a copy of the spec with every level clamped.
func (s Spec) Clamp() Spec {
	out := make(Spec, len(s))
	for attr, level := range s {
		out[attr] = ClampLevel(level)
	}
	return out
}

// Level reads an attribute level; a missing attribute is level 0.
func (s Spec) Level(attr string) int {
	return s[attr]
}

// Clone returns an independent copy.
func (s Spec) Clone() Spec {
	out := make(Spec, len(s))
	for attr, level := range s {
		out[attr] = level
	}
	return out
}

// Format renders the spec for receipts and logs, attributes sorted for
// stable output, e.g. "ice:3 lemons:4 sugar:3".
func (s Spec) Format() string {
	attrs := make([]string, 0, len(s))
	for attr := range s {
		attrs = append(attrs, attr)
	}
	sort.Strings(attrs)

	parts := make([]string, 0, len(attrs))
	for _, attr := range attrs {
		parts = append(parts, fmt.Sprintf("%s:%d", attr, s[attr]))
	}
	return strings.Join(parts, " ")
}
