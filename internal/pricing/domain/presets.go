package domain

const (
	PresetClassic     = "Classic"
	PresetLowSugar    = "Low Sugar"
	PresetExtraLemons = "Extra Lemons"
	PresetNoIce       = "No Ice"
)

// Preset is a named starting spec offered at order entry.
type Preset struct {
	Name string `json:"name"`
	Spec Spec   `json:"spec"`
}

// Presets returns the built-in starting specs in menu order.
func Presets() []Preset {
	return []Preset{
		{Name: PresetClassic, Spec: Spec{"sugar": 2, "lemons": 2, "ice": 3}},
		{Name: PresetLowSugar, Spec: Spec{"sugar": 1, "lemons": 2, "ice": 3}},
		{Name: PresetExtraLemons, Spec: Spec{"sugar": 2, "lemons": 4, "ice": 3}},
		{Name: PresetNoIce, Spec: Spec{"sugar": 2, "lemons": 2, "ice": 0}},
	}
}

// DefaultSpec is the Classic preset, the spec an order entry screen
// starts from.
func DefaultSpec() Spec {
	return Presets()[0].Spec.Clone()
}
