package application

import (
	"github.com/lemonstand/pos/internal/order/domain"
	pricing "github.com/lemonstand/pos/internal/pricing/domain"
)

type ToastLevel string

const (
	ToastInfo  ToastLevel = "info"
	ToastWarn  ToastLevel = "warn"
	ToastError ToastLevel = "error"
)

// Toast is a single-slot transient notification; a new one replaces any
// existing one, dismissal is the view layer's job.
type Toast struct {
	Level   ToastLevel `json:"level"`
	Message string     `json:"message"`
}

type Theme string

const (
	ThemeLight        Theme = "light"
	ThemeDark         Theme = "dark"
	ThemeHighContrast Theme = "high-contrast"
)

// UIState holds the transient visibility flags. The three booleans are
// independent; the normal flow is sequential but nothing enforces it.
// Never persisted.
type UIState struct {
	ShowPayment  bool   `json:"show_payment"`
	ShowReceipt  bool   `json:"show_receipt"`
	ShowSettings bool   `json:"show_settings"`
	Toast        *Toast `json:"toast,omitempty"`
}

// State is one immutable committed snapshot: everything the view layer
// renders from.
type State struct {
	Order       domain.Order   `json:"order"`
	Pricing     pricing.Config `json:"pricing"`
	CurrentSpec pricing.Spec   `json:"current_spec"`
	Theme       Theme          `json:"theme"`
	UI          UIState        `json:"ui"`
}

func (st State) clone() State {
	out := st
	out.Order = st.Order.Clone()
	out.Pricing = st.Pricing.Clone()
	out.CurrentSpec = st.CurrentSpec.Clone()
	if st.UI.Toast != nil {
		t := *st.UI.Toast
		out.UI.Toast = &t
	}
	return out
}
