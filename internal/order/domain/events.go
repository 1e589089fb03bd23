package domain

import (
	"time"

	pricing "github.com/lemonstand/pos/internal/pricing/domain"
)

const EventOrderPaid = "OrderPaid"

// OrderPaid is emitted through the outbox when a payment commits.
type OrderPaid struct {
	OrderID       string        `json:"order_id"`
	Items         []PaidItem    `json:"items"`
	SubtotalCents int64         `json:"subtotal_cents"`
	TaxCents      int64         `json:"tax_cents"`
	TotalCents    int64         `json:"total_cents"`
	Currency      string        `json:"currency"`
	Method        PaymentMethod `json:"method"`
	AmountCents   int64         `json:"amount_cents"`
	ChangeCents   int64         `json:"change_cents"`
	PaidAt        time.Time     `json:"paid_at"`
}

type PaidItem struct {
	Spec           pricing.Spec `json:"spec"`
	UnitPriceCents int64        `json:"unit_price_cents"`
}

// NewOrderPaid flattens a paid order into its event.
func NewOrderPaid(o Order, currency string) OrderPaid {
	items := make([]PaidItem, len(o.Items))
	for i, item := range o.Items {
		items[i] = PaidItem{Spec: item.Spec.Clone(), UnitPriceCents: item.UnitPriceCents}
	}
	ev := OrderPaid{
		OrderID:       o.ID,
		Items:         items,
		SubtotalCents: o.SubtotalCents,
		TaxCents:      o.TaxCents,
		TotalCents:    o.TotalCents,
		Currency:      currency,
		PaidAt:        time.Now().UTC(),
	}
	if o.Payment != nil {
		ev.Method = o.Payment.Method
		ev.AmountCents = o.Payment.AmountCents
		ev.ChangeCents = o.Payment.ChangeCents
	}
	return ev
}
