package domain

import (
	"time"

	"github.com/google/uuid"

	pricing "github.com/lemonstand/pos/internal/pricing/domain"
)

// MaxItems bounds line items per order; add/duplicate past it are soft
// failures surfaced as a toast.
const MaxItems = 10

type PaymentMethod string

const (
	MethodCash  PaymentMethod = "cash"
	MethodCard  PaymentMethod = "card"
	MethodOther PaymentMethod = "other"
)

// LineItem is one priced unit. The unit price is a frozen quote: computed
// at add/edit time and never recomputed when pricing later changes.
type LineItem struct {
	ID             string       `json:"id"`
	Spec           pricing.Spec `json:"spec"`
	UnitPriceCents int64        `json:"unit_price_cents"`
}

// Payment is created once, at successful confirmation, and immutable after.
// ChangeCents is only set for cash tendered above the total.
type Payment struct {
	Method      PaymentMethod `json:"method"`
	AmountCents int64         `json:"amount_cents"`
	ChangeCents int64         `json:"change_cents,omitempty"`
}

// Order is the aggregate root. Subtotal/tax/total are derived from Items
// and never set independently.
type Order struct {
	ID            string     `json:"id"`
	Items         []LineItem `json:"items"`
	SubtotalCents int64      `json:"subtotal_cents"`
	TaxCents      int64      `json:"tax_cents"`
	TotalCents    int64      `json:"total_cents"`
	Paid          bool       `json:"paid"`
	CreatedAt     time.Time  `json:"created_at"`
	Payment       *Payment   `json:"payment,omitempty"`
}

// NewOrder returns a fresh empty order.
func NewOrder() Order {
	return Order{
		ID:        uuid.NewString(),
		Items:     []LineItem{},
		CreatedAt: time.Now().UTC(),
	}
}

// ItemIndex finds a line item by id, -1 if absent.
func (o Order) ItemIndex(id string) int {
	for i, item := range o.Items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

// Clone returns an independent deep copy for snapshot publication.
func (o Order) Clone() Order {
	out := o
	out.Items = make([]LineItem, len(o.Items))
	for i, item := range o.Items {
		item.Spec = item.Spec.Clone()
		out.Items[i] = item
	}
	if o.Payment != nil {
		p := *o.Payment
		out.Payment = &p
	}
	return out
}
