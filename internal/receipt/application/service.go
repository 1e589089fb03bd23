package application

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/lemonstand/pos/internal/order/domain"
	pricing "github.com/lemonstand/pos/internal/pricing/domain"
)

// Cache holds rendered receipts keyed by order id.
type Cache interface {
	Put(ctx context.Context, orderID, receipt string) error
}

// Service turns OrderPaid events into printable receipts.
type Service struct {
	log   *slog.Logger
	cache Cache
}

func NewService(log *slog.Logger, cache Cache) *Service {
	return &Service{log: log, cache: cache}
}

func (s *Service) Handle(ctx context.Context, ev domain.OrderPaid) error {
	receipt := Render(ev)
	if err := s.cache.Put(ctx, ev.OrderID, receipt); err != nil {
		return fmt.Errorf("cache receipt %s: %w", ev.OrderID, err)
	}
	s.log.Info("receipt cached", "order_id", ev.OrderID, "total_cents", ev.TotalCents)
	return nil
}

// Render lays out the receipt text. Amounts use the order's currency;
// unknown codes fall through the formatter untouched.
func Render(ev domain.OrderPaid) string {
	var b strings.Builder
	b.WriteString("LEMONADE STAND\n")
	fmt.Fprintf(&b, "order %s\n", ev.OrderID)
	fmt.Fprintf(&b, "%s\n\n", ev.PaidAt.Format("2006-01-02 15:04"))

	for _, item := range ev.Items {
		fmt.Fprintf(&b, "%-32s %s\n", item.Spec.Format(), pricing.FormatCents(item.UnitPriceCents, ev.Currency))
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "%-32s %s\n", "subtotal", pricing.FormatCents(ev.SubtotalCents, ev.Currency))
	fmt.Fprintf(&b, "%-32s %s\n", "tax", pricing.FormatCents(ev.TaxCents, ev.Currency))
	fmt.Fprintf(&b, "%-32s %s\n", "total", pricing.FormatCents(ev.TotalCents, ev.Currency))
	fmt.Fprintf(&b, "\npaid %s %s\n", ev.Method, pricing.FormatCents(ev.AmountCents, ev.Currency))
	if ev.ChangeCents > 0 {
		fmt.Fprintf(&b, "change %s\n", pricing.FormatCents(ev.ChangeCents, ev.Currency))
	}
	return b.String()
}
