package application

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"

	"github.com/lemonstand/pos/internal/order/domain"
	pricing "github.com/lemonstand/pos/internal/pricing/domain"
)

const (
	capMessage              = "Nice try! Max 10 per order."
	insufficientCashMessage = "Insufficient cash amount"
)

const persistTimeout = 5 * time.Second

// Store is the single state container: it owns the current order, the
// pricing configuration and the UI flags, and is the sole mutator of all
// of them. Every operation commits exactly one new snapshot; observers
// never see a partially-updated state.
type Store struct {
	log    *slog.Logger
	repo   PricingRepository
	events EventRecorder

	mu      sync.Mutex
	state   State
	subs    map[int]func(State)
	nextSub int
}

// NewStore builds a store around an already-loaded pricing config.
// repo and events may be nil; persistence and event export are then off.
func NewStore(log *slog.Logger, repo PricingRepository, events EventRecorder, cfg pricing.Config) *Store {
	return &Store{
		log:    log,
		repo:   repo,
		events: events,
		state: State{
			Order:       domain.NewOrder(),
			Pricing:     cfg.Normalize(),
			CurrentSpec: pricing.DefaultSpec(),
			Theme:       ThemeLight,
		},
		subs: map[int]func(State){},
	}
}

// Subscribe registers an observer called with each committed snapshot.
// The returned func unregisters it.
func (s *Store) Subscribe(fn func(State)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

// Snapshot returns the current committed state without mutating.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone()
}

// publish commits the state under s.mu, releases the lock and notifies
// subscribers with the snapshot. Callers must hold s.mu.
func (s *Store) publish() State {
	snap := s.state.clone()
	subs := make([]func(State), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()
	for _, fn := range subs {
		fn(snap)
	}
	return snap
}

// retotal recomputes the derived order totals from the line items and the
// current tax rate. Callers must hold s.mu.
func (s *Store) retotal() {
	prices := make([]int64, len(s.state.Order.Items))
	for i, item := range s.state.Order.Items {
		prices[i] = item.UnitPriceCents
	}
	t := pricing.OrderTotals(prices, s.state.Pricing.TaxRate)
	s.state.Order.SubtotalCents = t.SubtotalCents
	s.state.Order.TaxCents = t.TaxCents
	s.state.Order.TotalCents = t.TotalCents
}

// Add appends a new line item priced under the current configuration.
// At the item cap it is a no-op aside from a warning toast.
func (s *Store) Add(spec pricing.Spec) State {
	s.mu.Lock()
	if len(s.state.Order.Items) >= domain.MaxItems {
		s.state.UI.Toast = &Toast{Level: ToastWarn, Message: capMessage}
		return s.publish()
	}
	spec = spec.Clamp()
	s.state.Order.Items = append(s.state.Order.Items, domain.LineItem{
		ID:             uuid.NewString(),
		Spec:           spec,
		UnitPriceCents: pricing.UnitPriceCents(spec, s.state.Pricing),
	})
	s.retotal()
	return s.publish()
}

// Remove drops the line item with the given id; unknown ids are a silent
// no-op so stale view references stay harmless.
func (s *Store) Remove(itemID string) State {
	s.mu.Lock()
	if i := s.state.Order.ItemIndex(itemID); i >= 0 {
		s.state.Order.Items = append(s.state.Order.Items[:i], s.state.Order.Items[i+1:]...)
		s.retotal()
	}
	return s.publish()
}

// Edit replaces a line item's spec and re-prices it under the current
// configuration (the frozen quote does not survive an edit). Silent
// no-op for unknown ids.
func (s *Store) Edit(itemID string, spec pricing.Spec) State {
	s.mu.Lock()
	if i := s.state.Order.ItemIndex(itemID); i >= 0 {
		spec = spec.Clamp()
		s.state.Order.Items[i].Spec = spec
		s.state.Order.Items[i].UnitPriceCents = pricing.UnitPriceCents(spec, s.state.Pricing)
		s.retotal()
	}
	return s.publish()
}

// Duplicate copies a line item's spec and quoted price verbatim into a
// new item; it never re-prices. Cap behaves exactly like Add.
func (s *Store) Duplicate(itemID string) State {
	s.mu.Lock()
	if len(s.state.Order.Items) >= domain.MaxItems {
		s.state.UI.Toast = &Toast{Level: ToastWarn, Message: capMessage}
		return s.publish()
	}
	if i := s.state.Order.ItemIndex(itemID); i >= 0 {
		src := s.state.Order.Items[i]
		s.state.Order.Items = append(s.state.Order.Items, domain.LineItem{
			ID:             uuid.NewString(),
			Spec:           src.Spec.Clone(),
			UnitPriceCents: src.UnitPriceCents,
		})
		s.retotal()
	}
	return s.publish()
}

// ClearOrder swaps in a fresh empty order. UI flags are untouched; the
// view layer confirms with the user before calling.
func (s *Store) ClearOrder() State {
	s.mu.Lock()
	s.state.Order = domain.NewOrder()
	return s.publish()
}

// StartNewOrder swaps in a fresh empty order and closes every modal,
// drawer and toast. The previous order is simply superseded, never
// deleted out from under a receipt view holding it.
func (s *Store) StartNewOrder() State {
	s.mu.Lock()
	s.state.Order = domain.NewOrder()
	s.state.UI = UIState{}
	return s.publish()
}

// ProcessPayment confirms payment for the current order. Cash below the
// total is rejected with an error toast and the payment modal stays open.
// On success the payment record, the paid flag and the two visibility
// transitions (payment closes, receipt opens) commit atomically, then the
// OrderPaid event is recorded fire-and-forget.
func (s *Store) ProcessPayment(ctx context.Context, method domain.PaymentMethod, amountCents int64) State {
	s.mu.Lock()
	total := s.state.Order.TotalCents

	p := domain.Payment{Method: method, AmountCents: amountCents}
	if method == domain.MethodCash {
		if amountCents < total {
			s.state.UI.Toast = &Toast{Level: ToastError, Message: insufficientCashMessage}
			return s.publish()
		}
		if change := amountCents - total; change > 0 {
			p.ChangeCents = change
		}
	} else {
		p.AmountCents = total
	}

	s.state.Order.Payment = &p
	s.state.Order.Paid = true
	s.state.UI.ShowPayment = false
	s.state.UI.ShowReceipt = true
	ev := domain.NewOrderPaid(s.state.Order, s.state.Pricing.Currency)
	snap := s.publish()

	s.recordPaid(ctx, ev)
	return snap
}

// recordPaid hands the event to the outbox without blocking the caller;
// a recording failure is logged, never surfaced to the till.
func (s *Store) recordPaid(ctx context.Context, ev domain.OrderPaid) {
	if s.events == nil {
		return
	}
	carrier := propagation.MapCarrier{}
	otel.GetTextMapPropagator().Inject(ctx, carrier)
	traceparent := carrier["traceparent"]

	go func() {
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), persistTimeout)
		defer cancel()
		payload, err := json.Marshal(ev)
		if err != nil {
			s.log.Error("order paid event marshal failed", "order_id", ev.OrderID, "err", err)
			return
		}
		if err := s.events.Record(ctx, ev.OrderID, domain.EventOrderPaid, payload, traceparent); err != nil {
			s.log.Error("order paid event record failed", "order_id", ev.OrderID, "err", err)
		}
	}()
}

// UpdatePricing replaces the pricing configuration wholesale and persists
// it fire-and-forget. Existing line items keep their frozen quotes and the
// current totals are deliberately left as-is until the next item mutation.
func (s *Store) UpdatePricing(ctx context.Context, cfg pricing.Config) State {
	s.mu.Lock()
	cfg = cfg.Normalize()
	s.state.Pricing = cfg
	snap := s.publish()

	if s.repo != nil {
		go func() {
			ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), persistTimeout)
			defer cancel()
			if err := s.repo.Save(ctx, cfg); err != nil {
				s.log.Error("pricing save failed", "err", err)
			}
		}()
	}
	return snap
}

// SetCurrentSpec stores the order-entry scratch spec.
func (s *Store) SetCurrentSpec(spec pricing.Spec) State {
	s.mu.Lock()
	s.state.CurrentSpec = spec.Clamp()
	return s.publish()
}

// SetTheme records the rendering hint for the presentation layer.
func (s *Store) SetTheme(theme Theme) State {
	s.mu.Lock()
	s.state.Theme = theme
	return s.publish()
}

func (s *Store) ShowPayment() State  { return s.setFlag(func(ui *UIState) { ui.ShowPayment = true }) }
func (s *Store) HidePayment() State  { return s.setFlag(func(ui *UIState) { ui.ShowPayment = false }) }
func (s *Store) ShowReceipt() State  { return s.setFlag(func(ui *UIState) { ui.ShowReceipt = true }) }
func (s *Store) HideReceipt() State  { return s.setFlag(func(ui *UIState) { ui.ShowReceipt = false }) }
func (s *Store) ShowSettings() State { return s.setFlag(func(ui *UIState) { ui.ShowSettings = true }) }
func (s *Store) HideSettings() State {
	return s.setFlag(func(ui *UIState) { ui.ShowSettings = false })
}

// ShowToast replaces any active toast; there is no queue.
func (s *Store) ShowToast(level ToastLevel, msg string) State {
	return s.setFlag(func(ui *UIState) { ui.Toast = &Toast{Level: level, Message: msg} })
}

func (s *Store) HideToast() State {
	return s.setFlag(func(ui *UIState) { ui.Toast = nil })
}

func (s *Store) setFlag(mut func(*UIState)) State {
	s.mu.Lock()
	mut(&s.state.UI)
	return s.publish()
}
