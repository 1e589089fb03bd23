package application

import (
	"context"

	pricing "github.com/lemonstand/pos/internal/pricing/domain"
)

// PricingRepository persists the pricing configuration, the only entity
// that survives a restart. Load reports ok=false when nothing is stored.
type PricingRepository interface {
	Load(ctx context.Context) (cfg pricing.Config, ok bool, err error)
	Save(ctx context.Context, cfg pricing.Config) error
}

// EventRecorder appends a domain event for asynchronous delivery.
type EventRecorder interface {
	Record(ctx context.Context, aggregateID, eventType string, payload []byte, traceparent string) error
}
