package outbox

import "time"

type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusSent       Status = "sent"
	StatusFailed     Status = "failed"
)

// Event is one row leased from the outbox table; retry bookkeeping lives
// in SQL only.
type Event struct {
	ID          int64
	AggregateID string
	Type        string
	Payload     []byte
	Traceparent string
	CreatedAt   time.Time
}
