package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	pricing "github.com/lemonstand/pos/internal/pricing/domain"
	"github.com/lemonstand/pos/pkg/outbox"
)

// Repository stores the single pricing_config row and appends outbox
// events. Orders themselves are never persisted.
type Repository struct {
	log  *slog.Logger
	pool *pgxpool.Pool
}

func NewRepository(log *slog.Logger, pool *pgxpool.Pool) *Repository {
	return &Repository{log: log, pool: pool}
}

func (r *Repository) Load(ctx context.Context) (pricing.Config, bool, error) {
	var (
		cfg         pricing.Config
		defaultSpec []byte
		extras      []byte
	)
	err := r.pool.QueryRow(ctx, `SELECT base_price_cents, default_spec, extras, tax_rate, currency
		FROM pricing_config WHERE id = 1`).
		Scan(&cfg.BasePriceCents, &defaultSpec, &extras, &cfg.TaxRate, &cfg.Currency)
	if errors.Is(err, pgx.ErrNoRows) {
		return pricing.Config{}, false, nil
	}
	if err != nil {
		return pricing.Config{}, false, err
	}
	if err := json.Unmarshal(defaultSpec, &cfg.DefaultSpec); err != nil {
		return pricing.Config{}, false, err
	}
	if err := json.Unmarshal(extras, &cfg.Extras); err != nil {
		return pricing.Config{}, false, err
	}
	return cfg.Normalize(), true, nil
}

func (r *Repository) Save(ctx context.Context, cfg pricing.Config) error {
	defaultSpec, err := json.Marshal(cfg.DefaultSpec)
	if err != nil {
		return err
	}
	extras, err := json.Marshal(cfg.Extras)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `INSERT INTO pricing_config (id, base_price_cents, default_spec, extras, tax_rate, currency, updated_at)
		VALUES (1,$1,$2,$3,$4,$5,now())
		ON CONFLICT (id) DO UPDATE SET base_price_cents=$1, default_spec=$2, extras=$3, tax_rate=$4, currency=$5, updated_at=now()`,
		cfg.BasePriceCents, defaultSpec, extras, cfg.TaxRate, cfg.Currency)
	return err
}

func (r *Repository) Record(ctx context.Context, aggregateID, eventType string, payload []byte, traceparent string) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO outbox (aggregate_type, aggregate_id, type, payload, traceparent, status)
		VALUES ('order',$1,$2,$3,$4,'pending')`,
		aggregateID, eventType, payload, traceparent)
	return err
}

// OutboxStore leases pending outbox rows for the relay.
type OutboxStore struct {
	log  *slog.Logger
	pool *pgxpool.Pool
}

func NewOutboxStore(log *slog.Logger, pool *pgxpool.Pool) *OutboxStore {
	return &OutboxStore{log: log, pool: pool}
}

func (s *OutboxStore) LockBatch(ctx context.Context, relayID string, batchSize int, lease time.Duration) ([]outbox.Event, error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	rows, err := tx.Query(ctx, `
		SELECT id, aggregate_id, type, payload, traceparent, created_at
		FROM outbox
		WHERE status = 'pending'
		ORDER BY id
		FOR UPDATE SKIP LOCKED
		LIMIT $1
	`, batchSize)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []outbox.Event
	for rows.Next() {
		var event outbox.Event
		if err := rows.Scan(&event.ID, &event.AggregateID, &event.Type, &event.Payload, &event.Traceparent, &event.CreatedAt); err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	if len(events) == 0 {
		return nil, tx.Commit(ctx)
	}

	ids := make([]int64, 0, len(events))
	for _, ev := range events {
		ids = append(ids, ev.ID)
	}

	_, err = tx.Exec(ctx, `UPDATE outbox SET status='in_progress', relay_id=$1, lease_until=now() + $2::interval WHERE id = ANY($3)`, relayID, lease.String(), ids)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return events, nil
}

func (s *OutboxStore) MarkSent(ctx context.Context, ids []int64) error {
	_, err := s.pool.Exec(ctx, `UPDATE outbox SET status='sent' WHERE id = ANY($1)`, ids)
	return err
}

func (s *OutboxStore) MarkFailed(ctx context.Context, id int64, errMsg string) error {
	_, err := s.pool.Exec(ctx, `UPDATE outbox SET status='failed', last_error=$2, retry_count=retry_count+1 WHERE id=$1`, id, errMsg)
	return err
}

func (s *OutboxStore) ExtendLease(ctx context.Context, relayID string, ids []int64, lease time.Duration) error {
	_, err := s.pool.Exec(ctx, `UPDATE outbox SET lease_until=now() + $1::interval WHERE id = ANY($2) AND relay_id=$3`, lease.String(), ids, relayID)
	return err
}
