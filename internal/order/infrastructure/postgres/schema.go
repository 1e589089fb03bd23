package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Migrate creates the two tables this service owns. Idempotent.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS pricing_config (
			id               int PRIMARY KEY,
			base_price_cents bigint NOT NULL,
			default_spec     jsonb NOT NULL,
			extras           jsonb NOT NULL,
			tax_rate         double precision NOT NULL,
			currency         text NOT NULL,
			updated_at       timestamptz NOT NULL DEFAULT now()
		);
		CREATE TABLE IF NOT EXISTS outbox (
			id           bigserial PRIMARY KEY,
			aggregate_type text NOT NULL,
			aggregate_id text NOT NULL,
			type         text NOT NULL,
			payload      jsonb NOT NULL,
			traceparent  text NOT NULL DEFAULT '',
			status       text NOT NULL DEFAULT 'pending',
			relay_id     text,
			lease_until  timestamptz,
			retry_count  int NOT NULL DEFAULT 0,
			last_error   text,
			created_at   timestamptz NOT NULL DEFAULT now()
		);
		CREATE INDEX IF NOT EXISTS outbox_pending_idx ON outbox (id) WHERE status = 'pending';
	`)
	return err
}
