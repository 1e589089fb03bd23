package integration

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	orderpg "github.com/lemonstand/pos/internal/order/infrastructure/postgres"
	pricing "github.com/lemonstand/pos/internal/pricing/domain"
)

func TestPricingConfigRoundTrip(t *testing.T) {
	if os.Getenv("INTEGRATION") == "" {
		t.Skip("set INTEGRATION=1 to run container tests")
	}

	ctx := context.Background()
	env, err := Setup(ctx)
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	defer env.Teardown(ctx)

	pool, err := pgxpool.New(ctx, env.PGURL)
	if err != nil {
		t.Fatalf("pg connect: %v", err)
	}
	defer pool.Close()

	if err := orderpg.Migrate(ctx, pool); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	log := slog.New(slog.DiscardHandler)
	repo := orderpg.NewRepository(log, pool)

	// Empty database: the service falls back to defaults.
	_, ok, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if ok {
		t.Fatal("found pricing in empty database")
	}

	want := pricing.DefaultConfig()
	want.BasePriceCents = 1800
	want.Currency = "USD"
	if err := repo.Save(ctx, want); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, ok, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !ok {
		t.Fatal("saved pricing not found")
	}
	if got.BasePriceCents != 1800 || got.Currency != "USD" || got.TaxRate != want.TaxRate {
		t.Fatalf("loaded %+v", got)
	}
	if len(got.Extras) != len(want.Extras) || got.Extras[0].Attr != "sugar" {
		t.Fatalf("extras = %+v", got.Extras)
	}
	if got.DefaultSpec["ice"] != 3 {
		t.Fatalf("default spec = %v", got.DefaultSpec)
	}

	// Last writer wins on the single row.
	want.BasePriceCents = 2200
	if err := repo.Save(ctx, want); err != nil {
		t.Fatalf("second save: %v", err)
	}
	got, _, err = repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.BasePriceCents != 2200 {
		t.Fatalf("base = %d after overwrite", got.BasePriceCents)
	}
}

func TestOutboxLeaseCycle(t *testing.T) {
	if os.Getenv("INTEGRATION") == "" {
		t.Skip("set INTEGRATION=1 to run container tests")
	}

	ctx := context.Background()
	env, err := Setup(ctx)
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	defer env.Teardown(ctx)

	pool, err := pgxpool.New(ctx, env.PGURL)
	if err != nil {
		t.Fatalf("pg connect: %v", err)
	}
	defer pool.Close()

	if err := orderpg.Migrate(ctx, pool); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	log := slog.New(slog.DiscardHandler)
	repo := orderpg.NewRepository(log, pool)
	store := orderpg.NewOutboxStore(log, pool)

	if err := repo.Record(ctx, "ord-1", "OrderPaid", []byte(`{"order_id":"ord-1"}`), ""); err != nil {
		t.Fatalf("record: %v", err)
	}

	events, err := store.LockBatch(ctx, "it-relay", 10, 5*time.Second)
	if err != nil {
		t.Fatalf("lock batch: %v", err)
	}
	if len(events) != 1 || events[0].AggregateID != "ord-1" || events[0].Type != "OrderPaid" {
		t.Fatalf("events = %+v", events)
	}

	// Locked rows stay invisible to other relays.
	again, err := store.LockBatch(ctx, "other-relay", 10, 5*time.Second)
	if err != nil {
		t.Fatalf("second lock: %v", err)
	}
	if len(again) != 0 {
		t.Fatalf("leased event re-locked: %+v", again)
	}

	if err := store.MarkSent(ctx, []int64{events[0].ID}); err != nil {
		t.Fatalf("mark sent: %v", err)
	}
}
