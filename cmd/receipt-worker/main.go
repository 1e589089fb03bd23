package main

import (
	"context"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/lemonstand/pos/internal/receipt/application"
	receiptkafka "github.com/lemonstand/pos/internal/receipt/infrastructure/kafka"
	receiptredis "github.com/lemonstand/pos/internal/receipt/infrastructure/redis"
	"github.com/lemonstand/pos/pkg/idempotency"
	"github.com/lemonstand/pos/pkg/logging"
	"github.com/lemonstand/pos/pkg/shutdown"
	"github.com/lemonstand/pos/pkg/tracing"
)

func main() {
	_ = godotenv.Load()
	log := logging.New(logging.ParseLevel(os.Getenv("LOG_LEVEL")))

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	kafkaAddr := env("KAFKA_ADDR", "localhost:9092")
	otlpURL := env("OTLP_URL", "http://localhost:4318")
	redisAddr := env("REDIS_ADDR", "localhost:6379")
	inTopic := env("IN_TOPIC", "order.events")

	tp, err := tracing.Init(ctx, "receipt-worker", otlpURL, log)
	if err != nil {
		log.Error("otel init failed", "err", err)
		os.Exit(1)
	}
	defer func() { _ = tp.Shutdown(ctx) }()

	redisDB := redis.NewClient(&redis.Options{Addr: redisAddr})
	idem := idempotency.NewStore(redisDB, 10*time.Minute)
	cache := receiptredis.NewCache(redisDB, 24*time.Hour)

	svc := application.NewService(log, cache)
	consumer := receiptkafka.NewConsumer(log, []string{kafkaAddr}, inTopic, "receipt-worker", svc, idem)

	go func() {
		if err := consumer.Run(ctx); err != nil {
			log.Error("consumer stopped", "err", err)
			cancel()
		}
	}()

	<-ctx.Done()
	log.Info("receipt-worker shutdown")
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
