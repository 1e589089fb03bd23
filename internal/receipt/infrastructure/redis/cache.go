package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache keeps rendered receipts around long enough for reprints.
type Cache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewCache(rdb *redis.Client, ttl time.Duration) *Cache {
	return &Cache{rdb: rdb, ttl: ttl}
}

func (c *Cache) Put(ctx context.Context, orderID, receipt string) error {
	return c.rdb.Set(ctx, key(orderID), receipt, c.ttl).Err()
}

func (c *Cache) Get(ctx context.Context, orderID string) (string, error) {
	return c.rdb.Get(ctx, key(orderID)).Result()
}

func key(orderID string) string {
	return "receipt:" + orderID
}
