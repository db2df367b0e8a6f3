// Package cache provides the Redis-backed dashboard cache.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/hotel-ledger/backend/config"
	"github.com/hotel-ledger/backend/internal/application/adapter"
)

// NewRedisClient creates a Redis client from configuration.
func NewRedisClient(cfg config.RedisConfig) (*redis.Client, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}
	if cfg.Password != "" {
		opts.Password = cfg.Password
	}
	opts.DB = cfg.DB

	return redis.NewClient(opts), nil
}

// dashboardCache implements adapter.DashboardCache on top of Redis.
type dashboardCache struct {
	client *redis.Client
}

// NewDashboardCache creates a new Redis-backed dashboard cache.
func NewDashboardCache(client *redis.Client) adapter.DashboardCache {
	return &dashboardCache{
		client: client,
	}
}

// Get returns the cached payload for a key, with found=false on a miss.
func (c *dashboardCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	payload, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return payload, true, nil
}

// Set stores a payload under a key with the given TTL.
func (c *dashboardCache) Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error {
	return c.client.Set(ctx, key, payload, ttl).Err()
}

// InvalidateHotel drops every cached payload belonging to a hotel. Keys are
// namespaced as dashboard:<hotel-id>:..., so a SCAN over that prefix finds
// every window the hotel has cached.
func (c *dashboardCache) InvalidateHotel(ctx context.Context, hotelID uuid.UUID) error {
	pattern := fmt.Sprintf("dashboard:%s:*", hotelID)

	iter := c.client.Scan(ctx, 0, pattern, 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}

	if len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}
