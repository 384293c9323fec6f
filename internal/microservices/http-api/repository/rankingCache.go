package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const rankingKeyPrefix = "ranking:"

// RankingCache stores serialized ranking pages in Redis. A nil client turns
// every call into a miss/no-op, which is what tests and redis-less runs use.
type RankingCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRankingCache(client *redis.Client, ttl time.Duration) *RankingCache {
	return &RankingCache{client: client, ttl: ttl}
}

// RankingKey builds the cache key for one ranking page.
func RankingKey(period, genre string, limit int) string {
	if genre == "" {
		genre = "all"
	}
	return fmt.Sprintf("%s%s:%s:%d", rankingKeyPrefix, period, genre, limit)
}

// Get decodes a cached value into dest and reports whether it was present.
func (c *RankingCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	if c == nil || c.client == nil {
		return false, nil
	}
	raw, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("ranking cache get: %w", err)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, fmt.Errorf("ranking cache decode: %w", err)
	}
	return true, nil
}

func (c *RankingCache) Set(ctx context.Context, key string, value any) error {
	if c == nil || c.client == nil {
		return nil
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("ranking cache encode: %w", err)
	}
	return c.client.Set(ctx, key, raw, c.ttl).Err()
}

// Invalidate drops every cached ranking page and returns how many keys went.
func (c *RankingCache) Invalidate(ctx context.Context) (int, error) {
	if c == nil || c.client == nil {
		return 0, nil
	}
	removed := 0
	iter := c.client.Scan(ctx, 0, rankingKeyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return removed, fmt.Errorf("ranking cache delete: %w", err)
		}
		removed++
	}
	if err := iter.Err(); err != nil {
		return removed, fmt.Errorf("ranking cache scan: %w", err)
	}
	return removed, nil
}
