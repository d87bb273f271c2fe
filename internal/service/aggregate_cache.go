package service

import (
	"context"
	"encoding/json"
	"time"

	"faculty_hub_backend/internal/engine"
	"faculty_hub_backend/internal/model"

	"github.com/go-redis/redis/v8"
)

const aggregateCacheTTL = 10 * time.Minute

// AggregateCache keeps per-faculty rating aggregates in redis for the
// directory surface only. Every rating write invalidates the affected key
// synchronously, so a hit is never stale relative to a committed rating.
// Ranking and recommendation queries bypass it and always recompute.
type AggregateCache struct {
	rdb *redis.Client
}

func NewAggregateCache(rdb *redis.Client) *AggregateCache {
	return &AggregateCache{rdb: rdb}
}

func cacheKey(facultyID string) string {
	return "faculty:stats:" + facultyID
}

func (c *AggregateCache) Get(ctx context.Context, facultyID string) (map[model.Category]engine.CategoryStats, bool) {
	if c.rdb == nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, cacheKey(facultyID)).Bytes()
	if err != nil {
		return nil, false
	}

	var stats map[model.Category]engine.CategoryStats
	if err := json.Unmarshal(raw, &stats); err != nil {
		return nil, false
	}
	return stats, true
}

func (c *AggregateCache) Set(ctx context.Context, facultyID string, stats map[model.Category]engine.CategoryStats) {
	if c.rdb == nil {
		return
	}

	raw, err := json.Marshal(stats)
	if err != nil {
		return
	}
	c.rdb.Set(ctx, cacheKey(facultyID), raw, aggregateCacheTTL)
}

func (c *AggregateCache) Invalidate(ctx context.Context, facultyID string) error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Del(ctx, cacheKey(facultyID)).Err()
}
