package cache

import (
	"context"
	"encoding/json"
	"time"

	dom "Calendar/internal/domain"

	"github.com/redis/go-redis/v9"
)

const keyRecords = "records:all"

// RecordCache caches the full record collection in Redis.
type RecordCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRecordCache returns a new RecordCache.
func NewRecordCache(rdb *redis.Client, ttl time.Duration) *RecordCache {
	return &RecordCache{rdb: rdb, ttl: ttl}
}

// GetList returns the cached collection. ok is false on a miss.
func (c *RecordCache) GetList(ctx context.Context) (list []dom.Record, ok bool, err error) {
	b, err := c.rdb.Get(ctx, keyRecords).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	if err := json.Unmarshal(b, &list); err != nil {
		return nil, false, err
	}
	return list, true, nil
}

// SetList stores the collection in cache.
func (c *RecordCache) SetList(ctx context.Context, list []dom.Record) error {
	if list == nil {
		list = []dom.Record{}
	}
	b, err := json.Marshal(list)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, keyRecords, b, c.ttl).Err()
}

// Invalidate drops the cached collection so the next read goes to the source.
func (c *RecordCache) Invalidate(ctx context.Context) error {
	return c.rdb.Del(ctx, keyRecords).Err()
}
