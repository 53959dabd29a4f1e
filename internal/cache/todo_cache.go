package cache

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	dom "Tasker/internal/domain"

	"github.com/redis/go-redis/v9"
)

const keyListPrefix = "todo:list:"

// TodoCache caches per-owner todo lists in Redis. Keys are scoped by
// owner ID so one user's cache never serves another's records.
type TodoCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewTodoCache returns a new TodoCache.
func NewTodoCache(rdb *redis.Client, ttl time.Duration) *TodoCache {
	return &TodoCache{rdb: rdb, ttl: ttl}
}

// GetList returns the cached list for ownerID, or nil on miss.
func (c *TodoCache) GetList(ctx context.Context, ownerID int64) ([]dom.Todo, error) {
	b, err := c.rdb.Get(ctx, listKey(ownerID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var list []dom.Todo
	if err := json.Unmarshal(b, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// SetList stores the list for ownerID.
func (c *TodoCache) SetList(ctx context.Context, ownerID int64, list []dom.Todo) error {
	b, err := json.Marshal(list)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, listKey(ownerID), b, c.ttl).Err()
}

// Invalidate drops the cached list for ownerID (called on every write).
func (c *TodoCache) Invalidate(ctx context.Context, ownerID int64) error {
	return c.rdb.Del(ctx, listKey(ownerID)).Err()
}

func listKey(ownerID int64) string {
	return keyListPrefix + strconv.FormatInt(ownerID, 10)
}
