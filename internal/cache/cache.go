// Package cache keeps the newest snapshot of each game in Redis, so
// spectators and rejoining clients can read state without touching the room
// or the database.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/Benjaminnnnnn/splendor-sub002/engine"
)

// ErrMiss marks a snapshot that is not (or no longer) cached.
var ErrMiss = errors.New("cache miss")

// Cache wraps a Redis client with snapshot get/put.
type Cache struct {
	rdb *redis.Client
	ttl time.Duration
}

// New builds a cache against addr. Entries expire after ttl; zero disables
// expiry.
func New(addr, password string, db int, ttl time.Duration) *Cache {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &Cache{rdb: rdb, ttl: ttl}
}

// Ping verifies connectivity.
func (c *Cache) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}

// Close releases the client.
func (c *Cache) Close() error {
	return c.rdb.Close()
}

func snapshotKey(id uuid.UUID) string {
	return fmt.Sprintf("game:%s:snapshot", id)
}

// PutSnapshot stores the snapshot under the game's key.
func (c *Cache) PutSnapshot(ctx context.Context, id uuid.UUID, g *engine.Game) error {
	data, err := json.Marshal(g)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	if err := c.rdb.Set(ctx, snapshotKey(id), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("set %s: %w", snapshotKey(id), err)
	}
	return nil
}

// GetSnapshot reads a cached snapshot.
func (c *Cache) GetSnapshot(ctx context.Context, id uuid.UUID) (*engine.Game, error) {
	data, err := c.rdb.Get(ctx, snapshotKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("game %s: %w", id, ErrMiss)
	}
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", snapshotKey(id), err)
	}
	var g engine.Game
	if err := json.Unmarshal(data, &g); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot: %w", err)
	}
	return &g, nil
}
