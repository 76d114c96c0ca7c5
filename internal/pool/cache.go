package pool

import (
	"context"
	"time"

	"github.com/wonny/puckdraft/pkg/logger"
	"github.com/wonny/puckdraft/pkg/redis"
)

// CachedSource serves snapshots from Redis before falling back to Source.
type CachedSource struct {
	source   Source
	cache    *redis.Cache
	leagueID string
	ttl      time.Duration
	logger   *logger.Logger
}

// NewCachedSource wraps src with a Redis snapshot cache
func NewCachedSource(src Source, cache *redis.Cache, leagueID string, ttl time.Duration, log *logger.Logger) *CachedSource {
	if log == nil {
		log = logger.Nop()
	}
	if ttl <= 0 {
		ttl = redis.TTLLong
	}
	return &CachedSource{source: src, cache: cache, leagueID: leagueID, ttl: ttl, logger: log}
}

// Load implements Source.
func (c *CachedSource) Load(ctx context.Context) (*Snapshot, error) {
	key := redis.PoolSnapshotKey(c.leagueID)

	var snap Snapshot
	found, err := c.cache.Get(ctx, key, &snap)
	if err != nil {
		c.logger.WithError(err).Warn("Pool snapshot cache read failed")
	}
	if found {
		return &snap, nil
	}

	fresh, err := c.source.Load(ctx)
	if err != nil {
		return nil, err
	}
	if err := c.cache.Set(ctx, key, fresh, c.ttl); err != nil {
		c.logger.WithError(err).Warn("Pool snapshot cache write failed")
	}
	return fresh, nil
}

// Invalidate drops the cached snapshot so the next Load hits the source.
func (c *CachedSource) Invalidate(ctx context.Context) error {
	return c.cache.Delete(ctx, redis.PoolSnapshotKey(c.leagueID))
}
