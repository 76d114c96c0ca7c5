package jobs

import (
	"context"
	"fmt"

	"github.com/wonny/puckdraft/internal/pool"
	"github.com/wonny/puckdraft/pkg/logger"
)

// Invalidator drops cached state that depends on the pool.
type Invalidator interface {
	Invalidate(ctx context.Context) error
}

// Resetter clears memoized results.
type Resetter interface {
	Reset()
}

// PoolRefreshJob reloads the league snapshot into the live store
// ⭐ SSOT: 선수 풀 주기적 갱신은 여기서만
type PoolRefreshJob struct {
	store    *pool.Store
	source   pool.Source
	cache    Invalidator // optional
	memo     Resetter    // optional
	schedule string
	logger   *logger.Logger
}

// NewPoolRefreshJob creates a new pool refresh job; cache and memo may be nil
func NewPoolRefreshJob(store *pool.Store, source pool.Source, cache Invalidator, memo Resetter, schedule string, log *logger.Logger) *PoolRefreshJob {
	return &PoolRefreshJob{
		store:    store,
		source:   source,
		cache:    cache,
		memo:     memo,
		schedule: schedule,
		logger:   log,
	}
}

// Name returns the job name
func (j *PoolRefreshJob) Name() string {
	return "pool_refresh"
}

// Schedule returns the cron schedule
func (j *PoolRefreshJob) Schedule() string {
	return j.schedule
}

// Run executes the job
func (j *PoolRefreshJob) Run(ctx context.Context) error {
	if j.cache != nil {
		if err := j.cache.Invalidate(ctx); err != nil {
			j.logger.WithError(err).Warn("Failed to invalidate pool cache")
		}
	}

	_, before := j.store.Get()
	snap, err := j.store.Refresh(ctx, j.source)
	if err != nil {
		return fmt.Errorf("pool refresh: %w", err)
	}

	if j.memo != nil {
		j.memo.Reset()
	}

	j.logger.WithFields(map[string]interface{}{
		"league":   snap.LeagueID,
		"players":  len(snap.Players),
		"picks":    len(snap.Picks),
		"previous": before,
	}).Info("Player pool refreshed")

	return nil
}
