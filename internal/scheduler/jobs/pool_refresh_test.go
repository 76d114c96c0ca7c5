package jobs

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/puckdraft/internal/contracts"
	"github.com/wonny/puckdraft/internal/pool"
	"github.com/wonny/puckdraft/pkg/logger"
)

type staticSource struct {
	snap *pool.Snapshot
	err  error
}

func (s staticSource) Load(context.Context) (*pool.Snapshot, error) { return s.snap, s.err }

type flag struct{ hit bool }

func (f *flag) Reset() { f.hit = true }
func (f *flag) Invalidate(context.Context) error { f.hit = true; return nil }

func TestPoolRefreshJob(t *testing.T) {
	store := pool.NewStore(nil)
	snap := &pool.Snapshot{LeagueID: "demo", Players: []contracts.Player{{ID: "a"}}}
	memo, cache := &flag{}, &flag{}

	job := NewPoolRefreshJob(store, staticSource{snap: snap}, cache, memo, "0 */5 * * * *", logger.Nop())
	assert.Equal(t, "pool_refresh", job.Name())
	assert.Equal(t, "0 */5 * * * *", job.Schedule())

	require.NoError(t, job.Run(context.Background()))
	cur, version := store.Get()
	assert.Same(t, snap, cur)
	assert.Equal(t, uint64(1), version)
	assert.True(t, memo.hit)
	assert.True(t, cache.hit)
}

func TestPoolRefreshJob_SourceError(t *testing.T) {
	store := pool.NewStore(nil)
	memo := &flag{}

	job := NewPoolRefreshJob(store, staticSource{err: errors.New("db down")}, nil, memo, "@hourly", logger.Nop())

	assert.ErrorContains(t, job.Run(context.Background()), "db down")
	assert.False(t, memo.hit, "memo survives a failed refresh")
}
