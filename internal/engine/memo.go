package engine

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/wonny/puckdraft/pkg/logger"
	"github.com/wonny/puckdraft/pkg/redis"
)

// HashInput returns a stable SHA-256 of in and opts. Encoding fails for
// non-finite numbers; such inputs are simply not memoized.
func HashInput(in Input, opts Options) (string, error) {
	payload := struct {
		Input   Input   `json:"input"`
		Options Options `json:"options"`
	}{in, opts.Normalize()}

	data, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("hash input: %w", err)
	}

	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

// Runner is a possibly memoized engine front.
type Runner interface {
	Run(ctx context.Context, in Input, opts Options) Result
}

var (
	_ Runner = (*Memo)(nil)
	_ Runner = (*CachedRunner)(nil)
)

// Memo keeps recent results in process, keyed on HashInput.
// Returned results are shared and must be treated as read-only.
type Memo struct {
	engine   *Engine
	capacity int

	mu      sync.Mutex
	entries map[string]Result
	order   []string
	hits    int
	misses  int
}

// NewMemo creates an in-process memo holding at most capacity results.
func NewMemo(engine *Engine, capacity int) *Memo {
	if capacity < 1 {
		capacity = 1
	}
	return &Memo{
		engine:   engine,
		capacity: capacity,
		entries:  make(map[string]Result, capacity),
	}
}

// Run returns the memoized result for in/opts, computing it on a miss.
func (m *Memo) Run(_ context.Context, in Input, opts Options) Result {
	key, err := HashInput(in, opts)
	if err != nil {
		return m.engine.Run(in, opts)
	}

	m.mu.Lock()
	if res, ok := m.entries[key]; ok {
		m.hits++
		m.mu.Unlock()
		return res
	}
	m.misses++
	m.mu.Unlock()

	res := m.engine.Run(in, opts)

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.entries[key]; !ok {
		if len(m.order) >= m.capacity {
			oldest := m.order[0]
			m.order = m.order[1:]
			delete(m.entries, oldest)
		}
		m.order = append(m.order, key)
	}
	m.entries[key] = res
	return res
}

// Reset drops every memoized result.
func (m *Memo) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = make(map[string]Result, m.capacity)
	m.order = nil
}

// Stats returns hit and miss counts since creation.
func (m *Memo) Stats() (hits, misses int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.hits, m.misses
}

// CachedRunner memoizes results in Redis so several processes share them.
// Cache failures are logged and fall through to a fresh run.
type CachedRunner struct {
	engine *Engine
	cache  *redis.Cache
	ttl    time.Duration
	logger *logger.Logger
}

// NewCachedRunner creates a Redis-backed runner
func NewCachedRunner(engine *Engine, cache *redis.Cache, ttl time.Duration, log *logger.Logger) *CachedRunner {
	if log == nil {
		log = logger.Nop()
	}
	if ttl <= 0 {
		ttl = redis.TTLMedium
	}
	return &CachedRunner{engine: engine, cache: cache, ttl: ttl, logger: log}
}

// Run returns the cached result for in/opts or computes and stores it.
func (r *CachedRunner) Run(ctx context.Context, in Input, opts Options) Result {
	hash, err := HashInput(in, opts)
	if err != nil {
		r.logger.WithError(err).Debug("Skipping result cache")
		return r.engine.Run(in, opts)
	}
	key := redis.EngineResultKey(hash)

	var cached Result
	found, err := r.cache.Get(ctx, key, &cached)
	if err != nil {
		r.logger.WithError(err).Warn("Result cache read failed")
	}
	if found {
		return cached
	}

	res := r.engine.Run(in, opts)
	if err := r.cache.Set(ctx, key, res, r.ttl); err != nil {
		r.logger.WithError(err).Warn("Result cache write failed")
	}
	return res
}
