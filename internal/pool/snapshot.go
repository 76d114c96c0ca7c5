package pool

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/wonny/puckdraft/internal/contracts"
)

var (
	ErrPlayerNotFound = errors.New("player not found")
	ErrAlreadyDrafted = errors.New("player already drafted")
)

// Snapshot is a league's player pool together with the picks made so far.
type Snapshot struct {
	LeagueID string             `json:"league_id" yaml:"league_id"`
	Players  []contracts.Player `json:"players" yaml:"players"`
	Picks    []contracts.Pick   `json:"picks" yaml:"picks"`
	LoadedAt time.Time          `json:"loaded_at" yaml:"-"`
}

// DraftedIDs returns the IDs of drafted players in pick order.
func (s *Snapshot) DraftedIDs() []string {
	return contracts.DraftedIDs(s.Picks)
}

// Available returns the undrafted players.
func (s *Snapshot) Available() []contracts.Player {
	return contracts.Available(s.Players, s.DraftedIDs())
}

// Player looks up a player by ID.
func (s *Snapshot) Player(id string) (contracts.Player, bool) {
	for _, p := range s.Players {
		if p.ID == id {
			return p, true
		}
	}
	return contracts.Player{}, false
}

// Source loads league snapshots.
type Source interface {
	Load(ctx context.Context) (*Snapshot, error)
}

// Store holds the current snapshot for concurrent readers
// ⭐ SSOT: 서버가 보유하는 드래프트 보드 상태는 여기서만
type Store struct {
	mu       sync.RWMutex
	snapshot *Snapshot
	version  uint64
}

// NewStore creates a store seeded with snap (may be nil).
func NewStore(snap *Snapshot) *Store {
	if snap == nil {
		snap = &Snapshot{}
	}
	return &Store{snapshot: snap}
}

// Get returns the current snapshot and its version. The snapshot must not
// be modified.
func (s *Store) Get() (*Snapshot, uint64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot, s.version
}

// Refresh reloads the snapshot from src. Picks added through AddPick while
// the load was in flight are carried over when the loaded snapshot lacks them.
func (s *Store) Refresh(ctx context.Context, src Source) (*Snapshot, error) {
	_, started := s.Get()

	snap, err := src.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("refresh pool: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.version != started {
		snap = carryPicks(snap, s.snapshot.Picks)
	}
	s.snapshot = snap
	s.version++
	return snap, nil
}

// carryPicks appends the picks of newer that loaded does not know yet,
// renumbered after loaded's own picks. Picks of unknown players are dropped.
func carryPicks(loaded *Snapshot, newer []contracts.Pick) *Snapshot {
	known := make(map[string]struct{}, len(loaded.Picks))
	for _, pk := range loaded.Picks {
		known[pk.PlayerID] = struct{}{}
	}

	var missing []contracts.Pick
	for _, pk := range newer {
		if _, ok := known[pk.PlayerID]; ok {
			continue
		}
		if _, ok := loaded.Player(pk.PlayerID); !ok {
			continue
		}
		missing = append(missing, pk)
	}
	if len(missing) == 0 {
		return loaded
	}

	merged := *loaded
	merged.Picks = append([]contracts.Pick(nil), loaded.Picks...)
	for _, pk := range missing {
		pk.Number = len(merged.Picks) + 1
		merged.Picks = append(merged.Picks, pk)
	}
	return &merged
}

// AddPick appends a pick for team and returns the recorded pick. The pick
// number is assigned from the current pick count.
//
// commit, when non-nil, runs under the store lock before the new snapshot is
// swapped in; if it fails the store is left unchanged.
func (s *Store) AddPick(playerID string, team int, commit func(contracts.Pick) error) (contracts.Pick, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.snapshot.Player(playerID); !ok {
		return contracts.Pick{}, fmt.Errorf("%w: %s", ErrPlayerNotFound, playerID)
	}
	for _, pk := range s.snapshot.Picks {
		if pk.PlayerID == playerID {
			return contracts.Pick{}, fmt.Errorf("%w: %s", ErrAlreadyDrafted, playerID)
		}
	}

	pick := contracts.Pick{Number: len(s.snapshot.Picks) + 1, Team: team, PlayerID: playerID}
	if commit != nil {
		if err := commit(pick); err != nil {
			return contracts.Pick{}, err
		}
	}

	next := *s.snapshot
	next.Picks = append(append([]contracts.Pick(nil), s.snapshot.Picks...), pick)
	s.snapshot = &next
	s.version++

	return pick, nil
}
