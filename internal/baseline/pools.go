package baseline

import (
	"sort"

	"github.com/wonny/puckdraft/internal/contracts"
)

// Entry is one player inside a value-sorted position pool.
type Entry struct {
	ID    string
	Value float64
}

// Pools holds one value-sorted (descending) list per canonical position.
type Pools contracts.PositionTable[[]Entry]

// BuildPools groups players by eligibility and sorts each pool by value.
// In combined-forward mode C, LW and RW share one merged pool in which
// every forward appears once.
func BuildPools(players []contracts.Player, values map[string]float64, elig map[string]contracts.PositionSet, grouping contracts.ForwardGrouping) Pools {
	var pools Pools
	var forwards []Entry

	for i := range players {
		id := players[i].ID
		set := elig[id]
		entry := Entry{ID: id, Value: values[id]}

		for _, p := range set.Positions() {
			if grouping == contracts.GroupingCombined && p.IsForward() {
				continue
			}
			pools[p] = append(pools[p], entry)
		}
		if grouping == contracts.GroupingCombined && set.HasForward() {
			forwards = append(forwards, entry)
		}
	}

	if grouping == contracts.GroupingCombined {
		sortEntries(forwards)
		for _, p := range contracts.Forwards {
			pools[p] = forwards
		}
	}
	for _, p := range contracts.AllPositions {
		sortEntries(pools[p])
	}

	return pools
}

// IndexOf returns the 0-based rank of id inside pool p, or -1.
func (p *Pools) IndexOf(pos contracts.Position, id string) int {
	if !pos.Valid() {
		return -1
	}
	for i, e := range p[pos] {
		if e.ID == id {
			return i
		}
	}
	return -1
}

func sortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Value != entries[j].Value {
			return entries[i].Value > entries[j].Value
		}
		return entries[i].ID < entries[j].ID
	})
}
