package positionrun

import (
	"math"
	"sort"

	"github.com/wonny/puckdraft/internal/contracts"
	"github.com/wonny/puckdraft/pkg/logger"
)

// Estimator predicts how many players of each position leave the board
// before the user's next turn
// ⭐ SSOT: 포지션 런(position run) 추정은 여기서만
type Estimator struct {
	logger *logger.Logger
}

// NewEstimator creates a new position-run estimator
func NewEstimator(log *logger.Logger) *Estimator {
	if log == nil {
		log = logger.Nop()
	}
	return &Estimator{logger: log}
}

// Estimate counts the positions of the n earliest available players by ADP.
//
// Split mode credits each of a player's k eligible positions with 1/k.
// Combined-forward mode credits D and G wholly and pools every other
// forward-eligible player, dividing the pool evenly across C, LW and RW.
// Players without eligible positions are counted toward n but credit nothing.
func (e *Estimator) Estimate(
	available []contracts.Player,
	elig map[string]contracts.PositionSet,
	values map[string]float64,
	n int,
	grouping contracts.ForwardGrouping,
) contracts.PositionRun {
	if n < 0 {
		n = 0
	}
	if n > len(available) {
		n = len(available)
	}

	run := contracts.PositionRun{N: n}
	if n == 0 {
		return run
	}

	ordered := ByADP(available, values)
	var forwards float64

	for _, p := range ordered[:n] {
		set := elig[p.ID]
		if set.Empty() {
			continue
		}

		if grouping == contracts.GroupingCombined {
			switch {
			case set.Has(contracts.D):
				run.ExpectedTaken[contracts.D]++
			case set.Has(contracts.G):
				run.ExpectedTaken[contracts.G]++
			default:
				forwards++
			}
			continue
		}

		share := 1 / float64(set.Len())
		for _, pos := range set.Positions() {
			run.ExpectedTaken[pos] += share
		}
	}

	if grouping == contracts.GroupingCombined {
		for _, pos := range contracts.Forwards {
			run.ExpectedTaken[pos] = forwards / 3
		}
	}

	e.logger.WithFields(map[string]interface{}{
		"n":        n,
		"grouping": string(grouping),
		"taken":    run.ExpectedTaken,
	}).Debug("Estimated position run")

	return run
}

// ByADP returns a copy of players sorted by ADP ascending. Players without
// a usable ADP sort last; ties fall back to value descending, then ID.
func ByADP(players []contracts.Player, values map[string]float64) []contracts.Player {
	ordered := make([]contracts.Player, len(players))
	copy(ordered, players)

	adpOf := func(p *contracts.Player) float64 {
		if adp, ok := p.DraftPosition(); ok {
			return adp
		}
		return math.Inf(1)
	}

	sort.SliceStable(ordered, func(i, j int) bool {
		ai, aj := adpOf(&ordered[i]), adpOf(&ordered[j])
		if ai != aj {
			return ai < aj
		}
		vi, vj := values[ordered[i].ID], values[ordered[j].ID]
		if vi != vj {
			return vi > vj
		}
		return ordered[i].ID < ordered[j].ID
	})

	return ordered
}
