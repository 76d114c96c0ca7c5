package recommend

import (
	"math"

	"github.com/wonny/puckdraft/internal/contracts"
)

// PositionNeeds returns, per position, the share of starter slots the team
// has not filled yet (0 = full, 1 = empty).
//
// Each rostered player fills the first open starter slot among its eligible
// positions in canonical order; skaters that find none take a utility slot.
// Positions without starter slots get 0.
func PositionNeeds(team []contracts.Player, elig map[string]contracts.PositionSet, roster contracts.RosterConfig) map[contracts.Position]float64 {
	open := roster.Starters
	util := roster.Utility

	for i := range team {
		set := elig[team[i].ID]
		placed := false
		for _, pos := range set.Positions() {
			if open[pos] > 0 {
				open[pos]--
				placed = true
				break
			}
		}
		if !placed && util > 0 && hasSkater(set) {
			util--
		}
	}

	needs := make(map[contracts.Position]float64, contracts.NumPositions)
	for _, pos := range contracts.AllPositions {
		total := roster.Starters[pos]
		if total <= 0 {
			needs[pos] = 0
			continue
		}
		needs[pos] = float64(open[pos]) / float64(total)
	}
	return needs
}

// CategoryNeeds keeps the known categories of raw, drops non-finite weights
// and scales the result so the largest absolute weight is 1.
func CategoryNeeds(raw map[contracts.Category]float64) map[contracts.Category]float64 {
	needs := make(map[contracts.Category]float64, len(contracts.Categories))
	maxAbs := 0.0
	for _, cat := range contracts.Categories {
		v, ok := raw[cat]
		if !ok || math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		needs[cat] = v
		maxAbs = math.Max(maxAbs, math.Abs(v))
	}
	if maxAbs == 0 {
		return needs
	}
	for cat, v := range needs {
		needs[cat] = v / maxAbs
	}
	return needs
}

func hasSkater(set contracts.PositionSet) bool {
	for _, pos := range contracts.Skaters {
		if set.Has(pos) {
			return true
		}
	}
	return false
}
