package baseline

import (
	"math"

	"github.com/wonny/puckdraft/internal/contracts"
	"github.com/wonny/puckdraft/pkg/logger"
)

// Calculator derives replacement-level values per position
// ⭐ SSOT: 대체 선수(replacement) 기준값 계산은 여기서만
type Calculator struct {
	logger *logger.Logger
}

// NewCalculator creates a new baseline calculator
func NewCalculator(log *logger.Logger) *Calculator {
	if log == nil {
		log = logger.Nop()
	}
	return &Calculator{logger: log}
}

// Ranks are the 1-based replacement ranks of one position.
type Ranks struct {
	VORP float64 `json:"vorp_rank"`
	VOLS float64 `json:"vols_rank"`
}

// ReplacementRanks computes the VORP and VOLS ranks of pos.
//
// Utility slots are shared evenly by the four skater positions. In
// combined-forward mode every forward position uses the summed forward
// starters plus the three forward utility shares.
func ReplacementRanks(settings contracts.DraftSettings, pos contracts.Position, grouping contracts.ForwardGrouping) Ranks {
	teams := float64(settings.Teams)
	utilShare := float64(settings.Roster.Utility) / 4
	starters := settings.Roster.Starters

	var base, util float64
	switch {
	case grouping == contracts.GroupingCombined && pos.IsForward():
		base = float64(starters[contracts.C] + starters[contracts.LW] + starters[contracts.RW])
		util = 3 * utilShare
	case pos == contracts.G:
		base = float64(starters[contracts.G])
	default:
		base = float64(starters.Get(pos))
		util = utilShare
	}

	return Ranks{
		VORP: teams*(base+util) + 1,
		VOLS: teams * base,
	}
}

// IndexForRank converts a 1-based rank into a clamped 0-based index.
// It returns -1 only when the pool is empty.
func IndexForRank(rank float64, poolLen int) int {
	if poolLen <= 0 {
		return -1
	}
	idx := int(math.Floor(rank - 1))
	if idx < 0 {
		idx = 0
	}
	if idx > poolLen-1 {
		idx = poolLen - 1
	}
	return idx
}

// Compute reads the replacement values of every position from pools.
// An empty pool yields a zero baseline.
func (c *Calculator) Compute(settings contracts.DraftSettings, pools Pools, grouping contracts.ForwardGrouping) contracts.BaselineTable {
	var table contracts.BaselineTable

	for _, pos := range contracts.AllPositions {
		ranks := ReplacementRanks(settings, pos, grouping)
		pool := pools[pos]

		if idx := IndexForRank(ranks.VORP, len(pool)); idx >= 0 {
			table[pos].VORP = pool[idx].Value
		}
		if idx := IndexForRank(ranks.VOLS, len(pool)); idx >= 0 {
			table[pos].VOLS = pool[idx].Value
		}
	}

	if c.logger.Enabled("debug") {
		fields := make(map[string]interface{}, contracts.NumPositions)
		for _, pos := range contracts.AllPositions {
			fields[pos.String()] = table[pos]
		}
		c.logger.WithFields(fields).WithField("grouping", string(grouping)).Debug("Computed replacement baselines")
	}

	return table
}
