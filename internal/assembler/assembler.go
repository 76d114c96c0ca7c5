package assembler

import (
	"math"

	"github.com/wonny/puckdraft/internal/baseline"
	"github.com/wonny/puckdraft/internal/contracts"
	"github.com/wonny/puckdraft/pkg/logger"
)

// VBD composite weights.
const (
	WeightVORP = 0.6
	WeightVONA = 0.3
	WeightVOLS = 0.1
)

// Assembler combines values, baselines and the position run into
// per-player metrics
// ⭐ SSOT: VORP/VOLS/VONA/VBD 조합은 여기서만
type Assembler struct {
	logger *logger.Logger
}

// NewAssembler creates a new metrics assembler
func NewAssembler(log *logger.Logger) *Assembler {
	if log == nil {
		log = logger.Nop()
	}
	return &Assembler{logger: log}
}

// Inputs bundles the upstream outputs the assembler reads.
type Inputs struct {
	Players     []contracts.Player
	Values      map[string]float64
	Eligibility map[string]contracts.PositionSet
	Baselines   contracts.BaselineTable
	// Available holds value-sorted per-position pools of undrafted players.
	Available baseline.Pools
	Run       contracts.PositionRun
}

// PositionMetrics are a player's metrics at one eligible position.
type PositionMetrics struct {
	Pos     contracts.Position
	VORP    float64
	VOLS    float64
	VONA    float64
	HasVONA bool
}

// Assemble returns metrics keyed by player ID for every player.
func (a *Assembler) Assemble(in Inputs) map[string]contracts.PlayerValueMetrics {
	out := make(map[string]contracts.PlayerValueMetrics, len(in.Players))
	withVONA := 0

	for i := range in.Players {
		id := in.Players[i].ID
		value := contracts.Finite(in.Values[id])
		set := in.Eligibility[id]

		m := contracts.PlayerValueMetrics{
			Value:             value,
			BestPos:           contracts.NoPosition,
			EligiblePositions: set.Positions(),
		}

		var best *PositionMetrics
		for _, pos := range m.EligiblePositions {
			cand := Evaluate(id, value, pos, in.Baselines, &in.Available, in.Run)
			if best == nil || Better(cand, *best) {
				c := cand
				best = &c
			}
		}

		if best != nil {
			m.BestPos = best.Pos
			m.VORP = best.VORP
			m.VOLS = best.VOLS
			m.VONA = best.VONA
			m.VBD = VBD(best.VORP, best.VONA, best.VOLS)
			if best.HasVONA {
				withVONA++
			}
		}

		out[id] = m
	}

	a.logger.WithFields(map[string]interface{}{
		"players":   len(in.Players),
		"with_vona": withVONA,
		"run_n":     in.Run.N,
	}).Debug("Assembled player metrics")

	return out
}

// Evaluate computes VORP, VOLS and VONA of one player at pos. VONA is only
// defined when the player is in the available pool for pos.
func Evaluate(
	id string,
	value float64,
	pos contracts.Position,
	baselines contracts.BaselineTable,
	available *baseline.Pools,
	run contracts.PositionRun,
) PositionMetrics {
	b := baselines[pos]
	pm := PositionMetrics{
		Pos:  pos,
		VORP: math.Max(0, value-b.VORP),
		VOLS: math.Max(0, value-b.VOLS),
	}

	curIdx := available.IndexOf(pos, id)
	if curIdx < 0 {
		return pm
	}

	pool := available[pos]
	next := int(math.Floor(float64(curIdx) + run.ExpectedTaken[pos]))
	if next > len(pool)-1 {
		next = len(pool) - 1
	}
	if next < 0 {
		next = 0
	}

	pm.VONA = math.Max(0, value-pool[next].Value)
	pm.HasVONA = true
	return pm
}

// Better reports whether cand beats cur: higher VORP, then higher VONA when
// both positions define it, then higher VOLS. Full ties keep cur.
func Better(cand, cur PositionMetrics) bool {
	if cand.VORP != cur.VORP {
		return cand.VORP > cur.VORP
	}
	if cand.HasVONA && cur.HasVONA && cand.VONA != cur.VONA {
		return cand.VONA > cur.VONA
	}
	return cand.VOLS > cur.VOLS
}

// VBD is the weighted composite draft score.
func VBD(vorp, vona, vols float64) float64 {
	return WeightVORP*vorp + WeightVONA*vona + WeightVOLS*vols
}
