package assembler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/puckdraft/internal/baseline"
	"github.com/wonny/puckdraft/internal/contracts"
	"github.com/wonny/puckdraft/internal/eligibility"
)

func TestVBD_Example(t *testing.T) {
	assert.InDelta(t, 7.4, VBD(10, 4, 2), 1e-9)
}

func TestAssemble_TieBrokenByVONA(t *testing.T) {
	players := []contracts.Player{
		{ID: "x", Positions: "LW,D"},
		{ID: "d2", Positions: "D"},
		{ID: "d3", Positions: "D"},
		{ID: "l2", Positions: "LW"},
	}
	values := map[string]float64{"x": 10, "d2": 9, "d3": 3, "l2": 9.5}
	elig := eligibility.Resolve(players)

	var baselines contracts.BaselineTable
	baselines[contracts.LW] = contracts.PositionBaseline{VORP: 5, VOLS: 6}
	baselines[contracts.D] = contracts.PositionBaseline{VORP: 5, VOLS: 6}

	var run contracts.PositionRun
	run.ExpectedTaken[contracts.D] = 2
	run.ExpectedTaken[contracts.LW] = 1

	metrics := NewAssembler(nil).Assemble(Inputs{
		Players:     players,
		Values:      values,
		Eligibility: elig,
		Baselines:   baselines,
		Available:   baseline.BuildPools(players, values, elig, contracts.GroupingSplit),
		Run:         run,
	})

	x := metrics["x"]
	assert.Equal(t, contracts.D, x.BestPos)
	assert.Equal(t, 5.0, x.VORP)
	assert.Equal(t, 7.0, x.VONA)
	assert.Equal(t, 4.0, x.VOLS)
	assert.InDelta(t, 0.6*5+0.3*7+0.1*4, x.VBD, 1e-9)
	assert.Equal(t, []contracts.Position{contracts.LW, contracts.D}, x.EligiblePositions)
}

func TestAssemble_DraftedPlayerHasNoVONA(t *testing.T) {
	players := []contracts.Player{
		{ID: "gone", Positions: "C"},
		{ID: "c1", Positions: "C"},
		{ID: "c2", Positions: "C"},
	}
	available := players[1:]
	values := map[string]float64{"gone": 20, "c1": 12, "c2": 4}

	var baselines contracts.BaselineTable
	baselines[contracts.C] = contracts.PositionBaseline{VORP: 4, VOLS: 4}

	elig := eligibility.Resolve(players)
	metrics := NewAssembler(nil).Assemble(Inputs{
		Players:     players,
		Values:      values,
		Eligibility: elig,
		Baselines:   baselines,
		Available:   baseline.BuildPools(available, values, elig, contracts.GroupingSplit),
	})

	assert.Equal(t, 16.0, metrics["gone"].VORP)
	assert.Equal(t, 0.0, metrics["gone"].VONA)
	assert.InDelta(t, 0.6*16+0.1*16, metrics["gone"].VBD, 1e-9)

	// Nothing expected to be taken: next available is the player itself.
	assert.Equal(t, 0.0, metrics["c1"].VONA)
}

func TestAssemble_EmptyEligibility(t *testing.T) {
	players := []contracts.Player{{ID: "nobody", Positions: "XX"}}
	values := map[string]float64{"nobody": 50}

	metrics := NewAssembler(nil).Assemble(Inputs{
		Players:     players,
		Values:      values,
		Eligibility: eligibility.Resolve(players),
	})

	m, ok := metrics["nobody"]
	require.True(t, ok)
	assert.Equal(t, contracts.NoPosition, m.BestPos)
	assert.Equal(t, 50.0, m.Value)
	assert.Zero(t, m.VORP)
	assert.Zero(t, m.VOLS)
	assert.Zero(t, m.VONA)
	assert.Zero(t, m.VBD)
	assert.Empty(t, m.EligiblePositions)
}

func TestAssemble_NonNegative(t *testing.T) {
	players := []contracts.Player{
		{ID: "a", Positions: "C,RW"},
		{ID: "b", Positions: "RW"},
		{ID: "c", Positions: "G"},
		{ID: "d", Positions: "D"},
	}
	values := map[string]float64{"a": -5, "b": 3, "c": 1, "d": 0}

	var baselines contracts.BaselineTable
	for _, pos := range contracts.AllPositions {
		baselines[pos] = contracts.PositionBaseline{VORP: 10, VOLS: 20}
	}
	var run contracts.PositionRun
	for _, pos := range contracts.AllPositions {
		run.ExpectedTaken[pos] = 5
	}

	elig := eligibility.Resolve(players)
	metrics := NewAssembler(nil).Assemble(Inputs{
		Players:     players,
		Values:      values,
		Eligibility: elig,
		Baselines:   baselines,
		Available:   baseline.BuildPools(players, values, elig, contracts.GroupingSplit),
		Run:         run,
	})

	for id, m := range metrics {
		assert.GreaterOrEqual(t, m.VORP, 0.0, id)
		assert.GreaterOrEqual(t, m.VOLS, 0.0, id)
		assert.GreaterOrEqual(t, m.VONA, 0.0, id)
	}
}

func TestBetter(t *testing.T) {
	base := PositionMetrics{Pos: contracts.C, VORP: 5, VOLS: 5, VONA: 2, HasVONA: true}

	assert.True(t, Better(PositionMetrics{VORP: 6}, base))
	assert.False(t, Better(PositionMetrics{VORP: 4, VOLS: 100}, base))
	assert.True(t, Better(PositionMetrics{VORP: 5, VONA: 3, HasVONA: true}, base))
	// VONA ignored when one side lacks it; VOLS decides.
	assert.True(t, Better(PositionMetrics{VORP: 5, VOLS: 6}, base))
	assert.False(t, Better(PositionMetrics{VORP: 5, VOLS: 5, VONA: 2, HasVONA: true}, base))
}
