package positionrun

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wonny/puckdraft/internal/contracts"
	"github.com/wonny/puckdraft/internal/eligibility"
)

func player(id, pos string, adp float64) contracts.Player {
	return contracts.Player{ID: id, Positions: pos, ADP: contracts.Float(adp)}
}

func sum(f contracts.PositionFloats) float64 {
	var total float64
	for _, v := range f {
		total += v
	}
	return total
}

func TestEstimate_SplitDistributesFractions(t *testing.T) {
	available := []contracts.Player{
		player("a", "C,LW", 1),
		player("b", "D", 2),
		player("c", "G", 3),
		player("late", "RW", 50),
	}

	run := NewEstimator(nil).Estimate(available, eligibility.Resolve(available), nil, 3, contracts.GroupingSplit)

	assert.Equal(t, 3, run.N)
	assert.InDelta(t, 0.5, run.ExpectedTaken[contracts.C], 1e-9)
	assert.InDelta(t, 0.5, run.ExpectedTaken[contracts.LW], 1e-9)
	assert.Equal(t, 0.0, run.ExpectedTaken[contracts.RW])
	assert.Equal(t, 1.0, run.ExpectedTaken[contracts.D])
	assert.Equal(t, 1.0, run.ExpectedTaken[contracts.G])
	assert.InDelta(t, 3.0, sum(run.ExpectedTaken), 1e-9)
}

func TestEstimate_CombinedForwardsSplitThreeWays(t *testing.T) {
	available := []contracts.Player{
		player("c1", "C", 1),
		player("w1", "LW,RW", 2),
		player("d1", "D", 3),
		player("f1", "F", 4),
		player("g1", "G", 5),
	}

	run := NewEstimator(nil).Estimate(available, eligibility.Resolve(available), nil, 5, contracts.GroupingCombined)

	for _, pos := range contracts.Forwards {
		assert.InDelta(t, 1.0, run.ExpectedTaken[pos], 1e-9, pos.String())
	}
	assert.Equal(t, 1.0, run.ExpectedTaken[contracts.D])
	assert.Equal(t, 1.0, run.ExpectedTaken[contracts.G])
}

func TestEstimate_ClampsN(t *testing.T) {
	available := []contracts.Player{player("a", "C", 1), player("b", "LW", 2)}
	elig := eligibility.Resolve(available)
	est := NewEstimator(nil)

	run := est.Estimate(available, elig, nil, 10, contracts.GroupingSplit)
	assert.Equal(t, 2, run.N)
	assert.InDelta(t, 2.0, sum(run.ExpectedTaken), 1e-9)

	run = est.Estimate(available, elig, nil, -3, contracts.GroupingSplit)
	assert.Equal(t, 0, run.N)
	assert.Equal(t, 0.0, sum(run.ExpectedTaken))

	run = est.Estimate(nil, elig, nil, 4, contracts.GroupingSplit)
	assert.Equal(t, 0, run.N)
}

func TestEstimate_SkipsIneligibleButCountsThem(t *testing.T) {
	available := []contracts.Player{
		player("x", "", 1),
		player("a", "C", 2),
		player("b", "D", 3),
	}

	run := NewEstimator(nil).Estimate(available, eligibility.Resolve(available), nil, 2, contracts.GroupingSplit)

	assert.Equal(t, 2, run.N)
	assert.Equal(t, 1.0, run.ExpectedTaken[contracts.C])
	assert.Equal(t, 0.0, run.ExpectedTaken[contracts.D])
}

func TestByADP_MissingLastAndTieBreaks(t *testing.T) {
	players := []contracts.Player{
		{ID: "none", Positions: "C"},
		player("b", "C", 5),
		player("a", "C", 5),
		player("first", "C", 1),
	}
	values := map[string]float64{"a": 10, "b": 20}

	ordered := ByADP(players, values)

	ids := make([]string, 0, len(ordered))
	for _, p := range ordered {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []string{"first", "b", "a", "none"}, ids)
	assert.Equal(t, "none", players[0].ID, "input must not be reordered")
}
