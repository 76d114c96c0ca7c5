package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/puckdraft/internal/contracts"
	"github.com/wonny/puckdraft/internal/leagueconfig"
	"github.com/wonny/puckdraft/internal/pool"
)

func snapshot() *pool.Snapshot {
	return &pool.Snapshot{
		LeagueID: "demo",
		Players: []contracts.Player{
			{ID: "c1", Positions: "C", Stats: map[contracts.Category]float64{contracts.CatGoals: 30}},
			{ID: "c2", Positions: "C"},
			{ID: "d1", Positions: "D"},
			{ID: "g1", Positions: "G"},
		},
		Picks: []contracts.Pick{
			{Number: 1, Team: 1, PlayerID: "c1"},
			{Number: 2, Team: 2, PlayerID: "d1"},
		},
	}
}

func TestInput_PointsNeedsForTeamOnClock(t *testing.T) {
	league := leagueconfig.Default()
	league.League.Teams = 2
	league.Roster = leagueconfig.Roster{C: 1, D: 1, G: 1}

	in, state, err := Input(league, snapshot(), 0, -1)
	require.NoError(t, err)

	// Team 2 picks 2 and 3 back to back in a 2-team snake, then 6.
	assert.Equal(t, State{LeagueID: "demo", CurrentPick: 3, TeamOnClock: 2, Team: 2, PicksUntilNext: 2, Available: 2}, state)
	assert.Equal(t, []string{"c1", "d1"}, in.DraftedIDs)
	assert.Equal(t, 1.0, in.PositionNeeds[contracts.C])
	assert.Equal(t, 0.0, in.PositionNeeds[contracts.D])
	assert.Nil(t, in.CategoryNeeds)
}

func TestInput_ExplicitTeamAndPicks(t *testing.T) {
	league := leagueconfig.Default()
	league.League.Teams = 2
	league.Roster = leagueconfig.Roster{C: 1, D: 1, G: 1}

	in, state, err := Input(league, snapshot(), 1, 7)
	require.NoError(t, err)

	assert.Equal(t, 1, state.Team)
	assert.Equal(t, 7, in.PicksUntilNext)
	assert.Equal(t, 0.0, in.PositionNeeds[contracts.C])
	assert.Equal(t, 1.0, in.PositionNeeds[contracts.D])
}

func TestInput_CategoryNeeds(t *testing.T) {
	league := leagueconfig.Default()
	league.League.Type = string(contracts.LeagueCategories)
	hits := 2.0
	league.League.CategoryWeights.Hits = &hits

	in, _, err := Input(league, snapshot(), 0, -1)
	require.NoError(t, err)

	assert.Nil(t, in.PositionNeeds)
	assert.Equal(t, 1.0, in.CategoryNeeds[contracts.CatHits])
}

func TestInput_NoTeams(t *testing.T) {
	league := leagueconfig.Default()
	league.League.Teams = 0

	_, _, err := Input(league, snapshot(), 0, -1)
	assert.ErrorIs(t, err, contracts.ErrNoTeams)
}

func TestInput_TeamOutOfRange(t *testing.T) {
	league := leagueconfig.Default()
	league.League.Teams = 2

	for _, team := range []int{-1, 3, 99} {
		_, _, err := Input(league, snapshot(), team, 4)
		assert.Error(t, err, "team %d", team)
	}
}
