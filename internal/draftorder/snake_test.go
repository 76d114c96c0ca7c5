package draftorder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/puckdraft/internal/contracts"
)

func TestTeamOnClock(t *testing.T) {
	// 4 teams: 1 2 3 4 | 4 3 2 1 | 1 2 ...
	want := []int{1, 2, 3, 4, 4, 3, 2, 1, 1, 2}
	for i, slot := range want {
		got, err := TeamOnClock(i+1, 4)
		require.NoError(t, err)
		assert.Equal(t, slot, got, "pick %d", i+1)
	}

	_, err := TeamOnClock(1, 0)
	assert.ErrorIs(t, err, contracts.ErrNoTeams)
	_, err = TeamOnClock(0, 4)
	assert.Error(t, err)
}

func TestPicksUntilNext(t *testing.T) {
	tests := []struct {
		name        string
		currentPick int
		teams       int
		team        int
		want        int
	}{
		{"on the clock", 1, 4, 1, 0},
		{"first team waits for the turn", 2, 4, 1, 6},
		{"last team back to back", 5, 4, 4, 0},
		{"middle team", 3, 4, 2, 4},
		{"twelve team wrap", 13, 12, 1, 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PicksUntilNext(tt.currentPick, tt.teams, tt.team)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := PicksUntilNext(1, 4, 5)
	assert.Error(t, err)
}

func TestCurrentPick(t *testing.T) {
	assert.Equal(t, 1, CurrentPick(0))
	assert.Equal(t, 13, CurrentPick(12))
	assert.Equal(t, 1, CurrentPick(-2))
}

func TestTeamRoster(t *testing.T) {
	players := []contracts.Player{{ID: "a"}, {ID: "b"}, {ID: "c"}}
	picks := []contracts.Pick{
		{Number: 1, Team: 1, PlayerID: "b"},
		{Number: 2, Team: 2, PlayerID: "a"},
		{Number: 3, Team: 1, PlayerID: "c"},
		{Number: 4, Team: 1, PlayerID: "unknown"},
	}

	roster := TeamRoster(picks, players, 1)
	require.Len(t, roster, 2)
	assert.Equal(t, "b", roster[0].ID)
	assert.Equal(t, "c", roster[1].ID)
}

func TestRunWindow(t *testing.T) {
	// 4 teams, pick 2 belongs to team 2; its next pick is 7.
	got, err := RunWindow(2, 4, 2)
	require.NoError(t, err)
	assert.Equal(t, 4, got)

	// Team 4 picks at 4 and 5 back to back.
	got, err = RunWindow(4, 4, 4)
	require.NoError(t, err)
	assert.Equal(t, 0, got)

	// Team 1 not on the clock at pick 3 waits for pick 8.
	got, err = RunWindow(3, 4, 1)
	require.NoError(t, err)
	assert.Equal(t, 5, got)
}
