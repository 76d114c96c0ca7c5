package draftorder

import (
	"fmt"

	"github.com/wonny/puckdraft/internal/contracts"
)

// CurrentPick is the 1-based overall pick number after drafted selections.
func CurrentPick(drafted int) int {
	if drafted < 0 {
		drafted = 0
	}
	return drafted + 1
}

// TeamOnClock returns the 1-based draft slot picking at pick in a snake draft.
// Round 1 (0-based round index 0) runs 1→T, round 2 runs T→1, and so on.
func TeamOnClock(pick, teams int) (int, error) {
	if teams < 1 {
		return 0, contracts.ErrNoTeams
	}
	if pick < 1 {
		return 0, fmt.Errorf("pick must be >= 1, got %d", pick)
	}

	idx := pick - 1
	round := idx / teams
	inRound := idx % teams

	if round%2 == 0 {
		return inRound + 1, nil
	}
	return teams - inRound, nil
}

// PicksUntilNext counts the selections other teams make before team's next
// turn, starting at currentPick. It is 0 when team is on the clock.
func PicksUntilNext(currentPick, teams, team int) (int, error) {
	if teams < 1 {
		return 0, contracts.ErrNoTeams
	}
	if team < 1 || team > teams {
		return 0, fmt.Errorf("team must be in [1, %d], got %d", teams, team)
	}

	// A team picks at most 2*teams-1 selections apart in a snake draft.
	for n := 0; n < 2*teams; n++ {
		slot, err := TeamOnClock(currentPick+n, teams)
		if err != nil {
			return 0, err
		}
		if slot == team {
			return n, nil
		}
	}
	return 0, fmt.Errorf("team %d never picks", team)
}

// TeamRoster returns the players drafted by team, in pick order.
func TeamRoster(picks []contracts.Pick, players []contracts.Player, team int) []contracts.Player {
	byID := make(map[string]contracts.Player, len(players))
	for _, p := range players {
		byID[p.ID] = p
	}

	var roster []contracts.Player
	for _, pk := range picks {
		if pk.Team != team {
			continue
		}
		if p, ok := byID[pk.PlayerID]; ok {
			roster = append(roster, p)
		}
	}
	return roster
}

// RunWindow is the number of picks other teams make before team drafts
// again. A team on the clock looks past its current pick to the turn after.
func RunWindow(currentPick, teams, team int) (int, error) {
	onClock, err := TeamOnClock(currentPick, teams)
	if err != nil {
		return 0, err
	}
	if onClock == team {
		return PicksUntilNext(currentPick+1, teams, team)
	}
	return PicksUntilNext(currentPick, teams, team)
}
