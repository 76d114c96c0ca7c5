package board

import (
	"fmt"

	"github.com/wonny/puckdraft/internal/contracts"
	"github.com/wonny/puckdraft/internal/draftorder"
	"github.com/wonny/puckdraft/internal/eligibility"
	"github.com/wonny/puckdraft/internal/engine"
	"github.com/wonny/puckdraft/internal/leagueconfig"
	"github.com/wonny/puckdraft/internal/pool"
	"github.com/wonny/puckdraft/internal/recommend"
)

// State describes where the draft stands for one team.
type State struct {
	LeagueID       string `json:"league_id"`
	CurrentPick    int    `json:"current_pick"`
	TeamOnClock    int    `json:"team_on_clock"`
	Team           int    `json:"team"`
	PicksUntilNext int    `json:"picks_until_next"`
	Available      int    `json:"available"`
}

// Input assembles the engine input for team from a snapshot.
//
// team 0 means the team on the clock. picks < 0 derives the run window from
// the snake order. Points leagues weight needs by the team's open starter
// slots; categories leagues use the profile's category weights.
func Input(league *leagueconfig.Config, snap *pool.Snapshot, team, picks int) (engine.Input, State, error) {
	settings := league.DraftSettings()
	current := draftorder.CurrentPick(len(snap.Picks))

	onClock, err := draftorder.TeamOnClock(current, settings.Teams)
	if err != nil {
		return engine.Input{}, State{}, err
	}
	if team == 0 {
		team = onClock
	}
	if team < 1 || team > settings.Teams {
		return engine.Input{}, State{}, fmt.Errorf("team must be in [1, %d], got %d", settings.Teams, team)
	}
	if picks < 0 {
		if picks, err = draftorder.RunWindow(current, settings.Teams, team); err != nil {
			return engine.Input{}, State{}, err
		}
	}

	in := engine.Input{
		Players:        snap.Players,
		DraftedIDs:     snap.DraftedIDs(),
		Settings:       settings,
		PicksUntilNext: picks,
		CurrentPick:    current,
	}

	if settings.LeagueType == contracts.LeagueCategories {
		in.CategoryNeeds = recommend.CategoryNeeds(league.League.CategoryWeights.Map())
	} else {
		roster := draftorder.TeamRoster(snap.Picks, snap.Players, team)
		in.PositionNeeds = recommend.PositionNeeds(roster, eligibility.Resolve(roster), settings.Roster)
	}

	state := State{
		LeagueID:       snap.LeagueID,
		CurrentPick:    current,
		TeamOnClock:    onClock,
		Team:           team,
		PicksUntilNext: picks,
		Available:      len(snap.Players) - len(snap.Picks),
	}
	return in, state, nil
}
