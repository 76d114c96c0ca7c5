package eligibility

import (
	"strings"

	"github.com/wonny/puckdraft/internal/contracts"
)

// Parse converts a free-form position string ("C,LW", "F", "d") into a canonical set.
// "F" expands to C, LW and RW; unknown tokens are dropped.
func Parse(raw string) contracts.PositionSet {
	var set contracts.PositionSet
	for _, token := range strings.Split(raw, ",") {
		token = strings.ToUpper(strings.TrimSpace(token))
		if token == "" {
			continue
		}
		if token == "F" {
			for _, p := range contracts.Forwards {
				set = set.Add(p)
			}
			continue
		}
		if p, err := contracts.ParsePosition(token); err == nil {
			set = set.Add(p)
		}
	}
	return set
}

// Resolve parses every player's position string, keyed by player ID.
func Resolve(players []contracts.Player) map[string]contracts.PositionSet {
	out := make(map[string]contracts.PositionSet, len(players))
	for i := range players {
		out[players[i].ID] = Parse(players[i].Positions)
	}
	return out
}
