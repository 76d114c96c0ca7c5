package contracts

import "context"

// ⭐ SSOT: Repository 인터페이스 정의는 여기서만

// Pick is one completed draft selection.
type Pick struct {
	Number   int    `json:"number" yaml:"number"` // 1-based overall pick
	Team     int    `json:"team" yaml:"team"`     // 1-based draft slot
	PlayerID string `json:"player_id" yaml:"player_id"`
}

// PlayerRepository supplies the projection pool and draft results of a league.
type PlayerRepository interface {
	ListPlayers(ctx context.Context, leagueID string) ([]Player, error)
	ListPicks(ctx context.Context, leagueID string) ([]Pick, error)
}

// DraftedIDs returns the player IDs of picks in pick order.
func DraftedIDs(picks []Pick) []string {
	ids := make([]string, 0, len(picks))
	for _, p := range picks {
		ids = append(ids, p.PlayerID)
	}
	return ids
}
