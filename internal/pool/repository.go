package pool

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wonny/puckdraft/internal/contracts"
)

// Repository reads player projections and draft picks from Postgres
// ⭐ SSOT: 선수 풀/픽 데이터 조회는 여기서만
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new pool repository
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

var _ contracts.PlayerRepository = (*Repository)(nil)

// ListPlayers returns every projected player of a league
func (r *Repository) ListPlayers(ctx context.Context, leagueID string) ([]contracts.Player, error) {
	query := `
		SELECT player_id, name, positions, adp, projected_points, stats
		FROM draft.players
		WHERE league_id = $1
		ORDER BY player_id
	`

	rows, err := r.pool.Query(ctx, query, leagueID)
	if err != nil {
		return nil, fmt.Errorf("failed to query players: %w", err)
	}
	defer rows.Close()

	players := make([]contracts.Player, 0)
	for rows.Next() {
		var (
			p         contracts.Player
			statsJSON []byte
		)
		if err := rows.Scan(&p.ID, &p.Name, &p.Positions, &p.ADP, &p.ProjectedPoints, &statsJSON); err != nil {
			return nil, fmt.Errorf("failed to scan player: %w", err)
		}
		if len(statsJSON) > 0 {
			if err := json.Unmarshal(statsJSON, &p.Stats); err != nil {
				return nil, fmt.Errorf("failed to unmarshal stats for %s: %w", p.ID, err)
			}
		}
		players = append(players, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating players: %w", err)
	}

	return players, nil
}

// ListPicks returns a league's picks in pick order
func (r *Repository) ListPicks(ctx context.Context, leagueID string) ([]contracts.Pick, error) {
	query := `
		SELECT pick_no, team_slot, player_id
		FROM draft.picks
		WHERE league_id = $1
		ORDER BY pick_no
	`

	rows, err := r.pool.Query(ctx, query, leagueID)
	if err != nil {
		return nil, fmt.Errorf("failed to query picks: %w", err)
	}

	picks, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (contracts.Pick, error) {
		var pk contracts.Pick
		err := row.Scan(&pk.Number, &pk.Team, &pk.PlayerID)
		return pk, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan picks: %w", err)
	}

	return picks, nil
}

// RecordPick stores a pick; a second pick of the same player or number fails
func (r *Repository) RecordPick(ctx context.Context, leagueID string, pick contracts.Pick) error {
	query := `
		INSERT INTO draft.picks (league_id, pick_no, team_slot, player_id, picked_at)
		VALUES ($1, $2, $3, $4, NOW())
	`

	if _, err := r.pool.Exec(ctx, query, leagueID, pick.Number, pick.Team, pick.PlayerID); err != nil {
		return fmt.Errorf("failed to record pick: %w", err)
	}
	return nil
}

// DBSource loads snapshots of one league from a Repository.
type DBSource struct {
	Repo     contracts.PlayerRepository
	LeagueID string
}

// Load implements Source.
func (s DBSource) Load(ctx context.Context) (*Snapshot, error) {
	players, err := s.Repo.ListPlayers(ctx, s.LeagueID)
	if err != nil {
		return nil, err
	}
	picks, err := s.Repo.ListPicks(ctx, s.LeagueID)
	if err != nil {
		return nil, err
	}

	snap := &Snapshot{
		LeagueID: s.LeagueID,
		Players:  players,
		Picks:    picks,
		LoadedAt: time.Now(),
	}
	if err := validateSnapshot(snap); err != nil {
		return nil, fmt.Errorf("league %s: %w", s.LeagueID, err)
	}
	return snap, nil
}
