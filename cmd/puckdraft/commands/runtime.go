package commands

import (
	"context"
	"fmt"

	"github.com/wonny/puckdraft/internal/draftorder"
	"github.com/wonny/puckdraft/internal/leagueconfig"
	"github.com/wonny/puckdraft/internal/pool"
	"github.com/wonny/puckdraft/pkg/config"
	"github.com/wonny/puckdraft/pkg/database"
	"github.com/wonny/puckdraft/pkg/logger"
)

// runtime bundles what every board command needs
type runtime struct {
	cfg    *config.Config
	log    *logger.Logger
	league *leagueconfig.Config
	source pool.Source
	repo   *pool.Repository // nil for file sources
	db     *database.DB     // nil for file sources
}

// loadRuntime applies flag overrides, loads the league profile and opens the pool source
func loadRuntime(ctx context.Context) (*runtime, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if playersFile != "" {
		cfg.Draft.PoolFile = playersFile
	}
	if poolSource != "" {
		cfg.Draft.PoolSource = poolSource
	}
	if verbose {
		cfg.LogLevel = "debug"
	}
	log := logger.New(cfg)

	path := cfg.Draft.LeagueConfig
	if leagueFile != "" {
		path = leagueFile
	}
	league, err := leagueconfig.LoadOrDefault(path)
	if err != nil {
		return nil, fmt.Errorf("load league profile: %w", err)
	}
	if path == "" {
		league.Board.Limit = cfg.Draft.RecommendLimit
	}
	if path == "" || league.Meta.LeagueID == "" {
		league.Meta.LeagueID = cfg.Draft.LeagueID
	}
	for _, w := range leagueconfig.Warn(league) {
		log.WithField("code", w.Code).Warn(w.Message)
	}

	rt := &runtime{cfg: cfg, log: log, league: league}

	switch cfg.Draft.PoolSource {
	case config.PoolSourcePostgres:
		db, err := database.New(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("connect to database: %w", err)
		}
		rt.db = db
		rt.repo = pool.NewRepository(db.Pool)
		rt.source = pool.DBSource{Repo: rt.repo, LeagueID: league.Meta.LeagueID}
	case config.PoolSourceFile:
		rt.source = pool.FileSource{Path: cfg.Draft.PoolFile}
	default:
		return nil, fmt.Errorf("unknown pool source %q", cfg.Draft.PoolSource)
	}

	return rt, nil
}

// Close releases the database pool, if any
func (rt *runtime) Close() {
	if rt.db != nil {
		rt.db.Close()
	}
}

// snapshot loads the pool and appends extra drafted IDs from the command line
func (rt *runtime) snapshot(ctx context.Context, extraDrafted []string) (*pool.Snapshot, error) {
	snap, err := rt.source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load pool: %w", err)
	}

	store := pool.NewStore(snap)
	for _, id := range extraDrafted {
		cur, _ := store.Get()
		onClock, err := draftorder.TeamOnClock(draftorder.CurrentPick(len(cur.Picks)), rt.league.League.Teams)
		if err != nil {
			return nil, err
		}
		if _, err := store.AddPick(id, onClock, nil); err != nil {
			return nil, err
		}
	}
	snap, _ = store.Get()

	rt.log.WithFields(map[string]interface{}{
		"league":  snap.LeagueID,
		"players": len(snap.Players),
		"picks":   len(snap.Picks),
	}).Debug("Pool loaded")

	return snap, nil
}
