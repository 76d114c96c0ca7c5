package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/wonny/puckdraft/internal/api"
	"github.com/wonny/puckdraft/internal/api/handlers"
	"github.com/wonny/puckdraft/internal/engine"
	"github.com/wonny/puckdraft/internal/leagueconfig"
	"github.com/wonny/puckdraft/internal/pool"
	"github.com/wonny/puckdraft/internal/scheduler"
	"github.com/wonny/puckdraft/internal/scheduler/jobs"
	"github.com/wonny/puckdraft/pkg/redis"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "API 서버 시작",
	Long: `드래프트 보드 REST API 서버를 시작합니다.

이 명령어는:
- 선수 풀 스냅샷 로드 (file | postgres)
- 엔진 결과 메모이제이션 (REDIS_ENABLED=true 이면 Redis)
- 주기적 풀 갱신 (POOL_REFRESH_SCHEDULE)
- HTTP API 서버 시작

Endpoints:
  GET  /health            - Health check
  POST /api/valuation     - 요청 본문의 선수 풀로 전체 계산
  GET  /api/board         - 추천 목록 (?team=&limit=&picks=)
  GET  /api/baselines     - 포지션별 대체 기준값
  GET  /api/players/{id}  - 선수 한 명의 지표
  POST /api/picks         - 픽 기록

Example:
  go run ./cmd/puckdraft serve
  go run ./cmd/puckdraft serve --port 9090 --source postgres`,
	RunE: runServe,
}

var servePort string

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&servePort, "port", "", "API 서버 포트 (default PORT)")
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 1. Config, logger, league profile, pool source
	rt, err := loadRuntime(ctx)
	if err != nil {
		return err
	}
	defer rt.Close()

	cfg, log := rt.cfg, rt.log
	if servePort != "" {
		cfg.Port = servePort
	}

	// 2. Redis (optional)
	rdb, err := redis.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("connect to redis: %w", err)
	}
	defer rdb.Close()
	cache := redis.NewCache(rdb, "puckdraft")

	// 3. Engine runner
	eng := engine.New(log)
	memo := engine.NewMemo(eng, 64)
	var runner engine.Runner = memo
	if rdb.Enabled() {
		runner = engine.NewCachedRunner(eng, cache, cfg.Redis.TTL, log)
		log.Info("Engine results cached in Redis")
	}

	// 4. Pool snapshot
	var source pool.Source = rt.source
	var cachedSource *pool.CachedSource
	if rdb.Enabled() {
		cachedSource = pool.NewCachedSource(rt.source, cache, rt.league.Meta.LeagueID, redis.TTLLong, log)
		source = cachedSource
	}

	store := pool.NewStore(nil)
	snap, err := store.Refresh(ctx, source)
	if err != nil {
		return err
	}
	log.WithFields(map[string]interface{}{
		"league":  snap.LeagueID,
		"players": len(snap.Players),
		"picks":   len(snap.Picks),
	}).Info("Player pool loaded")

	// 5. Scheduler
	// file 소스는 API로 기록된 픽을 보관하지 않으므로 주기 갱신을 하지 않음
	sched := scheduler.New(log)
	if rt.repo != nil {
		var invalidator jobs.Invalidator
		if cachedSource != nil {
			invalidator = cachedSource
		}
		refresh := jobs.NewPoolRefreshJob(store, source, invalidator, memo, cfg.Draft.RefreshCron, log)
		if err := sched.AddJob(refresh); err != nil {
			return err
		}
	} else {
		log.Info("Pool refresh disabled for file source")
	}
	sched.Start()
	defer sched.Stop()

	// 6. Handlers, router, server
	var recorder handlers.PickRecorder
	if rt.repo != nil {
		recorder = rt.repo
	}
	profileHash, err := leagueconfig.Hash(rt.league)
	if err != nil {
		return fmt.Errorf("hash league profile: %w", err)
	}
	log.WithFields(map[string]interface{}{
		"league":       rt.league.Meta.LeagueID,
		"profile_hash": profileHash,
	}).Info("League profile loaded")

	var memoStats handlers.MemoStats
	if !rdb.Enabled() {
		memoStats = memo
	}

	router := api.NewRouter(
		handlers.NewHealthHandler(memoStats, sched, profileHash),
		handlers.NewValuationHandler(runner, rt.league, log),
		handlers.NewBoardHandler(store, runner, rt.league, recorder, log),
		api.NewLimiter(cfg.Draft.RequestsPerSec),
		log,
	)
	server := api.New(cfg, log, router)

	out := cmd.OutOrStdout()
	PrintSuccess(out, fmt.Sprintf("Server running on http://localhost:%s", cfg.Port))
	PrintInfo(out, "Press Ctrl+C to stop")

	if err := server.Run(ctx); err != nil {
		return err
	}

	log.Info("Server stopped")
	return nil
}
