package commands

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wonny/puckdraft/internal/board"
	"github.com/wonny/puckdraft/internal/contracts"
	"github.com/wonny/puckdraft/internal/engine"
	"github.com/wonny/puckdraft/internal/pool"
)

// valueCmd represents the value command
var valueCmd = &cobra.Command{
	Use:   "value",
	Short: "선수별 VORP/VOLS/VONA/VBD 출력",
	Long: `선수 풀 전체의 가치 지표를 계산합니다.

이 명령어는:
- 리그 프로필과 선수 풀 로드
- 포지션별 대체 기준값(replacement baseline) 계산
- 다음 차례까지의 포지션 런 추정
- VBD 내림차순으로 지표 출력

Example:
  go run ./cmd/puckdraft value --players players.json
  go run ./cmd/puckdraft value --drafted mcdavid,makar --picks 8 --all`,
	RunE: runValue,
}

var (
	boardTeam    int
	boardPicks   int
	boardLimit   int
	draftedExtra []string
	valueAll     bool
)

func init() {
	rootCmd.AddCommand(valueCmd)

	addBoardFlags(valueCmd)
	valueCmd.Flags().BoolVar(&valueAll, "all", false, "include drafted players")
}

// addBoardFlags registers the flags shared by value, recommend and baseline
func addBoardFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&boardTeam, "team", 0, "draft slot (default: team on the clock)")
	cmd.Flags().IntVar(&boardPicks, "picks", -1, "picks until next turn (default: from snake order)")
	cmd.Flags().IntVar(&boardLimit, "limit", -1, "rows to print (default: league board limit, 0 = all)")
	cmd.Flags().StringSliceVar(&draftedExtra, "drafted", nil, "extra drafted player IDs, in pick order")
}

// boardRun is one engine run over the loaded pool
type boardRun struct {
	rt     *runtime
	snap   *pool.Snapshot
	state  board.State
	result engine.Result
}

// runBoard loads everything and runs the engine once; callers must Close rt
func runBoard(cmd *cobra.Command) (*boardRun, error) {
	ctx := cmd.Context()

	rt, err := loadRuntime(ctx)
	if err != nil {
		return nil, err
	}

	snap, err := rt.snapshot(ctx, draftedExtra)
	if err != nil {
		rt.Close()
		return nil, err
	}

	in, state, err := board.Input(rt.league, snap, boardTeam, boardPicks)
	if err != nil {
		rt.Close()
		return nil, err
	}

	opts := rt.league.EngineOptions()
	if boardLimit >= 0 {
		opts.Limit = boardLimit
	}

	return &boardRun{
		rt:     rt,
		snap:   snap,
		state:  state,
		result: engine.New(rt.log).Run(in, opts),
	}, nil
}

type valueRow struct {
	ID      string                       `json:"id"`
	Name    string                       `json:"name"`
	Drafted bool                         `json:"drafted"`
	Metrics contracts.PlayerValueMetrics `json:"metrics"`
}

func runValue(cmd *cobra.Command, args []string) error {
	run, err := runBoard(cmd)
	if err != nil {
		return err
	}
	defer run.rt.Close()

	drafted := make(map[string]bool)
	for _, id := range run.snap.DraftedIDs() {
		drafted[id] = true
	}

	rows := make([]valueRow, 0, len(run.snap.Players))
	for _, p := range run.snap.Players {
		if drafted[p.ID] && !valueAll {
			continue
		}
		rows = append(rows, valueRow{ID: p.ID, Name: p.DisplayName(), Drafted: drafted[p.ID], Metrics: run.result.Metrics[p.ID]})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Metrics.VBD != rows[j].Metrics.VBD {
			return rows[i].Metrics.VBD > rows[j].Metrics.VBD
		}
		return rows[i].ID < rows[j].ID
	})

	limit := run.rt.league.Board.Limit
	if boardLimit >= 0 {
		limit = boardLimit
	}
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		return PrintJSON(out, rows)
	}

	st := run.state
	PrintHeader(out, fmt.Sprintf("Player Values · pick %d · %d picks until team %d", st.CurrentPick, st.PicksUntilNext, st.Team))
	widths := []int{4, 24, 8, 8, 8, 8, 8, 8}
	PrintTableHeader(out, []string{"#", "Player", "Pos", "Value", "VORP", "VOLS", "VONA", "VBD"}, widths)
	for i, r := range rows {
		name := r.Name
		if r.Drafted {
			name = "*" + name
		}
		PrintTableRow(out, []string{
			fmt.Sprintf("%d", i+1),
			name,
			positionsLabel(r.Metrics),
			fmtFloat(r.Metrics.Value),
			fmtFloat(r.Metrics.VORP),
			fmtFloat(r.Metrics.VOLS),
			fmtFloat(r.Metrics.VONA),
			fmtFloat(r.Metrics.VBD),
		}, widths)
	}
	return nil
}

// positionsLabel shows the best position first, e.g. "LW/c"
func positionsLabel(m contracts.PlayerValueMetrics) string {
	if m.BestPos == contracts.NoPosition {
		return "-"
	}
	parts := []string{m.BestPos.String()}
	for _, p := range m.EligiblePositions {
		if p != m.BestPos {
			parts = append(parts, strings.ToLower(p.String()))
		}
	}
	return strings.Join(parts, "/")
}
