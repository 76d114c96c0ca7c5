package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wonny/puckdraft/internal/recommend"
)

// recommendCmd represents the recommend command
var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "다음 픽 추천 목록 출력",
	Long: `팀 니즈와 ADP를 반영한 추천 목록을 출력합니다.

점수:
- needs.enabled=false: score = VBD
- needs.enabled=true : score = (1-alpha)·VBD + alpha·fit·10

Reason 태그: High VBD, Remaining/Full-Pool Baseline, Team Need Fit/Cat Fit, ADP Value

Example:
  go run ./cmd/puckdraft recommend
  go run ./cmd/puckdraft recommend --team 3 --limit 5 --json`,
	RunE: runRecommend,
}

func init() {
	rootCmd.AddCommand(recommendCmd)
	addBoardFlags(recommendCmd)
}

func runRecommend(cmd *cobra.Command, args []string) error {
	run, err := runBoard(cmd)
	if err != nil {
		return err
	}
	defer run.rt.Close()

	out := cmd.OutOrStdout()
	recs := run.result.Recommendations
	if jsonOutput {
		return PrintJSON(out, map[string]interface{}{
			"state":           run.state,
			"recommendations": recs,
		})
	}

	st := run.state
	PrintHeader(out, "Draft Recommendations")
	PrintKeyValue(out, "League", run.rt.league.Meta.Name, 14)
	PrintKeyValue(out, "Current pick", fmt.Sprintf("%d (team %d on the clock)", st.CurrentPick, st.TeamOnClock), 14)
	PrintKeyValue(out, "For team", fmt.Sprintf("%d", st.Team), 14)
	PrintKeyValue(out, "Next turn in", fmt.Sprintf("%d picks", st.PicksUntilNext), 14)
	PrintKeyValue(out, "Available", fmt.Sprintf("%d players", st.Available), 14)
	PrintSeparator(out)

	if len(recs) == 0 {
		PrintWarning(out, "No available players")
		return nil
	}

	widths := []int{3, 24, 4, 7, 7, 6, 6, 40}
	PrintTableHeader(out, []string{"#", "Player", "Pos", "Score", "VBD", "ADP", "Avail", "Reasons"}, widths)
	sleepers := 0
	for i, r := range recs {
		name := r.Name
		if r.HasReason(recommend.ReasonADPValue) {
			name = "*" + name
			sleepers++
		}
		PrintTableRow(out, []string{
			fmt.Sprintf("%d", i+1),
			name,
			r.BestPos.String(),
			fmtFloat(r.Score),
			fmtOpt(r.VBD, "%.1f"),
			fmtOpt(r.ADP, "%.0f"),
			fmtOpt(r.Availability, "%.2f"),
			strings.Join(r.Reasons, ", "),
		}, widths)
	}
	if sleepers > 0 {
		PrintInfo(out, fmt.Sprintf("* %d player(s) going later than your next pick by ADP", sleepers))
	}
	return nil
}
