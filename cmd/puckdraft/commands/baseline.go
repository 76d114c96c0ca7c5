package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wonny/puckdraft/internal/baseline"
	"github.com/wonny/puckdraft/internal/contracts"
)

// baselineCmd represents the baseline command
var baselineCmd = &cobra.Command{
	Use:   "baseline",
	Short: "포지션별 대체 기준값과 포지션 런 출력",
	Long: `포지션별 VORP/VOLS 기준 순위와 값, 예상 포지션 런을 출력합니다.

Example:
  go run ./cmd/puckdraft baseline
  go run ./cmd/puckdraft baseline --league league.yaml --picks 10`,
	RunE: runBaseline,
}

func init() {
	rootCmd.AddCommand(baselineCmd)
	addBoardFlags(baselineCmd)
}

func runBaseline(cmd *cobra.Command, args []string) error {
	run, err := runBoard(cmd)
	if err != nil {
		return err
	}
	defer run.rt.Close()

	out := cmd.OutOrStdout()
	res := run.result
	if jsonOutput {
		return PrintJSON(out, map[string]interface{}{
			"state":        run.state,
			"baselines":    res.Baselines,
			"position_run": res.Run,
		})
	}

	settings := run.rt.league.DraftSettings()
	grouping := run.rt.league.EngineOptions().Grouping

	PrintHeader(out, fmt.Sprintf("Replacement Baselines · %s · %s", run.rt.league.Model.BaselineMode, grouping))
	widths := []int{4, 9, 9, 9, 9, 9}
	PrintTableHeader(out, []string{"Pos", "VORP#", "VORP", "VOLS#", "VOLS", "Taken"}, widths)
	for _, pos := range contracts.AllPositions {
		ranks := baseline.ReplacementRanks(settings, pos, grouping)
		b := res.Baselines[pos]
		PrintTableRow(out, []string{
			pos.String(),
			fmt.Sprintf("%.2f", ranks.VORP),
			fmtFloat(b.VORP),
			fmt.Sprintf("%.2f", ranks.VOLS),
			fmtFloat(b.VOLS),
			fmt.Sprintf("%.2f", res.Run.ExpectedTaken[pos]),
		}, widths)
	}
	PrintSeparator(out)
	PrintInfo(out, fmt.Sprintf("Position run over the next %d picks", res.Run.N))
	return nil
}
