package commands

import (
	"github.com/spf13/cobra"
)

var (
	// Global flags
	leagueFile  string
	playersFile string
	poolSource  string
	verbose     bool
	jsonOutput  bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "puckdraft",
	Short: "puckdraft - 판타지 하키 드래프트 가치 평가/추천 엔진",
	Long: `puckdraft Unified CLI

판타지 하키 스네이크 드래프트용 VORP/VOLS/VONA/VBD 계산과 추천.
선수 풀(JSON/YAML 파일 또는 PostgreSQL)과 리그 프로필(YAML)을 읽습니다.

Usage:
  go run ./cmd/puckdraft [command]

Examples:
  go run ./cmd/puckdraft value --players players.json
  go run ./cmd/puckdraft recommend --team 3 --limit 5
  go run ./cmd/puckdraft baseline --league league.yaml
  go run ./cmd/puckdraft serve
  go run ./cmd/puckdraft test-db`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&leagueFile, "league", "", "league profile YAML (default LEAGUE_CONFIG or built-in profile)")
	rootCmd.PersistentFlags().StringVar(&playersFile, "players", "", "player pool file (default POOL_FILE)")
	rootCmd.PersistentFlags().StringVar(&poolSource, "source", "", "pool source: file|postgres (default POOL_SOURCE)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "print JSON instead of tables")
}
