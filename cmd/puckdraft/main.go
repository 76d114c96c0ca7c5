package main

import (
	"os"

	"github.com/wonny/puckdraft/cmd/puckdraft/commands"
)

// main is the entry point for the puckdraft CLI
// ⭐ 통합 CLI 진입점: go run ./cmd/puckdraft [command]
func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
