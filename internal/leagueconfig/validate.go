package leagueconfig

import (
	"fmt"
	"math"

	"github.com/wonny/puckdraft/internal/contracts"
)

// ValidationError 검증 실패 (프로그램 중단)
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Warning 권장 위반 (경고만)
type Warning struct {
	Code    string
	Message string
}

// Validate checks all required constraints
func Validate(cfg *Config) error {
	// === League ===
	if cfg.League.Teams < 1 {
		return ValidationError{"league.teams", "must be >= 1"}
	}
	switch contracts.LeagueType(cfg.League.Type) {
	case contracts.LeaguePoints, contracts.LeagueCategories:
	default:
		return ValidationError{"league.type", fmt.Sprintf("must be points or categories, got %q", cfg.League.Type)}
	}
	for cat, w := range cfg.League.CategoryWeights.Map() {
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return ValidationError{fmt.Sprintf("league.category_weights.%s", cat), "must be finite"}
		}
	}

	// === Roster ===
	slots := map[string]int{
		"roster.c":    cfg.Roster.C,
		"roster.lw":   cfg.Roster.LW,
		"roster.rw":   cfg.Roster.RW,
		"roster.d":    cfg.Roster.D,
		"roster.g":    cfg.Roster.G,
		"roster.util": cfg.Roster.Util,
	}
	for field, n := range slots {
		if n < 0 {
			return ValidationError{field, "must be >= 0"}
		}
	}
	if cfg.Roster.C+cfg.Roster.LW+cfg.Roster.RW+cfg.Roster.D+cfg.Roster.G == 0 {
		return ValidationError{"roster", "at least one starter slot required"}
	}

	// === Model ===
	if err := contracts.ValidateBaselineMode(contracts.BaselineMode(cfg.Model.BaselineMode)); err != nil {
		return ValidationError{"model.baseline_mode", err.Error()}
	}
	if err := contracts.ValidateForwardGrouping(contracts.ForwardGrouping(cfg.Model.ForwardGrouping)); err != nil {
		return ValidationError{"model.forward_grouping", err.Error()}
	}

	// === Needs / Board ===
	if cfg.Needs.Alpha < 0 || cfg.Needs.Alpha > 1 || math.IsNaN(cfg.Needs.Alpha) {
		return ValidationError{"needs.alpha", "must be in [0, 1]"}
	}
	if cfg.Board.Limit < 0 {
		return ValidationError{"board.limit", "must be >= 0"}
	}

	return nil
}

// Warn checks recommended constraints (non-fatal)
func Warn(cfg *Config) []Warning {
	var warnings []Warning

	if cfg.League.Type == string(contracts.LeaguePoints) && len(cfg.League.CategoryWeights.Map()) > 0 {
		warnings = append(warnings, Warning{
			Code:    "UNUSED_CATEGORY_WEIGHTS",
			Message: "points 리그에서는 category_weights가 무시됨",
		})
	}

	if !cfg.Needs.Enabled && cfg.Needs.Alpha != Default().Needs.Alpha {
		warnings = append(warnings, Warning{
			Code:    "UNUSED_ALPHA",
			Message: "needs.enabled=false 이면 alpha는 적용되지 않음",
		})
	}

	// 유틸 슬롯이 스케이터 주전보다 많으면 baseline이 과도하게 깊어짐
	skaters := cfg.Roster.C + cfg.Roster.LW + cfg.Roster.RW + cfg.Roster.D
	if cfg.Roster.Util > skaters {
		warnings = append(warnings, Warning{
			Code:    "DEEP_UTILITY",
			Message: fmt.Sprintf("util=%d > skater starters=%d", cfg.Roster.Util, skaters),
		})
	}

	return warnings
}
