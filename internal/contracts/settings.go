package contracts

import (
	"errors"
	"fmt"
)

// LeagueType selects how a player's scalar value is computed.
type LeagueType string

const (
	LeaguePoints     LeagueType = "points"
	LeagueCategories LeagueType = "categories"
)

// BaselineMode selects which pool replacement levels are read from.
type BaselineMode string

const (
	BaselineRemaining BaselineMode = "remaining"
	BaselineFullPool  BaselineMode = "full"
)

// Label is the human-readable reason tag for the mode.
func (m BaselineMode) Label() string {
	switch m {
	case BaselineRemaining:
		return "Remaining Baseline"
	case BaselineFullPool:
		return "Full-Pool Baseline"
	default:
		return ""
	}
}

// ForwardGrouping selects whether C/LW/RW are modeled separately.
type ForwardGrouping string

const (
	GroupingSplit    ForwardGrouping = "split"
	GroupingCombined ForwardGrouping = "fwd"
)

var (
	ErrInvalidLeagueType      = errors.New("invalid league type")
	ErrInvalidBaselineMode    = errors.New("invalid baseline mode")
	ErrInvalidForwardGrouping = errors.New("invalid forward grouping")
	ErrNoTeams                = errors.New("team count must be >= 1")
)

// RosterConfig holds starter counts per position plus shared utility slots.
type RosterConfig struct {
	Starters PositionTable[int] `json:"starters"`
	Utility  int                `json:"utility"`
}

// NewRosterConfig is a convenience constructor in C, LW, RW, D, G order.
func NewRosterConfig(c, lw, rw, d, g, util int) RosterConfig {
	return RosterConfig{
		Starters: PositionTable[int]{c, lw, rw, d, g},
		Utility:  util,
	}
}

// DraftSettings describes the league
// ⭐ SSOT: 리그 설정 구조
type DraftSettings struct {
	Teams           int                  `json:"teams"`
	Roster          RosterConfig         `json:"roster"`
	LeagueType      LeagueType           `json:"league_type"`
	CategoryWeights map[Category]float64 `json:"category_weights,omitempty"`
}

// Validate rejects settings the engine cannot interpret.
// The engine itself never calls it; outer layers do before a run.
func (s DraftSettings) Validate() error {
	if s.Teams < 1 {
		return ErrNoTeams
	}
	if s.LeagueType != LeaguePoints && s.LeagueType != LeagueCategories {
		return fmt.Errorf("%w: %q", ErrInvalidLeagueType, s.LeagueType)
	}
	for _, p := range AllPositions {
		if s.Roster.Starters[p] < 0 {
			return fmt.Errorf("starters for %s must be >= 0", p)
		}
	}
	if s.Roster.Utility < 0 {
		return fmt.Errorf("utility slots must be >= 0")
	}
	return nil
}

// CategoryWeight returns the configured weight, defaulting to 1.
func (s DraftSettings) CategoryWeight(cat Category) float64 {
	if w, ok := s.CategoryWeights[cat]; ok {
		return Finite(w)
	}
	return 1
}

// ValidateBaselineMode checks a user-supplied mode.
func ValidateBaselineMode(m BaselineMode) error {
	if m != BaselineRemaining && m != BaselineFullPool {
		return fmt.Errorf("%w: %q", ErrInvalidBaselineMode, m)
	}
	return nil
}

// ValidateForwardGrouping checks a user-supplied grouping.
func ValidateForwardGrouping(g ForwardGrouping) error {
	if g != GroupingSplit && g != GroupingCombined {
		return fmt.Errorf("%w: %q", ErrInvalidForwardGrouping, g)
	}
	return nil
}
