package contracts

import (
	"errors"
	"math"
	"testing"
)

func TestDraftSettings_Validate(t *testing.T) {
	tests := []struct {
		name     string
		settings DraftSettings
		wantErr  error
	}{
		{
			name:     "valid points league",
			settings: DraftSettings{Teams: 12, Roster: NewRosterConfig(2, 2, 2, 4, 2, 1), LeagueType: LeaguePoints},
		},
		{
			name:     "no teams",
			settings: DraftSettings{Teams: 0, LeagueType: LeaguePoints},
			wantErr:  ErrNoTeams,
		},
		{
			name:     "unknown league type",
			settings: DraftSettings{Teams: 10, LeagueType: "roto"},
			wantErr:  ErrInvalidLeagueType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.settings.Validate()
			if tt.wantErr == nil && err != nil {
				t.Fatalf("Validate() unexpected error: %v", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Fatalf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestCategoryWeight(t *testing.T) {
	s := DraftSettings{CategoryWeights: map[Category]float64{CatHits: 0.5, CatBlocks: math.NaN()}}

	if w := s.CategoryWeight(CatHits); w != 0.5 {
		t.Errorf("CategoryWeight(HIT) = %v, want 0.5", w)
	}
	if w := s.CategoryWeight(CatGoals); w != 1 {
		t.Errorf("CategoryWeight(G) = %v, want default 1", w)
	}
	if w := s.CategoryWeight(CatBlocks); w != 0 {
		t.Errorf("CategoryWeight(BLK) = %v, want NaN collapsed to 0", w)
	}
}

func TestBaselineModeLabel(t *testing.T) {
	if got := BaselineRemaining.Label(); got != "Remaining Baseline" {
		t.Errorf("got %q", got)
	}
	if got := BaselineFullPool.Label(); got != "Full-Pool Baseline" {
		t.Errorf("got %q", got)
	}
	if got := BaselineMode("").Label(); got != "" {
		t.Errorf("got %q", got)
	}
}

func TestPlayerAccessors(t *testing.T) {
	p := Player{
		ID:              "p1",
		ProjectedPoints: Float(math.Inf(1)),
		ADP:             Float(math.NaN()),
		Stats:           map[Category]float64{CatGoals: 30, CatShots: math.NaN()},
	}

	if got := p.Points(); got != 0 {
		t.Errorf("Points() = %v, want 0 for non-finite projection", got)
	}
	if _, ok := p.DraftPosition(); ok {
		t.Error("DraftPosition() should reject NaN")
	}
	if v, ok := p.Stat(CatGoals); !ok || v != 30 {
		t.Errorf("Stat(G) = %v, %v", v, ok)
	}
	if _, ok := p.Stat(CatShots); ok {
		t.Error("Stat(SOG) should reject NaN")
	}
	if _, ok := p.Stat(CatHits); ok {
		t.Error("Stat(HIT) should be undefined")
	}
	if got := p.DisplayName(); got != "p1" {
		t.Errorf("DisplayName() = %q, want id fallback", got)
	}
}
