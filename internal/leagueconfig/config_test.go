package leagueconfig

import (
	"errors"
	"testing"

	"github.com/wonny/puckdraft/internal/contracts"
)

func TestLoad(t *testing.T) {
	cfg, yamlData, err := Load("testdata/league.yaml")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Meta.LeagueID != "office-cats" {
		t.Errorf("expected league_id=office-cats, got %s", cfg.Meta.LeagueID)
	}
	if cfg.League.Teams != 10 {
		t.Errorf("expected teams=10, got %d", cfg.League.Teams)
	}

	settings := cfg.DraftSettings()
	if settings.LeagueType != contracts.LeagueCategories {
		t.Errorf("expected categories league, got %s", settings.LeagueType)
	}
	if settings.CategoryWeight(contracts.CatHits) != 1.2 {
		t.Errorf("expected HIT weight 1.2, got %v", settings.CategoryWeight(contracts.CatHits))
	}
	if settings.Roster.Starters[contracts.D] != 4 || settings.Roster.Utility != 2 {
		t.Errorf("unexpected roster: %+v", settings.Roster)
	}

	opts := cfg.EngineOptions()
	if opts.BaselineMode != contracts.BaselineFullPool || opts.Grouping != contracts.GroupingCombined {
		t.Errorf("unexpected model options: %+v", opts)
	}
	if !opts.UseNeeds || opts.Alpha != 0.25 || opts.Limit != 15 {
		t.Errorf("unexpected need options: %+v", opts)
	}

	// 해시 생성
	hash, err := Hash(cfg)
	if err != nil {
		t.Fatalf("Hash failed: %v", err)
	}
	if len(hash) != 64 {
		t.Errorf("expected 64 char hash, got %d", len(hash))
	}

	// 동일 설정 → 동일 해시
	hash2, _ := Hash(cfg)
	if hash != hash2 {
		t.Error("hash not deterministic")
	}

	t.Logf("config hash: %s", hash)
	t.Logf("yaml size: %d bytes", len(yamlData))
}

func TestParse_UnknownFieldRejected(t *testing.T) {
	_, err := Parse([]byte("league:\n  teams: 12\n  tems: 10\n"))
	if err == nil {
		t.Fatal("expected error for unknown field")
	}
}

func TestParse_KeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte("league:\n  teams: 8\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if cfg.League.Teams != 8 {
		t.Errorf("expected teams=8, got %d", cfg.League.Teams)
	}
	if cfg.Roster != Default().Roster {
		t.Errorf("roster should keep defaults, got %+v", cfg.Roster)
	}
	if cfg.Model.BaselineMode != string(contracts.BaselineRemaining) {
		t.Errorf("expected remaining baseline, got %s", cfg.Model.BaselineMode)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"default ok", func(*Config) {}, ""},
		{"no teams", func(c *Config) { c.League.Teams = 0 }, "league.teams"},
		{"bad type", func(c *Config) { c.League.Type = "roto" }, "league.type"},
		{"negative slot", func(c *Config) { c.Roster.D = -1 }, "roster.d"},
		{"empty roster", func(c *Config) { c.Roster = Roster{Util: 1} }, "roster"},
		{"bad baseline", func(c *Config) { c.Model.BaselineMode = "season" }, "model.baseline_mode"},
		{"bad grouping", func(c *Config) { c.Model.ForwardGrouping = "wings" }, "model.forward_grouping"},
		{"alpha range", func(c *Config) { c.Needs.Alpha = 1.5 }, "needs.alpha"},
		{"negative limit", func(c *Config) { c.Board.Limit = -1 }, "board.limit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := Validate(cfg)

			if tt.field == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}

			var verr ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if verr.Field != tt.field {
				t.Errorf("expected field %s, got %s", tt.field, verr.Field)
			}
		})
	}
}

func TestWarn(t *testing.T) {
	cfg := Default()
	if w := Warn(cfg); len(w) != 0 {
		t.Errorf("default profile should not warn, got %+v", w)
	}

	weight := 2.0
	cfg.League.CategoryWeights.Hits = &weight
	cfg.Needs.Alpha = 0.9
	cfg.Roster.Util = 20

	codes := map[string]bool{}
	for _, w := range Warn(cfg) {
		codes[w.Code] = true
	}
	for _, code := range []string{"UNUSED_CATEGORY_WEIGHTS", "UNUSED_ALPHA", "DEEP_UTILITY"} {
		if !codes[code] {
			t.Errorf("expected warning %s", code)
		}
	}
}
