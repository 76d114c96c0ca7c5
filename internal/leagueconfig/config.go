package leagueconfig

import (
	"github.com/wonny/puckdraft/internal/contracts"
	"github.com/wonny/puckdraft/internal/engine"
)

// Config는 리그 한 곳의 드래프트 설정 전체
type Config struct {
	Meta   Meta   `yaml:"meta" json:"meta"`
	League League `yaml:"league" json:"league"`
	Roster Roster `yaml:"roster" json:"roster"`
	Model  Model  `yaml:"model" json:"model"`
	Needs  Needs  `yaml:"needs" json:"needs"`
	Board  Board  `yaml:"board" json:"board"`
}

// Meta 메타 정보
type Meta struct {
	LeagueID string `yaml:"league_id" json:"league_id"`
	Name     string `yaml:"name" json:"name"`
	Season   string `yaml:"season" json:"season"`
}

// League 리그 형식
type League struct {
	Teams           int             `yaml:"teams" json:"teams"`
	Type            string          `yaml:"type" json:"type"` // points | categories
	CategoryWeights CategoryWeights `yaml:"category_weights" json:"category_weights"`
}

// CategoryWeights 카테고리 가중치 (nil = 기본 1.0)
type CategoryWeights struct {
	Goals           *float64 `yaml:"g" json:"g,omitempty"`
	Assists         *float64 `yaml:"a" json:"a,omitempty"`
	PowerPlayPoints *float64 `yaml:"ppp" json:"ppp,omitempty"`
	Shots           *float64 `yaml:"sog" json:"sog,omitempty"`
	Hits            *float64 `yaml:"hit" json:"hit,omitempty"`
	Blocks          *float64 `yaml:"blk" json:"blk,omitempty"`
}

// Map returns only the weights that were set.
func (w CategoryWeights) Map() map[contracts.Category]float64 {
	out := make(map[contracts.Category]float64)
	for cat, v := range map[contracts.Category]*float64{
		contracts.CatGoals:        w.Goals,
		contracts.CatAssists:      w.Assists,
		contracts.CatPowerPlayPts: w.PowerPlayPoints,
		contracts.CatShots:        w.Shots,
		contracts.CatHits:         w.Hits,
		contracts.CatBlocks:       w.Blocks,
	} {
		if v != nil {
			out[cat] = *v
		}
	}
	return out
}

// Roster 포지션별 주전 슬롯
type Roster struct {
	C    int `yaml:"c" json:"c"`
	LW   int `yaml:"lw" json:"lw"`
	RW   int `yaml:"rw" json:"rw"`
	D    int `yaml:"d" json:"d"`
	G    int `yaml:"g" json:"g"`
	Util int `yaml:"util" json:"util"`
}

// Model 가치 모델 스위치
type Model struct {
	BaselineMode    string `yaml:"baseline_mode" json:"baseline_mode"`       // remaining | full
	ForwardGrouping string `yaml:"forward_grouping" json:"forward_grouping"` // split | fwd
}

// Needs 팀 니즈 블렌딩
type Needs struct {
	Enabled bool    `yaml:"enabled" json:"enabled"`
	Alpha   float64 `yaml:"alpha" json:"alpha"`
}

// Board 추천 목록
type Board struct {
	Limit int `yaml:"limit" json:"limit"`
}

// Default returns the standard 12-team points profile.
func Default() *Config {
	return &Config{
		Meta:   Meta{LeagueID: "default", Name: "Standard 12-team points"},
		League: League{Teams: 12, Type: string(contracts.LeaguePoints)},
		Roster: Roster{C: 2, LW: 2, RW: 2, D: 4, G: 2, Util: 1},
		Model: Model{
			BaselineMode:    string(contracts.BaselineRemaining),
			ForwardGrouping: string(contracts.GroupingSplit),
		},
		Needs: Needs{Enabled: false, Alpha: 0.3},
		Board: Board{Limit: 10},
	}
}

// DraftSettings converts the profile into engine settings.
func (c *Config) DraftSettings() contracts.DraftSettings {
	s := contracts.DraftSettings{
		Teams:      c.League.Teams,
		Roster:     contracts.NewRosterConfig(c.Roster.C, c.Roster.LW, c.Roster.RW, c.Roster.D, c.Roster.G, c.Roster.Util),
		LeagueType: contracts.LeagueType(c.League.Type),
	}
	if w := c.League.CategoryWeights.Map(); len(w) > 0 {
		s.CategoryWeights = w
	}
	return s
}

// EngineOptions converts the model switches into engine options.
func (c *Config) EngineOptions() engine.Options {
	return engine.Options{
		BaselineMode: contracts.BaselineMode(c.Model.BaselineMode),
		Grouping:     contracts.ForwardGrouping(c.Model.ForwardGrouping),
		UseNeeds:     c.Needs.Enabled,
		Alpha:        c.Needs.Alpha,
		Limit:        c.Board.Limit,
	}.Normalize()
}
