package contracts

import "math"

// Category is a counting stat used by category leagues.
type Category string

// The six skater counting categories.
const (
	CatGoals        Category = "G"
	CatAssists      Category = "A"
	CatPowerPlayPts Category = "PPP"
	CatShots        Category = "SOG"
	CatHits         Category = "HIT"
	CatBlocks       Category = "BLK"
)

// Categories lists the fixed category set in evaluation order.
var Categories = [6]Category{CatGoals, CatAssists, CatPowerPlayPts, CatShots, CatHits, CatBlocks}

// Player is a read-only projection record supplied by the data layer
// ⭐ SSOT: 선수 입력 데이터 구조
type Player struct {
	ID              string               `json:"id" yaml:"id"`
	Name            string               `json:"name" yaml:"name"`
	Positions       string               `json:"positions" yaml:"positions"` // free-form, e.g. "C,LW" or "F"
	ADP             *float64             `json:"adp,omitempty" yaml:"adp,omitempty"`
	ProjectedPoints *float64             `json:"projected_points,omitempty" yaml:"projected_points,omitempty"`
	Stats           map[Category]float64 `json:"stats,omitempty" yaml:"stats,omitempty"`
}

// Stat returns the projected value of cat and whether it is defined and finite.
func (p *Player) Stat(cat Category) (float64, bool) {
	v, ok := p.Stats[cat]
	if !ok || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// Points returns the scoring-system projection; missing or non-finite is 0.
func (p *Player) Points() float64 {
	if p.ProjectedPoints == nil {
		return 0
	}
	return Finite(*p.ProjectedPoints)
}

// DraftPosition returns ADP and whether it is usable.
func (p *Player) DraftPosition() (float64, bool) {
	if p.ADP == nil || math.IsNaN(*p.ADP) || math.IsInf(*p.ADP, 0) {
		return 0, false
	}
	return *p.ADP, true
}

// DisplayName falls back to the identifier when no name was supplied.
func (p *Player) DisplayName() string {
	if p.Name != "" {
		return p.Name
	}
	return p.ID
}

// Finite collapses NaN and ±Inf to 0.
func Finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// Float returns a pointer to v; convenient for optional fields.
func Float(v float64) *float64 {
	return &v
}

// Available returns the players whose IDs are not in drafted, preserving order.
func Available(players []Player, drafted []string) []Player {
	taken := make(map[string]struct{}, len(drafted))
	for _, id := range drafted {
		taken[id] = struct{}{}
	}
	out := make([]Player, 0, len(players))
	for _, p := range players {
		if _, ok := taken[p.ID]; !ok {
			out = append(out, p)
		}
	}
	return out
}
