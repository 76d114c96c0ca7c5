package valuation

import (
	"gonum.org/v1/gonum/stat"

	"github.com/wonny/puckdraft/internal/contracts"
	"github.com/wonny/puckdraft/internal/eligibility"
	"github.com/wonny/puckdraft/pkg/logger"
)

// Computer turns projections into one comparable scalar per player
// ⭐ SSOT: 선수 가치(value) 계산은 여기서만
type Computer struct {
	logger *logger.Logger
}

// NewComputer creates a new value computer
func NewComputer(log *logger.Logger) *Computer {
	if log == nil {
		log = logger.Nop()
	}
	return &Computer{logger: log}
}

// CategoryStat is the population mean and standard deviation of one category.
type CategoryStat struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	N      int     `json:"n"`
}

// Compute returns value keyed by player ID for every player in players.
//
// Points leagues use the projected scoring-system total. Category leagues sum
// weighted z-scores against a skater reference pool: available when mode is
// remaining, otherwise the full pool.
func (c *Computer) Compute(players, available []contracts.Player, settings contracts.DraftSettings, mode contracts.BaselineMode) map[string]float64 {
	values := make(map[string]float64, len(players))

	if settings.LeagueType != contracts.LeagueCategories {
		for i := range players {
			values[players[i].ID] = players[i].Points()
		}
		return values
	}

	reference := players
	if mode == contracts.BaselineRemaining {
		reference = available
	}
	stats := ReferenceStats(reference)

	for i := range players {
		values[players[i].ID] = CategoryValue(&players[i], stats, settings)
	}

	c.logger.WithFields(map[string]interface{}{
		"players":   len(players),
		"reference": len(reference),
		"mode":      string(mode),
	}).Debug("Computed category values")

	return values
}

// ReferenceStats computes per-category population statistics over the
// skaters of reference. Goalies and undefined stats are skipped.
func ReferenceStats(reference []contracts.Player) map[contracts.Category]CategoryStat {
	samples := make(map[contracts.Category][]float64, len(contracts.Categories))
	for i := range reference {
		if eligibility.Parse(reference[i].Positions).Has(contracts.G) {
			continue
		}
		for _, cat := range contracts.Categories {
			if v, ok := reference[i].Stat(cat); ok {
				samples[cat] = append(samples[cat], v)
			}
		}
	}

	out := make(map[contracts.Category]CategoryStat, len(samples))
	for cat, xs := range samples {
		mean, std := stat.PopMeanStdDev(xs, nil)
		out[cat] = CategoryStat{
			Mean:   contracts.Finite(mean),
			StdDev: contracts.Finite(std),
			N:      len(xs),
		}
	}
	return out
}

// CategoryValue is the weighted z-score sum of p against stats.
// Categories without data or with zero spread contribute nothing.
func CategoryValue(p *contracts.Player, stats map[contracts.Category]CategoryStat, settings contracts.DraftSettings) float64 {
	total := 0.0
	for _, cat := range contracts.Categories {
		raw, ok := p.Stat(cat)
		if !ok {
			continue
		}
		s, ok := stats[cat]
		if !ok || s.StdDev == 0 {
			continue
		}
		total += (raw - s.Mean) / s.StdDev * settings.CategoryWeight(cat)
	}
	return contracts.Finite(total)
}
