package recommend

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/wonny/puckdraft/internal/contracts"
	"github.com/wonny/puckdraft/pkg/logger"
)

// Reason tags attached to recommendations.
const (
	ReasonHighVBD  = "High VBD"
	ReasonNeedFit  = "Team Need Fit"
	ReasonCatFit   = "Cat Fit"
	ReasonADPValue = "ADP Value"
)

const (
	availabilityScale = 12.0
	availabilityMin   = 0.01
	availabilityMax   = 0.99
	adpValueMargin    = 5.0
	fitTagRatio       = 0.1
	fitScale          = 10.0
)

// Options controls blending, context and truncation.
type Options struct {
	LeagueType    contracts.LeagueType
	PositionNeeds map[contracts.Position]float64 // points leagues
	CategoryNeeds map[contracts.Category]float64 // categories leagues
	UseNeeds      bool
	Alpha         float64 // 0..1, weight of need fit in the blend
	Limit         int     // <= 0 keeps every candidate
	CurrentPick   int     // 0 when unknown
	Teams         int     // 0 when unknown
	BaselineMode  contracts.BaselineMode
}

// Ranker produces the sorted recommendation list
// ⭐ SSOT: 추천 점수/정렬 로직은 여기서만
type Ranker struct {
	logger *logger.Logger
}

// NewRanker creates a new recommendation ranker
func NewRanker(log *logger.Logger) *Ranker {
	if log == nil {
		log = logger.Nop()
	}
	return &Ranker{logger: log}
}

// Rank scores every available player that has metrics and returns the
// best opts.Limit of them.
func (r *Ranker) Rank(available []contracts.Player, metrics map[string]contracts.PlayerValueMetrics, opts Options) []contracts.Recommendation {
	candidates := make([]*contracts.Player, 0, len(available))
	for i := range available {
		if _, ok := metrics[available[i].ID]; ok {
			candidates = append(candidates, &available[i])
		}
	}

	fits := make([]float64, len(candidates))
	for i, p := range candidates {
		fits[i] = FitScore(p, metrics[p.ID], opts)
	}
	maxAbsFit := 0.0
	if len(fits) > 0 {
		maxAbsFit = floats.Norm(fits, math.Inf(1))
	}
	denom := maxAbsFit
	if denom == 0 {
		denom = 1
	}

	expected, hasExpected := ExpectedPick(opts.CurrentPick, opts.Teams)
	alpha := clamp(opts.Alpha, 0, 1)

	recs := make([]contracts.Recommendation, 0, len(candidates))
	for i, p := range candidates {
		m := metrics[p.ID]
		fit := fits[i]

		score := m.VBD
		if opts.UseNeeds {
			score = (1-alpha)*m.VBD + alpha*(fit/denom)*fitScale
		}

		rec := contracts.Recommendation{
			PlayerID:        p.ID,
			Name:            p.DisplayName(),
			BestPos:         m.BestPos,
			Score:           contracts.Finite(score),
			ProjectedPoints: p.Points(),
			VORP:            contracts.Float(m.VORP),
			VONA:            contracts.Float(m.VONA),
			VBD:             contracts.Float(m.VBD),
			Reasons:         []string{},
		}
		if opts.UseNeeds {
			rec.FitScore = contracts.Float(fit)
		}

		adp, hasADP := p.DraftPosition()
		if hasADP {
			rec.ADP = contracts.Float(adp)
			if hasExpected {
				rec.Availability = contracts.Float(Availability(adp, expected))
			}
		}

		if m.VBD > 0 {
			rec.Reasons = append(rec.Reasons, ReasonHighVBD)
		}
		if m.VORP > 0 && opts.BaselineMode != "" {
			rec.Reasons = append(rec.Reasons, opts.BaselineMode.Label())
		}
		if math.Abs(fit) > fitTagRatio*maxAbsFit {
			rec.Reasons = append(rec.Reasons, fitReason(opts.LeagueType))
		}
		if hasADP && hasExpected && adp-float64(expected) > adpValueMargin {
			rec.Reasons = append(rec.Reasons, ReasonADPValue)
		}

		recs = append(recs, rec)
	}

	Sort(recs)

	if opts.Limit > 0 && len(recs) > opts.Limit {
		recs = recs[:opts.Limit]
	}

	if len(recs) > 0 {
		r.logger.WithFields(map[string]interface{}{
			"candidates": len(candidates),
			"returned":   len(recs),
			"top_player": recs[0].PlayerID,
			"top_score":  recs[0].Score,
		}).Debug("Ranking completed")
	}

	return recs
}

// Sort orders recommendations by score, projected points, name and ID.
func Sort(recs []contracts.Recommendation) {
	sort.SliceStable(recs, func(i, j int) bool {
		a, b := &recs[i], &recs[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.ProjectedPoints != b.ProjectedPoints {
			return a.ProjectedPoints > b.ProjectedPoints
		}
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		return a.PlayerID < b.PlayerID
	})
}

// FitScore measures how well p matches the drafting team's needs.
//
// Categories leagues sum stat × need over the fixed category set. Points
// leagues average the position need over every eligible position.
func FitScore(p *contracts.Player, m contracts.PlayerValueMetrics, opts Options) float64 {
	if opts.LeagueType == contracts.LeagueCategories {
		var fit float64
		for _, cat := range contracts.Categories {
			v, ok := p.Stat(cat)
			if !ok {
				continue
			}
			fit += v * contracts.Finite(opts.CategoryNeeds[cat])
		}
		return contracts.Finite(fit)
	}

	if len(m.EligiblePositions) == 0 {
		return 0
	}
	var total float64
	for _, pos := range m.EligiblePositions {
		total += contracts.Finite(opts.PositionNeeds[pos])
	}
	return total / float64(len(m.EligiblePositions))
}

// ExpectedPick is the pick number the user is assumed to make next.
func ExpectedPick(currentPick, teams int) (int, bool) {
	if currentPick <= 0 || teams <= 0 {
		return 0, false
	}
	return currentPick + teams, true
}

// Availability estimates the chance a player with the given ADP is still on
// the board at expectedPick.
func Availability(adp float64, expectedPick int) float64 {
	delta := adp - float64(expectedPick)
	return clamp(logistic(delta/availabilityScale), availabilityMin, availabilityMax)
}

func logistic(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Max(lo, math.Min(hi, v))
}

func fitReason(league contracts.LeagueType) string {
	if league == contracts.LeagueCategories {
		return ReasonCatFit
	}
	return ReasonNeedFit
}
