package engine

import (
	"github.com/wonny/puckdraft/internal/assembler"
	"github.com/wonny/puckdraft/internal/baseline"
	"github.com/wonny/puckdraft/internal/contracts"
	"github.com/wonny/puckdraft/internal/eligibility"
	"github.com/wonny/puckdraft/internal/positionrun"
	"github.com/wonny/puckdraft/internal/recommend"
	"github.com/wonny/puckdraft/internal/valuation"
	"github.com/wonny/puckdraft/pkg/logger"
)

// Input is everything a run depends on besides Options.
type Input struct {
	Players        []contracts.Player             `json:"players"`
	DraftedIDs     []string                       `json:"drafted_ids"`
	Settings       contracts.DraftSettings        `json:"settings"`
	PicksUntilNext int                            `json:"picks_until_next"`
	CurrentPick    int                            `json:"current_pick"`
	PositionNeeds  map[contracts.Position]float64 `json:"position_needs,omitempty"`
	CategoryNeeds  map[contracts.Category]float64 `json:"category_needs,omitempty"`
}

// Options are the user-facing model switches.
type Options struct {
	BaselineMode contracts.BaselineMode    `json:"baseline_mode"`
	Grouping     contracts.ForwardGrouping `json:"forward_grouping"`
	UseNeeds     bool                      `json:"use_needs"`
	Alpha        float64                   `json:"alpha"`
	Limit        int                       `json:"limit"`
}

// Normalize fills unset switches with their defaults.
func (o Options) Normalize() Options {
	if o.BaselineMode == "" {
		o.BaselineMode = contracts.BaselineRemaining
	}
	if o.Grouping == "" {
		o.Grouping = contracts.GroupingSplit
	}
	return o
}

// Validate rejects unknown switches.
func (o Options) Validate() error {
	o = o.Normalize()
	if err := contracts.ValidateBaselineMode(o.BaselineMode); err != nil {
		return err
	}
	return contracts.ValidateForwardGrouping(o.Grouping)
}

// Result is the full output of one run.
type Result struct {
	Metrics         map[string]contracts.PlayerValueMetrics `json:"metrics"`
	Baselines       contracts.BaselineTable                 `json:"baselines"`
	Run             contracts.PositionRun                   `json:"position_run"`
	Recommendations []contracts.Recommendation              `json:"recommendations"`
}

// Engine chains value, eligibility, baseline, position run, metrics and
// ranking as explicit function calls
// ⭐ SSOT: 드래프트 엔진 파이프라인 순서는 여기서만
type Engine struct {
	values    *valuation.Computer
	baselines *baseline.Calculator
	runs      *positionrun.Estimator
	metrics   *assembler.Assembler
	ranker    *recommend.Ranker
	logger    *logger.Logger
}

// New creates a new engine
func New(log *logger.Logger) *Engine {
	if log == nil {
		log = logger.Nop()
	}
	return &Engine{
		values:    valuation.NewComputer(log),
		baselines: baseline.NewCalculator(log),
		runs:      positionrun.NewEstimator(log),
		metrics:   assembler.NewAssembler(log),
		ranker:    recommend.NewRanker(log),
		logger:    log,
	}
}

// Run computes a fresh result. It performs no I/O and never fails; invalid
// numbers degrade to zero.
func (e *Engine) Run(in Input, opts Options) Result {
	opts = opts.Normalize()

	available := contracts.Available(in.Players, in.DraftedIDs)
	elig := eligibility.Resolve(in.Players)

	// 1. Value
	values := e.values.Compute(in.Players, available, in.Settings, opts.BaselineMode)

	// 2. Replacement baselines
	reference := available
	if opts.BaselineMode == contracts.BaselineFullPool {
		reference = in.Players
	}
	refPools := baseline.BuildPools(reference, values, elig, opts.Grouping)
	baselines := e.baselines.Compute(in.Settings, refPools, opts.Grouping)

	// 3. Position run
	run := e.runs.Estimate(available, elig, values, in.PicksUntilNext, opts.Grouping)

	// 4. Metrics
	metrics := e.metrics.Assemble(assembler.Inputs{
		Players:     in.Players,
		Values:      values,
		Eligibility: elig,
		Baselines:   baselines,
		Available:   baseline.BuildPools(available, values, elig, contracts.GroupingSplit),
		Run:         run,
	})

	// 5. Recommendations
	recs := e.ranker.Rank(available, metrics, recommend.Options{
		LeagueType:    in.Settings.LeagueType,
		PositionNeeds: in.PositionNeeds,
		CategoryNeeds: in.CategoryNeeds,
		UseNeeds:      opts.UseNeeds,
		Alpha:         opts.Alpha,
		Limit:         opts.Limit,
		CurrentPick:   in.CurrentPick,
		Teams:         in.Settings.Teams,
		BaselineMode:  opts.BaselineMode,
	})

	e.logger.WithFields(map[string]interface{}{
		"players":   len(in.Players),
		"available": len(available),
		"mode":      string(opts.BaselineMode),
		"grouping":  string(opts.Grouping),
		"run_n":     run.N,
		"recs":      len(recs),
	}).Debug("Engine run completed")

	return Result{
		Metrics:         metrics,
		Baselines:       baselines,
		Run:             run,
		Recommendations: recs,
	}
}
