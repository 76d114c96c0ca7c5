package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/wonny/puckdraft/internal/contracts"
	"github.com/wonny/puckdraft/internal/engine"
	"github.com/wonny/puckdraft/internal/leagueconfig"
	"github.com/wonny/puckdraft/pkg/logger"
)

const maxBodyBytes = 8 << 20

// ValuationHandler runs the engine on caller-supplied pools
// ⭐ SSOT: 무상태(stateless) 가치 계산 API는 여기서만
type ValuationHandler struct {
	runner engine.Runner
	league *leagueconfig.Config
	logger *logger.Logger
}

// NewValuationHandler creates a new valuation handler
func NewValuationHandler(runner engine.Runner, league *leagueconfig.Config, log *logger.Logger) *ValuationHandler {
	return &ValuationHandler{
		runner: runner,
		league: league,
		logger: log,
	}
}

// ValuationRequest is the body of POST /api/valuation. Settings and
// Options default to the server's league profile when omitted.
type ValuationRequest struct {
	Players        []contracts.Player             `json:"players"`
	DraftedIDs     []string                       `json:"drafted_ids"`
	Settings       *contracts.DraftSettings       `json:"settings,omitempty"`
	Options        *engine.Options                `json:"options,omitempty"`
	PicksUntilNext int                            `json:"picks_until_next"`
	CurrentPick    int                            `json:"current_pick"`
	PositionNeeds  map[contracts.Position]float64 `json:"position_needs,omitempty"`
	CategoryNeeds  map[contracts.Category]float64 `json:"category_needs,omitempty"`
}

// Evaluate returns the full engine result
// POST /api/valuation
func (h *ValuationHandler) Evaluate(w http.ResponseWriter, r *http.Request) {
	var req ValuationRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	settings := h.league.DraftSettings()
	if req.Settings != nil {
		settings = *req.Settings
	}
	if err := settings.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	opts := h.league.EngineOptions()
	if req.Options != nil {
		opts = req.Options.Normalize()
	}
	if err := opts.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.PicksUntilNext < 0 || req.CurrentPick < 0 {
		respondError(w, http.StatusBadRequest, "picks_until_next and current_pick must be >= 0")
		return
	}

	in := engine.Input{
		Players:        req.Players,
		DraftedIDs:     req.DraftedIDs,
		Settings:       settings,
		PicksUntilNext: req.PicksUntilNext,
		CurrentPick:    req.CurrentPick,
		PositionNeeds:  req.PositionNeeds,
		CategoryNeeds:  req.CategoryNeeds,
	}

	res := h.runner.Run(r.Context(), in, opts)

	h.logger.WithFields(map[string]interface{}{
		"players": len(req.Players),
		"drafted": len(req.DraftedIDs),
		"recs":    len(res.Recommendations),
	}).Debug("Valuation completed")

	respondJSON(w, http.StatusOK, res)
}
