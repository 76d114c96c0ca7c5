package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/wonny/puckdraft/internal/board"
	"github.com/wonny/puckdraft/internal/contracts"
	"github.com/wonny/puckdraft/internal/draftorder"
	"github.com/wonny/puckdraft/internal/engine"
	"github.com/wonny/puckdraft/internal/leagueconfig"
	"github.com/wonny/puckdraft/internal/pool"
	"github.com/wonny/puckdraft/pkg/logger"
)

// PickRecorder persists picks made through the API.
type PickRecorder interface {
	RecordPick(ctx context.Context, leagueID string, pick contracts.Pick) error
}

// BoardHandler serves the live draft board held by the server
// ⭐ SSOT: 드래프트 보드 API 핸들러는 이 구조체에서만
type BoardHandler struct {
	store    *pool.Store
	runner   engine.Runner
	league   *leagueconfig.Config
	recorder PickRecorder
	logger   *logger.Logger
}

// NewBoardHandler creates a new board handler; recorder may be nil
func NewBoardHandler(store *pool.Store, runner engine.Runner, league *leagueconfig.Config, recorder PickRecorder, log *logger.Logger) *BoardHandler {
	return &BoardHandler{
		store:    store,
		runner:   runner,
		league:   league,
		recorder: recorder,
		logger:   log,
	}
}

// BoardResponse is the body of GET /api/board
type BoardResponse struct {
	State           board.State                `json:"state"`
	PositionRun     contracts.PositionRun      `json:"position_run"`
	Recommendations []contracts.Recommendation `json:"recommendations"`
}

// BaselinesResponse is the body of GET /api/baselines
type BaselinesResponse struct {
	State       board.State             `json:"state"`
	Baselines   contracts.BaselineTable `json:"baselines"`
	PositionRun contracts.PositionRun   `json:"position_run"`
}

// PlayerResponse is the body of GET /api/players/{id}
type PlayerResponse struct {
	Player  contracts.Player             `json:"player"`
	Drafted bool                         `json:"drafted"`
	Metrics contracts.PlayerValueMetrics `json:"metrics"`
}

// PickRequest is the body of POST /api/picks. Team defaults to the team
// on the clock.
type PickRequest struct {
	PlayerID string `json:"player_id"`
	Team     int    `json:"team"`
}

// GetBoard returns recommendations for a team
// GET /api/board?team=3&limit=10&picks=5
func (h *BoardHandler) GetBoard(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	team, err := intParam(q.Get("team"), 0)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid team")
		return
	}
	opts := h.league.EngineOptions()
	if opts.Limit, err = intParam(q.Get("limit"), opts.Limit); err != nil || opts.Limit < 0 {
		respondError(w, http.StatusBadRequest, "invalid limit")
		return
	}
	picks, err := intParam(q.Get("picks"), -1)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid picks")
		return
	}

	snap, _ := h.store.Get()
	in, state, err := h.buildInput(snap, team, picks)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	res := h.runner.Run(r.Context(), in, opts)

	respondJSON(w, http.StatusOK, BoardResponse{
		State:           state,
		PositionRun:     res.Run,
		Recommendations: res.Recommendations,
	})
}

// GetBaselines returns the replacement table of the current board
// GET /api/baselines
func (h *BoardHandler) GetBaselines(w http.ResponseWriter, r *http.Request) {
	snap, _ := h.store.Get()
	in, state, err := h.buildInput(snap, 0, -1)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	res := h.runner.Run(r.Context(), in, h.league.EngineOptions())

	respondJSON(w, http.StatusOK, BaselinesResponse{
		State:       state,
		Baselines:   res.Baselines,
		PositionRun: res.Run,
	})
}

// GetPlayer returns one player's metrics
// GET /api/players/{id}
func (h *BoardHandler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	snap, _ := h.store.Get()
	player, ok := snap.Player(id)
	if !ok {
		respondError(w, http.StatusNotFound, pool.ErrPlayerNotFound.Error())
		return
	}

	in, _, err := h.buildInput(snap, 0, -1)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	res := h.runner.Run(r.Context(), in, h.league.EngineOptions())

	drafted := false
	for _, pid := range in.DraftedIDs {
		if pid == id {
			drafted = true
			break
		}
	}

	respondJSON(w, http.StatusOK, PlayerResponse{
		Player:  player,
		Drafted: drafted,
		Metrics: res.Metrics[id],
	})
}

// RecordPick marks a player as drafted
// POST /api/picks
func (h *BoardHandler) RecordPick(w http.ResponseWriter, r *http.Request) {
	var req PickRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.PlayerID == "" {
		respondError(w, http.StatusBadRequest, "player_id is required")
		return
	}

	teams := h.league.League.Teams
	if req.Team == 0 {
		snap, _ := h.store.Get()
		onClock, err := draftorder.TeamOnClock(draftorder.CurrentPick(len(snap.Picks)), teams)
		if err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		req.Team = onClock
	}
	if req.Team < 1 || req.Team > teams {
		respondError(w, http.StatusBadRequest, "team out of range")
		return
	}

	// 저장소 기록이 실패하면 메모리 보드도 바뀌지 않음
	var persistErr error
	var commit func(contracts.Pick) error
	if h.recorder != nil {
		commit = func(pk contracts.Pick) error {
			persistErr = h.recorder.RecordPick(r.Context(), h.league.Meta.LeagueID, pk)
			return persistErr
		}
	}

	pick, err := h.store.AddPick(req.PlayerID, req.Team, commit)
	switch {
	case persistErr != nil:
		h.logger.WithError(persistErr).WithField("player_id", req.PlayerID).Error("Failed to persist pick")
		respondError(w, http.StatusInternalServerError, "failed to persist pick")
		return
	case errors.Is(err, pool.ErrPlayerNotFound):
		respondError(w, http.StatusNotFound, err.Error())
		return
	case errors.Is(err, pool.ErrAlreadyDrafted):
		respondError(w, http.StatusConflict, err.Error())
		return
	case err != nil:
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.logger.WithFields(map[string]interface{}{
		"pick":      pick.Number,
		"team":      pick.Team,
		"player_id": pick.PlayerID,
	}).Info("Pick recorded")

	respondJSON(w, http.StatusCreated, pick)
}

func (h *BoardHandler) buildInput(snap *pool.Snapshot, team, picks int) (engine.Input, board.State, error) {
	return board.Input(h.league, snap, team, picks)
}

func intParam(raw string, def int) (int, error) {
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}
