package handlers

import (
	"net/http"

	"github.com/wonny/puckdraft/internal/scheduler"
)

// MemoStats reports in-process engine memo counters.
type MemoStats interface {
	Stats() (hits, misses int)
}

// JobStatsSource reports scheduled job statistics.
type JobStatsSource interface {
	Stats() []scheduler.JobStats
}

// HealthHandler reports server status plus memo and scheduler counters
type HealthHandler struct {
	memo        MemoStats
	jobs        JobStatsSource
	profileHash string
}

// NewHealthHandler creates a new health handler; memo and jobs may be nil
func NewHealthHandler(memo MemoStats, jobs JobStatsSource, profileHash string) *HealthHandler {
	return &HealthHandler{memo: memo, jobs: jobs, profileHash: profileHash}
}

// MemoReport is the memo section of the health body
type MemoReport struct {
	Hits   int `json:"hits"`
	Misses int `json:"misses"`
}

// HealthResponse is the body of GET /health
type HealthResponse struct {
	Status      string               `json:"status"`
	Service     string               `json:"service"`
	ProfileHash string               `json:"profile_hash,omitempty"`
	Memo        *MemoReport          `json:"memo,omitempty"`
	Jobs        []scheduler.JobStats `json:"jobs,omitempty"`
}

// Check returns server health status
// GET /health
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{
		Status:      "ok",
		Service:     "puckdraft-api",
		ProfileHash: h.profileHash,
	}
	if h.memo != nil {
		hits, misses := h.memo.Stats()
		resp.Memo = &MemoReport{Hits: hits, Misses: misses}
	}
	if h.jobs != nil {
		resp.Jobs = h.jobs.Stats()
	}
	respondJSON(w, http.StatusOK, resp)
}
