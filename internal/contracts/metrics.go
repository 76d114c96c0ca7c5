package contracts

import "encoding/json"

// PositionBaseline holds the two replacement values of one position.
type PositionBaseline struct {
	VORP float64 `json:"vorp_baseline"`
	VOLS float64 `json:"vols_baseline"`
}

// BaselineTable maps every canonical position to its replacement values.
type BaselineTable PositionTable[PositionBaseline]

// MarshalJSON renders the table keyed by position name.
func (t BaselineTable) MarshalJSON() ([]byte, error) {
	out := make(map[string]PositionBaseline, NumPositions)
	for _, p := range AllPositions {
		out[p.String()] = t[p]
	}
	return json.Marshal(out)
}

// UnmarshalJSON reads the keyed form written by MarshalJSON.
func (t *BaselineTable) UnmarshalJSON(data []byte) error {
	var in map[string]PositionBaseline
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	for name, b := range in {
		p, err := ParsePosition(name)
		if err != nil {
			return err
		}
		t[p] = b
	}
	return nil
}

// PositionFloats is a per-position fractional count.
type PositionFloats PositionTable[float64]

// MarshalJSON renders the counts keyed by position name.
func (f PositionFloats) MarshalJSON() ([]byte, error) {
	out := make(map[string]float64, NumPositions)
	for _, p := range AllPositions {
		out[p.String()] = f[p]
	}
	return json.Marshal(out)
}

// UnmarshalJSON reads the keyed form written by MarshalJSON.
func (f *PositionFloats) UnmarshalJSON(data []byte) error {
	var in map[string]float64
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	for name, v := range in {
		p, err := ParsePosition(name)
		if err != nil {
			return err
		}
		f[p] = v
	}
	return nil
}

// PositionRun is the predicted position run before the next turn.
type PositionRun struct {
	ExpectedTaken PositionFloats `json:"expected_taken_by_pos"`
	N             int            `json:"n"`
}

// PlayerValueMetrics is the per-player valuation output
// ⭐ SSOT: 선수별 가치 지표 (매 사이클 전체 교체)
type PlayerValueMetrics struct {
	Value             float64    `json:"value"`
	VORP              float64    `json:"vorp"`
	VOLS              float64    `json:"vols"`
	VONA              float64    `json:"vona"`
	VBD               float64    `json:"vbd"`
	BestPos           Position   `json:"best_pos"`
	EligiblePositions []Position `json:"eligible_positions"`
}

// Recommendation is one ranked pick suggestion.
type Recommendation struct {
	PlayerID        string   `json:"player_id"`
	Name            string   `json:"name"`
	BestPos         Position `json:"best_pos"`
	Score           float64  `json:"score"`
	ProjectedPoints float64  `json:"projected_points"`
	ADP             *float64 `json:"adp,omitempty"`
	VORP            *float64 `json:"vorp,omitempty"`
	VONA            *float64 `json:"vona,omitempty"`
	VBD             *float64 `json:"vbd,omitempty"`
	Availability    *float64 `json:"availability,omitempty"`
	FitScore        *float64 `json:"fit_score,omitempty"`
	Reasons         []string `json:"reasons"`
}

// HasReason reports whether tag was attached.
func (r *Recommendation) HasReason(tag string) bool {
	for _, reason := range r.Reasons {
		if reason == tag {
			return true
		}
	}
	return false
}
