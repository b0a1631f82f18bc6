package match

import (
	"encoding/json"
	"fmt"
	"math"
)

// Match is one school+program candidate. Scores are ratios in [0,1];
// Overall is informational and kept exactly as the scoring service
// returned it.
type Match struct {
	School   string  `json:"school"`
	Program  string  `json:"program"`
	Overall  float64 `json:"overall"`
	Academic float64 `json:"academic"`
	Campus   float64 `json:"campus"`
	Social   float64 `json:"social"`
}

// Mentor is a student contact for one program. An empty mentor list is
// a valid state, not an error.
type Mentor struct {
	Name        string `json:"name"`
	Details     string `json:"details"`
	Avatar      string `json:"avatar"`
	ContactLink string `json:"contactLink"`
}

// Weights holds the relative importance of the three match dimensions.
type Weights struct {
	Academic float64 `json:"academic"`
	Campus   float64 `json:"campus"`
	Social   float64 `json:"social"`
}

// wrapped is the envelope shape some service versions persist and
// return instead of a bare array.
type wrapped struct {
	Matches []Match `json:"matches"`
}

// Normalize decodes a match result set from either legacy shape — a
// bare array, or an object wrapping the array under "matches" — and
// returns the array form. Order is preserved as received.
func Normalize(raw []byte) ([]Match, error) {
	var list []Match
	if err := json.Unmarshal(raw, &list); err == nil {
		return list, nil
	}

	var w wrapped
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, fmt.Errorf("match results match neither legacy shape: %w", err)
	}
	return w.Matches, nil
}

// Percent formats a ratio in [0,1] as a whole percentage, rounding
// ties half up: 0.655 renders as "66%".
func Percent(r float64) string {
	return fmt.Sprintf("%d%%", int(math.Floor(r*100+0.5)))
}
