package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/linku/linku/internal/match"
)

// SubmitQuiz sends a serialized answer set to the scoring service and
// returns the ranked match result set. The service has shipped two
// response shapes over time; both are accepted.
func (c *Client) SubmitQuiz(ctx context.Context, answers map[string]any) ([]match.Match, error) {
	data, err := c.do(ctx, http.MethodPost, "/api/match", answers)
	if err != nil {
		return nil, err
	}

	matches, err := match.Normalize(data)
	if err != nil {
		return nil, &DecodeError{Err: err}
	}
	return matches, nil
}

// fullMatchesEnvelope is the /api/full-matches response shape.
type fullMatchesEnvelope struct {
	Success bool          `json:"success"`
	Matches []match.Match `json:"matches"`
	Error   string        `json:"error"`
}

// FullMatches requests the complete, unfiltered match set for the
// given answers. This is a distinct request from SubmitQuiz because
// the displayed set may be truncated to a top-N.
func (c *Client) FullMatches(ctx context.Context, answers map[string]any) ([]match.Match, error) {
	var env fullMatchesEnvelope
	if err := c.postJSON(ctx, "/api/full-matches", answers, &env); err != nil {
		return nil, err
	}
	if !env.Success {
		return nil, &TransportError{Status: http.StatusOK, Err: errors.New(env.Error)}
	}
	return env.Matches, nil
}
