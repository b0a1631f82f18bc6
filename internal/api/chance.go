package api

import (
	"context"
	"errors"
	"net/http"
)

// ChanceRequest is the admission-estimate payload. Top6 travels as the
// raw form string; the service parses it.
type ChanceRequest struct {
	School  string `json:"school"`
	Program string `json:"program"`
	Top6    string `json:"top6"`
	ECs     string `json:"ecs"`
}

type chanceEnvelope struct {
	Success    bool   `json:"success"`
	Prediction string `json:"prediction"`
	Error      string `json:"error"`
}

// ChanceMe requests an admission chance estimate and returns the
// prediction text. Callers validate the form locally first; this
// method assumes a well-formed request.
func (c *Client) ChanceMe(ctx context.Context, req ChanceRequest) (string, error) {
	var env chanceEnvelope
	if err := c.postJSON(ctx, "/api/chance-me", req, &env); err != nil {
		return "", err
	}
	if !env.Success {
		return "", &TransportError{Status: http.StatusOK, Err: errors.New(env.Error)}
	}
	return env.Prediction, nil
}
