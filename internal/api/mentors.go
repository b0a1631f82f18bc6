package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"github.com/linku/linku/internal/match"
)

// ProgramMentors looks up student mentors for one school+program pair.
//
// Mentor lookup is a soft operation: any transport, status or decode
// failure is reported to the log and downgraded to an empty list, so
// the detail view renders its "no mentors yet" affordance instead of
// an error. The returned error is always nil by contract; the
// signature keeps the call shape of the other collaborators.
func (c *Client) ProgramMentors(ctx context.Context, school, program string) ([]match.Mentor, error) {
	key := school + "_" + program
	path := "/api/program-mentors/" + url.PathEscape(key)

	data, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		c.log.Warn("mentor lookup failed",
			zap.String("program_key", key),
			zap.Error(err),
		)
		return nil, nil
	}

	var mentors []match.Mentor
	if err := json.Unmarshal(data, &mentors); err != nil {
		c.log.Warn("mentor payload malformed",
			zap.String("program_key", key),
			zap.Error(err),
		)
		return nil, nil
	}
	return mentors, nil
}
