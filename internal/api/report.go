package api

import (
	"context"
	"net/http"

	"github.com/linku/linku/internal/match"
)

// reportRequest is the /api/download-pdf payload. Each result is a
// fixed-order tuple: overall, academic, campus, social, school,
// program. Weights travel under the service's short keys.
type reportRequest struct {
	Results [][]any       `json:"results"`
	Weights reportWeights `json:"weights"`
}

type reportWeights struct {
	Academic float64 `json:"wa"`
	Campus   float64 `json:"wc"`
	Social   float64 `json:"wso"`
}

// ReportTuples transforms matches into the report service's tuple
// rows, preserving order.
func ReportTuples(matches []match.Match) [][]any {
	rows := make([][]any, 0, len(matches))
	for _, m := range matches {
		rows = append(rows, []any{m.Overall, m.Academic, m.Campus, m.Social, m.School, m.Program})
	}
	return rows
}

// DownloadReport requests report generation and returns the binary
// document stream.
func (c *Client) DownloadReport(ctx context.Context, matches []match.Match, w match.Weights) ([]byte, error) {
	req := reportRequest{
		Results: ReportTuples(matches),
		Weights: reportWeights{Academic: w.Academic, Campus: w.Campus, Social: w.Social},
	}
	return c.do(ctx, http.MethodPost, "/api/download-pdf", req)
}
