package chance

import (
	"strconv"
	"strings"

	"github.com/linku/linku/internal/api"
)

// Form holds the chance-me inputs as typed by the user.
type Form struct {
	School  string
	Program string
	Top6    string
	ECs     string // optional, comma-separated free text
}

// Validate enforces the local preconditions: school and program must
// be non-empty after trimming and Top6 must parse as a number in
// [0, 100]. A failure is a *api.ValidationError and means no network
// call is made.
func (f Form) Validate() error {
	if strings.TrimSpace(f.School) == "" {
		return &api.ValidationError{Msg: "school is required"}
	}
	if strings.TrimSpace(f.Program) == "" {
		return &api.ValidationError{Msg: "program is required"}
	}

	top6 := strings.TrimSpace(f.Top6)
	if top6 == "" {
		return &api.ValidationError{Msg: "top 6 average is required"}
	}
	v, err := strconv.ParseFloat(top6, 64)
	if err != nil {
		return &api.ValidationError{Msg: "top 6 average must be a number"}
	}
	if v < 0 || v > 100 {
		return &api.ValidationError{Msg: "top 6 average must be between 0 and 100"}
	}
	return nil
}

// Request builds the wire payload for a validated form.
func (f Form) Request() api.ChanceRequest {
	return api.ChanceRequest{
		School:  strings.TrimSpace(f.School),
		Program: strings.TrimSpace(f.Program),
		Top6:    strings.TrimSpace(f.Top6),
		ECs:     strings.TrimSpace(f.ECs),
	}
}
