package quiz

import (
	"github.com/linku/linku/internal/match"
)

// submitResultMsg is sent when the quiz submission round trip finishes.
// On success the answers and the scored matches are already persisted.
type submitResultMsg struct {
	Matches []match.Match
	Err     error
}
