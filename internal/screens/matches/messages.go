package matches

import (
	"github.com/linku/linku/internal/match"
)

// matchesLoadedMsg is sent when the stored result set has been read.
type matchesLoadedMsg struct {
	Matches []match.Match
	Err     error
}

// mentorsMsg is sent when a mentor lookup resolves. Gen identifies the
// selection the fetch was issued for; stale generations are discarded.
type mentorsMsg struct {
	Gen     int
	Mentors []match.Mentor
}

// exportDoneMsg is sent when a report export finishes.
type exportDoneMsg struct {
	Path string
	Err  error
}
