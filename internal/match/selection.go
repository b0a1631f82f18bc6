package match

// Selection tracks the currently selected match and its mentor list.
//
// Every Select bumps a generation counter and immediately clears the
// mentor list, so the detail view never shows the previous program's
// mentors while a fetch is in flight. A mentor fetch carries the
// generation it was issued for; Apply discards any resolution whose
// generation no longer matches, which makes out-of-order responses
// harmless without an explicit cancellation signal.
type Selection struct {
	current *Match
	mentors []Mentor
	loading bool
	gen     int
}

// Select makes m the current selection and returns the generation tag
// the caller must pass back to Apply when its mentor fetch resolves.
func (s *Selection) Select(m *Match) int {
	s.current = m
	s.mentors = nil
	s.loading = m != nil
	s.gen++
	return s.gen
}

// Clear resets the selection to none. Used when the result set changes.
func (s *Selection) Clear() {
	s.current = nil
	s.mentors = nil
	s.loading = false
	s.gen++
}

// Apply installs a resolved mentor list if gen still identifies the
// current selection. Returns false for stale resolutions, which are
// dropped without touching state.
func (s *Selection) Apply(gen int, mentors []Mentor) bool {
	if gen != s.gen || s.current == nil {
		return false
	}
	s.mentors = mentors
	s.loading = false
	return true
}

// Current returns the selected match, or nil.
func (s *Selection) Current() *Match {
	return s.current
}

// Mentors returns the mentor list for the current selection.
func (s *Selection) Mentors() []Mentor {
	return s.mentors
}

// Loading reports whether a mentor fetch for the current selection has
// not resolved yet.
func (s *Selection) Loading() bool {
	return s.loading
}
