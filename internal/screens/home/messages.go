package home

// exportDoneMsg is sent when a home-triggered report export finishes.
type exportDoneMsg struct {
	Path string
	Err  error
}
