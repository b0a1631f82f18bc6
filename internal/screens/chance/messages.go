package chance

// predictionMsg is sent when the admission estimate resolves.
type predictionMsg struct {
	Text string
	Err  error
}
