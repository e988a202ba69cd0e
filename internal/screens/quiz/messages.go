package quiz

// speakDoneMsg is sent when an utterance finishes or fails.
type speakDoneMsg struct {
	Err error
}

// advanceMsg fires after the post-answer pause. Round guards against a
// stale timer advancing a question it did not belong to.
type advanceMsg struct {
	Round int
}
