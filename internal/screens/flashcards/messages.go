package flashcards

// speakDoneMsg is sent when an utterance finishes or fails.
type speakDoneMsg struct {
	Err error
}
