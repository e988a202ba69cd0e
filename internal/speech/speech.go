// Package speech wraps the host's text-to-speech engine behind a small
// Speaker interface. The study screens only ever say "speak this text
// with this voice at this rate" and watch the speaking flag; discovery
// and ranking of voices lives here too.
package speech

// Speaking rates, as multipliers around the engine's normal pace.
// Slow playback is used for pronunciation drills.
const (
	RateNormal = 0.9
	RateSlow   = 0.65
)

// Voice is a handle to one synthetic voice offered by the engine.
type Voice struct {
	Name string
	Lang string
}

// French reports whether the voice is tagged for French.
func (v Voice) French() bool {
	return hasFrenchTag(v.Lang)
}

// Speaker produces audio for text. Implementations are single-flight:
// a new Speak call cancels any utterance still in progress, so at most
// one is ever audible.
type Speaker interface {
	// Speak vocalizes text and blocks until the utterance ends or the
	// engine fails. A nil voice uses the engine default.
	Speak(text string, voice *Voice, rate float64) error

	// Cancel stops the in-flight utterance, if any.
	Cancel()

	// Voices lists the available voices, French-tagged ones first.
	Voices() []Voice
}

// Noop is the fallback Speaker when no engine is installed. Utterances
// complete instantly and silently; the learner can still study.
type Noop struct{}

func (Noop) Speak(string, *Voice, float64) error { return nil }
func (Noop) Cancel()                             {}
func (Noop) Voices() []Voice                     { return nil }
