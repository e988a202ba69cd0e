package home

import "github.com/dmruiz/frdojo/internal/speech"

// voicesLoadedMsg carries the engine's discovered voices.
type voicesLoadedMsg struct {
	Voices []speech.Voice
}
