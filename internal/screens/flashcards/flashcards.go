package flashcards

import (
	tea "charm.land/bubbletea/v2"

	"github.com/dmruiz/frdojo/internal/catalog"
	"github.com/dmruiz/frdojo/internal/router"
	"github.com/dmruiz/frdojo/internal/screen"
	"github.com/dmruiz/frdojo/internal/screens/quiz"
	"github.com/dmruiz/frdojo/internal/speech"
	"github.com/dmruiz/frdojo/internal/study"
	"github.com/dmruiz/frdojo/internal/ui/layout"
)

// FlashcardsScreen runs one flashcard pass over a track: a shuffled
// circular walk with hidden-then-revealed cards and spoken prompts.
type FlashcardsScreen struct {
	track    catalog.Track
	session  *study.Session
	speaker  speech.Speaker
	picker   speech.VoicePicker
	speaking bool
	errMsg   string
}

var _ screen.Screen = (*FlashcardsScreen)(nil)
var _ screen.KeyHintProvider = (*FlashcardsScreen)(nil)
var _ screen.Teardown = (*FlashcardsScreen)(nil)

// New creates a flashcard screen over the given track.
func New(track catalog.Track, speaker speech.Speaker, picker speech.VoicePicker) *FlashcardsScreen {
	s := &FlashcardsScreen{
		track:   track,
		speaker: speaker,
		picker:  picker,
	}
	sess, err := study.NewSession(track)
	if err != nil {
		s.errMsg = err.Error()
		return s
	}
	s.session = sess
	return s
}

func (s *FlashcardsScreen) Init() tea.Cmd {
	return nil
}

func (s *FlashcardsScreen) Title() string {
	return s.track.Title
}

// Close cancels any in-flight utterance when the screen is popped.
func (s *FlashcardsScreen) Close() {
	s.speaker.Cancel()
}

func (s *FlashcardsScreen) KeyHints() []layout.KeyHint {
	if s.session == nil {
		return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	}
	if !s.session.Revealed() {
		return []layout.KeyHint{
			{Key: "Space", Description: "Reveal"},
			{Key: "S", Description: "Listen"},
			{Key: "Esc", Description: "Back"},
		}
	}
	hints := []layout.KeyHint{
		{Key: "E", Description: "Easy"},
		{Key: "D", Description: "Difficult"},
		{Key: "S", Description: "Listen"},
		{Key: "X", Description: "Slow"},
	}
	if len(catalog.AllCards()) >= study.MinPoolSize {
		hints = append(hints, layout.KeyHint{Key: "Q", Description: "Quiz"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
}

func (s *FlashcardsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case speakDoneMsg:
		// Speech failures are silent; study goes on without audio.
		s.speaking = false
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *FlashcardsScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.session == nil {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	switch msg.String() {
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }

	case "enter", "space":
		if !s.session.Revealed() {
			s.session.Reveal()
			return s, s.speakCmd(s.session.Current().Prompt, speech.RateNormal)
		}
		s.session.Advance()
		return s, nil

	case "e", "right", "l", "n":
		// Easy and Difficult both advance; difficulty is not tracked.
		if s.session.Revealed() {
			s.session.Advance()
		}
		return s, nil

	case "d":
		if s.session.Revealed() {
			s.session.Advance()
		}
		return s, nil

	case "s":
		return s, s.speakCmd(s.session.Current().Prompt, speech.RateNormal)

	case "x":
		return s, s.speakCmd(s.session.Current().Prompt, speech.RateSlow)

	case "v":
		s.picker = s.picker.Next()
		return s, nil

	case "r":
		// Fresh shuffle over the same deck.
		if sess, err := study.NewSession(s.track); err == nil {
			s.session = sess
		}
		return s, nil

	case "q":
		// Distractors come from every track, not only this one.
		if pool := catalog.AllCards(); len(pool) >= study.MinPoolSize {
			qs := quiz.New(s.track, pool, s.speaker, s.picker)
			return s, func() tea.Msg { return router.PushScreenMsg{Screen: qs} }
		}
		return s, nil
	}

	return s, nil
}

// speakCmd pronounces text with the active voice. The engine cancels
// any in-flight utterance itself, so dispatching is always safe.
func (s *FlashcardsScreen) speakCmd(text string, rate float64) tea.Cmd {
	s.speaking = true
	voice := s.picker.Current()
	return func() tea.Msg {
		return speakDoneMsg{Err: s.speaker.Speak(text, voice, rate)}
	}
}
