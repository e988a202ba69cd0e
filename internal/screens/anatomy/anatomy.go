package anatomy

import (
	tea "charm.land/bubbletea/v2"

	"github.com/dmruiz/frdojo/internal/catalog"
	"github.com/dmruiz/frdojo/internal/router"
	"github.com/dmruiz/frdojo/internal/screen"
	"github.com/dmruiz/frdojo/internal/speech"
	"github.com/dmruiz/frdojo/internal/study"
	"github.com/dmruiz/frdojo/internal/ui/layout"
)

// AnatomyScreen dissects sentences segment by segment: the walk moves
// through cards in deck order without wrapping, and within a card the
// learner steps through segments to see each piece's translation and
// grammar note.
type AnatomyScreen struct {
	track    catalog.Track
	walk     *study.Walk
	speaker  speech.Speaker
	picker   speech.VoicePicker
	segment  int
	speaking bool
	errMsg   string
}

var _ screen.Screen = (*AnatomyScreen)(nil)
var _ screen.KeyHintProvider = (*AnatomyScreen)(nil)
var _ screen.Teardown = (*AnatomyScreen)(nil)

// New creates an anatomy screen over the given track.
func New(track catalog.Track, speaker speech.Speaker, picker speech.VoicePicker) *AnatomyScreen {
	s := &AnatomyScreen{
		track:   track,
		speaker: speaker,
		picker:  picker,
	}
	walk, err := study.NewWalk(track)
	if err != nil {
		s.errMsg = err.Error()
		return s
	}
	s.walk = walk
	return s
}

func (s *AnatomyScreen) Init() tea.Cmd {
	return nil
}

func (s *AnatomyScreen) Title() string {
	return s.track.Title
}

func (s *AnatomyScreen) Close() {
	s.speaker.Cancel()
}

func (s *AnatomyScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←/→", Description: "Segment"},
		{Key: "N/P", Description: "Sentence"},
		{Key: "S", Description: "Listen"},
		{Key: "F", Description: "Full sentence"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *AnatomyScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
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

func (s *AnatomyScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.walk == nil {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	segments := s.walk.Current().Segments

	switch msg.String() {
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }

	case "left", "h":
		if s.segment > 0 {
			s.segment--
		}
		return s, nil

	case "right", "l":
		if s.segment < len(segments)-1 {
			s.segment++
		}
		return s, nil

	case "n", "enter", "space":
		if !s.walk.AtEnd() {
			s.walk.Forward()
			s.segment = 0
		}
		return s, nil

	case "p":
		if !s.walk.AtStart() {
			s.walk.Back()
			s.segment = 0
		}
		return s, nil

	case "s":
		if s.segment < len(segments) {
			return s, s.speakCmd(segments[s.segment].Text, speech.RateSlow)
		}
		return s, nil

	case "f":
		return s, s.speakCmd(s.walk.Current().Prompt, speech.RateNormal)

	case "v":
		s.picker = s.picker.Next()
		return s, nil
	}

	return s, nil
}

func (s *AnatomyScreen) speakCmd(text string, rate float64) tea.Cmd {
	s.speaking = true
	voice := s.picker.Current()
	return func() tea.Msg {
		return speakDoneMsg{Err: s.speaker.Speak(text, voice, rate)}
	}
}
