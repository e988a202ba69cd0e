package table

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/dmruiz/frdojo/internal/catalog"
	"github.com/dmruiz/frdojo/internal/router"
	"github.com/dmruiz/frdojo/internal/screen"
	"github.com/dmruiz/frdojo/internal/speech"
	"github.com/dmruiz/frdojo/internal/ui/components"
	"github.com/dmruiz/frdojo/internal/ui/layout"
)

// TableScreen renders a reference-table track as category groups with a
// row cursor, a typed filter, and per-row pronunciation.
type TableScreen struct {
	track    catalog.Track
	speaker  speech.Speaker
	picker   speech.VoicePicker
	filter   components.FilterInput
	cursor   int
	offset   int
	speaking bool
}

var _ screen.Screen = (*TableScreen)(nil)
var _ screen.KeyHintProvider = (*TableScreen)(nil)
var _ screen.Teardown = (*TableScreen)(nil)

// New creates a table screen over the given track.
func New(track catalog.Track, speaker speech.Speaker, picker speech.VoicePicker) *TableScreen {
	return &TableScreen{
		track:   track,
		speaker: speaker,
		picker:  picker,
		filter:  components.NewFilterInput("filter...", 30),
	}
}

func (s *TableScreen) Init() tea.Cmd {
	return nil
}

func (s *TableScreen) Title() string {
	return s.track.Title
}

func (s *TableScreen) Close() {
	s.speaker.Cancel()
}

func (s *TableScreen) KeyHints() []layout.KeyHint {
	if s.filter.Focused() {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Apply"},
			{Key: "Esc", Description: "Clear"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "Move"},
		{Key: "S", Description: "Listen"},
		{Key: "/", Description: "Filter"},
		{Key: "Esc", Description: "Back"},
	}
}

// rows returns the deck filtered by the current query, in deck order.
// Grouping into categories happens at render time so the cursor can
// stay a flat index.
func (s *TableScreen) rows() []catalog.Card {
	query := strings.ToLower(strings.TrimSpace(s.filter.Value()))
	if query == "" {
		return s.track.Deck
	}
	var out []catalog.Card
	for _, c := range s.track.Deck {
		if strings.Contains(strings.ToLower(c.Prompt), query) ||
			strings.Contains(strings.ToLower(c.Meaning), query) {
			out = append(out, c)
		}
	}
	return out
}

func (s *TableScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case speakDoneMsg:
		// Speech failures are silent; browsing goes on without audio.
		s.speaking = false
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *TableScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.filter.Focused() {
		switch msg.String() {
		case "enter":
			s.filter = s.filter.Blur()
			s.clampCursor()
			return s, nil
		case "esc":
			s.filter = s.filter.Blur().Reset()
			s.clampCursor()
			return s, nil
		}
		var cmd tea.Cmd
		s.filter, cmd = s.filter.Update(msg)
		s.cursor = 0
		s.offset = 0
		return s, cmd
	}

	switch msg.String() {
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }

	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
		return s, nil

	case "down", "j":
		if s.cursor < len(s.rows())-1 {
			s.cursor++
		}
		return s, nil

	case "/":
		var cmd tea.Cmd
		s.filter, cmd = s.filter.Focus()
		return s, cmd

	case "s", "enter":
		rows := s.rows()
		if s.cursor < len(rows) {
			return s, s.speakCmd(rows[s.cursor].Prompt)
		}
		return s, nil

	case "v":
		s.picker = s.picker.Next()
		return s, nil
	}

	return s, nil
}

func (s *TableScreen) clampCursor() {
	if n := len(s.rows()); s.cursor >= n {
		s.cursor = max(n-1, 0)
	}
}

func (s *TableScreen) speakCmd(text string) tea.Cmd {
	s.speaking = true
	voice := s.picker.Current()
	return func() tea.Msg {
		return speakDoneMsg{Err: s.speaker.Speak(text, voice, speech.RateNormal)}
	}
}
