package home

import (
	tea "charm.land/bubbletea/v2"

	"github.com/dmruiz/frdojo/internal/catalog"
	"github.com/dmruiz/frdojo/internal/router"
	"github.com/dmruiz/frdojo/internal/screen"
	"github.com/dmruiz/frdojo/internal/screens/anatomy"
	"github.com/dmruiz/frdojo/internal/screens/flashcards"
	"github.com/dmruiz/frdojo/internal/screens/table"
	"github.com/dmruiz/frdojo/internal/speech"
	"github.com/dmruiz/frdojo/internal/store"
	"github.com/dmruiz/frdojo/internal/ui/components"
	"github.com/dmruiz/frdojo/internal/ui/layout"
	"github.com/dmruiz/frdojo/internal/ui/theme"
)

// HomeScreen is the track picker and the app's landing screen.
type HomeScreen struct {
	menu        components.Menu
	speaker     speech.Speaker
	picker      speech.VoicePicker
	voicesReady bool
	reviewRows  int64
	storeReady  bool
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates the home screen. st may be nil when the database failed
// to open; study modes work regardless.
func New(speaker speech.Speaker, st *store.Store) *HomeScreen {
	s := &HomeScreen{speaker: speaker}

	if st != nil {
		if n, err := st.ReviewCount(); err == nil {
			s.storeReady = true
			s.reviewRows = n
		}
	}

	items := make([]components.MenuItem, 0, len(catalog.Tracks()))
	for _, track := range catalog.Tracks() {
		items = append(items, components.MenuItem{
			Label:  track.Title,
			Badge:  "●",
			Color:  theme.TrackColor(track.Color),
			Detail: track.Description,
			Action: func() tea.Cmd {
				return s.openTrack(track)
			},
		})
	}
	s.menu = components.NewMenu(items)
	return s
}

// StudyScreen returns the screen matching the track's study mode.
func StudyScreen(track catalog.Track, speaker speech.Speaker, picker speech.VoicePicker) screen.Screen {
	switch track.Mode {
	case catalog.ModeTable:
		return table.New(track, speaker, picker)
	case catalog.ModeAnatomy:
		return anatomy.New(track, speaker, picker)
	default:
		return flashcards.New(track, speaker, picker)
	}
}

// openTrack pushes the screen matching the track's study mode.
func (s *HomeScreen) openTrack(track catalog.Track) tea.Cmd {
	next := StudyScreen(track, s.speaker, s.picker)
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: next}
	}
}

func (s *HomeScreen) Init() tea.Cmd {
	// Voice discovery shells out to the engine; do it off the hot path.
	return func() tea.Msg {
		return voicesLoadedMsg{Voices: s.speaker.Voices()}
	}
}

func (s *HomeScreen) Title() string {
	return "Le Dojo"
}

func (s *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "Choose"},
		{Key: "Enter", Description: "Start"},
		{Key: "Q", Description: "Quit"},
	}
}

func (s *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case voicesLoadedMsg:
		s.picker = speech.NewVoicePicker(msg.Voices)
		s.voicesReady = true
		return s, nil

	case tea.KeyMsg:
		if msg.String() == "q" {
			return s, tea.Quit
		}
		var cmd tea.Cmd
		s.menu, cmd = s.menu.Update(msg)
		return s, cmd
	}
	return s, nil
}
