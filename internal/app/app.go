package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/dmruiz/frdojo/internal/catalog"
	"github.com/dmruiz/frdojo/internal/router"
	"github.com/dmruiz/frdojo/internal/screen"
	"github.com/dmruiz/frdojo/internal/screens/home"
	"github.com/dmruiz/frdojo/internal/speech"
	"github.com/dmruiz/frdojo/internal/store"
	"github.com/dmruiz/frdojo/internal/ui/layout"
)

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router   *router.Router
	initCmds []tea.Cmd
	width    int
	height   int
}

// newAppModel creates a new AppModel with the home screen. A non-empty
// trackID jumps straight into that track's study mode; an unknown id
// silently falls back to the default track.
func newAppModel(speaker speech.Speaker, st *store.Store, trackID string) AppModel {
	homeScreen := home.New(speaker, st)
	r := router.New(homeScreen)

	cmds := []tea.Cmd{homeScreen.Init()}
	if trackID != "" {
		track := catalog.TrackOrDefault(trackID)
		picker := speech.NewVoicePicker(speaker.Voices())
		cmds = append(cmds, r.Push(home.StudyScreen(track, speaker, picker)))
	}

	return AppModel{router: r, initCmds: cmds}
}

func (m AppModel) Init() tea.Cmd {
	return tea.Batch(m.initCmds...)
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		// Screens own Esc so the table filter can intercept it.
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, len(catalog.AllCards()), m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		if hints := hp.KeyHints(); len(hints) > 0 {
			footerHints = hints
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(speaker speech.Speaker, st *store.Store, trackID string) error {
	p := tea.NewProgram(newAppModel(speaker, st, trackID))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
