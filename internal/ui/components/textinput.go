package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/dmruiz/frdojo/internal/ui/theme"
)

// FilterInput wraps bubbles/textinput as a small inline filter box.
type FilterInput struct {
	Model   textinput.Model
	focused bool
}

// NewFilterInput creates a new filter input with the given placeholder.
func NewFilterInput(placeholder string, charLimit int) FilterInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	if charLimit > 0 {
		ti.CharLimit = charLimit
	}
	return FilterInput{Model: ti}
}

// Focus puts the input in editing mode.
func (f FilterInput) Focus() (FilterInput, tea.Cmd) {
	f.focused = true
	return f, f.Model.Focus()
}

// Blur leaves editing mode without clearing the value.
func (f FilterInput) Blur() FilterInput {
	f.focused = false
	f.Model.Blur()
	return f
}

// Focused reports whether the input is capturing keystrokes.
func (f FilterInput) Focused() bool {
	return f.focused
}

// Update handles messages while focused.
func (f FilterInput) Update(msg tea.Msg) (FilterInput, tea.Cmd) {
	if !f.focused {
		return f, nil
	}
	var cmd tea.Cmd
	f.Model, cmd = f.Model.Update(msg)
	return f, cmd
}

// View renders the input with a filter glyph prefix.
func (f FilterInput) View() string {
	glyph := lipgloss.NewStyle().Foreground(theme.TextDim).Render("/")
	return glyph + " " + f.Model.View()
}

// Value returns the current filter text.
func (f FilterInput) Value() string {
	return f.Model.Value()
}

// Reset clears the filter text.
func (f FilterInput) Reset() FilterInput {
	f.Model.Reset()
	return f
}
