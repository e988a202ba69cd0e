package components

import (
	"github.com/dmruiz/frdojo/internal/ui/theme"
)

// Button is a styled action chip. It only renders; the key that fires
// the action stays with the owning screen.
type Button struct {
	Label  string
	Active bool
}

// View renders the button.
func (b Button) View() string {
	label := "  ▸ " + b.Label + " "
	if b.Active {
		return theme.ButtonActive.Render(label)
	}
	return theme.ButtonInactive.Render(label)
}
