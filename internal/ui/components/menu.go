package components

import (
	"image/color"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/dmruiz/frdojo/internal/ui/theme"
)

// MenuItem represents a single entry in a navigation menu. Badge is an
// optional short prefix rendered in the item's own color, Detail an
// optional dim line shown under the selected item.
type MenuItem struct {
	Label    string
	Badge    string
	Color    color.Color
	Detail   string
	Action   func() tea.Cmd
	Disabled bool
}

// Menu is a vertical navigation menu.
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu creates a new menu with the given items.
func NewMenu(items []MenuItem) Menu {
	selected := 0
	for i, item := range items {
		if !item.Disabled {
			selected = i
			break
		}
	}
	return Menu{
		Items:    items,
		Selected: selected,
	}
}

// Init returns nil (no initial command).
func (m Menu) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		for i := m.Selected - 1; i >= 0; i-- {
			if !m.Items[i].Disabled {
				m.Selected = i
				break
			}
		}
	case "down", "j":
		for i := m.Selected + 1; i < len(m.Items); i++ {
			if !m.Items[i].Disabled {
				m.Selected = i
				break
			}
		}
	case "enter":
		if m.Selected >= 0 && m.Selected < len(m.Items) {
			item := m.Items[m.Selected]
			if item.Action != nil && !item.Disabled {
				return m, item.Action()
			}
		}
	}

	return m, nil
}

// View renders the menu.
func (m Menu) View() string {
	var s string
	for i, item := range m.Items {
		c := item.Color
		if c == nil {
			c = theme.Primary
		}

		badge := ""
		if item.Badge != "" {
			badge = lipgloss.NewStyle().Foreground(c).Bold(i == m.Selected).Render(item.Badge) + " "
		}

		if i == m.Selected {
			arrow := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("  ▸ ")
			label := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(item.Label)
			s += arrow + badge + label + "\n"
			if item.Detail != "" {
				s += lipgloss.NewStyle().Foreground(theme.TextDim).Render("      "+item.Detail) + "\n"
			}
		} else {
			label := lipgloss.NewStyle().Foreground(theme.Text).Render(item.Label)
			s += "    " + badge + label + "\n"
		}
	}
	return s
}
