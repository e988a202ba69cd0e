package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/dmruiz/frdojo/internal/ui/theme"
)

func (s *HomeScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Le Dojo du Français"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("choose a track"))
	b.WriteString("\n\n")

	menu := s.menu.View()
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(menu))

	b.WriteString("\n")
	b.WriteString(s.renderStatusLine(width))

	return b.String()
}

// renderStatusLine reports voice and review-store readiness.
func (s *HomeScreen) renderStatusLine(width int) string {
	var parts []string

	if s.voicesReady {
		if v := s.picker.Current(); v != nil {
			parts = append(parts, lipgloss.NewStyle().
				Foreground(theme.Secondary).
				Render("voix: "+v.Name))
		} else {
			parts = append(parts, lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Render("voix: aucune"))
		}
	}

	if s.storeReady {
		parts = append(parts, lipgloss.NewStyle().
			Foreground(theme.Secondary).
			Render(fmt.Sprintf("mémoire: prête (%d)", s.reviewRows)))
	} else {
		parts = append(parts, lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render("mémoire: indisponible"))
	}

	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(strings.Join(parts, "   "))
}
