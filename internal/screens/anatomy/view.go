package anatomy

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/dmruiz/frdojo/internal/catalog"
	"github.com/dmruiz/frdojo/internal/ui/theme"
)

func (s *AnatomyScreen) View(width, height int) string {
	if s.walk == nil {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render("\n\n  " + s.errMsg)
	}

	card := s.walk.Current()

	var b strings.Builder
	b.WriteString(s.renderInfoLine(width))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 1))))
	b.WriteString("\n\n")

	// Sentence with the active segment highlighted.
	var parts []string
	for i, seg := range card.Segments {
		if i == s.segment {
			parts = append(parts, lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.Accent).
				Bold(true).
				Render(" "+seg.Text+" "))
		} else {
			parts = append(parts, lipgloss.NewStyle().
				Foreground(theme.Text).
				Render(seg.Text))
		}
	}
	sentence := strings.Join(parts, " ")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(sentence))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Italic(true).
		Render(card.Meaning))
	b.WriteString("\n\n")

	if s.segment < len(card.Segments) {
		b.WriteString(s.renderSegmentPanel(card.Segments[s.segment], width))
	}

	return b.String()
}

func (s *AnatomyScreen) renderInfoLine(width int) string {
	left := lipgloss.NewStyle().
		Foreground(theme.TrackColor(s.track.Color)).
		Bold(true).
		Render("  " + s.track.TitleFr)

	speakGlyph := " "
	if s.speaking {
		speakGlyph = lipgloss.NewStyle().Foreground(theme.Accent).Render("♪")
	}
	right := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("phrase %d/%d %s", s.walk.Index()+1, s.walk.Len(), speakGlyph))

	line := left
	pad := width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if pad > 0 {
		line += strings.Repeat(" ", pad) + right
	}
	return line
}

// renderSegmentPanel shows the active segment's translation and its
// grammar note when the card carries one.
func (s *AnatomyScreen) renderSegmentPanel(seg catalog.Segment, width int) string {
	var inner strings.Builder
	inner.WriteString(lipgloss.NewStyle().
		Foreground(theme.Accent).
		Bold(true).
		Render(seg.Text))
	inner.WriteString("\n")
	inner.WriteString(lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Render(seg.Meaning))
	if seg.GrammarNote != "" {
		inner.WriteString("\n\n")
		inner.WriteString(lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(seg.GrammarNote))
	}

	box := theme.Card.
		Width(min(width-8, 56)).
		Render(inner.String())

	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(box)
}
