package table

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/dmruiz/frdojo/internal/catalog"
	"github.com/dmruiz/frdojo/internal/ui/theme"
)

// line is one rendered table line: a category header or a card row.
type line struct {
	header string
	row    int // index into rows(), -1 for headers
}

func (s *TableScreen) View(width, height int) string {
	rows := s.rows()

	var b strings.Builder
	b.WriteString(s.renderTopLine(width, len(rows)))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 1))))
	b.WriteString("\n")

	if len(rows) == 0 {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("no matching rows"))
		return b.String()
	}

	lines := buildLines(rows)
	visible := height - 4
	if visible < 3 {
		visible = 3
	}
	start := s.scrollStart(lines, visible)

	for i := start; i < len(lines) && i < start+visible; i++ {
		b.WriteString(s.renderLine(lines[i], rows, width))
		b.WriteString("\n")
	}

	return b.String()
}

// buildLines interleaves category headers with rows, preserving deck
// order. Uncategorized rows group under "General".
func buildLines(rows []catalog.Card) []line {
	index := make(map[string]int, len(rows))
	for i, c := range rows {
		index[c.ID] = i
	}

	groups := catalog.ByCategory(rows)

	var lines []line
	for _, cat := range catalog.Categories(rows) {
		lines = append(lines, line{header: cat, row: -1})
		for _, c := range groups[cat] {
			lines = append(lines, line{row: index[c.ID]})
		}
	}
	return lines
}

// scrollStart picks the first visible line so the cursor stays in view.
func (s *TableScreen) scrollStart(lines []line, visible int) int {
	cursorLine := 0
	for i, l := range lines {
		if l.row == s.cursor {
			cursorLine = i
			break
		}
	}
	start := 0
	if cursorLine >= visible {
		start = cursorLine - visible + 1
	}
	return start
}

func (s *TableScreen) renderTopLine(width, matches int) string {
	left := lipgloss.NewStyle().
		Foreground(theme.TrackColor(s.track.Color)).
		Bold(true).
		Render("  " + s.track.TitleFr)

	var right string
	if s.filter.Focused() || s.filter.Value() != "" {
		right = s.filter.View() + lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("  %d match(es)", matches))
	} else {
		speakGlyph := ""
		if s.speaking {
			speakGlyph = lipgloss.NewStyle().Foreground(theme.Accent).Render("♪ ")
		}
		right = speakGlyph + lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("%d rows", matches))
	}

	out := left
	pad := width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if pad > 0 {
		out += strings.Repeat(" ", pad) + right
	}
	return out
}

func (s *TableScreen) renderLine(l line, rows []catalog.Card, width int) string {
	if l.row < 0 {
		return lipgloss.NewStyle().
			Foreground(theme.TrackColor(s.track.Color)).
			Bold(true).
			Render("  " + l.header)
	}

	c := rows[l.row]
	prompt := c.Prompt
	if c.Emoji != "" {
		prompt = c.Emoji + " " + prompt
	}

	promptCol := lipgloss.NewStyle().Width(min(width/2-4, 30))
	text := fmt.Sprintf("    %s %s",
		promptCol.Render(prompt),
		c.Meaning)

	if l.row == s.cursor {
		return lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true).
			Render("  ▸" + text[3:])
	}
	return lipgloss.NewStyle().Foreground(theme.Text).Render(text)
}
