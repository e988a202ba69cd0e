package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/dmruiz/frdojo/internal/ui/theme"
)

func (s *QuizScreen) View(width, height int) string {
	if s.quiz == nil {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render("\n\n  " + s.errMsg)
	}

	var b strings.Builder

	b.WriteString(s.renderScoreLine(width))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 1))))
	b.WriteString("\n\n")

	question := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(s.choice.View())
	b.WriteString(question)

	if s.choice.Submitted {
		b.WriteString("\n")
		b.WriteString(s.renderFeedback(width))
	}

	if s.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(s.errMsg))
	}

	return b.String()
}

// renderScoreLine shows the running score, streak, and best streak.
func (s *QuizScreen) renderScoreLine(width int) string {
	score := s.quiz.Score

	left := lipgloss.NewStyle().
		Foreground(theme.TrackColor(s.track.Color)).
		Bold(true).
		Render("  " + s.track.TitleFr)

	streak := lipgloss.NewStyle().Foreground(theme.Accent).Render(fmt.Sprintf("⚡%d", score.Streak))
	best := lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf("best %d", score.BestStreak))
	tally := lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf("%d/%d", score.Correct, score.Answered))
	right := streak + "  " + best + "  " + tally
	if s.speaking {
		right = lipgloss.NewStyle().Foreground(theme.Accent).Render("♪ ") + right
	}

	line := left
	pad := width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if pad > 0 {
		line += strings.Repeat(" ", pad) + right
	}
	return line
}

func (s *QuizScreen) renderFeedback(width int) string {
	var text string
	if s.lastWasCorrect {
		text = lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render("Excellent !")
	} else {
		target := s.quiz.Current().Target
		text = lipgloss.NewStyle().Foreground(theme.Error).Render(
			fmt.Sprintf("%s  →  %s", target.Prompt, target.Meaning))
	}
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(text)
}
