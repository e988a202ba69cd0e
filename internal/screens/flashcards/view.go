package flashcards

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/dmruiz/frdojo/internal/catalog"
	"github.com/dmruiz/frdojo/internal/ui/components"
	"github.com/dmruiz/frdojo/internal/ui/theme"
)

func (s *FlashcardsScreen) View(width, height int) string {
	if s.session == nil {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render("\n\n  " + s.errMsg)
	}

	var b strings.Builder

	b.WriteString(s.renderInfoLine(width))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 1))))
	b.WriteString("\n\n")

	card := s.session.Current()
	b.WriteString(s.renderCard(card, width))

	return b.String()
}

// renderInfoLine shows track name, position, progress, and the voice.
func (s *FlashcardsScreen) renderInfoLine(width int) string {
	left := lipgloss.NewStyle().
		Foreground(theme.TrackColor(s.track.Color)).
		Bold(true).
		Render("  " + s.track.TitleFr)

	position := fmt.Sprintf("%d/%d", s.session.Index()+1, s.session.Len())
	voiceName := "default"
	if v := s.picker.Current(); v != nil {
		voiceName = v.Name
	}
	speakGlyph := " "
	if s.speaking {
		speakGlyph = lipgloss.NewStyle().Foreground(theme.Accent).Render("♪")
	}
	right := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%s  %s %s", position, speakGlyph, voiceName))

	line := left
	pad := width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if pad > 0 {
		line += strings.Repeat(" ", pad) + right
	}

	bar := components.NewProgressBar("", float64(s.session.Index()+1)/float64(s.session.Len()), false, width-8)
	return line + "\n  " + bar.View()
}

// renderCard draws the card face. Hidden cards show only the prompt,
// revealed ones add the meaning and, for sound cards, the coaching panel.
func (s *FlashcardsScreen) renderCard(card catalog.Card, width int) string {
	var inner strings.Builder

	if card.Emoji != "" {
		inner.WriteString(lipgloss.NewStyle().Align(lipgloss.Center).Render(card.Emoji))
		inner.WriteString("\n\n")
	}

	inner.WriteString(lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render(card.Prompt))

	if s.session.Revealed() {
		inner.WriteString("\n\n")
		inner.WriteString(lipgloss.NewStyle().
			Foreground(theme.Secondary).
			Render(card.Meaning))

		if card.Kind == catalog.KindPhonetic {
			inner.WriteString("\n\n")
			inner.WriteString(renderPhoneticPanel(card))
		}
	}

	cardBox := theme.Card.
		Width(min(width-8, 56)).
		Align(lipgloss.Center).
		Render(inner.String())

	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(cardBox) + "\n" + s.renderActionRow(width)
}

// renderActionRow shows the space-key action for the current state.
func (s *FlashcardsScreen) renderActionRow(width int) string {
	reveal := components.Button{Label: "Révéler", Active: !s.session.Revealed()}
	next := components.Button{Label: "Suivant", Active: s.session.Revealed()}

	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(reveal.View() + "  " + next.View())
}

// renderPhoneticPanel shows the pronunciation guide, the common trap,
// and the mnemonic for sound-drill cards.
func renderPhoneticPanel(card catalog.Card) string {
	var b strings.Builder
	if card.PhoneticGuide != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Render("▸ " + card.PhoneticGuide))
	}
	if card.Trap != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render("✗ " + card.Trap))
	}
	if card.Mnemonic != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render(card.Mnemonic))
	}
	return b.String()
}
