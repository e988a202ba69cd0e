package catalog

import "fmt"

// Mode selects which study screen presents a track's deck.
type Mode string

const (
	ModeFlashcard Mode = "flashcard"
	ModeTable     Mode = "table"
	ModeAnatomy   Mode = "anatomy"
)

// Track is a themed, ordered collection of cards. Deck order is the
// canonical display order; study sessions derive a shuffled order and
// never mutate the deck.
type Track struct {
	ID          string
	Title       string
	TitleFr     string
	Description string
	Color       string
	Mode        Mode
	Deck        []Card
}

// validate checks the track's invariants: non-empty deck, per-card
// validity, and unique card IDs within the deck.
func (t Track) validate() error {
	if t.ID == "" {
		return fmt.Errorf("track has empty id")
	}
	if t.Title == "" {
		return fmt.Errorf("track %s: empty title", t.ID)
	}
	switch t.Mode {
	case ModeFlashcard, ModeTable, ModeAnatomy:
	default:
		return fmt.Errorf("track %s: unknown mode %q", t.ID, t.Mode)
	}
	if len(t.Deck) == 0 {
		return fmt.Errorf("track %s: empty deck", t.ID)
	}

	seen := make(map[string]bool, len(t.Deck))
	for _, c := range t.Deck {
		if err := c.validate(); err != nil {
			return fmt.Errorf("track %s: %w", t.ID, err)
		}
		if seen[c.ID] {
			return fmt.Errorf("track %s: duplicate card id %s", t.ID, c.ID)
		}
		seen[c.ID] = true
	}
	return nil
}
