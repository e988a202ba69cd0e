// Package catalog owns the static study content: every track, every card,
// and the lookup helpers the study screens build on. The data is embedded
// at compile time and validated once at startup; a broken catalog is an
// authoring bug and aborts the program rather than degrading.
package catalog

import "fmt"

// Tracks returns the full catalog in display order.
func Tracks() []Track {
	return tracks
}

// TrackByID returns the track with the given id.
func TrackByID(id string) (Track, bool) {
	for _, t := range tracks {
		if t.ID == id {
			return t, true
		}
	}
	return Track{}, false
}

// TrackOrDefault resolves a track id from navigation, falling back to the
// default track for unknown ids. A stale id is a benign routing case, not
// an error the learner should see.
func TrackOrDefault(id string) Track {
	if t, ok := TrackByID(id); ok {
		return t
	}
	return DefaultTrack()
}

// DefaultTrack returns the first track in catalog order. An empty catalog
// is a data-integrity bug, so this panics rather than inventing a fallback.
func DefaultTrack() Track {
	if len(tracks) == 0 {
		panic("catalog: no tracks defined")
	}
	return tracks[0]
}

// AllCards returns the concatenation of every track's deck in catalog
// order. Used as the quiz pool. Global id uniqueness is an authoring
// invariant checked by Validate, not here.
func AllCards() []Card {
	var all []Card
	for _, t := range tracks {
		all = append(all, t.Deck...)
	}
	return all
}

// Validate checks the whole catalog: non-empty, per-track invariants,
// and card id uniqueness across tracks (the quiz generator relies on it).
func Validate() error {
	if len(tracks) == 0 {
		return fmt.Errorf("catalog: no tracks defined")
	}

	seenTracks := make(map[string]bool, len(tracks))
	seenCards := make(map[string]string)
	for _, t := range tracks {
		if err := t.validate(); err != nil {
			return fmt.Errorf("catalog: %w", err)
		}
		if seenTracks[t.ID] {
			return fmt.Errorf("catalog: duplicate track id %s", t.ID)
		}
		seenTracks[t.ID] = true

		for _, c := range t.Deck {
			if owner, dup := seenCards[c.ID]; dup {
				return fmt.Errorf("catalog: card id %s appears in tracks %s and %s", c.ID, owner, t.ID)
			}
			seenCards[c.ID] = t.ID
		}
	}
	return nil
}

// Categories returns the distinct Category values of a deck in first-seen
// order, for table-mode grouping.
func Categories(deck []Card) []string {
	var order []string
	seen := make(map[string]bool)
	for _, c := range deck {
		cat := c.Category
		if cat == "" {
			cat = "General"
		}
		if !seen[cat] {
			seen[cat] = true
			order = append(order, cat)
		}
	}
	return order
}

// ByCategory groups a deck's cards by Category, preserving deck order
// within each group. Cards without a category land under "General".
func ByCategory(deck []Card) map[string][]Card {
	groups := make(map[string][]Card)
	for _, c := range deck {
		cat := c.Category
		if cat == "" {
			cat = "General"
		}
		groups[cat] = append(groups[cat], c)
	}
	return groups
}
