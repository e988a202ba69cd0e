package study

import (
	"fmt"
	"testing"

	"github.com/dmruiz/frdojo/internal/catalog"
)

func testTrack(n int) catalog.Track {
	deck := make([]catalog.Card, n)
	for i := range deck {
		deck[i] = catalog.Card{
			ID:      fmt.Sprintf("card-%d", i),
			Prompt:  fmt.Sprintf("mot %d", i),
			Meaning: fmt.Sprintf("palabra %d", i),
			Kind:    catalog.KindVocab,
		}
	}
	return catalog.Track{
		ID:    "test",
		Title: "Test Track",
		Mode:  catalog.ModeFlashcard,
		Deck:  deck,
	}
}

func TestNewSessionRejectsEmptyDeck(t *testing.T) {
	_, err := NewSession(catalog.Track{ID: "empty"})
	if err == nil {
		t.Fatal("expected error for empty deck")
	}
}

func TestNewSessionStartsHiddenAtZero(t *testing.T) {
	s, err := NewSession(testTrack(5))
	if err != nil {
		t.Fatal(err)
	}
	if s.Index() != 0 {
		t.Errorf("Index() = %d, want 0", s.Index())
	}
	if s.Revealed() {
		t.Error("new session should start with translation hidden")
	}
	if s.ID == "" {
		t.Error("session should carry an id")
	}
}

func TestSessionOrderIsPermutationOfDeck(t *testing.T) {
	track := testTrack(8)
	s, err := NewSession(track)
	if err != nil {
		t.Fatal(err)
	}
	if s.Len() != len(track.Deck) {
		t.Fatalf("Len() = %d, want %d", s.Len(), len(track.Deck))
	}

	seen := make(map[string]bool)
	for i := 0; i < s.Len(); i++ {
		seen[s.Current().ID] = true
		s.Advance()
	}
	for _, c := range track.Deck {
		if !seen[c.ID] {
			t.Errorf("card %s missing from session order", c.ID)
		}
	}
}

func TestAdvanceIsCircular(t *testing.T) {
	s, err := NewSession(testTrack(5))
	if err != nil {
		t.Fatal(err)
	}

	// 7 advances over 5 cards lands on index 2.
	for i := 0; i < 7; i++ {
		s.Advance()
	}
	if s.Index() != 2 {
		t.Errorf("Index() after 7 advances = %d, want 2", s.Index())
	}

	// A full lap from index 0 returns to index 0.
	s2, _ := NewSession(testTrack(5))
	for i := 0; i < 5; i++ {
		s2.Advance()
	}
	if s2.Index() != 0 {
		t.Errorf("Index() after full lap = %d, want 0", s2.Index())
	}
}

func TestRevealResetsOnAdvance(t *testing.T) {
	s, err := NewSession(testTrack(3))
	if err != nil {
		t.Fatal(err)
	}

	s.Reveal()
	if !s.Revealed() {
		t.Fatal("Reveal() did not show the translation")
	}

	// Reveal is idempotent.
	s.Reveal()
	if !s.Revealed() {
		t.Fatal("second Reveal() flipped the state")
	}

	s.Advance()
	if s.Revealed() {
		t.Error("Advance() must hide the translation")
	}
}

func TestWalkClampsAtBoundaries(t *testing.T) {
	track := testTrack(3)
	w, err := NewWalk(track)
	if err != nil {
		t.Fatal(err)
	}

	if !w.AtStart() {
		t.Error("new walk should be at start")
	}

	// Back at index 0 is a no-op.
	w.Back()
	if w.Index() != 0 {
		t.Errorf("Back() at start moved to %d", w.Index())
	}

	// Forward to the end, then beyond: clamped.
	w.Forward()
	w.Forward()
	if !w.AtEnd() {
		t.Errorf("expected AtEnd at index %d", w.Index())
	}
	w.Forward()
	if w.Index() != 2 {
		t.Errorf("Forward() at end moved to %d", w.Index())
	}

	// And back down again.
	w.Back()
	if w.Index() != 1 {
		t.Errorf("Back() = %d, want 1", w.Index())
	}
}

func TestWalkKeepsCanonicalOrder(t *testing.T) {
	track := testTrack(4)
	w, err := NewWalk(track)
	if err != nil {
		t.Fatal(err)
	}
	for i, c := range track.Deck {
		if w.Current().ID != c.ID {
			t.Fatalf("position %d: got %s, want %s", i, w.Current().ID, c.ID)
		}
		w.Forward()
	}
}

func TestNewWalkRejectsEmptyDeck(t *testing.T) {
	if _, err := NewWalk(catalog.Track{ID: "empty"}); err == nil {
		t.Fatal("expected error for empty deck")
	}
}
