package study

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/dmruiz/frdojo/internal/catalog"
)

// Session is the ephemeral state of one flashcard study visit: a fresh
// shuffled order over a track's deck, a circular cursor, and the
// revealed flag for the current card. Nothing here is persisted; leaving
// the track discards the session.
type Session struct {
	ID    string
	Track catalog.Track

	order    []catalog.Card
	cursor   int
	revealed bool
}

// NewSession shuffles the track's deck and places the cursor on the
// first card with the translation hidden.
func NewSession(track catalog.Track) (*Session, error) {
	if len(track.Deck) == 0 {
		return nil, fmt.Errorf("session: track %s has an empty deck", track.ID)
	}
	return &Session{
		ID:    uuid.New().String(),
		Track: track,
		order: Shuffle(track.Deck),
	}, nil
}

// Current returns the card under the cursor.
func (s *Session) Current() catalog.Card {
	return s.order[s.cursor]
}

// Index returns the zero-based cursor position.
func (s *Session) Index() int {
	return s.cursor
}

// Len returns the number of cards in the session order.
func (s *Session) Len() int {
	return len(s.order)
}

// Revealed reports whether the current card's meaning is shown.
func (s *Session) Revealed() bool {
	return s.revealed
}

// Reveal shows the current card's meaning. No-op if already revealed.
func (s *Session) Reveal() {
	s.revealed = true
}

// Advance moves to the next card, wrapping to the start after the last
// one. The reveal state always resets. This is the only way the cursor
// moves in flashcard mode; there is no going back.
func (s *Session) Advance() {
	s.cursor = (s.cursor + 1) % len(s.order)
	s.revealed = false
}

// Walk is the clamped-cursor variant used by anatomy mode: canonical
// deck order (no shuffle), no wraparound, and navigation stops at both
// deck boundaries.
type Walk struct {
	Track catalog.Track

	cursor int
}

// NewWalk creates a walk over the track's deck in canonical order.
func NewWalk(track catalog.Track) (*Walk, error) {
	if len(track.Deck) == 0 {
		return nil, fmt.Errorf("walk: track %s has an empty deck", track.ID)
	}
	return &Walk{Track: track}, nil
}

// Current returns the card under the cursor.
func (w *Walk) Current() catalog.Card {
	return w.Track.Deck[w.cursor]
}

// Index returns the zero-based cursor position.
func (w *Walk) Index() int {
	return w.cursor
}

// Len returns the deck length.
func (w *Walk) Len() int {
	return len(w.Track.Deck)
}

// AtStart reports whether the cursor is on the first card.
func (w *Walk) AtStart() bool {
	return w.cursor == 0
}

// AtEnd reports whether the cursor is on the last card.
func (w *Walk) AtEnd() bool {
	return w.cursor == len(w.Track.Deck)-1
}

// Forward moves one card ahead, clamped at the last card.
func (w *Walk) Forward() {
	if !w.AtEnd() {
		w.cursor++
	}
}

// Back moves one card back, clamped at the first card.
func (w *Walk) Back() {
	if !w.AtStart() {
		w.cursor--
	}
}
