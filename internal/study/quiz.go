package study

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/dmruiz/frdojo/internal/catalog"
)

// OptionCount is the number of answer options per quiz question:
// the target plus two distractors.
const OptionCount = 3

// MinPoolSize is the smallest pool NewQuestion accepts. Callers with a
// smaller pool must not enter quiz mode at all.
const MinPoolSize = OptionCount

// Question is one multiple-choice round: a target card whose prompt is
// shown (and spoken), and three candidate meanings in shuffled order.
type Question struct {
	Target       catalog.Card
	Options      []catalog.Card
	CorrectIndex int
}

// NewQuestion draws a target and two distractors without replacement
// from the pool and shuffles their presentation order. The pool's card
// ids must be globally unique (a catalog invariant), which guarantees
// the three options are distinct cards.
func NewQuestion(pool []catalog.Card) (Question, error) {
	if len(pool) < MinPoolSize {
		return Question{}, fmt.Errorf("quiz: pool has %d cards, need at least %d", len(pool), MinPoolSize)
	}

	drawn := Shuffle(pool)
	target := drawn[0]
	options := Shuffle(drawn[:OptionCount])

	correct := -1
	for i, c := range options {
		if c.ID == target.ID {
			correct = i
			break
		}
	}
	if correct < 0 {
		// Unreachable while the pool holds distinct cards.
		return Question{}, fmt.Errorf("quiz: target %s missing from its own options", target.ID)
	}

	return Question{
		Target:       target,
		Options:      options,
		CorrectIndex: correct,
	}, nil
}

// Score accumulates quiz results for one session: answer counters, the
// running streak, and its high-water mark.
type Score struct {
	Answered   int
	Correct    int
	Streak     int
	BestStreak int
}

// Record applies one answer. A correct answer extends the streak and
// pushes the high-water mark; a wrong one resets the streak to zero.
func (s *Score) Record(correct bool) {
	s.Answered++
	if correct {
		s.Correct++
		s.Streak++
		if s.Streak > s.BestStreak {
			s.BestStreak = s.Streak
		}
		return
	}
	s.Streak = 0
}

// Quiz is the ephemeral state of one quiz visit: the cross-track card
// pool, the current question, and the score. Like flashcard sessions it
// lives exactly as long as the screen that owns it.
type Quiz struct {
	ID    string
	Pool  []catalog.Card
	Score Score

	current Question
}

// NewQuiz builds a quiz over the pool and generates the first question.
func NewQuiz(pool []catalog.Card) (*Quiz, error) {
	q, err := NewQuestion(pool)
	if err != nil {
		return nil, err
	}
	return &Quiz{
		ID:      uuid.New().String(),
		Pool:    pool,
		current: q,
	}, nil
}

// Current returns the active question.
func (z *Quiz) Current() Question {
	return z.current
}

// Answer records the option the learner chose and reports whether it
// was correct.
func (z *Quiz) Answer(optionIndex int) bool {
	correct := optionIndex == z.current.CorrectIndex
	z.Score.Record(correct)
	return correct
}

// Next replaces the current question with a freshly generated one.
func (z *Quiz) Next() error {
	q, err := NewQuestion(z.Pool)
	if err != nil {
		return err
	}
	z.current = q
	return nil
}
