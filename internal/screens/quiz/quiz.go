package quiz

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/dmruiz/frdojo/internal/catalog"
	"github.com/dmruiz/frdojo/internal/router"
	"github.com/dmruiz/frdojo/internal/screen"
	"github.com/dmruiz/frdojo/internal/speech"
	"github.com/dmruiz/frdojo/internal/study"
	"github.com/dmruiz/frdojo/internal/ui/components"
	"github.com/dmruiz/frdojo/internal/ui/layout"
)

// Pause lengths before the next question appears. A miss gets longer so
// the learner can read the correct answer.
const (
	advanceAfterCorrect = 1500 * time.Millisecond
	advanceAfterWrong   = 2500 * time.Millisecond
)

// QuizScreen runs endless multiple-choice rounds: hear or read the
// French prompt, pick the meaning, watch the streak. The pool spans
// every track so distractors come from the whole catalog.
type QuizScreen struct {
	track          catalog.Track
	quiz           *study.Quiz
	choice         components.MultiChoice
	speaker        speech.Speaker
	picker         speech.VoicePicker
	round          int
	lastWasCorrect bool
	speaking       bool
	errMsg         string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.Teardown = (*QuizScreen)(nil)

// New creates a quiz screen. track labels the screen the learner came
// from; pool is the card set questions draw on.
func New(track catalog.Track, pool []catalog.Card, speaker speech.Speaker, picker speech.VoicePicker) *QuizScreen {
	s := &QuizScreen{
		track:   track,
		speaker: speaker,
		picker:  picker,
	}
	qz, err := study.NewQuiz(pool)
	if err != nil {
		s.errMsg = err.Error()
		return s
	}
	s.quiz = qz
	s.choice = newChoice(qz.Current())
	return s
}

func newChoice(q study.Question) components.MultiChoice {
	options := make([]string, len(q.Options))
	for i, c := range q.Options {
		options[i] = c.Meaning
	}
	return components.NewMultiChoice(q.Target.Prompt, options, q.CorrectIndex)
}

func (s *QuizScreen) Init() tea.Cmd {
	if s.quiz == nil {
		return nil
	}
	return s.speakCmd(s.quiz.Current().Target.Prompt)
}

func (s *QuizScreen) Title() string {
	return s.track.Title + " · Quiz"
}

// Close cancels any in-flight utterance. Pending advance timers become
// harmless: their round number no longer matches anything.
func (s *QuizScreen) Close() {
	s.speaker.Cancel()
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.choice.Submitted {
		return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	}
	return []layout.KeyHint{
		{Key: "1-3", Description: "Answer"},
		{Key: "S", Description: "Listen"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case speakDoneMsg:
		// Speech failures are silent; study goes on without audio.
		s.speaking = false
		return s, nil

	case advanceMsg:
		if s.quiz == nil || msg.Round != s.round {
			return s, nil
		}
		return s.nextQuestion()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.quiz == nil {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	switch msg.String() {
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "s":
		if !s.choice.Submitted {
			return s, s.speakCmd(s.quiz.Current().Target.Prompt)
		}
		return s, nil
	case "v":
		s.picker = s.picker.Next()
		return s, nil
	}

	wasSubmitted := s.choice.Submitted
	var cmd tea.Cmd
	s.choice, cmd = s.choice.Update(msg)

	if !wasSubmitted && s.choice.Submitted {
		correct := s.quiz.Answer(s.choice.ChosenIndex)
		s.lastWasCorrect = correct
		delay := advanceAfterCorrect
		if !correct {
			delay = advanceAfterWrong
		}
		round := s.round
		timer := tea.Tick(delay, func(time.Time) tea.Msg {
			return advanceMsg{Round: round}
		})
		return s, tea.Batch(cmd, timer)
	}

	return s, cmd
}

func (s *QuizScreen) nextQuestion() (screen.Screen, tea.Cmd) {
	if err := s.quiz.Next(); err != nil {
		s.errMsg = err.Error()
		return s, nil
	}
	s.round++
	s.choice = newChoice(s.quiz.Current())
	return s, s.speakCmd(s.quiz.Current().Target.Prompt)
}

func (s *QuizScreen) speakCmd(text string) tea.Cmd {
	s.speaking = true
	voice := s.picker.Current()
	return func() tea.Msg {
		return speakDoneMsg{Err: s.speaker.Speak(text, voice, speech.RateNormal)}
	}
}
