package flashcards

import (
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/dmruiz/frdojo/internal/catalog"
	"github.com/dmruiz/frdojo/internal/router"
	"github.com/dmruiz/frdojo/internal/speech"
)

// fakeSpeaker records utterances instead of shelling out.
type fakeSpeaker struct {
	spoken  []string
	rates   []float64
	cancels int
}

func (f *fakeSpeaker) Speak(text string, _ *speech.Voice, rate float64) error {
	f.spoken = append(f.spoken, text)
	f.rates = append(f.rates, rate)
	return nil
}
func (f *fakeSpeaker) Cancel()               { f.cancels++ }
func (f *fakeSpeaker) Voices() []speech.Voice { return nil }

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testTrack() catalog.Track {
	return catalog.Track{
		ID:      "test",
		Title:   "Test",
		TitleFr: "Essai",
		Color:   "cyan",
		Mode:    catalog.ModeFlashcard,
		Deck: []catalog.Card{
			{ID: "c1", Prompt: "bonjour", Meaning: "hello", Kind: catalog.KindVocab},
			{ID: "c2", Prompt: "merci", Meaning: "thanks", Kind: catalog.KindVocab},
			{ID: "c3", Prompt: "pardon", Meaning: "sorry", Kind: catalog.KindVocab},
		},
	}
}

func testScreen() (*FlashcardsScreen, *fakeSpeaker) {
	sp := &fakeSpeaker{}
	return New(testTrack(), sp, speech.VoicePicker{}), sp
}

func TestRevealSpeaksPrompt(t *testing.T) {
	s, sp := testScreen()

	if s.session.Revealed() {
		t.Fatal("card revealed before any input")
	}

	_, cmd := s.Update(specialKey(tea.KeySpace))
	if !s.session.Revealed() {
		t.Fatal("space did not reveal")
	}
	if cmd == nil {
		t.Fatal("reveal returned no speak command")
	}
	cmd()

	if len(sp.spoken) != 1 || sp.spoken[0] != s.session.Current().Prompt {
		t.Errorf("spoke %v, want the current prompt", sp.spoken)
	}
	if sp.rates[0] != speech.RateNormal {
		t.Errorf("rate = %v, want %v", sp.rates[0], speech.RateNormal)
	}
}

func TestSecondSpaceAdvances(t *testing.T) {
	s, _ := testScreen()

	s.Update(specialKey(tea.KeySpace))
	before := s.session.Index()
	s.Update(specialKey(tea.KeySpace))

	if s.session.Index() == before {
		t.Error("second space did not advance")
	}
	if s.session.Revealed() {
		t.Error("new card should start hidden")
	}
}

func TestEasyAndDifficultBothAdvance(t *testing.T) {
	for _, key := range []rune{'e', 'd'} {
		s, _ := testScreen()
		s.Update(specialKey(tea.KeySpace))
		before := s.session.Index()

		s.Update(keyPress(key))
		if s.session.Index() == before {
			t.Errorf("%q did not advance", key)
		}
	}
}

func TestAdvanceRequiresReveal(t *testing.T) {
	s, _ := testScreen()

	s.Update(keyPress('e'))
	if s.session.Index() != 0 {
		t.Error("advanced a hidden card")
	}
}

func TestSlowRepeat(t *testing.T) {
	s, sp := testScreen()

	_, cmd := s.Update(keyPress('x'))
	cmd()

	if len(sp.rates) != 1 || sp.rates[0] != speech.RateSlow {
		t.Errorf("rates = %v, want one slow utterance", sp.rates)
	}
}

func TestQuizKeyPushesQuizScreen(t *testing.T) {
	s, _ := testScreen()

	_, cmd := s.Update(keyPress('q'))
	if cmd == nil {
		t.Fatal("q returned no command")
	}
	if _, ok := cmd().(router.PushScreenMsg); !ok {
		t.Error("q did not push a screen")
	}
}

func TestEscPops(t *testing.T) {
	s, _ := testScreen()

	_, cmd := s.Update(specialKey(tea.KeyEscape))
	if cmd == nil {
		t.Fatal("esc returned no command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("esc did not pop")
	}
}

func TestCloseCancelsSpeech(t *testing.T) {
	s, sp := testScreen()
	s.Close()
	if sp.cancels != 1 {
		t.Errorf("cancels = %d, want 1", sp.cancels)
	}
}

func TestEmptyDeckShowsError(t *testing.T) {
	track := testTrack()
	track.Deck = nil
	s := New(track, &fakeSpeaker{}, speech.VoicePicker{})

	if s.session != nil {
		t.Fatal("expected no session for empty deck")
	}
	if s.View(80, 24) == "" {
		t.Error("expected error view")
	}
}

func TestSpeechFailureStaysSilent(t *testing.T) {
	s, _ := testScreen()

	_, _ = s.Update(specialKey(tea.KeySpace))
	if !s.speaking {
		t.Fatal("expected speaking flag set after dispatch")
	}

	_, _ = s.Update(speakDoneMsg{Err: errors.New("say: exit status 1")})
	if s.speaking {
		t.Error("expected speaking flag cleared after failure")
	}
	if strings.Contains(s.View(80, 24), "exit status") {
		t.Error("speech failure must not surface in the view")
	}
}

func TestActionRowTracksRevealState(t *testing.T) {
	s, _ := testScreen()

	view := s.View(80, 24)
	if !strings.Contains(view, "Révéler") || !strings.Contains(view, "Suivant") {
		t.Fatal("expected action buttons in view")
	}

	hidden := s.renderActionRow(80)
	_, _ = s.Update(specialKey(tea.KeySpace))
	revealed := s.renderActionRow(80)
	if hidden == revealed {
		t.Error("expected the active button to follow the reveal state")
	}
}
