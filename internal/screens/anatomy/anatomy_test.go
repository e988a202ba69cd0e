package anatomy

import (
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/dmruiz/frdojo/internal/catalog"
	"github.com/dmruiz/frdojo/internal/speech"
)

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
		ID:      "anatomy",
		Title:   "Anatomy",
		TitleFr: "L'Anatomie",
		Color:   "rose",
		Mode:    catalog.ModeAnatomy,
		Deck: []catalog.Card{
			{
				ID: "a1", Prompt: "Je voudrais un café", Meaning: "I would like a coffee",
				Kind: catalog.KindAnatomy,
				Segments: []catalog.Segment{
					{Text: "Je", Meaning: "I"},
					{Text: "voudrais", Meaning: "would like", GrammarNote: "conditional of vouloir"},
					{Text: "un café", Meaning: "a coffee"},
				},
			},
			{
				ID: "a2", Prompt: "Où est la gare", Meaning: "Where is the station",
				Kind: catalog.KindAnatomy,
				Segments: []catalog.Segment{
					{Text: "Où est", Meaning: "where is"},
					{Text: "la gare", Meaning: "the station"},
				},
			},
		},
	}
}

func testScreen() (*AnatomyScreen, *fakeSpeaker) {
	sp := &fakeSpeaker{}
	return New(testTrack(), sp, speech.VoicePicker{}), sp
}

func TestSegmentNavigationClamps(t *testing.T) {
	s, _ := testScreen()

	s.Update(specialKey(tea.KeyLeft))
	if s.segment != 0 {
		t.Error("moved left of the first segment")
	}

	for i := 0; i < 10; i++ {
		s.Update(specialKey(tea.KeyRight))
	}
	if s.segment != 2 {
		t.Errorf("segment = %d, want 2 (clamped)", s.segment)
	}
}

func TestSentenceNavigationResetsSegment(t *testing.T) {
	s, _ := testScreen()
	s.Update(specialKey(tea.KeyRight))

	s.Update(keyPress('n'))
	if s.walk.Index() != 1 {
		t.Fatalf("walk index = %d, want 1", s.walk.Index())
	}
	if s.segment != 0 {
		t.Error("segment not reset on sentence change")
	}

	// Clamped at the last sentence.
	s.Update(keyPress('n'))
	if s.walk.Index() != 1 {
		t.Error("walked past the last sentence")
	}

	s.Update(keyPress('p'))
	if s.walk.Index() != 0 {
		t.Errorf("walk index = %d, want 0", s.walk.Index())
	}
	s.Update(keyPress('p'))
	if s.walk.Index() != 0 {
		t.Error("walked before the first sentence")
	}
}

func TestSpeakSegmentIsSlow(t *testing.T) {
	s, sp := testScreen()
	s.Update(specialKey(tea.KeyRight))

	_, cmd := s.Update(keyPress('s'))
	cmd()

	if len(sp.spoken) != 1 || sp.spoken[0] != "voudrais" {
		t.Errorf("spoke %v, want [voudrais]", sp.spoken)
	}
	if sp.rates[0] != speech.RateSlow {
		t.Errorf("rate = %v, want slow", sp.rates[0])
	}
}

func TestSpeakFullSentence(t *testing.T) {
	s, sp := testScreen()

	_, cmd := s.Update(keyPress('f'))
	cmd()

	if len(sp.spoken) != 1 || sp.spoken[0] != "Je voudrais un café" {
		t.Errorf("spoke %v, want the full sentence", sp.spoken)
	}
	if sp.rates[0] != speech.RateNormal {
		t.Errorf("rate = %v, want normal", sp.rates[0])
	}
}

func TestViewShowsGrammarNote(t *testing.T) {
	s, _ := testScreen()
	s.Update(specialKey(tea.KeyRight))

	view := s.View(80, 24)
	if view == "" {
		t.Fatal("empty view")
	}
	// The grammar note for "voudrais" should be visible.
	if !strings.Contains(view, "conditional of vouloir") {
		t.Error("grammar note missing from view")
	}
}

func TestSpeechFailureStaysSilent(t *testing.T) {
	s, _ := testScreen()

	_, _ = s.Update(keyPress('s'))
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
