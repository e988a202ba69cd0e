package table

import (
	"errors"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/dmruiz/frdojo/internal/catalog"
	"github.com/dmruiz/frdojo/internal/router"
	"github.com/dmruiz/frdojo/internal/speech"
)

type fakeSpeaker struct {
	spoken  []string
	cancels int
}

func (f *fakeSpeaker) Speak(text string, _ *speech.Voice, _ float64) error {
	f.spoken = append(f.spoken, text)
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
		ID:      "atlas",
		Title:   "Atlas",
		TitleFr: "L'Atlas",
		Color:   "emerald",
		Mode:    catalog.ModeTable,
		Deck: []catalog.Card{
			{ID: "d1", Prompt: "lundi", Meaning: "Monday", Kind: catalog.KindTableRow, Category: "Days"},
			{ID: "d2", Prompt: "mardi", Meaning: "Tuesday", Kind: catalog.KindTableRow, Category: "Days"},
			{ID: "n1", Prompt: "un", Meaning: "one", Kind: catalog.KindTableRow, Category: "Numbers"},
			{ID: "n2", Prompt: "deux", Meaning: "two", Kind: catalog.KindTableRow, Category: "Numbers"},
		},
	}
}

func testScreen() (*TableScreen, *fakeSpeaker) {
	sp := &fakeSpeaker{}
	return New(testTrack(), sp, speech.VoicePicker{}), sp
}

func typeString(s *TableScreen, text string) {
	for _, r := range text {
		s.Update(keyPress(r))
	}
}

func TestCursorClampsAtEnds(t *testing.T) {
	s, _ := testScreen()

	s.Update(specialKey(tea.KeyUp))
	if s.cursor != 0 {
		t.Error("cursor moved above the first row")
	}

	for i := 0; i < 10; i++ {
		s.Update(specialKey(tea.KeyDown))
	}
	if s.cursor != len(s.rows())-1 {
		t.Errorf("cursor = %d, want last row %d", s.cursor, len(s.rows())-1)
	}
}

func TestSpeakCurrentRow(t *testing.T) {
	s, sp := testScreen()
	s.Update(specialKey(tea.KeyDown))

	_, cmd := s.Update(keyPress('s'))
	if cmd == nil {
		t.Fatal("s returned no command")
	}
	cmd()

	if len(sp.spoken) != 1 || sp.spoken[0] != "mardi" {
		t.Errorf("spoke %v, want [mardi]", sp.spoken)
	}
}

func TestFilterNarrowsRows(t *testing.T) {
	s, _ := testScreen()

	s.Update(keyPress('/'))
	if !s.filter.Focused() {
		t.Fatal("/ did not focus the filter")
	}

	typeString(s, "lun")
	rows := s.rows()
	if len(rows) != 1 || rows[0].Prompt != "lundi" {
		t.Fatalf("rows = %v, want only lundi", rows)
	}

	s.Update(specialKey(tea.KeyEnter))
	if s.filter.Focused() {
		t.Error("enter did not blur the filter")
	}
	if len(s.rows()) != 1 {
		t.Error("applied filter was lost on blur")
	}
}

func TestFilterMatchesMeaning(t *testing.T) {
	s, _ := testScreen()
	s.Update(keyPress('/'))
	typeString(s, "tue")

	rows := s.rows()
	if len(rows) != 1 || rows[0].Prompt != "mardi" {
		t.Fatalf("rows = %v, want only mardi", rows)
	}
}

func TestEscClearsFilter(t *testing.T) {
	s, _ := testScreen()
	s.Update(keyPress('/'))
	typeString(s, "lun")

	s.Update(specialKey(tea.KeyEscape))
	if s.filter.Focused() || s.filter.Value() != "" {
		t.Error("esc did not clear and blur the filter")
	}
	if len(s.rows()) != 4 {
		t.Errorf("rows = %d, want all 4", len(s.rows()))
	}
}

func TestEscPopsWhenUnfocused(t *testing.T) {
	s, _ := testScreen()

	_, cmd := s.Update(specialKey(tea.KeyEscape))
	if cmd == nil {
		t.Fatal("esc returned no command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("esc did not pop")
	}
}

func TestFilterClampsCursor(t *testing.T) {
	s, _ := testScreen()
	for i := 0; i < 3; i++ {
		s.Update(specialKey(tea.KeyDown))
	}

	s.Update(keyPress('/'))
	typeString(s, "lun")
	s.Update(specialKey(tea.KeyEnter))

	if s.cursor >= len(s.rows()) {
		t.Errorf("cursor %d out of range for %d rows", s.cursor, len(s.rows()))
	}
}

func TestGroupingPreservesDeckOrder(t *testing.T) {
	s, _ := testScreen()
	lines := buildLines(s.rows())

	var headers []string
	for _, l := range lines {
		if l.row < 0 {
			headers = append(headers, l.header)
		}
	}
	if len(headers) != 2 || headers[0] != "Days" || headers[1] != "Numbers" {
		t.Errorf("headers = %v, want [Days Numbers]", headers)
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
}

func TestBuildLinesGroupsNonContiguousCategories(t *testing.T) {
	rows := []catalog.Card{
		{ID: "a", Prompt: "Lundi", Meaning: "Lunes", Kind: catalog.KindTableRow, Category: "Days"},
		{ID: "b", Prompt: "Un", Meaning: "Uno", Kind: catalog.KindTableRow, Category: "Numbers"},
		{ID: "c", Prompt: "Mardi", Meaning: "Martes", Kind: catalog.KindTableRow, Category: "Days"},
	}

	lines := buildLines(rows)

	want := []line{
		{header: "Days", row: -1},
		{row: 0},
		{row: 2},
		{header: "Numbers", row: -1},
		{row: 1},
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d", len(lines), len(want))
	}
	for i, l := range lines {
		if l != want[i] {
			t.Errorf("line %d = %+v, want %+v", i, l, want[i])
		}
	}
}
