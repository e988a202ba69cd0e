package home

import (
	"testing"

	"github.com/dmruiz/frdojo/internal/catalog"
	"github.com/dmruiz/frdojo/internal/router"
	"github.com/dmruiz/frdojo/internal/screens/anatomy"
	"github.com/dmruiz/frdojo/internal/screens/flashcards"
	"github.com/dmruiz/frdojo/internal/screens/table"
	"github.com/dmruiz/frdojo/internal/speech"
)

func TestMenuHasOneItemPerTrack(t *testing.T) {
	s := New(speech.Noop{}, nil)
	if got, want := len(s.menu.Items), len(catalog.Tracks()); got != want {
		t.Errorf("menu items = %d, want %d", got, want)
	}
}

func TestOpenTrackDispatchesByMode(t *testing.T) {
	s := New(speech.Noop{}, nil)

	tests := []struct {
		mode catalog.Mode
		want string
	}{
		{catalog.ModeFlashcard, "flashcards"},
		{catalog.ModeTable, "table"},
		{catalog.ModeAnatomy, "anatomy"},
	}

	for _, tt := range tests {
		track := catalog.Track{
			ID: "t", Title: "T", TitleFr: "T", Color: "cyan", Mode: tt.mode,
			Deck: []catalog.Card{{ID: "c1", Prompt: "un", Meaning: "one", Kind: catalog.KindVocab}},
		}
		if tt.mode == catalog.ModeAnatomy {
			track.Deck[0].Kind = catalog.KindAnatomy
			track.Deck[0].Segments = []catalog.Segment{{Text: "un", Meaning: "one"}}
		}

		msg := s.openTrack(track)()
		push, ok := msg.(router.PushScreenMsg)
		if !ok {
			t.Fatalf("%s: expected PushScreenMsg, got %T", tt.mode, msg)
		}

		switch tt.want {
		case "flashcards":
			if _, ok := push.Screen.(*flashcards.FlashcardsScreen); !ok {
				t.Errorf("%s: pushed %T", tt.mode, push.Screen)
			}
		case "table":
			if _, ok := push.Screen.(*table.TableScreen); !ok {
				t.Errorf("%s: pushed %T", tt.mode, push.Screen)
			}
		case "anatomy":
			if _, ok := push.Screen.(*anatomy.AnatomyScreen); !ok {
				t.Errorf("%s: pushed %T", tt.mode, push.Screen)
			}
		}
	}
}

func TestVoicesLoadedBuildsPicker(t *testing.T) {
	s := New(speech.Noop{}, nil)

	s.Update(voicesLoadedMsg{Voices: []speech.Voice{
		{Name: "Alex", Lang: "en_US"},
		{Name: "Thomas", Lang: "fr_FR"},
	}})

	if !s.voicesReady {
		t.Fatal("voicesReady not set")
	}
	if v := s.picker.Current(); v == nil || v.Name != "Thomas" {
		t.Errorf("picker current = %v, want Thomas", v)
	}
}

func TestViewMentionsStoreState(t *testing.T) {
	s := New(speech.Noop{}, nil)
	view := s.View(90, 30)
	if view == "" {
		t.Fatal("empty view")
	}
}
