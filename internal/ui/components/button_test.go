package components

import (
	"strings"
	"testing"
)

func TestButtonViewShowsLabel(t *testing.T) {
	b := Button{Label: "Révéler", Active: true}
	if !strings.Contains(b.View(), "Révéler") {
		t.Error("expected label in rendered button")
	}
}

func TestButtonStatesRenderDifferently(t *testing.T) {
	active := Button{Label: "Suivant", Active: true}.View()
	inactive := Button{Label: "Suivant"}.View()
	if active == inactive {
		t.Error("expected active and inactive buttons to render differently")
	}
}
