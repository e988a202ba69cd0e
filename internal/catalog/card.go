package catalog

import "fmt"

// Kind tags the presentation variant of a card. Kind-specific fields are
// only valid for the kinds that declare them; Validate enforces this.
type Kind string

const (
	// KindPhrase is a conversational phrase shown as a flashcard.
	KindPhrase Kind = "phrase"
	// KindVocab is a single high-frequency noun.
	KindVocab Kind = "vocab"
	// KindVerb is a conjugated verb in context.
	KindVerb Kind = "verb"
	// KindConnector is a linking word.
	KindConnector Kind = "connector"
	// KindPhonetic is a pronunciation drill carrying guide/trap/mnemonic.
	KindPhonetic Kind = "phonetic"
	// KindTableRow is a row in a visual table, grouped by Category.
	KindTableRow Kind = "table"
	// KindAnatomy is a sentence to be decomposed into Segments.
	KindAnatomy Kind = "anatomy"
)

// Segment is one piece of a decomposed sentence.
type Segment struct {
	Text        string
	Meaning     string
	GrammarNote string
}

// Card is an immutable study unit. Prompt holds the French text that is
// displayed and spoken; Meaning is the learner's-language translation.
type Card struct {
	ID      string
	Emoji   string
	Prompt  string
	Meaning string
	Kind    Kind

	// Phonetic drill fields (KindPhonetic only).
	PhoneticGuide string
	Mnemonic      string
	Trap          string

	// Category groups rows in table mode (KindTableRow only).
	Category string

	// Segments decompose the sentence (KindAnatomy only).
	Segments []Segment
}

// validate checks the card's own invariants.
func (c Card) validate() error {
	if c.ID == "" {
		return fmt.Errorf("card has empty id")
	}
	if c.Prompt == "" {
		return fmt.Errorf("card %s: empty prompt", c.ID)
	}
	if c.Meaning == "" {
		return fmt.Errorf("card %s: empty meaning", c.ID)
	}

	switch c.Kind {
	case KindPhrase, KindVocab, KindVerb, KindConnector:
	case KindPhonetic:
		if c.PhoneticGuide == "" {
			return fmt.Errorf("card %s: phonetic card without guide", c.ID)
		}
	case KindTableRow:
		if c.Category == "" {
			return fmt.Errorf("card %s: table row without category", c.ID)
		}
	case KindAnatomy:
		if len(c.Segments) == 0 {
			return fmt.Errorf("card %s: anatomy card without segments", c.ID)
		}
		for i, s := range c.Segments {
			if s.Text == "" || s.Meaning == "" {
				return fmt.Errorf("card %s: segment %d missing text or meaning", c.ID, i)
			}
		}
	default:
		return fmt.Errorf("card %s: unknown kind %q", c.ID, c.Kind)
	}

	// Fields that only make sense on specific kinds.
	if c.Kind != KindAnatomy && len(c.Segments) > 0 {
		return fmt.Errorf("card %s: segments on non-anatomy card", c.ID)
	}
	if c.Kind != KindTableRow && c.Category != "" {
		return fmt.Errorf("card %s: category on non-table card", c.ID)
	}
	if c.Kind != KindPhonetic && (c.PhoneticGuide != "" || c.Mnemonic != "" || c.Trap != "") {
		return fmt.Errorf("card %s: phonetic fields on non-phonetic card", c.ID)
	}

	return nil
}
