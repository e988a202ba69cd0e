package speech

// VoicePicker tracks the active voice among the discovered ones.
// The zero value has no voices and yields a nil voice, which lets the
// engine fall back to its default French voice.
type VoicePicker struct {
	Voices []Voice
	Index  int
}

// NewVoicePicker ranks the voices French-first and starts on the
// preferred default.
func NewVoicePicker(voices []Voice) VoicePicker {
	ranked := RankVoices(voices)
	idx := 0
	if def := DefaultVoice(ranked); def != nil {
		for i, v := range ranked {
			if v.Name == def.Name {
				idx = i
				break
			}
		}
	}
	return VoicePicker{Voices: ranked, Index: idx}
}

// Current returns the active voice, or nil when none were discovered.
func (p VoicePicker) Current() *Voice {
	if len(p.Voices) == 0 {
		return nil
	}
	v := p.Voices[p.Index]
	return &v
}

// Next advances to the following voice, wrapping around.
func (p VoicePicker) Next() VoicePicker {
	if len(p.Voices) == 0 {
		return p
	}
	p.Index = (p.Index + 1) % len(p.Voices)
	return p
}
