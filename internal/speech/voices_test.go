package speech

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sayOutput = `Alex                en_US    # Most people recognize me by my voice.
Amélie              fr-CA    # Bonjour! Je m'appelle Amélie.
Daniel              en_GB    # Hello, my name is Daniel.
Thomas              fr-FR    # Bonjour, je m'appelle Thomas.
Yuna                ko_KR    # 안녕하세요. 제 이름은 유나입니다.
`

const espeakOutput = `Pty Language       Age/Gender VoiceName          File                 Other Languages
 5  af              --/M      afrikaans          gmw/af
 5  en-gb           --/M      english            gmw/en
 5  fr-fr           --/M      french             roa/fr               (fr 5)
 5  fr-be           --/M      french-belgium     roa/fr-BE            (fr 8)
 5  es              --/M      spanish            roa/es
`

func TestParseSayVoices(t *testing.T) {
	voices := parseSayVoices(sayOutput)
	require.Len(t, voices, 5)

	assert.Equal(t, Voice{Name: "Alex", Lang: "en_US"}, voices[0])
	assert.Equal(t, Voice{Name: "Thomas", Lang: "fr-FR"}, voices[3])
	assert.True(t, voices[1].French(), "Amélie should be French-tagged")
	assert.False(t, voices[4].French(), "Yuna should not be French-tagged")
}

func TestParseSayVoicesMultiWordNames(t *testing.T) {
	out := "Bonne Nuit          fr-FR    # Bonsoir.\n"
	voices := parseSayVoices(out)
	require.Len(t, voices, 1)
	assert.Equal(t, "Bonne Nuit", voices[0].Name)
	assert.Equal(t, "fr-FR", voices[0].Lang)
}

func TestParseEspeakVoices(t *testing.T) {
	voices := parseEspeakVoices(espeakOutput)
	require.Len(t, voices, 5)

	assert.Equal(t, Voice{Name: "french", Lang: "fr-fr"}, voices[2])
	assert.True(t, voices[2].French())
	assert.True(t, voices[3].French())
	assert.False(t, voices[4].French())
}

func TestRankVoicesFrenchFirst(t *testing.T) {
	voices := parseSayVoices(sayOutput)
	ranked := RankVoices(voices)

	require.Len(t, ranked, 5)
	assert.True(t, ranked[0].French())
	assert.True(t, ranked[1].French())
	for _, v := range ranked[2:] {
		assert.False(t, v.French(), "voice %s ranked above non-French boundary", v.Name)
	}

	// Stable within groups: Amélie came before Thomas in engine order.
	assert.Equal(t, "Amélie", ranked[0].Name)
	assert.Equal(t, "Thomas", ranked[1].Name)
}

func TestRankVoicesDoesNotMutate(t *testing.T) {
	voices := parseSayVoices(sayOutput)
	snapshot := make([]Voice, len(voices))
	copy(snapshot, voices)

	RankVoices(voices)
	assert.Equal(t, snapshot, voices)
}

func TestDefaultVoice(t *testing.T) {
	tests := []struct {
		name   string
		voices []Voice
		want   string
	}{
		{
			"prefers premium French name",
			[]Voice{
				{Name: "Amélie", Lang: "fr-CA"},
				{Name: "Thomas", Lang: "fr-FR"},
			},
			"Thomas",
		},
		{
			"falls back to fr-FR",
			[]Voice{
				{Name: "Alex", Lang: "en_US"},
				{Name: "Colette", Lang: "fr-FR"},
			},
			"Colette",
		},
		{
			"falls back to any French voice",
			[]Voice{
				{Name: "Alex", Lang: "en_US"},
				{Name: "Amélie", Lang: "fr-CA"},
			},
			"Amélie",
		},
		{
			"falls back to first voice",
			[]Voice{
				{Name: "Alex", Lang: "en_US"},
				{Name: "Daniel", Lang: "en_GB"},
			},
			"Alex",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DefaultVoice(tt.voices)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got.Name)
		})
	}
}

func TestDefaultVoiceEmpty(t *testing.T) {
	assert.Nil(t, DefaultVoice(nil))
	assert.Nil(t, DefaultVoice([]Voice{}))
}

func TestNoopSpeaker(t *testing.T) {
	var s Speaker = Noop{}
	require.NoError(t, s.Speak("Bonjour", nil, RateNormal))
	s.Cancel()
	assert.Nil(t, s.Voices())
}
