package speech

import (
	"sort"
	"strings"
)

// hasFrenchTag matches language tags like fr, fr-FR, fr_CA, french.
func hasFrenchTag(lang string) bool {
	l := strings.ToLower(lang)
	return l == "fr" || strings.HasPrefix(l, "fr-") || strings.HasPrefix(l, "fr_") || strings.Contains(l, "french")
}

// RankVoices orders voices with French-tagged ones first, keeping the
// engine's order within each group.
func RankVoices(voices []Voice) []Voice {
	out := make([]Voice, len(voices))
	copy(out, voices)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].French() && !out[j].French()
	})
	return out
}

// DefaultVoice picks the best voice for French playback: a French voice
// whose name suggests a premium engine voice, then any fr-FR voice, then
// any French voice, then the first voice at all. Returns nil when the
// engine offers nothing.
func DefaultVoice(voices []Voice) *Voice {
	ranked := RankVoices(voices)

	preferredNames := []string{"Thomas", "Siri", "Premium"}
	for _, v := range ranked {
		if !v.French() {
			break
		}
		for _, name := range preferredNames {
			if strings.Contains(v.Name, name) {
				return &v
			}
		}
	}
	for _, v := range ranked {
		if strings.EqualFold(v.Lang, "fr-FR") || strings.EqualFold(v.Lang, "fr_FR") {
			return &v
		}
	}
	for _, v := range ranked {
		if v.French() {
			return &v
		}
	}
	if len(ranked) > 0 {
		return &ranked[0]
	}
	return nil
}

// parseSayVoices parses `say -v ?` output. Each line looks like:
//
//	Thomas              fr-FR    # Bonjour, je m'appelle Thomas.
func parseSayVoices(out string) []Voice {
	var voices []Voice
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimRight(line, " \r")
		if line == "" {
			continue
		}
		sample := strings.Index(line, "#")
		if sample >= 0 {
			line = strings.TrimRight(line[:sample], " ")
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		lang := fields[len(fields)-1]
		name := strings.Join(fields[:len(fields)-1], " ")
		voices = append(voices, Voice{Name: name, Lang: lang})
	}
	return voices
}

// parseEspeakVoices parses `espeak-ng --voices` output. The first line
// is a header; data lines look like:
//
//	 5  fr-fr          M  french               fr              (fr 5)
func parseEspeakVoices(out string) []Voice {
	var voices []Voice
	for i, line := range strings.Split(out, "\n") {
		if i == 0 || strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 4 {
			continue
		}
		voices = append(voices, Voice{Name: fields[3], Lang: fields[1]})
	}
	return voices
}
