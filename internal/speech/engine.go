package speech

import (
	"fmt"
	"os/exec"
	"strconv"
	"sync"
)

// Words-per-minute baselines the rate multiplier is applied to.
const (
	sayBaseWPM    = 175
	espeakBaseWPM = 160
)

// engineKind identifies which TTS binary drives the speaker.
type engineKind int

const (
	engineSay engineKind = iota
	engineEspeak
)

// Engine is a Speaker backed by the host's TTS command (`say` on macOS,
// `espeak-ng`/`espeak` elsewhere). One utterance at a time: Speak kills
// whatever is still playing before starting.
type Engine struct {
	kind engineKind
	bin  string

	mu      sync.Mutex
	current *exec.Cmd
}

// New finds a usable TTS binary and returns an Engine for it. When the
// host has none, it returns a Noop speaker so study modes keep working
// without audio.
func New() Speaker {
	candidates := []struct {
		bin  string
		kind engineKind
	}{
		{"say", engineSay},
		{"espeak-ng", engineEspeak},
		{"espeak", engineEspeak},
	}
	for _, c := range candidates {
		if path, err := exec.LookPath(c.bin); err == nil {
			return &Engine{kind: c.kind, bin: path}
		}
	}
	return Noop{}
}

// Speak vocalizes text, blocking until the utterance finishes. Any
// in-flight utterance is cancelled first. A killed utterance is not an
// error: cancellation is the normal path when the learner moves on.
func (e *Engine) Speak(text string, voice *Voice, rate float64) error {
	if text == "" {
		return nil
	}
	if rate <= 0 {
		rate = RateNormal
	}

	cmd := e.buildCmd(text, voice, rate)

	e.mu.Lock()
	if e.current != nil && e.current.Process != nil {
		_ = e.current.Process.Kill()
	}
	if err := cmd.Start(); err != nil {
		e.mu.Unlock()
		return fmt.Errorf("speech: start %s: %w", e.bin, err)
	}
	e.current = cmd
	e.mu.Unlock()

	err := cmd.Wait()

	e.mu.Lock()
	superseded := e.current != cmd
	if !superseded {
		e.current = nil
	}
	e.mu.Unlock()

	// Errors from a superseded utterance are expected: we killed it.
	if err != nil && !superseded {
		return fmt.Errorf("speech: %s: %w", e.bin, err)
	}
	return nil
}

// Cancel stops the in-flight utterance, if any.
func (e *Engine) Cancel() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.current != nil && e.current.Process != nil {
		_ = e.current.Process.Kill()
	}
	e.current = nil
}

// Voices lists the engine's voices, French first.
func (e *Engine) Voices() []Voice {
	var args []string
	switch e.kind {
	case engineSay:
		args = []string{"-v", "?"}
	case engineEspeak:
		args = []string{"--voices"}
	}

	out, err := exec.Command(e.bin, args...).Output()
	if err != nil {
		return nil
	}

	var voices []Voice
	switch e.kind {
	case engineSay:
		voices = parseSayVoices(string(out))
	case engineEspeak:
		voices = parseEspeakVoices(string(out))
	}
	return RankVoices(voices)
}

func (e *Engine) buildCmd(text string, voice *Voice, rate float64) *exec.Cmd {
	var args []string
	switch e.kind {
	case engineSay:
		wpm := int(float64(sayBaseWPM) * rate)
		args = []string{"-r", strconv.Itoa(wpm)}
		if voice != nil {
			args = append(args, "-v", voice.Name)
		}
	case engineEspeak:
		wpm := int(float64(espeakBaseWPM) * rate)
		args = []string{"-s", strconv.Itoa(wpm)}
		if voice != nil {
			args = append(args, "-v", voice.Lang)
		} else {
			args = append(args, "-v", "fr")
		}
	}
	args = append(args, text)
	return exec.Command(e.bin, args...)
}
