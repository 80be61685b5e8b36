package audio

import (
	"time"

	"github.com/lixenwraith/tilt-maze/parameter"
)

// StepTrigger defines a percussion hit at a step with velocity
type StepTrigger struct {
	Step     int
	Velocity float64
}

// NoteTrigger defines a pitched note event
type NoteTrigger struct {
	Step     int
	Note     int // MIDI note
	Velocity float64
	Duration time.Duration
}

// Pattern is one loop of music in steps
type Pattern struct {
	Length int
	Notes  []NoteTrigger
	Hihat  []StepTrigger
}

// NotesAt returns the note triggers on step, which wraps at Length
func (p *Pattern) NotesAt(step int) []NoteTrigger {
	if p == nil || p.Length <= 0 {
		return nil
	}
	local := step % p.Length
	var out []NoteTrigger
	for _, n := range p.Notes {
		if n.Step == local {
			out = append(out, n)
		}
	}
	return out
}

// HihatAt returns the hi-hat velocity on step, 0 when it is silent
func (p *Pattern) HihatAt(step int) float64 {
	if p == nil || p.Length <= 0 {
		return 0
	}
	local := step % p.Length
	for _, h := range p.Hihat {
		if h.Step == local {
			return h.Velocity
		}
	}
	return 0
}

var (
	jazzChords = [3][4]int{
		{noteC4, noteE4, noteG4, noteB4}, // Cmaj7
		{noteD4, noteF4, noteA4, noteC5}, // Dm7
		{noteG4, noteB4, noteD5, noteF5}, // G7
	}
	jazzBass = [4]int{noteC2, noteD2, noteG2, noteF2}
)

// JazzPattern is the background loop: a seventh chord every four beats cycling
// Cmaj7 Dm7 G7, a bass note every beat walking C D G F two beats each, and a
// hi-hat tick on every beat. Chords repeat after 12 beats and the bass after 8,
// so the loop is 24 beats long.
func JazzPattern() *Pattern {
	const length = 24
	p := &Pattern{Length: length}
	for step := 0; step < length; step++ {
		if step%4 == 0 {
			for _, n := range jazzChords[(step/4)%len(jazzChords)] {
				p.Notes = append(p.Notes, NoteTrigger{
					Step: step, Note: n,
					Velocity: parameter.MusicChordGain, Duration: parameter.MusicChordDuration,
				})
			}
		}
		p.Notes = append(p.Notes, NoteTrigger{
			Step: step, Note: jazzBass[(step/2)%len(jazzBass)],
			Velocity: parameter.MusicBassGain, Duration: parameter.MusicBassDuration,
		})
		p.Hihat = append(p.Hihat, StepTrigger{Step: step, Velocity: parameter.MusicHatGain})
	}
	return p
}
