package audio

import (
	"math"
	"math/rand/v2"

	"github.com/lixenwraith/tilt-maze/parameter"
)

// voice is one decaying oscillator: a triangle for pitched notes, a square for the hi-hat.
// Gain falls exponentially to MusicDecayFloor over the note's length.
type voice struct {
	square    bool
	phase     float64
	inc       float64
	gain      float64
	decay     float64
	remaining int
}

func (v *voice) trigger(freq, gain float64, samples int, rate float64, square bool) {
	if samples <= 0 || gain <= 0 || freq <= 0 {
		v.remaining = 0
		return
	}
	v.square = square
	v.phase = 0
	v.inc = freq / rate
	v.gain = gain
	v.decay = 1
	if ratio := parameter.MusicDecayFloor / gain; ratio < 1 {
		v.decay = math.Pow(ratio, 1/float64(samples))
	}
	v.remaining = samples
}

func (v *voice) active() bool {
	return v.remaining > 0
}

func (v *voice) sample() float64 {
	if v.remaining <= 0 {
		return 0
	}
	var wave float64
	if v.square {
		wave = 1
		if v.phase >= 0.5 {
			wave = -1
		}
	} else {
		wave = 4*math.Abs(v.phase-0.5) - 1
	}
	s := wave * v.gain

	v.gain *= v.decay
	v.phase += v.inc
	v.phase -= math.Floor(v.phase)
	v.remaining--
	return s
}

func (v *voice) reset() {
	*v = voice{}
}

// musicTrack plays a Pattern on a fixed voice pool plus one hi-hat voice.
// It is driven from the streaming goroutine only.
type musicTrack struct {
	pattern *Pattern
	rate    float64
	rng     *rand.Rand

	voices [parameter.MusicPolyphony]voice
	hihat  voice
}

func newMusicTrack(p *Pattern, rate float64, rng *rand.Rand) *musicTrack {
	return &musicTrack{pattern: p, rate: rate, rng: rng}
}

// triggerStep starts every note and hit the pattern places on step
func (t *musicTrack) triggerStep(step int) {
	for _, n := range t.pattern.NotesAt(step) {
		samples := int(n.Duration.Seconds() * t.rate)
		t.allocate().trigger(NoteFreq(n.Note), n.Velocity, samples, t.rate, false)
	}
	if vel := t.pattern.HihatAt(step); vel > 0 {
		freq := parameter.MusicHatMinFreq + t.rng.Float64()*parameter.MusicHatFreqSpread
		samples := int(parameter.MusicHatDuration.Seconds() * t.rate)
		t.hihat.trigger(freq, vel, samples, t.rate, true)
	}
}

// allocate returns a free voice, or steals the one furthest into its decay
func (t *musicTrack) allocate() *voice {
	var quietest *voice
	for i := range t.voices {
		v := &t.voices[i]
		if !v.active() {
			return v
		}
		if quietest == nil || v.gain < quietest.gain {
			quietest = v
		}
	}
	return quietest
}

// sample mixes one output sample
func (t *musicTrack) sample() float64 {
	sum := t.hihat.sample()
	for i := range t.voices {
		if t.voices[i].active() {
			sum += t.voices[i].sample()
		}
	}
	return sum
}

// activeVoices counts sounding voices including the hi-hat
func (t *musicTrack) activeVoices() int {
	n := 0
	if t.hihat.active() {
		n++
	}
	for i := range t.voices {
		if t.voices[i].active() {
			n++
		}
	}
	return n
}

func (t *musicTrack) reset() {
	for i := range t.voices {
		t.voices[i].reset()
	}
	t.hihat.reset()
}
