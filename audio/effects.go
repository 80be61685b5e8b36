package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/tilt-maze/parameter"
	"github.com/lixenwraith/tilt-maze/vmath"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a fixed-length raw wave
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack, optional sustain level and linear release
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
	sustainLevel   float64
}

// NewEnvelope shapes s with attack and release ramps at full sustain
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return newEnvelope(s, duration, attack, release, 1.0, rate)
}

func newEnvelope(s beep.Streamer, duration, attack, release time.Duration, sustain float64, rate beep.SampleRate) *envelope {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}
	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
		sustainLevel:   sustain,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := e.sustainLevel
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		} else if e.sustainSamples > 0 && e.position < e.attackSamples+e.sustainSamples {
			// Ramp from peak to sustain level across the sustain section
			t := float64(e.position-e.attackSamples) / float64(e.sustainSamples)
			vol = 1 - (1-e.sustainLevel)*t
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = e.sustainLevel * float64(remaining) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// lowpass is a one-pole filter taming the saw harmonics
type lowpass struct {
	streamer beep.Streamer
	alpha    float64
	prev     [2]float64
}

func newLowpass(s beep.Streamer, cutoff float64, rate beep.SampleRate) *lowpass {
	dt := 1 / float64(rate)
	rc := 1 / (2 * math.Pi * cutoff)
	return &lowpass{streamer: s, alpha: dt / (rc + dt)}
}

func (l *lowpass) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = l.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		for c := 0; c < 2; c++ {
			l.prev[c] += l.alpha * (samples[i][c] - l.prev[c])
			samples[i][c] = l.prev[c]
		}
	}
	return n, ok
}

func (l *lowpass) Err() error { return l.streamer.Err() }

// newVolume wraps s in a linear gain; vol <= 0 is silent since log2(0) is -Inf
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// brassNote is a filtered saw with a fast attack, dropping to 70% by mid-note
func brassNote(freq float64, duration time.Duration, gain float64, rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(freq, duration, WaveSaw, rate)
	filtered := newLowpass(osc, freq*parameter.FanfareCutoffRatio, rate)
	shaped := newEnvelope(filtered, duration, parameter.FanfareAttack, duration/2, 0.7, rate)
	return newVolume(shaped, gain)
}

// delayed prefixes s with silence
func delayed(d time.Duration, s beep.Streamer, rate beep.SampleRate) beep.Streamer {
	if d <= 0 {
		return s
	}
	return beep.Seq(beep.Silence(rate.N(d)), s)
}

// CreateFanfare builds the victory call: C4 E4 G4, then a held C major chord
func CreateFanfare(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	note := parameter.FanfareNoteDuration
	chord := parameter.FanfareChordDuration
	chordAt := 3 * note

	mixed := beep.Mix(
		brassNote(261.63, note, 0.15, rate),
		delayed(note, brassNote(329.63, note, 0.15, rate), rate),
		delayed(2*note, brassNote(392.00, note, 0.15, rate), rate),
		delayed(chordAt, brassNote(523.25, chord, 0.25, rate), rate),
		delayed(chordAt, brassNote(392.00, chord, 0.1, rate), rate),
		delayed(chordAt, brassNote(659.25, chord, 0.1, rate), rate),
	)
	// Bound the mix to the score length
	total := rate.N(chordAt + chord)
	return newVolume(beep.Take(total, mixed), cfg.Volume(SoundFanfare)*2)
}

// CreateKnock builds a short wooden knock scaled by impact speed
func CreateKnock(cfg *AudioConfig, speed float64) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	strength := vmath.Clamp(speed/parameter.KnockFullSpeed, 0, 1)

	body := NewEnvelope(
		NewOscillator(140.0, parameter.KnockDuration, WaveSine, rate),
		parameter.KnockDuration, parameter.KnockAttack, parameter.KnockRelease, rate)
	click := NewEnvelope(
		NewOscillator(0, parameter.KnockDuration/3, WaveNoise, rate),
		parameter.KnockDuration/3, parameter.KnockAttack, parameter.KnockDuration/4, rate)

	mixed := beep.Take(rate.N(parameter.KnockDuration), beep.Mix(
		newVolume(body, 0.8),
		newVolume(newLowpass(click, 1800, rate), 0.3),
	))
	return newVolume(mixed, cfg.Volume(SoundKnock)*strength)
}

// CreateEngageSound builds a rising two-tone blip for autopilot engage
func CreateEngageSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	half := parameter.EngageDuration / 2

	n1 := NewEnvelope(NewOscillator(659.25, half, WaveSquare, rate), half, parameter.EngageAttack, half/2, rate)
	n2 := NewEnvelope(NewOscillator(987.77, half, WaveSquare, rate), half, parameter.EngageAttack, parameter.EngageRelease/2, rate)

	return newVolume(beep.Seq(n1, n2), cfg.Volume(SoundEngage)*0.5)
}

// GetSoundEffect returns a fresh streamer for soundType; speed only affects knocks
func GetSoundEffect(soundType SoundType, cfg *AudioConfig, speed float64) beep.Streamer {
	switch soundType {
	case SoundFanfare:
		return CreateFanfare(cfg)
	case SoundKnock:
		return CreateKnock(cfg, speed)
	case SoundEngage:
		return CreateEngageSound(cfg)
	default:
		return nil
	}
}
