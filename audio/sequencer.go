package audio

import (
	"math/rand/v2"
	"sync/atomic"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/tilt-maze/parameter"
	"github.com/lixenwraith/tilt-maze/status"
)

// Sequencer steps through a Pattern at a fixed tempo and streams the mix.
// It stays on the speaker mixer for the whole session: Stop freezes it in place
// and outputs silence, Start resumes from the same step and sample.
// Control methods are safe from any goroutine; Stream runs on the speaker's.
type Sequencer struct {
	samplesPerStep atomic.Int64
	running        atomic.Bool
	resetPending   atomic.Bool
	volume         status.AtomicFloat
	steps          atomic.Int64

	// Streaming state
	track   *musicTrack
	step    int
	pos     int64
	started bool
}

// NewSequencer creates a stopped sequencer for p at bpm; rng picks hi-hat pitches.
// An empty pattern falls back to JazzPattern.
func NewSequencer(p *Pattern, bpm int, rate beep.SampleRate, rng *rand.Rand) *Sequencer {
	if p == nil || p.Length <= 0 {
		p = JazzPattern()
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(1, 2))
	}
	s := &Sequencer{track: newMusicTrack(p, float64(rate), rng)}
	s.SetBPM(bpm, rate)
	s.volume.Set(1)
	return s
}

// SetBPM updates tempo, clamped to [MinBPM, MaxBPM]
func (s *Sequencer) SetBPM(bpm int, rate beep.SampleRate) {
	if bpm < parameter.MinBPM {
		bpm = parameter.MinBPM
	} else if bpm > parameter.MaxBPM {
		bpm = parameter.MaxBPM
	}
	s.samplesPerStep.Store(int64(parameter.SamplesPerStep(bpm, int(rate))))
}

// SetVolume sets music volume (0.0-1.0)
func (s *Sequencer) SetVolume(vol float64) {
	if vol < 0 {
		vol = 0
	} else if vol > 1 {
		vol = 1
	}
	s.volume.Set(vol)
}

// Start resumes playback
func (s *Sequencer) Start() {
	s.running.Store(true)
}

// Stop silences playback, keeping position and ringing voices for Start
func (s *Sequencer) Stop() {
	s.running.Store(false)
}

// IsRunning returns sequencer state
func (s *Sequencer) IsRunning() bool {
	return s.running.Load()
}

// Reset stops and rewinds to step 0 with all voices silent
func (s *Sequencer) Reset() {
	s.running.Store(false)
	s.resetPending.Store(true)
}

// Steps returns how many steps have been triggered
func (s *Sequencer) Steps() int64 {
	return s.steps.Load()
}

// Stream fills samples with the mix; it never ends so the mixer keeps it
func (s *Sequencer) Stream(samples [][2]float64) (n int, ok bool) {
	if s.resetPending.CompareAndSwap(true, false) {
		s.track.reset()
		s.step, s.pos, s.started = 0, 0, false
	}

	if !s.running.Load() {
		clear(samples)
		return len(samples), true
	}

	samplesPerStep := s.samplesPerStep.Load()
	vol := s.volume.Get()

	for i := range samples {
		// Trigger step 0 on the first sample so the first beat is not skipped
		if !s.started {
			s.started = true
			s.trigger()
		} else if s.pos >= samplesPerStep {
			s.pos = 0
			s.step = (s.step + 1) % s.track.pattern.Length
			s.trigger()
		}

		v := s.track.sample() * vol
		samples[i][0] = v
		samples[i][1] = v
		s.pos++
	}
	return len(samples), true
}

func (s *Sequencer) trigger() {
	s.track.triggerStep(s.step)
	s.steps.Add(1)
}

func (s *Sequencer) Err() error { return nil }
