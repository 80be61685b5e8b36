package audio

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/tilt-maze/parameter"
)

// testRate keeps steps short: 4000 samples per step at 120 BPM
const testRate = beep.SampleRate(8000)

func newTestSequencer() *Sequencer {
	return NewSequencer(JazzPattern(), parameter.MusicBPM, testRate, rand.New(rand.NewPCG(3, 4)))
}

// streamFor pulls n samples and returns the peak magnitude
func streamFor(t *testing.T, s beep.Streamer, n int) float64 {
	t.Helper()
	buf := make([][2]float64, 512)
	peak := 0.0
	for n > 0 {
		chunk := buf[:min(n, len(buf))]
		got, ok := s.Stream(chunk)
		if !ok || got != len(chunk) {
			t.Fatalf("stream returned %d, %v for %d samples", got, ok, len(chunk))
		}
		for i := 0; i < got; i++ {
			peak = math.Max(peak, math.Max(math.Abs(chunk[i][0]), math.Abs(chunk[i][1])))
		}
		n -= got
	}
	return peak
}

func TestNoteFreq(t *testing.T) {
	tests := []struct {
		note int
		want float64
	}{
		{69, 440.0},
		{noteC4, 261.63},
		{noteB4, 493.88},
		{noteF5, 698.46},
		{noteC2, 65.41},
	}
	for _, tc := range tests {
		if got := NoteFreq(tc.note); math.Abs(got-tc.want) > 0.01 {
			t.Errorf("NoteFreq(%d) = %.3f, want %.2f", tc.note, got, tc.want)
		}
	}
	if NoteFreq(-1) != 0 || NoteFreq(128) != 0 {
		t.Error("out of range notes should be silent")
	}
}

func TestJazzPattern(t *testing.T) {
	p := JazzPattern()
	if p.Length != 24 {
		t.Fatalf("length = %d, want 24", p.Length)
	}

	notes := func(step int) []int {
		var out []int
		for _, n := range p.NotesAt(step) {
			out = append(out, n.Note)
		}
		return out
	}
	tests := []struct {
		step int
		want []int
	}{
		{0, []int{noteC4, noteE4, noteG4, noteB4, noteC2}},
		{1, []int{noteC2}},
		{2, []int{noteD2}},
		{4, []int{noteD4, noteF4, noteA4, noteC5, noteG2}},
		{6, []int{noteF2}},
		{8, []int{noteG4, noteB4, noteD5, noteF5, noteC2}},
		{12, []int{noteC4, noteE4, noteG4, noteB4, noteG2}},
		{24, []int{noteC4, noteE4, noteG4, noteB4, noteC2}},
	}
	for _, tc := range tests {
		got := notes(tc.step)
		if len(got) != len(tc.want) {
			t.Errorf("step %d notes = %v, want %v", tc.step, got, tc.want)
			continue
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Errorf("step %d notes = %v, want %v", tc.step, got, tc.want)
				break
			}
		}
	}

	for step := 0; step < p.Length; step++ {
		if p.HihatAt(step) != parameter.MusicHatGain {
			t.Errorf("step %d: no hi-hat", step)
		}
	}
	if (*Pattern)(nil).NotesAt(0) != nil || (*Pattern)(nil).HihatAt(0) != 0 {
		t.Error("nil pattern should be silent")
	}
}

func TestSequencerStoppedIsSilent(t *testing.T) {
	s := newTestSequencer()
	buf := make([][2]float64, 256)
	for i := range buf {
		buf[i] = [2]float64{1, 1}
	}
	n, ok := s.Stream(buf)
	if n != len(buf) || !ok {
		t.Fatalf("stopped sequencer returned %d, %v; it must stay on the mixer", n, ok)
	}
	for i, v := range buf {
		if v != [2]float64{} {
			t.Fatalf("sample %d = %v while stopped", i, v)
		}
	}
	if s.Steps() != 0 {
		t.Errorf("steps = %d while stopped", s.Steps())
	}
}

func TestSequencerBoundedAndAdvances(t *testing.T) {
	s := newTestSequencer()
	s.Start()

	// Three seconds at 120 BPM: steps start at 0, 0.5, 1.0, 1.5, 2.0 and 2.5 s
	peak := streamFor(t, s, int(testRate)*3)
	if peak == 0 {
		t.Fatal("no output while running")
	}
	maxPeak := 4*parameter.MusicChordGain + parameter.MusicBassGain + parameter.MusicHatGain
	if peak > maxPeak+1e-9 {
		t.Errorf("peak = %f, above the loudest step %f", peak, maxPeak)
	}
	if s.Steps() != 6 {
		t.Errorf("steps = %d, want 6", s.Steps())
	}

	s.SetVolume(0)
	if p := streamFor(t, s, 1000); p != 0 {
		t.Errorf("peak at zero volume = %f", p)
	}
}

func TestSequencerStopFreezesAndResumes(t *testing.T) {
	s := newTestSequencer()
	s.Start()
	streamFor(t, s, 1000)
	steps := s.Steps()

	s.Stop()
	if s.IsRunning() {
		t.Fatal("still running after Stop")
	}
	if p := streamFor(t, s, 10000); p != 0 {
		t.Errorf("peak while paused = %f", p)
	}
	if s.Steps() != steps {
		t.Errorf("steps moved while paused: %d -> %d", steps, s.Steps())
	}

	// The chord from step 0 is still ringing when play resumes
	s.Start()
	if p := streamFor(t, s, 200); p == 0 {
		t.Error("resume is silent, voices were lost")
	}
	if s.Steps() != steps {
		t.Errorf("resume retriggered a step: %d -> %d", steps, s.Steps())
	}
}

func TestSequencerReset(t *testing.T) {
	s := newTestSequencer()
	s.Start()
	streamFor(t, s, 9000)
	if s.step != 2 {
		t.Fatalf("step = %d after 9000 samples, want 2", s.step)
	}

	s.Reset()
	if s.IsRunning() {
		t.Error("Reset should stop playback")
	}
	s.Start()
	before := s.Steps()
	streamFor(t, s, 10)
	if s.step != 0 || s.Steps() != before+1 {
		t.Errorf("after reset step = %d, triggered %d, want step 0 retriggered", s.step, s.Steps()-before)
	}
}

func TestVoiceDecaysToFloor(t *testing.T) {
	var v voice
	v.trigger(440, 0.1, 1000, float64(testRate), false)
	first := math.Abs(v.sample())
	for i := 1; i < 999; i++ {
		v.sample()
	}
	if !v.active() {
		t.Fatal("voice ended early")
	}
	if math.Abs(v.gain-parameter.MusicDecayFloor)/parameter.MusicDecayFloor > 0.01 {
		t.Errorf("gain before the last sample = %g, want about %g", v.gain, parameter.MusicDecayFloor)
	}
	v.sample()
	if v.active() || v.sample() != 0 {
		t.Error("voice still sounding after its duration")
	}
	if first > 0.1 {
		t.Errorf("first sample %f above gain", first)
	}
}

func TestTrackStealsQuietestVoice(t *testing.T) {
	tr := newMusicTrack(JazzPattern(), float64(testRate), rand.New(rand.NewPCG(1, 1)))
	for i := range tr.voices {
		tr.voices[i].trigger(220, 0.5+float64(i)*0.01, 1000, float64(testRate), false)
	}
	tr.voices[5].gain = 0.01

	if got := tr.allocate(); got != &tr.voices[5] {
		t.Error("allocate did not steal the quietest voice")
	}

	tr.voices[2].reset()
	if got := tr.allocate(); got != &tr.voices[2] {
		t.Error("allocate skipped a free voice")
	}

	tr.reset()
	if tr.activeVoices() != 0 {
		t.Errorf("%d voices active after reset", tr.activeVoices())
	}
	tr.triggerStep(0)
	if tr.activeVoices() != 6 {
		t.Errorf("step 0 sounds %d voices, want chord + bass + hi-hat", tr.activeVoices())
	}
}
