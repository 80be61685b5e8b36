package audio

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/tilt-maze/parameter"
)

// SoundManager owns the speaker and a mixer that effects are queued onto.
// Every method is safe to call before Initialize or after Cleanup; playback
// is then a no-op so the game runs without an audio device.
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	initialized bool
	muted       atomic.Bool

	music       *Sequencer
	musicWanted atomic.Bool

	lastKnock time.Time
	now       func() time.Time
}

func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	sm := &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
		music: NewSequencer(JazzPattern(), parameter.MusicBPM, beep.SampleRate(cfg.SampleRate), nil),
		now:   time.Now,
	}
	sm.music.SetVolume(cfg.Volume(SoundMusic))
	sm.muted.Store(!cfg.Enabled)
	return sm
}

// Initialize opens the speaker; a second call is a no-op
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}

	// The music streamer never ends, it idles silent while stopped
	sm.mixer.Add(sm.music)
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences queued effects and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

func (sm *SoundManager) SetMuted(muted bool) {
	sm.muted.Store(muted)
	sm.syncMusic()
}

func (sm *SoundManager) Muted() bool { return sm.muted.Load() }

// ToggleMute flips mute and returns the new state
func (sm *SoundManager) ToggleMute() bool {
	for {
		old := sm.muted.Load()
		if sm.muted.CompareAndSwap(old, !old) {
			sm.syncMusic()
			return !old
		}
	}
}

// SetMusic starts or stops the background loop; while muted it stays silent
// and picks up again on unmute
func (sm *SoundManager) SetMusic(on bool) {
	sm.musicWanted.Store(on)
	sm.syncMusic()
}

// MusicPlaying reports whether the background loop is audible
func (sm *SoundManager) MusicPlaying() bool {
	return sm.music.IsRunning()
}

func (sm *SoundManager) syncMusic() {
	if sm.musicWanted.Load() && !sm.muted.Load() {
		sm.music.Start()
	} else {
		sm.music.Stop()
	}
}

// PlayFanfare queues the victory call
func (sm *SoundManager) PlayFanfare() {
	sm.play(SoundFanfare, 0)
}

// PlayEngage queues the autopilot blip
func (sm *SoundManager) PlayEngage() {
	sm.play(SoundEngage, 0)
}

// PlayKnock queues a wall knock for an impact at speed.
// Grazing contacts and knocks inside the cooldown window are dropped.
func (sm *SoundManager) PlayKnock(speed float64) {
	if speed < parameter.KnockMinSpeed {
		return
	}
	sm.mu.Lock()
	now := sm.now()
	if now.Sub(sm.lastKnock) < parameter.KnockCooldown {
		sm.mu.Unlock()
		return
	}
	sm.lastKnock = now
	sm.mu.Unlock()

	sm.play(SoundKnock, speed)
}

func (sm *SoundManager) play(s SoundType, speed float64) {
	if sm.muted.Load() {
		return
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	streamer := GetSoundEffect(s, sm.cfg, speed)
	if streamer == nil {
		return
	}
	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
}

// Pending reports the number of effects still queued on the mixer, not counting music
func (sm *SoundManager) Pending() int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if !sm.initialized {
		return sm.mixer.Len()
	}
	speaker.Lock()
	defer speaker.Unlock()
	return sm.mixer.Len() - 1
}
