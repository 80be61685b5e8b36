package audio

import "errors"

// SoundType identifies a synthesized effect
type SoundType int

const (
	SoundFanfare SoundType = iota // Victory
	SoundKnock                    // Marble hits a wall
	SoundEngage                   // Autopilot engaged
	SoundMusic                    // Background loop while playing
	soundTypeCount
)

var soundNames = [soundTypeCount]string{"fanfare", "knock", "engage", "music"}

func (s SoundType) String() string {
	if s < 0 || s >= soundTypeCount {
		return "unknown"
	}
	return soundNames[s]
}

// ErrNotInitialized is returned when playback is requested before Initialize
var ErrNotInitialized = errors.New("audio: speaker not initialized")
