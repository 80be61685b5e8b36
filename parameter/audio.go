package parameter

import "time"

// Audio
const (
	// AudioSampleRate is the speaker rate in Hz
	AudioSampleRate = 48000
	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond
	// AudioMasterVolume is the default master gain (0..1)
	AudioMasterVolume = 0.5
)

// Victory fanfare, three rising notes then a held chord
const (
	FanfareNoteDuration  = 200 * time.Millisecond
	FanfareChordDuration = 1200 * time.Millisecond
	FanfareAttack        = 50 * time.Millisecond
	// FanfareCutoffRatio sets the lowpass cutoff as a multiple of the note frequency
	FanfareCutoffRatio = 2.5
)

// Wall knock
const (
	KnockDuration = 45 * time.Millisecond
	KnockAttack   = 2 * time.Millisecond
	KnockRelease  = 35 * time.Millisecond
	// KnockMinSpeed is the blocked-axis speed below which no knock plays
	KnockMinSpeed = 0.01
	// KnockFullSpeed is the blocked-axis speed mapped to full knock volume
	KnockFullSpeed = 0.15
	// KnockCooldown rate-limits knocks while the marble grinds along a wall
	KnockCooldown = 60 * time.Millisecond
)

// Autopilot engage blip
const (
	EngageDuration = 120 * time.Millisecond
	EngageAttack   = 5 * time.Millisecond
	EngageRelease  = 80 * time.Millisecond
)

// Background music, a jazz loop that plays while the marble is in play
const (
	// MusicBPM sets one step per half second
	MusicBPM = 120
	MinBPM   = 40
	MaxBPM   = 240

	// MusicPolyphony bounds simultaneous pitched voices, the quietest is stolen
	MusicPolyphony = 8

	MusicChordDuration = 1500 * time.Millisecond
	MusicChordGain     = 0.05
	MusicBassDuration  = 400 * time.Millisecond
	MusicBassGain      = 0.1
	MusicHatDuration   = 50 * time.Millisecond
	MusicHatGain       = 0.02
	// Hi-hat pitch is drawn from [MusicHatMinFreq, MusicHatMinFreq+MusicHatFreqSpread) Hz
	MusicHatMinFreq    = 1000.0
	MusicHatFreqSpread = 5000.0

	// MusicDecayFloor is the gain every note decays to by the end of its duration
	MusicDecayFloor = 0.001
)

// SamplesPerStep returns the step length in samples at bpm, one step per beat
func SamplesPerStep(bpm, sampleRate int) int {
	if bpm <= 0 {
		return 0
	}
	return sampleRate * 60 / bpm
}
