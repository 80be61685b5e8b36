package audio

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/lixenwraith/tilt-maze/parameter"
	"github.com/lixenwraith/tilt-maze/vmath"
)

// AudioConfig holds playback settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64
	EffectVolumes [soundTypeCount]float64
	SampleRate    int
}

// DefaultAudioConfig returns the built-in mix
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:       true,
		MasterVolume:  parameter.AudioMasterVolume,
		EffectVolumes: [soundTypeCount]float64{1.0, 0.6, 0.4, 0.8},
		SampleRate:    parameter.AudioSampleRate,
	}
}

// Volume returns the effective gain for s
func (c *AudioConfig) Volume(s SoundType) float64 {
	if s < 0 || s >= soundTypeCount {
		return 0
	}
	return c.EffectVolumes[s] * c.MasterVolume
}

// LoadAudioConfig overlays environment settings on the defaults.
// Malformed values are ignored.
func LoadAudioConfig() *AudioConfig {
	cfg := DefaultAudioConfig()

	if enabled := os.Getenv("TILT_MAZE_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// 0-100
	if volume := os.Getenv("TILT_MAZE_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = vmath.Clamp(float64(val)/100.0, 0, 1)
		}
	}

	// JSON object keyed by sound name, e.g. {"knock":0.3}
	if effectVols := os.Getenv("TILT_MAZE_SFX_VOLUMES"); effectVols != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(effectVols), &volumes); err == nil {
			for s := SoundType(0); s < soundTypeCount; s++ {
				if v, ok := volumes[s.String()]; ok {
					cfg.EffectVolumes[s] = vmath.Clamp(v, 0, 1)
				}
			}
		}
	}

	if sampleRate := os.Getenv("TILT_MAZE_SAMPLE_RATE"); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	return cfg
}
