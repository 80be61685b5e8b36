package parameter

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// presetFile is the on-disk layout; every field is optional and overrides the default
type presetFile struct {
	Presets map[string]rawPreset `yaml:"presets"`
}

type rawPreset struct {
	GridSize   *int     `yaml:"grid_size,omitempty"`
	Gravity    *float64 `yaml:"gravity,omitempty"`
	Friction   *float64 `yaml:"friction,omitempty"`
	LoopChance *float64 `yaml:"loop_chance,omitempty"`
}

// LoadPresets reads preset overrides from a YAML file and merges them over the defaults.
// An empty path or a missing file yields the defaults.
func LoadPresets(path string) (Presets, error) {
	if path == "" {
		return DefaultPresets(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultPresets(), nil
		}
		return nil, fmt.Errorf("read presets: %w", err)
	}
	return ParsePresets(b)
}

// ParsePresets decodes YAML preset overrides and merges them over the defaults
func ParsePresets(data []byte) (Presets, error) {
	var file presetFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode presets: %w", err)
	}

	out := DefaultPresets()
	for name, raw := range file.Presets {
		d, err := ParseDifficulty(name)
		if err != nil {
			return nil, err
		}
		merged := mergePreset(out[d], raw)
		if err := merged.Validate(); err != nil {
			return nil, fmt.Errorf("preset %s: %w", d, err)
		}
		out[d] = merged
	}
	return out, nil
}

// mergePreset overrides fields of base that raw sets
func mergePreset(base Preset, raw rawPreset) Preset {
	if raw.GridSize != nil {
		base.GridSize = *raw.GridSize
	}
	if raw.Gravity != nil {
		base.Gravity = *raw.Gravity
	}
	if raw.Friction != nil {
		base.Friction = *raw.Friction
	}
	if raw.LoopChance != nil {
		base.LoopChance = *raw.LoopChance
	}
	return base
}

// MarshalPresets encodes presets in the file layout LoadPresets reads
func MarshalPresets(ps Presets) ([]byte, error) {
	file := presetFile{Presets: make(map[string]rawPreset, len(ps))}
	for d, p := range ps {
		file.Presets[d.String()] = rawPreset{
			GridSize:   &p.GridSize,
			Gravity:    &p.Gravity,
			Friction:   &p.Friction,
			LoopChance: &p.LoopChance,
		}
	}
	return yaml.Marshal(&file)
}
