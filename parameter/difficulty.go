package parameter

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownDifficulty is returned when a difficulty name does not match a preset
var ErrUnknownDifficulty = errors.New("unknown difficulty")

// Difficulty selects a preset
type Difficulty uint8

const (
	Easy Difficulty = iota
	Medium
	Hard
	difficultyCount
)

var difficultyNames = [difficultyCount]string{"easy", "medium", "hard"}

func (d Difficulty) String() string {
	if d >= difficultyCount {
		return fmt.Sprintf("difficulty(%d)", d)
	}
	return difficultyNames[d]
}

// Difficulties lists all presets in menu order
func Difficulties() []Difficulty {
	return []Difficulty{Easy, Medium, Hard}
}

// ParseDifficulty resolves a case-insensitive preset name
func ParseDifficulty(s string) (Difficulty, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range difficultyNames {
		if name == s {
			return Difficulty(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDifficulty, s)
}

// Preset holds the tunables for one difficulty
type Preset struct {
	GridSize   int     `yaml:"grid_size"`
	Gravity    float64 `yaml:"gravity"`
	Friction   float64 `yaml:"friction"`
	LoopChance float64 `yaml:"loop_chance"`
}

// Validate rejects presets the generator or physics step cannot run with
func (p Preset) Validate() error {
	if p.GridSize < 5 {
		return fmt.Errorf("grid_size %d below minimum 5", p.GridSize)
	}
	if p.Gravity <= 0 {
		return fmt.Errorf("gravity %v must be positive", p.Gravity)
	}
	if p.Friction <= 0 || p.Friction > 1 {
		return fmt.Errorf("friction %v outside (0, 1]", p.Friction)
	}
	if p.LoopChance > 1 {
		return fmt.Errorf("loop_chance %v above 1", p.LoopChance)
	}
	return nil
}

// DefaultPresets returns the built-in tuning.
// Hard keeps a negative loop chance, the generator treats it as a perfect maze.
func DefaultPresets() Presets {
	return Presets{
		Easy:   {GridSize: 15, Gravity: 0.012, Friction: 0.98, LoopChance: 0.2},
		Medium: {GridSize: 25, Gravity: 0.016, Friction: 0.985, LoopChance: 0},
		Hard:   {GridSize: 37, Gravity: 0.022, Friction: 0.99, LoopChance: -0.1},
	}
}

// Presets maps each difficulty to its tuning
type Presets map[Difficulty]Preset

// Get returns the preset for d
func (ps Presets) Get(d Difficulty) (Preset, error) {
	p, ok := ps[d]
	if !ok {
		return Preset{}, fmt.Errorf("%w: %s", ErrUnknownDifficulty, d)
	}
	return p, nil
}
