package input

import (
	"math"
	"time"

	"github.com/lixenwraith/tilt-maze/parameter"
	"github.com/lixenwraith/tilt-maze/physics"
	"github.com/lixenwraith/tilt-maze/vmath"
)

// TiltController turns discrete key presses into a smoothed board tilt.
// Terminals report presses and auto-repeats but no releases, so a key
// counts as held until its deadline passes without another press.
// A pointer tilt holds until ReleasePointer or the next key press.
type TiltController struct {
	tilt     physics.Tilt
	deadline [dirCount]time.Time
	pointer  bool
}

func NewTiltController() *TiltController {
	return &TiltController{}
}

// Press marks d held. A fresh press is held long enough to bridge the
// terminal's initial repeat delay; repeats extend by the shorter timeout.
// Pressing a direction releases its opposite.
func (c *TiltController) Press(d Direction, now time.Time) {
	if d >= dirCount {
		return
	}
	hold := parameter.KeyHoldTimeout
	if !c.Held(d, now) {
		hold = parameter.KeyRepeatDelay
	}
	c.deadline[d] = now.Add(hold)
	c.deadline[d.opposite()] = time.Time{}
	c.pointer = false
}

func (c *TiltController) Release(d Direction) {
	if d < dirCount {
		c.deadline[d] = time.Time{}
	}
}

func (c *TiltController) ReleaseAll() {
	c.deadline = [dirCount]time.Time{}
}

func (c *TiltController) Held(d Direction, now time.Time) bool {
	return d < dirCount && now.Before(c.deadline[d])
}

// Update advances one tick: held keys move their axis by TiltSpeed toward
// the limit, axes without a held key decay toward level
func (c *TiltController) Update(now time.Time) physics.Tilt {
	if c.pointer {
		return c.tilt
	}
	up, down := c.Held(DirUp, now), c.Held(DirDown, now)
	left, right := c.Held(DirLeft, now), c.Held(DirRight, now)

	// Up rolls the marble toward -Z (screen up)
	c.tilt.Pitch = stepAxis(c.tilt.Pitch, down, up)
	// Left rolls it toward -X; positive roll pushes -X
	c.tilt.Roll = stepAxis(c.tilt.Roll, left, right)
	return c.tilt
}

func stepAxis(v float64, inc, dec bool) float64 {
	switch {
	case inc && !dec:
		return math.Min(v+parameter.TiltSpeed, parameter.MaxTilt)
	case dec && !inc:
		return math.Max(v-parameter.TiltSpeed, -parameter.MaxTilt)
	default:
		v *= parameter.TiltDecay
		if math.Abs(v) < 1e-6 {
			return 0
		}
		return v
	}
}

// SetPointer maps a normalized pointer offset (each axis in [-1, 1], +x right,
// +y down) straight to tilt, ignoring offsets inside the deadzone
func (c *TiltController) SetPointer(nx, ny float64) physics.Tilt {
	nx = vmath.ClampSym(nx, 1)
	ny = vmath.ClampSym(ny, 1)
	c.ReleaseAll()
	c.pointer = true
	c.tilt = physics.Tilt{}
	if math.Abs(ny) >= parameter.PointerDeadzone {
		c.tilt.Pitch = ny * parameter.MaxTilt
	}
	if math.Abs(nx) >= parameter.PointerDeadzone {
		c.tilt.Roll = -nx * parameter.MaxTilt
	}
	return c.tilt
}

// ReleasePointer lets a pointer tilt decay like a released key
func (c *TiltController) ReleasePointer() {
	c.pointer = false
}

// Relax scales the tilt toward level, used while the victory screen shows
func (c *TiltController) Relax(factor float64) physics.Tilt {
	c.tilt = c.tilt.Scale(factor)
	return c.tilt
}

// Set overwrites the tilt, e.g. to mirror the autopilot's command
func (c *TiltController) Set(t physics.Tilt) {
	c.tilt = t.Clamp(parameter.MaxTilt)
}

func (c *TiltController) Tilt() physics.Tilt {
	return c.tilt
}

// Reset levels the board and releases all keys
func (c *TiltController) Reset() {
	c.tilt = physics.Tilt{}
	c.ReleaseAll()
	c.pointer = false
}
