package physics

import (
	"github.com/lixenwraith/tilt-maze/maze"
	"github.com/lixenwraith/tilt-maze/navigation"
	"github.com/lixenwraith/tilt-maze/vmath"
)

// Phase is the marble lifecycle; only Active integrates
type Phase uint8

const (
	PhaseIdle Phase = iota
	PhaseActive
	PhaseFalling
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseActive:
		return "active"
	case PhaseFalling:
		return "falling"
	}
	return "unknown"
}

// Tilt is the board orientation in radians.
// Positive Pitch rolls the marble toward +Z, positive Roll toward -X.
type Tilt struct {
	Pitch, Roll float64
}

// Clamp limits each axis to [-limit, limit]
func (t Tilt) Clamp(limit float64) Tilt {
	return Tilt{Pitch: vmath.ClampSym(t.Pitch, limit), Roll: vmath.ClampSym(t.Roll, limit)}
}

// Scale multiplies both axes by s
func (t Tilt) Scale(s float64) Tilt {
	return Tilt{Pitch: t.Pitch * s, Roll: t.Roll * s}
}

// Autopilot is the steering cursor over a solved path
type Autopilot struct {
	Active bool
	Path   navigation.Path
	Cursor int
	// Tilt is the last synthetic command, held while the cursor advances
	Tilt Tilt
}

// Waypoint returns the cell the cursor points at, the goal once the path is exhausted
func (a Autopilot) Waypoint() (maze.Point, bool) {
	if len(a.Path) == 0 {
		return maze.Point{}, false
	}
	i := a.Cursor
	if i >= len(a.Path) {
		i = len(a.Path) - 1
	}
	return a.Path[i], true
}

// Marble is the full simulation state of one marble instance
type Marble struct {
	Pos       vmath.Vec2
	Vel       vmath.Vec2
	Phase     Phase
	Autopilot Autopilot
}

// NewMarble places an idle marble at rest on the center of start
func NewMarble(g *maze.Grid, start maze.Point) Marble {
	return Marble{Pos: g.ToWorld(start)}
}

// Falling reports whether the marble has dropped into the goal
func (m Marble) Falling() bool {
	return m.Phase == PhaseFalling
}

// Cell returns the grid cell the marble center rounds into
func (m Marble) Cell(g *maze.Grid) maze.Point {
	return g.ToGrid(m.Pos)
}
