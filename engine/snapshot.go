package engine

import (
	"time"

	"github.com/lixenwraith/tilt-maze/maze"
	"github.com/lixenwraith/tilt-maze/navigation"
	"github.com/lixenwraith/tilt-maze/parameter"
	"github.com/lixenwraith/tilt-maze/physics"
	"github.com/lixenwraith/tilt-maze/status"
	"github.com/lixenwraith/tilt-maze/vmath"
)

// Snapshot is a read-only view of the controller for renderers and audio.
// Grid and Path are shared with the controller and must not be modified.
type Snapshot struct {
	State      State
	Difficulty parameter.Difficulty

	Grid  *maze.Grid
	Start maze.Point
	Goal  maze.Point

	MarblePos   vmath.Vec2
	MarbleCell  maze.Point
	MarblePhase physics.Phase
	Tilt        physics.Tilt

	Autopilot bool
	Path      navigation.Path
	Cursor    int

	// CellsToGoal is the corridor distance from the marble's cell, -1 if unknown
	CellsToGoal int

	IntroRemaining time.Duration
	Stats          status.Stats
	Rounds, Wins   int64
	Notice         string
}

func (g *Game) Snapshot() Snapshot {
	m := g.sim.Marble()
	cell := m.Cell(g.grid)

	s := Snapshot{
		State:       g.State(),
		Difficulty:  g.difficulty,
		Grid:        g.grid,
		Start:       g.start,
		Goal:        g.grid.Center(),
		MarblePos:   m.Pos,
		MarbleCell:  cell,
		MarblePhase: m.Phase,
		Tilt:        g.applied,
		Autopilot:   m.Autopilot.Active,
		CellsToGoal: g.distances.At(cell),
		Stats:       g.round.Snapshot(),
		Rounds:      g.round.Rounds(),
		Wins:        g.round.Wins(),
		Notice:      g.notice,
	}
	if m.Autopilot.Active {
		s.Path = m.Autopilot.Path
		s.Cursor = m.Autopilot.Cursor
	}
	if s.State == StateIntro {
		if left := parameter.IntroDuration - g.machine.TimeInState(); left > 0 {
			s.IntroRemaining = left
		}
	}
	return s
}
