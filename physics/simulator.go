package physics

import (
	"github.com/lixenwraith/tilt-maze/maze"
	"github.com/lixenwraith/tilt-maze/navigation"
)

// Simulator owns one marble for one round and reports victory once.
// A new round creates a new Simulator.
type Simulator struct {
	grid      *maze.Grid
	marble    Marble
	onVictory func()
	won       bool
}

// NewSimulator creates an idle marble at start; onVictory may be nil
func NewSimulator(g *maze.Grid, start maze.Point, onVictory func()) *Simulator {
	return &Simulator{
		grid:      g,
		marble:    NewMarble(g, start),
		onVictory: onVictory,
	}
}

// Marble returns a copy of the current state
func (s *Simulator) Marble() Marble {
	return s.marble
}

// Grid returns the board the marble rolls on
func (s *Simulator) Grid() *maze.Grid {
	return s.grid
}

// Activate lets an idle marble start integrating; other phases are unchanged
func (s *Simulator) Activate() {
	if s.marble.Phase == PhaseIdle {
		s.marble.Phase = PhaseActive
	}
}

// Step runs one tick and fires the victory callback on the tick the marble drops
func (s *Simulator) Step(in Input) Result {
	var res Result
	s.marble, res = Step(s.marble, in, s.grid)
	if res.Victory && !s.won {
		s.won = true
		if s.onVictory != nil {
			s.onVictory()
		}
	}
	return res
}

// EngageAutopilot starts steering along path; an empty path leaves it off
func (s *Simulator) EngageAutopilot(path navigation.Path) bool {
	if len(path) == 0 || s.marble.Phase == PhaseFalling {
		return false
	}
	s.marble.Autopilot = Autopilot{Active: true, Path: path}
	return true
}

// DisengageAutopilot returns control to manual tilt
func (s *Simulator) DisengageAutopilot() {
	s.marble.Autopilot = Autopilot{}
}
