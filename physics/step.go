package physics

import (
	"math"

	"github.com/lixenwraith/tilt-maze/maze"
	"github.com/lixenwraith/tilt-maze/parameter"
	"github.com/lixenwraith/tilt-maze/vmath"
)

// Input is the per-tick control and tuning supplied by the game controller
type Input struct {
	Tilt     Tilt
	Gravity  float64
	Friction float64
}

// Result describes what happened during one tick
type Result struct {
	// Tilt is the tilt actually applied, the autopilot command when it steered
	Tilt Tilt

	Victory bool

	// Bounced is set when either axis hit a wall, BounceSpeed is the largest
	// blocked-axis speed before restitution
	Bounced     bool
	BounceSpeed float64

	// Held is set when the corner fallback discarded the tick's movement
	Held bool

	// AutopilotLost is set when the autopilot found no route from the marble's
	// cell and switched itself off
	AutopilotLost bool
}

// Step advances the marble by one fixed tick and returns the new state.
// Idle and falling marbles are returned unchanged.
func Step(m Marble, in Input, g *maze.Grid) (Marble, Result) {
	var res Result
	if m.Phase != PhaseActive {
		res.Tilt = in.Tilt.Clamp(parameter.MaxTilt)
		return m, res
	}

	tilt := in.Tilt
	if m.Autopilot.Active && len(m.Autopilot.Path) > 0 {
		m.Autopilot, tilt = steer(m.Autopilot, m.Pos, g)
		if !m.Autopilot.Active {
			res.AutopilotLost = true
			tilt = in.Tilt
		}
	}
	tilt = tilt.Clamp(parameter.MaxTilt)
	res.Tilt = tilt

	// Gravity resolved through the tilted plane, then rolling resistance
	vel := m.Vel
	vel.X += math.Sin(-tilt.Roll) * in.Gravity
	vel.Z += math.Sin(tilt.Pitch) * in.Gravity
	vel = vmath.V2Scale(vel, in.Friction)
	vel, _ = vmath.V2CapMag(vel, parameter.MarbleMaxSpeed)

	prev := m.Pos
	pos := m.Pos

	var hit bool
	speed := math.Abs(vel.X)
	pos.X, vel.X, hit = resolveAxis(g, pos, vel.X, axisX)
	if hit {
		res.Bounced = true
		res.BounceSpeed = speed
	}
	speed = math.Abs(vel.Z)
	pos.Z, vel.Z, hit = resolveAxis(g, pos, vel.Z, axisZ)
	if hit {
		res.Bounced = true
		res.BounceSpeed = math.Max(res.BounceSpeed, speed)
	}

	// Corner tunneling guard
	if g.IsWall(g.ToGrid(pos)) {
		pos = prev
		res.Held = true
	}

	m.Pos = pos
	m.Vel = vel

	if reachedGoal(g, pos) {
		m.Phase = PhaseFalling
		m.Vel = vmath.Vec2{}
		m.Autopilot.Active = false
		res.Victory = true
	}

	return m, res
}

func reachedGoal(g *maze.Grid, pos vmath.Vec2) bool {
	if vmath.V2MagSq(pos) >= parameter.VictoryRadius*parameter.VictoryRadius {
		return false
	}
	return g.ToGrid(pos) == g.Center()
}
