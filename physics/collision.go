package physics

import (
	"math"

	"github.com/lixenwraith/tilt-maze/maze"
	"github.com/lixenwraith/tilt-maze/parameter"
	"github.com/lixenwraith/tilt-maze/vmath"
)

// axis selects the component resolveAxis works on
type axis uint8

const (
	axisX axis = iota
	axisZ
)

func (a axis) get(v vmath.Vec2) float64 {
	if a == axisX {
		return v.X
	}
	return v.Z
}

func (a axis) set(v *vmath.Vec2, val float64) {
	if a == axisX {
		v.X = val
	} else {
		v.Z = val
	}
}

func (a axis) cell(p maze.Point) int {
	if a == axisX {
		return p.X
	}
	return p.Y
}

// resolveAxis moves pos along one axis by vel, returns the new coordinate, the new
// velocity on that axis and whether a wall was hit. The lookahead reaches one padding
// ahead of the center; a blocked lookahead clamps the marble edge short of the wall face
// and bounces with restitution.
func resolveAxis(g *maze.Grid, pos vmath.Vec2, vel float64, a axis) (float64, float64, bool) {
	cur := a.get(pos)
	if vel == 0 {
		return cur, 0, false
	}

	dir := vmath.Signum(vel)
	candidate := cur + vel

	ahead := pos
	a.set(&ahead, candidate+dir*parameter.MarblePadding)
	blocked := g.ToGrid(ahead)
	if !g.IsWall(blocked) {
		return candidate, vel, false
	}

	half := halfExtent(g, a)
	face := float64(a.cell(blocked)) - half - dir*0.5
	limit := face - dir*(parameter.MarblePadding+parameter.WallClearance)

	next := candidate
	if dir > 0 {
		next = math.Min(candidate, limit)
	} else {
		next = math.Max(candidate, limit)
	}
	return next, vel * parameter.Restitution, true
}

func halfExtent(g *maze.Grid, a axis) float64 {
	halfW, halfH := g.HalfExtent()
	if a == axisX {
		return halfW
	}
	return halfH
}
