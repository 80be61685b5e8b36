package physics

import (
	"github.com/lixenwraith/tilt-maze/maze"
	"github.com/lixenwraith/tilt-maze/navigation"
	"github.com/lixenwraith/tilt-maze/parameter"
	"github.com/lixenwraith/tilt-maze/vmath"
)

// steer turns the current waypoint into a tilt command with proportional control.
// Walls and off-grid waypoints are skipped. Reaching a waypoint advances the cursor
// and holds the previous command for that tick. An exhausted path keeps steering
// toward its last waypoint.
// When momentum carries the marble off the route the path is solved again from the
// marble's cell; if the goal cannot be reached from there the autopilot switches off.
func steer(ap Autopilot, pos vmath.Vec2, g *maze.Grid) (Autopilot, Tilt) {
	idx, ok := ap.skipWalls(g)
	if !ok {
		return ap, ap.Tilt
	}

	if cell := g.ToGrid(pos); !ap.onCourse(g, cell, idx) {
		path := replan(g, cell)
		if len(path) == 0 {
			ap.Active = false
			ap.Tilt = Tilt{}
			return ap, ap.Tilt
		}
		ap.Path, ap.Cursor, idx = path, 0, 0
	}

	d := vmath.V2Sub(g.ToWorld(ap.Path[idx]), pos)
	if vmath.V2MagSq(d) < parameter.AutopilotReachDistSq {
		if ap.Cursor < len(ap.Path) {
			ap.Cursor++
		}
		return ap, ap.Tilt
	}

	ap.Tilt = Tilt{
		Pitch: vmath.ClampSym(d.Z*parameter.AutopilotGain, 1) * parameter.AutopilotMaxTilt,
		Roll:  -vmath.ClampSym(d.X*parameter.AutopilotGain, 1) * parameter.AutopilotMaxTilt,
	}
	return ap, ap.Tilt
}

// skipWalls moves the cursor past blocked waypoints and returns the index to steer
// toward, the last waypoint once the cursor runs off the end. ok is false when no
// usable waypoint remains.
func (a *Autopilot) skipWalls(g *maze.Grid) (int, bool) {
	for {
		idx := min(a.Cursor, len(a.Path)-1)
		if !g.IsWall(a.Path[idx]) {
			return idx, true
		}
		a.Cursor = idx + 1
		if a.Cursor >= len(a.Path) {
			return 0, false
		}
	}
}

// onCourse reports whether cell is the target waypoint, the one before it, or
// orthogonally adjacent to either. From those cells a straight push reaches the target.
func (a Autopilot) onCourse(g *maze.Grid, cell maze.Point, idx int) bool {
	if adjacent(cell, a.Path[idx]) {
		return true
	}
	return idx > 0 && !g.IsWall(a.Path[idx-1]) && adjacent(cell, a.Path[idx-1])
}

func adjacent(a, b maze.Point) bool {
	dx, dy := a.X-b.X, a.Y-b.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx+dy <= 1
}

// replan solves from cell; a marble on the goal cell keeps aiming at the hole
func replan(g *maze.Grid, cell maze.Point) navigation.Path {
	if cell == g.Center() {
		return navigation.Path{cell}
	}
	return navigation.Solve(g, cell)
}
