package navigation

import (
	"math"

	"github.com/lixenwraith/tilt-maze/maze"
	"github.com/lixenwraith/tilt-maze/parameter"
)

// SelectStart picks a marble spawn on a room cell far from the goal.
// Random draws over odd coordinates come first; when none lands far enough the
// farthest passage cell is chosen deterministically.
func SelectStart(g *maze.Grid, rng maze.Rand) maze.Point {
	if rng == nil {
		rng = maze.NewRand(0)
	}
	center := g.Center()
	minDist := float64(g.Width) * parameter.StartMinDistanceRatio

	// Rooms sit on odd coordinates in [1, size-2]
	rooms := make([]int, 0, g.Width/2)
	for i := 1; i < g.Width-1; i += 2 {
		rooms = append(rooms, i)
	}

	if len(rooms) > 0 {
		for attempt := 0; attempt < parameter.StartMaxAttempts; attempt++ {
			p := maze.Point{X: rooms[rng.IntN(len(rooms))], Y: rooms[rng.IntN(len(rooms))]}
			if g.IsWall(p) {
				continue
			}
			if distance(p, center) >= minDist {
				return p
			}
		}
	}

	return farthestPassage(g, center)
}

// farthestPassage scans row-major, strict comparison keeps the first of equals
func farthestPassage(g *maze.Grid, center maze.Point) maze.Point {
	best := center
	bestDist := -1.0
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			p := maze.Point{X: x, Y: y}
			if g.IsWall(p) {
				continue
			}
			if d := distance(p, center); d > bestDist {
				best, bestDist = p, d
			}
		}
	}
	return best
}

func distance(a, b maze.Point) float64 {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)
	return math.Sqrt(dx*dx + dy*dy)
}
