package navigation

import (
	"github.com/lixenwraith/tilt-maze/maze"
)

// Unreachable marks cells the goal cannot be reached from
const Unreachable = -1

// Path is an ordered route of grid cells, excluding the start and including the goal
type Path []maze.Point

// Solve returns a shortest 4-connected route from start to the grid center.
// An empty path means the goal cannot be reached (or start is the goal), which
// callers treat as autopilot unavailable.
func Solve(g *maze.Grid, start maze.Point) Path {
	goal := g.Center()
	if g.IsWall(start) || g.IsWall(goal) || start == goal {
		return nil
	}

	w := g.Width
	idx := func(p maze.Point) int { return p.Y*w + p.X }

	// Flat parent table, -1 = unvisited
	parent := make([]int, w*g.Height)
	for i := range parent {
		parent[i] = -1
	}
	startIdx := idx(start)
	parent[startIdx] = startIdx

	queue := []maze.Point{start}
	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		if cur == goal {
			return reconstruct(parent, startIdx, idx(goal), w)
		}
		for _, n := range g.Neighbors(cur) {
			ni := idx(n)
			if parent[ni] != -1 {
				continue
			}
			parent[ni] = idx(cur)
			queue = append(queue, n)
		}
	}
	return nil
}

func reconstruct(parent []int, startIdx, goalIdx, w int) Path {
	n := 0
	for i := goalIdx; i != startIdx; i = parent[i] {
		n++
	}
	path := make(Path, n)
	for i := goalIdx; i != startIdx; i = parent[i] {
		n--
		path[n] = maze.Point{X: i % w, Y: i / w}
	}
	return path
}

// DistanceField holds BFS step counts from every cell to the goal
type DistanceField struct {
	Width, Height int
	dist          []int
}

// At returns the step count from p to the goal, Unreachable for walls and isolated cells
func (f *DistanceField) At(p maze.Point) int {
	if p.X < 0 || p.X >= f.Width || p.Y < 0 || p.Y >= f.Height {
		return Unreachable
	}
	return f.dist[p.Y*f.Width+p.X]
}

// Distances floods the grid outward from the goal
func Distances(g *maze.Grid) *DistanceField {
	f := &DistanceField{
		Width:  g.Width,
		Height: g.Height,
		dist:   make([]int, g.Width*g.Height),
	}
	for i := range f.dist {
		f.dist[i] = Unreachable
	}

	goal := g.Center()
	if g.IsWall(goal) {
		return f
	}
	f.dist[goal.Y*g.Width+goal.X] = 0

	queue := []maze.Point{goal}
	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		d := f.dist[cur.Y*g.Width+cur.X]
		for _, n := range g.Neighbors(cur) {
			ni := n.Y*g.Width + n.X
			if f.dist[ni] != Unreachable {
				continue
			}
			f.dist[ni] = d + 1
			queue = append(queue, n)
		}
	}
	return f
}

// Reachable reports whether the goal can be reached from p
func Reachable(g *maze.Grid, p maze.Point) bool {
	return Distances(g).At(p) != Unreachable
}
