package maze

import (
	"math/rand/v2"
	"time"
)

// MinSize is the smallest grid that can hold a carved room plus the cleared goal block
const MinSize = 5

// Carving steps: 2-cell jumps between rooms, the corridor is the midpoint
var carveDirs = [4]Point{{0, -2}, {0, 2}, {-2, 0}, {2, 0}}

// Rand is the randomness consumed by generation and start selection
// *math/rand/v2.Rand satisfies it
type Rand interface {
	IntN(n int) int
	Float64() float64
	Shuffle(n int, swap func(i, j int))
}

// NewRand returns a PCG-backed source; seed 0 picks a time-based seed
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Generate creates a square maze for a tilting board.
// Even sizes are bumped to the next odd value. A perfect maze is carved from (1,1),
// loopChance > 0 opens extra walls to add cycles, and the 3x3 block around the
// center (the goal hole) is always cleared.
func Generate(size int, loopChance float64, rng Rand) (*Grid, error) {
	if size < MinSize {
		return nil, &ConfigurationError{Size: size}
	}
	if rng == nil {
		rng = NewRand(0)
	}

	// 1. Topology: odd size so rooms sit on odd coordinates
	n := ensureOdd(size)
	g := newGrid(n, n)

	// 2. Core generation (recursive backtracker on an explicit stack)
	carve(g, Point{1, 1}, rng)

	// 3. Loops
	if loopChance > 0 {
		addLoops(g, loopChance, rng)
	}

	// 4. Goal block
	clearCenter(g)

	return g, nil
}

// --- Core Algorithms ---

// carveFrame is one level of the backtracker: the room and its remaining directions
type carveFrame struct {
	at   Point
	dirs [4]Point
	next int
}

func newCarveFrame(at Point, rng Rand) carveFrame {
	f := carveFrame{at: at, dirs: carveDirs}
	rng.Shuffle(len(f.dirs), func(i, j int) {
		f.dirs[i], f.dirs[j] = f.dirs[j], f.dirs[i]
	})
	return f
}

// carve visits rooms in the same order a recursive backtracker would: each room
// shuffles its directions once and resumes them after returning from a child.
func carve(g *Grid, start Point, rng Rand) {
	g.set(start, Passage)
	stack := []carveFrame{newCarveFrame(start, rng)}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next == len(top.dirs) {
			stack = stack[:len(stack)-1]
			continue
		}

		d := top.dirs[top.next]
		top.next++

		nx, ny := top.at.X+d.X, top.at.Y+d.Y
		// Leave 1 cell border for walls
		if nx <= 0 || nx >= g.Width-1 || ny <= 0 || ny >= g.Height-1 {
			continue
		}
		if g.cells[ny][nx] != Wall {
			continue
		}

		g.cells[top.at.Y+d.Y/2][top.at.X+d.X/2] = Passage
		g.cells[ny][nx] = Passage
		stack = append(stack, newCarveFrame(Point{nx, ny}, rng))
	}
}

// addLoops opens interior walls that already touch two or more passages.
// Cells opened earlier in the pass count as passages for later cells.
func addLoops(g *Grid, chance float64, rng Rand) {
	for y := 1; y < g.Height-1; y++ {
		for x := 1; x < g.Width-1; x++ {
			if g.cells[y][x] != Wall || rng.Float64() >= chance {
				continue
			}
			open := 0
			for _, d := range neighbors4 {
				if g.cells[y+d.Y][x+d.X] == Passage {
					open++
				}
			}
			if open >= 2 {
				g.cells[y][x] = Passage
			}
		}
	}
}

func clearCenter(g *Grid) {
	c := g.Center()
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			g.cells[c.Y+dy][c.X+dx] = Passage
		}
	}
}

// --- Helpers ---

func ensureOdd(n int) int {
	if n%2 == 0 {
		return n + 1
	}
	return n
}
