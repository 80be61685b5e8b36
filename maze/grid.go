package maze

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/tilt-maze/vmath"
)

// Cell is the content of one grid square
type Cell uint8

// Cell types
const (
	Wall Cell = iota
	Passage
)

// Point is an integer grid coordinate, X is the column and Y the row
type Point struct {
	X, Y int
}

func (p Point) Add(o Point) Point { return Point{p.X + o.X, p.Y + o.Y} }

// Orthogonal unit steps
var neighbors4 = [4]Point{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}

// Grid is an immutable maze board, indexed [y][x]
type Grid struct {
	Width, Height int
	cells         [][]Cell
}

func newGrid(w, h int) *Grid {
	cells := make([][]Cell, h)
	for y := range cells {
		cells[y] = make([]Cell, w)
		for x := range cells[y] {
			cells[y][x] = Wall
		}
	}
	return &Grid{Width: w, Height: h, cells: cells}
}

// FromRows builds a grid from text rows, '#' is a wall and anything else a passage
func FromRows(rows ...string) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("maze: empty grid")
	}
	w := len(rows[0])
	g := newGrid(w, len(rows))
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("maze: row %d has width %d, want %d", y, len(row), w)
		}
		for x := 0; x < w; x++ {
			if row[x] != '#' {
				g.cells[y][x] = Passage
			}
		}
	}
	return g, nil
}

func (g *Grid) set(p Point, c Cell) {
	g.cells[p.Y][p.X] = c
}

// InBounds reports whether p indexes a cell of the grid
func (g *Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// At returns the cell at p; off-grid reads as Wall
func (g *Grid) At(p Point) Cell {
	if !g.InBounds(p) {
		return Wall
	}
	return g.cells[p.Y][p.X]
}

// IsWall reports whether p blocks the marble, off-grid always blocks
func (g *Grid) IsWall(p Point) bool {
	return g.At(p) == Wall
}

// Center is the goal cell
func (g *Grid) Center() Point {
	return Point{g.Width / 2, g.Height / 2}
}

// HalfExtent is the world offset of grid cell (0,0) from the board origin
func (g *Grid) HalfExtent() (halfW, halfH float64) {
	return float64(g.Width-1) / 2, float64(g.Height-1) / 2
}

// ToWorld maps a grid cell to its center in world space, the goal lands on the origin
func (g *Grid) ToWorld(p Point) vmath.Vec2 {
	halfW, halfH := g.HalfExtent()
	return vmath.Vec2{X: float64(p.X) - halfW, Z: float64(p.Y) - halfH}
}

// ToGrid returns the cell a world position rounds into; the result may be off-grid
func (g *Grid) ToGrid(v vmath.Vec2) Point {
	halfW, halfH := g.HalfExtent()
	return Point{vmath.RoundHalfUp(v.X + halfW), vmath.RoundHalfUp(v.Z + halfH)}
}

// Neighbors returns the in-bounds passage cells orthogonally adjacent to p,
// in down, up, right, left order
func (g *Grid) Neighbors(p Point) []Point {
	out := make([]Point, 0, 4)
	for _, d := range [4]Point{{0, 1}, {0, -1}, {1, 0}, {-1, 0}} {
		n := p.Add(d)
		if g.InBounds(n) && g.cells[n.Y][n.X] == Passage {
			out = append(out, n)
		}
	}
	return out
}

// String draws the grid with '#' for walls and '.' for passages
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.Width + 1) * g.Height)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.cells[y][x] == Wall {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
