package render

import (
	"github.com/lixenwraith/tilt-maze/maze"
	"github.com/lixenwraith/tilt-maze/vmath"
)

// BoardScale selects how maze cells map to terminal cells
type BoardScale uint8

const (
	// BoardScaleNone means the board does not fit the terminal
	BoardScaleNone BoardScale = iota
	// BoardScaleHalf packs two maze rows into one terminal row with half blocks
	BoardScaleHalf
	// BoardScaleFull draws each maze cell two columns wide, one row tall
	BoardScaleFull
)

// Rows reserved above and below the board
const (
	hudTop    = 1
	hudBottom = 1
	boardGap  = 1
)

// Layout places a grid on a screen
type Layout struct {
	Mode             BoardScale
	OriginX, OriginY int
	// Cols and Rows are the board size in terminal cells
	Cols, Rows int
	gridW      int
	gridH      int
}

// NewLayout centers g on a screenW x screenH terminal, preferring full scale
func NewLayout(screenW, screenH int, g *maze.Grid) Layout {
	availH := screenH - hudTop - hudBottom - 2*boardGap

	l := Layout{gridW: g.Width, gridH: g.Height}
	switch {
	case 2*g.Width <= screenW && g.Height <= availH:
		l.Mode = BoardScaleFull
		l.Cols, l.Rows = 2*g.Width, g.Height
	case g.Width <= screenW && (g.Height+1)/2 <= availH:
		l.Mode = BoardScaleHalf
		l.Cols, l.Rows = g.Width, (g.Height+1)/2
	default:
		return l
	}

	l.OriginX = (screenW - l.Cols) / 2
	l.OriginY = hudTop + boardGap + (availH-l.Rows)/2
	return l
}

// Fits reports whether the board can be drawn
func (l Layout) Fits() bool {
	return l.Mode != BoardScaleNone
}

// CellOrigin returns the terminal cell of p's top-left column and row
func (l Layout) CellOrigin(p maze.Point) (x, y int) {
	if l.Mode == BoardScaleHalf {
		return l.OriginX + p.X, l.OriginY + p.Y/2
	}
	return l.OriginX + 2*p.X, l.OriginY + p.Y
}

// WorldToScreen maps a world position to the terminal cell under it.
// In full scale x has half-cell resolution.
func (l Layout) WorldToScreen(g *maze.Grid, v vmath.Vec2) (x, y int) {
	halfW, halfH := g.HalfExtent()
	gx, gy := v.X+halfW, v.Z+halfH
	if l.Mode == BoardScaleHalf {
		return l.OriginX + vmath.RoundHalfUp(gx), l.OriginY + vmath.RoundHalfUp(gy)/2
	}
	return l.OriginX + vmath.RoundHalfUp(2*gx), l.OriginY + vmath.RoundHalfUp(gy)
}

// Normalize maps a terminal cell to the board-relative offset in [-1, 1] on
// each axis, where (0,0) is the board center. ok is false if nothing is drawn.
func (l Layout) Normalize(sx, sy int) (nx, ny float64, ok bool) {
	if !l.Fits() || l.Cols == 0 || l.Rows == 0 {
		return 0, 0, false
	}
	cx := float64(l.OriginX) + float64(l.Cols)/2
	cy := float64(l.OriginY) + float64(l.Rows)/2
	nx = (float64(sx) + 0.5 - cx) / (float64(l.Cols) / 2)
	ny = (float64(sy) + 0.5 - cy) / (float64(l.Rows) / 2)
	return vmath.Clamp(nx, -1, 1), vmath.Clamp(ny, -1, 1), true
}

// Contains reports whether the terminal cell lies on the board
func (l Layout) Contains(sx, sy int) bool {
	return l.Fits() && sx >= l.OriginX && sx < l.OriginX+l.Cols && sy >= l.OriginY && sy < l.OriginY+l.Rows
}

// ScreenToBoard returns the maze cell under a terminal cell
func (l Layout) ScreenToBoard(sx, sy int) (maze.Point, bool) {
	if !l.Contains(sx, sy) {
		return maze.Point{}, false
	}
	dx, dy := sx-l.OriginX, sy-l.OriginY
	if l.Mode == BoardScaleHalf {
		return maze.Point{X: dx, Y: 2 * dy}, true
	}
	return maze.Point{X: dx / 2, Y: dy}, true
}

// tiltShade maps a tilt axis to a [0, 1] lighting factor
func tiltShade(v, limit float64) float64 {
	if limit <= 0 {
		return 0.5
	}
	return 0.5 + 0.5*vmath.ClampSym(v/limit, 1)
}
