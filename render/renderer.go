package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tilt-maze/engine"
	"github.com/lixenwraith/tilt-maze/maze"
	"github.com/lixenwraith/tilt-maze/parameter"
	"github.com/lixenwraith/tilt-maze/physics"
)

// Glyphs
const (
	runeHalfTop     = '▀'
	runeGoal        = '◎'
	runeMarbleLeft  = '◖'
	runeMarbleRight = '◗'
	runeMarbleHalf  = '●'
)

// Renderer draws snapshots onto a tcell screen and remembers the last layout
// so pointer events can be mapped back onto the board.
type Renderer struct {
	layout Layout
	width  int
	height int

	theme  Theme
	marble MarbleColor
}

func NewRenderer() *Renderer {
	return &Renderer{theme: ThemeWood, marble: MarbleBlue}
}

func (r *Renderer) Theme() Theme             { return r.theme }
func (r *Renderer) MarbleColor() MarbleColor { return r.marble }

func (r *Renderer) SetTheme(t Theme) {
	if t < themeCount {
		r.theme = t
	}
}

func (r *Renderer) SetMarbleColor(c MarbleColor) {
	if c < marbleColorCount {
		r.marble = c
	}
}

// CycleTheme switches to the next board theme and returns it
func (r *Renderer) CycleTheme() Theme {
	r.theme = (r.theme + 1) % themeCount
	return r.theme
}

// CycleMarbleColor switches to the next marble finish and returns it
func (r *Renderer) CycleMarbleColor() MarbleColor {
	r.marble = (r.marble + 1) % marbleColorCount
	return r.marble
}

// Layout returns the placement used by the last Draw
func (r *Renderer) Layout() Layout {
	return r.layout
}

// Pointer normalizes a screen position against the last drawn board
func (r *Renderer) Pointer(sx, sy int) (nx, ny float64, ok bool) {
	return r.layout.Normalize(sx, sy)
}

// Draw renders one frame and shows it
func (r *Renderer) Draw(scr tcell.Screen, s engine.Snapshot) {
	r.width, r.height = scr.Size()
	bg := style(RgbOverlayText, RgbBackground)
	scr.Fill(' ', bg)

	if s.Grid != nil {
		r.layout = NewLayout(r.width, r.height, s.Grid)
	} else {
		r.layout = Layout{}
	}

	if r.layout.Fits() {
		r.drawBoard(scr, s)
		r.drawGauge(scr, s.Tilt)
	} else if s.Grid != nil {
		msg := "terminal too small"
		drawText(scr, (r.width-len(msg))/2, r.height/2, msg, bg)
	}

	r.drawStatus(scr, s)
	r.drawHelp(scr, s)
	r.drawOverlay(scr, s)
	scr.Show()
}

// boardColors resolves the color of every maze cell for this frame
type boardColors struct {
	s      *engine.Snapshot
	floor  RGB
	wall   RGB
	onPath map[maze.Point]bool
}

func newBoardColors(s *engine.Snapshot, pal boardPalette) boardColors {
	// Light falls from the side the board is raised on
	shade := (tiltShade(s.Tilt.Roll, parameter.MaxTilt) + tiltShade(-s.Tilt.Pitch, parameter.MaxTilt)) / 2
	bc := boardColors{s: s, floor: pal.floor, wall: Lerp(pal.wallDark, pal.wallLight, shade)}
	if s.Autopilot && s.Cursor < len(s.Path) {
		bc.onPath = make(map[maze.Point]bool, len(s.Path)-s.Cursor)
		for _, p := range s.Path[s.Cursor:] {
			bc.onPath[p] = true
		}
	}
	return bc
}

func (bc boardColors) at(p maze.Point) RGB {
	s := bc.s
	switch {
	case !s.Grid.InBounds(p):
		return RgbBackground
	case s.Grid.IsWall(p):
		return bc.wall
	case p == s.Goal:
		return RgbGoal
	case bc.onPath[p]:
		return Blend(bc.floor, RgbPath, 0.45)
	case p == s.Start && (s.State == engine.StateIntro || s.State == engine.StateStartMenu):
		return RgbStart
	}
	return bc.floor
}

func (r *Renderer) drawBoard(scr tcell.Screen, s engine.Snapshot) {
	bc := newBoardColors(&s, r.theme.palette())
	l := r.layout
	g := s.Grid

	if l.Mode == BoardScaleHalf {
		for row := 0; row < l.Rows; row++ {
			for x := 0; x < g.Width; x++ {
				top := bc.at(maze.Point{X: x, Y: 2 * row})
				bottom := bc.at(maze.Point{X: x, Y: 2*row + 1})
				scr.SetContent(l.OriginX+x, l.OriginY+row, runeHalfTop, nil, style(top, bottom))
			}
		}
		r.drawMarbleHalf(scr, s, bc)
		return
	}

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			p := maze.Point{X: x, Y: y}
			c := bc.at(p)
			sx, sy := l.CellOrigin(p)
			first := ' '
			if p == s.Goal {
				first = runeGoal
			}
			st := style(RgbGoalRim, c)
			scr.SetContent(sx, sy, first, nil, st)
			scr.SetContent(sx+1, sy, ' ', nil, st)
		}
	}
	r.drawMarbleFull(scr, s, bc)
}

// marbleColor darkens the marble while it drops into the hole
func (r *Renderer) marbleColor(s engine.Snapshot) RGB {
	c := r.marble.RGB()
	if s.MarblePhase == physics.PhaseFalling {
		return Scale(c, 0.55)
	}
	return c
}

func (r *Renderer) drawMarbleFull(scr tcell.Screen, s engine.Snapshot, bc boardColors) {
	l := r.layout
	x, y := l.WorldToScreen(s.Grid, s.MarblePos)
	fg := r.marbleColor(s)
	for i, ch := range [2]rune{runeMarbleLeft, runeMarbleRight} {
		sx := x + i
		cell, ok := l.ScreenToBoard(sx, y)
		if !ok {
			continue
		}
		scr.SetContent(sx, y, ch, nil, style(fg, bc.at(cell)))
	}
}

func (r *Renderer) drawMarbleHalf(scr tcell.Screen, s engine.Snapshot, bc boardColors) {
	l := r.layout
	cell := s.MarbleCell
	if !s.Grid.InBounds(cell) {
		return
	}
	sx, sy := l.CellOrigin(cell)
	top, bottom := bc.at(maze.Point{X: cell.X, Y: cell.Y &^ 1}), bc.at(maze.Point{X: cell.X, Y: cell.Y | 1})
	if cell.Y&1 == 0 {
		top = r.marbleColor(s)
	} else {
		bottom = r.marbleColor(s)
	}
	scr.SetContent(sx, sy, runeHalfTop, nil, style(top, bottom))
}

// drawGauge shows where the marble is being pushed, right of the board when there is room
func (r *Renderer) drawGauge(scr tcell.Screen, t physics.Tilt) {
	const w, h = 9, 5
	l := r.layout
	x0 := l.OriginX + l.Cols + 2
	if x0+w > r.width {
		return
	}
	y0 := l.OriginY
	frame := style(RgbGaugeFrame, RgbBackground)
	drawText(scr, x0+2, y0, "tilt", style(RgbHelpText, RgbBackground))
	for y := 1; y <= h; y++ {
		for x := 0; x < w; x++ {
			ch := '·'
			if x == w/2 && y == h/2+1 {
				ch = '+'
			}
			scr.SetContent(x0+x, y0+y, ch, nil, frame)
		}
	}

	// Positive roll sends the marble toward -X, positive pitch toward +Z
	dx := roundToInt(-t.Roll / parameter.MaxTilt * float64(w/2))
	dy := roundToInt(t.Pitch / parameter.MaxTilt * float64(h/2))
	scr.SetContent(x0+w/2+dx, y0+h/2+1+dy, '●', nil, style(RgbGaugeDot, RgbBackground))
}

func roundToInt(v float64) int {
	if v < 0 {
		return -int(-v + 0.5)
	}
	return int(v + 0.5)
}

func style(fg, bg RGB) tcell.Style {
	return tcell.StyleDefault.Foreground(fg.Color()).Background(bg.Color())
}

// drawText writes s starting at x and returns the column after it
func drawText(scr tcell.Screen, x, y int, s string, st tcell.Style) int {
	for _, ch := range s {
		scr.SetContent(x, y, ch, nil, st)
		x++
	}
	return x
}
