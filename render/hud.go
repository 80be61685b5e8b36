package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tilt-maze/engine"
	"github.com/lixenwraith/tilt-maze/parameter"
)

func stateLabel(s engine.Snapshot) (string, RGB) {
	switch s.State {
	case engine.StatePlaying:
		if s.Autopilot {
			return "AUTOPILOT", RgbAutopilotBg
		}
		return "PLAYING", RgbStatusBg
	case engine.StatePaused:
		return "PAUSED", RgbPausedBg
	case engine.StateVictory:
		return "SOLVED", RgbVictoryBg
	case engine.StateIntro:
		return "READY", RgbStatusBg
	}
	return "MENU", RgbStatusBg
}

// drawStatus fills the top row: title, state, round stats and the notice
func (r *Renderer) drawStatus(scr tcell.Screen, s engine.Snapshot) {
	label, labelBg := stateLabel(s)
	x := drawText(scr, 0, 0, " TILT MAZE ", style(RgbStatusText, RgbStatusBg))
	x = drawText(scr, x+1, 0, " "+label+" ", style(RgbStatusText, labelBg))

	text := style(RgbOverlayText, RgbBackground)
	parts := []string{s.Difficulty.String()}
	if s.State != engine.StateStartMenu {
		parts = append(parts,
			fmt.Sprintf("%.1fs", s.Stats.Elapsed.Seconds()),
			fmt.Sprintf("bounces %d", s.Stats.Bounces))
		if s.CellsToGoal >= 0 {
			parts = append(parts, fmt.Sprintf("to goal %d", s.CellsToGoal))
		}
	}
	parts = append(parts, fmt.Sprintf("wins %d/%d", s.Wins, s.Rounds))
	x = drawText(scr, x+1, 0, " "+strings.Join(parts, "  "), text)

	if s.Notice != "" {
		nx := r.width - len(s.Notice) - 1
		if nx > x+1 {
			drawText(scr, nx, 0, s.Notice, style(RgbNotice, RgbBackground))
		}
	}
}

var helpLines = map[engine.State]string{
	engine.StateStartMenu: "enter start  1/2/3 difficulty  b board  c marble  ctrl-s mute  q quit",
	engine.StateIntro:     "enter skip  r new maze  esc menu",
	engine.StatePlaying:   "arrows/wasd or mouse tilt  space autopilot  p pause  r new maze  esc menu",
	engine.StatePaused:    "p resume  r new maze  esc menu  q quit",
	engine.StateVictory:   "r new maze  1/2/3 difficulty  esc menu  q quit",
}

func (r *Renderer) drawHelp(scr tcell.Screen, s engine.Snapshot) {
	help := helpLines[s.State]
	if help == "" || r.height < 2 {
		return
	}
	x := (r.width - len([]rune(help))) / 2
	if x < 0 {
		x = 0
	}
	drawText(scr, x, r.height-1, help, style(RgbHelpText, RgbBackground))
}

// overlayLines returns the title and body of the centered box for a state
func (r *Renderer) overlayLines(s engine.Snapshot) (string, []string) {
	switch s.State {
	case engine.StateStartMenu:
		lines := []string{
			"Tilt the board to roll the marble",
			"into the hole at the center.",
			"",
		}
		for i, d := range parameter.Difficulties() {
			mark := "  "
			if d == s.Difficulty {
				mark = "> "
			}
			lines = append(lines, fmt.Sprintf("%s%d  %s", mark, i+1, d))
		}
		lines = append(lines, "",
			fmt.Sprintf("b  board   %s", r.theme),
			fmt.Sprintf("c  marble  %s", r.marble))
		return "TILT MAZE", append(lines, "", "press enter")

	case engine.StateIntro:
		secs := int(math.Ceil(s.IntroRemaining.Seconds()))
		return "GET READY", []string{
			fmt.Sprintf("starting in %d", secs),
			"",
			"arrows or wasd tilt the board",
			"click or drag to tilt toward the pointer",
			"space hands over to the autopilot",
		}

	case engine.StatePaused:
		return "PAUSED", []string{"press p to resume"}

	case engine.StateVictory:
		lines := []string{
			fmt.Sprintf("time     %.2fs", s.Stats.Elapsed.Seconds()),
			fmt.Sprintf("bounces  %d", s.Stats.Bounces),
			fmt.Sprintf("hardest  %.2f", s.Stats.HardestHit),
		}
		if s.Stats.Assisted {
			lines = append(lines, "", "autopilot assisted")
		}
		return "SOLVED!", lines
	}
	return "", nil
}

func (r *Renderer) drawOverlay(scr tcell.Screen, s engine.Snapshot) {
	title, lines := r.overlayLines(s)
	if title == "" {
		return
	}

	w := len([]rune(title))
	for _, ln := range lines {
		w = max(w, len([]rune(ln)))
	}
	w += 4
	h := len(lines) + 4
	if w > r.width || h > r.height {
		return
	}
	x0 := (r.width - w) / 2
	y0 := (r.height - h) / 2

	border := style(RgbOverlayBorder, RgbOverlayBg)
	fill := style(RgbOverlayText, RgbOverlayBg)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			ch := ' '
			st := fill
			switch {
			case (y == 0 || y == h-1) && (x == 0 || x == w-1):
				ch, st = cornerRune(x, y), border
			case y == 0 || y == h-1:
				ch, st = '─', border
			case x == 0 || x == w-1:
				ch, st = '│', border
			}
			scr.SetContent(x0+x, y0+y, ch, nil, st)
		}
	}

	drawText(scr, x0+(w-len([]rune(title)))/2, y0+1, title, style(RgbOverlayTitle, RgbOverlayBg))
	for i, ln := range lines {
		st := fill
		if strings.HasPrefix(ln, "> ") {
			st = style(RgbSelected, RgbOverlayBg)
		}
		drawText(scr, x0+2, y0+3+i, ln, st)
	}
}

func cornerRune(x, y int) rune {
	switch {
	case x == 0 && y == 0:
		return '┌'
	case y == 0:
		return '┐'
	case x == 0:
		return '└'
	}
	return '┘'
}
