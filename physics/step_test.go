package physics

import (
	"math"
	"testing"

	"github.com/lixenwraith/tilt-maze/maze"
	"github.com/lixenwraith/tilt-maze/navigation"
	"github.com/lixenwraith/tilt-maze/parameter"
	"github.com/lixenwraith/tilt-maze/vmath"
)

func mustGrid(t *testing.T, rows ...string) *maze.Grid {
	t.Helper()
	g, err := maze.FromRows(rows...)
	if err != nil {
		t.Fatalf("FromRows: %v", err)
	}
	return g
}

// openBoard is a 7x7 board with a fully open 5x5 interior
func openBoard(t *testing.T) *maze.Grid {
	return mustGrid(t,
		"#######",
		"#.....#",
		"#.....#",
		"#.....#",
		"#.....#",
		"#.....#",
		"#######",
	)
}

func activeMarble(g *maze.Grid, p maze.Point) Marble {
	m := NewMarble(g, p)
	m.Phase = PhaseActive
	return m
}

func TestStep_LevelBoardAtRestStaysPut(t *testing.T) {
	g := openBoard(t)
	m := activeMarble(g, maze.Point{X: 1, Y: 1})
	start := m.Pos
	in := Input{Gravity: 0.022, Friction: 0.99}

	for i := 0; i < 5000; i++ {
		var res Result
		m, res = Step(m, in, g)
		if res.Bounced || res.Victory {
			t.Fatalf("tick %d: unexpected result %+v", i, res)
		}
	}
	if m.Pos != start {
		t.Errorf("position drifted: %+v -> %+v", start, m.Pos)
	}
	if m.Vel != (vmath.Vec2{}) {
		t.Errorf("velocity drifted: %+v", m.Vel)
	}
}

func TestStep_TiltAcceleratesAndDamps(t *testing.T) {
	g := openBoard(t)
	m := activeMarble(g, maze.Point{X: 1, Y: 3})
	start := m.Pos

	m, res := Step(m, Input{Tilt: Tilt{Pitch: 0, Roll: -0.1}, Gravity: 0.02, Friction: 0.98}, g)

	want := math.Sin(0.1) * 0.02 * 0.98
	if math.Abs(m.Vel.X-want) > 1e-12 {
		t.Errorf("vel.X = %.9f, want %.9f", m.Vel.X, want)
	}
	if math.Abs(math.Sin(0.1)*0.02-0.001997) > 1e-6 {
		t.Fatal("reference value changed")
	}
	if m.Vel.Z != 0 {
		t.Errorf("vel.Z = %v, want 0", m.Vel.Z)
	}
	if math.Abs(m.Pos.X-(start.X+want)) > 1e-12 || m.Pos.Z != start.Z {
		t.Errorf("pos = %+v, want X %.9f", m.Pos, start.X+want)
	}
	if res.Tilt != (Tilt{Pitch: 0, Roll: -0.1}) {
		t.Errorf("applied tilt = %+v", res.Tilt)
	}
}

func TestStep_PitchMovesAlongZ(t *testing.T) {
	g := openBoard(t)
	m := activeMarble(g, maze.Point{X: 1, Y: 3})
	m, _ = Step(m, Input{Tilt: Tilt{Pitch: 0.1}, Gravity: 0.02, Friction: 1}, g)
	if m.Vel.Z <= 0 || m.Vel.X != 0 {
		t.Errorf("positive pitch should roll toward +Z, vel = %+v", m.Vel)
	}
}

func TestStep_TiltClampedToMax(t *testing.T) {
	g := openBoard(t)
	m := activeMarble(g, maze.Point{X: 1, Y: 3})
	m, res := Step(m, Input{Tilt: Tilt{Pitch: 2, Roll: -2}, Gravity: 0.02, Friction: 1}, g)

	if res.Tilt.Pitch != parameter.MaxTilt || res.Tilt.Roll != -parameter.MaxTilt {
		t.Errorf("applied tilt = %+v, want ±%v", res.Tilt, parameter.MaxTilt)
	}
	want := math.Sin(parameter.MaxTilt) * 0.02
	if math.Abs(m.Vel.X-want) > 1e-12 || math.Abs(m.Vel.Z-want) > 1e-12 {
		t.Errorf("vel = %+v, want %v on both axes", m.Vel, want)
	}
}

func TestStep_WallBounce(t *testing.T) {
	g := mustGrid(t,
		"#####",
		"#...#",
		"#.#.#",
		"#...#",
		"#####",
	)
	for _, friction := range []float64{0.98, 0.985, 0.99} {
		m := activeMarble(g, maze.Point{X: 3, Y: 1})
		m.Pos.X += 0.3
		m.Vel = vmath.Vec2{X: 0.05}

		m, res := Step(m, Input{Gravity: 0.016, Friction: friction}, g)
		if !res.Bounced {
			t.Fatalf("friction %v: expected bounce", friction)
		}
		if m.Vel.X < -0.02 || m.Vel.X > -0.015 {
			t.Errorf("friction %v: vel.X = %v, want in [-0.02, -0.015]", friction, m.Vel.X)
		}
		if g.IsWall(m.Cell(g)) {
			t.Errorf("marble inside wall at %+v", m.Pos)
		}
		if ahead := m.Pos.X + parameter.MarblePadding; ahead >= 1.5 {
			t.Errorf("wall lookahead %v past wall face 1.5", ahead)
		}
	}
}

func TestStep_SlideLosesOnlyBlockedAxis(t *testing.T) {
	g := mustGrid(t,
		"#######",
		"#.....#",
		"#.....#",
		"#.....#",
		"#######",
	)
	// Row 1 runs along the top wall; push up-right into it
	m := activeMarble(g, maze.Point{X: 1, Y: 1})
	m.Pos.Z -= 0.3
	m.Vel = vmath.Vec2{X: 0.05, Z: -0.05}

	m, res := Step(m, Input{Gravity: 0.016, Friction: 1}, g)
	if !res.Bounced {
		t.Fatal("expected bounce on Z")
	}
	if m.Vel.X != 0.05 {
		t.Errorf("free axis velocity changed: %v", m.Vel.X)
	}
	if m.Vel.Z <= 0 {
		t.Errorf("blocked axis should reverse, vel.Z = %v", m.Vel.Z)
	}
}

func TestStep_OffGridIsWall(t *testing.T) {
	g := mustGrid(t,
		"...",
		"...",
		"...",
	)
	m := activeMarble(g, maze.Point{X: 2, Y: 0})
	m.Vel = vmath.Vec2{X: 0.3}
	for i := 0; i < 200; i++ {
		m, _ = Step(m, Input{Tilt: Tilt{Roll: -parameter.MaxTilt}, Gravity: 0.02, Friction: 0.99}, g)
		if !g.InBounds(m.Cell(g)) {
			t.Fatalf("tick %d: marble left the board at %+v", i, m.Pos)
		}
	}
}

func TestStep_ContainmentUnderRandomTilt(t *testing.T) {
	for seed := uint64(1); seed <= 6; seed++ {
		g, err := maze.Generate(25, float64(seed%2)*0.2, maze.NewRand(seed))
		if err != nil {
			t.Fatal(err)
		}
		rng := maze.NewRand(seed * 31)
		m := activeMarble(g, navigation.SelectStart(g, rng))
		tilt := Tilt{}
		for i := 0; i < 4000 && !m.Falling(); i++ {
			if i%40 == 0 {
				tilt = Tilt{
					Pitch: (rng.Float64()*2 - 1) * parameter.MaxTilt,
					Roll:  (rng.Float64()*2 - 1) * parameter.MaxTilt,
				}
			}
			m, _ = Step(m, Input{Tilt: tilt, Gravity: 0.022, Friction: 0.99}, g)
			if g.IsWall(m.Cell(g)) {
				t.Fatalf("seed %d tick %d: marble in wall cell %v", seed, i, m.Cell(g))
			}
		}
	}
}

func TestStep_InactivePhasesDoNotMove(t *testing.T) {
	g := openBoard(t)
	for _, phase := range []Phase{PhaseIdle, PhaseFalling} {
		m := NewMarble(g, maze.Point{X: 1, Y: 1})
		m.Phase = phase
		m.Vel = vmath.Vec2{X: 0.1}
		next, res := Step(m, Input{Tilt: Tilt{Pitch: 0.2}, Gravity: 0.02, Friction: 0.98}, g)
		if next.Pos != m.Pos || next.Vel != m.Vel {
			t.Errorf("%s marble moved: %+v", phase, next)
		}
		if res.Victory || res.Bounced {
			t.Errorf("%s marble result %+v", phase, res)
		}
	}
}

func TestStep_VictoryStopsMarble(t *testing.T) {
	g := openBoard(t)
	m := activeMarble(g, maze.Point{X: 3, Y: 1})
	in := Input{Tilt: Tilt{Pitch: parameter.MaxTilt}, Gravity: 0.016, Friction: 0.985}

	won := -1
	for i := 0; i < 1000; i++ {
		var res Result
		m, res = Step(m, in, g)
		if res.Victory {
			if won >= 0 {
				t.Fatalf("victory reported twice (ticks %d and %d)", won, i)
			}
			won = i
		}
	}
	if won < 0 {
		t.Fatalf("marble never reached goal, pos %+v", m.Pos)
	}
	if !m.Falling() || m.Vel != (vmath.Vec2{}) {
		t.Errorf("after victory: phase %s vel %+v", m.Phase, m.Vel)
	}
	if vmath.V2Mag(m.Pos) >= parameter.VictoryRadius {
		t.Errorf("dropped outside victory radius at %+v", m.Pos)
	}
}
