package physics

import (
	"testing"

	"github.com/lixenwraith/tilt-maze/maze"
	"github.com/lixenwraith/tilt-maze/navigation"
	"github.com/lixenwraith/tilt-maze/parameter"
)

func TestSimulator_VictoryFiresOnce(t *testing.T) {
	g := openBoard(t)
	fired := 0
	sim := NewSimulator(g, maze.Point{X: 3, Y: 1}, func() { fired++ })

	in := Input{Tilt: Tilt{Pitch: parameter.MaxTilt}, Gravity: 0.016, Friction: 0.985}

	// Idle marble ignores input
	sim.Step(in)
	if sim.Marble().Pos != g.ToWorld(maze.Point{X: 3, Y: 1}) {
		t.Fatal("idle marble moved")
	}

	sim.Activate()
	for i := 0; i < 2000; i++ {
		sim.Step(in)
	}
	if fired != 1 {
		t.Errorf("victory fired %d times, want 1", fired)
	}
	if sim.Marble().Phase != PhaseFalling {
		t.Errorf("phase = %s", sim.Marble().Phase)
	}

	// Activate does not revive a fallen marble
	sim.Activate()
	if sim.Marble().Phase != PhaseFalling {
		t.Error("Activate changed a falling marble")
	}
}

func TestSimulator_Autopilot(t *testing.T) {
	g := openBoard(t)
	sim := NewSimulator(g, maze.Point{X: 1, Y: 1}, nil)

	if sim.EngageAutopilot(nil) {
		t.Error("empty path must not engage")
	}
	if sim.Marble().Autopilot.Active {
		t.Error("autopilot active after refusal")
	}

	path := navigation.Solve(g, maze.Point{X: 1, Y: 1})
	if !sim.EngageAutopilot(path) {
		t.Fatal("EngageAutopilot failed")
	}
	ap := sim.Marble().Autopilot
	if !ap.Active || ap.Cursor != 0 || len(ap.Path) != len(path) {
		t.Errorf("autopilot state %+v", ap)
	}

	sim.DisengageAutopilot()
	if sim.Marble().Autopilot.Active {
		t.Error("autopilot still active")
	}
}

func TestSimulator_PauseIsSkippingSteps(t *testing.T) {
	g := openBoard(t)
	sim := NewSimulator(g, maze.Point{X: 1, Y: 3}, nil)
	sim.Activate()
	in := Input{Tilt: Tilt{Roll: -0.1}, Gravity: 0.016, Friction: 0.985}
	for i := 0; i < 10; i++ {
		sim.Step(in)
	}
	snapshot := sim.Marble()

	// Paused: controller simply stops calling Step
	resumed := sim.Marble()
	if resumed.Pos != snapshot.Pos || resumed.Vel != snapshot.Vel {
		t.Fatal("state changed without Step")
	}

	a, _ := Step(snapshot, in, g)
	sim.Step(in)
	if sim.Marble().Pos != a.Pos {
		t.Errorf("resume diverged: %+v vs %+v", sim.Marble().Pos, a.Pos)
	}
}

func TestWaypoint(t *testing.T) {
	var ap Autopilot
	if _, ok := ap.Waypoint(); ok {
		t.Error("empty autopilot has no waypoint")
	}
	ap.Path = navigation.Path{{X: 1, Y: 1}, {X: 2, Y: 1}}
	ap.Cursor = 5
	if p, ok := ap.Waypoint(); !ok || p != (maze.Point{X: 2, Y: 1}) {
		t.Errorf("exhausted waypoint = %v %v", p, ok)
	}
}
