package maze

import (
	"testing"

	"github.com/lixenwraith/tilt-maze/vmath"
)

func TestFromRows(t *testing.T) {
	g, err := FromRows(
		"#####",
		"#...#",
		"#.#.#",
		"#...#",
		"#####",
	)
	if err != nil {
		t.Fatal(err)
	}
	if g.Width != 5 || g.Height != 5 {
		t.Fatalf("got %dx%d", g.Width, g.Height)
	}
	if !g.IsWall(Point{2, 2}) || g.IsWall(Point{1, 1}) {
		t.Error("cells decoded incorrectly")
	}
	if got := g.String(); got != "#####\n#...#\n#.#.#\n#...#\n#####\n" {
		t.Errorf("String() = %q", got)
	}

	if _, err := FromRows("###", "##"); err == nil {
		t.Error("ragged rows should fail")
	}
	if _, err := FromRows(); err == nil {
		t.Error("empty grid should fail")
	}
}

func TestGrid_OffGridIsWall(t *testing.T) {
	g, _ := FromRows("...", "...", "...")
	for _, p := range []Point{{-1, 0}, {0, -1}, {3, 0}, {0, 3}, {100, 100}} {
		if !g.IsWall(p) {
			t.Errorf("%v should read as wall", p)
		}
	}
}

func TestGrid_WorldMapping(t *testing.T) {
	g, err := Generate(15, 0, NewRand(1))
	if err != nil {
		t.Fatal(err)
	}
	if w := g.ToWorld(g.Center()); w != (vmath.Vec2{}) {
		t.Errorf("center maps to %+v, want origin", w)
	}
	if w := g.ToWorld(Point{0, 0}); w.X != -7 || w.Z != -7 {
		t.Errorf("corner maps to %+v", w)
	}
	for _, p := range []Point{{1, 1}, {13, 2}, {7, 7}, {0, 14}} {
		if back := g.ToGrid(g.ToWorld(p)); back != p {
			t.Errorf("round trip %v -> %v", p, back)
		}
	}
	// Sub-cell offsets stay within the cell until the half boundary
	if p := g.ToGrid(vmath.Vec2{X: 0.49, Z: -0.49}); p != g.Center() {
		t.Errorf("ToGrid near origin = %v", p)
	}
	if p := g.ToGrid(vmath.Vec2{X: 0.5}); p != (Point{8, 7}) {
		t.Errorf("ToGrid on half boundary = %v", p)
	}
}

func TestGrid_NeighborsOrder(t *testing.T) {
	g, _ := FromRows(
		"#####",
		"#...#",
		"#...#",
		"#...#",
		"#####",
	)
	got := g.Neighbors(Point{2, 2})
	want := []Point{{2, 3}, {2, 1}, {3, 2}, {1, 2}}
	if len(got) != len(want) {
		t.Fatalf("got %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("neighbor %d = %v, want %v", i, got[i], want[i])
		}
	}
	if n := g.Neighbors(Point{1, 1}); len(n) != 2 {
		t.Errorf("corner room neighbors = %v", n)
	}
}
