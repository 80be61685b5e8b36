package input

import (
	"math"
	"testing"
	"time"

	"github.com/lixenwraith/tilt-maze/parameter"
	"github.com/lixenwraith/tilt-maze/physics"
)

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestTiltController_HeldKeyRampsAndClamps(t *testing.T) {
	c := NewTiltController()
	now := time.Unix(100, 0)
	c.Press(DirLeft, now)

	tilt := c.Update(now)
	if !near(tilt.Roll, parameter.TiltSpeed) || tilt.Pitch != 0 {
		t.Fatalf("after one tick: %+v", tilt)
	}

	// The first press bridges the repeat delay
	for i := 0; i < 30; i++ {
		now = now.Add(parameter.TickInterval)
		tilt = c.Update(now)
	}
	if !c.Held(DirLeft, now) {
		t.Fatal("key released before the repeat delay")
	}
	if tilt.Roll != parameter.MaxTilt {
		t.Errorf("roll = %v, want clamp at %v", tilt.Roll, parameter.MaxTilt)
	}
}

func TestTiltController_DecayAfterTimeout(t *testing.T) {
	c := NewTiltController()
	now := time.Unix(100, 0)
	c.Press(DirUp, now)
	for i := 0; i < 5; i++ {
		c.Update(now)
	}
	peak := c.Tilt().Pitch
	if !near(peak, -5*parameter.TiltSpeed) {
		t.Fatalf("pitch = %v", peak)
	}

	now = now.Add(parameter.KeyRepeatDelay + time.Millisecond)
	tilt := c.Update(now)
	if !near(tilt.Pitch, peak*parameter.TiltDecay) {
		t.Errorf("pitch = %v, want %v", tilt.Pitch, peak*parameter.TiltDecay)
	}
	for i := 0; i < 300; i++ {
		tilt = c.Update(now)
	}
	if tilt.Pitch != 0 {
		t.Errorf("pitch did not settle: %v", tilt.Pitch)
	}
}

func TestTiltController_RepeatUsesShortTimeout(t *testing.T) {
	c := NewTiltController()
	now := time.Unix(100, 0)
	c.Press(DirRight, now)
	// Repeat arrives while held
	now = now.Add(400 * time.Millisecond)
	c.Press(DirRight, now)

	if !c.Held(DirRight, now.Add(parameter.KeyHoldTimeout-time.Millisecond)) {
		t.Error("repeat should hold for KeyHoldTimeout")
	}
	if c.Held(DirRight, now.Add(parameter.KeyHoldTimeout)) {
		t.Error("repeat should not hold past KeyHoldTimeout")
	}
}

func TestTiltController_OppositeCancels(t *testing.T) {
	c := NewTiltController()
	now := time.Unix(100, 0)
	c.Press(DirLeft, now)
	c.Press(DirRight, now)
	if c.Held(DirLeft, now) || !c.Held(DirRight, now) {
		t.Fatal("pressing right should release left")
	}
	tilt := c.Update(now)
	if !near(tilt.Roll, -parameter.TiltSpeed) {
		t.Errorf("roll = %v", tilt.Roll)
	}
}

func TestTiltController_IndependentAxes(t *testing.T) {
	c := NewTiltController()
	now := time.Unix(100, 0)
	c.Set(physics.Tilt{Pitch: 0.1, Roll: 0.1})
	c.Press(DirDown, now)
	tilt := c.Update(now)
	if !near(tilt.Pitch, 0.1+parameter.TiltSpeed) {
		t.Errorf("held axis pitch = %v", tilt.Pitch)
	}
	if !near(tilt.Roll, 0.1*parameter.TiltDecay) {
		t.Errorf("released axis roll = %v", tilt.Roll)
	}
}

func TestTiltController_Pointer(t *testing.T) {
	c := NewTiltController()

	tests := []struct {
		name   string
		nx, ny float64
		want   physics.Tilt
	}{
		{"center", 0, 0, physics.Tilt{}},
		{"inside deadzone", 0.04, -0.049, physics.Tilt{}},
		{"right edge", 1, 0, physics.Tilt{Roll: -parameter.MaxTilt}},
		{"bottom half", 0, 0.5, physics.Tilt{Pitch: 0.5 * parameter.MaxTilt}},
		{"clamped", -3, -3, physics.Tilt{Pitch: -parameter.MaxTilt, Roll: parameter.MaxTilt}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := c.SetPointer(tc.nx, tc.ny)
			if !near(got.Pitch, tc.want.Pitch) || !near(got.Roll, tc.want.Roll) {
				t.Errorf("SetPointer(%v, %v) = %+v, want %+v", tc.nx, tc.ny, got, tc.want)
			}
		})
	}
}

func TestTiltController_PointerHoldsUntilRelease(t *testing.T) {
	c := NewTiltController()
	now := time.Unix(10, 0)
	want := c.SetPointer(0.5, 0)

	for i := 0; i < 10; i++ {
		if got := c.Update(now); got != want {
			t.Fatalf("tick %d: pointer tilt drifted to %+v", i, got)
		}
	}

	c.ReleasePointer()
	if got := c.Update(now); !near(got.Roll, want.Roll*parameter.TiltDecay) {
		t.Errorf("released roll = %v, want decay from %v", got.Roll, want.Roll)
	}

	// A key press takes over from the pointer
	c.SetPointer(0.5, 0)
	c.Press(DirUp, now)
	if got := c.Update(now); got.Pitch >= 0 || !near(got.Roll, want.Roll*parameter.TiltDecay) {
		t.Errorf("key after pointer = %+v", got)
	}
}

func TestTiltController_RelaxAndReset(t *testing.T) {
	c := NewTiltController()
	c.Set(physics.Tilt{Pitch: 1, Roll: -1})
	if c.Tilt().Pitch != parameter.MaxTilt {
		t.Fatal("Set should clamp")
	}
	got := c.Relax(parameter.VictoryTiltDecay)
	if !near(got.Pitch, parameter.MaxTilt*parameter.VictoryTiltDecay) {
		t.Errorf("relaxed pitch = %v", got.Pitch)
	}
	c.Press(DirUp, time.Unix(1, 0))
	c.Reset()
	if c.Tilt() != (physics.Tilt{}) || c.Held(DirUp, time.Unix(1, 0)) {
		t.Error("Reset left state behind")
	}
}
