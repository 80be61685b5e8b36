package parameter

import (
	"math"
	"time"
)

// Board
const (
	// MaxTilt is the board tilt limit per axis (15 degrees)
	MaxTilt = 15 * math.Pi / 180

	// MarbleRadius in cell units, a cell is 1.0 wide
	MarbleRadius = 0.25

	// MarblePadding is how far past the center a move is checked for walls
	MarblePadding = MarbleRadius * 0.7

	// WallClearance keeps the marble edge off the wall face after a bounce
	WallClearance = 0.01

	// Restitution scales the blocked axis velocity on a wall hit
	Restitution = -0.35

	// MarbleMaxSpeed caps cells per tick so one tick never skips a whole cell
	MarbleMaxSpeed = 0.8

	// VictoryRadius is the distance from the hole center where the marble drops in
	VictoryRadius = 0.38
)

// Autopilot steering
const (
	// AutopilotMaxTilt is the tilt used at full steering deflection
	AutopilotMaxTilt = 0.25

	// AutopilotGain converts cell error into steering deflection before clamping to [-1, 1]
	AutopilotGain = 6.0

	// AutopilotReachDistSq advances to the next waypoint inside this squared distance
	AutopilotReachDistSq = 0.2
)

// Manual tilt smoothing, values are per tick
const (
	// TiltSpeed is the per-tick increment while a direction key is held
	TiltSpeed = 0.02

	// TiltDecay relaxes an axis without input toward level
	TiltDecay = 0.88

	// VictoryTiltDecay relaxes the board after the marble drops
	VictoryTiltDecay = 0.9

	// PointerDeadzone is the normalized pointer offset ignored around the screen center
	PointerDeadzone = 0.05

	// KeyHoldTimeout releases a key when the terminal stops repeating it
	KeyHoldTimeout = 150 * time.Millisecond

	// KeyRepeatDelay covers the gap between a first press and the terminal's first repeat
	KeyRepeatDelay = 500 * time.Millisecond
)

// Start selection
const (
	// StartMaxAttempts bounds random draws before the farthest-cell fallback
	StartMaxAttempts = 500

	// StartMinDistanceRatio is the minimum spawn distance from the goal as a fraction of grid width
	StartMinDistanceRatio = 0.4
)

// Timing
const (
	// TickInterval is the fixed physics step
	TickInterval = 16 * time.Millisecond

	// MaxTicksPerFrame drops backlog beyond this many steps per frame
	MaxTicksPerFrame = 5

	// FrameInterval is the render cadence
	FrameInterval = 16 * time.Millisecond

	// IntroDuration is how long the intro state lasts before play begins
	IntroDuration = 8 * time.Second
)
