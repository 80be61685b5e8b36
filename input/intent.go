package input

import "github.com/lixenwraith/tilt-maze/parameter"

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System
	IntentQuit       // q, Ctrl+C
	IntentToggleMute // Ctrl+S
	IntentResize     // Terminal resize event

	// Lifecycle
	IntentStart      // Enter on the start menu
	IntentPause      // p
	IntentReset      // r
	IntentMenu       // m, Esc
	IntentDifficulty // 1/2/3

	// Appearance
	IntentTheme       // b
	IntentMarbleColor // c

	// Control
	IntentTilt      // w/a/s/d, arrows
	IntentAutopilot // space, t
	IntentPointer   // Left-click or drag
	IntentRelease   // Mouse button released
)

// Intent is a decoded input event; only the fields relevant to Type are set
type Intent struct {
	Type       IntentType
	Dir        Direction
	Difficulty parameter.Difficulty
	// Screen cell for pointer intents
	X, Y int
}
