package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tilt-maze/parameter"
)

// KeyEntry is what a bound key decodes to
type KeyEntry struct {
	IntentType IntentType
	Dir        Direction
	Difficulty parameter.Difficulty
}

// KeyTable maps tcell keys and runes to entries
type KeyTable struct {
	// Non-rune keys (Ctrl+*, arrows, Enter, Esc)
	SpecialKeys map[tcell.Key]KeyEntry

	// Printable runes, matched case-insensitively
	Runes map[rune]KeyEntry
}

// DefaultKeyTable returns the default bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyCtrlC:  {IntentType: IntentQuit},
			tcell.KeyCtrlQ:  {IntentType: IntentQuit},
			tcell.KeyCtrlS:  {IntentType: IntentToggleMute},
			tcell.KeyEscape: {IntentType: IntentMenu},
			tcell.KeyEnter:  {IntentType: IntentStart},
			tcell.KeyUp:     {IntentType: IntentTilt, Dir: DirUp},
			tcell.KeyDown:   {IntentType: IntentTilt, Dir: DirDown},
			tcell.KeyLeft:   {IntentType: IntentTilt, Dir: DirLeft},
			tcell.KeyRight:  {IntentType: IntentTilt, Dir: DirRight},
		},
		Runes: map[rune]KeyEntry{
			'w': {IntentType: IntentTilt, Dir: DirUp},
			's': {IntentType: IntentTilt, Dir: DirDown},
			'a': {IntentType: IntentTilt, Dir: DirLeft},
			'd': {IntentType: IntentTilt, Dir: DirRight},
			'p': {IntentType: IntentPause},
			'r': {IntentType: IntentReset},
			'm': {IntentType: IntentMenu},
			'q': {IntentType: IntentQuit},
			' ': {IntentType: IntentAutopilot},
			't': {IntentType: IntentAutopilot},
			'b': {IntentType: IntentTheme},
			'c': {IntentType: IntentMarbleColor},
			'1': {IntentType: IntentDifficulty, Difficulty: parameter.Easy},
			'2': {IntentType: IntentDifficulty, Difficulty: parameter.Medium},
			'3': {IntentType: IntentDifficulty, Difficulty: parameter.Hard},
		},
	}
}

// Lookup resolves a key event; unbound keys report false
func (kt *KeyTable) Lookup(ev *tcell.EventKey) (KeyEntry, bool) {
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		e, ok := kt.Runes[r]
		return e, ok && e.IntentType != IntentNone
	}
	e, ok := kt.SpecialKeys[ev.Key()]
	return e, ok && e.IntentType != IntentNone
}
