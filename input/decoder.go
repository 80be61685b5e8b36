package input

import "github.com/gdamore/tcell/v2"

// Decoder turns raw tcell events into intents
type Decoder struct {
	table *KeyTable
}

func NewDecoder(kt *KeyTable) *Decoder {
	if kt == nil {
		kt = DefaultKeyTable()
	}
	return &Decoder{table: kt}
}

// Decode returns IntentNone for events with no binding
func (d *Decoder) Decode(ev tcell.Event) Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		e, ok := d.table.Lookup(ev)
		if !ok {
			return Intent{}
		}
		return Intent{Type: e.IntentType, Dir: e.Dir, Difficulty: e.Difficulty}

	case *tcell.EventMouse:
		if ev.Buttons()&tcell.Button1 == 0 {
			return Intent{Type: IntentRelease}
		}
		x, y := ev.Position()
		return Intent{Type: IntentPointer, X: x, Y: y}

	case *tcell.EventResize:
		return Intent{Type: IntentResize}
	}
	return Intent{}
}
