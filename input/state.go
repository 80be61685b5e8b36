package input

// Direction is a tilt key axis and sign in screen terms
type Direction uint8

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
	dirCount
)

var directionNames = [dirCount]string{"up", "down", "left", "right"}

func (d Direction) String() string {
	if d >= dirCount {
		return "none"
	}
	return directionNames[d]
}

// opposite returns the direction on the same axis with the other sign
func (d Direction) opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}
