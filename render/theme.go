package render

import "strings"

// Theme selects the board material
type Theme uint8

const (
	ThemeWood Theme = iota
	ThemeMetal
	themeCount
)

var themeNames = [themeCount]string{"wood", "metal"}

func (t Theme) String() string {
	if t < themeCount {
		return themeNames[t]
	}
	return "unknown"
}

// MarbleColor selects the marble finish
type MarbleColor uint8

const (
	MarbleRed MarbleColor = iota
	MarbleGreen
	MarbleYellow
	MarbleBlue
	marbleColorCount
)

var marbleColorNames = [marbleColorCount]string{"red", "green", "yellow", "blue"}

func (c MarbleColor) String() string {
	if c < marbleColorCount {
		return marbleColorNames[c]
	}
	return "unknown"
}

// boardPalette is the floor and wall shading of one theme
type boardPalette struct {
	floor     RGB
	wallDark  RGB
	wallLight RGB
}

var boardPalettes = [themeCount]boardPalette{
	ThemeWood:  {floor: RgbFloor, wallDark: RgbWallDark, wallLight: RgbWallLight},
	ThemeMetal: {floor: RgbMetalFloor, wallDark: RgbMetalWallDark, wallLight: RgbMetalWallLight},
}

var marbleRGB = [marbleColorCount]RGB{
	MarbleRed:    RgbMarbleRed,
	MarbleGreen:  RgbMarbleGreen,
	MarbleYellow: RgbMarbleYellow,
	MarbleBlue:   RgbMarbleBlue,
}

func (t Theme) palette() boardPalette {
	if t < themeCount {
		return boardPalettes[t]
	}
	return boardPalettes[ThemeWood]
}

// RGB returns the marble body color
func (c MarbleColor) RGB() RGB {
	if c < marbleColorCount {
		return marbleRGB[c]
	}
	return RgbMarbleBlue
}

// ParseTheme accepts a theme name, case-insensitive
func ParseTheme(s string) (Theme, bool) {
	for i, name := range themeNames {
		if strings.EqualFold(s, name) {
			return Theme(i), true
		}
	}
	return ThemeWood, false
}

// ParseMarbleColor accepts a marble color name, case-insensitive
func ParseMarbleColor(s string) (MarbleColor, bool) {
	for i, name := range marbleColorNames {
		if strings.EqualFold(s, name) {
			return MarbleColor(i), true
		}
	}
	return MarbleBlue, false
}
