package styled

import "strings"

// PaletteColor is an entry of the fixed color palette. Annotations of kind
// Color select an entry by their Parameter.
type PaletteColor struct {
	Name string // HTML basic color keyword
	Hex  string // #rrggbb
}

// Palette holds the 16 basic HTML colors, in the order of the classic
// 16-color console palette (dark colors first, then their bright variants).
var Palette = [...]PaletteColor{
	{"black", "#000000"},
	{"maroon", "#800000"},
	{"green", "#008000"},
	{"olive", "#808000"},
	{"navy", "#000080"},
	{"purple", "#800080"},
	{"teal", "#008080"},
	{"silver", "#c0c0c0"},
	{"gray", "#808080"},
	{"red", "#ff0000"},
	{"lime", "#00ff00"},
	{"yellow", "#ffff00"},
	{"blue", "#0000ff"},
	{"fuchsia", "#ff00ff"},
	{"aqua", "#00ffff"},
	{"white", "#ffffff"},
}

// ColorIndex looks up a palette entry by color name or by hex notation
// (case-insensitive). It returns false for colors not in the palette.
func ColorIndex(color string) (uint32, bool) {
	color = strings.ToLower(strings.TrimSpace(color))
	if color == "grey" {
		color = "gray"
	}
	for i, c := range Palette {
		if c.Name == color || c.Hex == color {
			return uint32(i), true
		}
	}
	return 0, false
}
