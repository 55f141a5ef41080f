package game

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// labelPalette is cycled by item index for labels without their own colour.
var labelPalette = []string{
	"#23bcfe", // sky blue
	"#ff6f61", // coral
	"#6a5acd", // slate blue
	"#3cb371", // medium sea green
	"#ffcc00", // golden yellow
	"#ff1493", // deep pink
	"#20b2aa", // light sea green
	"#ff4500", // orange red
	"#9370db", // medium purple
	"#f08080", // light coral
}

// parseColor accepts "#rgb" and "#rrggbb". Anything else yields fallback.
func parseColor(hex string, fallback color.Color) color.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return fallback
	}
	return c.Clamped()
}

// labelColor picks the item's own colour if it has one, else the palette
// entry for its index, else def.
func labelColor(index int, override, def string) color.Color {
	fallback := parseColor(def, color.White)
	if override != "" {
		return parseColor(override, fallback)
	}
	if len(labelPalette) == 0 {
		return fallback
	}
	return parseColor(labelPalette[index%len(labelPalette)], fallback)
}
