package game

import (
	"strconv"
	"strings"
)

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// inRect reports whether (x, y) lies inside the rectangle at (rx, ry) with the given size.
func inRect(x, y, rx, ry, w, h float64) bool {
	return x >= rx && x <= rx+w && y >= ry && y <= ry+h
}

// parseSize reads a font size such as "12" or "12px", falling back to def.
func parseSize(s string, def float64) float64 {
	s = strings.TrimSuffix(strings.TrimSpace(s), "px")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v <= 0 {
		return def
	}
	return v
}
