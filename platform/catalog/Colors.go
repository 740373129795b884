package catalog

import "math/rand/v2"

const defaultColorHex = "#9E9E9E"

var colorNames = []string{"Green", "Red", "Blue", "Black", "Pink", "Aqua", "Orange", "White"}

var colorHex = map[string]string{
	"Green":  "#4CAF50",
	"Red":    "#F44336",
	"Blue":   "#2196F3",
	"Black":  "#212121",
	"Pink":   "#E91E63",
	"Aqua":   "#00BCD4",
	"Orange": "#FF9800",
	"White":  "#FFFFFF",
}

func Colors() []string {
	return append([]string(nil), colorNames...)
}

func RandomColor(r *rand.Rand) string {
	return colorNames[r.IntN(len(colorNames))]
}

// ColorHex falls back to grey for unknown names.
func ColorHex(name string) string {
	if hex, ok := colorHex[name]; ok {
		return hex
	}
	return defaultColorHex
}
