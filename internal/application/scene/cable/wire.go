package cable

import (
	"image/color"
	"strings"
)

// Wire colors of an RJ45 cable. Striped wires are "white-<color>".
var wireColors = map[string]color.RGBA{
	"orange": {240, 130, 30, 255},
	"green":  {40, 170, 70, 255},
	"blue":   {40, 90, 220, 255},
	"brown":  {130, 80, 40, 255},
	"white":  {240, 240, 240, 255},
}

var colorUnknownWire = color.RGBA{160, 160, 160, 255}

// wirePaint returns the base and stripe colors of a wire.
// Solid wires have no stripe.
func wirePaint(name string) (base color.RGBA, stripe color.RGBA, striped bool) {
	if c, ok := strings.CutPrefix(name, "white-"); ok {
		s, known := wireColors[c]
		if !known {
			s = colorUnknownWire
		}
		return wireColors["white"], s, true
	}
	if c, ok := wireColors[name]; ok {
		return c, color.RGBA{}, false
	}
	return colorUnknownWire, color.RGBA{}, false
}
