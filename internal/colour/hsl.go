package colour

import (
	"math"
)

// HSL holds hue in degrees [0, 360), saturation [0, 1] and lightness [0, 1].
type HSL struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
}

// RGBToHSL converts normalised RGB channels (0-1) to HSL.
// Achromatic input (max == min) yields hue 0 and saturation 0.
func RGBToHSL(r, g, b float64) HSL {
	maxVal := math.Max(r, math.Max(g, b))
	minVal := math.Min(r, math.Min(g, b))
	delta := maxVal - minVal

	l := (maxVal + minVal) / 2
	if delta == 0 {
		return HSL{H: 0, S: 0, L: clamp01(l)}
	}

	var h float64
	switch maxVal {
	case r:
		h = math.Mod((g-b)/delta, 6)
	case g:
		h = (b-r)/delta + 2
	default:
		h = (r-g)/delta + 4
	}
	s := delta / (1 - math.Abs(2*l-1))

	h = math.Mod(h*60, 360)
	if h < 0 {
		h += 360
	}

	return HSL{H: h, S: clamp01(s), L: clamp01(l)}
}

// HSLToRGB converts HSL back to normalised RGB channels.
// Each channel is clamped to [0, 1] to absorb floating point round-off.
func HSLToRGB(hsl HSL) (r, g, b float64) {
	h, s, l := hsl.H, hsl.S, hsl.L

	c := (1 - math.Abs(2*l-1)) * s
	m := l - c/2
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))

	switch int(h) / 60 {
	case 0:
		r, g, b = c+m, x+m, m
	case 1:
		r, g, b = x+m, c+m, m
	case 2:
		r, g, b = m, c+m, x+m
	case 3:
		r, g, b = m, x+m, c+m
	case 4:
		r, g, b = x+m, m, c+m
	default:
		r, g, b = c+m, m, x+m
	}

	return clamp01(r), clamp01(g), clamp01(b)
}

// Color converts the HSL value to an opaque packed colour.
func (hsl HSL) Color() Color {
	r, g, b := HSLToRGB(hsl)
	return Opaque(to8(r), to8(g), to8(b))
}

// to8 scales a 0-1 channel to 0-255 with rounding.
func to8(v float64) uint8 {
	return uint8(math.Round(clamp01(v) * 255))
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
