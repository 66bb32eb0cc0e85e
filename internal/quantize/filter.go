package quantize

import (
	"github.com/jmylchreest/vibrant/internal/colour"
)

const (
	blackMaxLightness = 0.05
	whiteMinLightness = 0.95

	iLineMinHue        = 10.0
	iLineMaxHue        = 37.0
	iLineMaxSaturation = 0.82
)

// Filter decides whether a colour may take part in quantization.
type Filter interface {
	Allowed(c colour.Color, hsl colour.HSL) bool
}

// FilterFunc adapts an ordinary function to the Filter interface.
type FilterFunc func(c colour.Color, hsl colour.HSL) bool

// Allowed calls f(c, hsl).
func (f FilterFunc) Allowed(c colour.Color, hsl colour.HSL) bool {
	return f(c, hsl)
}

// DefaultFilter rejects near-black, near-white and colours close to the
// skin-tone "I-line".
var DefaultFilter Filter = FilterFunc(func(_ colour.Color, hsl colour.HSL) bool {
	return !isBlack(hsl) && !isWhite(hsl) && !isNearRedILine(hsl)
})

func isBlack(hsl colour.HSL) bool {
	return hsl.L <= blackMaxLightness
}

func isWhite(hsl colour.HSL) bool {
	return hsl.L >= whiteMinLightness
}

func isNearRedILine(hsl colour.HSL) bool {
	return hsl.H >= iLineMinHue && hsl.H <= iLineMaxHue && hsl.S <= iLineMaxSaturation
}

// allowed reports whether every filter accepts the colour.
func allowed(filters []Filter, c colour.Color, hsl colour.HSL) bool {
	for _, f := range filters {
		if !f.Allowed(c, hsl) {
			return false
		}
	}
	return true
}
