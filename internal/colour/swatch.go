package colour

import (
	"fmt"
	"math"
	"sync"

	colorful "github.com/lucasb-eyer/go-colorful"
)

const (
	// MinContrastTitleText is the minimum contrast for title text over a swatch.
	MinContrastTitleText = 3.0
	// MinContrastBodyText is the minimum contrast for body text over a swatch.
	MinContrastBodyText = 4.5

	swatchTolerance = 1e-3
)

// Swatch is a representative colour taken from an image together with the
// number of pixels it stands for. Swatches are immutable; their text colours
// are computed on first use.
type Swatch struct {
	r, g, b    float64 // 0-255, unrounded so box averages keep precision
	population int
	hsl        HSL

	textOnce  sync.Once
	titleText Color
	bodyText  Color
}

// NewSwatch creates a swatch from a packed colour. Alpha is ignored.
func NewSwatch(c Color, population int) *Swatch {
	return NewSwatchRGB(float64(c.Red()), float64(c.Green()), float64(c.Blue()), population)
}

// NewSwatchRGB creates a swatch from 0-255 channel values.
func NewSwatchRGB(r, g, b float64, population int) *Swatch {
	return &Swatch{
		r:          r,
		g:          g,
		b:          b,
		population: population,
		hsl:        RGBToHSL(r/255, g/255, b/255),
	}
}

// NewSwatchHSL creates a swatch from an HSL value. The HSL is kept as given,
// so HSL() returns it exactly rather than a value re-derived from RGB.
func NewSwatchHSL(hsl HSL, population int) *Swatch {
	r, g, b := HSLToRGB(hsl)
	return &Swatch{
		r:          r * 255,
		g:          g * 255,
		b:          b * 255,
		population: population,
		hsl:        hsl,
	}
}

// Channels returns the unrounded 0-255 red, green and blue values.
func (s *Swatch) Channels() (r, g, b float64) {
	return s.r, s.g, s.b
}

// RGB returns the swatch colour rounded to 8-bit channels.
func (s *Swatch) RGB() RGB {
	return RGB{R: round8(s.r), G: round8(s.g), B: round8(s.b)}
}

// Color returns the swatch as an opaque packed colour.
func (s *Swatch) Color() Color {
	return s.RGB().Color()
}

// Population returns the number of pixels represented by this swatch.
func (s *Swatch) Population() int {
	return s.population
}

// HSL returns the hue, saturation and lightness of the swatch.
func (s *Swatch) HSL() HSL {
	return s.hsl
}

// Colorful returns the swatch as a go-colorful colour for rendering.
func (s *Swatch) Colorful() colorful.Color {
	return colorful.Color{R: s.r / 255, G: s.g / 255, B: s.b / 255}.Clamped()
}

// Hex returns the swatch as "#rrggbb".
func (s *Swatch) Hex() string {
	return s.Colorful().Hex()
}

// TitleTextColor returns a white or black colour, with the lowest alpha that
// still meets MinContrastTitleText over the swatch.
func (s *Swatch) TitleTextColor() Color {
	s.ensureTextColors()
	return s.titleText
}

// BodyTextColor returns a white or black colour, with the lowest alpha that
// still meets MinContrastBodyText over the swatch.
func (s *Swatch) BodyTextColor() Color {
	s.ensureTextColors()
	return s.bodyText
}

func (s *Swatch) ensureTextColors() {
	s.textOnce.Do(func() {
		bg := s.Color()

		lightBody, lightBodyErr := minimumAlpha(White, bg, MinContrastBodyText)
		lightTitle, lightTitleErr := minimumAlpha(White, bg, MinContrastTitleText)
		if lightBodyErr == nil && lightTitleErr == nil {
			s.bodyText = White.WithAlpha(lightBody)
			s.titleText = White.WithAlpha(lightTitle)
			return
		}

		darkBody, darkBodyErr := minimumAlpha(Black, bg, MinContrastBodyText)
		darkTitle, darkTitleErr := minimumAlpha(Black, bg, MinContrastTitleText)
		if darkBodyErr == nil && darkTitleErr == nil {
			s.bodyText = Black.WithAlpha(darkBody)
			s.titleText = Black.WithAlpha(darkTitle)
			return
		}

		// Mixed: white where it works, black otherwise.
		s.bodyText = pickText(lightBody, lightBodyErr, darkBody, darkBodyErr)
		s.titleText = pickText(lightTitle, lightTitleErr, darkTitle, darkTitleErr)
	})
}

func pickText(light uint8, lightErr error, dark uint8, darkErr error) Color {
	switch {
	case lightErr == nil:
		return White.WithAlpha(light)
	case darkErr == nil:
		return Black.WithAlpha(dark)
	default:
		return Black
	}
}

// Equal reports whether two swatches have the same colour and population.
// Channels are compared with a small tolerance.
func (s *Swatch) Equal(o *Swatch) bool {
	if s == nil || o == nil {
		return s == o
	}
	return s.population == o.population &&
		math.Abs(s.r-o.r) < swatchTolerance &&
		math.Abs(s.g-o.g) < swatchTolerance &&
		math.Abs(s.b-o.b) < swatchTolerance
}

// String returns a short description of the swatch.
func (s *Swatch) String() string {
	return fmt.Sprintf("Swatch{%s, population: %d, hsl: (%.1f, %.3f, %.3f)}",
		s.Hex(), s.population, s.hsl.H, s.hsl.S, s.hsl.L)
}

func round8(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(255, v))))
}
