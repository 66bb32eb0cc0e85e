package colour

import (
	"errors"
	"math"
)

const (
	// alphaSearchMaxIterations caps the binary search steps in MinimumAlpha.
	// Eight halvings already narrow 0-255 down to alphaSearchPrecision.
	alphaSearchMaxIterations = 10
	// alphaSearchPrecision is the alpha interval (in 8-bit units) at which the search stops.
	alphaSearchPrecision = 1
)

var (
	// ErrTranslucentBackground is returned when a contrast calculation is
	// given a background that is not fully opaque.
	ErrTranslucentBackground = errors.New("background colour must be opaque")

	// ErrNoViableAlpha is returned by MinimumAlpha when even a fully opaque
	// foreground does not reach the requested contrast ratio.
	ErrNoViableAlpha = errors.New("no alpha reaches the requested contrast ratio")
)

// Luminance calculates the relative luminance of a colour according to WCAG 2.0.
// Returns a value between 0 (darkest) and 1 (lightest). Alpha is ignored.
// https://www.w3.org/TR/WCAG20/#relativeluminancedef.
func Luminance(c Color) float64 {
	r := gammaExpand(float64(c.Red()) / 255)
	g := gammaExpand(float64(c.Green()) / 255)
	b := gammaExpand(float64(c.Blue()) / 255)
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// gammaExpand converts an sRGB channel to linear light.
func gammaExpand(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// ContrastRatio calculates the WCAG 2.0 contrast ratio of fg drawn over bg.
// A translucent foreground is composited over the background first.
// Returns ErrTranslucentBackground if bg is not opaque.
// https://www.w3.org/TR/WCAG20/#contrast-ratiodef.
func ContrastRatio(fg, bg Color) (float64, error) {
	if !bg.IsOpaque() {
		return 0, ErrTranslucentBackground
	}
	if !fg.IsOpaque() {
		fg = Composite(fg, bg)
	}

	l1 := Luminance(fg) + 0.05
	l2 := Luminance(bg) + 0.05
	return math.Max(l1, l2) / math.Min(l1, l2), nil
}

// Composite blends fg over bg using source-over alpha compositing.
func Composite(fg, bg Color) Color {
	fa := int(fg.Alpha())
	ba := int(bg.Alpha())
	a := compositeAlpha(fa, ba)

	return ARGB(
		uint8(a),
		compositeChannel(int(fg.Red()), fa, int(bg.Red()), ba, a),
		compositeChannel(int(fg.Green()), fa, int(bg.Green()), ba, a),
		compositeChannel(int(fg.Blue()), fa, int(bg.Blue()), ba, a),
	)
}

func compositeAlpha(fa, ba int) int {
	return 0xFF - ((0xFF - ba) * (0xFF - fa) / 0xFF)
}

func compositeChannel(fc, fa, bc, ba, a int) uint8 {
	if a == 0 {
		return 0
	}
	return uint8((0xFF*fc*fa + bc*ba*(0xFF-fa)) / (a * 0xFF))
}

// MinimumAlpha finds the lowest alpha (0-1) for fg that still gives at least
// minRatio contrast against the opaque bg.
// Returns ErrTranslucentBackground for a translucent bg and ErrNoViableAlpha
// when even the opaque foreground falls short.
func MinimumAlpha(fg, bg Color, minRatio float64) (float64, error) {
	a, err := minimumAlpha(fg, bg, minRatio)
	if err != nil {
		return 0, err
	}
	return float64(a) / 255, nil
}

// minimumAlpha is the 8-bit binary search behind MinimumAlpha.
func minimumAlpha(fg, bg Color, minRatio float64) (uint8, error) {
	if !bg.IsOpaque() {
		return 0, ErrTranslucentBackground
	}

	ratio, err := ContrastRatio(fg.WithAlpha(0xFF), bg)
	if err != nil {
		return 0, err
	}
	if ratio < minRatio {
		return 0, ErrNoViableAlpha
	}

	lo, hi := 0, 0xFF
	for i := 0; i < alphaSearchMaxIterations && hi-lo > alphaSearchPrecision; i++ {
		mid := (lo + hi) / 2
		ratio, _ = ContrastRatio(fg.WithAlpha(uint8(mid)), bg)
		if ratio < minRatio {
			lo = mid
		} else {
			hi = mid
		}
	}

	return uint8(hi), nil
}
