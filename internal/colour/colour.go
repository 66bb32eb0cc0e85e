// Package colour provides packed colour values, HSL conversion, WCAG contrast
// helpers and the Swatch type produced by palette quantization.
package colour

import (
	"fmt"
	"image/color"
)

// Color is a packed 32-bit colour laid out as 0xAARRGGBB.
// Ordering by integer value is the ordering used when building histograms.
type Color uint32

const (
	// Black is opaque black.
	Black Color = 0xFF000000
	// White is opaque white.
	White Color = 0xFFFFFFFF
)

// ARGB packs the four 8-bit channels into a Color.
func ARGB(a, r, g, b uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// Opaque packs an opaque colour from its red, green and blue channels.
func Opaque(r, g, b uint8) Color {
	return ARGB(0xFF, r, g, b)
}

// FromColor converts any color.Color into a packed, non-premultiplied Color.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return ARGB(n.A, n.R, n.G, n.B)
}

// Alpha returns the alpha channel.
func (c Color) Alpha() uint8 { return uint8(c >> 24) }

// Red returns the red channel.
func (c Color) Red() uint8 { return uint8(c >> 16) }

// Green returns the green channel.
func (c Color) Green() uint8 { return uint8(c >> 8) }

// Blue returns the blue channel.
func (c Color) Blue() uint8 { return uint8(c) }

// WithAlpha returns c with its alpha channel replaced.
func (c Color) WithAlpha(a uint8) Color {
	return c&0x00FFFFFF | Color(a)<<24
}

// IsOpaque reports whether the alpha channel is 0xFF.
func (c Color) IsOpaque() bool { return c.Alpha() == 0xFF }

// RGB drops the alpha channel.
func (c Color) RGB() RGB {
	return RGB{R: c.Red(), G: c.Green(), B: c.Blue()}
}

// HSL returns the hue, saturation and lightness of the colour, ignoring alpha.
func (c Color) HSL() HSL {
	return RGBToHSL(float64(c.Red())/255, float64(c.Green())/255, float64(c.Blue())/255)
}

// RGBA implements color.Color. Channels are premultiplied as the interface requires.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.Red(), G: c.Green(), B: c.Blue(), A: c.Alpha()}.RGBA()
}

// Hex returns "#rrggbb" for opaque colours and "#rrggbbaa" otherwise.
func (c Color) Hex() string {
	if c.IsOpaque() {
		return c.RGB().Hex()
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.Red(), c.Green(), c.Blue(), c.Alpha())
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return fmt.Sprintf("0x%08X", uint32(c))
}

// RGB represents a colour in 8-bit RGB format.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// String returns the RGB colour as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB colour as a hex string (e.g., "#1a2b3c").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

// Color returns the opaque packed form.
func (rgb RGB) Color() Color {
	return Opaque(rgb.R, rgb.G, rgb.B)
}
