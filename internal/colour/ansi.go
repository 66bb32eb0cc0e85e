package colour

import (
	"fmt"
	"strings"
)

// ANSI escape codes for 24-bit terminal colours.
const (
	ansiReset    = "\033[0m"
	ansiFgPrefix = "\033[38;2;"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	defaultWidth = 8
)

func ansiBg(c RGB) string {
	return fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, c.R, c.G, c.B, ansiSuffix)
}

func ansiFg(c RGB) string {
	return fmt.Sprintf("%s%d;%d;%d%s", ansiFgPrefix, c.R, c.G, c.B, ansiSuffix)
}

// ColourPreview returns a solid block of the given colour, width cells wide.
func ColourPreview(c RGB, width int) string {
	if width <= 0 {
		width = defaultWidth
	}
	return ansiBg(c) + strings.Repeat(" ", width) + ansiReset
}

// SwatchPreview renders text centred on a block of the swatch colour, drawn in
// the swatch's title text colour blended over the swatch.
func SwatchPreview(s *Swatch, text string, width int) string {
	if width <= 0 {
		width = defaultWidth
	}

	bg := s.Color()
	fg := Composite(s.TitleTextColor(), bg).RGB()

	if len(text) > width {
		text = text[:width]
	} else if len(text) < width {
		padding := (width - len(text)) / 2
		text = strings.Repeat(" ", padding) + text + strings.Repeat(" ", width-len(text)-padding)
	}

	return ansiBg(bg.RGB()) + ansiFg(fg) + text + ansiReset
}

// FormatColourWithLabel returns a preview block followed by label and the
// colour's hex value.
func FormatColourWithLabel(rgb RGB, label string, width int) string {
	return fmt.Sprintf("%s  %-20s %s", ColourPreview(rgb, width), label, rgb.Hex())
}
