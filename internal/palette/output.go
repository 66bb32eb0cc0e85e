package palette

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jmylchreest/vibrant/internal/colour"
)

const previewWidth = 14

// SwatchJSON represents a swatch in JSON output format.
type SwatchJSON struct {
	Hex        string     `json:"hex"`
	RGB        colour.RGB `json:"rgb"`
	HSL        colour.HSL `json:"hsl"`
	Population int        `json:"population"`
	TitleText  string     `json:"title_text"`
	BodyText   string     `json:"body_text"`
}

// TargetJSON pairs a target name with its swatch; Swatch is null when the
// target was not resolved.
type TargetJSON struct {
	Name   string      `json:"name"`
	Swatch *SwatchJSON `json:"swatch"`
}

// PaletteJSON represents the palette in JSON format.
type PaletteJSON struct {
	Count         int          `json:"count"`
	MaxPopulation int          `json:"max_population"`
	Targets       []TargetJSON `json:"targets"`
	Dominant      *SwatchJSON  `json:"dominant,omitempty"`
	Swatches      []SwatchJSON `json:"swatches"`
}

func newSwatchJSON(s *colour.Swatch) *SwatchJSON {
	if s == nil {
		return nil
	}
	return &SwatchJSON{
		Hex:        s.Hex(),
		RGB:        s.RGB(),
		HSL:        s.HSL(),
		Population: s.Population(),
		TitleText:  s.TitleTextColor().Hex(),
		BodyText:   s.BodyTextColor().Hex(),
	}
}

// ToJSON converts the palette to indented JSON.
func (p *Palette) ToJSON() ([]byte, error) {
	out := PaletteJSON{
		Count:         len(p.swatches),
		MaxPopulation: p.maxPopulation,
		Targets:       make([]TargetJSON, 0, len(p.targets)),
		Dominant:      newSwatchJSON(p.DominantSwatch()),
		Swatches:      make([]SwatchJSON, 0, len(p.swatches)),
	}
	for _, t := range p.targets {
		out.Targets = append(out.Targets, TargetJSON{Name: t.Name, Swatch: newSwatchJSON(p.SwatchFor(t))})
	}
	for _, s := range p.swatches {
		out.Swatches = append(out.Swatches, *newSwatchJSON(s))
	}

	return json.MarshalIndent(out, "", "  ")
}

// HexLines returns "name #rrggbb" for every resolved target, in target order.
func (p *Palette) HexLines() []string {
	lines := make([]string, 0, len(p.targets))
	for _, t := range p.targets {
		if s := p.SwatchFor(t); s != nil {
			lines = append(lines, fmt.Sprintf("%s %s", t.Name, s.Hex()))
		}
	}
	return lines
}

// String returns a human-readable representation of the palette.
func (p *Palette) String() string {
	return p.StringWithPreview(false)
}

// StringWithPreview returns a human-readable representation of the palette,
// optionally with 24-bit ANSI colour blocks.
func (p *Palette) StringWithPreview(preview bool) string {
	if len(p.swatches) == 0 {
		return "Empty palette\n"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Palette with %d swatches:\n", len(p.swatches))

	for _, t := range p.targets {
		s := p.SwatchFor(t)
		if s == nil {
			fmt.Fprintf(&b, "  %-14s -\n", t.Name)
			continue
		}
		if preview {
			fmt.Fprintf(&b, "  %s %s  population %d\n", colour.SwatchPreview(s, t.Name, previewWidth), s.Hex(), s.Population())
			continue
		}
		fmt.Fprintf(&b, "  %-14s %s  population %d\n", t.Name, s.Hex(), s.Population())
	}

	b.WriteString("Swatches:\n")
	for i, s := range p.swatches {
		if preview {
			fmt.Fprintf(&b, "  %2d: %s population %d\n", i+1, colour.FormatColourWithLabel(s.RGB(), s.RGB().String(), 4), s.Population())
			continue
		}
		fmt.Fprintf(&b, "  %2d: %s (%s) population %d\n", i+1, s.Hex(), s.RGB(), s.Population())
	}

	return b.String()
}
