package palette

import (
	"slices"

	"github.com/jmylchreest/vibrant/internal/colour"
)

// Palette is the result of swatch selection: every quantized swatch plus the
// swatch chosen for each target. A Palette is immutable once built.
type Palette struct {
	swatches      []*colour.Swatch
	targets       []Target
	selected      map[string]*colour.Swatch
	maxPopulation int
}

// Swatches returns all quantized swatches.
func (p *Palette) Swatches() []*colour.Swatch {
	return slices.Clone(p.swatches)
}

// Len returns the number of quantized swatches.
func (p *Palette) Len() int {
	return len(p.swatches)
}

// MaxPopulation returns the largest swatch population.
func (p *Palette) MaxPopulation() int {
	return p.maxPopulation
}

// Targets returns the targets this palette was resolved against, in order.
func (p *Palette) Targets() []Target {
	return slices.Clone(p.targets)
}

// SwatchFor returns the swatch selected for t, or nil if none was found.
func (p *Palette) SwatchFor(t Target) *colour.Swatch {
	return p.selected[t.Name]
}

// VibrantSwatch returns the vibrant swatch, or nil.
func (p *Palette) VibrantSwatch() *colour.Swatch { return p.SwatchFor(Vibrant) }

// LightVibrantSwatch returns the light vibrant swatch, or nil.
func (p *Palette) LightVibrantSwatch() *colour.Swatch { return p.SwatchFor(LightVibrant) }

// DarkVibrantSwatch returns the dark vibrant swatch, or nil.
func (p *Palette) DarkVibrantSwatch() *colour.Swatch { return p.SwatchFor(DarkVibrant) }

// MutedSwatch returns the muted swatch, or nil.
func (p *Palette) MutedSwatch() *colour.Swatch { return p.SwatchFor(Muted) }

// LightMutedSwatch returns the light muted swatch, or nil.
func (p *Palette) LightMutedSwatch() *colour.Swatch { return p.SwatchFor(LightMuted) }

// DarkMutedSwatch returns the dark muted swatch, or nil.
func (p *Palette) DarkMutedSwatch() *colour.Swatch { return p.SwatchFor(DarkMuted) }

// ColorFor returns the colour selected for t, or def when there is none.
func (p *Palette) ColorFor(t Target, def colour.Color) colour.Color {
	if s := p.SwatchFor(t); s != nil {
		return s.Color()
	}
	return def
}

// VibrantColor returns the vibrant colour, or def.
func (p *Palette) VibrantColor(def colour.Color) colour.Color { return p.ColorFor(Vibrant, def) }

// LightVibrantColor returns the light vibrant colour, or def.
func (p *Palette) LightVibrantColor(def colour.Color) colour.Color {
	return p.ColorFor(LightVibrant, def)
}

// DarkVibrantColor returns the dark vibrant colour, or def.
func (p *Palette) DarkVibrantColor(def colour.Color) colour.Color { return p.ColorFor(DarkVibrant, def) }

// MutedColor returns the muted colour, or def.
func (p *Palette) MutedColor(def colour.Color) colour.Color { return p.ColorFor(Muted, def) }

// LightMutedColor returns the light muted colour, or def.
func (p *Palette) LightMutedColor(def colour.Color) colour.Color { return p.ColorFor(LightMuted, def) }

// DarkMutedColor returns the dark muted colour, or def.
func (p *Palette) DarkMutedColor(def colour.Color) colour.Color { return p.ColorFor(DarkMuted, def) }

// DominantSwatch returns the swatch with the largest population, or nil for
// an empty palette. The first swatch wins ties.
func (p *Palette) DominantSwatch() *colour.Swatch {
	var dominant *colour.Swatch
	for _, s := range p.swatches {
		if dominant == nil || s.Population() > dominant.Population() {
			dominant = s
		}
	}
	return dominant
}
