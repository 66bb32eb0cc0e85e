package palette

import (
	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/vibrant/internal/colour"
)

// Selector matches quantized swatches against an ordered list of targets.
type Selector struct {
	targets []Target
	logger  hclog.Logger
}

// NewSelector creates a Selector for targets, resolved in the given order.
// With no targets the DefaultTargets are used. A nil logger disables logging.
func NewSelector(logger hclog.Logger, targets ...Target) *Selector {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	if len(targets) == 0 {
		targets = DefaultTargets()
	}
	return &Selector{
		targets: append([]Target(nil), targets...),
		logger:  logger.Named("select"),
	}
}

// Select builds a palette from swatches using the default targets.
func Select(swatches []*colour.Swatch) *Palette {
	return NewSelector(nil).Select(swatches)
}

// Select resolves every target against swatches and returns the palette.
// A swatch chosen for one target is not eligible for later targets.
func (s *Selector) Select(swatches []*colour.Swatch) *Palette {
	p := &Palette{
		swatches: append([]*colour.Swatch(nil), swatches...),
		targets:  s.targets,
		selected: make(map[string]*colour.Swatch, len(s.targets)),
	}
	for _, sw := range swatches {
		p.maxPopulation = max(p.maxPopulation, sw.Population())
	}

	for _, t := range s.targets {
		if match := s.bestMatch(p, t); match != nil {
			p.selected[t.Name] = match
			s.logger.Debug("target resolved", "target", t.Name, "swatch", match.Hex(), "population", match.Population())
			continue
		}
		s.logger.Debug("target unresolved", "target", t.Name)
	}

	s.synthesize(p)
	return p
}

// bestMatch returns the highest scoring unclaimed swatch within t's windows.
// The first swatch wins ties.
func (s *Selector) bestMatch(p *Palette, t Target) *colour.Swatch {
	var best *colour.Swatch
	bestScore := 0.0

	for _, sw := range p.swatches {
		hsl := sw.HSL()
		if !t.Saturation.contains(hsl.S) || !t.Lightness.contains(hsl.L) {
			continue
		}
		if isSelected(p, sw) {
			continue
		}

		score := t.score(hsl.S, hsl.L, sw.Population(), p.maxPopulation)
		if best == nil || score > bestScore {
			best, bestScore = sw, score
		}
	}

	return best
}

func isSelected(p *Palette, sw *colour.Swatch) bool {
	for _, chosen := range p.selected {
		if chosen.Equal(sw) {
			return true
		}
	}
	return false
}

// synthesize fills a missing vibrant or dark vibrant swatch from the other
// one by moving it to the missing target's lightness.
func (s *Selector) synthesize(p *Palette) {
	if !s.has(Vibrant) || !s.has(DarkVibrant) {
		return
	}

	if p.VibrantSwatch() == nil {
		if dark := p.DarkVibrantSwatch(); dark != nil {
			p.selected[Vibrant.Name] = withLightness(dark, Vibrant.Lightness.Target)
			s.logger.Debug("synthesized target", "target", Vibrant.Name, "from", DarkVibrant.Name)
		}
	}
	if p.DarkVibrantSwatch() == nil {
		if vibrant := p.VibrantSwatch(); vibrant != nil {
			p.selected[DarkVibrant.Name] = withLightness(vibrant, DarkVibrant.Lightness.Target)
			s.logger.Debug("synthesized target", "target", DarkVibrant.Name, "from", Vibrant.Name)
		}
	}
}

func (s *Selector) has(t Target) bool {
	for _, candidate := range s.targets {
		if candidate.Name == t.Name {
			return true
		}
	}
	return false
}

func withLightness(sw *colour.Swatch, lightness float64) *colour.Swatch {
	hsl := sw.HSL()
	hsl.L = lightness
	return colour.NewSwatchHSL(hsl, 0)
}
