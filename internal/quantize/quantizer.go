package quantize

import (
	"fmt"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/vibrant/internal/colour"
)

// DefaultMaxColors is the palette size used when none is configured.
const DefaultMaxColors = 16

// Config holds quantizer settings.
type Config struct {
	// MaxColors is the target number of swatches.
	MaxColors int

	// Filters reject colours before and after box cutting.
	// An empty list disables filtering.
	Filters []Filter

	// Logger receives trace output. Nil means no logging.
	Logger hclog.Logger
}

// DefaultConfig returns the default quantizer configuration.
func DefaultConfig() Config {
	return Config{
		MaxColors: DefaultMaxColors,
		Filters:   []Filter{DefaultFilter},
	}
}

// Validate validates the quantizer configuration.
func (c Config) Validate() error {
	if c.MaxColors < 1 {
		return fmt.Errorf("max colours must be at least 1, got %d", c.MaxColors)
	}
	for i, f := range c.Filters {
		if f == nil {
			return fmt.Errorf("filter %d is nil", i)
		}
	}
	return nil
}

// Quantizer reduces a set of pixels to at most MaxColors swatches.
// A Quantizer holds no per-run state and may be reused.
type Quantizer struct {
	maxColors int
	filters   []Filter
	logger    hclog.Logger
}

// New creates a Quantizer from a validated configuration.
func New(cfg Config) (*Quantizer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := cfg.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	return &Quantizer{
		maxColors: cfg.MaxColors,
		filters:   append([]Filter(nil), cfg.Filters...),
		logger:    logger.Named("quantize"),
	}, nil
}

// Quantize reduces pixels to at most maxColors swatches using the default filter.
func Quantize(pixels []colour.Color, maxColors int) ([]*colour.Swatch, error) {
	cfg := DefaultConfig()
	cfg.MaxColors = maxColors

	q, err := New(cfg)
	if err != nil {
		return nil, err
	}
	return q.Quantize(pixels), nil
}

// Quantize builds a histogram of pixels and reduces it to swatches.
func (q *Quantizer) Quantize(pixels []colour.Color) []*colour.Swatch {
	return q.QuantizeHistogram(BuildHistogram(pixels))
}

// QuantizeHistogram reduces histogram entries to swatches.
//
// When no more than MaxColors colours survive filtering each one becomes a
// swatch as-is. Otherwise the colour space is cut into boxes, largest volume
// first, and each box is averaged into a swatch. Averages rejected by the
// filters are dropped, so fewer than MaxColors swatches may be returned.
func (q *Quantizer) QuantizeHistogram(entries []Entry) []*colour.Swatch {
	a := &arena{
		colors:     make([]colour.Color, 0, len(entries)),
		population: make(map[colour.Color]int, len(entries)),
	}
	for _, e := range entries {
		a.population[e.Color] = e.Count
		if allowed(q.filters, e.Color, e.Color.HSL()) {
			a.colors = append(a.colors, e.Color)
		}
	}

	q.logger.Debug("histogram built", "distinct", len(entries), "allowed", len(a.colors), "max_colors", q.maxColors)

	if len(a.colors) <= q.maxColors {
		q.logger.Trace("colour count within limit, skipping box cutting")
		swatches := make([]*colour.Swatch, 0, len(a.colors))
		for _, c := range a.colors {
			swatches = append(swatches, colour.NewSwatch(c, a.population[c]))
		}
		return swatches
	}

	return q.cut(a)
}

// cut splits the arena into boxes and averages each one.
func (q *Quantizer) cut(a *arena) []*colour.Swatch {
	seq := 0
	queue := &boxQueue{}
	queue.push(newBox(a, 0, len(a.colors)-1, seq))

	for queue.Len() < q.maxColors {
		b := queue.pop()
		volume := b.volume()

		seq++
		next, ch, ok := b.split(seq)
		if !ok {
			// The box is dropped, not requeued; the palette stays short.
			q.logger.Debug("box cannot be split, stopping", "colors", b.colorCount(), "volume", volume, "boxes", queue.Len())
			break
		}

		q.logger.Trace("split box", "volume", volume, "channel", ch, "left", b.colorCount(), "right", next.colorCount())
		queue.push(b)
		queue.push(next)
	}

	swatches := make([]*colour.Swatch, 0, queue.Len())
	for queue.Len() > 0 {
		s := queue.pop().average()
		if !allowed(q.filters, s.Color(), s.HSL()) {
			q.logger.Trace("dropping filtered average", "swatch", s.Hex(), "population", s.Population())
			continue
		}
		swatches = append(swatches, s)
	}

	q.logger.Debug("quantization complete", "swatches", len(swatches))
	return swatches
}
