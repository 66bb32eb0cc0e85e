package palette

import (
	"errors"
	"fmt"
	"image"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/vibrant/internal/colour"
	imageutil "github.com/jmylchreest/vibrant/internal/image"
	"github.com/jmylchreest/vibrant/internal/quantize"
)

// Builder generates a Palette from an image or from raw pixels.
type Builder struct {
	img             image.Image
	pixels          []colour.Color
	fromPixels      bool
	maxColors       int
	resizeDimension int
	filters         []quantize.Filter
	targets         []Target
	logger          hclog.Logger
}

// NewBuilder creates a Builder for img with default settings.
func NewBuilder(img image.Image) *Builder {
	return &Builder{
		img:             img,
		maxColors:       quantize.DefaultMaxColors,
		resizeDimension: imageutil.DefaultResizeDimension,
		filters:         []quantize.Filter{quantize.DefaultFilter},
		logger:          hclog.NewNullLogger(),
	}
}

// NewPixelBuilder creates a Builder over already sampled pixels.
// Resizing does not apply.
func NewPixelBuilder(pixels []colour.Color) *Builder {
	b := NewBuilder(nil)
	b.pixels = pixels
	b.fromPixels = true
	return b
}

// MaximumColorCount sets the number of colours the quantizer aims for.
func (b *Builder) MaximumColorCount(n int) *Builder {
	b.maxColors = n
	return b
}

// ResizeDimension sets the size the image's shorter side is scaled down to
// before sampling. Zero disables resizing.
func (b *Builder) ResizeDimension(d int) *Builder {
	b.resizeDimension = d
	return b
}

// ClearFilters removes all filters, including the default one.
func (b *Builder) ClearFilters() *Builder {
	b.filters = nil
	return b
}

// AddFilter adds a quantization filter.
func (b *Builder) AddFilter(f quantize.Filter) *Builder {
	b.filters = append(b.filters, f)
	return b
}

// Targets replaces the default targets.
func (b *Builder) Targets(targets ...Target) *Builder {
	b.targets = targets
	return b
}

// Logger sets the logger used by the quantizer and selector.
func (b *Builder) Logger(l hclog.Logger) *Builder {
	if l != nil {
		b.logger = l
	}
	return b
}

// Generate samples the image, quantizes it and selects the target swatches.
func (b *Builder) Generate() (*Palette, error) {
	if b.resizeDimension < 0 {
		return nil, fmt.Errorf("resize dimension must not be negative, got %d", b.resizeDimension)
	}

	pixels := b.pixels
	if !b.fromPixels {
		if b.img == nil {
			return nil, errors.New("image cannot be nil")
		}
		bounds := b.img.Bounds()
		pixels = imageutil.Sample(b.img, b.resizeDimension)
		b.logger.Debug("sampled image", "width", bounds.Dx(), "height", bounds.Dy(), "pixels", len(pixels))
	}

	q, err := quantize.New(quantize.Config{
		MaxColors: b.maxColors,
		Filters:   b.filters,
		Logger:    b.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("invalid quantizer configuration: %w", err)
	}

	swatches := q.Quantize(pixels)
	return NewSelector(b.logger, b.targets...).Select(swatches), nil
}
