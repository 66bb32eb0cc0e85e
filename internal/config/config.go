// Package config holds the settings for palette extraction, with defaults
// and environment variable overrides.
package config

import (
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/hashicorp/go-hclog"

	imageutil "github.com/jmylchreest/vibrant/internal/image"
	"github.com/jmylchreest/vibrant/internal/quantize"
)

// MaxColorsLimit is the largest colour count accepted from flags or the
// environment. The quantizer itself has no upper bound.
const MaxColorsLimit = 256

// Environment variables read by Builder.WithEnv.
const (
	EnvMaxColors       = "VIBRANT_MAX_COLORS"
	EnvResizeDimension = "VIBRANT_RESIZE_DIMENSION"
	EnvFormat          = "VIBRANT_FORMAT"
	EnvLogLevel        = "VIBRANT_LOG_LEVEL"
)

// Format is an output format for extracted palettes.
type Format string

const (
	// FormatText is the human-readable listing.
	FormatText Format = "text"
	// FormatHex prints one "target #rrggbb" line per resolved target.
	FormatHex Format = "hex"
	// FormatJSON prints the full palette as JSON.
	FormatJSON Format = "json"
)

// ValidFormats returns the supported output formats.
func ValidFormats() []Format {
	return []Format{FormatText, FormatHex, FormatJSON}
}

// Config holds extraction settings.
type Config struct {
	MaxColors       int
	ResizeDimension int
	Format          Format
	// LogLevel is an hclog level name; empty leaves the level to the caller.
	LogLevel string
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		MaxColors:       quantize.DefaultMaxColors,
		ResizeDimension: imageutil.DefaultResizeDimension,
		Format:          FormatText,
	}
}

// Validate validates the configuration.
func (c Config) Validate() error {
	if c.MaxColors < 1 {
		return fmt.Errorf("colour count must be at least 1, got %d", c.MaxColors)
	}
	if c.MaxColors > MaxColorsLimit {
		return fmt.Errorf("colour count too large: %d (maximum: %d)", c.MaxColors, MaxColorsLimit)
	}
	if c.ResizeDimension < 0 {
		return fmt.Errorf("resize dimension must not be negative, got %d", c.ResizeDimension)
	}
	if !slices.Contains(ValidFormats(), c.Format) {
		return fmt.Errorf("invalid format: %s (valid formats: %v)", c.Format, ValidFormats())
	}
	if c.LogLevel != "" && hclog.LevelFromString(c.LogLevel) == hclog.NoLevel {
		return fmt.Errorf("invalid log level: %s", c.LogLevel)
	}
	return nil
}

// Level returns the configured hclog level, or fallback when unset.
func (c Config) Level(fallback hclog.Level) hclog.Level {
	if c.LogLevel == "" {
		return fallback
	}
	return hclog.LevelFromString(c.LogLevel)
}

// Builder assembles a Config from defaults and the environment.
type Builder struct {
	config Config
	useEnv bool
}

// NewBuilder creates a Builder starting from Default().
func NewBuilder() *Builder {
	return &Builder{config: Default()}
}

// WithEnv applies VIBRANT_* environment variables on top of the base configuration.
func (b *Builder) WithEnv() *Builder {
	b.useEnv = true
	return b
}

// Build returns the assembled configuration. It is not validated, so callers
// can apply flag overrides first.
func (b *Builder) Build() (Config, error) {
	cfg := b.config
	if !b.useEnv {
		return cfg, nil
	}

	if v, ok := lookup(EnvMaxColors); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid %s: %w", EnvMaxColors, err)
		}
		cfg.MaxColors = n
	}
	if v, ok := lookup(EnvResizeDimension); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid %s: %w", EnvResizeDimension, err)
		}
		cfg.ResizeDimension = n
	}
	if v, ok := lookup(EnvFormat); ok {
		cfg.Format = Format(strings.ToLower(v))
	}
	if v, ok := lookup(EnvLogLevel); ok {
		cfg.LogLevel = strings.ToLower(v)
	}

	return cfg, nil
}

func lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	v = strings.TrimSpace(v)
	return v, ok && v != ""
}
