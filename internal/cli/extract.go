package cli

import (
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/jmylchreest/vibrant/internal/config"
	"github.com/jmylchreest/vibrant/internal/image"
	"github.com/jmylchreest/vibrant/internal/palette"
	httputil "github.com/jmylchreest/vibrant/internal/util/http"
)

// formatValue is a pflag.Value restricted to the supported output formats.
type formatValue config.Format

var _ pflag.Value = (*formatValue)(nil)

func (f *formatValue) String() string { return string(*f) }

func (f *formatValue) Set(s string) error {
	format := config.Format(strings.ToLower(s))
	if !slices.Contains(config.ValidFormats(), format) {
		return fmt.Errorf("must be one of %v", config.ValidFormats())
	}
	*f = formatValue(format)
	return nil
}

func (f *formatValue) Type() string { return "format" }

type extractOptions struct {
	colours int
	resize  int
	format  formatValue
	output  string
	preview bool

	timeout  time.Duration
	maxBytes int64
}

func newExtractCmd() *cobra.Command {
	opts := &extractOptions{format: formatValue(config.FormatText)}

	cmd := &cobra.Command{
		Use:   "extract <image>",
		Short: "Extract a theme palette from an image",
		Long: `Extract a theme palette from an image.

The image is scaled down, its colours are quantized to at most --colours
representative swatches, and the six target swatches are chosen from them.

Supported image formats: JPEG, PNG, GIF, WebP. HTTP(S) URLs are fetched.

Environment:
  VIBRANT_MAX_COLORS, VIBRANT_RESIZE_DIMENSION, VIBRANT_FORMAT and
  VIBRANT_LOG_LEVEL provide defaults; flags take precedence.

Examples:
  # Extract the palette from a wallpaper
  vibrant extract wallpaper.jpg

  # Quantize to 24 colours and print JSON
  vibrant extract -c 24 -f json cover.png

  # One "target #rrggbb" line per swatch, written to a file
  vibrant extract -f hex -o palette.txt cover.webp

  # Fetch a remote image, giving up after 5 seconds or 10 MiB
  vibrant extract --timeout 5s --max-bytes 10485760 https://example.com/art.jpg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtract(cmd, args[0], opts)
		},
	}

	cmd.Flags().IntVarP(&opts.colours, "colours", "c", config.Default().MaxColors, "maximum number of colours to quantize to (1-256)")
	cmd.Flags().IntVar(&opts.resize, "resize", config.Default().ResizeDimension, "scale the shorter image side down to this many pixels (0 disables)")
	cmd.Flags().VarP(&opts.format, "format", "f", "output format (text, hex, json)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().BoolVar(&opts.preview, "preview", false, "show colour previews (default: on when stdout is a terminal)")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", httputil.DefaultTimeout, "timeout for fetching an image URL")
	cmd.Flags().Int64Var(&opts.maxBytes, "max-bytes", httputil.DefaultMaxBytes, "largest image download accepted, in bytes")

	return cmd
}

// runExtract executes the extract command.
func runExtract(cmd *cobra.Command, path string, opts *extractOptions) error {
	cfg, err := config.NewBuilder().WithEnv().Build()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("colours") {
		cfg.MaxColors = opts.colours
	}
	if flags.Changed("resize") {
		cfg.ResizeDimension = opts.resize
	}
	if flags.Changed("format") {
		cfg.Format = config.Format(opts.format)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if opts.timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", opts.timeout)
	}
	if opts.maxBytes <= 0 {
		return fmt.Errorf("max bytes must be positive, got %d", opts.maxBytes)
	}

	logger := newLogger(cmd, cfg)

	if err := image.ValidateImagePath(path); err != nil {
		return fmt.Errorf("invalid image path: %w", err)
	}

	logger.Debug("loading image", "path", path)
	var loader image.Loader = image.NewSmartLoader(httputil.FetchOptions{Timeout: opts.timeout, MaxBytes: opts.maxBytes})
	img, err := loader.Load(cmd.Context(), path)
	if err != nil {
		return fmt.Errorf("failed to load image: %w", err)
	}

	pal, err := palette.NewBuilder(img).
		MaximumColorCount(cfg.MaxColors).
		ResizeDimension(cfg.ResizeDimension).
		Logger(logger).
		Generate()
	if err != nil {
		return fmt.Errorf("failed to generate palette: %w", err)
	}
	logger.Debug("palette generated", "swatches", pal.Len(), "max_population", pal.MaxPopulation())

	preview := opts.preview
	if !flags.Changed("preview") {
		preview = opts.output == "" && isTerminal(cmd.OutOrStdout())
	}

	output, err := formatPalette(pal, cfg.Format, preview)
	if err != nil {
		return err
	}

	if opts.output != "" {
		logger.Debug("writing output", "path", opts.output)
		if err := os.WriteFile(opts.output, []byte(output), 0o644); err != nil { // #nosec G306 - Palette output is not sensitive
			return fmt.Errorf("failed to write output file: %w", err)
		}
		return nil
	}

	_, err = fmt.Fprint(cmd.OutOrStdout(), output)
	return err
}

// formatPalette formats the palette according to the specified format.
func formatPalette(pal *palette.Palette, format config.Format, preview bool) (string, error) {
	switch format {
	case config.FormatText:
		return pal.StringWithPreview(preview), nil
	case config.FormatHex:
		lines := pal.HexLines()
		if len(lines) == 0 {
			return "", nil
		}
		return strings.Join(lines, "\n") + "\n", nil
	case config.FormatJSON:
		data, err := pal.ToJSON()
		if err != nil {
			return "", fmt.Errorf("failed to convert to JSON: %w", err)
		}
		return string(data) + "\n", nil
	default:
		return "", fmt.Errorf("unsupported format: %s (supported: %v)", format, config.ValidFormats())
	}
}
