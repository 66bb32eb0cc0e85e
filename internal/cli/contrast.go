package cli

import (
	"errors"
	"fmt"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/vibrant/internal/colour"
)

type contrastOptions struct {
	fg       string
	bg       string
	fgAlpha  float64
	bgAlpha  float64
	minRatio float64
}

func newContrastCmd() *cobra.Command {
	opts := &contrastOptions{}

	cmd := &cobra.Command{
		Use:   "contrast",
		Short: "Report the contrast ratio between two colours",
		Long: `Report the WCAG 2.0 contrast ratio of a foreground colour over a background,
and the lowest foreground alpha that still reaches --min.

The background must be opaque; a translucent foreground is blended over it.

Examples:
  # White text on a dark blue swatch
  vibrant contrast --fg "#ffffff" --bg "#1a2b5c"

  # Half transparent black over yellow, checked against AAA
  vibrant contrast --fg "#000000" --fg-alpha 0.5 --bg "#ffeb3b" --min 7`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runContrast(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.fg, "fg", "#ffffff", "foreground colour (hex)")
	cmd.Flags().StringVar(&opts.bg, "bg", "", "background colour (hex)")
	cmd.Flags().Float64Var(&opts.fgAlpha, "fg-alpha", 1, "foreground alpha (0-1)")
	cmd.Flags().Float64Var(&opts.bgAlpha, "bg-alpha", 1, "background alpha (0-1), must be 1 for a valid ratio")
	cmd.Flags().Float64Var(&opts.minRatio, "min", colour.MinContrastBodyText, "minimum contrast ratio for the alpha search")
	_ = cmd.MarkFlagRequired("bg")

	return cmd
}

func runContrast(cmd *cobra.Command, opts *contrastOptions) error {
	fg, err := parseColour(opts.fg, opts.fgAlpha)
	if err != nil {
		return fmt.Errorf("invalid foreground: %w", err)
	}
	bg, err := parseColour(opts.bg, opts.bgAlpha)
	if err != nil {
		return fmt.Errorf("invalid background: %w", err)
	}
	if opts.minRatio < 1 || opts.minRatio > 21 {
		return fmt.Errorf("minimum ratio must be between 1 and 21, got %.2f", opts.minRatio)
	}

	ratio, err := colour.ContrastRatio(fg, bg)
	if err != nil {
		return fmt.Errorf("cannot compute contrast: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "foreground:     %s\n", fg.Hex())
	fmt.Fprintf(out, "background:     %s\n", bg.Hex())
	fmt.Fprintf(out, "contrast ratio: %.2f:1 (%s)\n", ratio, wcagLevel(ratio))

	alpha, err := colour.MinimumAlpha(fg, bg, opts.minRatio)
	switch {
	case errors.Is(err, colour.ErrNoViableAlpha):
		fmt.Fprintf(out, "minimum alpha:  none reaches %.2f:1\n", opts.minRatio)
	case err != nil:
		return fmt.Errorf("cannot compute minimum alpha: %w", err)
	default:
		fmt.Fprintf(out, "minimum alpha:  %.2f for %.2f:1\n", alpha, opts.minRatio)
	}

	return nil
}

// parseColour parses "#rgb" or "#rrggbb" and applies a 0-1 alpha.
func parseColour(hex string, alpha float64) (colour.Color, error) {
	if alpha < 0 || alpha > 1 {
		return 0, fmt.Errorf("alpha must be between 0 and 1, got %.2f", alpha)
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return 0, err
	}
	r, g, b := c.RGB255()
	return colour.ARGB(uint8(math.Round(alpha*255)), r, g, b), nil
}

func wcagLevel(ratio float64) string {
	switch {
	case ratio >= 7:
		return "AAA"
	case ratio >= colour.MinContrastBodyText:
		return "AA"
	case ratio >= colour.MinContrastTitleText:
		return "AA large text"
	default:
		return "fail"
	}
}
