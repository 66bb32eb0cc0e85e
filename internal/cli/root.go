// Package cli provides the command-line interface for vibrant.
package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/vibrant/internal/version"
)

// NewRootCmd creates the root command with every subcommand attached.
// Each call returns an independent command tree.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "vibrant",
		Short: "Extract vibrant and muted theme colours from images",
		Long: `Vibrant reduces an image to a small set of representative colours and picks
six named swatches from them: vibrant, light vibrant, dark vibrant, muted,
light muted and dark muted. The swatches are suited to theming UI around the
image, such as album art or wallpapers.`,
		Version:      version.Short(),
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress non-error output")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newExtractCmd())
	rootCmd.AddCommand(newContrastCmd())

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !asJSON {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), version.String())
				return err
			}
			data, err := json.MarshalIndent(version.GetInfo(), "", "  ")
			if err != nil {
				return fmt.Errorf("failed to convert to JSON: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print version information as JSON")
	return cmd
}
