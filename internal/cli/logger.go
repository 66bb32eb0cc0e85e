package cli

import (
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jmylchreest/vibrant/internal/config"
)

// newLogger builds the command logger. --verbose and --quiet take precedence
// over VIBRANT_LOG_LEVEL; without either the level defaults to warn.
func newLogger(cmd *cobra.Command, cfg config.Config) hclog.Logger {
	flags := cmd.Flags()
	verbose, _ := flags.GetBool("verbose")
	quiet, _ := flags.GetBool("quiet")

	level := cfg.Level(hclog.Warn)
	switch {
	case quiet:
		level = hclog.Off
	case verbose:
		level = hclog.Debug
	}

	if level == hclog.Off {
		return hclog.New(&hclog.LoggerOptions{
			Name:   "vibrant",
			Output: io.Discard,
			Level:  hclog.Off,
		})
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:   "vibrant",
		Output: cmd.ErrOrStderr(),
		Level:  level,
		Color:  hclog.AutoColor,
	})
}

// isTerminal reports whether w is a file attached to a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
