package cli

import (
	"fmt"

	"github.com/hupe1980/wildmap/logging"
	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose          bool
	LogLevel         string   // "debug" | "info" | "warn" | "error", with --verbose
	Format           string   // "json" | "text"
	Data             []string // dataset files, loaded in order
	NormalizeUnicode bool
	SkipInvalid      bool
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the wildq CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "wildq",
		Short: "wildq - wildcard queries over 3-part keys",
		Long: `Load make/model/color style datasets into a wildcard index and query them.

Every position of a query may be left out or given as "-" or "*" to match all
values for that position.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			if _, ok := logging.ParseLevel(opts.LogLevel); !ok {
				return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", opts.LogLevel)
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "info", "log level of verbose diagnostics (debug|info|warn|error)")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringArrayVarP(&opts.Data, "data", "d", nil, "dataset file (YAML), repeatable")
	cmd.PersistentFlags().BoolVar(&opts.NormalizeUnicode, "nfc", false, "apply unicode NFC normalization to keys and values")
	cmd.PersistentFlags().BoolVar(&opts.SkipInvalid, "skip-invalid", false, "count and skip entries the index rejects")

	cmd.AddCommand(NewQueryCommand(opts))
	cmd.AddCommand(NewStatsCommand(opts))

	return cmd
}

func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
