// Package cli provides the command-line interface for fixtures.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/fixtures/internal/cli/commands"
)

// Execute runs the root command and returns the exit code.
func Execute() int {
	rootCmd := NewRootCommand()

	if err := rootCmd.Execute(); err != nil {
		// Print error to stderr (SilenceErrors prevents Cobra from doing this)
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2 // Configuration or runtime error
	}

	return commands.ExitCode
}

// NewRootCommand creates the root cobra command.
func NewRootCommand() *cobra.Command {
	opts := &commands.Options{}

	rootCmd := &cobra.Command{
		Use:   "fixtures",
		Short: "Read and parse puzzle input fixtures",
		Long: `fixtures loads named puzzle inputs and parses them line by line.

A fixture name maps to <base-dir>/<name>.txt by default. Fixtures can also be
fetched over HTTP or from a local directory with an HTTP fallback; see
"fixtures validate" for the configuration format.

ENVIRONMENT:
  FIXTURES_BASE_DIR   Overrides base_dir
  FIXTURES_SESSION    Session cookie for remote fixtures`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	opts.AddFlags(rootCmd.PersistentFlags())

	// Add subcommands
	rootCmd.AddCommand(commands.NewLinesCommand(opts))
	rootCmd.AddCommand(commands.NewParseCommand(opts))
	rootCmd.AddCommand(commands.NewGridCommand(opts))
	rootCmd.AddCommand(commands.NewListCommand(opts))
	rootCmd.AddCommand(commands.NewValidateCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	return rootCmd
}
