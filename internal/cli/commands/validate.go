package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/fixtures/pkg/config"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <config-file>",
		Short: "Validate a configuration file",
		Long: `Validate a fixtures configuration file without reading any fixtures.

Checks:
  - YAML syntax
  - Source type and required fields
  - Remote URL format
  - Base directory contents (warning only)`,
		Args: cobra.ExactArgs(1),
		RunE: runValidate,
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
	configPath := args[0]
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Validating %s...\n", configPath)

	cfg, err := config.Load(ctx, configPath)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	fmt.Fprintf(w, "\nConfiguration valid!\n")
	fmt.Fprintf(w, "  Source:    %s\n", cfg.Source)
	fmt.Fprintf(w, "  Extension: %s\n", cfg.Extension)
	if cfg.Source != config.SourceHTTP {
		fmt.Fprintf(w, "  Base dir:  %s\n", cfg.BaseDir)
	}
	if cfg.Source != config.SourceDir {
		fmt.Fprintf(w, "  Remote:    %s (timeout %s, %d retries)\n", cfg.Remote.URL, cfg.Remote.Timeout, cfg.Remote.Retries)
	}

	// Check the base directory (warnings only)
	if dir := cfg.Dir(); dir != nil {
		names, err := dir.Names()
		switch {
		case err != nil:
			fmt.Fprintf(w, "\nWarning: Error listing %s: %v\n", dir.Base, err)
		case len(names) == 0:
			fmt.Fprintf(w, "\nWarning: No fixtures found in %s\n", dir.Base)
		default:
			fmt.Fprintf(w, "\nFixtures found: %d\n", len(names))
			for _, name := range names {
				fmt.Fprintf(w, "  - %s\n", name)
			}
		}
	}

	return nil
}
