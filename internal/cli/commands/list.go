package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// NewListCommand creates the list command.
func NewListCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "list [pattern]...",
		Short: "List fixture names in the base directory",
		Long: `List the fixtures available in the configured base directory.

Patterns use shell glob syntax over fixture names, without the extension
(e.g. "day0*").`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, args, opts)
		},
	}
}

func runList(cmd *cobra.Command, patterns []string, opts *Options) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := opts.loadConfig(ctx)
	if err != nil {
		return err
	}

	dir := cfg.Dir()
	if dir == nil {
		return errors.New("list requires a dir or chain source")
	}

	names, err := dir.Names(patterns...)
	if err != nil {
		return fmt.Errorf("listing %s: %w", dir.Base, err)
	}

	for _, name := range names {
		fmt.Fprintln(cmd.OutOrStdout(), name)
	}

	if len(names) == 0 && opts.Verbose {
		fmt.Fprintf(cmd.ErrOrStderr(), "No fixtures found in %s\n", dir.Base)
	}

	return nil
}
