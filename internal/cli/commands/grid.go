package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/fixtures/pkg/fixture"
	"github.com/ccollicutt/fixtures/pkg/grid"
)

// GridOptions holds command-line options for the grid command.
type GridOptions struct {
	Print bool
	Count string
}

// NewGridCommand creates the grid command.
func NewGridCommand(opts *Options) *cobra.Command {
	gridOpts := &GridOptions{}

	cmd := &cobra.Command{
		Use:   "grid <name>",
		Short: "Load a fixture as a character grid",
		Long: `Load a fixture as a rectangular character grid and print its size and
SHA-256 digest. Every line must have the same width.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGrid(cmd, args, opts, gridOpts)
		},
	}

	cmd.Flags().BoolVarP(&gridOpts.Print, "print", "p", false, "Print the grid")
	cmd.Flags().StringVar(&gridOpts.Count, "count", "", "Count cells equal to this character")

	return cmd
}

func runGrid(cmd *cobra.Command, args []string, opts *Options, gridOpts *GridOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if len(gridOpts.Count) > 1 {
		return fmt.Errorf("--count takes a single character, got %q", gridOpts.Count)
	}

	cfg, err := opts.loadConfig(ctx)
	if err != nil {
		return err
	}

	r, err := cfg.Resolver()
	if err != nil {
		return err
	}

	f, err := fixture.Open(ctx, r, args[0])
	if err != nil {
		return err
	}

	g, err := grid.FromFixture(f)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "%s: %dx%d sha256:%s\n", f.Name(), g.Width, g.Height, g.SHA256())

	if gridOpts.Count != "" {
		fmt.Fprintf(w, "%q: %d\n", gridOpts.Count, g.Count(gridOpts.Count[0]))
	}

	if gridOpts.Print {
		if err := g.Print(w); err != nil {
			return fmt.Errorf("printing grid: %w", err)
		}
	}

	return nil
}
