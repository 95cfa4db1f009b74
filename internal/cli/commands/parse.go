package commands

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"github.com/ccollicutt/fixtures/pkg/fixture"
	"github.com/ccollicutt/fixtures/pkg/output"
)

// parseFunc runs parse-all over a fixture and returns the values as any.
type parseFunc func(f *fixture.Fixture) ([]any, error)

func parseAs[T any](conv fixture.Converter[T]) parseFunc {
	return func(f *fixture.Fixture) ([]any, error) {
		values, err := fixture.Parse(f, conv)
		if err != nil {
			return nil, err
		}
		out := make([]any, len(values))
		for i, v := range values {
			out[i] = v
		}
		return out, nil
	}
}

// lineTypes maps --type values to their converters.
var lineTypes = map[string]parseFunc{
	"lines":  parseAs(fixture.String),
	"int":    parseAs(fixture.Int),
	"int64":  parseAs(fixture.Int64),
	"uint64": parseAs(fixture.Uint64),
	"float":  parseAs(fixture.Float64),
	"bool":   parseAs(fixture.Bool),
	"fields": parseAs(fixture.Fields),
	"ints":   parseAs(fixture.Ints),
}

func lineTypeNames() string {
	names := make([]string, 0, len(lineTypes))
	for name := range lineTypes {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, "|")
}

// NewParseCommand creates the parse command.
func NewParseCommand(opts *Options) *cobra.Command {
	var lineType string

	cmd := &cobra.Command{
		Use:   "parse <name>...",
		Short: "Parse every line of one or more fixtures",
		Long: `Parse every line of the named fixtures into the requested type.

Parsing stops at the first line that cannot be converted; no values are
printed for that fixture.

Exit codes:
  0 - All fixtures parsed
  1 - At least one line could not be converted
  2 - Configuration or runtime error`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, args, opts, lineType)
		},
	}

	cmd.Flags().StringVarP(&lineType, "type", "t", "int", "Line type ("+lineTypeNames()+")")

	return cmd
}

// NewLinesCommand creates the lines command.
func NewLinesCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "lines <name>...",
		Short: "Print the lines of one or more fixtures",
		Long: `Print the lines of the named fixtures.

Bytes are decoded one per character, so non-ASCII input is shown byte by byte.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, args, opts, "lines")
		},
	}
}

func runParse(cmd *cobra.Command, names []string, opts *Options, lineType string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	parse, ok := lineTypes[lineType]
	if !ok {
		return fmt.Errorf("unknown type %q (use %s)", lineType, lineTypeNames())
	}

	formatter, err := opts.formatter()
	if err != nil {
		return err
	}

	cfg, err := opts.loadConfig(ctx)
	if err != nil {
		return err
	}

	r, err := cfg.Resolver()
	if err != nil {
		return err
	}

	start := time.Now()

	fixtures, err := fixture.LoadAll(ctx, r, names...)
	if err != nil {
		return err
	}

	var failures *multierror.Error
	results := make([]*output.Result, 0, len(fixtures))

	for _, f := range fixtures {
		result := &output.Result{Name: f.Name(), Type: lineType}

		values, err := parse(f)
		if err != nil {
			result.Error = err.Error()
			var lineErr *fixture.LineError
			if errors.As(err, &lineErr) {
				result.Lines = lineErr.Index + 1
			}
			failures = multierror.Append(failures, fmt.Errorf("%s: %w", f.Name(), err))
		} else {
			result.Values = values
			result.Lines = len(values)
		}

		results = append(results, result)
	}

	report := output.NewReport(results, describeSource(cfg), start)

	if err := formatter.Format(ctx, report, cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}

	if err := failures.ErrorOrNil(); err != nil {
		if opts.Verbose {
			fmt.Fprintln(cmd.ErrOrStderr(), err)
		}
		ExitCode = 1
	}

	return nil
}
