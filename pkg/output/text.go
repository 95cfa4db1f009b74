package output

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
)

// TextFormatter formats reports as human-readable text.
type TextFormatter struct {
	opts FormatOptions

	header *color.Color
	failed *color.Color
	faint  *color.Color
}

// NewTextFormatter creates a new text formatter with the given options.
func NewTextFormatter(opts FormatOptions) *TextFormatter {
	f := &TextFormatter{
		opts:   opts,
		header: color.New(color.FgCyan, color.Bold),
		failed: color.New(color.FgRed),
		faint:  color.New(color.FgHiBlack),
	}
	for _, c := range []*color.Color{f.header, f.failed, f.faint} {
		if opts.Color {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return f
}

// Name returns the format name.
func (f *TextFormatter) Name() string {
	return "text"
}

// Format renders the report as text.
func (f *TextFormatter) Format(ctx context.Context, report *Report, w io.Writer) error {
	if f.opts.Quiet {
		return f.formatQuiet(report, w)
	}
	return f.formatFull(report, w)
}

func (f *TextFormatter) formatQuiet(report *Report, w io.Writer) error {
	_, err := fmt.Fprintf(w, "fixtures: %d read, %d failed, %d lines\n",
		report.Summary.FixturesRead,
		report.Summary.FixturesFailed,
		report.Summary.LinesProcessed)
	return err
}

func (f *TextFormatter) formatFull(report *Report, w io.Writer) error {
	multi := len(report.Results) > 1

	for _, result := range report.Results {
		if multi || f.opts.Verbose {
			if _, err := f.header.Fprintf(w, "== %s (%s) ==\n", result.Name, result.Type); err != nil {
				return err
			}
		}

		for _, v := range result.Values {
			if _, err := fmt.Fprintln(w, v); err != nil {
				return err
			}
		}

		if result.Failed() {
			if _, err := f.failed.Fprintf(w, "error: %s\n", result.Error); err != nil {
				return err
			}
		}

		if f.opts.Verbose {
			if _, err := f.faint.Fprintf(w, "-- %d line(s)\n", result.Lines); err != nil {
				return err
			}
		}
	}

	if f.opts.Verbose {
		_, err := f.faint.Fprintf(w, "Summary: %d fixture(s), %d failed, %d line(s) in %s\n",
			report.Summary.FixturesRead,
			report.Summary.FixturesFailed,
			report.Summary.LinesProcessed,
			report.Metadata.Duration.Round(1e6))
		return err
	}

	return nil
}
