// Package output provides formatting for fixture inspection results.
package output

import (
	"time"
)

// Report is the complete output of a CLI run over one or more fixtures.
type Report struct {
	// Summary provides aggregate statistics.
	Summary Summary

	// Results contains one entry per requested fixture.
	Results []*Result

	// Metadata provides context about the run.
	Metadata Metadata
}

// Result is what was read from a single fixture.
type Result struct {
	// Name is the logical fixture name.
	Name string

	// Type is the conversion applied to each line ("lines" when none).
	Type string

	// Values holds the converted lines in order.
	Values []any `json:",omitempty"`

	// Lines is the number of lines consumed.
	Lines int

	// Error describes why the fixture could not be read or parsed.
	Error string `json:",omitempty"`
}

// Failed returns true if the fixture could not be fully read or parsed.
func (r *Result) Failed() bool {
	return r.Error != ""
}

// Summary provides aggregate statistics.
type Summary struct {
	// FixturesRead is the number of fixtures requested.
	FixturesRead int

	// FixturesFailed is the number of fixtures with errors.
	FixturesFailed int

	// LinesProcessed is the total number of lines consumed.
	LinesProcessed int
}

// Metadata provides context about the run.
type Metadata struct {
	// Source describes where fixtures were resolved from.
	Source string

	// GeneratedAt is when the report was produced.
	GeneratedAt time.Time

	// Duration is how long reading took.
	Duration time.Duration
}

// NewReport builds a Report and its Summary from per-fixture results.
func NewReport(results []*Result, source string, start time.Time) *Report {
	report := &Report{
		Results: results,
		Metadata: Metadata{
			Source:      source,
			GeneratedAt: time.Now(),
		},
	}
	report.Metadata.Duration = report.Metadata.GeneratedAt.Sub(start)

	report.Summary.FixturesRead = len(results)
	for _, r := range results {
		if r.Failed() {
			report.Summary.FixturesFailed++
		}
		report.Summary.LinesProcessed += r.Lines
	}

	return report
}

// HasFailures returns true if any fixture failed.
func (r *Report) HasFailures() bool {
	return r.Summary.FixturesFailed > 0
}
