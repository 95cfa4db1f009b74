// Package fixture loads named puzzle inputs and exposes their lines.
package fixture

import (
	"bytes"
	"context"
	"iter"
	"strings"

	"golang.org/x/text/encoding/charmap"

	"github.com/ccollicutt/fixtures/pkg/resolver"
)

// Fixture is a single-pass source of lines over a fully loaded input.
// It is not safe for concurrent use; each caller owns its own Fixture.
type Fixture struct {
	name string
	data []byte

	cursor int
}

// New creates a Fixture over an in-memory buffer.
func New(name string, data []byte) *Fixture {
	return &Fixture{
		name: name,
		data: data,
	}
}

// Open resolves name to its contents and returns a Fixture positioned at the
// first line. Resolution failures are returned as a *ResourceError.
func Open(ctx context.Context, r resolver.Resolver, name string) (*Fixture, error) {
	data, err := r.Resolve(ctx, name)
	if err != nil {
		return nil, &ResourceError{Name: name, Err: err}
	}
	return New(name, data), nil
}

// Name returns the logical name the fixture was opened with.
func (f *Fixture) Name() string {
	return f.name
}

// Data returns the raw contents. Callers must not modify the returned slice.
func (f *Fixture) Data() []byte {
	return f.data
}

// Next returns the next line without its trailing newline.
// Returns false once the input is depleted. A trailing newline at the very
// end of the input does not produce an extra empty line.
//
// Each byte is decoded as the code point of the same value (ISO-8859-1), so
// multi-byte UTF-8 input comes back as one rune per byte.
func (f *Fixture) Next() (string, bool) {
	if f.cursor >= len(f.data) {
		return "", false
	}

	end := len(f.data)
	if i := bytes.IndexByte(f.data[f.cursor:], '\n'); i >= 0 {
		end = f.cursor + i
	}

	line := decodeLine(f.data[f.cursor:end])
	f.cursor = end + 1
	return line, true
}

// Lines returns the remaining lines as an iterator. It shares state with
// Next: lines consumed by one are not seen by the other.
func (f *Fixture) Lines() iter.Seq[string] {
	return func(yield func(string) bool) {
		for {
			line, ok := f.Next()
			if !ok || !yield(line) {
				return
			}
		}
	}
}

func decodeLine(b []byte) string {
	var sb strings.Builder
	sb.Grow(len(b))
	for _, c := range b {
		sb.WriteRune(charmap.ISO8859_1.DecodeByte(c))
	}
	return sb.String()
}
