// Package resolver maps logical fixture names to their contents.
package resolver

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// DefaultExt is appended to fixture names when no extension is configured.
const DefaultExt = ".txt"

// ErrNotFound is matched by resolver errors for names with no backing data.
var ErrNotFound = errors.New("fixture not found")

// Resolver returns the complete contents of a named fixture.
type Resolver interface {
	Resolve(ctx context.Context, name string) ([]byte, error)
}

// Func adapts a plain function to the Resolver interface.
type Func func(ctx context.Context, name string) ([]byte, error)

// Resolve calls fn(ctx, name).
func (fn Func) Resolve(ctx context.Context, name string) ([]byte, error) {
	return fn(ctx, name)
}

// Dir resolves names to files laid out as <Base>/<name><Ext>.
type Dir struct {
	Base string
	Ext  string
}

// NewDir creates a Dir resolver using DefaultExt.
func NewDir(base string) *Dir {
	return &Dir{Base: base, Ext: DefaultExt}
}

// Path returns the file path a name maps to.
func (d *Dir) Path(name string) string {
	return filepath.Join(d.Base, name+d.ext())
}

// Resolve reads the file for name. Names that would escape Base are rejected.
func (d *Dir) Resolve(_ context.Context, name string) ([]byte, error) {
	if name == "" || !filepath.IsLocal(name) {
		return nil, fmt.Errorf("invalid fixture name %q", name)
	}

	p := d.Path(name)
	data, err := os.ReadFile(p) // #nosec G304 -- fixture paths are built from the configured base
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, p)
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", p, err)
	}
	return data, nil
}

// Names expands glob patterns over fixture names in Base and returns the
// deduplicated, sorted list of matching names.
func (d *Dir) Names(patterns ...string) ([]string, error) {
	if len(patterns) == 0 {
		patterns = []string{"*"}
	}

	seen := make(map[string]bool)
	var result []string

	for _, pattern := range patterns {
		matches, err := filepath.Glob(filepath.Join(d.Base, pattern+d.ext()))
		if err != nil {
			return nil, fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
		}

		for _, match := range matches {
			rel, err := filepath.Rel(d.Base, match)
			if err != nil {
				continue
			}
			name := strings.TrimSuffix(rel, d.ext())
			if !seen[name] {
				seen[name] = true
				result = append(result, name)
			}
		}
	}

	sort.Strings(result)
	return result, nil
}

func (d *Dir) ext() string {
	if d.Ext == "" {
		return DefaultExt
	}
	return d.Ext
}

// FS resolves names inside a file system such as an embed.FS, using the
// same <Dir>/<name><Ext> layout as Dir.
type FS struct {
	FS  fs.FS
	Dir string
	Ext string
}

// Resolve reads the file for name from the file system.
func (r *FS) Resolve(_ context.Context, name string) ([]byte, error) {
	ext := r.Ext
	if ext == "" {
		ext = DefaultExt
	}

	dir := r.Dir
	if dir == "" {
		dir = "."
	}

	if name == "" || !fs.ValidPath(name) {
		return nil, fmt.Errorf("invalid fixture name %q", name)
	}
	p := path.Join(dir, name+ext)

	data, err := fs.ReadFile(r.FS, p)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, p)
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", p, err)
	}
	return data, nil
}

// Chain tries each resolver in order and returns the first successful result.
type Chain []Resolver

// Resolve returns the first successful resolution, or every failure combined.
func (c Chain) Resolve(ctx context.Context, name string) ([]byte, error) {
	var result *multierror.Error
	for _, r := range c {
		data, err := r.Resolve(ctx, name)
		if err == nil {
			return data, nil
		}
		result = multierror.Append(result, err)
		if ctx.Err() != nil {
			break
		}
	}

	if result == nil {
		return nil, fmt.Errorf("%w: no resolvers configured", ErrNotFound)
	}
	return nil, result.ErrorOrNil()
}
