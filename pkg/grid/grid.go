// Package grid holds rectangular byte grids read from fixtures.
package grid

import (
	"bytes"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"

	"github.com/ccollicutt/fixtures/pkg/fixture"
)

// ErrBadLineWidth is returned when fixture lines differ in length.
var ErrBadLineWidth = errors.New("bad line width")

// Grid is a row-major byte grid.
type Grid struct {
	Data   []byte
	Width  int
	Height int
}

// New returns a zeroed grid.
func New(width, height int) *Grid {
	return &Grid{
		Data:   make([]byte, width*height),
		Width:  width,
		Height: height,
	}
}

// FromFixture consumes the remaining lines of f as grid rows.
// Rows are taken from the raw bytes so each cell is exactly one byte.
func FromFixture(f *fixture.Fixture) (*Grid, error) {
	g := &Grid{}
	var buf bytes.Buffer

	row := 0
	for line := range f.Lines() {
		b := encodeRow(line)
		if len(b) == 0 {
			return nil, fmt.Errorf("%s row %d: %w: empty row", f.Name(), row, ErrBadLineWidth)
		}
		if g.Height == 0 {
			g.Width = len(b)
		} else if len(b) != g.Width {
			return nil, fmt.Errorf("%s row %d: %w: got %d, want %d", f.Name(), row, ErrBadLineWidth, len(b), g.Width)
		}
		buf.Write(b)
		g.Height++
		row++
	}

	g.Data = buf.Bytes()
	return g, nil
}

// encodeRow reverses the fixture's byte-per-rune line decoding.
func encodeRow(line string) []byte {
	b := make([]byte, 0, len(line))
	for _, r := range line {
		b = append(b, byte(r))
	}
	return b
}

func (g *Grid) Copy() *Grid {
	c := &Grid{
		Data:   make([]byte, len(g.Data)),
		Width:  g.Width,
		Height: g.Height,
	}
	copy(c.Data, g.Data)
	return c
}

// Index returns the offset of pos in Data, or -1 if pos is outside the grid.
func (g *Grid) Index(pos Pos) int {
	if !g.Contains(pos) {
		return -1
	}
	return pos.Y*g.Width + pos.X
}

// Pos returns the coordinate of offset i.
func (g *Grid) Pos(i int) Pos {
	return Pos{i % g.Width, i / g.Width}
}

func (g *Grid) Contains(pos Pos) bool {
	return pos.X >= 0 && pos.X < g.Width && pos.Y >= 0 && pos.Y < g.Height
}

// Get returns the cell at pos. It panics if pos is outside the grid.
func (g *Grid) Get(pos Pos) byte {
	i := g.Index(pos)
	if i < 0 {
		panic(fmt.Sprintf("out of bounds: %v", pos))
	}
	return g.Data[i]
}

func (g *Grid) GetWithDefault(pos Pos, def byte) byte {
	i := g.Index(pos)
	if i < 0 {
		return def
	}
	return g.Data[i]
}

// Set writes b at pos.
func (g *Grid) Set(pos Pos, b byte) error {
	i := g.Index(pos)
	if i < 0 {
		return fmt.Errorf("out of bounds: %v", pos)
	}
	g.Data[i] = b
	return nil
}

// Count returns the number of cells equal to b.
func (g *Grid) Count(b byte) int {
	return bytes.Count(g.Data, []byte{b})
}

// FindOne returns the offset of the first cell equal to b, or -1.
func (g *Grid) FindOne(b byte) int {
	return bytes.IndexByte(g.Data, b)
}

// FindAll returns the offsets of every cell equal to b.
func (g *Grid) FindAll(b byte) []int {
	v := make([]int, 0)
	for i, c := range g.Data {
		if c == b {
			v = append(v, i)
		}
	}
	return v
}

// Line returns row y. The slice aliases Data.
func (g *Grid) Line(y int) []byte {
	i := y * g.Width
	return g.Data[i : i+g.Width]
}

// Print writes the grid one row per line.
func (g *Grid) Print(w io.Writer) error {
	for y := 0; y < g.Height; y++ {
		if _, err := w.Write(g.Line(y)); err != nil {
			return err
		}
		if _, err := w.Write([]byte{'\n'}); err != nil {
			return err
		}
	}
	return nil
}

// SHA256 returns the hex digest of the cell data.
func (g *Grid) SHA256() string {
	return fmt.Sprintf("%x", sha256.Sum256(g.Data))
}
