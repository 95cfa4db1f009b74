package grid

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ccollicutt/fixtures/pkg/fixture"
)

const forest = `..##.
#...#
.#..#
`

func mustGrid(t *testing.T, data string) *Grid {
	t.Helper()
	g, err := FromFixture(fixture.New("t", []byte(data)))
	if err != nil {
		t.Fatalf("FromFixture() error = %v", err)
	}
	return g
}

func TestFromFixture(t *testing.T) {
	g := mustGrid(t, forest)

	if g.Width != 5 || g.Height != 3 {
		t.Errorf("size = %dx%d, want 5x3", g.Width, g.Height)
	}
	if string(g.Line(1)) != "#...#" {
		t.Errorf("Line(1) = %q", g.Line(1))
	}
}

func TestFromFixture_BadWidth(t *testing.T) {
	_, err := FromFixture(fixture.New("t", []byte("abc\nab\n")))
	if !errors.Is(err, ErrBadLineWidth) {
		t.Errorf("FromFixture() error = %v, want ErrBadLineWidth", err)
	}
}

func TestFromFixture_EmptyRows(t *testing.T) {
	for _, data := range []string{"\n\n", "\nab\n", "ab\n\n\n"} {
		_, err := FromFixture(fixture.New("t", []byte(data)))
		if !errors.Is(err, ErrBadLineWidth) {
			t.Errorf("FromFixture(%q) error = %v, want ErrBadLineWidth", data, err)
		}
	}
}

func TestFromFixture_HighBytes(t *testing.T) {
	g := mustGrid(t, "\xff\x80\n\x01\x02")
	if g.Width != 2 {
		t.Fatalf("Width = %d, want 2", g.Width)
	}
	if g.Get(Pos{0, 0}) != 0xff || g.Get(Pos{1, 0}) != 0x80 {
		t.Errorf("row 0 = %x", g.Line(0))
	}
}

func TestGrid_Empty(t *testing.T) {
	g := mustGrid(t, "")
	if g.Width != 0 || g.Height != 0 {
		t.Errorf("size = %dx%d, want 0x0", g.Width, g.Height)
	}
}

func TestGrid_IndexAndPos(t *testing.T) {
	g := mustGrid(t, forest)

	if i := g.Index(Pos{3, 2}); i != 13 {
		t.Errorf("Index((3,2)) = %d, want 13", i)
	}
	if p := g.Pos(13); p != (Pos{3, 2}) {
		t.Errorf("Pos(13) = %v, want (3, 2)", p)
	}
	for _, p := range []Pos{{-1, 0}, {5, 0}, {0, 3}, {0, -1}} {
		if g.Index(p) != -1 {
			t.Errorf("Index(%v) = %d, want -1", p, g.Index(p))
		}
	}
}

func TestGrid_GetSet(t *testing.T) {
	g := mustGrid(t, forest)

	if g.Get(Pos{2, 0}) != '#' {
		t.Errorf("Get((2,0)) = %c, want #", g.Get(Pos{2, 0}))
	}
	if g.GetWithDefault(Pos{9, 9}, '?') != '?' {
		t.Error("GetWithDefault() did not return default outside the grid")
	}

	if err := g.Set(Pos{0, 0}, 'O'); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if g.Get(Pos{0, 0}) != 'O' {
		t.Error("Set() did not write the cell")
	}
	if err := g.Set(Pos{5, 0}, 'O'); err == nil {
		t.Error("Set() outside the grid expected error")
	}
}

func TestGrid_GetPanicsOutOfBounds(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Get() outside the grid did not panic")
		}
	}()
	mustGrid(t, forest).Get(Pos{-1, -1})
}

func TestGrid_Search(t *testing.T) {
	g := mustGrid(t, forest)

	if n := g.Count('#'); n != 6 {
		t.Errorf("Count(#) = %d, want 6", n)
	}
	if i := g.FindOne('#'); i != 2 {
		t.Errorf("FindOne(#) = %d, want 2", i)
	}
	if i := g.FindOne('X'); i != -1 {
		t.Errorf("FindOne(X) = %d, want -1", i)
	}
	if diff := cmp.Diff([]int{2, 3, 5, 9, 11, 14}, g.FindAll('#')); diff != "" {
		t.Errorf("FindAll(#) mismatch (-want +got):\n%s", diff)
	}
}

func TestGrid_CopyIsIndependent(t *testing.T) {
	g := mustGrid(t, forest)
	c := g.Copy()

	if err := c.Set(Pos{0, 0}, 'X'); err != nil {
		t.Fatal(err)
	}
	if g.Get(Pos{0, 0}) != '.' {
		t.Error("modifying the copy changed the original")
	}
	if g.SHA256() == c.SHA256() {
		t.Error("SHA256() equal after modification")
	}
}

func TestGrid_Print(t *testing.T) {
	var buf bytes.Buffer
	if err := mustGrid(t, forest).Print(&buf); err != nil {
		t.Fatalf("Print() error = %v", err)
	}
	if buf.String() != forest {
		t.Errorf("Print() = %q, want %q", buf.String(), forest)
	}
}

func TestPos(t *testing.T) {
	p := Pos{2, 3}

	if got := p.Add(Pos{1, -1}); got != (Pos{3, 2}) {
		t.Errorf("Add() = %v", got)
	}
	if got := p.Subtract(Pos{2, 3}); !got.IsZero() {
		t.Errorf("Subtract() = %v, want zero", got)
	}
	want := [4]Pos{{2, 2}, {3, 3}, {2, 4}, {1, 3}}
	if got := p.URDL(); got != want {
		t.Errorf("URDL() = %v, want %v", got, want)
	}
	if got := (Pos{-3, 4}).Manhattan(); got != 7 {
		t.Errorf("Manhattan() = %d, want 7", got)
	}
	if got := (Pos{3, 4}).Distance(); got != 5 {
		t.Errorf("Distance() = %v, want 5", got)
	}
	if p.String() != "(2, 3)" {
		t.Errorf("String() = %q", p.String())
	}
}

func TestPos_Degrees(t *testing.T) {
	tests := []struct {
		p    Pos
		want float64
	}{
		{Right, 0},
		{Down, 90},
		{Left, 180},
		{Up, 270},
		{Pos{1, 1}, 45},
	}
	for _, tt := range tests {
		if got := tt.p.Degrees(); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("%v.Degrees() = %v, want %v", tt.p, got, tt.want)
		}
	}
}
