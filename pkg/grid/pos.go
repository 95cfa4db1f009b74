package grid

import (
	"fmt"
	"math"
)

// Unit steps in screen coordinates (Y grows downwards).
var (
	Up    = Pos{0, -1}
	Right = Pos{1, 0}
	Down  = Pos{0, 1}
	Left  = Pos{-1, 0}
)

// Pos is a cell coordinate.
type Pos struct {
	X int
	Y int
}

func (p Pos) IsZero() bool {
	return p == Pos{}
}

func (p Pos) Add(v Pos) Pos {
	return Pos{p.X + v.X, p.Y + v.Y}
}

func (p Pos) Subtract(v Pos) Pos {
	return Pos{p.X - v.X, p.Y - v.Y}
}

// URDL returns the neighbours up, right, down and left of p.
func (p Pos) URDL() [4]Pos {
	return [4]Pos{p.Add(Up), p.Add(Right), p.Add(Down), p.Add(Left)}
}

// Degrees returns the angle of p from the positive x axis in [0, 360).
func (p Pos) Degrees() float64 {
	theta := math.Atan2(float64(p.Y), float64(p.X))
	if theta < 0 {
		theta += 2 * math.Pi
	}
	return theta * 180 / math.Pi
}

// Distance returns the straight-line distance from the origin.
func (p Pos) Distance() float64 {
	return math.Hypot(float64(p.X), float64(p.Y))
}

// Manhattan returns |X| + |Y|.
func (p Pos) Manhattan() int {
	return abs(p.X) + abs(p.Y)
}

func (p Pos) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
