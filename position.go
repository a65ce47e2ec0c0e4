// SPDX-License-Identifier: MIT

package grid

// Position is a pair of coordinates accepted by the hard indexers. Both Pos
// and Pair implement it, so callers can index with whichever shape they hold.
type Position interface {
	XY() (x, y int)
}

// Pos is a named (X, Y) position.
type Pos struct {
	X, Y int
}

// XY implements Position.
func (p Pos) XY() (int, int) { return p.X, p.Y }

// Pair is an (x, y) position as a two-element array.
type Pair [2]int

// XY implements Position.
func (p Pair) XY() (int, int) { return p[0], p[1] }

// Rect is a requested rectangular window: origin (X, Y), extent Width x Height.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Clip returns the part of r that lies inside a width x height owner. A rect
// whose origin lies outside the owner, or whose extent is not positive, clips
// to the empty Rect.
func (r Rect) Clip(width, height int) Rect {
	if r.X < 0 || r.Y < 0 || r.X >= width || r.Y >= height || r.Width <= 0 || r.Height <= 0 {
		return Rect{}
	}
	return Rect{
		X:      r.X,
		Y:      r.Y,
		Width:  min(r.Width, width-r.X),
		Height: min(r.Height, height-r.Y),
	}
}

// Empty reports whether r covers no positions.
func (r Rect) Empty() bool { return r.Width <= 0 || r.Height <= 0 }
