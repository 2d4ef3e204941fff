/*
Package coords implements the pixel and character cell coordinate systems
of a cell based image.

A cell position that has been verified to lie inside an image is carried
around as a CheckedCell so that grid indexing never has to re-validate it.
CheckedCell values can only be produced by the bounds checking functions in
this package.
*/
package coords

// Point is a position in image pixel coordinates. It may lie outside the
// image; negative coordinates are valid.
type Point struct {
	X, Y int
}

// Clamped returns the point limited to 0..maxX, 0..maxY (inclusive).
func (p Point) Clamped(maxX, maxY int) Point {
	x := p.X
	if x < 0 {
		x = 0
	} else if x > maxX {
		x = maxX
	}
	y := p.Y
	if y < 0 {
		y = 0
	} else if y > maxY {
		y = maxY
	}
	return Point{x, y}
}

// CellPos is the position of a character cell: column and row.
type CellPos struct {
	Column, Row int
}

// SizeInCells is the size of a cell grid.
type SizeInCells struct {
	Width, Height int
}

// Area returns Width * Height.
func (s SizeInCells) Area() int {
	return s.Width * s.Height
}

// Contains reports whether the cell position lies inside a grid of this size.
func (s SizeInCells) Contains(p CellPos) bool {
	return p.Column >= 0 && p.Column < s.Width && p.Row >= 0 && p.Row < s.Height
}

// CheckedCell is a CellPos that is known to be inside the grid it was
// checked against. The zero value is the top-left cell, which is in bounds
// for any non-empty grid.
type CheckedCell struct {
	pos CellPos
}

// Pos returns the underlying cell position.
func (c CheckedCell) Pos() CellPos {
	return c.pos
}

// WithinBounds checks candidate against bounds and returns the checked cell
// and true if it is inside.
func WithinBounds(candidate CellPos, bounds SizeInCells) (CheckedCell, bool) {
	if bounds.Contains(candidate) {
		return CheckedCell{candidate}, true
	}
	return CheckedCell{}, false
}

// CellRect is a rectangle of cells. Width and Height are in cells and never
// negative in a normalized rectangle.
type CellRect struct {
	TopLeft CellPos
	Size    SizeInCells
}

// CheckedRect is a CellRect that is known to fit inside the grid it was
// checked against.
type CheckedRect struct {
	rect CellRect
}

// Rect returns the underlying cell rectangle.
func (r CheckedRect) Rect() CellRect {
	return r.rect
}

// ClampRect limits a cell rectangle to fit inside a grid of the given size.
func ClampRect(candidate CellRect, bounds SizeInCells) CheckedRect {
	left := clamp(candidate.TopLeft.Column, 0, bounds.Width)
	right := clamp(candidate.TopLeft.Column+candidate.Size.Width, 0, bounds.Width)
	top := clamp(candidate.TopLeft.Row, 0, bounds.Height)
	bottom := clamp(candidate.TopLeft.Row+candidate.Size.Height, 0, bounds.Height)
	return CheckedRect{CellRect{
		TopLeft: CellPos{left, top},
		Size:    SizeInCells{right - left, bottom - top},
	}}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// FloorDiv is division rounding towards negative infinity.
func FloorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// FloorMod is the remainder matching FloorDiv; it is never negative for a
// positive divisor.
func FloorMod(a, b int) int {
	m := a % b
	if m != 0 && (m < 0) != (b < 0) {
		m += b
	}
	return m
}
