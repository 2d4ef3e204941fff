/*
Package update describes the extent of one edit gesture as an explicit set
of affected pixels, and maps it onto the character cells it touches.

Keeping individual pixels rather than a rectangle allows arbitrarily shaped
brush strokes to share one code path with single clicks and rubber-band
rectangles.
*/
package update

import (
	"math"

	"github.com/vicpen/vicpen/coords"
)

// Mask records which pixels inside one cell are affected. Bit x + y*width
// corresponds to the pixel at (x, y). Cells are at most 8 by 8 pixels so 64
// bits always suffice.
type Mask uint64

// Bit reports whether pixel offset i is set.
func (m Mask) Bit(i int) bool {
	return m&(1<<uint(i)) != 0
}

// AllBits returns a mask with the first n bits set.
func AllBits(n int) Mask {
	if n >= 64 {
		return ^Mask(0)
	}
	return Mask(1)<<uint(n) - 1
}

// Area is the set of pixels affected by an update.
type Area struct {
	pixels []coords.Point
}

// FromPixel returns an area covering a single pixel.
func FromPixel(p coords.Point) Area {
	return Area{pixels: []coords.Point{p}}
}

// PixelLine returns an area covering a digital line from p0 to p1,
// excluding p0 itself. When a drag is drawn as consecutive segments the
// previous segment already painted its end point; excluding the start
// keeps blend-like operations from applying twice at the joins. A
// zero-length line yields an empty area.
func PixelLine(p0, p1 coords.Point) Area {
	dx := p1.X - p0.X
	dy := p1.Y - p0.Y
	steps := abs(dx)
	if abs(dy) > steps {
		steps = abs(dy)
	}
	steps++
	if steps == 1 {
		return Area{}
	}
	fx := float64(dx) / float64(steps-1)
	fy := float64(dy) / float64(steps-1)
	pixels := make([]coords.Point, 0, steps-1)
	for step := 1; step < steps; step++ {
		pixels = append(pixels, coords.Point{
			X: int(math.Round(float64(p0.X) + fx*float64(step))),
			Y: int(math.Round(float64(p0.Y) + fy*float64(step))),
		})
	}
	return Area{pixels: pixels}
}

// Rectangle returns an area covering every pixel from p0 to p1 inclusive.
// The corners may be given in any order.
func Rectangle(p0, p1 coords.Point) Area {
	x0, x1 := minMax(p0.X, p1.X)
	y0, y1 := minMax(p0.Y, p1.Y)
	pixels := make([]coords.Point, 0, (x1-x0+1)*(y1-y0+1))
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			pixels = append(pixels, coords.Point{X: x, Y: y})
		}
	}
	return Area{pixels: pixels}
}

// Pixels returns the affected pixels in insertion order.
func (a Area) Pixels() []coords.Point {
	return a.pixels
}

// CellsAndPixels returns the cells of the given grid touched by the area,
// each with a mask of the affected pixels inside the cell. Pixels outside
// the grid are dropped. A cell is present iff at least one of its pixels is
// affected.
func (a Area) CellsAndPixels(grid coords.Grid) map[coords.CheckedCell]Mask {
	cells := make(map[coords.CheckedCell]Mask)
	for _, p := range a.pixels {
		cell, cx, cy, ok := grid.Cell(p)
		if !ok {
			continue
		}
		cells[cell] |= 1 << uint(cx+cy*grid.CellWidth)
	}
	return cells
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func minMax(a, b int) (int, int) {
	if a > b {
		return b, a
	}
	return a, b
}
