package update

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vicpen/vicpen/coords"
)

func testGrid() coords.Grid {
	return coords.Grid{CellWidth: 8, CellHeight: 8, Size: coords.SizeInCells{Width: 4, Height: 3}}
}

func TestFromPixel(t *testing.T) {
	a := FromPixel(coords.Point{X: 3, Y: 5})
	assert.Equal(t, []coords.Point{{X: 3, Y: 5}}, a.Pixels())
}

func TestPixelLineExcludesStart(t *testing.T) {
	a := PixelLine(coords.Point{X: 0, Y: 0}, coords.Point{X: 3, Y: 0})
	assert.Equal(t, []coords.Point{{X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}}, a.Pixels())
}

// A drag that has not moved yet must not paint anything; the previous
// segment already painted its end point.
func TestPixelLineDegenerate(t *testing.T) {
	a := PixelLine(coords.Point{X: 4, Y: 4}, coords.Point{X: 4, Y: 4})
	assert.Empty(t, a.Pixels())
}

func TestPixelLineDiagonal(t *testing.T) {
	a := PixelLine(coords.Point{X: 0, Y: 0}, coords.Point{X: 2, Y: 2})
	assert.Equal(t, []coords.Point{{X: 1, Y: 1}, {X: 2, Y: 2}}, a.Pixels())
}

func TestPixelLineSteep(t *testing.T) {
	a := PixelLine(coords.Point{X: 0, Y: 0}, coords.Point{X: 1, Y: 4})
	require.Len(t, a.Pixels(), 4)
	// Every y between 1 and 4 appears exactly once.
	for i, p := range a.Pixels() {
		assert.Equal(t, i+1, p.Y)
	}
}

func TestRectangle(t *testing.T) {
	a := Rectangle(coords.Point{X: 2, Y: 1}, coords.Point{X: 0, Y: 0})
	assert.Len(t, a.Pixels(), 6)
	assert.Contains(t, a.Pixels(), coords.Point{X: 0, Y: 0})
	assert.Contains(t, a.Pixels(), coords.Point{X: 2, Y: 1})
}

func TestCellsAndPixels(t *testing.T) {
	a := Rectangle(coords.Point{X: 6, Y: 0}, coords.Point{X: 9, Y: 1})
	cells := a.CellsAndPixels(testGrid())
	require.Len(t, cells, 2)

	left, ok := coords.WithinBounds(coords.CellPos{Column: 0, Row: 0}, testGrid().Size)
	require.True(t, ok)
	right, ok := coords.WithinBounds(coords.CellPos{Column: 1, Row: 0}, testGrid().Size)
	require.True(t, ok)

	// Pixels 6,7 of rows 0 and 1 in the left cell.
	assert.Equal(t, Mask(1<<6|1<<7|1<<14|1<<15), cells[left])
	// Pixels 0,1 of rows 0 and 1 in the right cell.
	assert.Equal(t, Mask(1<<0|1<<1|1<<8|1<<9), cells[right])
}

func TestCellsAndPixelsDropsOutOfBounds(t *testing.T) {
	a := Rectangle(coords.Point{X: -2, Y: -2}, coords.Point{X: 0, Y: 0})
	cells := a.CellsAndPixels(testGrid())
	require.Len(t, cells, 1)
	for _, mask := range cells {
		assert.Equal(t, Mask(1), mask)
	}
}

func TestCellsAndPixelsEmpty(t *testing.T) {
	a := PixelLine(coords.Point{X: 1, Y: 1}, coords.Point{X: 1, Y: 1})
	assert.Empty(t, a.CellsAndPixels(testGrid()))
}

func TestMask(t *testing.T) {
	m := AllBits(64)
	for i := 0; i < 64; i++ {
		assert.True(t, m.Bit(i))
	}
	assert.False(t, AllBits(3).Bit(3))
	assert.True(t, AllBits(3).Bit(2))
}
