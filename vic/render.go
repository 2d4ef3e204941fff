package vic

import (
	"fmt"
	"image"

	"github.com/vicpen/vicpen/coords"
)

// PixelAspectRatio is the width of one target pixel relative to its
// height, as measured on a real display.
const PixelAspectRatio = 1.654822

// Render decodes the whole image to true color with the normal palette.
func (m *Image) Render() *image.RGBA {
	return m.RenderWithMode(ViewNormal)
}

// RenderWithMode decodes the whole image to true color.
func (m *Image) RenderWithMode(mode ViewMode) *image.RGBA {
	w, h := m.SizeInPixels()
	out := image.NewRGBA(image.Rect(0, 0, w, h))
	for row := 0; row < m.rows; row++ {
		for column := 0; column < m.columns; column++ {
			pixels := m.video[column+row*m.columns].Render(m.colors, mode)
			left := column * CharWidth
			top := row * CharHeight
			for y := 0; y < CharHeight; y++ {
				for x := 0; x < CharWidth; x++ {
					out.SetRGBA(left+x, top+y, pixels[x+y*CharWidth])
				}
			}
		}
	}
	return out
}

// BorderColor returns the true color of the border register.
func (m *Image) BorderColor() image.Image {
	return image.NewUniform(PaletteColor(m.colors.Get(Border)))
}

// VerticalGridLines returns the pixel x coordinates of the cell grid
// lines, including both edges.
func (m *Image) VerticalGridLines() []int {
	lines := make([]int, m.columns+1)
	for c := range lines {
		lines[c] = c * CharWidth
	}
	return lines
}

// HorizontalGridLines returns the pixel y coordinates of the cell grid
// lines, including both edges.
func (m *Image) HorizontalGridLines() []int {
	lines := make([]int, m.rows+1)
	for r := range lines {
		lines[r] = r * CharHeight
	}
	return lines
}

// ImageInfo returns a short summary of the image. Call Refresh first so
// the character count is current.
func (m *Image) ImageInfo() string {
	return fmt.Sprintf("%d characters used", m.bitmaps.Len())
}

// PixelInfo describes the cell under the given pixel, or returns the empty
// string for positions outside the image.
func (m *Image) PixelInfo(position coords.Point) string {
	cell, _, _, ok := m.Grid().Cell(position)
	if !ok {
		return ""
	}
	char := m.charAt(cell)
	mode := "high-res"
	if char.multicolor {
		mode = "multicolor"
	}
	p := cell.Pos()
	return fmt.Sprintf("(%d, %d): column %d, row %d %s color %d",
		position.X, position.Y, p.Column, p.Row, mode, char.color)
}
