package coords

// Grid describes a cell grid: the size of one cell in pixels and the size
// of the grid in cells. All conversions between pixel and cell coordinates
// go through it.
type Grid struct {
	CellWidth, CellHeight int
	Size                  SizeInCells
}

// PixelSize returns the width and height of the grid in pixels.
func (g Grid) PixelSize() (int, int) {
	return g.Size.Width * g.CellWidth, g.Size.Height * g.CellHeight
}

// CellUnclipped returns which cell the pixel is in, and the x and y of the
// pixel inside that cell. Floor division, so negative pixel coordinates map
// to negative cell coordinates with a non-negative in-cell remainder. The
// result may lie outside the grid.
func (g Grid) CellUnclipped(p Point) (CellPos, int, int) {
	column := FloorDiv(p.X, g.CellWidth)
	cx := FloorMod(p.X, g.CellWidth)
	row := FloorDiv(p.Y, g.CellHeight)
	cy := FloorMod(p.Y, g.CellHeight)
	return CellPos{column, row}, cx, cy
}

// Cell is CellUnclipped with a bounds check; ok is false if the pixel is
// outside the grid.
func (g Grid) Cell(p Point) (cell CheckedCell, cx, cy int, ok bool) {
	pos, cx, cy := g.CellUnclipped(p)
	cell, ok = WithinBounds(pos, g.Size)
	return cell, cx, cy, ok
}

// CellClamped clamps the pixel into the grid before converting, so the
// result is always in bounds.
func (g Grid) CellClamped(p Point) (CheckedCell, int, int) {
	w, h := g.PixelSize()
	pos, cx, cy := g.CellUnclipped(p.Clamped(w-1, h-1))
	cell, _ := WithinBounds(pos, g.Size)
	return cell, cx, cy
}

// CellRounded returns the cell whose top-left corner is closest to the
// pixel, clamped into the grid. Used to pick a cell corner while dragging.
func (g Grid) CellRounded(p Point) (CheckedCell, int, int) {
	return g.CellClamped(Point{p.X + g.CellWidth/2, p.Y + g.CellHeight/2})
}

// CellRoundedUnclipped is CellRounded without the bounds clamp: the cell
// whose top-left corner is nearest the pixel, possibly outside the grid.
func (g Grid) CellRoundedUnclipped(p Point) (CellPos, int, int) {
	return g.CellUnclipped(Point{p.X + g.CellWidth/2, p.Y + g.CellHeight/2})
}

// CellCoordinatesUnclipped returns the pixel coordinates of the top-left
// corner of a cell. Accepts cells outside the grid.
func (g Grid) CellCoordinatesUnclipped(cell CellPos) Point {
	return Point{cell.Column * g.CellWidth, cell.Row * g.CellHeight}
}

// CellRectangle returns the top-left and bottom-right (exclusive) pixel
// corners of a cell rectangle. Accepts rectangles outside the grid.
func (g Grid) CellRectangle(rect CellRect) (Point, Point) {
	return g.CellCoordinatesUnclipped(rect.TopLeft),
		g.CellCoordinatesUnclipped(CellPos{
			Column: rect.TopLeft.Column + rect.Size.Width,
			Row:    rect.TopLeft.Row + rect.Size.Height,
		})
}

// CellSelection normalizes two pixel points, given in either drag
// direction, into a cell rectangle anchored at its top-left corner and
// clamped to the grid. The points select the nearest cell corners, so two
// points within the same cell yield an empty rectangle.
func (g Grid) CellSelection(p0, p1 Point) CheckedRect {
	c0, _, _ := g.CellRoundedUnclipped(p0)
	c1, _, _ := g.CellRoundedUnclipped(p1)
	column, width := ordered(c0.Column, c1.Column)
	row, height := ordered(c0.Row, c1.Row)
	return ClampRect(CellRect{
		TopLeft: CellPos{column, row},
		Size:    SizeInCells{width, height},
	}, g.Size)
}

func ordered(a, b int) (min, span int) {
	if b >= a {
		return a, b - a
	}
	return b, a - b
}
