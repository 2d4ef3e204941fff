package vic

import (
	"errors"
	"fmt"
	"image"
	"image/draw"

	"github.com/vicpen/vicpen/coords"
	"github.com/vicpen/vicpen/quant"
	"github.com/vicpen/vicpen/update"
)

const (
	// MaxColumns and MaxRows bound the size of an image in cells.
	MaxColumns = 10000
	MaxRows    = 10000

	// DefaultColumns and DefaultRows are the size of the target's
	// standard character screen.
	DefaultColumns = 22
	DefaultRows    = 23
)

// ColorFormat selects the cell mode used when converting true color data.
type ColorFormat int

const (
	// HighRes is 1 bit per pixel, two colors per cell.
	HighRes ColorFormat = iota
	// Multicolor is 2 bits per pixel pair, four colors per cell.
	Multicolor
)

// Image is the character cell raster image: a grid of Chars sharing one set
// of global color registers. The grid is the single source of truth; the
// character number table is a cache derived from it on demand.
type Image struct {
	colors  GlobalColors
	columns int
	rows    int
	// The character at each position, row-major, size columns x rows.
	video []Char
	// Deduplicated bitmap for each character number. Only valid after
	// Refresh.
	bitmaps *CharMap
}

// NewImage returns a blank image of the given size in cells.
func NewImage(columns, rows int) (*Image, error) {
	if columns < 1 || rows < 1 || columns > MaxColumns || rows > MaxRows {
		return nil, fmt.Errorf("vic: invalid image size: %d columns x %d rows", columns, rows)
	}
	video := make([]Char, columns*rows)
	for i := range video {
		video[i] = DefaultChar()
	}
	return &Image{
		colors:  DefaultGlobalColors(),
		columns: columns,
		rows:    rows,
		video:   video,
		bitmaps: newCharMap(),
	}, nil
}

// DefaultImage returns a blank image the size of the standard screen.
func DefaultImage() *Image {
	m, err := NewImage(DefaultColumns, DefaultRows)
	if err != nil {
		panic(err)
	}
	return m
}

// WithContent returns an image wrapping the given cells. len(video) must be
// columns*rows.
func WithContent(columns, rows int, video []Char) (*Image, error) {
	if columns < 1 || rows < 1 || columns > MaxColumns || rows > MaxRows {
		return nil, fmt.Errorf("vic: invalid image size: %d columns x %d rows", columns, rows)
	}
	if len(video) != columns*rows {
		return nil, errors.New("vic: video data does not match image size")
	}
	return &Image{
		colors:  DefaultGlobalColors(),
		columns: columns,
		rows:    rows,
		video:   video,
		bitmaps: newCharMap(),
	}, nil
}

// FromData reconstructs an image from serialized parts: a character number
// and raw color nibble per cell, and a bitmap for each character number.
// Character numbers without a bitmap decode as blank; missing trailing
// cells are padded with the default character.
func FromData(columns, rows int, colors GlobalColors, videoChars []int, videoColors []uint8, characters map[int][CharHeight]byte) (*Image, error) {
	m, err := NewImage(columns, rows)
	if err != nil {
		return nil, err
	}
	m.colors = colors
	n := len(videoChars)
	if len(videoColors) < n {
		n = len(videoColors)
	}
	if n > len(m.video) {
		n = len(m.video)
	}
	for i := 0; i < n; i++ {
		bits, ok := characters[videoChars[i]]
		if !ok {
			bits = EmptyBitmap
		}
		nibble := videoColors[i]
		m.video[i] = Char{
			bits:       bits,
			color:      nibble & 7,
			multicolor: nibble&8 == 8,
		}
	}
	return m, nil
}

// FromImage converts a true color picture into a new image, rounding the
// size up to whole cells and pasting at the origin in multicolor mode.
func FromImage(src image.Image) (*Image, error) {
	b := src.Bounds()
	columns := (b.Dx() + CharWidth - 1) / CharWidth
	rows := (b.Dy() + CharHeight - 1) / CharHeight
	m, err := NewImage(columns, rows)
	if err != nil {
		return nil, err
	}
	m.PasteImage(src, coords.Point{}, Multicolor)
	return m, nil
}

// Clone returns a deep copy, used for undo snapshots.
func (m *Image) Clone() *Image {
	video := make([]Char, len(m.video))
	copy(video, m.video)
	return &Image{
		colors:  m.colors,
		columns: m.columns,
		rows:    m.rows,
		video:   video,
		bitmaps: m.bitmaps.clone(),
	}
}

// Grid describes the image's cell grid for coordinate conversions.
func (m *Image) Grid() coords.Grid {
	return coords.Grid{
		CellWidth:  CharWidth,
		CellHeight: CharHeight,
		Size:       m.SizeInCells(),
	}
}

// SizeInCells returns the image size in cells.
func (m *Image) SizeInCells() coords.SizeInCells {
	return coords.SizeInCells{Width: m.columns, Height: m.rows}
}

// SizeInPixels returns the image size in pixels.
func (m *Image) SizeInPixels() (int, int) {
	return m.columns * CharWidth, m.rows * CharHeight
}

// GlobalColors returns the shared color registers.
func (m *Image) GlobalColors() GlobalColors {
	return m.colors
}

// SetGlobalColors replaces all shared color registers.
func (m *Image) SetGlobalColors(colors GlobalColors) {
	m.colors = colors
}

// SetGlobalColor stores one register and reports whether it changed.
func (m *Image) SetGlobalColor(r Register, value uint8) bool {
	return m.colors.Set(r, value)
}

// CharAt returns a copy of the character at a checked cell position.
func (m *Image) CharAt(cell coords.CheckedCell) Char {
	return *m.charAt(cell)
}

func (m *Image) charAt(cell coords.CheckedCell) *Char {
	p := cell.Pos()
	return &m.video[p.Column+p.Row*m.columns]
}

// ColorIndex resolves a logical pixel color to its palette index under the
// image's current registers.
func (m *Image) ColorIndex(c PixelColor) uint8 {
	switch c.Role {
	case RoleBackground:
		return m.colors.Get(Background)
	case RoleBorder:
		return m.colors.Get(Border)
	case RoleAux:
		return m.colors.Get(Aux)
	default:
		return c.Index
	}
}

func (m *Image) cellsAndPixels(target update.Area) map[coords.CheckedCell]update.Mask {
	return target.CellsAndPixels(m.Grid())
}

func (m *Image) applyToPixels(target update.Area, op func(PixelColor) PixelColor) (bool, error) {
	changed := false
	for cell, mask := range m.cellsAndPixels(target) {
		c, err := m.charAt(cell).MutatePixels(mask, op)
		if err != nil {
			return false, err
		}
		changed = changed || c
	}
	return changed, nil
}

func (m *Image) applyToCells(target update.Area, op func(PixelColor) PixelColor) (bool, error) {
	changed := false
	mask := update.AllBits(CharPixels)
	for cell := range m.cellsAndPixels(target) {
		c, err := m.charAt(cell).MutatePixels(mask, op)
		if err != nil {
			return false, err
		}
		changed = changed || c
	}
	return changed, nil
}

// Plot sets the color of the pixels in the target area.
func (m *Image) Plot(target update.Area, color PixelColor) (bool, error) {
	return m.applyToPixels(target, func(PixelColor) PixelColor { return color })
}

// FillCells sets the color of every pixel of every cell the target area
// touches.
func (m *Image) FillCells(target update.Area, color PixelColor) (bool, error) {
	return m.applyToCells(target, func(PixelColor) PixelColor { return color })
}

// ReplaceColor replaces one logical color with another in the target area.
func (m *Image) ReplaceColor(target update.Area, toReplace, replacement PixelColor) (bool, error) {
	return m.applyToPixels(target, func(old PixelColor) PixelColor {
		if old == toReplace {
			return replacement
		}
		return old
	})
}

// SwapColors exchanges two logical colors in the target area.
func (m *Image) SwapColors(target update.Area, color1, color2 PixelColor) (bool, error) {
	return m.applyToPixels(target, func(old PixelColor) PixelColor {
		switch old {
		case color1:
			return color2
		case color2:
			return color1
		default:
			return old
		}
	})
}

// SetColor changes the cell color of the cells the target area touches.
// The color is validated before anything is mutated, since it applies to
// whole cells at once.
func (m *Image) SetColor(target update.Area, color uint8) (bool, error) {
	if !AllowedCharColor(color) {
		return false, ErrDisallowedCharColor
	}
	changed := false
	for cell := range m.cellsAndPixels(target) {
		changed = m.charAt(cell).SetColor(color) || changed
	}
	return changed, nil
}

// MakeHighRes switches the cells the target area touches to high
// resolution mode.
func (m *Image) MakeHighRes(target update.Area) (bool, error) {
	changed := false
	for cell := range m.cellsAndPixels(target) {
		changed = m.charAt(cell).MakeHighRes() || changed
	}
	return changed, nil
}

// MakeMulticolor switches the cells the target area touches to multicolor
// mode.
func (m *Image) MakeMulticolor(target update.Area) (bool, error) {
	changed := false
	for cell := range m.cellsAndPixels(target) {
		changed = m.charAt(cell).MakeMulticolor() || changed
	}
	return changed, nil
}

// PasteImage converts a true color picture through the quantizer and
// replaces every cell it overlaps, wholesale. target is the pixel position
// of the picture's top-left corner; parts of cells outside the picture are
// treated as transparent.
func (m *Image) PasteImage(src image.Image, target coords.Point, format ColorFormat) {
	b := src.Bounds()
	startColumn := max(coords.FloorDiv(target.X, CharWidth), 0)
	endColumn := min((target.X+b.Dx()+CharWidth-1)/CharWidth, m.columns)
	startRow := max(coords.FloorDiv(target.Y, CharHeight), 0)
	endRow := min((target.Y+b.Dy()+CharHeight-1)/CharHeight, m.rows)

	allowed := allowedCharColors()
	palette := Palette()

	for r := startRow; r < endRow; r++ {
		for c := startColumn; c < endColumn; c++ {
			left := c*CharWidth - target.X
			top := r*CharHeight - target.Y

			cellImage := image.NewRGBA(image.Rect(0, 0, CharWidth, CharHeight))
			overlap := image.Rect(left, top, left+CharWidth, top+CharHeight).
				Intersect(image.Rect(0, 0, b.Dx(), b.Dy()))
			draw.Draw(cellImage,
				overlap.Sub(image.Pt(left, top)),
				src,
				b.Min.Add(overlap.Min),
				draw.Src)

			var char Char
			switch format {
			case HighRes:
				indices := quant.OptimizedImage(cellImage,
					[]uint8{m.colors.Get(Background)}, allowed, palette)
				var grid [CharPixels]uint8
				copy(grid[:], indices)
				char = HighResFromColors(&grid, m.colors)
			case Multicolor:
				halved := quant.HalveWidth(cellImage)
				indices := quant.OptimizedImage(halved,
					[]uint8{
						m.colors.Get(Background),
						m.colors.Get(Border),
						m.colors.Get(Aux),
					}, allowed, palette)
				var grid [CharPixels / 2]uint8
				copy(grid[:], indices)
				char = MulticolorFromColors(&grid, m.colors)
			}
			cell, _ := coords.WithinBounds(coords.CellPos{Column: c, Row: r}, m.SizeInCells())
			*m.charAt(cell) = char
		}
	}
}

// PasteChars copies characters verbatim into the grid with their top-left
// cell at target. Parts outside the grid are clipped. Reports whether at
// least one cell was written.
func (m *Image) PasteChars(target coords.CellPos, source *CharGrid) bool {
	changed := false
	for sr := 0; sr < source.Height; sr++ {
		for sc := 0; sc < source.Width; sc++ {
			pos := coords.CellPos{Column: target.Column + sc, Row: target.Row + sr}
			if cell, ok := coords.WithinBounds(pos, m.SizeInCells()); ok {
				*m.charAt(cell) = source.At(sc, sr)
				changed = true
			}
		}
	}
	return changed
}

// GrabCells copies a rectangle of characters out of the image, e.g. to use
// as a brush.
func (m *Image) GrabCells(rect coords.CheckedRect) *CharGrid {
	r := rect.Rect()
	grid := NewCharGrid(r.Size.Width, r.Size.Height)
	for y := 0; y < r.Size.Height; y++ {
		for x := 0; x < r.Size.Width; x++ {
			cell, _ := coords.WithinBounds(coords.CellPos{
				Column: r.TopLeft.Column + x,
				Row:    r.TopLeft.Row + y,
			}, m.SizeInCells())
			grid.Set(x, y, *m.charAt(cell))
		}
	}
	return grid
}

func allowedCharColors() []uint8 {
	allowed := make([]uint8, MaxCharColor+1)
	for i := range allowed {
		allowed[i] = uint8(i)
	}
	return allowed
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
