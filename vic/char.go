package vic

import (
	"github.com/vicpen/vicpen/update"
)

const (
	// CharWidth is the width of one character cell in pixels.
	CharWidth = 8
	// CharHeight is the height of one character cell in pixels.
	CharHeight = CharWidth
	// CharPixels is the number of pixels in one cell.
	CharPixels = CharWidth * CharHeight
)

// MaxCharColor is the highest palette index allowed as a cell's own color.
// The upper half of the palette clashes with the register encoding in color
// RAM and cannot be used.
const MaxCharColor = 7

// AllowedCharColor reports whether a palette index may be used as a cell's
// own color.
func AllowedCharColor(index uint8) bool {
	return index <= MaxCharColor
}

// Role classifies which hardware color a pixel shows.
type Role uint8

const (
	// RoleBackground pixels show the background register.
	RoleBackground Role = iota
	// RoleBorder pixels show the border register (multicolor only).
	RoleBorder
	// RoleChar pixels show the cell's own color.
	RoleChar
	// RoleAux pixels show the auxiliary register (multicolor only).
	RoleAux
)

// PixelColor is the logical color of one pixel: a role, plus the palette
// index for RoleChar.
type PixelColor struct {
	Role Role
	// Index is the palette index, only meaningful for RoleChar.
	Index uint8
}

// CharColor returns the pixel color drawing the cell's own color index.
func CharColor(index uint8) PixelColor {
	return PixelColor{Role: RoleChar, Index: index}
}

// Convenience values for the register roles.
var (
	BackgroundPixel = PixelColor{Role: RoleBackground}
	BorderPixel     = PixelColor{Role: RoleBorder}
	AuxPixel        = PixelColor{Role: RoleAux}
)

// Char is one character cell: an 8 by 8 pixel block stored as 8 bytes of
// bitmap, one color and a resolution mode flag. In high resolution mode
// each bit selects background or the cell color. In multicolor mode each
// pair of bits (MSB first) selects among background (00), border (01), the
// cell color (10) and aux (11), with each pair two screen pixels wide.
type Char struct {
	bits       [CharHeight]byte
	color      uint8
	multicolor bool
}

// EmptyBitmap is the bitmap of a blank cell.
var EmptyBitmap = [CharHeight]byte{}

// NewChar returns a multicolor character with the given bitmap and color.
// color must be an allowed character color.
func NewChar(bits [CharHeight]byte, color uint8) Char {
	return Char{bits: bits, color: color, multicolor: true}
}

// NewHighResChar returns a high resolution character with the given bitmap
// and color. color must be an allowed character color.
func NewHighResChar(bits [CharHeight]byte, color uint8) Char {
	return Char{bits: bits, color: color}
}

// DefaultChar returns a blank high resolution character showing only the
// background.
func DefaultChar() Char {
	return NewHighResChar(EmptyBitmap, 1)
}

// DefaultBrushChar returns the character used for a fresh brush: a solid
// block of color 1.
func DefaultBrushChar() Char {
	return NewHighResChar([CharHeight]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}, 1)
}

// HighResFromColors builds a high resolution character from a grid of 8x8
// palette indices, row-major. Every pixel not matching the background
// register becomes a set bit, and the last such pixel in scan order decides
// the cell color. That tie-break looks arbitrary but matches the files
// already out there; changing it would alter how existing images re-import.
func HighResFromColors(colors *[CharPixels]uint8, global GlobalColors) Char {
	bg := global.Get(Background)
	cellColor := uint8(1)
	var bits [CharHeight]byte
	for y := 0; y < CharHeight; y++ {
		for x := 0; x < CharWidth; x++ {
			c := colors[x+y*CharWidth]
			if c == bg {
				continue
			}
			cellColor = c
			bits[y] |= 0x80 >> uint(x)
		}
	}
	return NewHighResChar(bits, cellColor)
}

// MulticolorFromColors builds a multicolor character from a grid of 4x8
// palette indices, row-major, one index per two-screen-pixel pair. Pixels
// matching the border or aux registers map to those roles; any other
// non-background pixel maps to the cell color, with the last one in scan
// order deciding the color value (same tie-break as HighResFromColors).
func MulticolorFromColors(colors *[CharPixels / 2]uint8, global GlobalColors) Char {
	bg := global.Get(Background)
	border := global.Get(Border)
	aux := global.Get(Aux)
	cellColor := uint8(1)
	var bits [CharHeight]byte
	for y := 0; y < CharHeight; y++ {
		for x := 0; x < CharWidth/2; x++ {
			shift := uint(6 - x*2)
			switch c := colors[x+y*CharWidth/2]; c {
			case bg:
			case border:
				bits[y] |= 0b01 << shift
			case aux:
				bits[y] |= 0b11 << shift
			default:
				cellColor = c
				bits[y] |= 0b10 << shift
			}
		}
	}
	return NewChar(bits, cellColor)
}

// CharFromRawNibble returns a character from a bitmap and the 4 bit value
// stored in color RAM: the low three bits are the color, bit 3 selects
// multicolor mode.
func CharFromRawNibble(bits [CharHeight]byte, nibble uint8) Char {
	return Char{bits: bits, color: nibble & 7, multicolor: nibble&8 == 8}
}

// Bits returns the raw bitmap.
func (c Char) Bits() [CharHeight]byte {
	return c.bits
}

// Color returns the cell color.
func (c Char) Color() uint8 {
	return c.color
}

// SetColor sets the cell color and reports whether it changed.
func (c *Char) SetColor(color uint8) bool {
	if c.color == color {
		return false
	}
	c.color = color
	return true
}

// Multicolor reports whether the cell is in multicolor mode.
func (c Char) Multicolor() bool {
	return c.multicolor
}

// RawNibble returns the 4 bit value stored in color RAM: the color with bit
// 3 set for multicolor cells.
func (c Char) RawNibble() uint8 {
	if c.multicolor {
		return c.color | 8
	}
	return c.color
}

// MakeHighRes switches the cell to high resolution mode. Returns false if
// it already was; that is a no-op, not an error. The bitmap is kept bit for
// bit and merely reinterpreted, which may change how the cell looks.
func (c *Char) MakeHighRes() bool {
	if !c.multicolor {
		return false
	}
	c.multicolor = false
	return true
}

// MakeMulticolor switches the cell to multicolor mode. Returns false if it
// already was. The bitmap is kept bit for bit.
func (c *Char) MakeMulticolor() bool {
	if !c.multicolor {
		c.multicolor = true
		return true
	}
	return false
}

// MutatePixels decodes the logical color of every pixel selected by the
// mask, applies op to it and writes the result back. It reports whether any
// bit or the cell color actually changed. On a high resolution cell an op
// result of border or aux is a hardware constraint violation: the cell is
// left untouched and ErrDisallowedHiresColor is returned.
func (c *Char) MutatePixels(mask update.Mask, op func(PixelColor) PixelColor) (bool, error) {
	if c.multicolor {
		return c.mutatePixelsMulticolor(mask, op), nil
	}
	return c.mutatePixelsHighRes(mask, op)
}

func (c *Char) mutatePixelsMulticolor(mask update.Mask, op func(PixelColor) PixelColor) bool {
	changed := false
	newColor := c.color
	for cy := 0; cy < CharHeight; cy++ {
		newBits := c.bits[cy]
		for cx := 0; cx < CharWidth; cx += 2 {
			// A pair is affected if either of its screen pixels is.
			if !mask.Bit(cx+cy*CharWidth) && !mask.Bit(cx+cy*CharWidth+1) {
				continue
			}
			shift := uint(6 - cx)
			var current PixelColor
			switch (c.bits[cy] >> shift) & 0b11 {
			case 0b00:
				current = BackgroundPixel
			case 0b01:
				current = BorderPixel
			case 0b10:
				current = CharColor(c.color)
			case 0b11:
				current = AuxPixel
			}
			var toSet byte
			switch next := op(current); next.Role {
			case RoleBackground:
				toSet = 0b00
			case RoleBorder:
				toSet = 0b01
			case RoleChar:
				newColor = next.Index
				toSet = 0b10
			case RoleAux:
				toSet = 0b11
			}
			newBits &^= 0b11 << shift
			newBits |= toSet << shift
		}
		if newBits != c.bits[cy] {
			c.bits[cy] = newBits
			changed = true
		}
	}
	if newColor != c.color {
		c.color = newColor
		changed = true
	}
	return changed
}

func (c *Char) mutatePixelsHighRes(mask update.Mask, op func(PixelColor) PixelColor) (bool, error) {
	changed := false
	newColor := c.color
	newBitmap := c.bits
	for cy := 0; cy < CharHeight; cy++ {
		for cx := 0; cx < CharWidth; cx++ {
			if !mask.Bit(cx + cy*CharWidth) {
				continue
			}
			byteMask := byte(0x80) >> uint(cx)
			current := BackgroundPixel
			if c.bits[cy]&byteMask != 0 {
				current = CharColor(c.color)
			}
			switch next := op(current); next.Role {
			case RoleBackground:
				newBitmap[cy] &^= byteMask
			case RoleChar:
				newColor = next.Index
				newBitmap[cy] |= byteMask
			default:
				return false, ErrDisallowedHiresColor
			}
		}
	}
	if newBitmap != c.bits {
		c.bits = newBitmap
		changed = true
	}
	if c.SetColor(newColor) {
		changed = true
	}
	return changed, nil
}

// MirrorX flips the cell horizontally. Multicolor cells are mirrored a bit
// pair at a time so the color roles survive the flip.
func (c *Char) MirrorX() {
	for i, b := range c.bits {
		if c.multicolor {
			var flipped byte
			for bit := uint(0); bit < 8; bit += 2 {
				flipped |= ((b >> bit) & 0b11) << (6 - bit)
			}
			c.bits[i] = flipped
		} else {
			c.bits[i] = reverseByte(b)
		}
	}
}

// MirrorY flips the cell vertically.
func (c *Char) MirrorY() {
	for i, j := 0, CharHeight-1; i < j; i, j = i+1, j-1 {
		c.bits[i], c.bits[j] = c.bits[j], c.bits[i]
	}
}

func reverseByte(b byte) byte {
	b = b>>4 | b<<4
	b = b>>2&0x33 | b<<2&0xcc
	b = b>>1&0x55 | b<<1&0xaa
	return b
}
