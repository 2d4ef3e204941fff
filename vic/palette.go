package vic

import "image/color"

// PaletteSize is the number of colors the hardware can display.
const PaletteSize = 16

var paletteColors = [PaletteSize]color.RGBA{
	rgb(0x000000), // Black
	rgb(0xffffff), // White
	rgb(0x6d2327), // Red
	rgb(0xa0fef8), // Cyan
	rgb(0x8e3c97), // Purple
	rgb(0x7eda75), // Green
	rgb(0x252390), // Blue
	rgb(0xffff86), // Yellow
	rgb(0xa4643b), // Orange
	rgb(0xffc8a1), // Light Orange
	rgb(0xf2a7ab), // Pink
	rgb(0xdbffff), // Light Cyan
	rgb(0xffb4ff), // Light Purple
	rgb(0xd7ffce), // Light Green
	rgb(0x9d9aff), // Light Blue
	rgb(0xffffc9), // Light Yellow
}

var paletteNames = [PaletteSize]string{
	"Black",
	"White",
	"Red",
	"Cyan",
	"Purple",
	"Green",
	"Blue",
	"Yellow",
	"Orange",
	"Light Orange",
	"Pink",
	"Light Cyan",
	"Light Purple",
	"Light Green",
	"Light Blue",
	"Light Yellow",
}

func rgb(v uint32) color.RGBA {
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}
}

// PaletteColor returns the true color displayed for a palette index.
// index must be below PaletteSize.
func PaletteColor(index uint8) color.RGBA {
	return paletteColors[index]
}

// PaletteName returns the name of a palette entry.
// index must be below PaletteSize.
func PaletteName(index uint8) string {
	return paletteNames[index]
}

// Palette returns all hardware colors in index order.
func Palette() []color.RGBA {
	p := make([]color.RGBA, PaletteSize)
	copy(p, paletteColors[:])
	return p
}
