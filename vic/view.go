package vic

import "image/color"

// ViewMode selects how cells are rendered to true color.
type ViewMode int

const (
	// ViewNormal renders with the actual palette colors.
	ViewNormal ViewMode = iota
	// ViewRaw renders with one fixed diagnostic color per hardware role,
	// regardless of the palette, so the roles can be told apart by eye.
	ViewRaw
)

// Diagnostic colors for ViewRaw.
var (
	rawMulticolorBackground = rgb(0x000000)
	rawMulticolorBorder     = rgb(0x0044ff)
	rawMulticolorAux        = rgb(0xff0000)
	rawMulticolorChar       = rgb(0xffffff)
	rawHighResBackground    = rgb(0x555555)
	rawHighResChar          = rgb(0xeeeeee)
)

// Render decodes the cell to CharPixels true color pixels, row-major.
func (c Char) Render(global GlobalColors, mode ViewMode) [CharPixels]color.RGBA {
	if c.multicolor {
		background := rawMulticolorBackground
		border := rawMulticolorBorder
		aux := rawMulticolorAux
		charColor := rawMulticolorChar
		if mode == ViewNormal {
			background = PaletteColor(global.Get(Background))
			border = PaletteColor(global.Get(Border))
			aux = PaletteColor(global.Get(Aux))
			charColor = PaletteColor(c.color)
		}
		return c.renderMulticolor(background, border, aux, charColor)
	}
	background := rawHighResBackground
	charColor := rawHighResChar
	if mode == ViewNormal {
		background = PaletteColor(global.Get(Background))
		charColor = PaletteColor(c.color)
	}
	return c.renderHighRes(background, charColor)
}

func (c Char) renderHighRes(background, charColor color.RGBA) [CharPixels]color.RGBA {
	var pixels [CharPixels]color.RGBA
	i := 0
	for _, bits := range c.bits {
		for b := 0; b < CharWidth; b++ {
			if bits&(0x80>>uint(b)) == 0 {
				pixels[i] = background
			} else {
				pixels[i] = charColor
			}
			i++
		}
	}
	return pixels
}

func (c Char) renderMulticolor(background, border, aux, charColor color.RGBA) [CharPixels]color.RGBA {
	var pixels [CharPixels]color.RGBA
	i := 0
	for _, bits := range c.bits {
		for b := 0; b < CharWidth; b += 2 {
			var p color.RGBA
			switch (bits >> uint(6-b)) & 0b11 {
			case 0b00:
				p = background
			case 0b01:
				p = border
			case 0b10:
				p = charColor
			case 0b11:
				p = aux
			}
			// Each pair covers two screen pixels.
			pixels[i] = p
			pixels[i+1] = p
			i += 2
		}
	}
	return pixels
}
