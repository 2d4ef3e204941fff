/*
Package quant reduces true color pixels to the small fixed palettes a
character cell can display.

A cell palette is partly forced: the global color registers are always
available, and only one more color can be chosen freely. Candidate palettes
are scored by total squared error and the winning palette is used for a
final remap with error diffusion dithering. This is the only approximate
color matching in the system; everything else compares colors exactly.
*/
package quant

import (
	"image"
	"image/color"
)

// premultiplied returns the color as alpha premultiplied 8 bit RGB.
func premultiplied(c color.RGBA) [3]int {
	return [3]int{
		int(uint32(c.R) * uint32(c.A) / 255),
		int(uint32(c.G) * uint32(c.A) / 255),
		int(uint32(c.B) * uint32(c.A) / 255),
	}
}

func sqDiff(a, b [3]int) int {
	var sum int
	for i := 0; i < 3; i++ {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}

// closestEntry returns the index of the palette entry closest to rgb and
// the squared error of the match.
func closestEntry(rgb [3]int, palette [][3]int) (int, int) {
	best := 0
	bestErr := sqDiff(rgb, palette[0])
	for i := 1; i < len(palette); i++ {
		if e := sqDiff(rgb, palette[i]); e < bestErr {
			best, bestErr = i, e
		}
	}
	return best, bestErr
}

// Palettize remaps every pixel of src to its closest entry in palette.
// It returns one palette index per pixel, row-major, and the total squared
// error of the mapping. With dither enabled the residual error of each
// pixel is diffused to its neighbors (Floyd-Steinberg); the reported error
// is still measured against the undithered source.
func Palettize(src *image.RGBA, palette []color.RGBA, dither bool) ([]int, int) {
	w := src.Rect.Dx()
	h := src.Rect.Dy()
	entries := make([][3]int, len(palette))
	for i, c := range palette {
		entries[i] = premultiplied(c)
	}

	indices := make([]int, w*h)
	totalErr := 0
	// Running error for the current and next row, one channel triple per
	// pixel, scaled by 16.
	carry := make([][3]int, w)
	next := make([][3]int, w)

	for y := 0; y < h; y++ {
		for i := range next {
			next[i] = [3]int{}
		}
		for x := 0; x < w; x++ {
			c := src.RGBAAt(src.Rect.Min.X+x, src.Rect.Min.Y+y)
			rgb := premultiplied(c)
			_, pixErr := closestEntry(rgb, entries)
			totalErr += pixErr

			if dither {
				for i := 0; i < 3; i++ {
					rgb[i] = clampChannel(rgb[i] + carry[x][i]/16)
				}
			}
			idx, _ := closestEntry(rgb, entries)
			indices[x+y*w] = idx

			if dither {
				for i := 0; i < 3; i++ {
					diff := rgb[i] - entries[idx][i]
					if x+1 < w {
						carry[x+1][i] += diff * 7
						next[x+1][i] += diff * 1
					}
					if x > 0 {
						next[x-1][i] += diff * 3
					}
					next[x][i] += diff * 5
				}
			}
		}
		carry, next = next, carry
	}
	return indices, totalErr
}

func clampChannel(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

// OptimizedImage reduces src to indices into palette, where the indices in
// fixed are always available and one more may be picked from allowed. Every
// color in allowed that is not already fixed is tried, the candidate with
// the least total squared error wins, and the final remap with the winning
// palette is dithered. The palette selection pass itself is not dithered.
// Returns one palette index per source pixel, row-major.
func OptimizedImage(src *image.RGBA, fixed []uint8, allowed []uint8, palette []color.RGBA) []uint8 {
	candidates := make([]uint8, 0, len(allowed))
	for _, a := range allowed {
		if !containsIndex(fixed, a) {
			candidates = append(candidates, a)
		}
	}

	chosen := fixed
	if len(candidates) > 0 {
		bestErr := -1
		var best uint8
		trial := make([]uint8, len(fixed)+1)
		copy(trial, fixed)
		for _, candidate := range candidates {
			trial[len(fixed)] = candidate
			_, totalErr := Palettize(src, selectColors(trial, palette), false)
			if bestErr < 0 || totalErr < bestErr {
				bestErr, best = totalErr, candidate
			}
		}
		chosen = append(append([]uint8{}, fixed...), best)
	}

	mapped, _ := Palettize(src, selectColors(chosen, palette), true)
	indices := make([]uint8, len(mapped))
	for i, m := range mapped {
		indices[i] = chosen[m]
	}
	return indices
}

func selectColors(indices []uint8, palette []color.RGBA) []color.RGBA {
	colors := make([]color.RGBA, len(indices))
	for i, idx := range indices {
		colors[i] = palette[idx]
	}
	return colors
}

func containsIndex(s []uint8, v uint8) bool {
	for _, c := range s {
		if c == v {
			return true
		}
	}
	return false
}

// HalveWidth downscales src to half horizontal resolution by averaging
// each pair of pixels, matching the two-screen-pixel-wide addressing of
// multicolor cells.
func HalveWidth(src *image.RGBA) *image.RGBA {
	w := src.Rect.Dx() / 2
	h := src.Rect.Dy()
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			a := src.RGBAAt(src.Rect.Min.X+x*2, src.Rect.Min.Y+y)
			b := src.RGBAAt(src.Rect.Min.X+x*2+1, src.Rect.Min.Y+y)
			dst.SetRGBA(x, y, color.RGBA{
				R: uint8((uint16(a.R) + uint16(b.R)) / 2),
				G: uint8((uint16(a.G) + uint16(b.G)) / 2),
				B: uint8((uint16(a.B) + uint16(b.B)) / 2),
				A: uint8((uint16(a.A) + uint16(b.A)) / 2),
			})
		}
	}
	return dst
}
