package quant

import (
	"image"
	"image/color"
	"sort"

	"github.com/ericpauley/go-quantize/quantize"
)

// SuggestGlobalColors proposes the three shared color registers for
// importing m: background, border and aux, as indices into palette. The
// dominant colors of the picture are found with a median cut quantizer,
// ordered by how much of the picture they cover, and snapped to their
// closest palette entries. The border register only accepts indices up to
// maxBorder; dominant colors above that are skipped for the border slot.
func SuggestGlobalColors(m image.Image, palette []color.RGBA, maxBorder uint8) [3]uint8 {
	q := quantize.MedianCutQuantizer{}
	reduced := q.Quantize(make(color.Palette, 0, 4), m)

	counts := make(map[int]int, len(reduced))
	b := m.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			counts[reduced.Index(m.At(x, y))]++
		}
	}

	order := make([]int, 0, len(reduced))
	for i := range reduced {
		order = append(order, i)
	}
	sort.Slice(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	entries := make([][3]int, len(palette))
	for i, c := range palette {
		entries[i] = premultiplied(c)
	}
	dominant := make([]uint8, 0, len(order))
	for _, i := range order {
		r, g, bb, a := reduced[i].RGBA()
		idx, _ := closestEntry(premultiplied(color.RGBA{
			R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(bb >> 8), A: uint8(a >> 8),
		}), entries)
		dominant = append(dominant, uint8(idx))
	}

	suggestion := [3]uint8{0, 1, 2}
	if len(dominant) > 0 {
		suggestion[0] = dominant[0]
	}
	rest := dominant[min(1, len(dominant)):]
	for i, c := range rest {
		if c <= maxBorder {
			suggestion[1] = c
			rest = append(rest[:i:i], rest[i+1:]...)
			break
		}
	}
	if len(rest) > 0 {
		suggestion[2] = rest[0]
	}
	return suggestion
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
