package vic

// CharGrid is a free-standing rectangle of characters, as grabbed from or
// pasted into an image.
type CharGrid struct {
	Width, Height int
	chars         []Char
}

// NewCharGrid returns a grid of blank characters.
func NewCharGrid(width, height int) *CharGrid {
	chars := make([]Char, width*height)
	for i := range chars {
		chars[i] = DefaultChar()
	}
	return &CharGrid{Width: width, Height: height, chars: chars}
}

// At returns a copy of the character at (x, y).
func (g *CharGrid) At(x, y int) Char {
	return g.chars[x+y*g.Width]
}

// Set stores a character at (x, y).
func (g *CharGrid) Set(x, y int, c Char) {
	g.chars[x+y*g.Width] = c
}

// Clone returns a deep copy.
func (g *CharGrid) Clone() *CharGrid {
	chars := make([]Char, len(g.chars))
	copy(chars, g.chars)
	return &CharGrid{Width: g.Width, Height: g.Height, chars: chars}
}

// MirrorX flips the grid horizontally, mirroring each character.
func (g *CharGrid) MirrorX() {
	for y := 0; y < g.Height; y++ {
		row := g.chars[y*g.Width : (y+1)*g.Width]
		for i, j := 0, g.Width-1; i < j; i, j = i+1, j-1 {
			row[i], row[j] = row[j], row[i]
		}
		for i := range row {
			row[i].MirrorX()
		}
	}
}

// MirrorY flips the grid vertically, mirroring each character.
func (g *CharGrid) MirrorY() {
	for tr, br := 0, g.Height-1; tr < br; tr, br = tr+1, br-1 {
		top := g.chars[tr*g.Width : tr*g.Width+g.Width]
		bottom := g.chars[br*g.Width : br*g.Width+g.Width]
		for i := range top {
			top[i], bottom[i] = bottom[i], top[i]
		}
	}
	for i := range g.chars {
		g.chars[i].MirrorY()
	}
}
