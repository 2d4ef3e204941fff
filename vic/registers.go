package vic

// Register selects one of the global color registers.
type Register int

const (
	// Background is the color shared by all unset pixels.
	Background Register = iota
	// Border is the screen border color, also usable by multicolor cells.
	// The hardware register only holds values 0-8.
	Border
	// Aux is the auxiliary color, only usable by multicolor cells.
	Aux
	numRegisters
)

// MaxBorderColor is the highest palette index the border register accepts.
const MaxBorderColor = 8

// GlobalColors holds the three palette indices shared by every cell of an
// image: background, border and aux.
type GlobalColors [3]uint8

// DefaultGlobalColors returns the hardware reset values.
func DefaultGlobalColors() GlobalColors {
	return GlobalColors{0, 1, 2}
}

// Get returns the palette index held by a register.
func (g GlobalColors) Get(r Register) uint8 {
	return g[r]
}

// Set stores a palette index in a register and reports whether the stored
// value actually changed, so that callers can skip recording no-op edits.
func (g *GlobalColors) Set(r Register, value uint8) bool {
	if g[r] == value {
		return false
	}
	g[r] = value
	return true
}
