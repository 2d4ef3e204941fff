package vic

// CharMap is the deduplicated mapping between character numbers and
// distinct 8 byte bitmaps. It is a cache derived from the image grid:
// rebuild it with Image.Refresh before counting characters, rendering from
// character numbers or serializing. Numbers are assigned in first
// appearance order, scanning the grid row-major, so rebuilding an
// unmodified image yields the same numbering.
type CharMap struct {
	byNum  [][CharHeight]byte
	byBits map[[CharHeight]byte]int
}

func newCharMap() *CharMap {
	return &CharMap{byBits: make(map[[CharHeight]byte]int)}
}

func (cm *CharMap) clone() *CharMap {
	dup := newCharMap()
	dup.byNum = append([][CharHeight]byte(nil), cm.byNum...)
	for bits, num := range cm.byBits {
		dup.byBits[bits] = num
	}
	return dup
}

func (cm *CharMap) add(bits [CharHeight]byte) int {
	if num, ok := cm.byBits[bits]; ok {
		return num
	}
	num := len(cm.byNum)
	cm.byNum = append(cm.byNum, bits)
	cm.byBits[bits] = num
	return num
}

// Len returns the number of distinct bitmaps.
func (cm *CharMap) Len() int {
	return len(cm.byNum)
}

// Bitmap returns the bitmap for a character number.
func (cm *CharMap) Bitmap(num int) ([CharHeight]byte, bool) {
	if num < 0 || num >= len(cm.byNum) {
		return EmptyBitmap, false
	}
	return cm.byNum[num], true
}

// Number returns the character number for a bitmap.
func (cm *CharMap) Number(bits [CharHeight]byte) (int, bool) {
	num, ok := cm.byBits[bits]
	return num, ok
}

// MapCharacters scans the grid and builds a fresh character map. The
// image's own cache is not touched; use Refresh for that.
func (m *Image) MapCharacters() *CharMap {
	cm := newCharMap()
	for i := range m.video {
		cm.add(m.video[i].bits)
	}
	return cm
}

// Refresh rebuilds the image's character map cache from the grid. It is
// idempotent and must be called before CharMap is relied on.
func (m *Image) Refresh() {
	m.bitmaps = m.MapCharacters()
}

// CharMap returns the cached character map as of the last Refresh.
func (m *Image) CharMap() *CharMap {
	return m.bitmaps
}
