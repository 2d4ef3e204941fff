package vic

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
)

// imageFile is the on-disk shape of an Image: flat per-cell arrays of
// character number and raw color nibble, plus the bitmap for each
// character number as a hex string. The characters array is dense up to
// the highest used number; unused numbers are null.
type imageFile struct {
	Columns int         `json:"columns"`
	Rows    int         `json:"rows"`
	Colors  [3]uint8    `json:"colors"`
	Chars   []int       `json:"video_chars"`
	Nibbles []uint8     `json:"video_colors"`
	Bitmaps []*hexBytes `json:"characters"`
}

// hexBytes is an 8 byte bitmap stored as a 16 digit hex string.
type hexBytes [CharHeight]byte

func (h hexBytes) MarshalJSON() ([]byte, error) {
	return json.Marshal(hex.EncodeToString(h[:]))
}

func (h *hexBytes) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return fmt.Errorf("vic: invalid hexadecimal value: %q", s)
	}
	if len(b) != CharHeight {
		return fmt.Errorf("vic: character bitmap must be %d bytes, got %d", CharHeight, len(b))
	}
	copy(h[:], b)
	return nil
}

func (f *imageFile) verify() error {
	if f.Columns < 1 || f.Rows < 1 || f.Columns > MaxColumns || f.Rows > MaxRows {
		return fmt.Errorf("vic: invalid image size: %d columns x %d rows", f.Columns, f.Rows)
	}
	if len(f.Bitmaps) == 0 {
		return errors.New("vic: no characters")
	}
	return nil
}

// MarshalJSON serializes the image losslessly: the exact bitmaps, raw
// color nibbles and global colors survive a round trip.
func (m *Image) MarshalJSON() ([]byte, error) {
	characters := m.MapCharacters()
	chars := make([]int, len(m.video))
	nibbles := make([]uint8, len(m.video))
	for i := range m.video {
		num, _ := characters.Number(m.video[i].bits)
		chars[i] = num
		nibbles[i] = m.video[i].RawNibble()
	}
	bitmaps := make([]*hexBytes, characters.Len())
	for num := range bitmaps {
		bits, _ := characters.Bitmap(num)
		h := hexBytes(bits)
		bitmaps[num] = &h
	}
	return json.Marshal(&imageFile{
		Columns: m.columns,
		Rows:    m.rows,
		Colors:  m.colors,
		Chars:   chars,
		Nibbles: nibbles,
		Bitmaps: bitmaps,
	})
}

// UnmarshalJSON deserializes an image, looking up every cell's character
// number in the bitmap table; numbers with no bitmap decode as blank.
func (m *Image) UnmarshalJSON(data []byte) error {
	var f imageFile
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	if err := f.verify(); err != nil {
		return err
	}
	characters := make(map[int][CharHeight]byte, len(f.Bitmaps))
	for num, h := range f.Bitmaps {
		if h != nil {
			characters[num] = [CharHeight]byte(*h)
		}
	}
	decoded, err := FromData(f.Columns, f.Rows, GlobalColors(f.Colors), f.Chars, f.Nibbles, characters)
	if err != nil {
		return err
	}
	*m = *decoded
	return nil
}
