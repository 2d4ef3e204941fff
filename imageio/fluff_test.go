package imageio

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vicpen/vicpen/coords"
	"github.com/vicpen/vicpen/vic"
)

// fluffFixture builds a 1x1 cell FLUFF64 file in memory.
func fluffFixture(color uint8, rows [8]byte) []byte {
	var buf bytes.Buffer
	buf.WriteString("FLUFF64")
	buf.Write([]byte{2, 0, 0, 0}) // version, little endian
	buf.Write([]byte{
		9,    // image type
		6,    // palette type
		0, 0, // background, copy
		3, // border
		4, // aux
		5, // pen3
		1, // width in chars
		1, // height in chars
	})
	buf.Write(rows[:])
	buf.Write([]byte{0, 3, 4}) // per-cell register copies, ignored
	buf.WriteByte(color)
	return buf.Bytes()
}

func TestDecodeFluff(t *testing.T) {
	// One row of 11 10 01 00 in file order.
	m, err := DecodeFluff(bytes.NewReader(fluffFixture(6, [8]byte{0b11100100})))
	require.NoError(t, err)

	assert.Equal(t, coords.SizeInCells{Width: 1, Height: 1}, m.SizeInCells())
	assert.Equal(t, vic.GlobalColors{0, 3, 4}, m.GlobalColors())

	cell, ok := coords.WithinBounds(coords.CellPos{}, m.SizeInCells())
	require.True(t, ok)
	c := m.CharAt(cell)
	assert.True(t, c.Multicolor())
	assert.Equal(t, uint8(6), c.Color())
	// Pairs come out reversed and with the 10/11 roles swapped:
	// file 11 10 01 00 reads back as 00 01 11 10.
	assert.Equal(t, byte(0b00011110), c.Bits()[0])
}

func TestDecodeFluffCoercesNoColor(t *testing.T) {
	// 255 marks "no color" and anything above 7 cannot be a cell color.
	for _, color := range []uint8{255, 8, 100} {
		m, err := DecodeFluff(bytes.NewReader(fluffFixture(color, [8]byte{})))
		require.NoError(t, err)
		cell, _ := coords.WithinBounds(coords.CellPos{}, m.SizeInCells())
		assert.Equal(t, uint8(1), m.CharAt(cell).Color())
	}
}

func TestDecodeFluffWrongMagic(t *testing.T) {
	_, err := DecodeFluff(bytes.NewReader([]byte("GIF89a everything else")))
	assert.Equal(t, ErrWrongMagic, err)
}

func TestDecodeFluffTruncated(t *testing.T) {
	full := fluffFixture(1, [8]byte{})
	for _, cut := range []int{0, 3, len(fluffMagic), len(fluffMagic) + 5, len(full) - 1} {
		_, err := DecodeFluff(bytes.NewReader(full[:cut]))
		assert.Equal(t, ErrTruncatedData, err, "cut at %d", cut)
	}
}
