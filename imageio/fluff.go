package imageio

import (
	"encoding/binary"
	"io"

	"github.com/vicpen/vicpen/vic"
)

// Support for the FLUFF64 file format, reverse engineered from Turbo
// Rascal's example files and source code.

var fluffMagic = []byte("FLUFF64")

// fluffHeader follows the magic string.
type fluffHeader struct {
	// Version number. 2 on the files tested.
	Version uint32
	// Image type (0: QImageBitmap, 1: MultiColorBitmap, 2: HiresBitmap,
	// 4: CharMapMulticolor, 9: VIC20_MultiColorbitmap, ...).
	// Informational only.
	ImageType uint8
	// Palette (0: C64, 6: VIC20, ...). Informational only.
	PaletteType uint8
	// Background color, and a copy of it.
	Background  uint8
	Background2 uint8
	// Border color.
	Border uint8
	// Auxiliary color.
	Aux uint8
	// Unknown; 5 on the files tested.
	Pen3 uint8
	// Picture size in characters.
	WidthChars  uint8
	HeightChars uint8
}

// fluffChar is one cell record. Only the bitmap and the final color byte
// carry information.
type fluffChar struct {
	// Bitmap rows, with each row's multicolor pairs in reverse order and
	// the 0b10/0b11 roles swapped compared to the hardware layout.
	Bits       [8]uint8
	Background uint8
	Border     uint8
	Aux        uint8
	Color      uint8
}

func readStruct(r io.Reader, v interface{}) error {
	if err := binary.Read(r, binary.LittleEndian, v); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return ErrTruncatedData
		}
		return err
	}
	return nil
}

// DecodeFluff reads a FLUFF64 file and returns it as a cell image. All
// cells decode as multicolor; color bytes outside the allowed character
// color range (255 marks "no color") are coerced to 1.
func DecodeFluff(r io.Reader) (*vic.Image, error) {
	identifier := make([]byte, len(fluffMagic))
	if _, err := io.ReadFull(r, identifier); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, ErrTruncatedData
		}
		return nil, err
	}
	if string(identifier) != string(fluffMagic) {
		return nil, ErrWrongMagic
	}

	var header fluffHeader
	if err := readStruct(r, &header); err != nil {
		return nil, err
	}

	width := int(header.WidthChars)
	height := int(header.HeightChars)
	video := make([]vic.Char, 0, width*height)
	for i := 0; i < width*height; i++ {
		var flf fluffChar
		if err := readStruct(r, &flf); err != nil {
			return nil, err
		}

		var bits [8]byte
		for row, c := range flf.Bits {
			// Reverse the pair order and swap the 0b10/0b11 roles to
			// reach the hardware layout.
			var fixed byte
			for bit := uint(0); bit < 8; bit += 2 {
				pair := (c >> (6 - bit)) & 0b11
				switch pair {
				case 0b10:
					pair = 0b11
				case 0b11:
					pair = 0b10
				}
				fixed |= pair << bit
			}
			bits[row] = fixed
		}

		color := flf.Color
		if !vic.AllowedCharColor(color) {
			color = 1
		}
		video = append(video, vic.NewChar(bits, color))
	}

	m, err := vic.WithContent(width, height, video)
	if err != nil {
		return nil, err
	}
	m.SetGlobalColors(vic.GlobalColors{header.Background, header.Border, header.Aux})
	return m, nil
}
