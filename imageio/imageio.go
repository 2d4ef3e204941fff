/*
Package imageio loads and saves the image file formats the editor
understands: its own JSON format, the reverse engineered FLUFF64 format,
and the standard raster formats of the Go image packages.
*/
package imageio

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // register decoders for sniffing and loading
	_ "image/jpeg" //
	_ "image/png"  //
	"io"
	"os"

	"github.com/vicpen/vicpen/vic"
)

var (
	// ErrTruncatedData is returned when a file ends before its layout
	// says it should. It points at a corrupt or incompatible file rather
	// than an environment problem, so it is kept apart from plain read
	// failures.
	ErrTruncatedData = errors.New("imageio: truncated data")
	// ErrWrongMagic is returned when a file identifier does not match.
	ErrWrongMagic = errors.New("imageio: incorrect file identifier - wrong file type?")
)

// FileFormat is the detected kind of an input file.
type FileFormat int

const (
	// FormatUnknown is anything unrecognized, presumed to be the native
	// JSON format.
	FormatUnknown FileFormat = iota
	// FormatFluff is Turbo Rascal's FLUFF64 format.
	FormatFluff
	// FormatStandardImage is any raster format the image package can
	// decode.
	FormatStandardImage
)

// Identify sniffs the leading bytes of a file to detect its format.
func Identify(filename string) (FileFormat, error) {
	f, err := os.Open(filename)
	if err != nil {
		return FormatUnknown, err
	}
	defer f.Close()

	buffer := make([]byte, 256)
	n, err := f.Read(buffer)
	if err != nil && err != io.EOF {
		return FormatUnknown, err
	}
	buffer = buffer[:n]

	if bytes.HasPrefix(buffer, fluffMagic) {
		return FormatFluff, nil
	}
	if _, _, err := image.DecodeConfig(bytes.NewReader(buffer)); err == nil {
		return FormatStandardImage, nil
	}
	return FormatUnknown, nil
}

// LoadImage loads a FLUFF64 or standard raster file as a cell image. A
// standard image is converted through the quantizer in multicolor mode.
func LoadImage(filename string, format FileFormat) (*vic.Image, error) {
	switch format {
	case FormatFluff:
		f, err := os.Open(filename)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return DecodeFluff(f)
	case FormatStandardImage:
		return loadStandardImage(filename)
	default:
		return nil, fmt.Errorf("imageio: unknown file format: %s", filename)
	}
}

// DecodeRaster decodes a raster file to true color, without converting it
// to cells. Any format with a registered image decoder is accepted.
func DecodeRaster(filename string) (image.Image, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	src, _, err := image.Decode(f)
	if err != nil {
		return nil, err
	}
	return src, nil
}

func loadStandardImage(filename string) (*vic.Image, error) {
	src, err := DecodeRaster(filename)
	if err != nil {
		return nil, err
	}
	return vic.FromImage(src)
}
