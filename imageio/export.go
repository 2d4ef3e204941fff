package imageio

import (
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/vicpen/vicpen/vic"
)

// NativeExtension is the file name extension (without the ".") of the
// editor's own format.
const NativeExtension = "vicpen"

// IsNative reports whether a file name refers to the native format, by
// extension.
func IsNative(filename string) bool {
	return strings.EqualFold(filepath.Ext(filename), "."+NativeExtension)
}

// Export renders the image to true color and writes it in the raster
// format selected by the destination file extension. An unknown extension
// is rejected before anything is written.
func Export(filename string, m *vic.Image, mode vic.ViewMode) error {
	var encode func(w io.Writer, m image.Image) error
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png":
		encode = png.Encode
	case ".gif":
		encode = func(w io.Writer, m image.Image) error {
			return gif.Encode(w, m, nil)
		}
	case ".jpg", ".jpeg":
		encode = func(w io.Writer, m image.Image) error {
			return jpeg.Encode(w, m, nil)
		}
	default:
		return fmt.Errorf("imageio: unknown file extension: %s", filename)
	}

	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := encode(f, m.RenderWithMode(mode)); err != nil {
		return err
	}
	return f.Close()
}
