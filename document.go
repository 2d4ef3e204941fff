package vicpen

import (
	"encoding/json"
	"errors"

	"github.com/vicpen/vicpen/vic"
)

// Document is one image being edited: the image itself, the file it came
// from, and a dirty flag for presentation layers that cache a rendered
// texture. The flag is raised whenever the image is handed out for
// mutation and lowered explicitly once the caller has re-rendered or
// saved.
type Document struct {
	image *vic.Image
	// Filename is where the document was loaded from or last saved to,
	// or empty for a new document.
	Filename string
	// PaintColor is the palette index currently painted with.
	PaintColor uint8
	dirty      bool
}

// NewDocument returns a blank document of the default screen size.
func NewDocument() *Document {
	return &Document{
		image:      vic.DefaultImage(),
		PaintColor: 1,
		dirty:      true,
	}
}

// FromImage wraps an existing image in a fresh document.
func FromImage(m *vic.Image) *Document {
	return &Document{
		image:      m,
		PaintColor: 1,
		dirty:      true,
	}
}

// Image hands out the image for mutation and marks the document dirty.
func (d *Document) Image() *vic.Image {
	d.dirty = true
	return d.image
}

// View hands out the image for reading only; the dirty flag is untouched.
func (d *Document) View() *vic.Image {
	return d.image
}

// Dirty reports whether the image may have changed since MarkClean.
func (d *Document) Dirty() bool {
	return d.dirty
}

// MarkClean lowers the dirty flag, e.g. after re-rendering or saving.
func (d *Document) MarkClean() {
	d.dirty = false
}

// Clone returns a deep copy, used as an undo snapshot. The copy starts out
// dirty so restoring it forces a re-render.
func (d *Document) Clone() *Document {
	return &Document{
		image:      d.image.Clone(),
		Filename:   d.Filename,
		PaintColor: d.PaintColor,
		dirty:      true,
	}
}

// documentFile is the on-disk shape of a document.
type documentFile struct {
	PaintColor uint8      `json:"paint-color"`
	Image      *vic.Image `json:"image"`
}

// MarshalJSON serializes the document in the native format. The file name
// is not stored; loading sets it from the path.
func (d *Document) MarshalJSON() ([]byte, error) {
	return json.Marshal(&documentFile{
		PaintColor: d.PaintColor,
		Image:      d.image,
	})
}

// UnmarshalJSON deserializes a native format document.
func (d *Document) UnmarshalJSON(data []byte) error {
	f := documentFile{Image: &vic.Image{}}
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	// A missing field leaves the preset empty image; an explicit null
	// overwrites the pointer itself.
	if f.Image == nil || f.Image.SizeInCells().Area() == 0 {
		return errors.New("vicpen: document has no image")
	}
	d.image = f.Image
	d.PaintColor = f.PaintColor
	d.dirty = true
	return nil
}
