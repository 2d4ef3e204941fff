/*
Package vicpen is the core of a graphics editor for the Commodore VIC-20's
character cell video hardware.

Images are grids of 8 by 8 pixel characters, each either high resolution
or multicolor, sharing three global color registers. The vic package holds
the hardware model and paint operations, imageio the file formats, and
this package ties them together with documents, snapshot based undo and a
brush library.
*/
package vicpen

import (
	"fmt"
	"io/ioutil"
	"log"

	"github.com/vicpen/vicpen/coords"
	"github.com/vicpen/vicpen/imageio"
	"github.com/vicpen/vicpen/quant"
	"github.com/vicpen/vicpen/vic"
)

// Editor holds the open documents, the current brush and the shared brush
// library.
type Editor struct {
	documents []*Document
	brush     *vic.CharGrid
	db        *BrushDB
	logger    *log.Logger
}

// New returns an editor. db may be nil if no brush library is wanted, and
// logger may be nil to discard log output.
func New(db *BrushDB, logger *log.Logger) *Editor {
	if logger == nil {
		logger = log.New(ioutil.Discard, "", 0)
	}
	brush := vic.NewCharGrid(1, 1)
	brush.Set(0, 0, vic.DefaultBrushChar())
	return &Editor{
		brush:  brush,
		db:     db,
		logger: logger,
	}
}

// Documents returns the open documents in opening order.
func (e *Editor) Documents() []*Document {
	return e.documents
}

// LastDocument returns the most recently opened document, or nil.
func (e *Editor) LastDocument() *Document {
	if len(e.documents) == 0 {
		return nil
	}
	return e.documents[len(e.documents)-1]
}

// Brush returns the current brush.
func (e *Editor) Brush() *vic.CharGrid {
	return e.brush
}

// SetBrush replaces the current brush, e.g. with grabbed cells.
func (e *Editor) SetBrush(brush *vic.CharGrid) {
	e.brush = brush
}

// BrushLibrary returns the brush library, or nil if none was opened.
func (e *Editor) BrushLibrary() *BrushDB {
	return e.db
}

// Open loads a file in any supported format and adds it as a document.
func (e *Editor) Open(filename string) (*Document, error) {
	doc, err := LoadDocument(filename)
	if err != nil {
		return nil, err
	}
	doc.View().Refresh()
	e.logger.Printf("loaded %q: %s\n", filename, doc.View().ImageInfo())
	e.documents = append(e.documents, doc)
	return doc, nil
}

// Import converts a true color picture into a new document. With
// autoColors set, the global color registers are chosen from the
// picture's dominant colors before conversion.
func (e *Editor) Import(filename string, autoColors bool) (*Document, error) {
	src, err := imageio.DecodeRaster(filename)
	if err != nil {
		return nil, err
	}

	b := src.Bounds()
	columns := (b.Dx() + vic.CharWidth - 1) / vic.CharWidth
	rows := (b.Dy() + vic.CharHeight - 1) / vic.CharHeight
	m, err := vic.NewImage(columns, rows)
	if err != nil {
		return nil, err
	}
	if autoColors {
		suggestion := quant.SuggestGlobalColors(src, vic.Palette(), vic.MaxBorderColor)
		m.SetGlobalColors(vic.GlobalColors(suggestion))
		e.logger.Printf("suggested colors for %q: background %s, border %s, aux %s\n",
			filename,
			vic.PaletteName(suggestion[0]),
			vic.PaletteName(suggestion[1]),
			vic.PaletteName(suggestion[2]))
	}
	m.PasteImage(src, coords.Point{}, vic.Multicolor)

	doc := FromImage(m)
	e.documents = append(e.documents, doc)
	return doc, nil
}

// Save writes a document to the given path: the native format for the
// native extension, a rendered raster image otherwise. On success the
// document is marked clean and remembers the file name.
func (e *Editor) Save(doc *Document, filename string) error {
	if doc == nil {
		return fmt.Errorf("vicpen: no document to save")
	}
	if err := SaveDocument(doc, filename); err != nil {
		return err
	}
	e.logger.Printf("saved %q\n", filename)
	return nil
}
