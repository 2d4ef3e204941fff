package vicpen

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vicpen/vicpen/coords"
	"github.com/vicpen/vicpen/update"
	"github.com/vicpen/vicpen/vic"
)

func TestSaveAndLoadNative(t *testing.T) {
	dir, err := ioutil.TempDir("", "vicpen")
	require.NoError(t, err)
	defer os.RemoveAll(dir)
	path := filepath.Join(dir, "work.vicpen")

	doc := NewDocument()
	doc.PaintColor = 5
	_, err = doc.Image().Plot(update.FromPixel(coords.Point{X: 3, Y: 3}), vic.CharColor(5))
	require.NoError(t, err)

	require.NoError(t, SaveDocument(doc, path))
	assert.Equal(t, path, doc.Filename)
	assert.False(t, doc.Dirty())

	loaded, err := LoadDocument(path)
	require.NoError(t, err)
	assert.Equal(t, path, loaded.Filename)
	assert.Equal(t, uint8(5), loaded.PaintColor)

	cell, _ := coords.WithinBounds(coords.CellPos{}, loaded.View().SizeInCells())
	assert.Equal(t, byte(0x10), loaded.View().CharAt(cell).Bits()[3])
}

func TestSaveExportedRaster(t *testing.T) {
	dir, err := ioutil.TempDir("", "vicpen")
	require.NoError(t, err)
	defer os.RemoveAll(dir)
	path := filepath.Join(dir, "out.png")

	doc := NewDocument()
	require.NoError(t, SaveDocument(doc, path))
	assert.False(t, doc.Dirty())

	// The exported picture loads back as a standard image and is
	// re-quantized into cells.
	loaded, err := LoadDocument(path)
	require.NoError(t, err)
	assert.Equal(t, doc.View().SizeInCells(), loaded.View().SizeInCells())
}

func TestLoadDocumentMissingFile(t *testing.T) {
	_, err := LoadDocument("no/such/file.vicpen")
	assert.Error(t, err)
}

func TestLoadDocumentRejectsGarbage(t *testing.T) {
	dir, err := ioutil.TempDir("", "vicpen")
	require.NoError(t, err)
	defer os.RemoveAll(dir)
	path := filepath.Join(dir, "garbage.vicpen")
	require.NoError(t, ioutil.WriteFile(path, []byte("not json"), 0644))

	_, err = LoadDocument(path)
	assert.Error(t, err)
}
