package vicpen

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vicpen/vicpen/coords"
	"github.com/vicpen/vicpen/update"
	"github.com/vicpen/vicpen/vic"
)

func TestDocumentDirtyFlag(t *testing.T) {
	doc := NewDocument()
	assert.True(t, doc.Dirty(), "a new document needs an initial render")

	doc.MarkClean()
	assert.False(t, doc.Dirty())

	// Reading does not raise the flag, mutating access does.
	_ = doc.View()
	assert.False(t, doc.Dirty())
	_ = doc.Image()
	assert.True(t, doc.Dirty())
}

func TestDocumentClone(t *testing.T) {
	doc := NewDocument()
	doc.Filename = "work.vicpen"
	doc.PaintColor = 5

	clone := doc.Clone()
	assert.Equal(t, doc.Filename, clone.Filename)
	assert.Equal(t, doc.PaintColor, clone.PaintColor)
	assert.True(t, clone.Dirty())

	_, err := doc.Image().Plot(update.FromPixel(coords.Point{X: 0, Y: 0}), vic.CharColor(5))
	require.NoError(t, err)
	cell, _ := coords.WithinBounds(coords.CellPos{}, clone.View().SizeInCells())
	assert.Equal(t, vic.DefaultChar(), clone.View().CharAt(cell))
}

func TestDocumentJSONRoundTrip(t *testing.T) {
	doc := NewDocument()
	doc.PaintColor = 4
	doc.Image().SetGlobalColors(vic.GlobalColors{3, 4, 5})
	_, err := doc.Image().Plot(update.FromPixel(coords.Point{X: 0, Y: 0}), vic.CharColor(5))
	require.NoError(t, err)

	data, err := json.Marshal(doc)
	require.NoError(t, err)

	var decoded Document
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, uint8(4), decoded.PaintColor)
	assert.Equal(t, vic.GlobalColors{3, 4, 5}, decoded.View().GlobalColors())
	assert.True(t, decoded.Dirty())

	cell, _ := coords.WithinBounds(coords.CellPos{}, decoded.View().SizeInCells())
	assert.Equal(t, byte(0x80), decoded.View().CharAt(cell).Bits()[0])
}

func TestDocumentUnmarshalRejectsMissingImage(t *testing.T) {
	var doc Document
	assert.Error(t, json.Unmarshal([]byte(`{"paint-color": 1}`), &doc))
}

func TestDocumentUnmarshalRejectsNullImage(t *testing.T) {
	var doc Document
	assert.Error(t, json.Unmarshal([]byte(`{"paint-color": 1, "image": null}`), &doc))
}
