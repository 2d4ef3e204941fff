package vicpen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vicpen/vicpen/coords"
	"github.com/vicpen/vicpen/update"
	"github.com/vicpen/vicpen/vic"
)

func plotAction(x, y int, color uint8) *Action {
	return &Action{
		Type:  ActionPlot,
		Area:  update.FromPixel(coords.Point{X: x, Y: y}),
		Color: vic.CharColor(color),
	}
}

func charAt(t *testing.T, doc *Document, column, row int) vic.Char {
	t.Helper()
	cell, ok := coords.WithinBounds(coords.CellPos{Column: column, Row: row}, doc.View().SizeInCells())
	require.True(t, ok)
	return doc.View().CharAt(cell)
}

func TestHistoryApplyUndoRedo(t *testing.T) {
	doc := NewDocument()
	h := &History{}

	require.NoError(t, h.Apply(doc, plotAction(0, 0, 5)))
	assert.True(t, h.CanUndo())
	assert.False(t, h.CanRedo())
	assert.Equal(t, byte(0x80), charAt(t, doc, 0, 0).Bits()[0])

	require.True(t, h.Undo(doc))
	assert.False(t, h.CanUndo())
	assert.True(t, h.CanRedo())
	assert.Equal(t, vic.EmptyBitmap, charAt(t, doc, 0, 0).Bits())

	require.True(t, h.Redo(doc))
	assert.True(t, h.CanUndo())
	assert.False(t, h.CanRedo())
	assert.Equal(t, byte(0x80), charAt(t, doc, 0, 0).Bits()[0])
}

func TestHistoryNoChangeIsNotRecorded(t *testing.T) {
	doc := NewDocument()
	h := &History{}

	// Plotting the background onto a blank image changes nothing.
	a := &Action{
		Type:  ActionPlot,
		Area:  update.FromPixel(coords.Point{X: 0, Y: 0}),
		Color: vic.BackgroundPixel,
	}
	err := h.Apply(doc, a)
	require.Equal(t, vic.ErrNoChange, err)
	assert.Equal(t, vic.SeveritySilent, vic.ErrNoChange.Severity())
	assert.False(t, h.CanUndo())
}

func TestHistoryDisallowedLeavesStackUntouched(t *testing.T) {
	doc := NewDocument()
	h := &History{}

	// One multicolor cell in a high-res area: the border color is legal
	// for the first cell but not the rest.
	_, err := doc.Image().MakeMulticolor(update.FromPixel(coords.Point{X: 0, Y: 0}))
	require.NoError(t, err)

	a := &Action{
		Type:  ActionFill,
		Area:  update.Rectangle(coords.Point{X: 0, Y: 0}, coords.Point{X: 15, Y: 0}),
		Color: vic.BorderPixel,
	}
	err = h.Apply(doc, a)
	require.Equal(t, vic.ErrDisallowedHiresColor, err)
	assert.Equal(t, vic.SeverityNotification, vic.ErrDisallowedHiresColor.Severity())
	assert.False(t, h.CanUndo())
	// The failed edit is rolled back entirely, including any cell it
	// touched before failing.
	assert.Equal(t, vic.EmptyBitmap, charAt(t, doc, 0, 0).Bits())
	assert.Equal(t, vic.EmptyBitmap, charAt(t, doc, 1, 0).Bits())
}

func TestHistoryRedoFailureRollsBack(t *testing.T) {
	doc := NewDocument()
	h := &History{}

	area := update.Rectangle(coords.Point{X: 0, Y: 0}, coords.Point{X: 15, Y: 0})
	require.NoError(t, h.Apply(doc, &Action{Type: ActionMakeMulticolor, Area: area}))
	require.NoError(t, h.Apply(doc, &Action{Type: ActionFill, Area: area, Color: vic.BorderPixel}))
	require.True(t, h.Undo(doc))

	// Flip one cell back to high resolution behind the history's back;
	// replaying the border fill is no longer legal there, but the other
	// cell could still be written before the failure is noticed.
	_, err := doc.Image().MakeHighRes(update.FromPixel(coords.Point{X: 8, Y: 0}))
	require.NoError(t, err)

	require.False(t, h.Redo(doc))
	// The failed replay leaves the document exactly as it was.
	assert.Equal(t, vic.EmptyBitmap, charAt(t, doc, 0, 0).Bits())
	assert.Equal(t, vic.EmptyBitmap, charAt(t, doc, 1, 0).Bits())
	assert.True(t, charAt(t, doc, 0, 0).Multicolor())
	assert.False(t, charAt(t, doc, 1, 0).Multicolor())
}

func TestHistoryApplyClearsRedos(t *testing.T) {
	doc := NewDocument()
	h := &History{}

	require.NoError(t, h.Apply(doc, plotAction(0, 0, 5)))
	require.True(t, h.Undo(doc))
	require.True(t, h.CanRedo())

	require.NoError(t, h.Apply(doc, plotAction(1, 0, 5)))
	assert.False(t, h.CanRedo())
}

func TestHistoryUndoRestoresWholeDocument(t *testing.T) {
	doc := NewDocument()
	doc.PaintColor = 3
	h := &History{}

	require.NoError(t, h.Apply(doc, plotAction(0, 0, 5)))
	doc.PaintColor = 6
	require.True(t, h.Undo(doc))
	assert.Equal(t, uint8(3), doc.PaintColor)
}

func TestHistorySavedTracking(t *testing.T) {
	doc := NewDocument()
	h := &History{}
	assert.True(t, h.IsSaved())

	require.NoError(t, h.Apply(doc, plotAction(0, 0, 5)))
	assert.False(t, h.IsSaved())

	h.MarkSaved()
	assert.True(t, h.IsSaved())

	require.True(t, h.Undo(doc))
	assert.False(t, h.IsSaved())
	require.True(t, h.Redo(doc))
	assert.True(t, h.IsSaved())
}

func TestHistorySavedStateLostByDivergence(t *testing.T) {
	doc := NewDocument()
	h := &History{}

	require.NoError(t, h.Apply(doc, plotAction(0, 0, 5)))
	h.MarkSaved()
	require.True(t, h.Undo(doc))

	// A different edit at the undone position forks the history: the
	// saved state can no longer be reached by undoing or redoing.
	require.NoError(t, h.Apply(doc, plotAction(1, 0, 5)))
	assert.False(t, h.IsSaved())
	require.True(t, h.Undo(doc))
	assert.False(t, h.IsSaved())
}

func TestHistoryActionTypes(t *testing.T) {
	doc := NewDocument()
	h := &History{}

	area := update.Rectangle(coords.Point{X: 0, Y: 0}, coords.Point{X: 7, Y: 7})

	require.NoError(t, h.Apply(doc, &Action{Type: ActionMakeMulticolor, Area: area}))
	assert.True(t, charAt(t, doc, 0, 0).Multicolor())

	require.NoError(t, h.Apply(doc, &Action{Type: ActionFill, Area: area, Color: vic.AuxPixel}))
	require.NoError(t, h.Apply(doc, &Action{
		Type:   ActionSwapColors,
		Area:   area,
		Color:  vic.AuxPixel,
		Color2: vic.BackgroundPixel,
	}))
	assert.Equal(t, vic.EmptyBitmap, charAt(t, doc, 0, 0).Bits())

	require.NoError(t, h.Apply(doc, &Action{Type: ActionCellColor, Area: area, Color: vic.CharColor(6)}))
	assert.Equal(t, uint8(6), charAt(t, doc, 0, 0).Color())

	brush := vic.NewCharGrid(1, 1)
	brush.Set(0, 0, vic.DefaultBrushChar())
	require.NoError(t, h.Apply(doc, &Action{
		Type:   ActionPasteChars,
		Brush:  brush,
		Target: coords.CellPos{Column: 1, Row: 1},
	}))
	assert.Equal(t, vic.DefaultBrushChar(), charAt(t, doc, 1, 1))

	// Five edits, five undos back to the blank document.
	for i := 0; i < 5; i++ {
		require.True(t, h.Undo(doc), "undo %d", i)
	}
	assert.False(t, h.CanUndo())
	assert.Equal(t, vic.DefaultChar(), charAt(t, doc, 0, 0))
}
