package vicpen

import (
	"github.com/vicpen/vicpen/coords"
	"github.com/vicpen/vicpen/update"
	"github.com/vicpen/vicpen/vic"
)

// ActionType enumerates the edit operations. The set is closed: tools only
// ever construct actions, they never reach into the image themselves.
type ActionType int

const (
	// ActionPlot changes the color of single pixels.
	ActionPlot ActionType = iota
	// ActionFill fills whole character cells with a color.
	ActionFill
	// ActionCellColor changes the color of cells.
	ActionCellColor
	// ActionMakeHighRes makes cells high resolution.
	ActionMakeHighRes
	// ActionMakeMulticolor makes cells multicolor.
	ActionMakeMulticolor
	// ActionReplaceColor replaces one color with another.
	ActionReplaceColor
	// ActionSwapColors exchanges two colors.
	ActionSwapColors
	// ActionPasteChars pastes the brush into the image.
	ActionPasteChars
)

// Action is one undoable edit: what to do, and once applied, the document
// snapshot to restore on undo.
type Action struct {
	Type ActionType
	Area update.Area
	// Color is the primary color operand. For ActionCellColor its
	// resolved palette index is used.
	Color vic.PixelColor
	// Color2 is the second operand of replace and swap.
	Color2 vic.PixelColor
	// Brush and Target are the operands of paste.
	Brush  *vic.CharGrid
	Target coords.CellPos

	previous *Document
}

func (a *Action) apply(doc *Document) (bool, error) {
	m := doc.Image()
	switch a.Type {
	case ActionPlot:
		return m.Plot(a.Area, a.Color)
	case ActionFill:
		return m.FillCells(a.Area, a.Color)
	case ActionCellColor:
		return m.SetColor(a.Area, m.ColorIndex(a.Color))
	case ActionMakeHighRes:
		return m.MakeHighRes(a.Area)
	case ActionMakeMulticolor:
		return m.MakeMulticolor(a.Area)
	case ActionReplaceColor:
		return m.ReplaceColor(a.Area, a.Color, a.Color2)
	case ActionSwapColors:
		return m.SwapColors(a.Area, a.Color, a.Color2)
	case ActionPasteChars:
		return m.PasteChars(a.Target, a.Brush), nil
	default:
		return false, nil
	}
}

// History is a snapshot based undo stack. Every applied action stores a
// whole-document clone taken before the edit; undo restores the clone
// wholesale. Cost scales with image size, not edit size, which is fine at
// the image sizes the hardware supports.
type History struct {
	undos []*Action
	redos []*Action
	// How many undos were applied when the document was last saved.
	savedDepth int
}

// Apply runs the action against the document. Edits that change nothing
// return vic.ErrNoChange (silent) and are not recorded, so the undo stack
// stays free of no-ops. Disallowed edits return their error with the
// document rolled back to the pre-edit snapshot, since an edit spanning
// several cells may have changed some of them before failing.
func (h *History) Apply(doc *Document, a *Action) error {
	previous := doc.Clone()
	changed, err := a.apply(doc)
	if err != nil {
		*doc = *previous
		return err
	}
	if !changed {
		return vic.ErrNoChange
	}
	if len(h.undos) < h.savedDepth {
		// Editing past an undone save point: the saved state is no
		// longer reachable by depth alone.
		h.savedDepth = -1
	}
	a.previous = previous
	h.undos = append(h.undos, a)
	h.redos = nil
	return nil
}

// CanUndo reports whether there is anything to undo.
func (h *History) CanUndo() bool {
	return len(h.undos) > 0
}

// CanRedo reports whether there is anything to redo.
func (h *History) CanRedo() bool {
	return len(h.redos) > 0
}

// Undo restores the snapshot taken before the newest action. Returns false
// if there was nothing to undo.
func (h *History) Undo(doc *Document) bool {
	if len(h.undos) == 0 {
		return false
	}
	a := h.undos[len(h.undos)-1]
	h.undos = h.undos[:len(h.undos)-1]
	*doc = *a.previous
	a.previous = nil
	h.redos = append(h.redos, a)
	return true
}

// Redo re-applies the most recently undone action. Returns false if there
// was nothing to redo or the action no longer applies.
func (h *History) Redo(doc *Document) bool {
	if len(h.redos) == 0 {
		return false
	}
	a := h.redos[len(h.redos)-1]
	h.redos = h.redos[:len(h.redos)-1]
	previous := doc.Clone()
	changed, err := a.apply(doc)
	if err != nil || !changed {
		*doc = *previous
		return false
	}
	a.previous = previous
	h.undos = append(h.undos, a)
	return true
}

// MarkSaved records the current position as the saved state.
func (h *History) MarkSaved() {
	h.savedDepth = len(h.undos)
}

// IsSaved reports whether the document is at the position last marked as
// saved.
func (h *History) IsSaved() bool {
	return h.savedDepth == len(h.undos)
}
