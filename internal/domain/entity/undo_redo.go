package entity

import "errors"

var (
	// ErrNothingToUndo is returned when the past stack is empty.
	ErrNothingToUndo = errors.New("nothing to undo")
	// ErrNothingToRedo is returned when the future stack is empty.
	ErrNothingToRedo = errors.New("nothing to redo")
)

// UndoRedoState tracks tab data history around the present snapshot.
// Past is ordered oldest first; Future is ordered nearest first.
type UndoRedoState struct {
	Past    []TabContainerData
	Present TabContainerData
	Future  []TabContainerData
}

// NewUndoRedoState returns a history with an empty present.
func NewUndoRedoState() UndoRedoState {
	return UndoRedoState{Present: NewTabContainerData()}
}

// CanUndo reports whether Past is non-empty.
func (u UndoRedoState) CanUndo() bool { return len(u.Past) > 0 }

// CanRedo reports whether Future is non-empty.
func (u UndoRedoState) CanRedo() bool { return len(u.Future) > 0 }
