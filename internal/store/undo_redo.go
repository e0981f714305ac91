package store

import "github.com/bnema/tabmaster/internal/domain/entity"

type undoRedoAction struct{}

func (undoRedoAction) Slice() Slice { return SliceUndoRedo }

type (
	// SetPresentStartup resets history to a freshly loaded snapshot.
	// Past and future are discarded: history never survives a reload.
	SetPresentStartup struct {
		undoRedoAction
		Data entity.TabContainerData
	}
	// RecordHistory pushes the current present onto the past, makes Data the
	// present and clears the future.
	RecordHistory struct {
		undoRedoAction
		Data entity.TabContainerData
	}
	Undo struct{ undoRedoAction }
	Redo struct{ undoRedoAction }
)

func (SetPresentStartup) Name() string { return "undoRedo/setPresentStartup" }
func (RecordHistory) Name() string     { return "undoRedo/record" }
func (Undo) Name() string              { return "undoRedo/undo" }
func (Redo) Name() string              { return "undoRedo/redo" }

func reduceUndoRedo(s entity.UndoRedoState, action Action, maxHistory int) entity.UndoRedoState {
	switch a := action.(type) {
	case SetPresentStartup:
		return entity.UndoRedoState{Present: a.Data.Clone()}

	case RecordHistory:
		past := append(append([]entity.TabContainerData{}, s.Past...), s.Present)
		if maxHistory > 0 && len(past) > maxHistory {
			past = past[len(past)-maxHistory:]
		}
		return entity.UndoRedoState{Past: past, Present: a.Data.Clone()}

	case Undo:
		if !s.CanUndo() {
			return s
		}
		last := len(s.Past) - 1
		future := append([]entity.TabContainerData{s.Present}, s.Future...)
		return entity.UndoRedoState{
			Past:    append([]entity.TabContainerData{}, s.Past[:last]...),
			Present: s.Past[last],
			Future:  future,
		}

	case Redo:
		if !s.CanRedo() {
			return s
		}
		past := append(append([]entity.TabContainerData{}, s.Past...), s.Present)
		if maxHistory > 0 && len(past) > maxHistory {
			past = past[len(past)-maxHistory:]
		}
		return entity.UndoRedoState{
			Past:    past,
			Present: s.Future[0],
			Future:  append([]entity.TabContainerData{}, s.Future[1:]...),
		}
	}
	return s
}

func cloneHistory(u entity.UndoRedoState) entity.UndoRedoState {
	out := entity.UndoRedoState{Present: u.Present.Clone()}
	if len(u.Past) > 0 {
		out.Past = make([]entity.TabContainerData, len(u.Past))
		for i, d := range u.Past {
			out.Past[i] = d.Clone()
		}
	}
	if len(u.Future) > 0 {
		out.Future = make([]entity.TabContainerData, len(u.Future))
		for i, d := range u.Future {
			out.Future[i] = d.Clone()
		}
	}
	return out
}
