package usecase

import (
	"context"

	"github.com/bnema/tabmaster/internal/application/port"
	"github.com/bnema/tabmaster/internal/domain/entity"
	"github.com/bnema/tabmaster/internal/logging"
	"github.com/bnema/tabmaster/internal/store"
)

// HistoryUseCase moves through the tab data undo history.
type HistoryUseCase struct {
	state port.StateStore
}

// NewHistoryUseCase creates a new undo/redo use case.
func NewHistoryUseCase(state port.StateStore) *HistoryUseCase {
	return &HistoryUseCase{state: state}
}

// Undo restores the previous tab tree.
func (uc *HistoryUseCase) Undo(ctx context.Context) error {
	if !uc.state.State().UndoRedo.CanUndo() {
		return entity.ErrNothingToUndo
	}
	uc.state.Dispatch(store.Undo{})
	uc.restore(ctx, "undo")
	return nil
}

// Redo re-applies the last undone tab tree.
func (uc *HistoryUseCase) Redo(ctx context.Context) error {
	if !uc.state.State().UndoRedo.CanRedo() {
		return entity.ErrNothingToRedo
	}
	uc.state.Dispatch(store.Redo{})
	uc.restore(ctx, "redo")
	return nil
}

func (uc *HistoryUseCase) restore(ctx context.Context, op string) {
	s := uc.state.State()
	uc.state.Dispatch(store.RestoreTabContainerData{Data: s.UndoRedo.Present})
	logging.FromContext(ctx).Debug().
		Str("op", op).
		Int("past", len(s.UndoRedo.Past)).
		Int("future", len(s.UndoRedo.Future)).
		Msg("history restored")
}
