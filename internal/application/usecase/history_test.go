package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tabmaster/internal/application/usecase"
	"github.com/bnema/tabmaster/internal/domain/entity"
	"github.com/bnema/tabmaster/internal/store"
)

func TestHistoryUseCase_UndoRedoRestoresTabs(t *testing.T) {
	ctx := testContext()
	st := store.New()
	tabs := usecase.NewManageTabsUseCase(st, sequentialIDs("id"))
	history := usecase.NewHistoryUseCase(st)

	c, err := tabs.AddContainer(ctx, usecase.AddContainerInput{Title: "A"})
	require.NoError(t, err)
	_, err = tabs.AddTab(ctx, usecase.AddTabInput{ContainerID: c.ID, URL: "https://go.dev", Index: -1})
	require.NoError(t, err)
	withTab := st.State().TabContainer

	st.Dispatch(store.SetNotDirty{})
	require.NoError(t, history.Undo(ctx))
	s := st.State()
	assert.Empty(t, s.TabContainer.Containers[0].Tabs)
	assert.True(t, s.Global.IsDirty, "undo changes persisted data")

	require.NoError(t, history.Undo(ctx))
	assert.True(t, st.State().TabContainer.IsEmpty())
	assert.ErrorIs(t, history.Undo(ctx), entity.ErrNothingToUndo)

	require.NoError(t, history.Redo(ctx))
	require.NoError(t, history.Redo(ctx))
	assert.Equal(t, withTab, st.State().TabContainer)
	assert.ErrorIs(t, history.Redo(ctx), entity.ErrNothingToRedo)
}
