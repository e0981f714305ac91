package usecase_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	portmocks "github.com/bnema/tabmaster/internal/application/port/mocks"
	"github.com/bnema/tabmaster/internal/application/usecase"
	"github.com/bnema/tabmaster/internal/domain/entity"
	"github.com/bnema/tabmaster/internal/store"
)

func TestPurgeDataUseCase_DeletesKeysAndResetsStore(t *testing.T) {
	ctx := testContext()
	st := store.New()
	st.Dispatch(store.AddContainer{Container: entity.Container{ID: "c", Title: "x", Tabs: []entity.Tab{}}})
	st.Dispatch(store.SetNeverAskAgainToRate{Value: true})
	st.Dispatch(store.SetSyncStatus{Status: entity.SyncStatusError})
	require.True(t, st.State().Global.IsDirty)

	storageMock := portmocks.NewMockLocalStorage(t)
	for _, key := range entity.AllStorageKeys() {
		storageMock.EXPECT().Delete(mock.Anything, key).Return(nil).Once()
	}

	require.NoError(t, usecase.NewPurgeDataUseCase(st, storageMock).Execute(ctx))

	s := st.State()
	assert.True(t, s.TabContainer.IsEmpty())
	assert.Equal(t, entity.Settings{}, s.Settings)
	assert.False(t, s.Global.IsDirty)
	assert.Equal(t, entity.SyncStatusIdle, s.Global.SyncStatus, "a failed flush before the purge is cleared")
	assert.False(t, s.UndoRedo.CanUndo())
}

func TestPurgeDataUseCase_StopsOnDeleteError(t *testing.T) {
	st := store.New()
	storageMock := portmocks.NewMockLocalStorage(t)
	storageMock.EXPECT().Delete(mock.Anything, entity.AllStorageKeys()[0]).Return(errors.New("locked"))

	err := usecase.NewPurgeDataUseCase(st, storageMock).Execute(testContext())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "locked")
}
