package usecase_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tabmaster/internal/application/port/mocks"
	"github.com/bnema/tabmaster/internal/application/usecase"
	"github.com/bnema/tabmaster/internal/domain/entity"
	"github.com/bnema/tabmaster/internal/store"
)

func TestCopyURLUseCase_Copy(t *testing.T) {
	ctx := testContext()
	st := store.New()
	st.Dispatch(store.ReplaceTabContainerData{Data: entity.TabContainerData{Containers: []entity.Container{
		{ID: "c1", Title: "Work", Tabs: []entity.Tab{{ID: "t1", URL: "https://go.dev"}}},
	}}})

	clip := mocks.NewMockClipboard(t)
	clip.EXPECT().WriteText(mock.Anything, "https://go.dev").Return(nil).Once()

	url, err := usecase.NewCopyURLUseCase(st, clip).Copy(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, "https://go.dev", url)
}

func TestCopyURLUseCase_Errors(t *testing.T) {
	ctx := testContext()
	st := store.New()
	st.Dispatch(store.ReplaceTabContainerData{Data: entity.TabContainerData{Containers: []entity.Container{
		{ID: "c1", Tabs: []entity.Tab{{ID: "t1", URL: "https://go.dev"}}},
	}}})
	clip := mocks.NewMockClipboard(t)
	uc := usecase.NewCopyURLUseCase(st, clip)

	_, err := uc.Copy(ctx, "missing")
	assert.ErrorIs(t, err, entity.ErrTabNotFound)

	boom := errors.New("no display")
	clip.EXPECT().WriteText(mock.Anything, "https://go.dev").Return(boom).Once()
	_, err = uc.Copy(ctx, "t1")
	assert.ErrorIs(t, err, boom)
}
