package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tabmaster/internal/application/usecase"
	"github.com/bnema/tabmaster/internal/domain/entity"
	"github.com/bnema/tabmaster/internal/store"
)

func TestNavigationUseCase_SettingsPage(t *testing.T) {
	ctx := testContext()
	st := store.New()
	uc := usecase.NewNavigationUseCase(st)

	require.NoError(t, uc.OpenSettingsPage(ctx, entity.SettingsCategoryData))
	s := st.State()
	assert.True(t, s.Global.IsSettingsPage)
	assert.Equal(t, entity.SettingsCategoryData, s.SettingsCategory)

	uc.CloseSettingsPage(ctx)
	assert.False(t, st.State().Global.IsSettingsPage)

	assert.Error(t, uc.OpenSettingsPage(ctx, "bogus"))
	assert.Equal(t, entity.SettingsCategoryData, st.State().SettingsCategory)
}

func TestNavigationUseCase_Search(t *testing.T) {
	ctx := testContext()
	st := store.New()
	st.Dispatch(store.ReplaceTabContainerData{Data: entity.TabContainerData{Containers: []entity.Container{
		{ID: "c", Title: "Dev", Tabs: []entity.Tab{
			{ID: "1", Title: "Go Blog", URL: "https://go.dev/blog"},
			{ID: "2", Title: "Rust", URL: "https://rust-lang.org"},
		}},
	}}})
	uc := usecase.NewNavigationUseCase(st)

	uc.OpenSearch(ctx)
	matches := uc.SetSearch(ctx, "GO")
	require.Len(t, matches, 1)
	assert.Equal(t, entity.TabID("1"), matches[0].Tab.ID)
	assert.Equal(t, "Dev", matches[0].ContainerTitle)

	s := st.State()
	assert.True(t, s.Global.IsSearchPanel)
	assert.Equal(t, "GO", s.Global.SearchInputText)

	assert.Empty(t, uc.Search(ctx, "   "))

	uc.CloseSearch(ctx)
	s = st.State()
	assert.False(t, s.Global.IsSearchPanel)
	assert.Empty(t, s.Global.SearchInputText)
}
