package model

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tabmaster/internal/application/port/mocks"
	"github.com/bnema/tabmaster/internal/application/usecase"
	"github.com/bnema/tabmaster/internal/cli/styles"
	"github.com/bnema/tabmaster/internal/domain/entity"
	"github.com/bnema/tabmaster/internal/domain/review"
	"github.com/bnema/tabmaster/internal/infrastructure/persist"
	"github.com/bnema/tabmaster/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/tabmaster/internal/infrastructure/storage"
	"github.com/bnema/tabmaster/internal/logging"
	"github.com/bnema/tabmaster/internal/store"
)

type treeFixture struct {
	ctx      context.Context
	store    *store.Store
	cfg      TreeConfig
	notifier *mocks.MockNotifier
	gateway  *storage.Gateway
}

func newTreeFixture(t *testing.T) *treeFixture {
	t.Helper()

	ctx := logging.WithContext(context.Background(), logging.NewFromConfigValues("debug", "console"))
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "tabmaster.sqlite"))
	t.Cleanup(func() { _ = lazy.Close() })
	gateway := storage.NewGateway(sqlite.NewKeyValueRepository(lazy))

	s := store.New()
	notifier := mocks.NewMockNotifier(t)
	notifier.On("Show", mock.Anything, mock.Anything, mock.Anything).Maybe()

	var n int
	ids := func() string {
		n++
		return "id-" + string(rune('a'+n-1))
	}
	now := func() time.Time { return time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC) }
	persister := persist.NewService(s, gateway, persist.Options{})

	return &treeFixture{
		ctx:      ctx,
		store:    s,
		notifier: notifier,
		gateway:  gateway,
		cfg: TreeConfig{
			Store:      s,
			Tabs:       usecase.NewManageTabsUseCase(s, ids),
			History:    usecase.NewHistoryUseCase(s),
			Navigation: usecase.NewNavigationUseCase(s),
			Review:     usecase.NewReviewPromptUseCase(s, gateway, review.Policy{}, now),
			Save:       usecase.NewSaveUseCase(persister, notifier),
			Notify:     usecase.NewNotifyUseCase(notifier),
		},
	}
}

func (f *treeFixture) seed(t *testing.T) (entity.Container, entity.Tab) {
	t.Helper()
	c, err := f.cfg.Tabs.AddContainer(f.ctx, usecase.AddContainerInput{Title: "Work"})
	require.NoError(t, err)
	tab, err := f.cfg.Tabs.AddTab(f.ctx, usecase.AddTabInput{ContainerID: c.ID, URL: "https://go.dev", Title: "Go", Index: -1})
	require.NoError(t, err)
	return *c, *tab
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m TreeModel, msgs ...tea.Msg) TreeModel {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(TreeModel)
		require.True(t, ok)
	}
	return m
}

func typeText(t *testing.T, m TreeModel, text string) TreeModel {
	t.Helper()
	for _, r := range text {
		m = press(t, m, runes(string(r)))
	}
	return m
}

func TestTreeModel_RowsFollowCollapse(t *testing.T) {
	f := newTreeFixture(t)
	f.seed(t)

	m := NewTreeModel(f.ctx, styles.NewTheme(), f.cfg)
	require.Len(t, m.rows, 2)
	assert.Contains(t, m.View(), "Work")
	assert.Contains(t, m.View(), "Go")

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, f.store.State().TabContainer.Containers[0].Collapsed)
	assert.Len(t, m.rows, 1)
}

func TestTreeModel_CursorBounds(t *testing.T) {
	f := newTreeFixture(t)
	f.seed(t)

	m := NewTreeModel(f.ctx, styles.NewTheme(), f.cfg)
	m = press(t, m, runes("k"))
	assert.Equal(t, 0, m.cursor)
	m = press(t, m, runes("j"), runes("j"), runes("j"))
	assert.Equal(t, 1, m.cursor)
}

func TestTreeModel_NewContainerFromInput(t *testing.T) {
	f := newTreeFixture(t)
	m := NewTreeModel(f.ctx, styles.NewTheme(), f.cfg)
	assert.Contains(t, m.View(), "No saved tabs")

	m = press(t, m, runes("n"))
	require.Equal(t, modeNewContainer, m.mode)
	m = typeText(t, m, "Reading")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, modeNormal, m.mode)
	containers := f.store.State().TabContainer.Containers
	require.Len(t, containers, 1)
	assert.Equal(t, "Reading", containers[0].Title)
	assert.True(t, f.store.State().Global.IsDirty)
}

func TestTreeModel_AddTabToSelectedContainer(t *testing.T) {
	f := newTreeFixture(t)
	c, _ := f.seed(t)

	m := NewTreeModel(f.ctx, styles.NewTheme(), f.cfg)
	m = press(t, m, runes("a"))
	require.Equal(t, modeAddTab, m.mode)
	m = typeText(t, m, "https://pkg.go.dev")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	tabs := f.store.State().TabContainer.Containers[0].Tabs
	require.Len(t, tabs, 2)
	assert.Equal(t, "https://pkg.go.dev", tabs[1].URL)
	assert.Equal(t, c.ID, f.store.State().TabContainer.Containers[0].ID)
}

func TestTreeModel_DeleteTabThenUndo(t *testing.T) {
	f := newTreeFixture(t)
	f.seed(t)

	m := NewTreeModel(f.ctx, styles.NewTheme(), f.cfg)
	m = press(t, m, runes("j"), runes("d"))
	assert.Equal(t, 0, f.store.State().TabContainer.TabCount())

	m = press(t, m, runes("u"))
	assert.Equal(t, 1, f.store.State().TabContainer.TabCount())
	assert.Len(t, m.rows, 2)

	press(t, m, runes("r"))
	assert.Equal(t, 0, f.store.State().TabContainer.TabCount())
}

func TestTreeModel_UndoWithoutHistoryShowsToast(t *testing.T) {
	f := newTreeFixture(t)
	m := NewTreeModel(f.ctx, styles.NewTheme(), f.cfg)

	press(t, m, runes("u"))
	f.notifier.AssertCalled(t, "Show", mock.Anything, entity.ErrNothingToUndo.Error(), time.Duration(0))
}

func TestTreeModel_DeleteContainerAsksFirst(t *testing.T) {
	f := newTreeFixture(t)
	f.seed(t)

	m := NewTreeModel(f.ctx, styles.NewTheme(), f.cfg)
	m = press(t, m, runes("d"))
	require.NotNil(t, m.confirm)
	assert.Contains(t, m.View(), "Delete Work")

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, m.confirm)
	assert.Len(t, f.store.State().TabContainer.Containers, 1)

	m = press(t, m, runes("d"), runes("y"), tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, m.confirm)
	assert.Empty(t, f.store.State().TabContainer.Containers)
}

func TestTreeModel_SearchJumpsToMatch(t *testing.T) {
	f := newTreeFixture(t)
	c, _ := f.seed(t)
	_, err := f.cfg.Tabs.AddTab(f.ctx, usecase.AddTabInput{ContainerID: c.ID, URL: "https://example.com", Title: "Example", Index: -1})
	require.NoError(t, err)

	m := NewTreeModel(f.ctx, styles.NewTheme(), f.cfg)
	m = press(t, m, runes("/"))
	assert.True(t, f.store.State().Global.IsSearchPanel)

	m = typeText(t, m, "example")
	require.Len(t, m.matches, 1)
	assert.Equal(t, "example", f.store.State().Global.SearchInputText)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, f.store.State().Global.IsSearchPanel)
	assert.Equal(t, 2, m.cursor)
}

func TestTreeModel_EscClosesSearchAndClearsText(t *testing.T) {
	f := newTreeFixture(t)
	f.seed(t)

	m := NewTreeModel(f.ctx, styles.NewTheme(), f.cfg)
	m = press(t, m, runes("/"))
	m = typeText(t, m, "go")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	g := f.store.State().Global
	assert.False(t, g.IsSearchPanel)
	assert.Empty(t, g.SearchInputText)
	assert.Equal(t, modeNormal, m.mode)
}

func TestTreeModel_SettingsPageCycles(t *testing.T) {
	f := newTreeFixture(t)
	m := NewTreeModel(f.ctx, styles.NewTheme(), f.cfg)

	m = press(t, m, runes(","))
	assert.True(t, f.store.State().Global.IsSettingsPage)
	assert.Equal(t, entity.SettingsCategoryGeneral, f.store.State().SettingsCategory)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, entity.SettingsCategoryAppearance, f.store.State().SettingsCategory)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyShiftTab}, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, entity.SettingsCategoryAbout, f.store.State().SettingsCategory)
	assert.Contains(t, m.View(), "about")

	press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, f.store.State().Global.IsSettingsPage)
}

func TestTreeModel_ReviewModalNeverAskAgain(t *testing.T) {
	f := newTreeFixture(t)
	f.store.Dispatch(store.OpenRateAndReviewModal{})

	m := NewTreeModel(f.ctx, styles.NewTheme(), f.cfg)
	assert.Contains(t, m.View(), "Enjoying tabmaster?")

	next, cmd := m.Update(runes("n"))
	require.NotNil(t, cmd)
	m = press(t, next.(TreeModel), cmd())

	s := f.store.State()
	assert.False(t, s.Global.IsRateAndReviewModalOpen)
	assert.True(t, s.Settings.IsNeverAskAgainToRate)
	assert.NotContains(t, m.View(), "Enjoying tabmaster?")

	var saved entity.Settings
	require.True(t, f.gateway.Load(f.ctx, entity.KeySettingsData, &saved))
	assert.True(t, saved.IsNeverAskAgainToRate)
}

func TestTreeModel_SaveRunsAsCommand(t *testing.T) {
	f := newTreeFixture(t)
	f.seed(t)

	m := NewTreeModel(f.ctx, styles.NewTheme(), f.cfg)
	_, cmd := m.Update(runes("s"))
	require.NotNil(t, cmd)
	msg := cmd()
	done, ok := msg.(opDoneMsg)
	require.True(t, ok)
	require.NoError(t, done.err)

	assert.False(t, f.store.State().Global.IsDirty)
	f.notifier.AssertCalled(t, "Show", mock.Anything, "Saved", time.Duration(0))
}

func TestTreeModel_CopyURL(t *testing.T) {
	f := newTreeFixture(t)
	f.seed(t)
	clip := mocks.NewMockClipboard(t)
	clip.EXPECT().WriteText(mock.Anything, "https://go.dev").Return(nil).Once()
	f.cfg.CopyURL = usecase.NewCopyURLUseCase(f.store, clip)

	m := NewTreeModel(f.ctx, styles.NewTheme(), f.cfg)
	_, cmd := m.Update(runes("c"))
	assert.Nil(t, cmd, "container rows have no url")

	m = press(t, m, runes("j"))
	_, cmd = m.Update(runes("c"))
	require.NotNil(t, cmd)
	done, ok := cmd().(opDoneMsg)
	require.True(t, ok)
	require.NoError(t, done.err)
	f.notifier.AssertCalled(t, "Show", mock.Anything, "Copied https://go.dev", time.Duration(0))
}

func TestTreeModel_StateChangedShowsToast(t *testing.T) {
	f := newTreeFixture(t)
	m := NewTreeModel(f.ctx, styles.NewTheme(), f.cfg)

	f.store.Dispatch(store.SetToastText{Text: "Hello"})
	f.store.Dispatch(store.OpenToast{})
	assert.NotContains(t, m.View(), "Hello")

	m = press(t, m, stateChangedMsg{})
	assert.Contains(t, m.View(), "Hello")
}
