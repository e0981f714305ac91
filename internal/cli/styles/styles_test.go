package styles_test

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/bnema/tabmaster/internal/cli/styles"
	"github.com/bnema/tabmaster/internal/domain/build"
	"github.com/bnema/tabmaster/internal/domain/entity"
	"github.com/bnema/tabmaster/internal/store"
)

func sampleTree() entity.TabContainerData {
	return entity.TabContainerData{Containers: []entity.Container{
		{ID: "c1", Title: "Work", Tabs: []entity.Tab{{ID: "t1", Title: "Tracker", URL: "https://tracker.example"}}},
		{ID: "c2", Title: "Hidden", Collapsed: true, Tabs: []entity.Tab{{ID: "t2", URL: "https://secret.example"}}},
	}}
}

func TestTabsRenderer_RenderTree(t *testing.T) {
	r := styles.NewTabsRenderer(styles.NewTheme())

	out := r.RenderTree(sampleTree(), true)
	assert.Contains(t, out, "Work")
	assert.Contains(t, out, "Tracker")
	assert.Contains(t, out, "t1")
	assert.Contains(t, out, "Hidden")
	assert.NotContains(t, out, "secret.example", "collapsed containers hide their tabs")

	assert.Contains(t, r.RenderTree(entity.NewTabContainerData(), false), "No saved tabs")
}

func TestTabsRenderer_RenderMatches(t *testing.T) {
	r := styles.NewTabsRenderer(styles.NewTheme())
	out := r.RenderMatches(sampleTree().Search("tracker"))
	assert.Contains(t, out, "Work")
	assert.Contains(t, out, "https://tracker.example")

	assert.Contains(t, r.RenderMatches(nil), "No matching tabs")
}

func TestTheme_RenderStatus(t *testing.T) {
	theme := styles.NewTheme()
	s := store.NewState()
	s.TabContainer = sampleTree()
	s.Global.IsDirty = true
	s.Settings.IsNeverAskAgainToRate = true

	out := theme.RenderStatus(s)
	assert.Contains(t, out, "unsaved changes")
	assert.Contains(t, out, "never ask")
	assert.Contains(t, out, "idle")
}

func TestConfirmModel_Result(t *testing.T) {
	m := styles.NewConfirm(styles.NewTheme(), "Delete Reading?", "Its 3 tabs go with it.")
	assert.False(t, m.Done())
	view := m.View()
	assert.Contains(t, view, "Delete Reading?")
	assert.Contains(t, view, "Its 3 tabs go with it.")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, m.Done())
	assert.False(t, m.Result(), "keep is preselected")

	m = styles.NewConfirm(styles.NewTheme(), "Purge all local data?", "")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, m.Result())

	m = styles.NewConfirm(styles.NewTheme(), "Purge all local data?", "")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, m.Done())
	assert.False(t, m.Result(), "esc keeps the data")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")})
	assert.False(t, m.Result(), "answered dialogs ignore further keys")
}

func TestRelativeTime(t *testing.T) {
	now := time.Now()
	assert.Equal(t, "just now", styles.RelativeTime(now))
	assert.Equal(t, "5m ago", styles.RelativeTime(now.Add(-5*time.Minute)))
	assert.Equal(t, "1h ago", styles.RelativeTime(now.Add(-61*time.Minute)))
	assert.Equal(t, "3d ago", styles.RelativeTime(now.Add(-73*time.Hour)))
	assert.Equal(t, "1y ago", styles.RelativeTime(now.Add(-400*24*time.Hour)))
}

func TestTabCountBadge(t *testing.T) {
	theme := styles.NewTheme()
	assert.Contains(t, theme.TabCountBadge(1), "1 tab")
	assert.Contains(t, theme.TabCountBadge(3), "3 tabs")
}

func TestAboutRenderer(t *testing.T) {
	out := styles.NewAboutRenderer(styles.NewTheme()).Render(build.Info{Version: "1.0.0"})
	assert.Contains(t, out, "1.0.0")
	assert.Contains(t, out, "unknown")
}

func TestConfigRenderer(t *testing.T) {
	r := styles.NewConfigRenderer(styles.NewTheme())
	assert.Contains(t, r.RenderConfigInfo("/etc/c.toml", "/var/db.sqlite"), "/var/db.sqlite")
	assert.Contains(t, r.RenderWritten("schema", "/tmp/s.json"), "Wrote schema to")
	assert.Contains(t, r.RenderError(errors.New("boom")), "boom")
}
