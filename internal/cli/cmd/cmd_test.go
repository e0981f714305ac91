package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tabmaster/internal/domain/build"
	"github.com/bnema/tabmaster/internal/domain/entity"
)

// isolate points every XDG directory at a temp dir and resets flag state.
func isolate(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(root, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(root, "state"))
	t.Setenv("TABMASTER_LOG_LEVEL", "error")

	configFile = ""
	tabsShowIDs, tabsColor, tabsTitle, tabsIndex = false, "", "", -1
	purgeForce = false
	configForce, configWriteSchema = false, false
	logsFollow, logsLines, logsClearAll = false, defaultLogsLines, false
	genDocsOutputDir, genDocsFormat = "", "man"
	return root
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	if closeErr := closeApp(); err == nil {
		err = closeErr
	}
	return out.String(), err
}

func mustExecute(t *testing.T, args ...string) string {
	t.Helper()
	out, err := execute(t, args...)
	require.NoError(t, err, out)
	return out
}

func exportTree(t *testing.T) entity.TabContainerData {
	t.Helper()
	var data entity.TabContainerData
	require.NoError(t, json.Unmarshal([]byte(mustExecute(t, "export")), &data))
	return data
}

func TestTabsCommands_PersistAcrossRuns(t *testing.T) {
	isolate(t)

	out := mustExecute(t, "tabs", "new-container", "Work")
	assert.Contains(t, out, "Created Work")

	out = mustExecute(t, "tabs", "add", "work", "https://go.dev", "--title", "Go")
	assert.Contains(t, out, "Saved Go")

	out = mustExecute(t, "tabs")
	assert.Contains(t, out, "Work")
	assert.Contains(t, out, "https://go.dev")

	out = mustExecute(t, "tabs", "search", "go.dev")
	assert.Contains(t, out, "https://go.dev")

	tree := exportTree(t)
	require.Len(t, tree.Containers, 1)
	require.Len(t, tree.Containers[0].Tabs, 1)
	tabID := string(tree.Containers[0].Tabs[0].ID)

	mustExecute(t, "tabs", "rm", tabID[:8])
	assert.Equal(t, 0, exportTree(t).TabCount())
}

func TestTabsCommands_Errors(t *testing.T) {
	isolate(t)

	_, err := execute(t, "tabs", "add", "missing", "https://go.dev")
	require.ErrorIs(t, err, entity.ErrContainerNotFound)

	mustExecute(t, "tabs", "new-container", "Work")
	_, err = execute(t, "tabs", "add", "Work", "   ")
	require.ErrorIs(t, err, entity.ErrEmptyURL)

	_, err = execute(t, "tabs", "rm", "nope")
	require.ErrorIs(t, err, entity.ErrTabNotFound)

	_, err = execute(t, "tabs", "new-container", "Bad", "--color", "red")
	require.ErrorIs(t, err, entity.ErrInvalidColor)
}

func TestTabsCommands_RenameCollapseMove(t *testing.T) {
	isolate(t)
	mustExecute(t, "tabs", "new-container", "A")
	mustExecute(t, "tabs", "new-container", "B")
	mustExecute(t, "tabs", "add", "A", "https://a.example")

	mustExecute(t, "tabs", "rename", "B", "Archive")
	mustExecute(t, "tabs", "collapse", "Archive")

	tree := exportTree(t)
	tabID := string(tree.Containers[0].Tabs[0].ID)
	mustExecute(t, "tabs", "mv", tabID, "Archive")

	tree = exportTree(t)
	assert.Empty(t, tree.Containers[0].Tabs)
	assert.Equal(t, "Archive", tree.Containers[1].Title)
	assert.True(t, tree.Containers[1].Collapsed)
	require.Len(t, tree.Containers[1].Tabs, 1)

	out := mustExecute(t, "tabs")
	assert.NotContains(t, out, "https://a.example", "collapsed container hides its tabs")

	mustExecute(t, "tabs", "rm-container", "A")
	assert.Len(t, exportTree(t).Containers, 1)
}

func TestImportExport(t *testing.T) {
	root := isolate(t)
	src := filepath.Join(root, "in.json")
	require.NoError(t, os.WriteFile(src, []byte(`{"containers":[{"title":"Imported","tabs":[{"url":"https://x.example"},{"url":""}]}]}`), 0o600))

	out := mustExecute(t, "import", src)
	assert.Contains(t, out, "Imported 1 containers, 1 tabs")

	dst := filepath.Join(root, "out.json")
	mustExecute(t, "export", dst)
	raw, err := os.ReadFile(dst)
	require.NoError(t, err)

	var data entity.TabContainerData
	require.NoError(t, json.Unmarshal(raw, &data))
	require.Len(t, data.Containers, 1)
	assert.NotEmpty(t, data.Containers[0].ID)
	assert.Equal(t, "https://x.example", data.Containers[0].Tabs[0].URL)
}

func TestPurgeForce(t *testing.T) {
	isolate(t)
	mustExecute(t, "tabs", "new-container", "Work")

	out := mustExecute(t, "purge", "--force")
	assert.Contains(t, out, "All saved data removed")
	assert.Contains(t, mustExecute(t, "tabs"), "No saved tabs")
}

func TestStatusAndReview(t *testing.T) {
	isolate(t)

	out := mustExecute(t, "review", "check")
	assert.Contains(t, out, "No review prompt due")

	mustExecute(t, "review", "never")
	out = mustExecute(t, "status")
	assert.Contains(t, out, "never ask")
	assert.Contains(t, out, "clean")
}

func TestConfigCommands(t *testing.T) {
	root := isolate(t)

	out := mustExecute(t, "config", "path")
	assert.Contains(t, out, filepath.Join(root, "config", "tabmaster", "config.toml"))

	out = mustExecute(t, "config", "init")
	assert.Contains(t, out, "already exists")

	out = mustExecute(t, "config", "show")
	assert.Contains(t, out, "[persistence]")
	assert.Contains(t, out, "[review]")

	out = mustExecute(t, "config", "schema")
	assert.True(t, strings.HasPrefix(strings.TrimSpace(out), "{"))
	assert.Contains(t, out, "max_undo_steps")
}

func TestConfigInitForceRewritesDefaults(t *testing.T) {
	root := isolate(t)
	path := filepath.Join(root, "custom.toml")
	require.NoError(t, os.WriteFile(path, []byte("[toast]\nduration = \"9s\"\n"), 0o600))

	out := mustExecute(t, "--config", path, "config", "show")
	assert.Contains(t, out, "9s")

	mustExecute(t, "--config", path, "config", "init", "--force")
	out = mustExecute(t, "--config", path, "config", "show")
	assert.NotContains(t, out, "9s")
}

func TestAbout(t *testing.T) {
	isolate(t)
	SetBuildInfo(build.NewInfo("1.2.3", "abc123", "2024-05-01"))

	out := mustExecute(t, "about")
	assert.Contains(t, out, "1.2.3")
	assert.Contains(t, out, "abc123")
	assert.Contains(t, out, build.RepoURL())
}

func TestGenDocsMarkdown(t *testing.T) {
	isolate(t)
	dir := filepath.Join(t.TempDir(), "docs")

	out := mustExecute(t, "gen-docs", "--format", "markdown", "--output", dir)
	assert.Contains(t, out, "tabmaster_tabs.md")
	assert.FileExists(t, filepath.Join(dir, "tabmaster.md"))
	assert.FileExists(t, filepath.Join(dir, "tabmaster_tabs_add.md"))

	_, err := execute(t, "gen-docs", "--format", "pdf")
	require.Error(t, err)
}

func TestAppModeAnnotations(t *testing.T) {
	assert.Equal(t, appNone, appMode(configShowCmd))
	assert.Equal(t, appNone, appMode(aboutCmd))
	assert.Equal(t, appNone, appMode(logsListCmd))
	assert.Equal(t, "", appMode(tabsAddCmd))
	assert.Equal(t, "", appMode(uiCmd))
}
