// Package model provides Bubble Tea models for CLI commands.
package model

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/tabmaster/internal/application/port"
	"github.com/bnema/tabmaster/internal/application/usecase"
	"github.com/bnema/tabmaster/internal/cli/styles"
	"github.com/bnema/tabmaster/internal/domain/entity"
	tabsurl "github.com/bnema/tabmaster/internal/domain/url"
	"github.com/bnema/tabmaster/internal/logging"
	"github.com/bnema/tabmaster/internal/store"
)

// TreeConfig holds the dependencies of the tab tree browser.
type TreeConfig struct {
	Store      port.StateStore
	Tabs       *usecase.ManageTabsUseCase
	History    *usecase.HistoryUseCase
	Navigation *usecase.NavigationUseCase
	Review     *usecase.ReviewPromptUseCase
	Save       *usecase.SaveUseCase
	Notify     *usecase.NotifyUseCase
	CopyURL    *usecase.CopyURLUseCase
}

type inputMode int

const (
	modeNormal inputMode = iota
	modeSearch
	modeNewContainer
	modeAddTab
	modeRename
)

// settingsCategories is the order the settings page cycles through.
var settingsCategories = []entity.SettingsCategory{
	entity.SettingsCategoryGeneral,
	entity.SettingsCategoryAppearance,
	entity.SettingsCategoryData,
	entity.SettingsCategoryAbout,
}

// row is one line of the flattened tree: a container header or one of its tabs.
type row struct {
	container entity.Container
	tab       *entity.Tab
}

// TreeModel is the Bubble Tea model for the interactive tab tree.
type TreeModel struct {
	// UI components
	input      textinput.Model
	help       help.Model
	keys       styles.TreeKeyMap
	reviewKeys styles.ReviewKeyMap
	confirm    *styles.ConfirmModel

	// State
	state     store.State
	rows      []row
	cursor    int
	mode      inputMode
	matches   []entity.TabMatch
	pendingID entity.ContainerID
	showHelp  bool
	width     int
	height    int

	// Dependencies
	ctx   context.Context
	cfg   TreeConfig
	theme *styles.Theme
}

// NewTreeModel creates a new tab tree browser.
func NewTreeModel(ctx context.Context, theme *styles.Theme, cfg TreeConfig) TreeModel {
	logging.FromContext(ctx).Debug().Msg("creating tab tree model")

	m := TreeModel{
		input:      styles.NewSearchInput(theme),
		help:       styles.NewStyledHelp(theme),
		keys:       styles.DefaultTreeKeyMap(),
		reviewKeys: styles.DefaultReviewKeyMap(),
		ctx:        ctx,
		cfg:        cfg,
		theme:      theme,
		width:      80,
		height:     24,
	}
	m.refresh()
	return m
}

// stateChangedMsg tells the model to re-read the store.
type stateChangedMsg struct{}

// opDoneMsg reports the outcome of an asynchronous operation.
type opDoneMsg struct {
	err error
}

// RunTree runs the tab tree browser until the user quits. Store changes made
// outside the model, such as the toast timer closing, are forwarded to the
// program.
func RunTree(ctx context.Context, theme *styles.Theme, cfg TreeConfig, opts ...tea.ProgramOption) error {
	p := tea.NewProgram(NewTreeModel(ctx, theme, cfg), opts...)
	unsubscribe := cfg.Store.Subscribe(func(store.State, store.Action) {
		// Send blocks until the program reads it; never from the dispatching goroutine.
		go p.Send(stateChangedMsg{})
	})
	defer unsubscribe()

	_, err := p.Run()
	return err
}

// Init implements tea.Model.
func (m TreeModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m TreeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case stateChangedMsg:
		m.refresh()
		return m, nil
	case opDoneMsg:
		if msg.err != nil {
			m.cfg.Notify.Display(m.ctx, "", msg.err)
		}
		m.refresh()
		return m, nil
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	if m.confirm != nil {
		return m.handleConfirmModal(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.mode != modeNormal {
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	switch {
	case m.state.Global.IsRateAndReviewModalOpen:
		return m.handleReviewKey(keyMsg)
	case m.mode != modeNormal:
		return m.handleInputKey(keyMsg)
	case m.state.Global.IsSettingsPage:
		return m.handleSettingsKey(keyMsg)
	default:
		return m.handleNormalKey(keyMsg)
	}
}

func (m TreeModel) handleConfirmModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	confirm, cmd := m.confirm.Update(msg)
	m.confirm = &confirm
	if m.confirm.Done() {
		if m.confirm.Result() {
			m.report(m.cfg.Tabs.RemoveContainer(m.ctx, m.pendingID))
		}
		m.confirm = nil
		m.pendingID = ""
	}
	return m, cmd
}

func (m TreeModel) handleReviewKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.reviewKeys.Rate):
		return m, m.run(m.cfg.Review.MarkRated)
	case key.Matches(msg, m.reviewKeys.Never):
		return m, m.run(m.cfg.Review.NeverAskAgain)
	case key.Matches(msg, m.reviewKeys.Later):
		return m, m.run(m.cfg.Review.Later)
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	}
	return m, nil
}

func (m TreeModel) handleSettingsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", ",":
		m.cfg.Navigation.CloseSettingsPage(m.ctx)
	case "tab", "right", "l":
		m.report(m.cfg.Navigation.OpenSettingsPage(m.ctx, m.nextCategory(1)))
	case "shift+tab", "left", "h":
		m.report(m.cfg.Navigation.OpenSettingsPage(m.ctx, m.nextCategory(-1)))
	default:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
	}
	m.refresh()
	return m, nil
}

func (m TreeModel) nextCategory(step int) entity.SettingsCategory {
	idx := 0
	for i, c := range settingsCategories {
		if c == m.state.SettingsCategory {
			idx = i
			break
		}
	}
	n := len(settingsCategories)
	return settingsCategories[((idx+step)%n+n)%n]
}

func (m TreeModel) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		if m.mode == modeSearch {
			m.cfg.Navigation.CloseSearch(m.ctx)
			m.matches = nil
		}
		m.closeInput()
		m.refresh()
		return m, nil
	case "enter":
		m.submitInput(strings.TrimSpace(m.input.Value()))
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.mode == modeSearch {
		m.matches = m.cfg.Navigation.SetSearch(m.ctx, m.input.Value())
	}
	return m, cmd
}

func (m *TreeModel) submitInput(value string) {
	switch m.mode {
	case modeSearch:
		// Enter jumps to the first hit.
		m.cfg.Navigation.CloseSearch(m.ctx)
		if len(m.matches) > 0 {
			m.refresh()
			m.selectTab(m.matches[0].Tab.ID)
		}
		m.matches = nil
	case modeNewContainer:
		_, err := m.cfg.Tabs.AddContainer(m.ctx, usecase.AddContainerInput{Title: value})
		m.report(err)
	case modeAddTab:
		if value != "" {
			_, err := m.cfg.Tabs.AddTab(m.ctx, usecase.AddTabInput{ContainerID: m.pendingID, URL: value, Index: -1})
			m.report(err)
		}
	case modeRename:
		m.report(m.cfg.Tabs.RenameContainer(m.ctx, m.pendingID, value))
	}
	m.closeInput()
}

func (m *TreeModel) openInput(mode inputMode, input textinput.Model) tea.Cmd {
	m.mode = mode
	m.input = input
	m.input.Focus()
	return textinput.Blink
}

func (m *TreeModel) closeInput() {
	m.mode = modeNormal
	m.input.Blur()
	m.pendingID = ""
}

func (m TreeModel) handleNormalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Toggle):
		if r, ok := m.selected(); ok && r.tab == nil {
			m.report(m.cfg.Tabs.ToggleCollapsed(m.ctx, r.container.ID))
		}
	case key.Matches(msg, m.keys.NewContainer):
		return m, m.openInput(modeNewContainer, styles.NewTitleInput(m.theme))
	case key.Matches(msg, m.keys.AddTab):
		if r, ok := m.selected(); ok {
			cmd := m.openInput(modeAddTab, styles.NewURLInput(m.theme))
			m.pendingID = r.container.ID
			return m, cmd
		}
	case key.Matches(msg, m.keys.Rename):
		if r, ok := m.selected(); ok && r.tab == nil {
			input := styles.NewTitleInput(m.theme)
			input.SetValue(r.container.Title)
			cmd := m.openInput(modeRename, input)
			m.pendingID = r.container.ID
			return m, cmd
		}
	case key.Matches(msg, m.keys.Delete):
		return m.deleteSelected()
	case key.Matches(msg, m.keys.Copy):
		if r, ok := m.selected(); ok && r.tab != nil && m.cfg.CopyURL != nil {
			return m, m.copyURL(r.tab.ID)
		}
	case key.Matches(msg, m.keys.Undo):
		m.reportHistory(m.cfg.History.Undo(m.ctx))
	case key.Matches(msg, m.keys.Redo):
		m.reportHistory(m.cfg.History.Redo(m.ctx))
	case key.Matches(msg, m.keys.Save):
		return m, m.run(m.cfg.Save.Execute)
	case key.Matches(msg, m.keys.Search):
		m.cfg.Navigation.OpenSearch(m.ctx)
		cmd := m.openInput(modeSearch, styles.NewSearchInput(m.theme))
		m.refresh()
		return m, cmd
	case key.Matches(msg, m.keys.Settings):
		m.report(m.cfg.Navigation.OpenSettingsPage(m.ctx, m.state.SettingsCategory))
	default:
		return m, nil
	}
	m.refresh()
	return m, nil
}

func (m TreeModel) deleteSelected() (tea.Model, tea.Cmd) {
	r, ok := m.selected()
	if !ok {
		return m, nil
	}
	if r.tab != nil {
		m.report(m.cfg.Tabs.RemoveTab(m.ctx, r.tab.ID))
		m.refresh()
		return m, nil
	}
	if len(r.container.Tabs) == 0 {
		m.report(m.cfg.Tabs.RemoveContainer(m.ctx, r.container.ID))
		m.refresh()
		return m, nil
	}
	confirm := styles.NewConfirm(m.theme,
		fmt.Sprintf("Delete %s?", r.container.Title),
		fmt.Sprintf("Its %d tabs go with it. Undo brings them back.", len(r.container.Tabs)))
	m.confirm = &confirm
	m.pendingID = r.container.ID
	return m, nil
}

// run executes fn off the update loop.
func (m TreeModel) run(fn func(context.Context) error) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		return opDoneMsg{err: fn(ctx)}
	}
}

// copyURL runs as a command since the clipboard tool is an external process.
func (m TreeModel) copyURL(id entity.TabID) tea.Cmd {
	return m.run(func(ctx context.Context) error {
		url, err := m.cfg.CopyURL.Copy(ctx, id)
		if err != nil {
			return err
		}
		m.cfg.Notify.Display(ctx, "Copied "+url, nil)
		return nil
	})
}

func (m TreeModel) report(err error) {
	if err != nil {
		m.cfg.Notify.Display(m.ctx, "", err)
	}
}

func (m TreeModel) reportHistory(err error) {
	if errors.Is(err, entity.ErrNothingToUndo) || errors.Is(err, entity.ErrNothingToRedo) {
		m.cfg.Notify.Display(m.ctx, err.Error(), nil)
		return
	}
	m.report(err)
}

// refresh re-reads the store and rebuilds the visible rows.
func (m *TreeModel) refresh() {
	m.state = m.cfg.Store.State()

	m.rows = nil
	for _, c := range m.state.TabContainer.Containers {
		m.rows = append(m.rows, row{container: c})
		if c.Collapsed {
			continue
		}
		for i := range c.Tabs {
			m.rows = append(m.rows, row{container: c, tab: &c.Tabs[i]})
		}
	}
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m TreeModel) selected() (row, bool) {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return row{}, false
	}
	return m.rows[m.cursor], true
}

func (m *TreeModel) selectTab(id entity.TabID) {
	for i, r := range m.rows {
		if r.tab != nil && r.tab.ID == id {
			m.cursor = i
			return
		}
	}
}

// View implements tea.Model.
func (m TreeModel) View() string {
	var sections []string
	sections = append(sections, m.renderHeader())

	switch {
	case m.confirm != nil:
		sections = append(sections, m.confirm.View())
	case m.state.Global.IsRateAndReviewModalOpen:
		sections = append(sections, m.renderReviewModal())
	case m.state.Global.IsSettingsPage:
		sections = append(sections, m.renderSettings())
	default:
		sections = append(sections, m.renderRows())
		if m.mode != modeNormal {
			sections = append(sections, m.theme.InputBox(m.input.View(), true))
		}
		if m.mode == modeSearch {
			sections = append(sections, styles.NewTabsRenderer(m.theme).RenderMatches(m.matches))
		}
	}

	if m.state.Global.IsToastOpen {
		sections = append(sections, m.theme.Toast.Render(m.state.Global.ToastText))
	}

	if m.showHelp {
		sections = append(sections, m.help.FullHelpView(m.keys.FullHelp()))
	} else {
		sections = append(sections, m.help.ShortHelpView(m.keys.ShortHelp()))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m TreeModel) renderHeader() string {
	tree := m.state.TabContainer
	title := m.theme.Title.Render("tabmaster")
	counts := m.theme.Subtle.Render(fmt.Sprintf("%d containers · %d tabs", len(tree.Containers), tree.TabCount()))
	badge := m.theme.SyncBadge(m.state.Global.SyncStatus)
	if m.state.Global.IsDirty {
		badge = m.theme.WarningStyle.Render("● unsaved")
	}
	return m.theme.BoxHeader.Render(lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", counts, "  ", badge))
}

func (m TreeModel) renderRows() string {
	if len(m.rows) == 0 {
		return m.theme.Subtle.Render("  No saved tabs. Press n to create a container.")
	}

	// Keep the cursor in view.
	height := m.height - 8
	if height < 5 {
		height = 5
	}
	start := 0
	if m.cursor >= height {
		start = m.cursor - height + 1
	}
	end := start + height
	if end > len(m.rows) {
		end = len(m.rows)
	}

	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		r := m.rows[i]
		var text string
		if r.tab == nil {
			icon := styles.IconFolderOpen
			if r.container.Collapsed {
				icon = styles.IconFolder
			}
			text = fmt.Sprintf("%s %s (%d)", icon, r.container.Title, len(r.container.Tabs))
		} else {
			text = fmt.Sprintf("   %s %s", styles.IconGlobe, r.tab.DisplayTitle())
			if domain := tabsurl.ExtractDomain(r.tab.URL); domain != "" && domain != r.tab.DisplayTitle() {
				text += " " + m.theme.Subtle.Render(domain)
			}
		}

		style := m.theme.ListItem
		if i == m.cursor {
			style = m.theme.ListItemSelected
		}
		lines = append(lines, style.Render(text))
	}
	return strings.Join(lines, "\n")
}

func (m TreeModel) renderReviewModal() string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		m.theme.Title.Render(styles.IconStar+" Enjoying tabmaster?"),
		m.theme.Normal.Render("A rating helps other people find it."),
		"",
		m.help.ShortHelpView(m.reviewKeys.ShortHelp()),
	)
	return m.theme.Box.Render(body)
}

func (m TreeModel) renderSettings() string {
	tabs := make([]string, 0, len(settingsCategories))
	for _, c := range settingsCategories {
		style := m.theme.InactiveButton
		if c == m.state.SettingsCategory {
			style = m.theme.ActiveButton
		}
		tabs = append(tabs, style.Render(string(c)))
	}

	var body string
	switch m.state.SettingsCategory {
	case entity.SettingsCategoryData:
		body = m.theme.RenderStatus(m.state)
	case entity.SettingsCategoryAbout:
		body = m.theme.Normal.Render("tabmaster keeps saved tabs in named containers.")
	case entity.SettingsCategoryAppearance:
		body = m.theme.Subtle.Render("Colors follow the built-in dark palette.")
	default:
		s := m.state.Settings
		body = lipgloss.JoinVertical(lipgloss.Left,
			fmt.Sprintf("%s %v", m.theme.Subtle.Render("Rated:          "), s.IsUserRatedAndReviewed),
			fmt.Sprintf("%s %v", m.theme.Subtle.Render("Never ask again:"), s.IsNeverAskAgainToRate),
		)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, tabs...),
		"",
		body,
		"",
		m.theme.Subtle.Render("tab/shift+tab switch · esc close"),
	)
}
