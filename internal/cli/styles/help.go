package styles

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// KeyMap defines keybindings that can be rendered as help.
type KeyMap interface {
	ShortHelp() []key.Binding
	FullHelp() [][]key.Binding
}

// TreeKeyMap defines keybindings for the tab tree browser.
type TreeKeyMap struct {
	Up           key.Binding
	Down         key.Binding
	Toggle       key.Binding
	NewContainer key.Binding
	AddTab       key.Binding
	Rename       key.Binding
	Delete       key.Binding
	Copy         key.Binding
	Undo         key.Binding
	Redo         key.Binding
	Save         key.Binding
	Search       key.Binding
	Settings     key.Binding
	Help         key.Binding
	Quit         key.Binding
}

// ShortHelp returns keybindings to show in compact help.
func (k TreeKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Toggle, k.Delete, k.Undo, k.Search, k.Help, k.Quit}
}

// FullHelp returns keybindings for expanded help.
func (k TreeKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Toggle},
		{k.NewContainer, k.AddTab, k.Rename, k.Delete, k.Copy},
		{k.Undo, k.Redo, k.Save},
		{k.Search, k.Settings, k.Help, k.Quit},
	}
}

// DefaultTreeKeyMap returns the default tree keybindings.
func DefaultTreeKeyMap() TreeKeyMap {
	return TreeKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "collapse"),
		),
		NewContainer: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new container"),
		),
		AddTab: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add tab"),
		),
		Rename: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "rename"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d", "delete"),
		),
		Copy: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "copy url"),
		),
		Undo: key.NewBinding(
			key.WithKeys("u", "ctrl+z"),
			key.WithHelp("u", "undo"),
		),
		Redo: key.NewBinding(
			key.WithKeys("r", "ctrl+y"),
			key.WithHelp("r", "redo"),
		),
		Save: key.NewBinding(
			key.WithKeys("s", "ctrl+s"),
			key.WithHelp("s", "save"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Settings: key.NewBinding(
			key.WithKeys(","),
			key.WithHelp(",", "settings"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ReviewKeyMap defines keybindings for the rate-and-review modal.
type ReviewKeyMap struct {
	Rate  key.Binding
	Never key.Binding
	Later key.Binding
}

// ShortHelp returns keybindings to show in compact help.
func (k ReviewKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Rate, k.Never, k.Later}
}

// FullHelp returns keybindings for expanded help.
func (k ReviewKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultReviewKeyMap returns the default review modal keybindings.
func DefaultReviewKeyMap() ReviewKeyMap {
	return ReviewKeyMap{
		Rate: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "rate now"),
		),
		Never: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "never"),
		),
		Later: key.NewBinding(
			key.WithKeys("l", "esc"),
			key.WithHelp("l", "later"),
		),
	}
}

// NewStyledHelp creates a themed help model.
func NewStyledHelp(theme *Theme) help.Model {
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(theme.Muted)
	h.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	h.Styles.FullKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.FullDesc = lipgloss.NewStyle().Foreground(theme.Text)
	h.Styles.FullSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	return h
}
