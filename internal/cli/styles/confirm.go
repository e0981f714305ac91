package styles

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var confirmKeys = struct {
	keep, remove, toggle, submit, dismiss key.Binding
}{
	keep:    key.NewBinding(key.WithKeys("n")),
	remove:  key.NewBinding(key.WithKeys("y")),
	toggle:  key.NewBinding(key.WithKeys("left", "right", "h", "l", "tab")),
	submit:  key.NewBinding(key.WithKeys("enter")),
	dismiss: key.NewBinding(key.WithKeys("esc", "q", "ctrl+c")),
}

// ConfirmModel guards a destructive edit such as deleting a container or
// purging local data. Keep is preselected; only enter on Delete confirms.
type ConfirmModel struct {
	prompt string
	detail string
	remove bool
	done   bool
	theme  *Theme
}

// NewConfirm creates a dialog asking prompt, with detail explaining what is lost.
func NewConfirm(theme *Theme, prompt, detail string) ConfirmModel {
	return ConfirmModel{prompt: prompt, detail: detail, theme: theme}
}

// Init implements tea.Model.
func (m ConfirmModel) Init() tea.Cmd {
	return nil
}

// Update handles a key press; embedding models call it directly.
func (m ConfirmModel) Update(msg tea.Msg) (ConfirmModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || m.done {
		return m, nil
	}
	switch {
	case key.Matches(keyMsg, confirmKeys.keep):
		m.remove = false
	case key.Matches(keyMsg, confirmKeys.remove):
		m.remove = true
	case key.Matches(keyMsg, confirmKeys.toggle):
		m.remove = !m.remove
	case key.Matches(keyMsg, confirmKeys.submit):
		m.done = true
	case key.Matches(keyMsg, confirmKeys.dismiss):
		m.remove, m.done = false, true
	}
	return m, nil
}

// View implements tea.Model.
func (m ConfirmModel) View() string {
	t := m.theme

	keep, remove := t.ActiveButton, t.InactiveButton
	if m.remove {
		keep = t.InactiveButton
		remove = t.ActiveButton.Background(t.Error)
	}
	buttons := lipgloss.JoinHorizontal(lipgloss.Center,
		keep.Render("Keep"), "  ", remove.Render("Delete"))

	lines := []string{t.WarningStyle.Bold(true).Render(m.prompt)}
	if m.detail != "" {
		lines = append(lines, t.Subtle.Render(m.detail))
	}
	lines = append(lines, "", buttons, "",
		t.HelpKey.Render("y/n")+" "+t.HelpDesc.Render("choose")+"  "+
			t.HelpKey.Render("enter")+" "+t.HelpDesc.Render("apply")+"  "+
			t.HelpKey.Render("esc")+" "+t.HelpDesc.Render("keep"))

	return t.Box.BorderForeground(t.Error).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// Done reports whether the user answered or dismissed the dialog.
func (m ConfirmModel) Done() bool {
	return m.done
}

// Result reports whether the user chose Delete.
func (m ConfirmModel) Result() bool {
	return m.done && m.remove
}

// confirmProgram runs a ConfirmModel as a standalone program.
type confirmProgram struct {
	ConfirmModel
}

func (p confirmProgram) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m, cmd := p.ConfirmModel.Update(msg)
	p.ConfirmModel = m
	if m.Done() {
		return p, tea.Quit
	}
	return p, cmd
}

// Ask runs the dialog on the terminal and reports whether the user chose Delete.
func Ask(theme *Theme, prompt, detail string, opts ...tea.ProgramOption) (bool, error) {
	final, err := tea.NewProgram(confirmProgram{NewConfirm(theme, prompt, detail)}, opts...).Run()
	if err != nil {
		return false, err
	}
	return final.(confirmProgram).Result(), nil
}
