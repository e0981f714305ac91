package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/tabmaster/internal/domain/build"
)

// AboutRenderer renders build info in fastfetch style.
type AboutRenderer struct {
	theme *Theme
}

// NewAboutRenderer creates a new about renderer with the given theme.
func NewAboutRenderer(theme *Theme) *AboutRenderer {
	return &AboutRenderer{theme: theme}
}

// Render renders build info next to the logo.
func (r *AboutRenderer) Render(info build.Info) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, r.renderLogo(), "   ", r.renderInfoLines(info))
}

func (r *AboutRenderer) renderLogo() string {
	logoStyle := lipgloss.NewStyle().Foreground(r.theme.Accent).Bold(true)

	// Stacked tabs
	logo := `▄▄▄ ▄▄▄
███████
██   ██
██   ██
▀▀▀▀▀▀▀`

	return logoStyle.MarginTop(1).MarginLeft(2).Render(logo)
}

func (r *AboutRenderer) renderInfoLines(info build.Info) string {
	keyStyle := r.theme.Subtle
	valStyle := r.theme.Highlight
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)

	lines := []string{
		fmt.Sprintf("%s %s %s", iconStyle.Render(IconInfo), keyStyle.Render("Version"), valStyle.Render(orUnknown(info.Version))),
		fmt.Sprintf("%s %s %s", iconStyle.Render(IconInfo), keyStyle.Render("Commit "), valStyle.Render(orUnknown(info.Commit))),
		fmt.Sprintf("%s %s %s", iconStyle.Render(IconInfo), keyStyle.Render("Built  "), valStyle.Render(orUnknown(info.BuildDate))),
		fmt.Sprintf("%s %s %s", iconStyle.Render(IconInfo), keyStyle.Render("Go     "), valStyle.Render(orUnknown(info.GoVersion))),
		"",
		fmt.Sprintf("%s %s", iconStyle.Render(IconGlobe), keyStyle.Render(build.RepoURL())),
	}

	return strings.Join(lines, "\n")
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
