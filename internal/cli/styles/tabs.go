package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/tabmaster/internal/domain/entity"
)

// TabsRenderer renders the saved tab tree for command output.
type TabsRenderer struct {
	theme *Theme
}

// NewTabsRenderer creates a new tab tree renderer.
func NewTabsRenderer(theme *Theme) *TabsRenderer {
	return &TabsRenderer{theme: theme}
}

// RenderTree renders every container and, unless collapsed, its tabs.
func (r *TabsRenderer) RenderTree(data entity.TabContainerData, showIDs bool) string {
	if data.IsEmpty() {
		return r.theme.Subtle.Render("  No saved tabs.") + "\n"
	}

	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	var sb strings.Builder
	for _, c := range data.Containers {
		icon := IconFolderOpen
		if c.Collapsed {
			icon = IconFolder
		}
		header := fmt.Sprintf("%s %s %s",
			iconStyle.Render(icon),
			r.theme.Title.Render(c.Title),
			r.theme.TabCountBadge(len(c.Tabs)),
		)
		if showIDs {
			header += " " + r.theme.Subtle.Render(string(c.ID))
		}
		sb.WriteString(header)
		sb.WriteString("\n")

		if c.Collapsed {
			continue
		}
		for _, t := range c.Tabs {
			sb.WriteString(r.RenderTab(t, showIDs))
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// RenderTab renders one tab line.
func (r *TabsRenderer) RenderTab(t entity.Tab, showID bool) string {
	line := fmt.Sprintf("    %s %s %s",
		r.theme.Subtle.Render(IconGlobe),
		r.theme.Normal.Render(t.DisplayTitle()),
		r.theme.Subtle.Render(t.URL),
	)
	if showID {
		line += " " + r.theme.Subtle.Render(string(t.ID))
	}
	return line
}

// RenderMatches renders search results.
func (r *TabsRenderer) RenderMatches(matches []entity.TabMatch) string {
	if len(matches) == 0 {
		return r.theme.Subtle.Render("  No matching tabs.") + "\n"
	}
	var sb strings.Builder
	for _, m := range matches {
		sb.WriteString(fmt.Sprintf("  %s %s\n",
			r.theme.Highlight.Render(m.ContainerTitle),
			strings.TrimSpace(r.RenderTab(m.Tab, true)),
		))
	}
	return sb.String()
}
