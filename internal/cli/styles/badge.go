package styles

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// TabCountBadge renders a container's tab count.
func (t *Theme) TabCountBadge(count int) string {
	text := fmt.Sprintf("%d tabs", count)
	if count == 1 {
		text = "1 tab"
	}
	return t.BadgeMuted.Render(text)
}

// TimeBadge renders a relative time badge.
func (t *Theme) TimeBadge(tm time.Time) string {
	return t.BadgeMuted.Render(RelativeTime(tm))
}

// StatusBadge renders a status badge with custom colors.
func (t *Theme) StatusBadge(text string, fg, bg lipgloss.Color) string {
	style := lipgloss.NewStyle().
		Foreground(fg).
		Background(bg).
		Padding(0, 1)
	return style.Render(text)
}

var relativeUnits = []struct {
	size   time.Duration
	suffix string
}{
	{365 * 24 * time.Hour, "y"},
	{30 * 24 * time.Hour, "mo"},
	{7 * 24 * time.Hour, "w"},
	{24 * time.Hour, "d"},
	{time.Hour, "h"},
	{time.Minute, "m"},
}

// RelativeTime formats tm as the largest whole unit ago, e.g. "3d ago".
func RelativeTime(tm time.Time) string {
	diff := time.Since(tm)
	for _, u := range relativeUnits {
		if diff >= u.size {
			return fmt.Sprintf("%d%s ago", int(diff/u.size), u.suffix)
		}
	}
	return "just now"
}
