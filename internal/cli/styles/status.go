package styles

import (
	"fmt"
	"strings"

	"github.com/bnema/tabmaster/internal/domain/entity"
	"github.com/bnema/tabmaster/internal/store"
)

// RenderStatus summarizes the state tree.
func (t *Theme) RenderStatus(s store.State) string {
	key := t.Subtle
	val := t.Highlight

	dirty := t.SuccessStyle.Render("clean")
	if s.Global.IsDirty {
		dirty = t.WarningStyle.Render("unsaved changes")
	}

	lines := []string{
		t.BoxHeader.Render("tabmaster"),
		fmt.Sprintf("%s %s", key.Render("Containers"), val.Render(fmt.Sprintf("%d", len(s.TabContainer.Containers)))),
		fmt.Sprintf("%s %s", key.Render("Tabs      "), val.Render(fmt.Sprintf("%d", s.TabContainer.TabCount()))),
		fmt.Sprintf("%s %s", key.Render("State     "), dirty),
		fmt.Sprintf("%s %s", key.Render("Last sync "), t.SyncBadge(s.Global.SyncStatus)),
		fmt.Sprintf("%s %s", key.Render("Undo steps"), val.Render(fmt.Sprintf("%d", len(s.UndoRedo.Past)))),
		fmt.Sprintf("%s %s", key.Render("Installed "), t.timestamp(s.Settings.ExtensionInstalledTime)),
		fmt.Sprintf("%s %s", key.Render("Reviewed  "), t.reviewState(s.Settings)),
	}
	return t.Box.Render(strings.Join(lines, "\n"))
}

// SyncBadge renders a sync status badge.
func (t *Theme) SyncBadge(status entity.SyncStatus) string {
	switch status {
	case entity.SyncStatusSuccess:
		return t.Badge.Render(string(status))
	case entity.SyncStatusError:
		return t.StatusBadge(string(status), t.Background, t.Error)
	default:
		return t.BadgeMuted.Render(string(status))
	}
}

func (t *Theme) timestamp(raw string) string {
	ts, ok := entity.ParseTimestamp(raw)
	if !ok {
		return t.Subtle.Render("unknown")
	}
	return t.Normal.Render(ts.Local().Format("2006-01-02 15:04")) + " " + t.TimeBadge(ts)
}

func (t *Theme) reviewState(s entity.Settings) string {
	switch {
	case s.IsUserRatedAndReviewed:
		return t.SuccessStyle.Render(IconStar + " rated")
	case s.IsNeverAskAgainToRate:
		return t.Subtle.Render("never ask")
	}
	if last, ok := s.LastReviewRequestAt(); ok {
		return t.Normal.Render("last asked") + " " + t.TimeBadge(last)
	}
	return t.Subtle.Render("not asked")
}

// RenderSuccess renders a one-line success message.
func (t *Theme) RenderSuccess(msg string) string {
	return fmt.Sprintf("  %s %s", t.SuccessStyle.Render(IconCheck), msg)
}

// RenderWarning renders a one-line warning.
func (t *Theme) RenderWarning(msg string) string {
	return fmt.Sprintf("  %s %s", t.WarningStyle.Render(IconWarning), msg)
}
