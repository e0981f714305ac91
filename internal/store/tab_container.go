package store

import "github.com/bnema/tabmaster/internal/domain/entity"

type tabAction struct{}

func (tabAction) Slice() Slice { return SliceTabContainer }

// tabMutation marks the persisted tab slice dirty when it changes.
type tabMutation struct{ tabAction }

func (tabMutation) marksDirty() {}

type (
	// ReplaceTabContainerData overwrites the slice with freshly loaded data.
	// Used for hydration only; it does not mark the store dirty.
	ReplaceTabContainerData struct {
		tabAction
		Data entity.TabContainerData
	}

	// RestoreTabContainerData overwrites the slice with a history snapshot or
	// imported data and marks the store dirty.
	RestoreTabContainerData struct {
		tabMutation
		Data entity.TabContainerData
	}

	AddContainer struct {
		tabMutation
		Container entity.Container
	}
	RenameContainer struct {
		tabMutation
		ID    entity.ContainerID
		Title string
	}
	RemoveContainer struct {
		tabMutation
		ID entity.ContainerID
	}
	ToggleContainerCollapsed struct {
		tabMutation
		ID entity.ContainerID
	}

	// AddTab inserts Tab at Index in the container; a negative or
	// out-of-range Index appends.
	AddTab struct {
		tabMutation
		ContainerID entity.ContainerID
		Tab         entity.Tab
		Index       int
	}
	RemoveTab struct {
		tabMutation
		ID entity.TabID
	}
	// MoveTab moves a tab into ToContainer at Index (negative appends).
	MoveTab struct {
		tabMutation
		ID          entity.TabID
		ToContainer entity.ContainerID
		Index       int
	}
)

func (ReplaceTabContainerData) Name() string  { return "tabContainer/replaceState" }
func (RestoreTabContainerData) Name() string  { return "tabContainer/restoreState" }
func (AddContainer) Name() string             { return "tabContainer/addContainer" }
func (RenameContainer) Name() string          { return "tabContainer/renameContainer" }
func (RemoveContainer) Name() string          { return "tabContainer/removeContainer" }
func (ToggleContainerCollapsed) Name() string { return "tabContainer/toggleCollapsed" }
func (AddTab) Name() string                   { return "tabContainer/addTab" }
func (RemoveTab) Name() string                { return "tabContainer/removeTab" }
func (MoveTab) Name() string                  { return "tabContainer/moveTab" }

// reduceTabContainer never mutates s. It reports false when the action
// targets something that does not exist.
func reduceTabContainer(s entity.TabContainerData, action Action) (entity.TabContainerData, bool) {
	switch a := action.(type) {
	case ReplaceTabContainerData:
		return a.Data.Clone(), true
	case RestoreTabContainerData:
		return a.Data.Clone(), true

	case AddContainer:
		next := s.Clone()
		c := a.Container
		c.Tabs = append([]entity.Tab{}, c.Tabs...)
		next.Containers = append(next.Containers, c)
		return next, true

	case RenameContainer:
		idx := s.ContainerIndex(a.ID)
		if idx < 0 || s.Containers[idx].Title == a.Title {
			return s, false
		}
		next := s.Clone()
		next.Containers[idx].Title = a.Title
		return next, true

	case RemoveContainer:
		idx := s.ContainerIndex(a.ID)
		if idx < 0 {
			return s, false
		}
		next := s.Clone()
		next.Containers = append(next.Containers[:idx], next.Containers[idx+1:]...)
		return next, true

	case ToggleContainerCollapsed:
		idx := s.ContainerIndex(a.ID)
		if idx < 0 {
			return s, false
		}
		next := s.Clone()
		next.Containers[idx].Collapsed = !next.Containers[idx].Collapsed
		return next, true

	case AddTab:
		idx := s.ContainerIndex(a.ContainerID)
		if idx < 0 {
			return s, false
		}
		next := s.Clone()
		next.Containers[idx].Tabs = insertTab(next.Containers[idx].Tabs, a.Tab, a.Index)
		return next, true

	case RemoveTab:
		ci, ti, ok := s.FindTab(a.ID)
		if !ok {
			return s, false
		}
		next := s.Clone()
		tabs := next.Containers[ci].Tabs
		next.Containers[ci].Tabs = append(tabs[:ti], tabs[ti+1:]...)
		return next, true

	case MoveTab:
		ci, ti, ok := s.FindTab(a.ID)
		if !ok {
			return s, false
		}
		dst := s.ContainerIndex(a.ToContainer)
		if dst < 0 {
			return s, false
		}
		next := s.Clone()
		tab := next.Containers[ci].Tabs[ti]
		tabs := next.Containers[ci].Tabs
		next.Containers[ci].Tabs = append(tabs[:ti], tabs[ti+1:]...)
		next.Containers[dst].Tabs = insertTab(next.Containers[dst].Tabs, tab, a.Index)
		return next, true
	}
	return s, false
}

func insertTab(tabs []entity.Tab, tab entity.Tab, index int) []entity.Tab {
	if index < 0 || index >= len(tabs) {
		return append(tabs, tab)
	}
	tabs = append(tabs, entity.Tab{})
	copy(tabs[index+1:], tabs[index:])
	tabs[index] = tab
	return tabs
}
