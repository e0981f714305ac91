package entity

import (
	"errors"
	"strings"
)

var (
	// ErrContainerNotFound is returned when a container ID does not resolve.
	ErrContainerNotFound = errors.New("container not found")
	// ErrTabNotFound is returned when a tab ID does not resolve.
	ErrTabNotFound = errors.New("tab not found")
	// ErrEmptyURL is returned when a tab is created without a URL.
	ErrEmptyURL = errors.New("tab url cannot be empty")
	// ErrInvalidColor is returned when a container color is not #RRGGBB.
	ErrInvalidColor = errors.New("invalid container color")
)

// ContainerID uniquely identifies a tab container.
type ContainerID string

// TabID uniquely identifies a saved tab.
type TabID string

// Tab is a saved browser tab.
type Tab struct {
	ID         TabID  `json:"id"`
	Title      string `json:"title"`
	URL        string `json:"url"`
	FavIconURL string `json:"favIconUrl,omitempty"`
}

// DisplayTitle returns the title, falling back to the URL.
func (t Tab) DisplayTitle() string {
	if strings.TrimSpace(t.Title) != "" {
		return t.Title
	}
	return t.URL
}

// Container groups saved tabs under a title.
type Container struct {
	ID        ContainerID `json:"id"`
	Title     string      `json:"title"`
	Color     string      `json:"color,omitempty"`
	Collapsed bool        `json:"collapsed"`
	Tabs      []Tab       `json:"tabs"`
}

// TabContainerData is the persisted tree of containers and tabs.
// It is a value: every mutation goes through Clone first.
type TabContainerData struct {
	Containers []Container `json:"containers"`
}

// NewTabContainerData returns an empty tree.
func NewTabContainerData() TabContainerData {
	return TabContainerData{Containers: []Container{}}
}

// Clone returns a deep copy.
func (d TabContainerData) Clone() TabContainerData {
	out := TabContainerData{Containers: make([]Container, len(d.Containers))}
	for i, c := range d.Containers {
		c.Tabs = append([]Tab(nil), c.Tabs...)
		if c.Tabs == nil {
			c.Tabs = []Tab{}
		}
		out.Containers[i] = c
	}
	return out
}

// IsEmpty reports whether the tree has no containers.
func (d TabContainerData) IsEmpty() bool {
	return len(d.Containers) == 0
}

// TabCount returns the number of tabs across all containers.
func (d TabContainerData) TabCount() int {
	n := 0
	for _, c := range d.Containers {
		n += len(c.Tabs)
	}
	return n
}

// ContainerIndex returns the index of the container or -1.
func (d TabContainerData) ContainerIndex(id ContainerID) int {
	for i, c := range d.Containers {
		if c.ID == id {
			return i
		}
	}
	return -1
}

// FindTab returns the container and tab indexes holding id.
func (d TabContainerData) FindTab(id TabID) (containerIdx, tabIdx int, ok bool) {
	for ci, c := range d.Containers {
		for ti, t := range c.Tabs {
			if t.ID == id {
				return ci, ti, true
			}
		}
	}
	return -1, -1, false
}

// TabMatch is a search hit.
type TabMatch struct {
	ContainerID    ContainerID
	ContainerTitle string
	Tab            Tab
}

// Search returns tabs whose title or URL contains query, case-insensitively.
// An empty query matches nothing.
func (d TabContainerData) Search(query string) []TabMatch {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	var matches []TabMatch
	for _, c := range d.Containers {
		for _, t := range c.Tabs {
			if strings.Contains(strings.ToLower(t.Title), q) || strings.Contains(strings.ToLower(t.URL), q) {
				matches = append(matches, TabMatch{ContainerID: c.ID, ContainerTitle: c.Title, Tab: t})
			}
		}
	}
	return matches
}
