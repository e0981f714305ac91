package cmd

import (
	"fmt"
	"strings"

	"github.com/bnema/tabmaster/internal/domain/entity"
)

// resolveContainer matches ref against container IDs (exact or unique
// prefix) and then titles (case-insensitive).
func resolveContainer(data entity.TabContainerData, ref string) (entity.ContainerID, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", fmt.Errorf("container reference is empty")
	}

	var byPrefix, byTitle []entity.ContainerID
	for _, c := range data.Containers {
		id := string(c.ID)
		if id == ref {
			return c.ID, nil
		}
		if strings.HasPrefix(id, ref) {
			byPrefix = append(byPrefix, c.ID)
		}
		if strings.EqualFold(c.Title, ref) {
			byTitle = append(byTitle, c.ID)
		}
	}

	switch {
	case len(byPrefix) == 1:
		return byPrefix[0], nil
	case len(byPrefix) > 1:
		return "", fmt.Errorf("container %q is ambiguous (%d matches)", ref, len(byPrefix))
	case len(byTitle) == 1:
		return byTitle[0], nil
	case len(byTitle) > 1:
		return "", fmt.Errorf("container title %q is ambiguous, use its id", ref)
	}
	return "", fmt.Errorf("container %q: %w", ref, entity.ErrContainerNotFound)
}

// resolveTab matches ref against tab IDs (exact or unique prefix).
func resolveTab(data entity.TabContainerData, ref string) (entity.TabID, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", fmt.Errorf("tab reference is empty")
	}

	var matches []entity.TabID
	for _, c := range data.Containers {
		for _, t := range c.Tabs {
			id := string(t.ID)
			if id == ref {
				return t.ID, nil
			}
			if strings.HasPrefix(id, ref) {
				matches = append(matches, t.ID)
			}
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("tab %q: %w", ref, entity.ErrTabNotFound)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("tab %q is ambiguous (%d matches)", ref, len(matches))
	}
}
