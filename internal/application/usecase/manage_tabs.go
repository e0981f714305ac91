package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/bnema/tabmaster/internal/application/port"
	"github.com/bnema/tabmaster/internal/domain/entity"
	"github.com/bnema/tabmaster/internal/domain/url"
	"github.com/bnema/tabmaster/internal/domain/validation"
	"github.com/bnema/tabmaster/internal/logging"
	"github.com/bnema/tabmaster/internal/store"
)

// ManageTabsUseCase edits the saved tab tree. Every successful edit is
// recorded in the undo history.
type ManageTabsUseCase struct {
	state       port.StateStore
	idGenerator IDGenerator
}

// NewManageTabsUseCase creates a new tab management use case.
func NewManageTabsUseCase(state port.StateStore, idGenerator IDGenerator) *ManageTabsUseCase {
	return &ManageTabsUseCase{
		state:       state,
		idGenerator: idGenerator,
	}
}

// AddContainerInput contains parameters for creating a container.
type AddContainerInput struct {
	Title string
	// Color is empty or #RRGGBB.
	Color string
}

// AddContainer appends a new empty container.
func (uc *ManageTabsUseCase) AddContainer(ctx context.Context, input AddContainerInput) (*entity.Container, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		title = "Untitled"
	}
	if input.Color != "" && !validation.IsHexColor(input.Color) {
		return nil, fmt.Errorf("container color %q: %w", input.Color, entity.ErrInvalidColor)
	}
	container := entity.Container{
		ID:    entity.ContainerID(uc.idGenerator()),
		Title: title,
		Color: input.Color,
		Tabs:  []entity.Tab{},
	}

	uc.apply(ctx, store.AddContainer{Container: container})

	logging.FromContext(ctx).Info().
		Str("container_id", string(container.ID)).
		Str("title", container.Title).
		Msg("container added")
	return &container, nil
}

// RenameContainer changes a container title.
func (uc *ManageTabsUseCase) RenameContainer(ctx context.Context, id entity.ContainerID, title string) error {
	if err := uc.requireContainer(id); err != nil {
		return err
	}
	title = strings.TrimSpace(title)
	data := uc.state.State().TabContainer
	if data.Containers[data.ContainerIndex(id)].Title == title {
		return nil
	}
	uc.apply(ctx, store.RenameContainer{ID: id, Title: title})
	return nil
}

// RemoveContainer deletes a container and its tabs.
func (uc *ManageTabsUseCase) RemoveContainer(ctx context.Context, id entity.ContainerID) error {
	if err := uc.requireContainer(id); err != nil {
		return err
	}
	uc.apply(ctx, store.RemoveContainer{ID: id})
	logging.FromContext(ctx).Info().Str("container_id", string(id)).Msg("container removed")
	return nil
}

// ToggleCollapsed flips a container's collapsed flag.
func (uc *ManageTabsUseCase) ToggleCollapsed(ctx context.Context, id entity.ContainerID) error {
	if err := uc.requireContainer(id); err != nil {
		return err
	}
	uc.apply(ctx, store.ToggleContainerCollapsed{ID: id})
	return nil
}

// AddTabInput contains parameters for saving a tab.
type AddTabInput struct {
	ContainerID entity.ContainerID
	URL         string
	Title       string
	FavIconURL  string
	// Index is the insert position; negative appends.
	Index int
}

// AddTab saves a tab into a container.
func (uc *ManageTabsUseCase) AddTab(ctx context.Context, input AddTabInput) (*entity.Tab, error) {
	target := url.Normalize(input.URL)
	if target == "" {
		return nil, entity.ErrEmptyURL
	}
	if err := uc.requireContainer(input.ContainerID); err != nil {
		return nil, err
	}

	tab := entity.Tab{
		ID:         entity.TabID(uc.idGenerator()),
		Title:      strings.TrimSpace(input.Title),
		URL:        target,
		FavIconURL: input.FavIconURL,
	}
	uc.apply(ctx, store.AddTab{ContainerID: input.ContainerID, Tab: tab, Index: input.Index})

	logging.FromContext(ctx).Debug().
		Str("tab_id", string(tab.ID)).
		Str("container_id", string(input.ContainerID)).
		Str("url", tab.URL).
		Msg("tab added")
	return &tab, nil
}

// RemoveTab deletes a tab.
func (uc *ManageTabsUseCase) RemoveTab(ctx context.Context, id entity.TabID) error {
	if _, _, ok := uc.state.State().TabContainer.FindTab(id); !ok {
		return fmt.Errorf("remove tab %s: %w", id, entity.ErrTabNotFound)
	}
	uc.apply(ctx, store.RemoveTab{ID: id})
	return nil
}

// MoveTab moves a tab to another position, possibly in another container.
func (uc *ManageTabsUseCase) MoveTab(ctx context.Context, id entity.TabID, to entity.ContainerID, index int) error {
	if _, _, ok := uc.state.State().TabContainer.FindTab(id); !ok {
		return fmt.Errorf("move tab %s: %w", id, entity.ErrTabNotFound)
	}
	if err := uc.requireContainer(to); err != nil {
		return err
	}
	uc.apply(ctx, store.MoveTab{ID: id, ToContainer: to, Index: index})
	return nil
}

func (uc *ManageTabsUseCase) requireContainer(id entity.ContainerID) error {
	if uc.state.State().TabContainer.ContainerIndex(id) < 0 {
		return fmt.Errorf("container %s: %w", id, entity.ErrContainerNotFound)
	}
	return nil
}

// apply dispatches the edit and records the resulting tree as the new
// history present.
func (uc *ManageTabsUseCase) apply(ctx context.Context, action store.Action) {
	uc.state.Dispatch(action)
	uc.state.Dispatch(store.RecordHistory{Data: uc.state.State().TabContainer})
	logging.FromContext(ctx).Trace().Str("action", action.Name()).Msg("tab edit recorded")
}
