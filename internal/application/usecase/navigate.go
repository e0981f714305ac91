package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/tabmaster/internal/application/port"
	"github.com/bnema/tabmaster/internal/domain/entity"
	"github.com/bnema/tabmaster/internal/logging"
	"github.com/bnema/tabmaster/internal/store"
)

// NavigationUseCase switches between the main, settings and search views.
type NavigationUseCase struct {
	state port.StateStore
}

// NewNavigationUseCase creates a new navigation use case.
func NewNavigationUseCase(state port.StateStore) *NavigationUseCase {
	return &NavigationUseCase{state: state}
}

// OpenSettingsPage shows the settings page on category.
func (uc *NavigationUseCase) OpenSettingsPage(ctx context.Context, category entity.SettingsCategory) error {
	if !category.Valid() {
		return fmt.Errorf("unknown settings category %q", category)
	}
	uc.state.Dispatch(store.SelectCategory{Category: category})
	uc.state.Dispatch(store.OpenSettingsPage{})
	logging.FromContext(ctx).Debug().Str("category", string(category)).Msg("settings page opened")
	return nil
}

// CloseSettingsPage returns to the main view.
func (uc *NavigationUseCase) CloseSettingsPage(_ context.Context) {
	uc.state.Dispatch(store.CloseSettingsPage{})
}

// OpenSearch shows the search panel.
func (uc *NavigationUseCase) OpenSearch(_ context.Context) {
	uc.state.Dispatch(store.OpenSearchPanel{})
}

// CloseSearch hides the search panel and clears its input.
func (uc *NavigationUseCase) CloseSearch(_ context.Context) {
	uc.state.Dispatch(store.CloseSearchPanel{})
	uc.state.Dispatch(store.SetSearchInputText{Text: ""})
}

// SetSearch stores the search input and returns the matching tabs.
func (uc *NavigationUseCase) SetSearch(_ context.Context, text string) []entity.TabMatch {
	uc.state.Dispatch(store.SetSearchInputText{Text: text})
	return uc.state.State().TabContainer.Search(text)
}

// Search returns the tabs matching text without touching the state.
func (uc *NavigationUseCase) Search(_ context.Context, text string) []entity.TabMatch {
	return uc.state.State().TabContainer.Search(text)
}
