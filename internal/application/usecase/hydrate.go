package usecase

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/bnema/tabmaster/internal/application/port"
	"github.com/bnema/tabmaster/internal/domain/entity"
	"github.com/bnema/tabmaster/internal/logging"
	"github.com/bnema/tabmaster/internal/store"
)

// HydrateUseCase seeds the store from local storage at startup.
type HydrateUseCase struct {
	state   port.StateStore
	storage port.LocalStorage
}

// NewHydrateUseCase creates a new hydration use case.
func NewHydrateUseCase(state port.StateStore, storage port.LocalStorage) *HydrateUseCase {
	return &HydrateUseCase{state: state, storage: storage}
}

// HydrateOutput reports which keys were found.
type HydrateOutput struct {
	TabDataLoaded  bool
	SettingsLoaded bool
}

// Execute loads tab data and settings concurrently. Missing or unreadable
// values leave the defaults in place; the store is never marked dirty.
func (uc *HydrateUseCase) Execute(ctx context.Context) (*HydrateOutput, error) {
	log := logging.FromContext(ctx)

	var (
		tabData  entity.TabContainerData
		settings entity.Settings
		out      HydrateOutput
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		out.TabDataLoaded = uc.storage.Load(gctx, entity.KeyTabContainerData, &tabData)
		return gctx.Err()
	})
	g.Go(func() error {
		out.SettingsLoaded = uc.storage.Load(gctx, entity.KeySettingsData, &settings)
		return gctx.Err()
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if out.TabDataLoaded {
		// normalize through Clone so nil tab lists never reach the reducers
		data := tabData.Clone()
		if data.Containers == nil {
			data = entity.NewTabContainerData()
		}
		uc.state.Dispatch(store.ReplaceTabContainerData{Data: data})
		uc.state.Dispatch(store.SetPresentStartup{Data: data})
	}
	if out.SettingsLoaded {
		uc.state.Dispatch(store.ReplaceSettings{Settings: settings})
	}

	log.Info().
		Bool("tab_data", out.TabDataLoaded).
		Bool("settings", out.SettingsLoaded).
		Msg("state hydrated")

	return &out, nil
}
