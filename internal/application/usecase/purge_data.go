package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/tabmaster/internal/application/port"
	"github.com/bnema/tabmaster/internal/domain/entity"
	"github.com/bnema/tabmaster/internal/logging"
	"github.com/bnema/tabmaster/internal/store"
)

// PurgeDataUseCase deletes every persisted key and resets the store.
type PurgeDataUseCase struct {
	state   port.StateStore
	storage port.LocalStorage
}

// NewPurgeDataUseCase creates a new PurgeDataUseCase.
func NewPurgeDataUseCase(state port.StateStore, storage port.LocalStorage) *PurgeDataUseCase {
	return &PurgeDataUseCase{state: state, storage: storage}
}

// Execute removes all stored keys. The store is left clean so nothing is
// written back on shutdown.
func (uc *PurgeDataUseCase) Execute(ctx context.Context) error {
	log := logging.FromContext(ctx)

	for _, key := range entity.AllStorageKeys() {
		if err := uc.storage.Delete(ctx, key); err != nil {
			return fmt.Errorf("failed to purge %s: %w", key, err)
		}
		log.Debug().Str("key", string(key)).Msg("purged storage key")
	}

	empty := entity.NewTabContainerData()
	uc.state.Dispatch(store.ReplaceTabContainerData{Data: empty})
	uc.state.Dispatch(store.SetPresentStartup{Data: empty})
	uc.state.Dispatch(store.ReplaceSettings{Settings: entity.Settings{}})
	uc.state.Dispatch(store.SetNotDirty{})
	uc.state.Dispatch(store.SetSyncStatus{Status: entity.SyncStatusIdle})

	log.Info().Msg("local data purged")
	return nil
}
