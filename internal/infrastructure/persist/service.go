// Package persist flushes dirty tab data to local storage.
package persist

import (
	"context"
	"fmt"
	"reflect"
	"sync"
	"time"

	"github.com/bep/debounce"

	"github.com/bnema/tabmaster/internal/application/port"
	"github.com/bnema/tabmaster/internal/domain/entity"
	"github.com/bnema/tabmaster/internal/logging"
	"github.com/bnema/tabmaster/internal/store"
)

// DefaultDebounce is the auto-flush delay after the last tab change.
const DefaultDebounce = time.Second

// Options configures a Service.
type Options struct {
	// AutoFlush flushes on a debounce after tab changes. When false, callers
	// trigger FlushIfDirty themselves.
	AutoFlush bool
	Debounce  time.Duration
}

// Service writes the tab slice to storage when the store is dirty.
type Service struct {
	state   port.StateStore
	storage port.LocalStorage
	opts    Options

	flushMu sync.Mutex

	mu          sync.Mutex
	debounced   func(f func())
	unsubscribe func()
	stopped     bool
}

// NewService creates a new flush service.
func NewService(state port.StateStore, storage port.LocalStorage, opts Options) *Service {
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}
	return &Service{
		state:   state,
		storage: storage,
		opts:    opts,
	}
}

// Start subscribes to tab changes when auto-flush is enabled.
func (s *Service) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.opts.AutoFlush || s.unsubscribe != nil {
		return
	}

	s.stopped = false
	s.debounced = debounce.New(s.opts.Debounce)
	s.unsubscribe = s.state.Subscribe(func(st store.State, action store.Action) {
		if action.Slice() != store.SliceTabContainer || !st.Global.IsDirty {
			return
		}
		s.schedule(ctx)
	})

	logging.FromContext(ctx).Debug().Dur("debounce", s.opts.Debounce).Msg("auto flush started")
}

func (s *Service) schedule(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped || s.debounced == nil {
		return
	}
	s.debounced(func() {
		s.mu.Lock()
		stopped := s.stopped
		s.mu.Unlock()
		if stopped {
			return
		}
		// failure is logged and the dirty flag kept for the next trigger
		_ = s.FlushIfDirty(ctx)
	})
}

// Stop cancels the pending auto flush and flushes one last time.
func (s *Service) Stop(ctx context.Context) error {
	s.mu.Lock()
	s.stopped = true
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
	s.mu.Unlock()

	return s.FlushIfDirty(ctx)
}

// FlushIfDirty writes the tab slice under "tabContainerData" and clears the
// dirty flag. It is a no-op when the store is clean. A failed write is logged,
// sets the sync status to error and leaves the store dirty for a later retry.
func (s *Service) FlushIfDirty(ctx context.Context) error {
	s.flushMu.Lock()
	defer s.flushMu.Unlock()

	log := logging.FromContext(ctx)

	snapshot := s.state.State()
	if !snapshot.Global.IsDirty {
		return nil
	}

	s.state.Dispatch(store.SetSyncStatus{Status: entity.SyncStatusLoading})

	data := snapshot.TabContainer
	if err := s.storage.Save(ctx, entity.KeyTabContainerData, data); err != nil {
		log.Error().Err(err).Msg("failed to save tab data to local storage")
		s.state.Dispatch(store.SetSyncStatus{Status: entity.SyncStatusError})
		return fmt.Errorf("flush tab data: %w", err)
	}

	// A change may have landed while writing; it stays dirty for the next flush.
	if current := s.state.State(); !reflect.DeepEqual(current.TabContainer, data) {
		s.state.Dispatch(store.SetSyncStatus{Status: entity.SyncStatusIdle})
		log.Debug().Msg("tab data changed during flush, keeping dirty flag")
		return nil
	}

	s.state.Dispatch(store.SetNotDirty{})
	s.state.Dispatch(store.SetSyncStatus{Status: entity.SyncStatusSuccess})

	log.Debug().
		Int("containers", len(data.Containers)).
		Int("tabs", data.TabCount()).
		Msg("tab data flushed")

	return nil
}
