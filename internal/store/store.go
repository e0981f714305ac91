// Package store holds the application state tree.
//
// State is partitioned into slices. Each Action targets exactly one slice and
// is applied by that slice's pure reducer. Dispatch is synchronous; listeners
// run after the state lock is released and receive a copy of the new state.
package store

import (
	"sync"

	"github.com/bnema/tabmaster/internal/domain/entity"
)

// DefaultMaxHistory bounds the undo stack.
const DefaultMaxHistory = 50

// Slice names a partition of the state tree.
type Slice string

const (
	SliceGlobal           Slice = "global"
	SliceSettingsCategory Slice = "settingsCategory"
	SliceSettings         Slice = "settings"
	SliceTabContainer     Slice = "tabContainer"
	SliceUndoRedo         Slice = "undoRedo"
)

// Action is a named transition applied to one slice.
type Action interface {
	Slice() Slice
	Name() string
}

// dirtying is implemented by actions that change persisted data. When such an
// action changes its slice, Dispatch follows it with SetDirty.
type dirtying interface {
	marksDirty()
}

// State is a snapshot of the whole tree.
type State struct {
	Global           entity.GlobalState
	SettingsCategory entity.SettingsCategory
	Settings         entity.Settings
	TabContainer     entity.TabContainerData
	UndoRedo         entity.UndoRedoState
}

// NewState returns the initial state tree.
func NewState() State {
	return State{
		Global:           entity.NewGlobalState(),
		SettingsCategory: entity.SettingsCategoryGeneral,
		TabContainer:     entity.NewTabContainerData(),
		UndoRedo:         entity.NewUndoRedoState(),
	}
}

// Clone returns a deep copy.
func (s State) Clone() State {
	out := s
	out.TabContainer = s.TabContainer.Clone()
	out.UndoRedo = cloneHistory(s.UndoRedo)
	if s.Global.UserID != nil {
		id := *s.Global.UserID
		out.Global.UserID = &id
	}
	if s.Global.TabDataLocal != nil {
		d := s.Global.TabDataLocal.Clone()
		out.Global.TabDataLocal = &d
	}
	if s.Global.TabDataCloud != nil {
		d := s.Global.TabDataCloud.Clone()
		out.Global.TabDataCloud = &d
	}
	return out
}

// Listener observes dispatched actions.
type Listener func(state State, action Action)

type subscription struct {
	id int
	fn Listener
}

// Store is the single mutable state container.
type Store struct {
	mu         sync.Mutex
	state      State
	maxHistory int

	subMu  sync.Mutex
	subs   []subscription
	nextID int
}

// Option configures a Store.
type Option func(*Store)

// WithMaxHistory bounds the number of undo steps kept.
func WithMaxHistory(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.maxHistory = n
		}
	}
}

// WithState seeds the store with an initial state.
func WithState(state State) Option {
	return func(s *Store) {
		s.state = state.Clone()
	}
}

// New creates a store in its initial state.
func New(opts ...Option) *Store {
	s := &Store{
		state:      NewState(),
		maxHistory: DefaultMaxHistory,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns a copy of the current state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Dispatch applies action and notifies listeners.
func (s *Store) Dispatch(action Action) {
	if action == nil {
		return
	}

	s.mu.Lock()
	changed := s.apply(action)
	if _, ok := action.(dirtying); ok && changed {
		s.apply(SetDirty{})
	}
	snapshot := s.state.Clone()
	s.mu.Unlock()

	s.notify(snapshot, action)
}

// apply runs the reducer for the action's slice. Must hold s.mu.
func (s *Store) apply(action Action) bool {
	switch action.Slice() {
	case SliceGlobal:
		s.state.Global = reduceGlobal(s.state.Global, action)
		return true
	case SliceSettingsCategory:
		s.state.SettingsCategory = reduceSettingsCategory(s.state.SettingsCategory, action)
		return true
	case SliceSettings:
		s.state.Settings = reduceSettings(s.state.Settings, action)
		return true
	case SliceTabContainer:
		next, changed := reduceTabContainer(s.state.TabContainer, action)
		s.state.TabContainer = next
		return changed
	case SliceUndoRedo:
		s.state.UndoRedo = reduceUndoRedo(s.state.UndoRedo, action, s.maxHistory)
		return true
	}
	return false
}

// Subscribe registers fn and returns a function that removes it.
func (s *Store) Subscribe(fn Listener) (unsubscribe func()) {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	s.nextID++
	id := s.nextID
	s.subs = append(s.subs, subscription{id: id, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() {
			s.subMu.Lock()
			defer s.subMu.Unlock()
			for i, sub := range s.subs {
				if sub.id == id {
					s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
					return
				}
			}
		})
	}
}

func (s *Store) notify(state State, action Action) {
	s.subMu.Lock()
	subs := make([]subscription, len(s.subs))
	copy(subs, s.subs)
	s.subMu.Unlock()

	for _, sub := range subs {
		sub.fn(state, action)
	}
}
