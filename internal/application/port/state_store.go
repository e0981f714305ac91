package port

import "github.com/bnema/tabmaster/internal/store"

// StateStore is the application state container as seen by use cases.
type StateStore interface {
	Dispatch(action store.Action)
	State() store.State
	Subscribe(fn store.Listener) (unsubscribe func())
}
