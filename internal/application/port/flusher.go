package port

import "context"

// Flusher writes pending tab data to local storage.
type Flusher interface {
	FlushIfDirty(ctx context.Context) error
}
