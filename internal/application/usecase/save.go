package usecase

import (
	"context"

	"github.com/bnema/tabmaster/internal/application/port"
)

const (
	savedMessage      = "Saved"
	saveFailedMessage = "Failed to save"
)

// SaveUseCase flushes pending tab data and reports the outcome in a toast.
type SaveUseCase struct {
	flusher  port.Flusher
	notifier port.Notifier
}

// NewSaveUseCase creates a new save use case.
func NewSaveUseCase(flusher port.Flusher, notifier port.Notifier) *SaveUseCase {
	return &SaveUseCase{flusher: flusher, notifier: notifier}
}

// Execute flushes if dirty. A failure keeps the data dirty for the next try.
func (uc *SaveUseCase) Execute(ctx context.Context) error {
	if err := uc.flusher.FlushIfDirty(ctx); err != nil {
		uc.notifier.Show(ctx, saveFailedMessage, 0)
		return err
	}
	uc.notifier.Show(ctx, savedMessage, 0)
	return nil
}
