package usecase

import (
	"context"

	"github.com/bnema/tabmaster/internal/application/port"
	"github.com/bnema/tabmaster/internal/logging"
)

// DefaultErrorMessage is shown for errors without a message.
const DefaultErrorMessage = "An error occurred."

// NotifyUseCase displays user-facing messages through the toast.
type NotifyUseCase struct {
	notifier port.Notifier
}

// NewNotifyUseCase creates a new notification use case.
func NewNotifyUseCase(notifier port.Notifier) *NotifyUseCase {
	return &NotifyUseCase{notifier: notifier}
}

// Display shows text, or the error's message when err is non-nil.
func (uc *NotifyUseCase) Display(ctx context.Context, text string, err error) {
	if err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("displaying error toast")
		text = err.Error()
		if text == "" {
			text = DefaultErrorMessage
		}
	}
	uc.notifier.Show(ctx, text, 0)
}
