// Package clipboard writes to the system clipboard through atotto/clipboard,
// which shells out to wl-copy, xclip or xsel on Linux.
package clipboard

import (
	"context"
	"errors"
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/bnema/tabmaster/internal/application/port"
	"github.com/bnema/tabmaster/internal/logging"
)

// ErrUnavailable is returned when no clipboard tool is installed.
var ErrUnavailable = errors.New("no clipboard tool available (install wl-clipboard or xclip)")

// Adapter implements port.Clipboard.
type Adapter struct {
	unsupported bool
	write       func(string) error
}

var _ port.Clipboard = (*Adapter)(nil)

// New creates a clipboard adapter for the current session.
func New() *Adapter {
	return &Adapter{unsupported: clipboard.Unsupported, write: clipboard.WriteAll}
}

// WriteText copies text to the clipboard.
func (a *Adapter) WriteText(ctx context.Context, text string) error {
	if a.unsupported {
		return ErrUnavailable
	}
	if err := a.write(text); err != nil {
		return fmt.Errorf("clipboard write: %w", err)
	}
	logging.FromContext(ctx).Debug().Int("bytes", len(text)).Msg("copied to clipboard")
	return nil
}
