package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/tabmaster/internal/application/port"
	"github.com/bnema/tabmaster/internal/domain/entity"
	"github.com/bnema/tabmaster/internal/logging"
)

// CopyURLUseCase copies a saved tab's URL to the system clipboard.
type CopyURLUseCase struct {
	state     port.StateStore
	clipboard port.Clipboard
}

// NewCopyURLUseCase creates a new CopyURLUseCase.
func NewCopyURLUseCase(state port.StateStore, clipboard port.Clipboard) *CopyURLUseCase {
	return &CopyURLUseCase{state: state, clipboard: clipboard}
}

// Copy writes the URL of tab id to the clipboard and returns it.
// The caller shows the toast.
func (uc *CopyURLUseCase) Copy(ctx context.Context, id entity.TabID) (string, error) {
	data := uc.state.State().TabContainer
	ci, ti, ok := data.FindTab(id)
	if !ok {
		return "", fmt.Errorf("copy tab %s: %w", id, entity.ErrTabNotFound)
	}
	url := data.Containers[ci].Tabs[ti].URL

	if err := uc.clipboard.WriteText(ctx, url); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Str("tab_id", string(id)).Msg("copy url failed")
		return "", err
	}
	return url, nil
}
