package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/bnema/tabmaster/internal/application/port"
	"github.com/bnema/tabmaster/internal/domain/entity"
	"github.com/bnema/tabmaster/internal/domain/url"
	"github.com/bnema/tabmaster/internal/logging"
	"github.com/bnema/tabmaster/internal/store"
)

// TransferUseCase exports and imports the tab tree as JSON.
type TransferUseCase struct {
	state       port.StateStore
	idGenerator IDGenerator
}

// NewTransferUseCase creates a new export/import use case.
func NewTransferUseCase(state port.StateStore, idGenerator IDGenerator) *TransferUseCase {
	return &TransferUseCase{state: state, idGenerator: idGenerator}
}

// Export writes the current tab tree to w.
func (uc *TransferUseCase) Export(ctx context.Context, w io.Writer) error {
	data := uc.state.State().TabContainer
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("failed to encode tab data: %w", err)
	}
	logging.FromContext(ctx).Debug().
		Int("containers", len(data.Containers)).
		Int("tabs", data.TabCount()).
		Msg("tab data exported")
	return nil
}

// Import replaces the tab tree with the JSON read from r. The replacement is
// undoable and marks the store dirty. Missing IDs are generated; tabs
// without a URL are dropped.
func (uc *TransferUseCase) Import(ctx context.Context, r io.Reader) (*entity.TabContainerData, error) {
	var data entity.TabContainerData
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode tab data: %w", err)
	}

	data = uc.normalize(data)
	uc.state.Dispatch(store.RestoreTabContainerData{Data: data})
	uc.state.Dispatch(store.RecordHistory{Data: data})

	logging.FromContext(ctx).Info().
		Int("containers", len(data.Containers)).
		Int("tabs", data.TabCount()).
		Msg("tab data imported")
	return &data, nil
}

func (uc *TransferUseCase) normalize(in entity.TabContainerData) entity.TabContainerData {
	out := entity.TabContainerData{Containers: make([]entity.Container, 0, len(in.Containers))}
	for _, c := range in.Containers {
		if c.ID == "" {
			c.ID = entity.ContainerID(uc.idGenerator())
		}
		tabs := make([]entity.Tab, 0, len(c.Tabs))
		for _, t := range c.Tabs {
			t.URL = url.Normalize(t.URL)
			if t.URL == "" {
				continue
			}
			if t.ID == "" {
				t.ID = entity.TabID(uc.idGenerator())
			}
			tabs = append(tabs, t)
		}
		c.Tabs = tabs
		out.Containers = append(out.Containers, c)
	}
	return out
}
