package store

import "github.com/bnema/tabmaster/internal/domain/entity"

type globalAction struct{}

func (globalAction) Slice() Slice { return SliceGlobal }

type (
	OpenRateAndReviewModal  struct{ globalAction }
	CloseRateAndReviewModal struct{ globalAction }
	OpenSearchPanel         struct{ globalAction }
	CloseSearchPanel        struct{ globalAction }
	OpenToast               struct{ globalAction }
	CloseToast              struct{ globalAction }
	OpenSettingsPage        struct{ globalAction }
	CloseSettingsPage       struct{ globalAction }
	CloseConflictModal      struct{ globalAction }

	// SetDirty marks in-memory data as diverged from storage and resets the
	// sync status to idle.
	SetDirty struct{ globalAction }
	// SetNotDirty is dispatched after a successful flush.
	SetNotDirty struct{ globalAction }

	SetSearchInputText struct {
		globalAction
		Text string
	}
	SetToastText struct {
		globalAction
		Text string
	}
	SetSyncStatus struct {
		globalAction
		Status entity.SyncStatus
	}
	// ReplaceGlobalState overwrites the slice wholesale.
	ReplaceGlobalState struct {
		globalAction
		State entity.GlobalState
	}
)

func (OpenRateAndReviewModal) Name() string  { return "global/openRateAndReviewModal" }
func (CloseRateAndReviewModal) Name() string { return "global/closeRateAndReviewModal" }
func (OpenSearchPanel) Name() string         { return "global/openSearchPanel" }
func (CloseSearchPanel) Name() string        { return "global/closeSearchPanel" }
func (OpenToast) Name() string               { return "global/openToast" }
func (CloseToast) Name() string              { return "global/closeToast" }
func (OpenSettingsPage) Name() string        { return "global/openSettingsPage" }
func (CloseSettingsPage) Name() string       { return "global/closeSettingsPage" }
func (CloseConflictModal) Name() string      { return "global/closeConflictModal" }
func (SetDirty) Name() string                { return "global/setIsDirty" }
func (SetNotDirty) Name() string             { return "global/setIsNotDirty" }
func (SetSearchInputText) Name() string      { return "global/setSearchInputText" }
func (SetToastText) Name() string            { return "global/setToastText" }
func (SetSyncStatus) Name() string           { return "global/setSyncStatus" }
func (ReplaceGlobalState) Name() string      { return "global/replaceState" }

func reduceGlobal(s entity.GlobalState, action Action) entity.GlobalState {
	switch a := action.(type) {
	case OpenRateAndReviewModal:
		s.IsRateAndReviewModalOpen = true
	case CloseRateAndReviewModal:
		s.IsRateAndReviewModalOpen = false
	case OpenSearchPanel:
		s.IsSearchPanel = true
	case CloseSearchPanel:
		s.IsSearchPanel = false
	case SetSearchInputText:
		s.SearchInputText = a.Text
	case OpenToast:
		s.IsToastOpen = true
	case CloseToast:
		s.IsToastOpen = false
	case SetToastText:
		s.ToastText = a.Text
	case OpenSettingsPage:
		s.IsSettingsPage = true
	case CloseSettingsPage:
		s.IsSettingsPage = false
	case CloseConflictModal:
		s.IsConflictModalOpen = false
	case SetDirty:
		s.IsDirty = true
		s.SyncStatus = entity.SyncStatusIdle
	case SetNotDirty:
		s.IsDirty = false
	case SetSyncStatus:
		s.SyncStatus = a.Status
	case ReplaceGlobalState:
		return a.State
	}
	return s
}
