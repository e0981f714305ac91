package entity

// SyncStatus reflects the outcome of the last flush attempt.
type SyncStatus string

const (
	SyncStatusIdle    SyncStatus = "idle"
	SyncStatusLoading SyncStatus = "loading"
	SyncStatusSuccess SyncStatus = "success"
	SyncStatusError   SyncStatus = "error"
)

// GlobalState holds process-wide UI flags.
//
// IsSignedIn, UserID, HasSyncedBefore and the conflict fields are kept for
// shape compatibility with older persisted snapshots; nothing writes them.
type GlobalState struct {
	HasSyncedBefore          bool              `json:"hasSyncedBefore"`
	IsSignedIn               bool              `json:"isSignedIn"`
	UserID                   *string           `json:"userId"`
	IsDirty                  bool              `json:"isDirty"`
	IsSettingsPage           bool              `json:"isSettingsPage"`
	IsSearchPanel            bool              `json:"isSearchPanel"`
	SearchInputText          string            `json:"searchInputText"`
	SyncStatus               SyncStatus        `json:"syncStatus"`
	IsToastOpen              bool              `json:"isToastOpen"`
	ToastText                string            `json:"toastText"`
	IsConflictModalOpen      bool              `json:"isConflictModalOpen"`
	IsRateAndReviewModalOpen bool              `json:"isRateAndReviewModalOpen"`
	TabDataLocal             *TabContainerData `json:"tabDataLocal"`
	TabDataCloud             *TabContainerData `json:"tabDataCloud"`
}

// NewGlobalState returns the initial global state.
func NewGlobalState() GlobalState {
	return GlobalState{SyncStatus: SyncStatusIdle}
}

// SettingsCategory selects the page shown by the settings view.
type SettingsCategory string

const (
	SettingsCategoryGeneral    SettingsCategory = "general"
	SettingsCategoryAppearance SettingsCategory = "appearance"
	SettingsCategoryData       SettingsCategory = "data"
	SettingsCategoryAbout      SettingsCategory = "about"
)

// Valid reports whether c is a known category.
func (c SettingsCategory) Valid() bool {
	switch c {
	case SettingsCategoryGeneral, SettingsCategoryAppearance, SettingsCategoryData, SettingsCategoryAbout:
		return true
	}
	return false
}
