package entity

// StorageKey names a persisted data domain in the local store.
type StorageKey string

const (
	KeyTabContainerData StorageKey = "tabContainerData"
	KeySettingsData     StorageKey = "settingsData"
)

// AllStorageKeys lists every key the application writes.
func AllStorageKeys() []StorageKey {
	return []StorageKey{KeyTabContainerData, KeySettingsData}
}
