package store

import (
	"time"

	"github.com/bnema/tabmaster/internal/domain/entity"
)

type settingsAction struct{}

func (settingsAction) Slice() Slice { return SliceSettings }

type (
	// ReplaceSettings overwrites the slice wholesale.
	ReplaceSettings struct {
		settingsAction
		Settings entity.Settings
	}
	SetExtensionInstalledTime struct {
		settingsAction
		At time.Time
	}
	SetUserRatedAndReviewed struct {
		settingsAction
		Value bool
	}
	SetNeverAskAgainToRate struct {
		settingsAction
		Value bool
	}
	SetLastReviewRequestTime struct {
		settingsAction
		At time.Time
	}
)

func (ReplaceSettings) Name() string           { return "settings/replaceState" }
func (SetExtensionInstalledTime) Name() string { return "settings/setExtensionInstalledTime" }
func (SetUserRatedAndReviewed) Name() string   { return "settings/setIsUserRatedAndReviewed" }
func (SetNeverAskAgainToRate) Name() string    { return "settings/setIsNeverAskAgainToRate" }
func (SetLastReviewRequestTime) Name() string  { return "settings/setLastReviewRequestTime" }

func reduceSettings(s entity.Settings, action Action) entity.Settings {
	switch a := action.(type) {
	case ReplaceSettings:
		return a.Settings
	case SetExtensionInstalledTime:
		s.ExtensionInstalledTime = entity.FormatTimestamp(a.At)
	case SetUserRatedAndReviewed:
		s.IsUserRatedAndReviewed = a.Value
	case SetNeverAskAgainToRate:
		s.IsNeverAskAgainToRate = a.Value
	case SetLastReviewRequestTime:
		s.LastReviewRequestTime = entity.FormatTimestamp(a.At)
	}
	return s
}

type settingsCategoryAction struct{}

func (settingsCategoryAction) Slice() Slice { return SliceSettingsCategory }

// SelectCategory picks the settings page. Unknown categories are ignored.
type SelectCategory struct {
	settingsCategoryAction
	Category entity.SettingsCategory
}

func (SelectCategory) Name() string { return "settingsCategory/selectCategory" }

func reduceSettingsCategory(s entity.SettingsCategory, action Action) entity.SettingsCategory {
	if a, ok := action.(SelectCategory); ok && a.Category.Valid() {
		return a.Category
	}
	return s
}
