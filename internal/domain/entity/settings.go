package entity

import (
	"encoding/json"
	"strings"
	"time"
)

// TimestampLayout matches the millisecond ISO 8601 form stored by earlier
// releases, e.g. 2024-05-01T09:30:00.000Z.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Settings is the persisted user settings record.
// Timestamps are stored as strings so malformed values survive a round trip
// and are treated as absent rather than failing the whole load.
type Settings struct {
	ExtensionInstalledTime string `json:"extensionInstalledTime"`
	IsUserRatedAndReviewed bool   `json:"isUserRatedAndReviewed"`
	IsNeverAskAgainToRate  bool   `json:"isNeverAskAgainToRate"`
	LastReviewRequestTime  string `json:"lastReviewRequestTime"`
}

// UnmarshalJSON decodes a settings record. A timestamp that is not a JSON
// string decodes as "" so the rest of the record is kept.
func (s *Settings) UnmarshalJSON(data []byte) error {
	type plain Settings
	var raw struct {
		plain
		ExtensionInstalledTime json.RawMessage `json:"extensionInstalledTime"`
		LastReviewRequestTime  json.RawMessage `json:"lastReviewRequestTime"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*s = Settings(raw.plain)
	s.ExtensionInstalledTime = rawTimestamp(raw.ExtensionInstalledTime)
	s.LastReviewRequestTime = rawTimestamp(raw.LastReviewRequestTime)
	return nil
}

func rawTimestamp(raw json.RawMessage) string {
	var v string
	if len(raw) == 0 || json.Unmarshal(raw, &v) != nil {
		return ""
	}
	return v
}

// FormatTimestamp renders t in TimestampLayout, in UTC.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// ParseTimestamp parses an ISO 8601 timestamp. Empty or malformed input
// returns false.
func ParseTimestamp(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// InstalledAt returns the parsed install time.
func (s Settings) InstalledAt() (time.Time, bool) {
	return ParseTimestamp(s.ExtensionInstalledTime)
}

// LastReviewRequestAt returns the parsed time of the last review prompt.
func (s Settings) LastReviewRequestAt() (time.Time, bool) {
	return ParseTimestamp(s.LastReviewRequestTime)
}
