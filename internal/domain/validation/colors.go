// Package validation holds field checks shared by config and use cases.
package validation

import "regexp"

var hexColorRE = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// IsHexColor reports whether value has the #RRGGBB form.
func IsHexColor(value string) bool {
	return hexColorRE.MatchString(value)
}

// ValidatePaletteHex returns one message per palette field that is not a hex color.
func ValidatePaletteHex(
	prefix string,
	background string,
	surface string,
	surfaceVariant string,
	text string,
	muted string,
	accent string,
	border string,
) []string {
	var errs []string

	fields := []struct {
		name  string
		value string
	}{
		{"background", background},
		{"surface", surface},
		{"surface_variant", surfaceVariant},
		{"text", text},
		{"muted", muted},
		{"accent", accent},
		{"border", border},
	}
	for _, f := range fields {
		if !IsHexColor(f.value) {
			errs = append(errs, prefix+"."+f.name+" must be a hex color like #RRGGBB")
		}
	}

	return errs
}
