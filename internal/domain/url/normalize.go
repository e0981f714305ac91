// Package url provides URL helpers for saved tabs.
package url

import (
	"net/url"
	"strings"
)

// schemes a saved tab may carry verbatim.
var knownSchemes = []string{"http://", "https://", "file://", "about:", "chrome://", "moz-extension://", "chrome-extension://"}

// Normalize trims input and adds a scheme to bare hosts:
// http:// for localhost, https:// for anything that looks like a domain.
// Input with a known scheme, or that does not look like a URL, is returned trimmed.
func Normalize(input string) string {
	input = strings.TrimSpace(input)
	if input == "" {
		return ""
	}
	if hasKnownScheme(input) {
		return input
	}

	if isLocalhost(input) {
		return "http://" + input
	}
	if LooksLikeURL(input) {
		return "https://" + input
	}
	return input
}

// LooksLikeURL checks if the input appears to be a URL rather than free text.
// Returns true for strings like "github.com" or "go.dev/doc", and for any
// input with a known scheme.
func LooksLikeURL(input string) bool {
	input = strings.TrimSpace(input)
	if input == "" {
		return false
	}
	if hasKnownScheme(input) || isLocalhost(input) {
		return true
	}

	// Contains a dot and no spaces = likely a URL
	return strings.Contains(input, ".") && !strings.Contains(input, " ")
}

// ExtractDomain extracts the normalized domain (host) from a URL string.
// Normalizes by stripping "www." prefix so youtube.com and www.youtube.com
// resolve to the same value.
func ExtractDomain(rawURL string) string {
	if rawURL == "" {
		return ""
	}
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		return ""
	}
	return strings.TrimPrefix(parsed.Host, "www.")
}

func hasKnownScheme(input string) bool {
	lower := strings.ToLower(input)
	for _, s := range knownSchemes {
		if strings.HasPrefix(lower, s) {
			return true
		}
	}
	return false
}

func isLocalhost(input string) bool {
	host := input
	if i := strings.IndexAny(host, ":/"); i >= 0 {
		host = host[:i]
	}
	return host == "localhost"
}
