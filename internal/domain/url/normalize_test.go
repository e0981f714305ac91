package url

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty string", input: "", want: ""},
		{name: "whitespace only", input: "   ", want: ""},
		{name: "http scheme unchanged", input: "http://example.com", want: "http://example.com"},
		{name: "https scheme unchanged", input: "https://example.com", want: "https://example.com"},
		{name: "scheme is case insensitive", input: "HTTPS://Example.com", want: "HTTPS://Example.com"},
		{name: "file scheme unchanged", input: "file:///path/to/file.html", want: "file:///path/to/file.html"},
		{name: "about scheme unchanged", input: "about:blank", want: "about:blank"},
		{name: "extension page unchanged", input: "moz-extension://abc/page.html", want: "moz-extension://abc/page.html"},
		{name: "domain gets https", input: "example.com", want: "https://example.com"},
		{name: "surrounding spaces trimmed", input: "  example.com  ", want: "https://example.com"},
		{name: "domain with path gets https", input: "example.com/path", want: "https://example.com/path"},
		{name: "free text unchanged", input: "hello world", want: "hello world"},
		{name: "single word unchanged", input: "hello", want: "hello"},
		{name: "localhost", input: "localhost", want: "http://localhost"},
		{name: "localhost with port", input: "localhost:5173", want: "http://localhost:5173"},
		{name: "localhost with path", input: "localhost/api/v1", want: "http://localhost/api/v1"},
		{name: "localhost.com is a domain", input: "localhost.com", want: "https://localhost.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.input)
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestLooksLikeURL(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{input: "", want: false},
		{input: "https://example.com", want: true},
		{input: "about:config", want: true},
		{input: "go.dev", want: true},
		{input: "localhost:8080", want: true},
		{input: "golang tutorial", want: false},
		{input: "notes", want: false},
	}

	for _, tt := range tests {
		if got := LooksLikeURL(tt.input); got != tt.want {
			t.Errorf("LooksLikeURL(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestExtractDomain(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "https://www.youtube.com/watch?v=1", want: "youtube.com"},
		{input: "https://go.dev/doc", want: "go.dev"},
		{input: "http://localhost:8080/x", want: "localhost:8080"},
		{input: "about:blank", want: ""},
		{input: "", want: ""},
	}

	for _, tt := range tests {
		if got := ExtractDomain(tt.input); got != tt.want {
			t.Errorf("ExtractDomain(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
