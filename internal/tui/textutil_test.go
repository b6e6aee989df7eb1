package tui

import "testing"

func TestTruncateEnd(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		limit    int
		expected string
	}{
		{"shorter than limit", "brief", 10, "brief"},
		{"exactly at limit", "exact", 5, "exact"},
		{"truncated", "a longer headline here", 10, "a longer …"},
		{"zero limit", "anything", 0, ""},
		{"limit of one", "anything", 1, "…"},
		{"unicode safe", "héllo wörld", 7, "héllo …"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truncateEnd(tt.input, tt.limit); got != tt.expected {
				t.Errorf("truncateEnd(%q, %d) = %q, want %q", tt.input, tt.limit, got, tt.expected)
			}
		})
	}
}

func TestTruncateMiddle(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		limit    int
		expected string
	}{
		{"shorter than limit", "short", 10, "short"},
		{"truncated keeps both ends", "https://example.com/articles/sentencing-reform", 21, "https://ex…ing-reform"},
		{"zero limit", "anything", 0, ""},
		{"limit of one", "anything", 1, "…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truncateMiddle(tt.input, tt.limit); got != tt.expected {
				t.Errorf("truncateMiddle(%q, %d) = %q, want %q", tt.input, tt.limit, got, tt.expected)
			}
		})
	}
}
