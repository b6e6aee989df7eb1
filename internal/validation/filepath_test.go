package validation

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLogPathValidator(t *testing.T) {
	home, _ := os.UserHomeDir()
	v := NewLogPathValidator()

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"app dir", filepath.Join(home, ".lexwire", "lexwire.log"), false},
		{"config dir", filepath.Join(home, ".config", "lexwire", "debug.log"), false},
		{"temp dir", filepath.Join(os.TempDir(), "lexwire.log"), false},
		{"tilde expansion", "~/.lexwire/lexwire.log", false},
		{"outside allowed dirs", "/etc/lexwire.log", true},
		{"empty", "", true},
		{"null byte", "\x00bad", true},
		{"traversal", filepath.Join(home, ".lexwire", "..", "..", "etc", "passwd"), true},
		{"too long", strings.Repeat("x", 5000), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := v.ValidateAndSanitize(tt.input)
			if tt.wantErr && err == nil {
				t.Errorf("ValidateAndSanitize(%q) = nil, want error", tt.input)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("ValidateAndSanitize(%q) error = %v", tt.input, err)
			}
		})
	}
}

func TestPermissiveLogPathValidator(t *testing.T) {
	v := NewPermissiveLogPathValidator()

	got, err := v.ValidateAndSanitize("/var/log/lexwire.log")
	if err != nil {
		t.Fatalf("ValidateAndSanitize() error = %v", err)
	}
	if got != "/var/log/lexwire.log" {
		t.Errorf("got %q", got)
	}
}
