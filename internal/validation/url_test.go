package validation

import (
	"strings"
	"testing"
)

func TestValidateAndNormalize(t *testing.T) {
	v := NewEndpointValidator()

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{
			name:  "valid https endpoint",
			input: "https://api.lexwire.dev/v1/news",
			want:  "https://api.lexwire.dev/v1/news",
		},
		{
			name:  "scheme added when missing",
			input: "api.lexwire.dev/v1/news",
			want:  "https://api.lexwire.dev/v1/news",
		},
		{
			name:  "whitespace trimmed",
			input: "  https://api.lexwire.dev/v1/news  ",
			want:  "https://api.lexwire.dev/v1/news",
		},
		{
			name:    "empty input",
			input:   "",
			wantErr: true,
		},
		{
			name:    "localhost blocked by default",
			input:   "http://localhost:8080/news",
			wantErr: true,
		},
		{
			name:    "loopback IP blocked by default",
			input:   "http://127.0.0.1/news",
			wantErr: true,
		},
		{
			name:    "private IP blocked by default",
			input:   "http://192.168.1.10/news",
			wantErr: true,
		},
		{
			name:    "invalid characters",
			input:   "https://api.example.org/<script>",
			wantErr: true,
		},
		{
			name:    "traversal in path",
			input:   "https://api.example.org/../../etc",
			wantErr: true,
		},
		{
			name:    "unsupported scheme",
			input:   "ftp://api.example.org/news",
			wantErr: true,
		},
		{
			name:    "too long",
			input:   "https://api.example.org/" + strings.Repeat("x", 3000),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := v.ValidateAndNormalize(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ValidateAndNormalize(%q) error = nil, want error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ValidateAndNormalize(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ValidateAndNormalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestPermissiveValidatorAllowsLocalEndpoints(t *testing.T) {
	v := NewPermissiveEndpointValidator()

	for _, input := range []string{
		"http://localhost:8080/news",
		"http://127.0.0.1:3000/news",
		"http://192.168.1.10/news",
	} {
		if _, err := v.ValidateAndNormalize(input); err != nil {
			t.Errorf("ValidateAndNormalize(%q) error = %v, want nil in permissive mode", input, err)
		}
	}
}

func TestIsPrivateIP(t *testing.T) {
	tests := []struct {
		hostname string
		private  bool
	}{
		{"10.1.2.3", true},
		{"172.16.0.1", true},
		{"192.168.0.1", true},
		{"169.254.1.1", true},
		{"8.8.8.8", false},
		{"1.1.1.1", false},
	}

	v := NewEndpointValidator()
	for _, tt := range tests {
		err := v.validateHost(tt.hostname)
		if tt.private && err == nil {
			t.Errorf("validateHost(%q) = nil, want error for private IP", tt.hostname)
		}
		if !tt.private && err != nil {
			t.Errorf("validateHost(%q) = %v, want nil for public IP", tt.hostname, err)
		}
	}
}
