package browser

import (
	"errors"
	"testing"

	browseerr "github.com/veldt/browse/internal/errors"
)

func TestValidateURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{"http", "http://localhost:8080/app/", false},
		{"https", "https://example.com/path", false},
		{"uppercase scheme", "HTTPS://example.com/", false},
		{"mixed case scheme", "HtTp://localhost/", false},
		{"query and fragment", "https://example.com/a?b=c#d", false},
		{"file scheme", "file:///etc/passwd", true},
		{"ftp scheme", "ftp://example.com/file", true},
		{"javascript scheme", "javascript:alert(1)", true},
		{"data scheme", "data:text/html,hi", true},
		{"no scheme", "example.com/path", true},
		{"scheme only", "https://", true},
		{"bare word", "http", true},
		{"control character", "https://example.com/\x7f", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateURL(tt.url)
			if tt.wantErr {
				if !errors.Is(err, browseerr.ErrInvalidURL) {
					t.Errorf("ValidateURL(%q) error = %v, want ErrInvalidURL", tt.url, err)
				}
			} else if err != nil {
				t.Errorf("ValidateURL(%q) error = %v, want nil", tt.url, err)
			}
		})
	}
}
