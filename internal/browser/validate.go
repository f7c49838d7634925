package browser

import (
	"fmt"
	"net/url"
	"strings"

	browseerr "github.com/veldt/browse/internal/errors"
)

// ValidateURL checks that raw is a well-formed web URL.
// Only http and https are accepted; anything else wraps ErrInvalidURL.
func ValidateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w: %v", browseerr.ErrInvalidURL, err)
	}

	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		// valid
	default:
		return fmt.Errorf("%w: unsupported scheme %q", browseerr.ErrInvalidURL, u.Scheme)
	}

	if u.Host == "" {
		return fmt.Errorf("%w: missing host", browseerr.ErrInvalidURL)
	}

	return nil
}
