package browser

import (
	"context"
	"errors"
	"strings"

	browseerr "github.com/veldt/browse/internal/errors"
)

// Service validates URLs and delegates browser launching to a Launcher.
type Service struct {
	launcher Launcher
}

// NewService creates a Service backed by the given launcher.
func NewService(launcher Launcher) *Service {
	return &Service{launcher: launcher}
}

// Open opens url in the default browser via the configured launcher.
//
// Empty or all-whitespace URLs are rejected without touching the launcher.
// opts is forwarded as-is; nil means system-preferred launching. A URL the
// launcher rejects as malformed yields (false, nil); any other launcher
// error is returned to the caller unchanged.
func (s *Service) Open(ctx context.Context, url string, opts *LaunchOptions) (bool, error) {
	if strings.TrimSpace(url) == "" {
		return false, nil
	}

	ok, err := s.launcher.OpenDefault(ctx, url, opts)
	if err != nil {
		if errors.Is(err, browseerr.ErrInvalidURL) {
			return false, nil
		}
		return false, err
	}

	return ok, nil
}
