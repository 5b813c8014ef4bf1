package httpclient

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/aalvaropc/conversor/internal/domain"
)

// ParseOrigin reduces raw to scheme://host[:port]. Paths, queries and
// fragments are dropped so requests can never leave the configured origin.
func ParseOrigin(raw string) (*url.URL, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil, &domain.OpError{
			Op:   "httpclient.origin",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("origin is empty: %w", domain.ErrInvalidConfig),
		}
	}

	u, err := url.Parse(s)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "httpclient.origin",
			Kind: domain.KindInvalidConfig,
			Err:  err,
		}
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, &domain.OpError{
			Op:   "httpclient.origin",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("origin %q: scheme must be http or https: %w", raw, domain.ErrInvalidConfig),
		}
	}
	if u.Host == "" {
		return nil, &domain.OpError{
			Op:   "httpclient.origin",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("origin %q: missing host: %w", raw, domain.ErrInvalidConfig),
		}
	}

	return &url.URL{Scheme: u.Scheme, Host: u.Host}, nil
}
