package httpclient

import (
	"context"
	"net/http"
	"net/url"

	"github.com/aalvaropc/conversor/internal/domain"
)

const (
	convertPath = "/convert"
	healthPath  = "/health"

	// RequestIDHeader carries the submission id for log correlation on both sides.
	RequestIDHeader = "X-Request-ID"
)

// ConvertURL builds {origin}/convert?category=..&from_unit=..&to_unit=..&value=..
func ConvertURL(origin *url.URL, req domain.ConversionRequest) string {
	u := *origin
	u.Path = convertPath

	q := url.Values{}
	q.Set("category", string(req.Category))
	q.Set("from_unit", req.FromUnit)
	q.Set("to_unit", req.ToUnit)
	q.Set("value", domain.FormatNumber(req.Value))
	u.RawQuery = q.Encode()

	return u.String()
}

// BuildConvertRequest builds the GET request for a conversion.
func BuildConvertRequest(ctx context.Context, origin *url.URL, req domain.ConversionRequest) (*http.Request, error) {
	if origin == nil {
		return nil, &domain.OpError{
			Op:   "httpclient.build",
			Kind: domain.KindInvalidConfig,
			Err:  domain.ErrInvalidConfig,
		}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, ConvertURL(origin, req), nil)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "httpclient.build",
			Kind: domain.KindInvalidConfig,
			Err:  err,
		}
	}

	httpReq.Header.Set("Accept", "application/json")
	if req.ID != "" {
		httpReq.Header.Set(RequestIDHeader, req.ID)
	}
	return httpReq, nil
}

// BuildHealthRequest builds GET {origin}/health.
func BuildHealthRequest(ctx context.Context, origin *url.URL) (*http.Request, error) {
	if origin == nil {
		return nil, &domain.OpError{
			Op:   "httpclient.build",
			Kind: domain.KindInvalidConfig,
			Err:  domain.ErrInvalidConfig,
		}
	}

	u := *origin
	u.Path = healthPath

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "httpclient.build",
			Kind: domain.KindInvalidConfig,
			Err:  err,
		}
	}
	httpReq.Header.Set("Accept", "application/json")
	return httpReq, nil
}
