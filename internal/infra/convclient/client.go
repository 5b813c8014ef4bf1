package convclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/url"
	"strings"

	"github.com/PaesslerAG/jsonpath"

	"github.com/aalvaropc/conversor/internal/domain"
	"github.com/aalvaropc/conversor/internal/infra/httpclient"
	"github.com/aalvaropc/conversor/internal/ports"
)

const (
	resultPath = "$.result"
	statusPath = "$.status"
)

// Client talks to the conversion service at a single origin.
type Client struct {
	origin *url.URL
	exec   *httpclient.Executor
	log    *slog.Logger
}

type Option func(*Client)

func WithExecutor(e *httpclient.Executor) Option {
	return func(c *Client) { c.exec = e }
}

func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.log = l }
}

// New validates origin and returns a client bound to it.
func New(origin string, opts ...Option) (*Client, error) {
	u, err := httpclient.ParseOrigin(origin)
	if err != nil {
		return nil, err
	}

	c := &Client{
		origin: u,
		exec:   httpclient.NewExecutor(),
		log:    slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

var (
	_ ports.Converter     = (*Client)(nil)
	_ ports.HealthChecker = (*Client)(nil)
)

// Origin returns the origin every request is sent to.
func (c *Client) Origin() string {
	return c.origin.String()
}

func (c *Client) Convert(ctx context.Context, req domain.ConversionRequest) (domain.ConversionResult, error) {
	httpReq, err := httpclient.BuildConvertRequest(ctx, c.origin, req)
	if err != nil {
		return domain.ConversionResult{}, err
	}

	resp, err := c.exec.Do(ctx, httpReq)
	if err != nil {
		c.log.Warn("convclient.convert.network",
			"request_id", req.ID,
			"url", httpReq.URL.String(),
			"err", err,
			"latency_ms", resp.Duration.Milliseconds(),
		)
		return domain.ConversionResult{}, &domain.OpError{
			Op:   "convclient.convert",
			Kind: domain.KindNetworkFailure,
			Err:  err,
		}
	}

	c.log.Debug("convclient.convert.response",
		"request_id", req.ID,
		"status", resp.Status,
		"latency_ms", resp.Duration.Milliseconds(),
		"body_bytes", len(resp.BodyBytes),
		"truncated", resp.Truncated,
	)

	if resp.Status/100 != 2 {
		return domain.ConversionResult{}, &domain.OpError{
			Op:   "convclient.convert",
			Kind: domain.KindServiceError,
			Err: &domain.ServiceError{
				StatusCode: resp.Status,
				Body:       strings.TrimSpace(string(resp.BodyBytes)),
			},
		}
	}

	v, err := extractNumber(resp.BodyBytes, resultPath)
	if err != nil {
		return domain.ConversionResult{}, &domain.OpError{
			Op:   "convclient.convert",
			Kind: domain.KindMalformedResponse,
			Err:  err,
		}
	}

	return domain.ConversionResult{Result: v}, nil
}

// Health returns the service's reported status ("ok" for a healthy service).
func (c *Client) Health(ctx context.Context) (string, error) {
	httpReq, err := httpclient.BuildHealthRequest(ctx, c.origin)
	if err != nil {
		return "", err
	}

	resp, err := c.exec.Do(ctx, httpReq)
	if err != nil {
		return "", &domain.OpError{
			Op:   "convclient.health",
			Kind: domain.KindNetworkFailure,
			Err:  err,
		}
	}

	body := strings.TrimSpace(string(resp.BodyBytes))
	if resp.Status/100 != 2 {
		return "", &domain.OpError{
			Op:   "convclient.health",
			Kind: domain.KindServiceError,
			Err:  &domain.ServiceError{StatusCode: resp.Status, Body: body},
		}
	}

	doc, err := parseJSON(resp.BodyBytes)
	if err != nil {
		return body, nil
	}
	val, err := jsonpath.Get(statusPath, doc)
	if err != nil {
		return body, nil
	}
	if s, ok := val.(string); ok {
		return s, nil
	}
	return fmt.Sprint(val), nil
}

func extractNumber(body []byte, path string) (float64, error) {
	doc, err := parseJSON(body)
	if err != nil {
		return 0, fmt.Errorf("response body is not valid JSON: %w", domain.ErrMalformedResponse)
	}

	val, err := jsonpath.Get(path, doc)
	if err != nil {
		return 0, fmt.Errorf("%s: %v: %w", path, err, domain.ErrMalformedResponse)
	}

	n, ok := val.(float64)
	if !ok {
		return 0, fmt.Errorf("%s: expected number, got %T: %w", path, val, domain.ErrMalformedResponse)
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, fmt.Errorf("%s: not finite: %w", path, domain.ErrMalformedResponse)
	}
	return n, nil
}

func parseJSON(body []byte) (any, error) {
	b := bytes.TrimSpace(body)
	if len(b) == 0 {
		return nil, fmt.Errorf("empty body")
	}
	var doc any
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}
