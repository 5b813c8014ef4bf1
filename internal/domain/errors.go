package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification.
var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidConfig     = errors.New("invalid config")
	ErrEmptyInput        = errors.New("empty input")
	ErrInvalidNumber     = errors.New("invalid number")
	ErrMalformedResponse = errors.New("malformed response")
	ErrInvalidUnit       = errors.New("invalid unit")
)

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

const (
	KindNotFound          ErrorKind = "not_found"
	KindInvalidConfig     ErrorKind = "invalid_config"
	KindEmptyInput        ErrorKind = "empty_input"
	KindInvalidNumber     ErrorKind = "invalid_number"
	KindServiceError      ErrorKind = "service_error"
	KindMalformedResponse ErrorKind = "malformed_response"
	KindNetworkFailure    ErrorKind = "network_failure"
	KindInvalidUnit       ErrorKind = "invalid_unit"
)

// DefaultServiceErrorText is used when a failed response carries no body.
const DefaultServiceErrorText = "Erro na requisição."

// OpError wraps an underlying error with operation context and a kind.
type OpError struct {
	Op   string
	Kind ErrorKind
	Path string // Optional: relevant file path
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ServiceError is a non-2xx answer from the conversion service.
type ServiceError struct {
	StatusCode int
	Body       string
}

func (e *ServiceError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("status %d: %s", e.StatusCode, e.Detail())
}

// Detail returns the response body text, or a generic fallback when empty.
func (e *ServiceError) Detail() string {
	if e == nil || e.Body == "" {
		return DefaultServiceErrorText
	}
	return e.Body
}

// IsKind helps callers classify errors without depending on infra packages.
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return false
}

// KindOf returns the kind of the outermost OpError in the chain, or "".
func KindOf(err error) ErrorKind {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind
	}
	return ""
}
