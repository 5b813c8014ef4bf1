package ports

import (
	"context"

	"github.com/aalvaropc/conversor/internal/domain"
)

// Converter delegates a conversion to the remote conversion service.
type Converter interface {
	Convert(ctx context.Context, req domain.ConversionRequest) (domain.ConversionResult, error)
}

// HealthChecker reports whether the conversion service is reachable.
type HealthChecker interface {
	Health(ctx context.Context) (string, error)
}
