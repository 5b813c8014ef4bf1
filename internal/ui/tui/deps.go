package tui

import (
	"context"
	"log/slog"

	"github.com/aalvaropc/conversor/internal/domain"
)

// Submitter is the conversion use case as seen by the form.
type Submitter interface {
	Prepare(category domain.Category, fromUnit, toUnit, raw string) (domain.ConversionRequest, error)
	Execute(ctx context.Context, req domain.ConversionRequest) (domain.ConversionResult, error)
}

type Deps struct {
	Submit Submitter

	// Origin is only displayed; the submitter is already bound to it.
	Origin          string
	DefaultCategory domain.Category
	LatestOnly      bool

	Logger  *slog.Logger
	// Debug shows LogPath in an info notification at startup.
	Debug   bool
	LogPath string
}
