package usecase

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/aalvaropc/conversor/internal/domain"
	"github.com/aalvaropc/conversor/internal/ports"
)

// SubmitConversion validates form input and delegates the conversion to the service.
type SubmitConversion struct {
	converter ports.Converter
	newID     func() string
	log       *slog.Logger
}

type Option func(*SubmitConversion)

func WithLogger(l *slog.Logger) Option {
	return func(uc *SubmitConversion) { uc.log = l }
}

// WithIDGenerator is useful for tests.
func WithIDGenerator(f func() string) Option {
	return func(uc *SubmitConversion) { uc.newID = f }
}

func NewSubmitConversion(c ports.Converter, opts ...Option) *SubmitConversion {
	uc := &SubmitConversion{
		converter: c,
		newID:     uuid.NewString,
		log:       slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Prepare runs the validation pipeline and builds a fresh request.
// It never contacts the service.
func (uc *SubmitConversion) Prepare(category domain.Category, fromUnit, toUnit, raw string) (domain.ConversionRequest, error) {
	value, err := domain.ParseValue(raw)
	if err != nil {
		return domain.ConversionRequest{}, err
	}

	for _, u := range []string{fromUnit, toUnit} {
		if !domain.HasUnit(category, u) {
			return domain.ConversionRequest{}, &domain.OpError{
				Op:   "usecase.prepare",
				Kind: domain.KindInvalidUnit,
				Err:  fmt.Errorf("unit %q for %s: %w", u, category, domain.ErrInvalidUnit),
			}
		}
	}

	return domain.ConversionRequest{
		ID:       uc.newID(),
		Category: category,
		FromUnit: fromUnit,
		ToUnit:   toUnit,
		Value:    value,
	}, nil
}

// Execute issues exactly one call to the service; nothing is retried.
func (uc *SubmitConversion) Execute(ctx context.Context, req domain.ConversionRequest) (domain.ConversionResult, error) {
	start := time.Now()
	uc.log.Info("convert.start",
		"request_id", req.ID,
		"category", string(req.Category),
		"from_unit", req.FromUnit,
		"to_unit", req.ToUnit,
		"value", req.Value,
	)

	res, err := uc.converter.Convert(ctx, req)
	if err != nil {
		uc.log.Error("convert.failed",
			"request_id", req.ID,
			"kind", string(domain.KindOf(err)),
			"err", err,
			"latency_ms", time.Since(start).Milliseconds(),
		)
		return domain.ConversionResult{}, err
	}

	uc.log.Info("convert.ok",
		"request_id", req.ID,
		"result", res.Result,
		"latency_ms", time.Since(start).Milliseconds(),
	)
	return res, nil
}

// Run is Prepare followed by Execute.
func (uc *SubmitConversion) Run(ctx context.Context, category domain.Category, fromUnit, toUnit, raw string) (domain.ConversionRequest, domain.ConversionResult, error) {
	req, err := uc.Prepare(category, fromUnit, toUnit, raw)
	if err != nil {
		return domain.ConversionRequest{}, domain.ConversionResult{}, err
	}
	res, err := uc.Execute(ctx, req)
	return req, res, err
}
