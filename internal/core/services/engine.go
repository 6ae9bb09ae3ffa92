package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopledger/shopledger/internal/apperrors"
	"github.com/shopledger/shopledger/internal/core/domain"
	"github.com/shopledger/shopledger/internal/metrics"
)

// engineConfig is shared by the services that run ledger units of work.
type engineConfig struct {
	metrics            *metrics.LedgerMetrics
	now                func() time.Time
	newID              func() string
	allowNegativeStock bool
}

// EngineOption configures the ledger and transfer services.
type EngineOption func(*engineConfig)

// WithMetrics records the duration and outcome of every operation.
func WithMetrics(m *metrics.LedgerMetrics) EngineOption {
	return func(c *engineConfig) {
		c.metrics = m
	}
}

// WithClock replaces the timestamp source.
func WithClock(now func() time.Time) EngineOption {
	return func(c *engineConfig) {
		c.now = now
	}
}

// WithIDGenerator replaces the generator used for non-sale entity ids.
func WithIDGenerator(newID func() string) EngineOption {
	return func(c *engineConfig) {
		c.newID = newID
	}
}

// WithNegativeStock lets sales take a product's stock below zero.
func WithNegativeStock(allow bool) EngineOption {
	return func(c *engineConfig) {
		c.allowNegativeStock = allow
	}
}

func newEngineConfig(options []EngineOption) engineConfig {
	cfg := engineConfig{
		now:   defaultNow,
		newID: uuid.NewString,
	}
	for _, option := range options {
		option(&cfg)
	}
	return cfg
}

// defaultNow returns UTC time at the precision both storage dialects keep.
func defaultNow() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// logWarnings emits integrity warnings. They never block the operation.
func logWarnings(ctx context.Context, base *BaseService, operation string, warnings []domain.Warning) {
	for _, w := range warnings {
		base.LogWarn(ctx, "Integrity warning",
			slog.String("operation", operation),
			slog.Int("item_index", w.Index),
			slog.String("field", w.Field),
			slog.String("warning", w.Message))
	}
}

// logOutcome logs a failed unit of work at a level matching its cause.
func logOutcome(ctx context.Context, base *BaseService, operation string, err error, keyvals ...any) {
	if err == nil {
		return
	}
	args := append([]any{slog.String("operation", operation)}, keyvals...)
	switch {
	case errors.Is(err, apperrors.ErrValidation),
		errors.Is(err, apperrors.ErrNotFound),
		errors.Is(err, apperrors.ErrInsufficientStock):
		base.LogWarn(ctx, "Operation rejected", append(args, slog.String("error", err.Error()))...)
	default:
		base.LogError(ctx, err, "Operation failed", args...)
	}
}
