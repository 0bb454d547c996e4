package database

import (
	"context"
	"time"

	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// slowQueryThreshold is the elapsed time after which a successful query is
// surfaced at warn level.
const slowQueryThreshold = 250 * time.Millisecond

// Hook logs every query through the database logger. Failures and slow
// statements are escalated so they show up without debug logging enabled.
type Hook struct {
	logger *zap.Logger
}

// NewHook creates a query hook backed by the given logger.
func NewHook(logger *zap.Logger) *Hook {
	return &Hook{logger: logger.Named("query")}
}

// BeforeQuery implements bun.QueryHook.
func (h *Hook) BeforeQuery(ctx context.Context, _ *bun.QueryEvent) context.Context {
	return ctx
}

// AfterQuery implements bun.QueryHook.
func (h *Hook) AfterQuery(_ context.Context, event *bun.QueryEvent) {
	elapsed := time.Since(event.StartTime)

	switch {
	case event.Err != nil:
		h.logger.Error("Query failed",
			zap.String("query", event.Query),
			zap.Duration("elapsed", elapsed),
			zap.Error(event.Err))
	case elapsed >= slowQueryThreshold:
		h.logger.Warn("Slow query",
			zap.String("query", event.Query),
			zap.Duration("elapsed", elapsed))
	default:
		h.logger.Debug("Query executed",
			zap.String("query", event.Query),
			zap.Duration("elapsed", elapsed))
	}
}
