// Package expiry runs the scheduled deactivation of bounded sanctions.
package expiry

import (
	"context"
	"time"

	"github.com/arbiterhq/arbiter/internal/database/service"
	"github.com/arbiterhq/arbiter/internal/setup"
	"github.com/arbiterhq/arbiter/internal/worker/core"
	"go.uber.org/zap"
)

// Worker sweeps active bounded sanctions and deactivates those past their
// end date. Enforcement reads treat an overdue sanction as inactive even
// before the sweep catches up, so the worker only reconciles stored state.
type Worker struct {
	sanctions     *service.SanctionService
	reporter      *core.StatusReporter
	logger        *zap.Logger
	sweepInterval time.Duration
	batchSize     int
	concurrency   int
}

// New creates a new expiry worker.
func New(app *setup.App, logger *zap.Logger) *Worker {
	return &Worker{
		sanctions:     app.Service.Sanction(),
		reporter:      core.NewStatusReporter(app.StatusClient, "expiry", logger),
		logger:        logger,
		sweepInterval: time.Duration(app.Config.Worker.SweepInterval) * time.Second,
		batchSize:     app.Config.Worker.BatchSize,
		concurrency:   app.Config.Worker.Concurrency,
	}
}

// Start begins the worker's sweep loop and blocks until the context is
// cancelled.
func (w *Worker) Start(ctx context.Context) {
	w.logger.Info("Expiry worker started",
		zap.String("workerID", w.reporter.GetWorkerID()),
		zap.Duration("sweepInterval", w.sweepInterval))

	w.reporter.Start(ctx)
	defer w.reporter.Stop()

	ticker := time.NewTicker(w.sweepInterval)
	defer ticker.Stop()

	// First sweep runs immediately so a restart never delays overdue
	// expiries by a full interval.
	w.sweep(ctx)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("Expiry worker stopped")
			return
		case <-ticker.C:
			w.sweep(ctx)
		}
	}
}

// sweep drains every due sanction in batches until a pass comes up short.
func (w *Worker) sweep(ctx context.Context) {
	w.reporter.UpdateStatus("sweeping", 0)
	defer w.reporter.UpdateStatus("idle", 100)

	total := 0

	for {
		expired, err := w.sanctions.ExpireDue(ctx, w.batchSize, w.concurrency)
		if err != nil {
			w.logger.Error("Expiry sweep failed", zap.Error(err))
			w.reporter.SetHealthy(false)

			return
		}

		total += expired

		// A short batch means the backlog is drained.
		if expired < w.batchSize {
			break
		}
	}

	w.reporter.SetHealthy(true)

	if total > 0 {
		w.logger.Info("Expiry sweep finished", zap.Int("expired", total))
	}
}
