// Package notify defines the outbound event contract. Delivery is owned by
// the notification collaborator; the core only emits events and never waits
// on them.
package notify

import (
	"context"

	"github.com/arbiterhq/arbiter/internal/database/types"
	"go.uber.org/zap"
)

// Notifier receives enforcement events after the owning transaction commits.
type Notifier interface {
	WarningIssued(ctx context.Context, action *types.ModerationAction)
	SanctionApplied(ctx context.Context, sanction *types.Sanction)
	AppealResolved(ctx context.Context, appeal *types.Appeal)
}

// LogNotifier is the default Notifier; it records events in the application
// log and drops them.
type LogNotifier struct {
	logger *zap.Logger
}

// NewLogNotifier creates a notifier that only logs events.
func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	return &LogNotifier{logger: logger.Named("notify")}
}

// WarningIssued implements Notifier.
func (n *LogNotifier) WarningIssued(_ context.Context, action *types.ModerationAction) {
	n.logger.Info("Warning issued",
		zap.Int64("actionID", action.ID),
		zap.Uint64("userID", action.TargetUserID),
		zap.String("category", action.Category.String()))
}

// SanctionApplied implements Notifier.
func (n *LogNotifier) SanctionApplied(_ context.Context, sanction *types.Sanction) {
	n.logger.Info("Sanction applied",
		zap.Int64("sanctionID", sanction.ID),
		zap.Uint64("userID", sanction.UserID),
		zap.String("type", sanction.Type.String()),
		zap.Bool("permanent", sanction.IsPermanent))
}

// AppealResolved implements Notifier.
func (n *LogNotifier) AppealResolved(_ context.Context, appeal *types.Appeal) {
	n.logger.Info("Appeal resolved",
		zap.Int64("appealID", appeal.ID),
		zap.Uint64("appellantID", appeal.AppellantID),
		zap.String("status", appeal.Status.String()))
}
