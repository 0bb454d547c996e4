package service

import (
	"context"
	"strings"
	"time"

	"github.com/arbiterhq/arbiter/internal/auth"
	"github.com/arbiterhq/arbiter/internal/content"
	"github.com/arbiterhq/arbiter/internal/database/dbretry"
	"github.com/arbiterhq/arbiter/internal/database/models"
	"github.com/arbiterhq/arbiter/internal/database/types"
	"github.com/arbiterhq/arbiter/internal/database/types/enum"
	"github.com/arbiterhq/arbiter/internal/moderation/policy"
	"github.com/arbiterhq/arbiter/internal/notify"
	"github.com/arbiterhq/arbiter/internal/setup/config"
	"github.com/arbiterhq/arbiter/internal/tally"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// ActionService is the action engine. Every decision runs in a single
// transaction that writes the action row, advances the referenced report,
// creates any resulting sanction and appends the audit entries.
type ActionService struct {
	db       *bun.DB
	model    *models.ActionModel
	reports  *models.ReportModel
	tally    *tally.Tracker
	content  content.Provider
	notifier notify.Notifier
	config   *config.Moderation
	logger   *zap.Logger
}

// NewAction creates a new action service.
func NewAction(
	db *bun.DB,
	model *models.ActionModel,
	reports *models.ReportModel,
	tracker *tally.Tracker,
	provider content.Provider,
	notifier notify.Notifier,
	config *config.Moderation,
	logger *zap.Logger,
) *ActionService {
	return &ActionService{
		db:       db,
		model:    model,
		reports:  reports,
		tally:    tracker,
		content:  provider,
		notifier: notifier,
		config:   config,
		logger:   logger.Named("action_service"),
	}
}

// ApplyParams are the inputs for a moderation decision. Exactly one of
// ReportID, TargetContentID or TargetUserID anchors the decision; a report
// anchor supplies the others.
type ApplyParams struct {
	Actor           auth.Actor
	ActionType      enum.ActionType
	ReportID        int64
	TargetContentID uint64
	TargetUserID    uint64
	Category        enum.Category
	Reason          string
	DurationDays    int
}

// Apply records a moderation decision and its consequences atomically.
// Returns the action and, for suspend/ban decisions, the created sanction.
func (s *ActionService) Apply(ctx context.Context, params ApplyParams) (*types.ModerationAction, *types.Sanction, error) {
	if !policy.Allows(params.Actor.Role, params.ActionType) {
		return nil, nil, types.ErrForbidden
	}

	if strings.TrimSpace(params.Reason) == "" {
		return nil, nil, types.ErrReasonRequired
	}

	switch params.ActionType {
	case enum.ActionTypeApproveReport, enum.ActionTypeDismissReport:
		if params.ReportID == 0 {
			return nil, nil, types.ErrInvalidActionTarget
		}
	case enum.ActionTypeRemoveContent:
		if params.ReportID == 0 && params.TargetContentID == 0 {
			return nil, nil, types.ErrInvalidActionTarget
		}
	case enum.ActionTypeIssueWarning, enum.ActionTypeSuspendUser, enum.ActionTypeBanUser:
		if params.ReportID == 0 && params.TargetContentID == 0 && params.TargetUserID == 0 {
			return nil, nil, types.ErrInvalidActionTarget
		}
	case enum.ActionTypeReverseAction:
		// Reversals go through Reverse, never Apply.
		return nil, nil, types.ErrInvalidActionTarget
	}

	now := time.Now()
	action := &types.ModerationAction{
		ActorID:         params.Actor.ID,
		ActorRole:       params.Actor.Role,
		TargetUserID:    params.TargetUserID,
		TargetContentID: params.TargetContentID,
		ActionType:      params.ActionType,
		Category:        params.Category,
		Reason:          params.Reason,
		CreatedAt:       now,
	}

	var report *types.Report

	if params.ReportID != 0 {
		var err error

		report, err = s.reports.GetByID(ctx, params.ReportID)
		if err != nil {
			return nil, nil, err
		}

		if report.Status.IsClosed() {
			return nil, nil, types.ErrReportAlreadyResolved
		}

		action.ReportID = report.ID
		action.Category = report.Category

		if action.TargetContentID == 0 {
			action.TargetContentID = report.TargetContentID
		}

		if action.TargetUserID == 0 {
			action.TargetUserID = report.TargetUserID
		}
	}

	// Evidence snapshot and the community the decision falls under.
	communityID := uint64(0)

	if action.TargetContentID != 0 {
		snapshot, err := s.content.Snapshot(ctx, action.TargetContentID)
		if err != nil {
			return nil, nil, err
		}

		communityID = snapshot.CommunityID

		if action.TargetUserID == 0 {
			action.TargetUserID = snapshot.AuthorID
		}

		action.Snapshot = &types.ContentSnapshot{
			ContentID:   snapshot.ContentID,
			ContentType: snapshot.ContentType,
			AuthorID:    snapshot.AuthorID,
			CommunityID: snapshot.CommunityID,
			Body:        snapshot.Body,
			CapturedAt:  snapshot.CapturedAt,
		}
	} else if report != nil {
		communityID = report.CommunityID
	}

	// A scoped role with no content or report anchor has no community to
	// check against, so a bare user target is out of its jurisdiction.
	if policy.RequiresJurisdiction(params.Actor.Role, params.ActionType) &&
		!params.Actor.CanModerate(communityID) {
		return nil, nil, types.ErrForbidden
	}

	if params.ActionType == enum.ActionTypeSuspendUser {
		if params.DurationDays < 1 || params.DurationDays > s.config.MaxSuspensionDays {
			return nil, nil, types.ErrInvalidDuration
		}
	}

	var sanction *types.Sanction

	err := dbretry.Transaction(ctx, s.db, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewInsert().Model(action).Exec(ctx); err != nil {
			return err
		}

		if report != nil {
			// The closed-state check above is advisory; this conditional
			// update is what guarantees a report is resolved exactly once.
			res, err := tx.NewUpdate().
				Model((*types.Report)(nil)).
				Set("status = ?", params.ActionType.ResolvedStatus()).
				Set("updated_at = ?", now).
				Where("id = ?", report.ID).
				Where("status IN (?)", bun.In([]enum.ReportStatus{
					enum.ReportStatusPending,
					enum.ReportStatusUnderReview,
				})).
				Exec(ctx)
			if err != nil {
				return err
			}

			if affected, _ := res.RowsAffected(); affected == 0 {
				return types.ErrReportAlreadyResolved
			}
		}

		entry := &types.AuditLogEntry{
			ActorID:   params.Actor.ID,
			ActorRole: params.Actor.Role,
			Action:    enum.AuditActionActionApplied,
			TargetID:  action.ID,
			Details: map[string]any{
				"actionType":      action.ActionType.String(),
				"category":        action.Category.String(),
				"reportId":        action.ReportID,
				"targetUserId":    action.TargetUserID,
				"targetContentId": action.TargetContentID,
			},
			CreatedAt: now,
		}
		if _, err := tx.NewInsert().Model(entry).Exec(ctx); err != nil {
			return err
		}

		if !params.ActionType.CreatesSanction() {
			return nil
		}

		sanction = types.NewSanction(action, params.DurationDays, now)
		if _, err := tx.NewInsert().Model(sanction).Exec(ctx); err != nil {
			return err
		}

		sanctionEntry := &types.AuditLogEntry{
			ActorID:   params.Actor.ID,
			ActorRole: params.Actor.Role,
			Action:    enum.AuditActionSanctionCreated,
			TargetID:  sanction.ID,
			Details: map[string]any{
				"type":         sanction.Type.String(),
				"userId":       sanction.UserID,
				"actionId":     sanction.ActionID,
				"durationDays": sanction.DurationDays,
				"permanent":    sanction.IsPermanent,
			},
			CreatedAt: now,
		}

		_, err := tx.NewInsert().Model(sanctionEntry).Exec(ctx)

		return err
	})
	if err != nil {
		return nil, nil, err
	}

	// Post-commit side effects. The decision already stands; failures here
	// only get logged.
	if params.ActionType == enum.ActionTypeRemoveContent && action.TargetContentID != 0 {
		if err := s.tally.Clear(ctx, action.TargetContentID); err != nil {
			s.logger.Warn("Failed to clear reporter tally after removal",
				zap.Uint64("contentID", action.TargetContentID),
				zap.Error(err))
		}
	}

	if params.ActionType == enum.ActionTypeIssueWarning {
		s.notifier.WarningIssued(ctx, action)
	}

	if sanction != nil {
		s.notifier.SanctionApplied(ctx, sanction)
	}

	s.logger.Debug("Action applied",
		zap.Int64("actionID", action.ID),
		zap.String("type", action.ActionType.String()))

	return action, sanction, nil
}

// Reverse records a reversing action against a prior decision and marks the
// original as reversed. Sanctions created by the original action are not
// touched; lifting them is a separate, explicit operation.
func (s *ActionService) Reverse(
	ctx context.Context, actor auth.Actor, actionID int64, reason string,
) (*types.ModerationAction, error) {
	if !policy.Allows(actor.Role, enum.ActionTypeReverseAction) {
		return nil, types.ErrForbidden
	}

	if strings.TrimSpace(reason) == "" {
		return nil, types.ErrReasonRequired
	}

	original, err := s.model.GetByID(ctx, actionID)
	if err != nil {
		return nil, err
	}

	if original.IsReversed {
		return nil, types.ErrActionAlreadyReversed
	}

	if original.ActionType == enum.ActionTypeReverseAction {
		return nil, types.ErrActionAlreadyReversed
	}

	now := time.Now()
	reversal := &types.ModerationAction{
		ActorID:         actor.ID,
		ActorRole:       actor.Role,
		TargetUserID:    original.TargetUserID,
		TargetContentID: original.TargetContentID,
		ReportID:        original.ReportID,
		ActionType:      enum.ActionTypeReverseAction,
		Category:        original.Category,
		Reason:          reason,
		CreatedAt:       now,
	}

	err = dbretry.Transaction(ctx, s.db, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewInsert().Model(reversal).Exec(ctx); err != nil {
			return err
		}

		res, err := tx.NewUpdate().
			Model((*types.ModerationAction)(nil)).
			Set("is_reversed = TRUE").
			Set("reversed_by = ?", reversal.ID).
			Where("id = ?", original.ID).
			Where("is_reversed = FALSE").
			Exec(ctx)
		if err != nil {
			return err
		}

		if affected, _ := res.RowsAffected(); affected == 0 {
			return types.ErrActionAlreadyReversed
		}

		entry := &types.AuditLogEntry{
			ActorID:   actor.ID,
			ActorRole: actor.Role,
			Action:    enum.AuditActionActionReversed,
			TargetID:  original.ID,
			Details: map[string]any{
				"reversalId":   reversal.ID,
				"originalType": original.ActionType.String(),
			},
			CreatedAt: now,
		}

		_, err = tx.NewInsert().Model(entry).Exec(ctx)

		return err
	})
	if err != nil {
		return nil, err
	}

	return reversal, nil
}

// History returns the most recent actions recorded against a user.
func (s *ActionService) History(
	ctx context.Context, actor auth.Actor, userID uint64, limit int,
) ([]*types.ModerationAction, error) {
	if !actor.Role.IsStaff() {
		return nil, types.ErrForbidden
	}

	if limit < 1 || limit > s.config.MaxPageLimit {
		limit = s.config.MaxPageLimit
	}

	return s.model.GetByTargetUser(ctx, userID, limit)
}
