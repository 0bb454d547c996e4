package service

import (
	"context"
	"strings"
	"time"

	"github.com/arbiterhq/arbiter/internal/auth"
	"github.com/arbiterhq/arbiter/internal/database/dbretry"
	"github.com/arbiterhq/arbiter/internal/database/models"
	"github.com/arbiterhq/arbiter/internal/database/types"
	"github.com/arbiterhq/arbiter/internal/database/types/enum"
	"github.com/arbiterhq/arbiter/internal/notify"
	"github.com/arbiterhq/arbiter/internal/pagination"
	"github.com/arbiterhq/arbiter/internal/setup/config"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// AppealService handles the appeal workflow. An appeal decision only records
// the outcome; undoing the contested action or sanction stays a separate,
// explicit operation so the ledger shows who did what.
type AppealService struct {
	db        *bun.DB
	model     *models.AppealModel
	actions   *models.ActionModel
	sanctions *models.SanctionModel
	notifier  notify.Notifier
	config    *config.Moderation
	logger    *zap.Logger
}

// NewAppeal creates a new appeal service.
func NewAppeal(
	db *bun.DB,
	model *models.AppealModel,
	actions *models.ActionModel,
	sanctions *models.SanctionModel,
	notifier notify.Notifier,
	config *config.Moderation,
	logger *zap.Logger,
) *AppealService {
	return &AppealService{
		db:        db,
		model:     model,
		actions:   actions,
		sanctions: sanctions,
		notifier:  notifier,
		config:    config,
		logger:    logger.Named("appeal_service"),
	}
}

// File records a new appeal. Only the subject of the contested record may
// appeal it, and only one pending appeal per target is allowed.
func (s *AppealService) File(
	ctx context.Context, actor auth.Actor, target types.AppealTarget, text string,
) (*types.Appeal, error) {
	if err := target.Validate(); err != nil {
		return nil, err
	}

	if strings.TrimSpace(text) == "" {
		return nil, types.ErrAppealTextRequired
	}

	var subjectID uint64

	if target.ActionID != 0 {
		action, err := s.actions.GetByID(ctx, target.ActionID)
		if err != nil {
			return nil, err
		}

		subjectID = action.TargetUserID
	} else {
		sanction, err := s.sanctions.GetByID(ctx, target.SanctionID)
		if err != nil {
			return nil, err
		}

		subjectID = sanction.UserID
	}

	if subjectID != actor.ID {
		return nil, types.ErrNotAppealSubject
	}

	exists, err := s.model.HasPending(ctx, actor.ID, target)
	if err != nil {
		return nil, err
	}

	if exists {
		return nil, types.ErrDuplicateAppeal
	}

	now := time.Now()
	appeal := &types.Appeal{
		AppellantID: actor.ID,
		Type:        target.Type(),
		ActionID:    target.ActionID,
		SanctionID:  target.SanctionID,
		Text:        text,
		Status:      enum.AppealStatusPending,
		CreatedAt:   now,
	}

	err = dbretry.Transaction(ctx, s.db, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewInsert().Model(appeal).Exec(ctx); err != nil {
			return err
		}

		entry := &types.AuditLogEntry{
			ActorID:   actor.ID,
			ActorRole: actor.Role,
			Action:    enum.AuditActionAppealFiled,
			TargetID:  appeal.ID,
			Details: map[string]any{
				"type":       appeal.Type.String(),
				"actionId":   appeal.ActionID,
				"sanctionId": appeal.SanctionID,
			},
			CreatedAt: now,
		}

		_, err := tx.NewInsert().Model(entry).Exec(ctx)

		return err
	})
	if err != nil {
		return nil, err
	}

	return appeal, nil
}

// Pending returns one page of pending appeals, oldest first, for review.
func (s *AppealService) Pending(
	ctx context.Context, actor auth.Actor, params pagination.Params,
) (*pagination.Page[*types.Appeal], error) {
	if !actor.IsAdmin() {
		return nil, types.ErrForbidden
	}

	params = params.Normalize(s.config.MaxPageLimit)

	appeals, total, err := s.model.GetPending(ctx, params.Limit, params.Offset())
	if err != nil {
		return nil, err
	}

	return pagination.NewPage(appeals, params, total), nil
}

// Resolve decides a pending appeal exactly once. Acceptance records the
// outcome only; reversing the action or lifting the sanction remains the
// administrator's follow-up so it carries its own audit trail.
func (s *AppealService) Resolve(
	ctx context.Context, actor auth.Actor, appealID int64, decision enum.AppealStatus, reviewReason string,
) (*types.Appeal, error) {
	if !actor.IsAdmin() {
		return nil, types.ErrForbidden
	}

	if !decision.IsDecision() {
		return nil, types.ErrInvalidAppealDecision
	}

	if strings.TrimSpace(reviewReason) == "" {
		return nil, types.ErrReasonRequired
	}

	appeal, err := s.model.GetByID(ctx, appealID)
	if err != nil {
		return nil, err
	}

	if appeal.Status != enum.AppealStatusPending {
		return nil, types.ErrAppealAlreadyResolved
	}

	now := time.Now()

	err = dbretry.Transaction(ctx, s.db, func(ctx context.Context, tx bun.Tx) error {
		res, err := tx.NewUpdate().
			Model((*types.Appeal)(nil)).
			Set("status = ?", decision).
			Set("resolved_by = ?", actor.ID).
			Set("review_reason = ?", reviewReason).
			Set("resolved_at = ?", now).
			Where("id = ?", appealID).
			Where("status = ?", enum.AppealStatusPending).
			Exec(ctx)
		if err != nil {
			return err
		}

		if affected, _ := res.RowsAffected(); affected == 0 {
			return types.ErrAppealAlreadyResolved
		}

		entry := &types.AuditLogEntry{
			ActorID:   actor.ID,
			ActorRole: actor.Role,
			Action:    enum.AuditActionAppealResolved,
			TargetID:  appealID,
			Details: map[string]any{
				"decision":    decision.String(),
				"appellantId": appeal.AppellantID,
			},
			CreatedAt: now,
		}

		_, err = tx.NewInsert().Model(entry).Exec(ctx)

		return err
	})
	if err != nil {
		return nil, err
	}

	appeal.Status = decision
	appeal.ResolvedBy = actor.ID
	appeal.ReviewReason = reviewReason
	appeal.ResolvedAt = now

	s.notifier.AppealResolved(ctx, appeal)

	return appeal, nil
}
