package service

import (
	"context"
	"time"

	"github.com/arbiterhq/arbiter/internal/auth"
	"github.com/arbiterhq/arbiter/internal/database/dbretry"
	"github.com/arbiterhq/arbiter/internal/database/models"
	"github.com/arbiterhq/arbiter/internal/database/types"
	"github.com/arbiterhq/arbiter/internal/database/types/enum"
	"github.com/arbiterhq/arbiter/internal/pagination"
	"github.com/arbiterhq/arbiter/internal/setup/config"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// QueueService handles the moderation queue.
type QueueService struct {
	db     *bun.DB
	model  *models.ReportModel
	config *config.Moderation
	logger *zap.Logger
}

// NewQueue creates a new queue service.
func NewQueue(db *bun.DB, model *models.ReportModel, config *config.Moderation, logger *zap.Logger) *QueueService {
	return &QueueService{
		db:     db,
		model:  model,
		config: config,
		logger: logger.Named("queue_service"),
	}
}

// List returns one page of report summaries visible to the actor. Moderators
// only ever see reports inside their assigned communities; a request that
// scopes out entirely yields an empty page, not an error.
func (s *QueueService) List(
	ctx context.Context, actor auth.Actor, filter types.ReportFilter, params pagination.Params,
) (*pagination.Page[*types.ReportSummary], error) {
	if !actor.Role.IsStaff() {
		return nil, types.ErrForbidden
	}

	params = params.Normalize(s.config.MaxPageLimit)

	scoped, visible := actor.ScopeCommunities(filter.CommunityIDs)
	if !visible {
		return pagination.EmptyPage[*types.ReportSummary](params), nil
	}

	filter.CommunityIDs = scoped

	reports, total, err := s.model.List(
		ctx, filter, s.config.HighPriorityReporters, params.Limit, params.Offset())
	if err != nil {
		return nil, err
	}

	summaries := make([]*types.ReportSummary, len(reports))
	for i, report := range reports {
		summaries[i] = report.Summary()
	}

	return pagination.NewPage(summaries, params, total), nil
}

// Assign claims a report for review, moving it to under-review and recording
// the assignee. Reassignment by another staff member within jurisdiction is a
// takeover, not an error; claiming a closed report is rejected.
func (s *QueueService) Assign(ctx context.Context, actor auth.Actor, reportID int64) (*types.Report, error) {
	if !actor.Role.IsStaff() {
		return nil, types.ErrForbidden
	}

	report, err := s.model.GetByID(ctx, reportID)
	if err != nil {
		return nil, err
	}

	if !actor.CanModerate(report.CommunityID) {
		return nil, types.ErrForbidden
	}

	if report.Status.IsClosed() {
		return nil, types.ErrReportAlreadyResolved
	}

	now := time.Now()

	err = dbretry.Transaction(ctx, s.db, func(ctx context.Context, tx bun.Tx) error {
		res, err := tx.NewUpdate().
			Model((*types.Report)(nil)).
			Set("status = ?", enum.ReportStatusUnderReview).
			Set("assigned_moderator = ?", actor.ID).
			Set("updated_at = ?", now).
			Where("id = ?", reportID).
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

		entry := &types.AuditLogEntry{
			ActorID:   actor.ID,
			ActorRole: actor.Role,
			Action:    enum.AuditActionReportAssigned,
			TargetID:  reportID,
			Details: map[string]any{
				"previousAssignee": report.AssignedModerator,
			},
			CreatedAt: now,
		}

		_, err = tx.NewInsert().Model(entry).Exec(ctx)

		return err
	})
	if err != nil {
		return nil, err
	}

	report.Status = enum.ReportStatusUnderReview
	report.AssignedModerator = actor.ID
	report.UpdatedAt = now

	return report, nil
}
