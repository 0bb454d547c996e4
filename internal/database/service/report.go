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
	"github.com/arbiterhq/arbiter/internal/moderation/severity"
	"github.com/arbiterhq/arbiter/internal/tally"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// ReportService handles report intake.
type ReportService struct {
	db      *bun.DB
	model   *models.ReportModel
	tally   *tally.Tracker
	content content.Provider
	logger  *zap.Logger
}

// NewReport creates a new report service.
func NewReport(
	db *bun.DB,
	model *models.ReportModel,
	tracker *tally.Tracker,
	provider content.Provider,
	logger *zap.Logger,
) *ReportService {
	return &ReportService{
		db:      db,
		model:   model,
		tally:   tracker,
		content: provider,
		logger:  logger.Named("report_service"),
	}
}

// SubmitParams are the inputs for a new report.
type SubmitParams struct {
	Actor       auth.Actor
	Target      types.ReportTarget
	Category    enum.Category
	Explanation string
}

// Submit validates and records a new report. The severity tier and table
// version are captured at creation time and never change afterwards. For
// content targets the distinct-reporter tally is updated once the row is
// durable and its count mirrored back onto every row of the content item.
func (s *ReportService) Submit(ctx context.Context, params SubmitParams) (*types.Report, error) {
	if !params.Actor.Role.CanReport() {
		return nil, types.ErrForbidden
	}

	if err := params.Target.Validate(); err != nil {
		return nil, err
	}

	if strings.TrimSpace(params.Explanation) == "" {
		return nil, types.ErrExplanationRequired
	}

	now := time.Now()
	report := &types.Report{
		ReporterID:      params.Actor.ID,
		Category:        params.Category,
		Severity:        severity.Classify(params.Category),
		SeverityVersion: severity.TableVersion,
		Explanation:     params.Explanation,
		Status:          enum.ReportStatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if params.Target.IsContent() {
		snapshot, err := s.content.Snapshot(ctx, params.Target.ContentID)
		if err != nil {
			return nil, err
		}

		if snapshot.AuthorID == params.Actor.ID {
			return nil, types.ErrSelfReportForbidden
		}

		report.TargetContentID = params.Target.ContentID
		report.ContentType = snapshot.ContentType
		report.CommunityID = snapshot.CommunityID
	} else {
		if params.Target.UserID == params.Actor.ID {
			return nil, types.ErrSelfReportForbidden
		}

		// User reports are platform-level; only administrators act on them.
		report.TargetUserID = params.Target.UserID
	}

	exists, err := s.model.HasUnresolved(ctx, params.Actor.ID, params.Target)
	if err != nil {
		return nil, err
	}

	if exists {
		return nil, types.ErrDuplicateReport
	}

	report.DistinctReporters = 1

	err = dbretry.Transaction(ctx, s.db, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewInsert().Model(report).Exec(ctx); err != nil {
			return err
		}

		entry := &types.AuditLogEntry{
			ActorID:   params.Actor.ID,
			ActorRole: params.Actor.Role,
			Action:    enum.AuditActionReportSubmitted,
			TargetID:  report.ID,
			Details: map[string]any{
				"category":        report.Category.String(),
				"severity":        report.Severity.String(),
				"severityVersion": report.SeverityVersion,
				"targetContentId": report.TargetContentID,
				"targetUserId":    report.TargetUserID,
				"communityId":     report.CommunityID,
			},
			CreatedAt: now,
		}

		_, err := tx.NewInsert().Model(entry).Exec(ctx)

		return err
	})
	if err != nil {
		// The partial unique indexes are the authoritative duplicate guard;
		// the existence check above only catches the common case.
		if dbretry.IsUniqueViolation(err) {
			return nil, types.ErrDuplicateReport
		}

		return nil, err
	}

	if params.Target.IsContent() {
		// The tally is only updated once the row is durable, so a rolled
		// back submission never counts. A tally outage must not block
		// intake; the mirror then falls back to counting this reporter.
		count, err := s.tally.Add(ctx, params.Target.ContentID, params.Actor.ID)
		if err != nil {
			s.logger.Warn("Failed to update reporter tally",
				zap.Uint64("contentID", params.Target.ContentID),
				zap.Error(err))
		} else {
			report.DistinctReporters = count

			if err := s.model.SyncDistinctReporters(ctx, params.Target.ContentID, count); err != nil {
				s.logger.Warn("Failed to sync reporter tally mirror",
					zap.Uint64("contentID", params.Target.ContentID),
					zap.Error(err))
			}
		}
	}

	s.logger.Debug("Report submitted",
		zap.Int64("reportID", report.ID),
		zap.String("severity", report.Severity.String()))

	return report, nil
}

// Get retrieves a single report for a staff actor within jurisdiction.
// Out-of-jurisdiction reads are forbidden; only queue listings use the
// empty-result policy.
func (s *ReportService) Get(ctx context.Context, actor auth.Actor, reportID int64) (*types.Report, error) {
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

	return report, nil
}
