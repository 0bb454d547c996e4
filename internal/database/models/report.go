package models

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/arbiterhq/arbiter/internal/database/dbretry"
	"github.com/arbiterhq/arbiter/internal/database/types"
	"github.com/arbiterhq/arbiter/internal/database/types/enum"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// ReportModel handles database operations for reports.
type ReportModel struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewReport creates a new ReportModel instance.
func NewReport(db *bun.DB, logger *zap.Logger) *ReportModel {
	return &ReportModel{
		db:     db,
		logger: logger.Named("db_report"),
	}
}

// GetByID retrieves a report by its id.
func (m *ReportModel) GetByID(ctx context.Context, id int64) (*types.Report, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) (*types.Report, error) {
		var report types.Report

		err := m.db.NewSelect().
			Model(&report).
			Where("id = ?", id).
			Scan(ctx)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, types.ErrReportNotFound
			}

			return nil, fmt.Errorf("failed to get report: %w", err)
		}

		return &report, nil
	})
}

// HasUnresolved checks whether a reporter already has an open report against
// the given target. Used for duplicate rejection.
func (m *ReportModel) HasUnresolved(ctx context.Context, reporterID uint64, target types.ReportTarget) (bool, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) (bool, error) {
		query := m.db.NewSelect().
			Model((*types.Report)(nil)).
			Where("reporter_id = ?", reporterID).
			Where("status IN (?)", bun.In([]enum.ReportStatus{
				enum.ReportStatusPending,
				enum.ReportStatusUnderReview,
			}))

		if target.IsContent() {
			query = query.Where("target_content_id = ?", target.ContentID)
		} else {
			query = query.Where("target_user_id = ?", target.UserID)
		}

		exists, err := query.Exists(ctx)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return false, fmt.Errorf("failed to check for duplicate report: %w", err)
		}

		return exists, nil
	})
}

// SyncDistinctReporters writes the current tally onto every report row for
// the given content item, so queue sorting and the high-priority filter see
// the same count on old and new rows.
func (m *ReportModel) SyncDistinctReporters(ctx context.Context, contentID uint64, count int) error {
	return dbretry.NoResult(ctx, func(ctx context.Context) error {
		_, err := m.db.NewUpdate().
			Model((*types.Report)(nil)).
			Set("distinct_reporters = ?", count).
			Where("target_content_id = ?", contentID).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to sync distinct reporters: %w", err)
		}

		return nil
	})
}

// List retrieves reports matching the filter along with the total match
// count. The highPriorityThreshold is the distinct-reporter count at which a
// content item is considered high priority.
func (m *ReportModel) List(
	ctx context.Context, filter types.ReportFilter, highPriorityThreshold, limit, offset int,
) ([]*types.Report, int, error) {
	type listResult struct {
		reports []*types.Report
		total   int
	}

	result, err := dbretry.Operation(ctx, func(ctx context.Context) (listResult, error) {
		var reports []*types.Report

		query := m.db.NewSelect().Model(&reports)

		if len(filter.Statuses) > 0 {
			query = query.Where("status IN (?)", bun.In(filter.Statuses))
		}
		if len(filter.Severities) > 0 {
			query = query.Where("severity IN (?)", bun.In(filter.Severities))
		}
		if len(filter.Categories) > 0 {
			query = query.Where("category IN (?)", bun.In(filter.Categories))
		}
		if len(filter.ContentTypes) > 0 {
			query = query.Where("content_type IN (?)", bun.In(filter.ContentTypes))
		}
		if len(filter.CommunityIDs) > 0 {
			query = query.Where("community_id IN (?)", bun.In(filter.CommunityIDs))
		}
		if filter.AssignedModerator != 0 {
			query = query.Where("assigned_moderator = ?", filter.AssignedModerator)
		}
		if filter.HighPriorityOnly {
			query = query.Where("distinct_reporters >= ?", highPriorityThreshold)
		}
		if !filter.StartDate.IsZero() && !filter.EndDate.IsZero() {
			query = query.Where("created_at BETWEEN ? AND ?", filter.StartDate, filter.EndDate)
		}

		switch filter.SortBy {
		case enum.QueueSortBySeverity:
			query = query.Order("severity DESC", "created_at DESC")
		case enum.QueueSortByReportCount:
			query = query.Order("distinct_reporters DESC", "created_at DESC")
		case enum.QueueSortByNewest:
			query = query.Order("created_at DESC")
		}

		total, err := query.Limit(limit).Offset(offset).ScanAndCount(ctx)
		if err != nil {
			return listResult{}, fmt.Errorf("failed to list reports: %w", err)
		}

		return listResult{reports: reports, total: total}, nil
	})
	if err != nil {
		return nil, 0, err
	}

	return result.reports, result.total, nil
}
