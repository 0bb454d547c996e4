package migrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		indexes := []string{
			// Queue listings filter on status/severity/community and sort
			// on creation time, severity or reporter count.
			`CREATE INDEX IF NOT EXISTS idx_reports_status_community
				ON reports (status, community_id, created_at DESC)`,
			`CREATE INDEX IF NOT EXISTS idx_reports_severity
				ON reports (severity DESC, created_at DESC)`,
			`CREATE INDEX IF NOT EXISTS idx_reports_distinct_reporters
				ON reports (distinct_reporters DESC, created_at DESC)`,
			// A reporter may hold at most one open report per target. These
			// unique predicates are the authoritative guard; the service
			// maps violations to the duplicate-report error.
			`CREATE UNIQUE INDEX IF NOT EXISTS idx_reports_reporter_content
				ON reports (reporter_id, target_content_id)
				WHERE status IN (0, 1) AND target_content_id IS NOT NULL`,
			`CREATE UNIQUE INDEX IF NOT EXISTS idx_reports_reporter_user
				ON reports (reporter_id, target_user_id)
				WHERE status IN (0, 1) AND target_user_id IS NOT NULL`,

			// Action lookups by report and by target user.
			`CREATE INDEX IF NOT EXISTS idx_actions_report
				ON moderation_actions (report_id)`,
			`CREATE INDEX IF NOT EXISTS idx_actions_target_user
				ON moderation_actions (target_user_id, created_at DESC)`,

			// The expiry worker scans active bounded sanctions by end date.
			`CREATE INDEX IF NOT EXISTS idx_sanctions_due
				ON sanctions (end_at) WHERE is_active AND NOT is_permanent`,
			`CREATE INDEX IF NOT EXISTS idx_sanctions_user
				ON sanctions (user_id, created_at DESC)`,

			// One pending appeal per appellant and target.
			`CREATE INDEX IF NOT EXISTS idx_appeals_appellant
				ON appeals (appellant_id, status)`,

			// Audit searches filter on actor, action and time range.
			`CREATE INDEX IF NOT EXISTS idx_audit_actor
				ON audit_log_entries (actor_id, created_at DESC)`,
			`CREATE INDEX IF NOT EXISTS idx_audit_action
				ON audit_log_entries (action, created_at DESC)`,
		}

		for _, index := range indexes {
			if _, err := db.ExecContext(ctx, index); err != nil {
				return fmt.Errorf("failed to create index: %w", err)
			}
		}

		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		indexes := []string{
			"idx_reports_status_community",
			"idx_reports_severity",
			"idx_reports_distinct_reporters",
			"idx_reports_reporter_content",
			"idx_reports_reporter_user",
			"idx_actions_report",
			"idx_actions_target_user",
			"idx_sanctions_due",
			"idx_sanctions_user",
			"idx_appeals_appellant",
			"idx_audit_actor",
			"idx_audit_action",
		}

		for _, index := range indexes {
			if _, err := db.ExecContext(ctx, "DROP INDEX IF EXISTS "+index); err != nil {
				return fmt.Errorf("failed to drop index: %w", err)
			}
		}

		return nil
	})
}
