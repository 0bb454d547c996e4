package types

import (
	"errors"
	"time"

	"github.com/arbiterhq/arbiter/internal/database/types/enum"
)

var (
	ErrReportNotFound        = errors.New("report not found")
	ErrInvalidTarget         = errors.New("report must target exactly one of content or user")
	ErrSelfReportForbidden   = errors.New("reporter cannot report their own content")
	ErrDuplicateReport       = errors.New("reporter already has an unresolved report for this target")
	ErrExplanationRequired   = errors.New("report explanation must not be empty")
	ErrReportAlreadyResolved = errors.New("report is already resolved or dismissed")
)

// Report represents a flag raised against a content item or a user.
// Reports are never physically deleted; terminal states are retained for audit.
type Report struct {
	ID                int64             `bun:",pk,autoincrement"` // Unique numeric identifier
	ReporterID        uint64            `bun:",notnull"`          // Actor who submitted the report
	TargetContentID   uint64            `bun:",nullzero"`         // Reported content item (0 if user report)
	TargetUserID      uint64            `bun:",nullzero"`         // Reported user (0 if content report)
	ContentType       enum.ContentType  `bun:",nullzero"`         // Kind of reported content
	Category          enum.Category     `bun:",notnull"`          // Violation category chosen by the reporter
	Severity          enum.Severity     `bun:",notnull"`          // Tier derived from category at creation, immutable
	SeverityVersion   int               `bun:",notnull"`          // Classifier table version captured at creation
	Explanation       string            `bun:",notnull"`          // Free-text justification from the reporter
	Status            enum.ReportStatus `bun:",notnull"`          // Lifecycle state, advanced only by the action engine
	AssignedModerator uint64            `bun:",nullzero"`         // Moderator who claimed the report
	CommunityID       uint64            `bun:",nullzero"`         // Jurisdiction (0 for platform-level targets)
	DistinctReporters int               `bun:",notnull"`          // Mirror of the Redis distinct-reporter tally
	CreatedAt         time.Time         `bun:",notnull"`          // When the report was submitted
	UpdatedAt         time.Time         `bun:",notnull"`          // When the report last changed state
}

// ReportTarget identifies the single subject of a report.
type ReportTarget struct {
	ContentID   uint64
	ContentType enum.ContentType
	UserID      uint64
}

// Validate enforces the exactly-one-target rule.
func (t ReportTarget) Validate() error {
	if (t.ContentID == 0) == (t.UserID == 0) {
		return ErrInvalidTarget
	}

	return nil
}

// IsContent reports whether the target is a content item.
func (t ReportTarget) IsContent() bool {
	return t.ContentID != 0
}

// ReportFilter restricts a moderation queue listing.
// Empty slices match everything for that dimension.
type ReportFilter struct {
	Statuses          []enum.ReportStatus
	Severities        []enum.Severity
	Categories        []enum.Category
	ContentTypes      []enum.ContentType
	CommunityIDs      []uint64
	AssignedModerator uint64
	HighPriorityOnly  bool
	StartDate         time.Time
	EndDate           time.Time
	SortBy            enum.QueueSortBy
}

// ReportSummary is the queue projection of a report.
type ReportSummary struct {
	ID                int64             `json:"id"`
	TargetContentID   uint64            `json:"targetContentId,omitempty"`
	TargetUserID      uint64            `json:"targetUserId,omitempty"`
	ContentType       enum.ContentType  `json:"contentType"`
	Category          enum.Category     `json:"category"`
	Severity          enum.Severity     `json:"severity"`
	Status            enum.ReportStatus `json:"status"`
	AssignedModerator uint64            `json:"assignedModerator,omitempty"`
	CommunityID       uint64            `json:"communityId,omitempty"`
	DistinctReporters int               `json:"distinctReporters"`
	CreatedAt         time.Time         `json:"createdAt"`
}

// Summary converts a report row to its queue projection.
func (r *Report) Summary() *ReportSummary {
	return &ReportSummary{
		ID:                r.ID,
		TargetContentID:   r.TargetContentID,
		TargetUserID:      r.TargetUserID,
		ContentType:       r.ContentType,
		Category:          r.Category,
		Severity:          r.Severity,
		Status:            r.Status,
		AssignedModerator: r.AssignedModerator,
		CommunityID:       r.CommunityID,
		DistinctReporters: r.DistinctReporters,
		CreatedAt:         r.CreatedAt,
	}
}
