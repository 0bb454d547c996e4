package enum

// AuditAction represents the state-changing operation an audit entry records.
// AuditActionAll is reserved for search filters.
//
//go:generate go tool enumer -type=AuditAction -trimprefix=AuditAction
type AuditAction int

const (
	// AuditActionAll matches every action when filtering.
	AuditActionAll AuditAction = iota
	// AuditActionReportSubmitted records a new report.
	AuditActionReportSubmitted
	// AuditActionReportAssigned records a report being claimed for review.
	AuditActionReportAssigned
	// AuditActionActionApplied records a moderation action decision.
	AuditActionActionApplied
	// AuditActionActionReversed records an administrator reversal.
	AuditActionActionReversed
	// AuditActionSanctionCreated records a new suspension or ban.
	AuditActionSanctionCreated
	// AuditActionSanctionAmended records a reason-only sanction edit.
	AuditActionSanctionAmended
	// AuditActionSanctionLifted records an early lift.
	AuditActionSanctionLifted
	// AuditActionSanctionExpired records a scheduled expiry.
	AuditActionSanctionExpired
	// AuditActionAppealFiled records a new appeal.
	AuditActionAppealFiled
	// AuditActionAppealResolved records an appeal decision.
	AuditActionAppealResolved
	// AuditActionAuditExpanded records an expanded-detail audit search.
	AuditActionAuditExpanded
)
