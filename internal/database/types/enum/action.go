package enum

// ActionType represents the kind of decision recorded by a moderation action.
//
//go:generate go tool enumer -type=ActionType -trimprefix=ActionType
type ActionType int

const (
	// ActionTypeApproveReport confirms a report and resolves it.
	ActionTypeApproveReport ActionType = iota
	// ActionTypeDismissReport closes a report without consequences.
	ActionTypeDismissReport
	// ActionTypeIssueWarning records a formal warning against a user.
	ActionTypeIssueWarning
	// ActionTypeRemoveContent takes the offending content down.
	ActionTypeRemoveContent
	// ActionTypeSuspendUser applies a time-bounded suspension.
	ActionTypeSuspendUser
	// ActionTypeBanUser applies a permanent platform-wide ban.
	ActionTypeBanUser
	// ActionTypeReverseAction marks a prior action as reversed.
	ActionTypeReverseAction
)

// CreatesSanction reports whether the action type produces a durable sanction.
func (a ActionType) CreatesSanction() bool {
	return a == ActionTypeSuspendUser || a == ActionTypeBanUser
}

// ResolvedStatus returns the report status a successful action of this type
// leaves the referenced report in.
func (a ActionType) ResolvedStatus() ReportStatus {
	if a == ActionTypeDismissReport {
		return ReportStatusDismissed
	}

	return ReportStatusResolved
}
