package enum

// Category represents the violation category attached to a report.
//
//go:generate go tool enumer -type=Category -trimprefix=Category
type Category int

const (
	// CategoryHateSpeech covers slurs and attacks on protected groups.
	CategoryHateSpeech Category = iota
	// CategoryThreats covers threats of violence against a person.
	CategoryThreats
	// CategoryDoxxing covers publishing private identifying information.
	CategoryDoxxing
	// CategoryHarassment covers targeted repeated abuse.
	CategoryHarassment
	// CategorySexualContent covers sexual content violations.
	CategorySexualContent
	// CategoryViolence covers glorification or incitement of violence.
	CategoryViolence
	// CategorySpam covers unsolicited repetitive content.
	CategorySpam
	// CategoryMisinformation covers demonstrably false claims.
	CategoryMisinformation
	// CategoryTrolling covers bad-faith disruptive posting.
	CategoryTrolling
	// CategoryOther covers violations outside the fixed set.
	CategoryOther
)

// Severity represents the priority tier derived from a violation category.
// Values are ordered so that a numeric sort ranks higher tiers last.
//
//go:generate go tool enumer -type=Severity -trimprefix=Severity
type Severity int

const (
	SeverityLow Severity = iota
	SeverityMedium
	SeverityHigh
	SeverityCritical
)

// ReportStatus represents the lifecycle state of a report.
//
//go:generate go tool enumer -type=ReportStatus -trimprefix=ReportStatus
type ReportStatus int

const (
	// ReportStatusPending indicates the report awaits review.
	ReportStatusPending ReportStatus = iota
	// ReportStatusUnderReview indicates a moderator claimed the report.
	ReportStatusUnderReview
	// ReportStatusResolved indicates a moderation action closed the report.
	ReportStatusResolved
	// ReportStatusDismissed indicates the report was closed without action.
	ReportStatusDismissed
)

// IsClosed reports whether the status is terminal.
func (s ReportStatus) IsClosed() bool {
	return s == ReportStatusResolved || s == ReportStatusDismissed
}

// ContentType represents the kind of content item a report targets.
//
//go:generate go tool enumer -type=ContentType -trimprefix=ContentType
type ContentType int

const (
	ContentTypePost ContentType = iota
	ContentTypeComment
	ContentTypeTopic
)

// QueueSortBy represents different ways to sort the moderation queue.
//
//go:generate go tool enumer -type=QueueSortBy -trimprefix=QueueSortBy
type QueueSortBy int

const (
	// QueueSortByNewest orders reports by submission time, newest first.
	QueueSortByNewest QueueSortBy = iota
	// QueueSortBySeverity orders reports by severity tier, critical first.
	QueueSortBySeverity
	// QueueSortByReportCount orders reports by distinct reporter count.
	QueueSortByReportCount
)
