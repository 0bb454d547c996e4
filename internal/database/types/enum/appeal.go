package enum

// AppealType represents the kind of record an appeal contests.
//
//go:generate go tool enumer -type=AppealType -trimprefix=AppealType
type AppealType int

const (
	// AppealTypeAction contests a moderation action directly.
	AppealTypeAction AppealType = iota
	// AppealTypeSanction contests a suspension or ban.
	AppealTypeSanction
)

// AppealStatus represents the status of an appeal.
//
//go:generate go tool enumer -type=AppealStatus -trimprefix=AppealStatus
type AppealStatus int

const (
	AppealStatusPending AppealStatus = iota
	AppealStatusAccepted
	AppealStatusRejected
)

// IsDecision reports whether the status is a terminal reviewer decision.
func (s AppealStatus) IsDecision() bool {
	return s == AppealStatusAccepted || s == AppealStatusRejected
}
