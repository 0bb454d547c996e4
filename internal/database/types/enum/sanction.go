package enum

// SanctionType represents the kind of sanction applied to a user.
//
//go:generate go tool enumer -type=SanctionType -trimprefix=SanctionType
type SanctionType int

const (
	// SanctionTypeSuspension is a time-bounded exclusion.
	SanctionTypeSuspension SanctionType = iota
	// SanctionTypeBan is a permanent platform-wide exclusion.
	SanctionTypeBan
)
