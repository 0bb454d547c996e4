package enum

// ActorRole represents the role resolved by the identity collaborator.
//
//go:generate go tool enumer -type=ActorRole -trimprefix=ActorRole
type ActorRole int

const (
	ActorRoleGuest ActorRole = iota
	ActorRoleMember
	ActorRoleModerator
	ActorRoleAdministrator
)

// CanReport reports whether the role may submit reports.
func (r ActorRole) CanReport() bool {
	return r >= ActorRoleMember
}

// IsStaff reports whether the role carries moderation privileges.
func (r ActorRole) IsStaff() bool {
	return r >= ActorRoleModerator
}
