// Package auth holds the identity contract the moderation core consumes.
// Credential resolution happens upstream; the core only ever sees a
// fully-resolved Actor.
package auth

import (
	"slices"

	"github.com/arbiterhq/arbiter/internal/database/types/enum"
)

// Actor is the resolved identity performing an operation.
type Actor struct {
	ID          uint64         // Stable actor identifier
	Role        enum.ActorRole // Role resolved by the identity collaborator
	Communities []uint64       // Assigned communities (moderators only)
}

// IsAdmin reports whether the actor moderates platform-wide.
func (a Actor) IsAdmin() bool {
	return a.Role == enum.ActorRoleAdministrator
}

// CanModerate reports whether the actor's jurisdiction covers a community.
// Administrators are unscoped; community 0 denotes platform-level targets
// which only administrators may act on.
func (a Actor) CanModerate(communityID uint64) bool {
	if a.IsAdmin() {
		return true
	}

	if a.Role != enum.ActorRoleModerator || communityID == 0 {
		return false
	}

	return slices.Contains(a.Communities, communityID)
}

// ScopeCommunities intersects a requested community set with the actor's
// jurisdiction. An empty request means "everything I am allowed to see".
// Administrators pass the request through unchanged (empty meaning unscoped).
// The second return value is false when a moderator's intersection is empty,
// which callers surface as an empty result rather than an error.
func (a Actor) ScopeCommunities(requested []uint64) ([]uint64, bool) {
	if a.IsAdmin() {
		return requested, true
	}

	if len(a.Communities) == 0 {
		return nil, false
	}

	if len(requested) == 0 {
		return slices.Clone(a.Communities), true
	}

	scoped := make([]uint64, 0, len(requested))
	for _, id := range requested {
		if slices.Contains(a.Communities, id) {
			scoped = append(scoped, id)
		}
	}

	if len(scoped) == 0 {
		return nil, false
	}

	return scoped, true
}
