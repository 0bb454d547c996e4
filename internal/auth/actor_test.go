package auth_test

import (
	"testing"

	"github.com/arbiterhq/arbiter/internal/auth"
	"github.com/arbiterhq/arbiter/internal/database/types/enum"
	"github.com/stretchr/testify/assert"
)

func TestActor_CanModerate(t *testing.T) {
	t.Parallel()

	admin := auth.Actor{ID: 1, Role: enum.ActorRoleAdministrator}
	mod := auth.Actor{ID: 2, Role: enum.ActorRoleModerator, Communities: []uint64{10, 20}}
	member := auth.Actor{ID: 3, Role: enum.ActorRoleMember}

	assert.True(t, admin.CanModerate(10))
	assert.True(t, admin.CanModerate(0), "admins cover platform-level targets")

	assert.True(t, mod.CanModerate(10))
	assert.False(t, mod.CanModerate(30))
	assert.False(t, mod.CanModerate(0), "moderators never cover platform-level targets")

	assert.False(t, member.CanModerate(10))
}

func TestActor_ScopeCommunities(t *testing.T) {
	t.Parallel()

	admin := auth.Actor{ID: 1, Role: enum.ActorRoleAdministrator}
	mod := auth.Actor{ID: 2, Role: enum.ActorRoleModerator, Communities: []uint64{10, 20}}

	tests := []struct {
		name      string
		actor     auth.Actor
		requested []uint64
		want      []uint64
		wantOK    bool
	}{
		{
			name:      "admin unscoped",
			actor:     admin,
			requested: nil,
			want:      nil,
			wantOK:    true,
		},
		{
			name:      "admin passthrough",
			actor:     admin,
			requested: []uint64{5},
			want:      []uint64{5},
			wantOK:    true,
		},
		{
			name:      "moderator default scope",
			actor:     mod,
			requested: nil,
			want:      []uint64{10, 20},
			wantOK:    true,
		},
		{
			name:      "moderator intersect",
			actor:     mod,
			requested: []uint64{20, 30},
			want:      []uint64{20},
			wantOK:    true,
		},
		{
			name:      "moderator disjoint request",
			actor:     mod,
			requested: []uint64{30},
			want:      nil,
			wantOK:    false,
		},
		{
			name:      "moderator without assignments",
			actor:     auth.Actor{ID: 4, Role: enum.ActorRoleModerator},
			requested: []uint64{10},
			want:      nil,
			wantOK:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := tt.actor.ScopeCommunities(tt.requested)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
