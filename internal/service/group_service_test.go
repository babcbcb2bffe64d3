package service_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sendou-ink/sendou-pages/internal/domain"
	"github.com/sendou-ink/sendou-pages/internal/repository/group"
	"github.com/sendou-ink/sendou-pages/internal/repository/repotest"
	"github.com/sendou-ink/sendou-pages/internal/service"
)

func TestGroupService(t *testing.T) {
	db := repotest.SetupTestDB(t)
	ctx := context.Background()

	groupService := service.NewGroupService(db)

	owner := repotest.CreateUser(t, db, "1", "Owner")
	stranger := repotest.CreateUser(t, db, "2", "Stranger")
	trusted := make([]*domain.User, 0, 4)
	for i := 0; i < 4; i++ {
		u := repotest.CreateUser(t, db, fmt.Sprintf("%d", 10+i), fmt.Sprintf("Friend%d", i))
		trusted = append(trusted, u)
	}
	// Trust is symmetric for listing purposes.
	require.NoError(t, group.AddTrust(ctx, db, owner.ID, trusted[0].ID))
	require.NoError(t, group.AddTrust(ctx, db, trusted[1].ID, owner.ID))
	require.NoError(t, group.AddTrust(ctx, db, owner.ID, trusted[2].ID))
	require.NoError(t, group.AddTrust(ctx, db, owner.ID, trusted[3].ID))
	require.NoError(t, group.AddTrust(ctx, db, trusted[0].ID, stranger.ID))

	ownerViewer := &domain.Viewer{ID: owner.ID, DiscordID: owner.DiscordID}

	created, err := groupService.CreateGroup(ctx, owner.ID)
	require.NoError(t, err)
	assert.Len(t, created.InviteCode, 10)
	assert.Equal(t, domain.GroupStatusPreparing, created.Status)
	require.Len(t, created.Members, 1)
	assert.Equal(t, domain.GroupRoleOwner, created.Members[0].Role)

	t.Run("error - not logged in", func(t *testing.T) {
		_, err := groupService.GetPreparing(ctx, nil)
		assert.ErrorIs(t, err, service.ErrNotLoggedIn)

		_, err = groupService.AddTrustedMember(ctx, nil, trusted[0].ID)
		assert.ErrorIs(t, err, service.ErrNotLoggedIn)
	})

	t.Run("error - unknown owner", func(t *testing.T) {
		_, err := groupService.CreateGroup(ctx, 9999)
		assert.ErrorIs(t, err, service.ErrUserNotFound)
	})

	t.Run("error - no group", func(t *testing.T) {
		_, err := groupService.GetPreparing(ctx, &domain.Viewer{ID: stranger.ID})
		assert.ErrorIs(t, err, service.ErrGroupNotFound)
	})

	t.Run("success - trusted players in both directions", func(t *testing.T) {
		got, err := groupService.GetPreparing(ctx, ownerViewer)
		require.NoError(t, err)

		ids := make([]int, 0, len(got.TrustedPlayers))
		for _, p := range got.TrustedPlayers {
			ids = append(ids, p.ID)
		}
		assert.Equal(t, []int{trusted[0].ID, trusted[1].ID, trusted[2].ID, trusted[3].ID}, ids)
	})

	t.Run("error - not trusted", func(t *testing.T) {
		_, err := groupService.AddTrustedMember(ctx, ownerViewer, stranger.ID)
		assert.ErrorIs(t, err, service.ErrNotTrusted)
	})

	t.Run("success - add trusted member", func(t *testing.T) {
		g, err := groupService.AddTrustedMember(ctx, ownerViewer, trusted[0].ID)
		require.NoError(t, err)
		require.Len(t, g.Members, 2)
		role, ok := g.RoleOf(trusted[0].ID)
		assert.True(t, ok)
		assert.Equal(t, domain.GroupRoleRegular, role)

		got, err := groupService.GetPreparing(ctx, ownerViewer)
		require.NoError(t, err)
		assert.Len(t, got.TrustedPlayers, 3)
	})

	t.Run("error - regular member cannot add", func(t *testing.T) {
		_, err := groupService.AddTrustedMember(ctx, &domain.Viewer{ID: trusted[0].ID}, stranger.ID)
		assert.ErrorIs(t, err, service.ErrNotManager)
	})

	t.Run("error - group full", func(t *testing.T) {
		_, err := groupService.AddTrustedMember(ctx, ownerViewer, trusted[1].ID)
		require.NoError(t, err)
		_, err = groupService.AddTrustedMember(ctx, ownerViewer, trusted[2].ID)
		require.NoError(t, err)

		got, err := groupService.GetPreparing(ctx, ownerViewer)
		require.NoError(t, err)
		assert.True(t, got.Group.IsFull())
		assert.Empty(t, got.TrustedPlayers)

		_, err = groupService.AddTrustedMember(ctx, ownerViewer, trusted[3].ID)
		assert.ErrorIs(t, err, service.ErrGroupFull)
	})
}
