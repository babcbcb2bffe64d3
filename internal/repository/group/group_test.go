package group_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sendou-ink/sendou-pages/internal/domain"
	"github.com/sendou-ink/sendou-pages/internal/repository/group"
	"github.com/sendou-ink/sendou-pages/internal/repository/repotest"
)

func TestFindPreparingByMember(t *testing.T) {
	db := repotest.SetupTestDB(t)
	ctx := context.Background()

	owner := repotest.CreateUser(t, db, "1", "Owner")
	regular := repotest.CreateUser(t, db, "2", "Regular")
	outsider := repotest.CreateUser(t, db, "3", "Outsider")

	g := &domain.Group{InviteCode: "abc123", Status: domain.GroupStatusPreparing}
	require.NoError(t, group.Create(ctx, db, g))
	require.NoError(t, group.AddMember(ctx, db, g.ID, regular.ID, domain.GroupRoleRegular))
	require.NoError(t, group.AddMember(ctx, db, g.ID, owner.ID, domain.GroupRoleOwner))

	got, err := group.FindPreparingByMember(ctx, db, regular.ID)
	require.NoError(t, err)
	assert.Equal(t, "abc123", got.InviteCode)
	assert.Equal(t, domain.GroupStatusPreparing, got.Status)
	require.Len(t, got.Members, 2)
	assert.Equal(t, domain.GroupRoleOwner, got.Members[0].Role)
	assert.Equal(t, "Owner", got.Members[0].DiscordName)

	_, err = group.FindPreparingByMember(ctx, db, outsider.ID)
	assert.ErrorIs(t, err, sql.ErrNoRows)

	active := &domain.Group{InviteCode: "def456", Status: domain.GroupStatusActive}
	require.NoError(t, group.Create(ctx, db, active))
	require.NoError(t, group.AddMember(ctx, db, active.ID, outsider.ID, domain.GroupRoleOwner))

	_, err = group.FindPreparingByMember(ctx, db, outsider.ID)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestTrustedPlayers(t *testing.T) {
	db := repotest.SetupTestDB(t)
	ctx := context.Background()

	me := repotest.CreateUser(t, db, "1", "Me")
	trustsMe := repotest.CreateUser(t, db, "2", "Bravo")
	trustedByMe := repotest.CreateUser(t, db, "3", "Alpha")
	inGroup := repotest.CreateUser(t, db, "4", "Charlie")
	repotest.CreateUser(t, db, "5", "Stranger")

	require.NoError(t, group.AddTrust(ctx, db, trustsMe.ID, me.ID))
	require.NoError(t, group.AddTrust(ctx, db, me.ID, trustedByMe.ID))
	require.NoError(t, group.AddTrust(ctx, db, me.ID, inGroup.ID))

	g := &domain.Group{InviteCode: "code", Status: domain.GroupStatusPreparing}
	require.NoError(t, group.Create(ctx, db, g))
	require.NoError(t, group.AddMember(ctx, db, g.ID, me.ID, domain.GroupRoleOwner))
	require.NoError(t, group.AddMember(ctx, db, g.ID, inGroup.ID, domain.GroupRoleRegular))

	players, err := group.TrustedPlayers(ctx, db, me.ID, g.ID)
	require.NoError(t, err)
	assert.Equal(t, []domain.TrustedPlayer{
		{ID: trustedByMe.ID, DiscordName: "Alpha"},
		{ID: trustsMe.ID, DiscordName: "Bravo"},
	}, players)
}
