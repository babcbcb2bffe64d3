package badge_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sendou-ink/sendou-pages/internal/domain"
	"github.com/sendou-ink/sendou-pages/internal/repository/badge"
	"github.com/sendou-ink/sendou-pages/internal/repository/repotest"
)

func TestBadgeOwnersAndManagers(t *testing.T) {
	db := repotest.SetupTestDB(t)
	ctx := context.Background()

	a := repotest.CreateUser(t, db, "1", "A")
	b := repotest.CreateUser(t, db, "2", "B")
	c := repotest.CreateUser(t, db, "3", "C")

	bdg := &domain.Badge{Code: "ITZ", DisplayName: "In The Zone"}
	require.NoError(t, badge.Create(ctx, db, bdg))

	require.NoError(t, badge.AddOwner(ctx, db, bdg.ID, a.ID))
	require.NoError(t, badge.AddOwner(ctx, db, bdg.ID, b.ID))
	require.NoError(t, badge.AddOwner(ctx, db, bdg.ID, b.ID))
	require.NoError(t, badge.AddOwner(ctx, db, bdg.ID, b.ID))
	require.NoError(t, badge.AddManager(ctx, db, bdg.ID, c.ID))

	owners, err := badge.Owners(ctx, db, bdg.ID)
	require.NoError(t, err)
	require.Len(t, owners, 2)
	assert.Equal(t, "B", owners[0].DiscordName)
	assert.Equal(t, 3, owners[0].Count)
	assert.Equal(t, "A", owners[1].DiscordName)
	assert.Equal(t, 1, owners[1].Count)

	managers, err := badge.Managers(ctx, db, bdg.ID)
	require.NoError(t, err)
	require.Len(t, managers, 1)
	assert.Equal(t, c.ID, managers[0].ID)

	owned, err := badge.OwnedByUser(ctx, db, b.ID)
	require.NoError(t, err)
	require.Len(t, owned, 1)
	assert.Equal(t, "ITZ", owned[0].Code)
	assert.Equal(t, 3, owned[0].Count)
}

func TestGet(t *testing.T) {
	db := repotest.SetupTestDB(t)
	ctx := context.Background()

	created := &domain.Badge{Code: "patreon", DisplayName: "Supporter", Hue: repotest.Ptr(120)}
	require.NoError(t, badge.Create(ctx, db, created))

	got, err := badge.Get(ctx, db, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	_, err = badge.Get(ctx, db, created.ID+1)
	assert.ErrorIs(t, err, sql.ErrNoRows)

	all, err := badge.All(ctx, db)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
