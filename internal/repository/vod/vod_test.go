package vod_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sendou-ink/sendou-pages/internal/domain"
	"github.com/sendou-ink/sendou-pages/internal/repository/repotest"
	"github.com/sendou-ink/sendou-pages/internal/repository/vod"
)

func TestGet_WithUserPov(t *testing.T) {
	db := repotest.SetupTestDB(t)
	ctx := context.Background()

	submitter := repotest.CreateUser(t, db, "1", "Submitter")
	pov := repotest.CreateUser(t, db, "2", "Pov")

	created := &domain.Vod{
		Title:           "Grand finals",
		Type:            domain.VodTypeTournament,
		YoutubeID:       "dQw4w9WgXcQ",
		YoutubeDate:     1700000000,
		SubmitterUserID: submitter.ID,
		Pov:             &domain.VodPov{User: &domain.UserSummary{ID: pov.ID}},
		Matches: []domain.VodMatch{
			{Mode: domain.ModeSZ, StageID: 1, StartsAt: 90, Weapons: []int{40}},
			{Mode: domain.ModeTC, StageID: 2, StartsAt: 600, Weapons: []int{41}},
		},
	}
	require.NoError(t, vod.Create(ctx, db, created))

	got, err := vod.Get(ctx, db, created.ID)
	require.NoError(t, err)

	assert.Equal(t, "Grand finals", got.Title)
	assert.Equal(t, domain.VodTypeTournament, got.Type)
	assert.Equal(t, int64(1700000000), got.YoutubeDate)
	require.Len(t, got.Matches, 2)
	assert.Equal(t, 90, got.Matches[0].StartsAt)
	assert.Equal(t, []int{40}, got.Matches[0].Weapons)
	assert.Equal(t, domain.ModeTC, got.Matches[1].Mode)

	require.NotNil(t, got.Pov)
	require.NotNil(t, got.Pov.User)
	assert.Equal(t, "Pov", got.Pov.User.DiscordName)
	assert.Equal(t, pov.ID, *got.Pov.UserID())

	vods, err := vod.FindByUserID(ctx, db, pov.ID)
	require.NoError(t, err)
	require.Len(t, vods, 1)
	assert.Equal(t, created.ID, vods[0].ID)
}

func TestGet_Cast(t *testing.T) {
	db := repotest.SetupTestDB(t)
	ctx := context.Background()

	submitter := repotest.CreateUser(t, db, "1", "Submitter")

	created := &domain.Vod{
		Title:           "Cast",
		Type:            domain.VodTypeCast,
		YoutubeID:       "abc",
		SubmitterUserID: submitter.ID,
		Matches: []domain.VodMatch{
			{Mode: domain.ModeRM, StageID: 3, StartsAt: 0, Weapons: []int{1, 2, 3, 4, 5, 6, 7, 8}},
		},
	}
	require.NoError(t, vod.Create(ctx, db, created))

	got, err := vod.Get(ctx, db, created.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Pov)
	require.Len(t, got.Matches, 1)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, got.Matches[0].Weapons)
}

func TestGet_NamedPov(t *testing.T) {
	db := repotest.SetupTestDB(t)
	ctx := context.Background()

	submitter := repotest.CreateUser(t, db, "1", "Submitter")

	created := &domain.Vod{
		Title:           "Scrim",
		Type:            domain.VodTypeScrim,
		YoutubeID:       "xyz",
		SubmitterUserID: submitter.ID,
		Pov:             &domain.VodPov{Name: "Guest"},
		Matches:         []domain.VodMatch{{Mode: domain.ModeCB, StageID: 4, Weapons: []int{10}}},
	}
	require.NoError(t, vod.Create(ctx, db, created))

	got, err := vod.Get(ctx, db, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Pov)
	assert.Nil(t, got.Pov.User)
	assert.Equal(t, "Guest", got.Pov.Name)
	assert.Nil(t, got.Pov.UserID())

	_, err = vod.Get(ctx, db, created.ID+1)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}
