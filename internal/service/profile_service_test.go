package service_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sendou-ink/sendou-pages/internal/domain"
	"github.com/sendou-ink/sendou-pages/internal/permissions"
	"github.com/sendou-ink/sendou-pages/internal/repository/art"
	"github.com/sendou-ink/sendou-pages/internal/repository/badge"
	"github.com/sendou-ink/sendou-pages/internal/repository/build"
	"github.com/sendou-ink/sendou-pages/internal/repository/calendar"
	"github.com/sendou-ink/sendou-pages/internal/repository/placement"
	"github.com/sendou-ink/sendou-pages/internal/repository/repotest"
	"github.com/sendou-ink/sendou-pages/internal/repository/user"
	"github.com/sendou-ink/sendou-pages/internal/repository/vod"
	"github.com/sendou-ink/sendou-pages/internal/service"
)

func TestProfileService_GetProfile(t *testing.T) {
	db := repotest.SetupTestDB(t)
	ctx := context.Background()

	profileService := service.NewProfileService(db, permissions.NewPolicy("admin-discord"))

	owner := repotest.CreateUser(t, db, "79237403620945920", "Sendou", func(u *domain.User) {
		u.CustomURL = repotest.Ptr("sendou")
		u.DiscordUniqueName = repotest.Ptr("sendou")
		u.ShowDiscordUniqueName = false
		u.CSS = repotest.Ptr(`{"bg":"#000"}`)
		u.PatronTier = repotest.Ptr(1)
		u.Banned = true
	})
	admin := &domain.Viewer{ID: 999, DiscordID: "admin-discord"}
	ownerViewer := &domain.Viewer{ID: owner.ID, DiscordID: owner.DiscordID}

	require.NoError(t, user.SetWeapons(ctx, db, owner.ID, []domain.UserWeapon{{WeaponSplID: 40, IsFavorite: true}}))

	b := &domain.Badge{Code: "itz", DisplayName: "In The Zone"}
	require.NoError(t, badge.Create(ctx, db, b))
	require.NoError(t, badge.AddOwner(ctx, db, b.ID, owner.ID))

	eventID, err := calendar.CreateEvent(ctx, db, "Event", 1700000000, nil)
	require.NoError(t, err)
	require.NoError(t, calendar.AddResult(ctx, db, eventID, owner.ID, "Team", 1))

	_, err = build.Create(ctx, db, owner.ID, "Public", false)
	require.NoError(t, err)
	_, err = build.Create(ctx, db, owner.ID, "Private", true)
	require.NoError(t, err)

	_, err = art.Create(ctx, db, owner.ID, "https://example.com/a.png")
	require.NoError(t, err)

	require.NoError(t, vod.Create(ctx, db, &domain.Vod{
		Title: "Finals", Type: domain.VodTypeTournament, YoutubeID: "yt", SubmitterUserID: owner.ID,
		Pov:     &domain.VodPov{User: &domain.UserSummary{ID: owner.ID}},
		Matches: []domain.VodMatch{{Mode: domain.ModeSZ, StageID: 1, Weapons: []int{40}}},
	}))

	playerID, err := placement.CreatePlayer(ctx, db, "spl", &owner.ID)
	require.NoError(t, err)
	for _, p := range []domain.Placement{
		{Name: "Sendou", Power: 3000, Rank: 10, Mode: domain.ModeSZ, Region: domain.RegionWest, PlayerID: playerID, Month: 3, Year: 2023},
		{Name: "Sendou", Power: 3100, Rank: 2, Mode: domain.ModeSZ, Region: domain.RegionWest, PlayerID: playerID, Month: 6, Year: 2023},
		{Name: "Sendou", Power: 2800, Rank: 50, Mode: domain.ModeCB, Region: domain.RegionWest, PlayerID: playerID, Month: 6, Year: 2023},
	} {
		require.NoError(t, placement.Create(ctx, db, &p))
	}

	t.Run("success - anonymous viewer", func(t *testing.T) {
		profile, err := profileService.GetProfile(ctx, "SENDOU", nil)
		require.NoError(t, err)

		assert.Equal(t, owner.ID, profile.ID)
		assert.Equal(t, []domain.UserWeapon{{WeaponSplID: 40, IsFavorite: true}}, profile.Weapons)
		require.Len(t, profile.Badges, 1)
		assert.Equal(t, 1, profile.Badges[0].Count)
		assert.Len(t, profile.Results, 1)
		assert.Equal(t, 1, profile.BuildsCount)
		assert.Len(t, profile.Vods, 1)
		assert.Equal(t, 1, profile.ArtCount)

		require.NotNil(t, profile.PlayerID)
		assert.Equal(t, playerID, *profile.PlayerID)
		assert.Equal(t, map[domain.ModeShort]domain.TopPlacement{
			domain.ModeSZ: {Rank: 2, Power: 3100},
			domain.ModeCB: {Rank: 50, Power: 2800},
		}, profile.TopPlacements)

		assert.Nil(t, profile.DiscordUniqueName, "hidden when not shown")
		assert.Nil(t, profile.Banned, "banned only for admins")
		assert.Nil(t, profile.CSS, "patron tier too low")
		assert.False(t, profile.User.Banned)
	})

	t.Run("success - owner sees private builds", func(t *testing.T) {
		profile, err := profileService.GetProfile(ctx, owner.DiscordID, ownerViewer)
		require.NoError(t, err)
		assert.Equal(t, 2, profile.BuildsCount)
	})

	t.Run("success - admin sees banned", func(t *testing.T) {
		profile, err := profileService.GetProfile(ctx, "sendou", admin)
		require.NoError(t, err)
		require.NotNil(t, profile.Banned)
		assert.True(t, *profile.Banned)
	})

	t.Run("success - json shadows raw fields", func(t *testing.T) {
		profile, err := profileService.GetProfile(ctx, "sendou", nil)
		require.NoError(t, err)

		raw, err := json.Marshal(profile)
		require.NoError(t, err)

		var decoded map[string]any
		require.NoError(t, json.Unmarshal(raw, &decoded))
		assert.NotContains(t, decoded, "banned")
		assert.NotContains(t, decoded, "css")
		assert.Nil(t, decoded["discordUniqueName"])
		assert.Equal(t, "Sendou", decoded["discordName"])
	})

	t.Run("error - user not found", func(t *testing.T) {
		_, err := profileService.GetProfile(ctx, "nobody", nil)
		assert.ErrorIs(t, err, service.ErrUserNotFound)
	})
}

func TestProfileService_CustomColors(t *testing.T) {
	db := repotest.SetupTestDB(t)
	ctx := context.Background()

	profileService := service.NewProfileService(db, permissions.NewPolicy(""))

	repotest.CreateUser(t, db, "1", "Patron", func(u *domain.User) {
		u.CSS = repotest.Ptr(`{"bg":"#fff"}`)
		u.PatronTier = repotest.Ptr(2)
	})

	profile, err := profileService.GetProfile(ctx, "1", nil)
	require.NoError(t, err)
	require.NotNil(t, profile.CSS)
	assert.Equal(t, `{"bg":"#fff"}`, *profile.CSS)
	assert.Nil(t, profile.PlayerID)
	assert.Empty(t, profile.TopPlacements)
	assert.Nil(t, profile.Team)
}

func TestTopPlacements(t *testing.T) {
	placements := []domain.Placement{
		{Mode: domain.ModeTC, Power: 3000, Rank: 20},
		{Mode: domain.ModeTC, Power: 3000, Rank: 15},
		{Mode: domain.ModeTC, Power: 2900, Rank: 1},
		{Mode: domain.ModeRM, Power: 2500, Rank: 400},
	}

	assert.Equal(t, map[domain.ModeShort]domain.TopPlacement{
		domain.ModeTC: {Rank: 15, Power: 3000},
		domain.ModeRM: {Rank: 400, Power: 2500},
	}, service.TopPlacements(placements))
}
