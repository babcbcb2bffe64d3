package seed_test

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sendou-ink/sendou-pages/internal/domain"
	"github.com/sendou-ink/sendou-pages/internal/repository/repotest"
	"github.com/sendou-ink/sendou-pages/internal/repository/user"
	"github.com/sendou-ink/sendou-pages/internal/seed"
	"github.com/sendou-ink/sendou-pages/internal/service"
)

func loadFixture(t *testing.T) *seed.Fixture {
	t.Helper()
	file, err := os.Open("testdata/fixture.yaml")
	require.NoError(t, err)
	defer func() { _ = file.Close() }()

	f, err := seed.Parse(file)
	require.NoError(t, err)
	return f
}

func TestParse(t *testing.T) {
	t.Run("success - fixture file", func(t *testing.T) {
		f := loadFixture(t)
		require.Len(t, f.Users, 3)
		require.Len(t, f.Teams, 1)
		require.Len(t, f.Groups, 1)
		assert.Equal(t, []int{40, 1010}, f.Users[0].Weapons)
		assert.Equal(t, "SUPPORT", f.Teams[0].Members[1].Role)
		assert.Equal(t, []string{"2", "3"}, f.Groups[0].Trusts)
	})

	t.Run("success - empty input", func(t *testing.T) {
		f, err := seed.Parse(strings.NewReader(""))
		require.NoError(t, err)
		assert.Empty(t, f.Users)
	})

	t.Run("error - unknown field", func(t *testing.T) {
		_, err := seed.Parse(strings.NewReader("users:\n  - discordId: \"1\"\n    nmae: typo\n"))
		assert.Error(t, err)
	})
}

func TestSeeder_Apply(t *testing.T) {
	db := repotest.SetupTestDB(t)
	ctx := context.Background()
	seeder := seed.NewSeeder(db, zap.NewNop())
	fixture := loadFixture(t)

	t.Run("success - creates everything", func(t *testing.T) {
		res, err := seeder.Apply(ctx, fixture)
		require.NoError(t, err)
		assert.Equal(t, seed.Result{Users: 3, Teams: 1, Groups: 1, Trusts: 2}, res)

		sendou, err := user.FindByIdentifier(ctx, db, "sendou")
		require.NoError(t, err)
		assert.Equal(t, "79237403620945920", sendou.DiscordID)

		weapons, err := user.Weapons(ctx, db, sendou.ID)
		require.NoError(t, err)
		assert.Equal(t, []domain.UserWeapon{
			{WeaponSplID: 40, IsFavorite: true},
			{WeaponSplID: 1010},
		}, weapons)

		team, err := service.NewTeamService(db).GetTeam(ctx, "team-olive")
		require.NoError(t, err)
		assert.Equal(t, "Team Olive", team.Name)
		assert.Len(t, team.Members, 2)

		preparing, err := service.NewGroupService(db).GetPreparing(ctx, &domain.Viewer{ID: sendou.ID})
		require.NoError(t, err)
		require.Len(t, preparing.Group.Members, 1)
		assert.Equal(t, domain.GroupRoleOwner, preparing.Group.Members[0].Role)

		names := make([]string, 0, len(preparing.TrustedPlayers))
		for _, p := range preparing.TrustedPlayers {
			names = append(names, p.DiscordName)
		}
		assert.ElementsMatch(t, []string{"cool_player", "Friend"}, names)
	})

	t.Run("success - second run skips existing rows", func(t *testing.T) {
		res, err := seeder.Apply(ctx, fixture)
		require.NoError(t, err)
		assert.Equal(t, seed.Result{Skipped: 7}, res)
	})
}

func TestSeeder_Apply_Errors(t *testing.T) {
	tests := []struct {
		name    string
		fixture seed.Fixture
		wantErr error
	}{
		{
			name:    "user without name",
			fixture: seed.Fixture{Users: []seed.UserFixture{{DiscordID: "1"}}},
		},
		{
			name: "unknown team member",
			fixture: seed.Fixture{Teams: []seed.TeamFixture{{
				Name:      "Ghosts",
				CustomURL: "ghosts",
				Members:   []seed.MemberFixture{{DiscordID: "404"}},
			}}},
			wantErr: service.ErrUserNotFound,
		},
		{
			name: "invalid role",
			fixture: seed.Fixture{
				Users: []seed.UserFixture{{DiscordID: "1", Name: "One"}},
				Teams: []seed.TeamFixture{{
					Name:      "Team",
					CustomURL: "team",
					Members:   []seed.MemberFixture{{DiscordID: "1", Role: "SNIPER"}},
				}},
			},
		},
		{
			name: "team name too short",
			fixture: seed.Fixture{Teams: []seed.TeamFixture{{
				Name:      "x",
				CustomURL: "x",
			}}},
		},
		{
			name:    "unknown group owner",
			fixture: seed.Fixture{Groups: []seed.GroupFixture{{Owner: "404"}}},
			wantErr: service.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := repotest.SetupTestDB(t)
			_, err := seed.NewSeeder(db, zap.NewNop()).Apply(context.Background(), &tt.fixture)
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
