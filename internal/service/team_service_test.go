package service_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sendou-ink/sendou-pages/internal/domain"
	"github.com/sendou-ink/sendou-pages/internal/repository/repotest"
	"github.com/sendou-ink/sendou-pages/internal/service"
)

func TestTeamService(t *testing.T) {
	db := repotest.SetupTestDB(t)
	ctx := context.Background()

	teamService := service.NewTeamService(db)

	owner := repotest.CreateUser(t, db, "1", "Owner")
	member := repotest.CreateUser(t, db, "2", "Member")
	support := domain.RoleSupport

	t.Run("success - create and get", func(t *testing.T) {
		err := teamService.CreateTeam(ctx, &domain.Team{
			Name:      "Team Olive",
			CustomURL: "team-olive",
			Members: []domain.TeamMember{
				{UserSummary: domain.UserSummary{ID: owner.ID}, IsOwner: true},
				{UserSummary: domain.UserSummary{ID: member.ID}, Role: &support},
			},
		})
		require.NoError(t, err)

		got, err := teamService.GetTeam(ctx, "TEAM-OLIVE")
		require.NoError(t, err)
		assert.Equal(t, "Team Olive", got.Name)
		require.Len(t, got.Members, 2)
		assert.True(t, got.Members[0].IsOwner)
	})

	t.Run("error - team exists", func(t *testing.T) {
		err := teamService.CreateTeam(ctx, &domain.Team{Name: "Other", CustomURL: "team-olive"})
		assert.ErrorIs(t, err, service.ErrTeamExists)
	})

	t.Run("error - unknown member", func(t *testing.T) {
		err := teamService.CreateTeam(ctx, &domain.Team{
			Name:      "Ghosts",
			CustomURL: "ghosts",
			Members:   []domain.TeamMember{{UserSummary: domain.UserSummary{ID: 9999}}},
		})
		assert.ErrorIs(t, err, service.ErrUserNotFound)

		_, err = teamService.GetTeam(ctx, "ghosts")
		assert.ErrorIs(t, err, service.ErrTeamNotFound)
	})

	t.Run("error - invalid name", func(t *testing.T) {
		err := teamService.CreateTeam(ctx, &domain.Team{Name: strings.Repeat("x", domain.TeamNameMaxLength+1), CustomURL: "long"})
		assert.Error(t, err)
	})

	t.Run("error - team not found", func(t *testing.T) {
		_, err := teamService.GetTeam(ctx, "missing")
		assert.ErrorIs(t, err, service.ErrTeamNotFound)
	})
}
