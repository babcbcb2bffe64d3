package service_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sendou-ink/sendou-pages/internal/domain"
	"github.com/sendou-ink/sendou-pages/internal/repository/repotest"
	"github.com/sendou-ink/sendou-pages/internal/service"
)

func TestSearchService_SearchTerms(t *testing.T) {
	searchService, err := service.NewSearchService(nil)
	require.NoError(t, err)

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"single term", "sendou", []string{"sendou"}},
		{"multiple terms", "sendou olive", []string{"sendou", "olive"}},
		{"quoted phrase", `"Team Olive" sendou`, []string{"Team Olive", "sendou"}},
		{"blank", "   ", []string{}},
		{"unbalanced quote", `"team olive`, []string{"team", "olive"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, searchService.SearchTerms(tt.query))
		})
	}
}

func TestRankUsers(t *testing.T) {
	users := []domain.UserSummary{
		{ID: 1, DiscordName: "Sendouuu"},
		{ID: 2, DiscordName: "Sendou", InGameName: repotest.Ptr("Olive")},
		{ID: 3, DiscordName: "Other"},
	}

	t.Run("closest match first", func(t *testing.T) {
		got := service.RankUsers([]string{"sendou"}, users, 10)
		require.Len(t, got, 2)
		assert.Equal(t, 2, got[0].ID)
		assert.Equal(t, 1, got[1].ID)
	})

	t.Run("every term must match", func(t *testing.T) {
		got := service.RankUsers([]string{"sendou", "olive"}, users, 10)
		require.Len(t, got, 1)
		assert.Equal(t, 2, got[0].ID)
	})

	t.Run("limit", func(t *testing.T) {
		got := service.RankUsers([]string{"sendou"}, users, 1)
		assert.Len(t, got, 1)
	})

	t.Run("no match", func(t *testing.T) {
		got := service.RankUsers([]string{"xyz"}, users, 10)
		assert.Empty(t, got)
	})
}

func TestSearchService_SearchUsers(t *testing.T) {
	db := repotest.SetupTestDB(t)
	ctx := context.Background()

	searchService, err := service.NewSearchService(db)
	require.NoError(t, err)

	for i := 0; i < service.MaxSearchResults+5; i++ {
		repotest.CreateUser(t, db, fmt.Sprintf("%d", 100+i), fmt.Sprintf("Player%d", i))
	}
	repotest.CreateUser(t, db, "1", "Sendou", func(u *domain.User) {
		u.CustomURL = repotest.Ptr("sendou")
	})
	repotest.CreateUser(t, db, "2", "cool_player")

	t.Run("success - finds by name", func(t *testing.T) {
		got, err := searchService.SearchUsers(ctx, "send")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Sendou", got[0].DiscordName)
	})

	t.Run("success - typo still matches", func(t *testing.T) {
		got, err := searchService.SearchUsers(ctx, "sndou")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Sendou", got[0].DiscordName)
	})

	t.Run("success - underscore in name", func(t *testing.T) {
		got, err := searchService.SearchUsers(ctx, "cool_player")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "cool_player", got[0].DiscordName)
	})

	t.Run("success - capped results", func(t *testing.T) {
		got, err := searchService.SearchUsers(ctx, "player")
		require.NoError(t, err)
		assert.Len(t, got, service.MaxSearchResults)
	})

	t.Run("success - empty query", func(t *testing.T) {
		got, err := searchService.SearchUsers(ctx, "")
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}
