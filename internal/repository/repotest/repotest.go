// Package repotest provides databases and fixtures for repository and service tests.
package repotest

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sendou-ink/sendou-pages/internal/config"
	"github.com/sendou-ink/sendou-pages/internal/domain"
	"github.com/sendou-ink/sendou-pages/internal/repository"
	"github.com/sendou-ink/sendou-pages/internal/repository/user"
)

// SetupTestDB returns a migrated, empty database closed at the end of the test.
// An in-memory SQLite database is used unless TEST_DB_DRIVER=postgres, in which
// case the TEST_DB_* variables select the server and all tables are truncated.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	driver := os.Getenv("TEST_DB_DRIVER")
	if driver == "" {
		driver = config.DriverSQLite
	}

	var (
		dsn  string
		pool repository.Pool
	)
	switch driver {
	case config.DriverSQLite:
		dsn = "file::memory:?_pragma=foreign_keys(1)"
		// Every connection to :memory: is a separate database.
		pool = repository.Pool{MaxOpenConns: 1, MaxIdleConns: 1}
	case config.DriverPostgres:
		dsn = fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			getEnv("TEST_DB_HOST", "localhost"),
			getEnv("TEST_DB_PORT", "5432"),
			getEnv("TEST_DB_USER", "sendou"),
			getEnv("TEST_DB_PASSWORD", "sendou"),
			getEnv("TEST_DB_NAME", "sendou_test"),
		)
	default:
		t.Fatalf("unsupported TEST_DB_DRIVER %q", driver)
	}

	db, err := repository.NewDB(driver, dsn, pool)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = repository.Migrate(context.Background(), db, driver)
	require.NoError(t, err)

	if driver == config.DriverPostgres {
		require.NoError(t, cleanupTestDB(db))
	}

	return db
}

// cleanupTestDB truncates all tables to clean up test data.
func cleanupTestDB(db *sql.DB) error {
	tables := []string{
		"trust_relationships",
		"sendouq_group_members",
		"sendouq_groups",
		"art",
		"builds",
		"calendar_event_results",
		"calendar_events",
		"video_match_players",
		"video_matches",
		"videos",
		"x_rank_placements",
		"splatoon_players",
		"badge_managers",
		"badge_owners",
		"badges",
		"team_members",
		"teams",
		"sessions",
		"user_weapons",
		"users",
	}

	for _, table := range tables {
		_, err := db.Exec(fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", table))
		if err != nil {
			return fmt.Errorf("failed to truncate table %s: %w", table, err)
		}
	}

	return nil
}

// CreateUser inserts a user with the given Discord id and name. Opts may adjust
// the user before insertion.
func CreateUser(t *testing.T, exec repository.DBTX, discordID, discordName string, opts ...func(*domain.User)) *domain.User {
	t.Helper()

	u := &domain.User{
		DiscordID:             discordID,
		DiscordName:           discordName,
		DiscordDiscriminator:  "0",
		ShowDiscordUniqueName: true,
	}
	for _, opt := range opts {
		opt(u)
	}

	require.NoError(t, user.Create(context.Background(), exec, u))
	return u
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
