package user

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/sendou-ink/sendou-pages/internal/domain"
	"github.com/sendou-ink/sendou-pages/internal/repository"
)

const userColumns = `
	id, discord_id, discord_name, discord_discriminator, discord_avatar,
	discord_unique_name, show_discord_unique_name, custom_url, in_game_name,
	bio, country, twitch, twitter, youtube_id, motion_sens, stick_sens, css,
	banned, patron_tier, commissions_open, commission_text`

func userDest(u *domain.User) []any {
	return []any{
		&u.ID, &u.DiscordID, &u.DiscordName, &u.DiscordDiscriminator, &u.DiscordAvatar,
		&u.DiscordUniqueName, &u.ShowDiscordUniqueName, &u.CustomURL, &u.InGameName,
		&u.Bio, &u.Country, &u.Twitch, &u.Twitter, &u.YoutubeID, &u.MotionSens, &u.StickSens, &u.CSS,
		&u.Banned, &u.PatronTier, &u.CommissionsOpen, &u.CommissionText,
	}
}

// FindByIdentifier retrieves a user by Discord id or custom URL (case-insensitive).
// Weapons and team are not loaded.
func FindByIdentifier(ctx context.Context, exec repository.DBTX, identifier string) (*domain.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE discord_id = $1 OR LOWER(custom_url) = LOWER($1)
		ORDER BY CASE WHEN discord_id = $1 THEN 0 ELSE 1 END
		LIMIT 1
	`
	var u domain.User
	err := exec.QueryRowContext(ctx, query, identifier).Scan(userDest(&u)...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return &u, nil
}

// Get retrieves a user by id.
func Get(ctx context.Context, exec repository.DBTX, userID int) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	var u domain.User
	err := exec.QueryRowContext(ctx, query, userID).Scan(userDest(&u)...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &u, nil
}

// Create inserts a new user and sets its id.
func Create(ctx context.Context, exec repository.DBTX, u *domain.User) error {
	query := `
		INSERT INTO users (
			discord_id, discord_name, discord_discriminator, discord_avatar,
			discord_unique_name, show_discord_unique_name, custom_url, in_game_name,
			bio, country, twitch, twitter, youtube_id, motion_sens, stick_sens, css,
			banned, patron_tier, commissions_open, commission_text
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
		RETURNING id
	`
	err := exec.QueryRowContext(ctx, query,
		u.DiscordID, u.DiscordName, u.DiscordDiscriminator, u.DiscordAvatar,
		u.DiscordUniqueName, u.ShowDiscordUniqueName, u.CustomURL, u.InGameName,
		u.Bio, u.Country, u.Twitch, u.Twitter, u.YoutubeID, u.MotionSens, u.StickSens, u.CSS,
		u.Banned, u.PatronTier, u.CommissionsOpen, u.CommissionText,
	).Scan(&u.ID)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// Weapons returns the user's weapon pool in display order.
func Weapons(ctx context.Context, exec repository.DBTX, userID int) ([]domain.UserWeapon, error) {
	query := `
		SELECT weapon_spl_id, is_favorite
		FROM user_weapons
		WHERE user_id = $1
		ORDER BY weapon_order
	`
	rows, err := exec.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user weapons: %w", err)
	}
	defer func() { _ = rows.Close() }()

	weapons := make([]domain.UserWeapon, 0)
	for rows.Next() {
		var w domain.UserWeapon
		if err := rows.Scan(&w.WeaponSplID, &w.IsFavorite); err != nil {
			return nil, fmt.Errorf("failed to scan weapon: %w", err)
		}
		weapons = append(weapons, w)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return weapons, nil
}

// SetWeapons replaces the user's weapon pool.
func SetWeapons(ctx context.Context, exec repository.DBTX, userID int, weapons []domain.UserWeapon) error {
	if _, err := exec.ExecContext(ctx, `DELETE FROM user_weapons WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("failed to clear weapons: %w", err)
	}

	query := `
		INSERT INTO user_weapons (user_id, weapon_spl_id, weapon_order, is_favorite)
		VALUES ($1, $2, $3, $4)
	`
	for i, w := range weapons {
		if _, err := exec.ExecContext(ctx, query, userID, w.WeaponSplID, i+1, w.IsFavorite); err != nil {
			return fmt.Errorf("failed to add weapon %d: %w", w.WeaponSplID, err)
		}
	}
	return nil
}

// CurrentTeam returns the team the user is a member of, or nil if none.
func CurrentTeam(ctx context.Context, exec repository.DBTX, userID int) (*domain.UserTeam, error) {
	query := `
		SELECT t.name, t.custom_url, t.avatar_url, tm.role
		FROM team_members tm
		JOIN teams t ON t.id = tm.team_id
		WHERE tm.user_id = $1 AND tm.left_at IS NULL
		LIMIT 1
	`
	var team domain.UserTeam
	err := exec.QueryRowContext(ctx, query, userID).Scan(
		&team.Name,
		&team.CustomURL,
		&team.AvatarURL,
		&team.Role,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user team: %w", err)
	}
	return &team, nil
}

// SearchCandidates returns users whose Discord name, in-game name or custom URL
// contains the characters of term in order, shortest names first.
func SearchCandidates(ctx context.Context, exec repository.DBTX, term string, limit int) ([]domain.UserSummary, error) {
	query := `
		SELECT ` + repository.UserSummaryColumns("u") + `, u.in_game_name
		FROM users u
		WHERE LOWER(u.discord_name) LIKE $1 ESCAPE '\'
		   OR LOWER(COALESCE(u.in_game_name, '')) LIKE $1 ESCAPE '\'
		   OR LOWER(COALESCE(u.custom_url, '')) LIKE $1 ESCAPE '\'
		ORDER BY LENGTH(u.discord_name), u.id
		LIMIT $2
	`
	pattern := subsequencePattern(strings.ToLower(term))
	rows, err := exec.QueryContext(ctx, query, pattern, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search users: %w", err)
	}
	defer func() { _ = rows.Close() }()

	users := make([]domain.UserSummary, 0)
	for rows.Next() {
		var u domain.UserSummary
		dest := append(repository.UserSummaryDest(&u), &u.InGameName)
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return users, nil
}

// subsequencePattern turns "abc" into "%a%b%c%" with LIKE wildcards escaped.
func subsequencePattern(term string) string {
	var b strings.Builder
	b.WriteByte('%')
	for _, r := range term {
		switch r {
		case '\\', '%', '_':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
		b.WriteByte('%')
	}
	return b.String()
}
