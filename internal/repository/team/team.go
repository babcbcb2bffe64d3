package team

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sendou-ink/sendou-pages/internal/domain"
	"github.com/sendou-ink/sendou-pages/internal/repository"
)

// Create inserts a new team and sets its id.
func Create(ctx context.Context, exec repository.DBTX, t *domain.Team) error {
	query := `
		INSERT INTO teams (name, custom_url, bio, twitter, avatar_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := exec.QueryRowContext(ctx, query, t.Name, t.CustomURL, t.Bio, t.Twitter, t.AvatarURL).Scan(&t.ID)
	if err != nil {
		return fmt.Errorf("failed to create team: %w", err)
	}
	return nil
}

// AddMember adds a user to a team.
func AddMember(ctx context.Context, exec repository.DBTX, teamID int, m domain.TeamMember) error {
	query := `
		INSERT INTO team_members (team_id, user_id, role, is_owner)
		VALUES ($1, $2, $3, $4)
	`
	_, err := exec.ExecContext(ctx, query, teamID, m.ID, m.Role, m.IsOwner)
	if err != nil {
		return fmt.Errorf("failed to add team member: %w", err)
	}
	return nil
}

// GetByCustomURL retrieves a team with its current members.
func GetByCustomURL(ctx context.Context, exec repository.DBTX, customURL string) (*domain.Team, error) {
	query := `
		SELECT id, name, custom_url, bio, twitter, avatar_url
		FROM teams
		WHERE LOWER(custom_url) = LOWER($1)
	`
	var t domain.Team
	err := exec.QueryRowContext(ctx, query, customURL).Scan(
		&t.ID,
		&t.Name,
		&t.CustomURL,
		&t.Bio,
		&t.Twitter,
		&t.AvatarURL,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	members, err := Members(ctx, exec, t.ID)
	if err != nil {
		return nil, err
	}
	t.Members = members

	return &t, nil
}

// Members returns the current members of a team, owner first.
func Members(ctx context.Context, exec repository.DBTX, teamID int) ([]domain.TeamMember, error) {
	query := `
		SELECT ` + repository.UserSummaryColumns("u") + `, tm.role, tm.is_owner
		FROM team_members tm
		JOIN users u ON u.id = tm.user_id
		WHERE tm.team_id = $1 AND tm.left_at IS NULL
		ORDER BY tm.is_owner DESC, u.id
	`
	rows, err := exec.QueryContext(ctx, query, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to get team members: %w", err)
	}
	defer func() { _ = rows.Close() }()

	members := make([]domain.TeamMember, 0)
	for rows.Next() {
		var m domain.TeamMember
		dest := append(repository.UserSummaryDest(&m.UserSummary), &m.Role, &m.IsOwner)
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("failed to scan team member: %w", err)
		}
		members = append(members, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return members, nil
}

// Exists checks if a team with the custom URL exists.
func Exists(ctx context.Context, exec repository.DBTX, customURL string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM teams WHERE LOWER(custom_url) = LOWER($1))`
	err := exec.QueryRowContext(ctx, query, customURL).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check team existence: %w", err)
	}
	return exists, nil
}
