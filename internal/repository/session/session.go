package session

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sendou-ink/sendou-pages/internal/domain"
	"github.com/sendou-ink/sendou-pages/internal/repository"
)

// ViewerByToken resolves a session token to the logged in user.
// Returns sql.ErrNoRows for unknown tokens and banned users.
func ViewerByToken(ctx context.Context, exec repository.DBTX, token string) (*domain.Viewer, error) {
	query := `
		SELECT u.id, u.discord_id, u.patron_tier
		FROM sessions s
		JOIN users u ON u.id = s.user_id
		WHERE s.token = $1 AND u.banned = FALSE
	`
	var v domain.Viewer
	err := exec.QueryRowContext(ctx, query, token).Scan(&v.ID, &v.DiscordID, &v.PatronTier)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return &v, nil
}

// Create stores a session token for the user.
func Create(ctx context.Context, exec repository.DBTX, token string, userID int) error {
	query := `INSERT INTO sessions (token, user_id) VALUES ($1, $2)`
	if _, err := exec.ExecContext(ctx, query, token, userID); err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}
