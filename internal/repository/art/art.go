package art

import (
	"context"
	"fmt"

	"github.com/sendou-ink/sendou-pages/internal/repository"
)

// CountByUserID counts the art pieces made by the user.
func CountByUserID(ctx context.Context, exec repository.DBTX, userID int) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM art WHERE author_id = $1`
	if err := exec.QueryRowContext(ctx, query, userID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count art: %w", err)
	}
	return count, nil
}

// Create inserts an art piece and returns its id.
func Create(ctx context.Context, exec repository.DBTX, authorID int, url string) (int, error) {
	query := `INSERT INTO art (author_id, url) VALUES ($1, $2) RETURNING id`
	var id int
	if err := exec.QueryRowContext(ctx, query, authorID, url).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to create art: %w", err)
	}
	return id, nil
}
