package build

import (
	"context"
	"fmt"

	"github.com/sendou-ink/sendou-pages/internal/repository"
)

// CountByUserID counts the user's builds. Private builds are only counted when
// the viewer is the owner.
func CountByUserID(ctx context.Context, exec repository.DBTX, userID int, viewerID *int) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM builds
		WHERE owner_id = $1 AND (private = FALSE OR owner_id = $2)
	`
	viewer := -1
	if viewerID != nil {
		viewer = *viewerID
	}

	var count int
	if err := exec.QueryRowContext(ctx, query, userID, viewer).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count builds: %w", err)
	}
	return count, nil
}

// Create inserts a build and returns its id.
func Create(ctx context.Context, exec repository.DBTX, ownerID int, title string, private bool) (int, error) {
	query := `INSERT INTO builds (owner_id, title, private) VALUES ($1, $2, $3) RETURNING id`
	var id int
	if err := exec.QueryRowContext(ctx, query, ownerID, title, private).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to create build: %w", err)
	}
	return id, nil
}
