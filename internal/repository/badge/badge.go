package badge

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sendou-ink/sendou-pages/internal/domain"
	"github.com/sendou-ink/sendou-pages/internal/repository"
)

// All returns every badge ordered by id.
func All(ctx context.Context, exec repository.DBTX) ([]domain.Badge, error) {
	query := `SELECT id, code, display_name, hue FROM badges ORDER BY id`
	rows, err := exec.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list badges: %w", err)
	}
	defer func() { _ = rows.Close() }()

	badges := make([]domain.Badge, 0)
	for rows.Next() {
		var b domain.Badge
		if err := rows.Scan(&b.ID, &b.Code, &b.DisplayName, &b.Hue); err != nil {
			return nil, fmt.Errorf("failed to scan badge: %w", err)
		}
		badges = append(badges, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return badges, nil
}

// Get retrieves a badge by id.
func Get(ctx context.Context, exec repository.DBTX, id int) (*domain.Badge, error) {
	query := `SELECT id, code, display_name, hue FROM badges WHERE id = $1`
	var b domain.Badge
	err := exec.QueryRowContext(ctx, query, id).Scan(&b.ID, &b.Code, &b.DisplayName, &b.Hue)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get badge: %w", err)
	}
	return &b, nil
}

// Create inserts a new badge and sets its id.
func Create(ctx context.Context, exec repository.DBTX, b *domain.Badge) error {
	query := `
		INSERT INTO badges (code, display_name, hue)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	if err := exec.QueryRowContext(ctx, query, b.Code, b.DisplayName, b.Hue).Scan(&b.ID); err != nil {
		return fmt.Errorf("failed to create badge: %w", err)
	}
	return nil
}

// AddOwner grants the badge to the user once more.
func AddOwner(ctx context.Context, exec repository.DBTX, badgeID, userID int) error {
	query := `INSERT INTO badge_owners (badge_id, user_id) VALUES ($1, $2)`
	if _, err := exec.ExecContext(ctx, query, badgeID, userID); err != nil {
		return fmt.Errorf("failed to add badge owner: %w", err)
	}
	return nil
}

// AddManager allows the user to edit the badge's owners.
func AddManager(ctx context.Context, exec repository.DBTX, badgeID, userID int) error {
	query := `INSERT INTO badge_managers (badge_id, user_id) VALUES ($1, $2)`
	if _, err := exec.ExecContext(ctx, query, badgeID, userID); err != nil {
		return fmt.Errorf("failed to add badge manager: %w", err)
	}
	return nil
}

// Owners returns the badge's owners with how many times they own it, most first.
func Owners(ctx context.Context, exec repository.DBTX, badgeID int) ([]domain.BadgeOwner, error) {
	query := `
		SELECT ` + repository.UserSummaryColumns("u") + `, COUNT(*) AS count
		FROM badge_owners bo
		JOIN users u ON u.id = bo.user_id
		WHERE bo.badge_id = $1
		GROUP BY u.id, u.discord_id, u.discord_name, u.discord_discriminator, u.discord_avatar, u.custom_url
		ORDER BY count DESC, u.id
	`
	rows, err := exec.QueryContext(ctx, query, badgeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get badge owners: %w", err)
	}
	defer func() { _ = rows.Close() }()

	owners := make([]domain.BadgeOwner, 0)
	for rows.Next() {
		var o domain.BadgeOwner
		dest := append(repository.UserSummaryDest(&o.UserSummary), &o.Count)
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("failed to scan badge owner: %w", err)
		}
		owners = append(owners, o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return owners, nil
}

// Managers returns the users allowed to edit the badge's owners.
func Managers(ctx context.Context, exec repository.DBTX, badgeID int) ([]domain.BadgeManager, error) {
	query := `
		SELECT ` + repository.UserSummaryColumns("u") + `
		FROM badge_managers bm
		JOIN users u ON u.id = bm.user_id
		WHERE bm.badge_id = $1
		ORDER BY u.id
	`
	rows, err := exec.QueryContext(ctx, query, badgeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get badge managers: %w", err)
	}
	defer func() { _ = rows.Close() }()

	managers := make([]domain.BadgeManager, 0)
	for rows.Next() {
		var m domain.BadgeManager
		if err := rows.Scan(repository.UserSummaryDest(&m.UserSummary)...); err != nil {
			return nil, fmt.Errorf("failed to scan badge manager: %w", err)
		}
		managers = append(managers, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return managers, nil
}

// OwnedByUser returns the badges a user owns with counts.
func OwnedByUser(ctx context.Context, exec repository.DBTX, userID int) ([]domain.Badge, error) {
	query := `
		SELECT b.id, b.code, b.display_name, b.hue, COUNT(*) AS count
		FROM badge_owners bo
		JOIN badges b ON b.id = bo.badge_id
		WHERE bo.user_id = $1
		GROUP BY b.id, b.code, b.display_name, b.hue
		ORDER BY b.id
	`
	rows, err := exec.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user badges: %w", err)
	}
	defer func() { _ = rows.Close() }()

	badges := make([]domain.Badge, 0)
	for rows.Next() {
		var b domain.Badge
		if err := rows.Scan(&b.ID, &b.Code, &b.DisplayName, &b.Hue, &b.Count); err != nil {
			return nil, fmt.Errorf("failed to scan badge: %w", err)
		}
		badges = append(badges, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return badges, nil
}
