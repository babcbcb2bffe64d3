package placement

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sendou-ink/sendou-pages/internal/domain"
	"github.com/sendou-ink/sendou-pages/internal/repository"
)

// FindByPlayerID returns all placements of a player, most recent first.
func FindByPlayerID(ctx context.Context, exec repository.DBTX, playerID int) ([]domain.Placement, error) {
	query := `
		SELECT p.id, p.weapon_spl_id, p.name, p.power, p.rank, p.mode, p.region,
		       p.player_id, p.month, p.year, u.discord_id, u.custom_url
		FROM x_rank_placements p
		JOIN splatoon_players sp ON sp.id = p.player_id
		LEFT JOIN users u ON u.id = sp.user_id
		WHERE p.player_id = $1
		ORDER BY p.year DESC, p.month DESC, p.rank ASC, p.id ASC
	`
	rows, err := exec.QueryContext(ctx, query, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get placements: %w", err)
	}
	defer func() { _ = rows.Close() }()

	placements := make([]domain.Placement, 0)
	for rows.Next() {
		var p domain.Placement
		if err := rows.Scan(
			&p.ID,
			&p.WeaponSplID,
			&p.Name,
			&p.Power,
			&p.Rank,
			&p.Mode,
			&p.Region,
			&p.PlayerID,
			&p.Month,
			&p.Year,
			&p.DiscordID,
			&p.CustomURL,
		); err != nil {
			return nil, fmt.Errorf("failed to scan placement: %w", err)
		}
		placements = append(placements, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return placements, nil
}

// PlayerIDByUserID returns the Splatoon player linked to the user, or nil.
func PlayerIDByUserID(ctx context.Context, exec repository.DBTX, userID int) (*int, error) {
	query := `SELECT id FROM splatoon_players WHERE user_id = $1`
	var id int
	err := exec.QueryRowContext(ctx, query, userID).Scan(&id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get player id: %w", err)
	}
	return &id, nil
}

// CreatePlayer inserts a Splatoon player, optionally linked to a user, and returns its id.
func CreatePlayer(ctx context.Context, exec repository.DBTX, splID string, userID *int) (int, error) {
	query := `INSERT INTO splatoon_players (spl_id, user_id) VALUES ($1, $2) RETURNING id`
	var id int
	if err := exec.QueryRowContext(ctx, query, splID, userID).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to create player: %w", err)
	}
	return id, nil
}

// Create inserts a placement and sets its id.
func Create(ctx context.Context, exec repository.DBTX, p *domain.Placement) error {
	query := `
		INSERT INTO x_rank_placements (weapon_spl_id, name, power, rank, mode, region, player_id, month, year)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`
	err := exec.QueryRowContext(ctx, query,
		p.WeaponSplID, p.Name, p.Power, p.Rank, p.Mode, p.Region, p.PlayerID, p.Month, p.Year,
	).Scan(&p.ID)
	if err != nil {
		return fmt.Errorf("failed to create placement: %w", err)
	}
	return nil
}
