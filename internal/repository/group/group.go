package group

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sendou-ink/sendou-pages/internal/domain"
	"github.com/sendou-ink/sendou-pages/internal/repository"
)

// FindPreparingByMember returns the PREPARING group the user belongs to.
func FindPreparingByMember(ctx context.Context, exec repository.DBTX, userID int) (*domain.Group, error) {
	query := `
		SELECT g.id, g.invite_code, g.status
		FROM sendouq_groups g
		JOIN sendouq_group_members gm ON gm.group_id = g.id
		WHERE gm.user_id = $1 AND g.status = 'PREPARING'
		LIMIT 1
	`
	var g domain.Group
	err := exec.QueryRowContext(ctx, query, userID).Scan(&g.ID, &g.InviteCode, &g.Status)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find group: %w", err)
	}

	members, err := Members(ctx, exec, g.ID)
	if err != nil {
		return nil, err
	}
	g.Members = members

	return &g, nil
}

// Members returns the members of a group, owner first.
func Members(ctx context.Context, exec repository.DBTX, groupID int) ([]domain.GroupMember, error) {
	query := `
		SELECT gm.user_id, u.discord_name, gm.role
		FROM sendouq_group_members gm
		JOIN users u ON u.id = gm.user_id
		WHERE gm.group_id = $1
		ORDER BY CASE gm.role WHEN 'OWNER' THEN 0 WHEN 'MANAGER' THEN 1 ELSE 2 END, gm.user_id
	`
	rows, err := exec.QueryContext(ctx, query, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to get group members: %w", err)
	}
	defer func() { _ = rows.Close() }()

	members := make([]domain.GroupMember, 0)
	for rows.Next() {
		var m domain.GroupMember
		if err := rows.Scan(&m.UserID, &m.DiscordName, &m.Role); err != nil {
			return nil, fmt.Errorf("failed to scan group member: %w", err)
		}
		members = append(members, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return members, nil
}

// Create inserts a group and sets its id.
func Create(ctx context.Context, exec repository.DBTX, g *domain.Group) error {
	query := `INSERT INTO sendouq_groups (invite_code, status) VALUES ($1, $2) RETURNING id`
	if err := exec.QueryRowContext(ctx, query, g.InviteCode, g.Status).Scan(&g.ID); err != nil {
		return fmt.Errorf("failed to create group: %w", err)
	}
	return nil
}

// AddMember adds a user to a group with the given role.
func AddMember(ctx context.Context, exec repository.DBTX, groupID, userID int, role domain.GroupRole) error {
	query := `INSERT INTO sendouq_group_members (group_id, user_id, role) VALUES ($1, $2, $3)`
	if _, err := exec.ExecContext(ctx, query, groupID, userID, string(role)); err != nil {
		return fmt.Errorf("failed to add group member: %w", err)
	}
	return nil
}

// TrustedPlayers returns users sharing a trust relationship with the user,
// excluding members of the given group.
func TrustedPlayers(ctx context.Context, exec repository.DBTX, userID, groupID int) ([]domain.TrustedPlayer, error) {
	query := `
		SELECT DISTINCT u.id, u.discord_name
		FROM trust_relationships tr
		JOIN users u ON u.id = CASE
			WHEN tr.trust_giver_user_id = $1 THEN tr.trust_receiver_user_id
			ELSE tr.trust_giver_user_id
		END
		WHERE (tr.trust_giver_user_id = $1 OR tr.trust_receiver_user_id = $1)
		  AND u.id NOT IN (SELECT user_id FROM sendouq_group_members WHERE group_id = $2)
		ORDER BY u.discord_name, u.id
	`
	rows, err := exec.QueryContext(ctx, query, userID, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to get trusted players: %w", err)
	}
	defer func() { _ = rows.Close() }()

	players := make([]domain.TrustedPlayer, 0)
	for rows.Next() {
		var p domain.TrustedPlayer
		if err := rows.Scan(&p.ID, &p.DiscordName); err != nil {
			return nil, fmt.Errorf("failed to scan trusted player: %w", err)
		}
		players = append(players, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return players, nil
}

// AddTrust records that the giver trusts the receiver.
func AddTrust(ctx context.Context, exec repository.DBTX, giverID, receiverID int) error {
	query := `INSERT INTO trust_relationships (trust_giver_user_id, trust_receiver_user_id) VALUES ($1, $2)`
	if _, err := exec.ExecContext(ctx, query, giverID, receiverID); err != nil {
		return fmt.Errorf("failed to add trust: %w", err)
	}
	return nil
}
