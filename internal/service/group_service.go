package service

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sendou-ink/sendou-pages/internal/domain"
	"github.com/sendou-ink/sendou-pages/internal/repository"
	"github.com/sendou-ink/sendou-pages/internal/repository/group"
)

// PreparingGroup is the viewer's group being put together with its invite
// options.
type PreparingGroup struct {
	Group          domain.Group           `json:"group"`
	TrustedPlayers []domain.TrustedPlayer `json:"trustedPlayers"`
}

// GroupService handles SendouQ groups.
type GroupService struct {
	db *sql.DB
}

// NewGroupService creates a new group service.
func NewGroupService(db *sql.DB) *GroupService {
	return &GroupService{db: db}
}

// CreateGroup creates a PREPARING group owned by the user with a fresh invite code.
func (s *GroupService) CreateGroup(ctx context.Context, ownerID int) (*domain.Group, error) {
	code, err := NewInviteCode()
	if err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	g := &domain.Group{InviteCode: code, Status: domain.GroupStatusPreparing}
	if err := group.Create(ctx, tx, g); err != nil {
		return nil, err
	}
	if err := group.AddMember(ctx, tx, g.ID, ownerID, domain.GroupRoleOwner); err != nil {
		if repository.IsForeignKeyViolation(err) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	g.Members, err = group.Members(ctx, s.db, g.ID)
	if err != nil {
		return nil, err
	}
	return g, nil
}

// GetPreparing returns the viewer's PREPARING group and the trusted players
// who could be added to it.
func (s *GroupService) GetPreparing(ctx context.Context, viewer *domain.Viewer) (*PreparingGroup, error) {
	if viewer == nil {
		return nil, ErrNotLoggedIn
	}

	g, err := group.FindPreparingByMember(ctx, s.db, viewer.ID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrGroupNotFound
		}
		return nil, fmt.Errorf("failed to find group: %w", err)
	}

	trusted := []domain.TrustedPlayer{}
	if !g.IsFull() {
		trusted, err = group.TrustedPlayers(ctx, s.db, viewer.ID, g.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to get trusted players: %w", err)
		}
	}

	return &PreparingGroup{Group: *g, TrustedPlayers: trusted}, nil
}

// AddTrustedMember adds a player the viewer trusts to the viewer's PREPARING
// group as a regular member.
func (s *GroupService) AddTrustedMember(ctx context.Context, viewer *domain.Viewer, userID int) (*domain.Group, error) {
	if viewer == nil {
		return nil, ErrNotLoggedIn
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	g, err := group.FindPreparingByMember(ctx, tx, viewer.ID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrGroupNotFound
		}
		return nil, fmt.Errorf("failed to find group: %w", err)
	}

	if role, _ := g.RoleOf(viewer.ID); role == domain.GroupRoleRegular {
		return nil, ErrNotManager
	}
	if g.IsFull() {
		return nil, ErrGroupFull
	}

	trusted, err := group.TrustedPlayers(ctx, tx, viewer.ID, g.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get trusted players: %w", err)
	}
	if !containsPlayer(trusted, userID) {
		return nil, ErrNotTrusted
	}

	if err := group.AddMember(ctx, tx, g.ID, userID, domain.GroupRoleRegular); err != nil {
		return nil, fmt.Errorf("failed to add member: %w", err)
	}

	members, err := group.Members(ctx, tx, g.ID)
	if err != nil {
		return nil, err
	}
	g.Members = members

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return g, nil
}

func containsPlayer(players []domain.TrustedPlayer, userID int) bool {
	for _, p := range players {
		if p.ID == userID {
			return true
		}
	}
	return false
}
