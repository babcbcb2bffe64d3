package service

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sendou-ink/sendou-pages/internal/domain"
	"github.com/sendou-ink/sendou-pages/internal/repository"
	"github.com/sendou-ink/sendou-pages/internal/repository/team"
)

// TeamService handles team business logic.
type TeamService struct {
	db *sql.DB
}

// NewTeamService creates a new team service.
func NewTeamService(db *sql.DB) *TeamService {
	return &TeamService{db: db}
}

// CreateTeam creates a new team with members in a single transaction.
func (s *TeamService) CreateTeam(ctx context.Context, t *domain.Team) error {
	if err := t.Validate(); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	exists, err := team.Exists(ctx, tx, t.CustomURL)
	if err != nil {
		return fmt.Errorf("failed to check team existence: %w", err)
	}
	if exists {
		return ErrTeamExists
	}

	if err := team.Create(ctx, tx, t); err != nil {
		if repository.IsUniqueViolation(err) {
			return ErrTeamExists
		}
		return fmt.Errorf("failed to create team: %w", err)
	}

	for _, m := range t.Members {
		if err := team.AddMember(ctx, tx, t.ID, m); err != nil {
			if repository.IsForeignKeyViolation(err) {
				return fmt.Errorf("member %d: %w", m.ID, ErrUserNotFound)
			}
			return fmt.Errorf("failed to add member %d: %w", m.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetTeam retrieves a team with all its members.
func (s *TeamService) GetTeam(ctx context.Context, customURL string) (*domain.Team, error) {
	t, err := team.GetByCustomURL(ctx, s.db, customURL)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	return t, nil
}
