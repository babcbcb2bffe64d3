package service

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sendou-ink/sendou-pages/internal/domain"
	"github.com/sendou-ink/sendou-pages/internal/repository/badge"
)

// BadgeDetails is a badge with the users owning and managing it.
type BadgeDetails struct {
	Badge    domain.Badge          `json:"badge"`
	Owners   []domain.BadgeOwner   `json:"owners"`
	Managers []domain.BadgeManager `json:"managers"`
}

// BadgeService handles badge lookups.
type BadgeService struct {
	db *sql.DB
}

// NewBadgeService creates a new badge service.
func NewBadgeService(db *sql.DB) *BadgeService {
	return &BadgeService{db: db}
}

// ListBadges returns every badge.
func (s *BadgeService) ListBadges(ctx context.Context) ([]domain.Badge, error) {
	badges, err := badge.All(ctx, s.db)
	if err != nil {
		return nil, fmt.Errorf("failed to list badges: %w", err)
	}
	return badges, nil
}

// GetBadge returns a badge with its owners, most owned first, and managers.
func (s *BadgeService) GetBadge(ctx context.Context, id int) (*BadgeDetails, error) {
	b, err := badge.Get(ctx, s.db, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrBadgeNotFound
		}
		return nil, fmt.Errorf("failed to get badge: %w", err)
	}

	owners, err := badge.Owners(ctx, s.db, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get badge owners: %w", err)
	}

	managers, err := badge.Managers(ctx, s.db, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get badge managers: %w", err)
	}

	return &BadgeDetails{
		Badge:    *b,
		Owners:   owners,
		Managers: managers,
	}, nil
}
