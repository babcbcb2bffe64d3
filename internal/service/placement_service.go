package service

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sendou-ink/sendou-pages/internal/domain"
	"github.com/sendou-ink/sendou-pages/internal/format"
	"github.com/sendou-ink/sendou-pages/internal/repository/placement"
)

// PlayerPlacements is every top 500 placement of one player.
type PlayerPlacements struct {
	PlayerID   int                `json:"playerId"`
	Name       string             `json:"name"`
	Aliases    []string           `json:"aliases"`
	Placements []domain.Placement `json:"placements"`
}

// HasUserLinked reports whether the player is linked to a site user.
func (p *PlayerPlacements) HasUserLinked() bool {
	return len(p.Placements) > 0 && p.Placements[0].DiscordID != nil
}

// PlacementService handles top 500 lookups.
type PlacementService struct {
	db *sql.DB
}

// NewPlacementService creates a new placement service.
func NewPlacementService(db *sql.DB) *PlacementService {
	return &PlacementService{db: db}
}

// GetPlayerPlacements returns a player's placements, most recent first.
// The player's name is the one of the most recent placement; other names are aliases.
func (s *PlacementService) GetPlayerPlacements(ctx context.Context, playerID int) (*PlayerPlacements, error) {
	placements, err := placement.FindByPlayerID(ctx, s.db, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get placements: %w", err)
	}
	if len(placements) == 0 {
		return nil, ErrPlayerNotFound
	}

	return &PlayerPlacements{
		PlayerID:   playerID,
		Name:       placements[0].Name,
		Aliases:    Aliases(placements),
		Placements: placements,
	}, nil
}

// Aliases returns the distinct names other than the first one, in order of appearance.
func Aliases(placements []domain.Placement) []string {
	if len(placements) == 0 {
		return []string{}
	}

	first := placements[0].Name
	names := make([]string, 0, len(placements))
	for _, p := range placements {
		if p.Name != first {
			names = append(names, p.Name)
		}
	}
	return format.RemoveDuplicates(names)
}
